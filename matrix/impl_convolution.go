// SPDX-License-Identifier: MIT

// Package matrix - 2-D and channel-stacked convolution, pooling, and the
// classical image-gradient kernels.
//
// Convolution is computed in cross-correlation orientation (the kernel is not
// flipped), which is the convention of learned filters:
//
//	out[i,j] = Σₖ Σₚ in[i·S+k, j·S+p] · K[k,p]
//
// Output extent per axis is ⌊(N − F + 2P)/S⌋ + 1 for input N, kernel F,
// padding P, stride S. Padding is zero-fill.
package matrix

import (
	"fmt"
	"math"
)

const (
	opConv2D   = "Convolve2D"
	opConv3D   = "ConvolveTensor3"
	opPool2D   = "Pool2D"
	opPool3D   = "PoolTensor3"
	opGPool    = "GlobalPool"
	opPad      = "Pad"
	opGaussian = "GaussianKernel"
)

// outExtent returns ⌊(n − f + 2p)/s⌋ + 1 or an error when the window does not fit.
func outExtent(n, f, p, s int) (int, error) {
	if s <= 0 || f <= 0 || p < 0 {
		return 0, ErrInvalidArgument
	}
	span := n + 2*p - f
	if span < 0 {
		return 0, ErrShapeMismatch
	}

	return span/s + 1, nil
}

// Pad returns m surrounded by p rows/cols of zeros on every side.
// Errors: ErrNilMatrix, ErrInvalidArgument (p < 0).
func Pad(m Matrix, p int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opPad, err)
	}
	if p < 0 {
		return nil, matrixErrorf(opPad, ErrInvalidArgument)
	}
	src, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opPad, err)
	}
	if p == 0 {
		return src.Copy(), nil
	}
	cols := src.c + 2*p
	out := newDense(src.r+2*p, cols)
	for i := 0; i < src.r; i++ {
		copy(out.data[(i+p)*cols+p:(i+p)*cols+p+src.c], src.data[i*src.c:(i+1)*src.c])
	}

	return out, nil
}

// Convolve2D slides kernel k over m with the given stride and zero padding.
// Rectangular inputs and kernels are accepted.
//
// Errors: ErrNilMatrix; ErrInvalidArgument (stride <= 0, pad < 0, empty kernel);
// ErrShapeMismatch (kernel larger than the padded input).
// Complexity: Time O(outR·outC·kR·kC).
func Convolve2D(m, k Matrix, stride, pad int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opConv2D, err)
	}
	if err := ValidateNotNil(k); err != nil {
		return nil, matrixErrorf(opConv2D, err)
	}
	outR, err := outExtent(m.Rows(), k.Rows(), pad, stride)
	if err != nil {
		return nil, matrixErrorf(opConv2D, err)
	}
	outC, err := outExtent(m.Cols(), k.Cols(), pad, stride)
	if err != nil {
		return nil, matrixErrorf(opConv2D, err)
	}
	in, err := Pad(m, pad)
	if err != nil {
		return nil, matrixErrorf(opConv2D, err)
	}
	kd, err := toDense(k)
	if err != nil {
		return nil, matrixErrorf(opConv2D, err)
	}

	out := newDense(outR, outC)
	correlate(out.data, outR, outC, in, kd, stride)

	return out, nil
}

// correlate accumulates the cross-correlation of in with kd into dst (outR×outC, row-major).
func correlate(dst []float64, outR, outC int, in, kd *Dense, stride int) {
	var (
		i, j, a, b  int
		rowIn, rowK int
		sum         float64
	)
	for i = 0; i < outR; i++ {
		for j = 0; j < outC; j++ {
			sum = ZeroSum
			for a = 0; a < kd.r; a++ {
				rowIn = (i*stride+a)*in.c + j*stride
				rowK = a * kd.c
				for b = 0; b < kd.c; b++ {
					sum += in.data[rowIn+b] * kd.data[rowK+b]
				}
			}
			dst[i*outC+j] += sum
		}
	}
}

// ConvolveTensor3 convolves each input channel with the matching kernel
// channel and sums the per-channel maps into one feature map.
//
// Errors: ErrNilMatrix; ErrShapeMismatch when channel counts differ or the
// kernel does not fit; ErrInvalidArgument for stride/pad.
func ConvolveTensor3(t, k *Tensor3, stride, pad int) (*Dense, error) {
	if t == nil || k == nil {
		return nil, matrixErrorf(opConv3D, ErrNilMatrix)
	}
	if t.ch != k.ch {
		return nil, matrixErrorf(opConv3D, fmt.Errorf("channels %d vs %d: %w", t.ch, k.ch, ErrShapeMismatch))
	}
	outR, err := outExtent(t.r, k.r, pad, stride)
	if err != nil {
		return nil, matrixErrorf(opConv3D, err)
	}
	outC, err := outExtent(t.c, k.c, pad, stride)
	if err != nil {
		return nil, matrixErrorf(opConv3D, err)
	}
	out := newDense(outR, outC)
	var (
		ch     int
		tc, kc *Dense
		in     *Dense
	)
	for ch = 0; ch < t.ch; ch++ {
		tc, _ = t.Channel(ch) // ch proven in range
		kc, _ = k.Channel(ch)
		if in, err = Pad(tc, pad); err != nil {
			return nil, matrixErrorf(opConv3D, err)
		}
		correlate(out.data, outR, outC, in, kc, stride)
	}

	return out, nil
}

// poolReduce folds one window according to kind.
func poolReduce(kind PoolKind, first bool, acc, v float64) float64 {
	if first {
		return v
	}
	switch kind {
	case PoolMax:
		return math.Max(acc, v)
	case PoolMin:
		return math.Min(acc, v)
	default:
		return acc + v
	}
}

func validPool(kind PoolKind) bool {
	return kind == PoolMax || kind == PoolMin || kind == PoolAverage
}

// Pool2D reduces every size×size window (moved by stride) to one value.
// Errors: ErrNilMatrix, ErrUnknownPool, ErrInvalidArgument, ErrShapeMismatch.
func Pool2D(m Matrix, size, stride int, kind PoolKind) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opPool2D, err)
	}
	if !validPool(kind) {
		return nil, matrixErrorf(opPool2D, ErrUnknownPool)
	}
	outR, err := outExtent(m.Rows(), size, 0, stride)
	if err != nil {
		return nil, matrixErrorf(opPool2D, err)
	}
	outC, err := outExtent(m.Cols(), size, 0, stride)
	if err != nil {
		return nil, matrixErrorf(opPool2D, err)
	}
	in, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opPool2D, err)
	}

	out := newDense(outR, outC)
	area := float64(size * size)
	var (
		i, j, a, b int
		acc        float64
	)
	for i = 0; i < outR; i++ {
		for j = 0; j < outC; j++ {
			for a = 0; a < size; a++ {
				for b = 0; b < size; b++ {
					acc = poolReduce(kind, a == 0 && b == 0, acc, in.data[(i*stride+a)*in.c+j*stride+b])
				}
			}
			if kind == PoolAverage {
				acc /= area
			}
			out.data[i*outC+j] = acc
		}
	}

	return out, nil
}

// PoolTensor3 applies Pool2D to every channel.
func PoolTensor3(t *Tensor3, size, stride int, kind PoolKind) (*Tensor3, error) {
	if t == nil {
		return nil, matrixErrorf(opPool3D, ErrNilMatrix)
	}
	maps := make([]*Dense, t.ch)
	var (
		ch  int
		src *Dense
		err error
	)
	for ch = 0; ch < t.ch; ch++ {
		src, _ = t.Channel(ch)
		if maps[ch], err = Pool2D(src, size, stride, kind); err != nil {
			return nil, matrixErrorf(opPool3D, err)
		}
	}
	if t.ch == 0 {
		return &Tensor3{validateNaNInf: t.validateNaNInf}, nil
	}

	return FromMatrices(maps)
}

// GlobalPool2D reduces the whole matrix to one value.
// Errors: ErrNilMatrix, ErrUnknownPool, ErrEmpty.
func GlobalPool2D(m Matrix, kind PoolKind) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opGPool, err)
	}
	if !validPool(kind) {
		return 0, matrixErrorf(opGPool, ErrUnknownPool)
	}
	d, err := toDense(m)
	if err != nil {
		return 0, matrixErrorf(opGPool, err)
	}
	if len(d.data) == 0 {
		return 0, matrixErrorf(opGPool, ErrEmpty)
	}
	var acc float64
	for idx, v := range d.data {
		acc = poolReduce(kind, idx == 0, acc, v)
	}
	if kind == PoolAverage {
		acc /= float64(len(d.data))
	}

	return acc, nil
}

// GlobalPoolTensor3 reduces each channel to one value.
func GlobalPoolTensor3(t *Tensor3, kind PoolKind) (*Vector, error) {
	if t == nil {
		return nil, matrixErrorf(opGPool, ErrNilMatrix)
	}
	out := newVec(t.ch)
	var (
		ch  int
		src *Dense
		err error
	)
	for ch = 0; ch < t.ch; ch++ {
		src, _ = t.Channel(ch)
		if out.data[ch], err = GlobalPool2D(src, kind); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// ---------- kernels ----------

// GaussianKernel returns a size×size kernel sampled from the isotropic 2-D
// normal density with standard deviation sigma, centred on the middle cell.
// Errors: ErrInvalidArgument for size <= 0 or sigma <= 0.
func GaussianKernel(size int, sigma float64) (*Dense, error) {
	if size <= 0 || !(sigma > 0) || math.IsInf(sigma, 0) {
		return nil, matrixErrorf(opGaussian, ErrInvalidArgument)
	}
	out := newDense(size, size)
	centre := float64(size-1) / 2
	s2 := sigma * sigma
	norm := 1 / (2 * math.Pi * s2)
	var (
		i, j int
		x, y float64
	)
	for i = 0; i < size; i++ {
		for j = 0; j < size; j++ {
			x, y = float64(i)-centre, centre-float64(j)
			out.data[i*size+j] = norm * math.Exp(-(x*x+y*y)/(2*s2))
		}
	}

	return out, nil
}

func kernel3(v ...float64) *Dense {
	return &Dense{r: 3, c: 3, data: v, validateNaNInf: DefaultValidateNaNInf}
}

// SobelX responds to horizontal intensity change (vertical edges).
func SobelX() *Dense { return kernel3(-1, 0, 1, -2, 0, 2, -1, 0, 1) }

// SobelY responds to vertical intensity change (horizontal edges).
func SobelY() *Dense { return kernel3(1, 2, 1, 0, 0, 0, -1, -2, -1) }

// PrewittX is the unweighted counterpart of SobelX.
func PrewittX() *Dense { return kernel3(1, 0, -1, 1, 0, -1, 1, 0, -1) }

// PrewittY is the unweighted counterpart of SobelY.
func PrewittY() *Dense { return kernel3(1, 1, 1, 0, 0, 0, -1, -1, -1) }

// ScharrX is the rotation-symmetric variant of SobelX.
func ScharrX() *Dense { return kernel3(3, 0, -3, 10, 0, -10, 3, 0, -3) }

// ScharrY is the rotation-symmetric variant of SobelY.
func ScharrY() *Dense { return kernel3(3, 10, 3, 0, 0, 0, -3, -10, -3) }

// Laplacian is the 4-neighbour discrete Laplace operator.
func Laplacian() *Dense { return kernel3(0, 1, 0, 1, -4, 1, 0, 1, 0) }

// RobertsX is the 2×2 Roberts cross kernel for one diagonal.
func RobertsX() *Dense {
	return &Dense{r: 2, c: 2, data: []float64{0, 1, -1, 0}, validateNaNInf: DefaultValidateNaNInf}
}

// RobertsY is the 2×2 Roberts cross kernel for the other diagonal.
func RobertsY() *Dense {
	return &Dense{r: 2, c: 2, data: []float64{1, 0, 0, -1}, validateNaNInf: DefaultValidateNaNInf}
}

// ---------- image gradients ----------

// Dx returns the central horizontal difference in[i,j+1] − in[i,j−1]
// with implicit zero padding at the borders.
func Dx(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("Dx", err)
	}
	in, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf("Dx", err)
	}
	out := newDense(in.r, in.c)
	var i, j int
	var l, r float64
	for i = 0; i < in.r; i++ {
		for j = 0; j < in.c; j++ {
			l, r = 0, 0
			if j > 0 {
				l = in.data[i*in.c+j-1]
			}
			if j+1 < in.c {
				r = in.data[i*in.c+j+1]
			}
			out.data[i*in.c+j] = r - l
		}
	}

	return out, nil
}

// Dy returns the central vertical difference in[i−1,j] − in[i+1,j]
// (image rows grow downwards) with implicit zero padding.
func Dy(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("Dy", err)
	}
	in, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf("Dy", err)
	}
	out := newDense(in.r, in.c)
	var i, j int
	var up, down float64
	for i = 0; i < in.r; i++ {
		for j = 0; j < in.c; j++ {
			up, down = 0, 0
			if i > 0 {
				up = in.data[(i-1)*in.c+j]
			}
			if i+1 < in.r {
				down = in.data[(i+1)*in.c+j]
			}
			out.data[i*in.c+j] = up - down
		}
	}

	return out, nil
}

// GradMagnitude returns √(Dx² + Dy²) element-wise.
func GradMagnitude(m Matrix) (*Dense, error) {
	dx, err := Dx(m)
	if err != nil {
		return nil, err
	}
	dy, err := Dy(m)
	if err != nil {
		return nil, err
	}
	for idx := range dx.data {
		dx.data[idx] = math.Hypot(dx.data[idx], dy.data[idx])
	}

	return dx, nil
}

// GradOrientation returns atan2(Dy, Dx) element-wise, in radians.
func GradOrientation(m Matrix) (*Dense, error) {
	dx, err := Dx(m)
	if err != nil {
		return nil, err
	}
	dy, err := Dy(m)
	if err != nil {
		return nil, err
	}
	for idx := range dx.data {
		dx.data[idx] = math.Atan2(dy.data[idx], dx.data[idx])
	}

	return dx, nil
}
