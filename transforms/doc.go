// SPDX-License-Identifier: MIT

// Package transforms implements the orthonormal discrete cosine transform
// (DCT-II) and its inverse on vectors and matrices.
//
//	X[k] = s(k)·Σₙ x[n]·cos(π(2n+1)k / 2N),  s(0) = √(1/N), s(k>0) = √(2/N)
//
// The 1-D kernels run on gonum's quarter-wave FFT, so a length-N transform
// costs O(N log N). DCT2D applies the 1-D transform to every row and then to
// every column; with WithLevelShift(128) it reproduces the JPEG convention of
// centering 8-bit samples before the transform. Orthonormality makes IDCT
// an exact inverse and preserves the Euclidean norm (Parseval).
package transforms
