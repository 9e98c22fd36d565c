// Package matrix is the dense numeric engine of lvml: Vector, Matrix (Dense) and
// Tensor3 containers plus the stateless linear-algebra kernels that operate on them.
//
// What & Why:
//
//	Containers hold data; kernels hold algorithms. Every container is row-major,
//	flat-backed and fixed in shape after construction (Vector.Resize is the only,
//	explicit, reallocation). Kernels never keep state between calls, so they are
//	safe to call from independent goroutines on disjoint data.
//
// Containers:
//
//   - Vector   – 1-D array; value-returning ops (Add, Scale, ...) and explicitly
//     named in-place ops (AddInPlace, ScaleInPlace, ...).
//   - Dense    – r×c matrix implementing the Matrix interface; RowView / View are
//     non-owning windows valid for the parent's lifetime.
//   - Tensor3  – stack of congruent r×c channels; Channel(k) is a non-owning Dense.
//
// Kernels (package-level functions, all returning fresh containers):
//
//   - Products: Mul, MatVec, VecMat, Hadamard, Kronecker, Outer.
//   - Structure: Transpose, Trace, Diag, NewIdentity.
//   - Solvers: Inverse (Gauss–Jordan, partial pivoting), Det (pivoted LU), LU, LUP,
//     Solve, QR (Householder), Cholesky, Eigen (symmetric Jacobi), SVD, PseudoInverse.
//   - Broadcasts: AddScalar, AddRowVector, AddColVector, SubRowVector, SubColVector,
//     MulRowVector, MulColVector. No other shape pairs broadcast.
//   - Norms: VectorNorm / MatrixNorm with an explicit NormKind.
//   - Tensor3: SumChannels, MeanChannels, MapChannels.
//   - Concatenation: ConcatVectors, HStack, VStack, Flatten, FlattenTensor3.
//   - Convolution: Convolve2D, ConvolveTensor3, Pool2D, PoolTensor3 and kernels.
//   - Statistics: CenterColumns, Covariance, Correlation, ZScoreColumns.
//   - Geometry: EuclideanDistance, SquaredDistance, Cross, Projection, GramSchmidt.
//   - Cofactors: Minor, Cofactor, CofactorMatrix, Adjugate, Power.
//   - Definiteness: IsPositiveDefinite, IsNegativeDefinite, HasZeroEigenvalue.
//
// NaN/Inf policy: NewVectorFrom wraps values as given and the policy applies
// to later Set calls; VectorFrom checks the initial values too.
//
// Errors:
//
//	All failures are sentinel errors checked with errors.Is: ErrShapeMismatch,
//	ErrOutOfRange, ErrSingular, ErrInvalidDimensions, ErrNaNInf, ... Shapes are
//	validated before the first write, so a failed call never leaves a partially
//	written result or receiver behind.
//
// Complexity:
//
//	At/Set are O(1); elementwise ops O(n); Mul O(r·n·c); Inverse/Det/LU/QR O(n³).
package matrix
