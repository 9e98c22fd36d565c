// SPDX-License-Identifier: MIT

// Package initializer draws starting parameters for training.
//
// A Distribution picks the sampling law and how it scales with the fan-in n
// (the vector length, or the number of rows of a matrix):
//
//	Default        U(0, 1)
//	XavierNormal   N(0, √(2/(n+1)))      matrices: √(2/(rows+cols))
//	XavierUniform  U(±√(6/(n+1)))        matrices: √(6/(rows+cols))
//	HeNormal       N(0, √(2/n))
//	HeUniform      U(±√(6/n))
//	LeCunNormal    N(0, √(1/n))
//	LeCunUniform   U(±√(3/n))
//	Uniform        U(±1/√n)
//
// Randomness: WithSeed(seed) draws from a private, reproducible source;
// WithRand(r) shares a caller-owned *rand.Rand. Without either, draws come
// from the process-wide math/rand source.
package initializer
