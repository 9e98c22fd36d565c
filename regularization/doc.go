// SPDX-License-Identifier: MIT

// Package regularization adds parameter penalties to a training objective.
//
// A Config selects the penalty Kind, its strength λ and, for ElasticNet, the
// L1 ratio α:
//
//	L1          λΣ|w|                 ∇ = λ·sign(w), sign(0) = 0
//	L2          (λ/2)Σw²              ∇ = λw
//	ElasticNet  λΣ(α|w| + (1−α)w²/2)  ∇ = λ(α·sign(w) + (1−α)w)
//
// WeightClipping contributes no penalty; instead ClipInPlace clamps every
// weight into [−λ, λ] after an update. None disables regularization and
// requires λ = 0.
//
// Masks: the masked variants take a []bool of len(w), where mask[i] == false
// excludes coordinate i (typically a bias). A nil mask includes everything.
package regularization
