// SPDX-License-Identifier: MIT

package optim

import "math"

// rules maps each Rule to its per-coordinate update. Every step function
// writes all of its slots in next, even when a value is carried over.
var rules = map[Rule]ruleImpl{
	Plain:    {slots: 0, step: plainStep},
	Momentum: {slots: 1, step: momentumStep},
	Nesterov: {slots: 1, step: nesterovStep},
	Adagrad:  {slots: 1, step: adagradStep},
	Adadelta: {slots: 2, step: adadeltaStep},
	RMSProp:  {slots: 1, step: rmspropStep},
	Adam:     {slots: 2, step: adamStep},
	Adamax:   {slots: 2, step: adamaxStep},
	Nadam:    {slots: 2, step: nadamStep},
	AMSGrad:  {slots: 3, step: amsgradStep},
}

// w − ηg
func plainStep(h *hyper, _ int, w, g float64, _, _ *slots) float64 {
	return w - h.lr*g
}

// v = μv + g; w − ηv
func momentumStep(h *hyper, i int, w, g float64, cur, next *slots) float64 {
	v := h.mu*cur[0][i] + g
	next[0][i] = v

	return w - h.lr*v
}

// v = μv + g; w − η(g + μv)
func nesterovStep(h *hyper, i int, w, g float64, cur, next *slots) float64 {
	v := h.mu*cur[0][i] + g
	next[0][i] = v

	return w - h.lr*(g+h.mu*v)
}

// G += g²; w − ηg/(√G + ε)
func adagradStep(h *hyper, i int, w, g float64, cur, next *slots) float64 {
	acc := cur[0][i] + g*g
	next[0][i] = acc

	return w - h.lr*g/(math.Sqrt(acc)+h.eps)
}

// Slot 0 is E[g²], slot 1 is E[Δ²]. The step size adapts without η.
func adadeltaStep(h *hyper, i int, w, g float64, cur, next *slots) float64 {
	eg := h.rho*cur[0][i] + (1-h.rho)*g*g
	delta := -math.Sqrt(cur[1][i]+h.eps) / math.Sqrt(eg+h.eps) * g
	next[0][i] = eg
	next[1][i] = h.rho*cur[1][i] + (1-h.rho)*delta*delta

	return w + delta
}

// E = ρE + (1−ρ)g²; w − ηg/(√E + ε)
func rmspropStep(h *hyper, i int, w, g float64, cur, next *slots) float64 {
	e := h.rho*cur[0][i] + (1-h.rho)*g*g
	next[0][i] = e

	return w - h.lr*g/(math.Sqrt(e)+h.eps)
}

// moments advances the first and second moment estimates of coordinate i.
func moments(h *hyper, i int, g float64, cur, next *slots) (m, v float64) {
	m = h.beta1*cur[0][i] + (1-h.beta1)*g
	v = h.beta2*cur[1][i] + (1-h.beta2)*g*g
	next[0][i], next[1][i] = m, v

	return m, v
}

func adamStep(h *hyper, i int, w, g float64, cur, next *slots) float64 {
	m, v := moments(h, i, g, cur, next)
	mHat := m / h.c1
	vHat := v / h.c2

	return w - h.lr*mHat/(math.Sqrt(vHat)+h.eps)
}

// Slot 1 holds the infinity norm u = max(β2u, |g|).
func adamaxStep(h *hyper, i int, w, g float64, cur, next *slots) float64 {
	m := h.beta1*cur[0][i] + (1-h.beta1)*g
	u := math.Max(h.beta2*cur[1][i], math.Abs(g))
	next[0][i], next[1][i] = m, u

	return w - h.lr/h.c1*m/(u+h.eps)
}

func nadamStep(h *hyper, i int, w, g float64, cur, next *slots) float64 {
	m, v := moments(h, i, g, cur, next)
	mHat := m / h.c1
	vHat := v / h.c2

	return w - h.lr/(math.Sqrt(vHat)+h.eps)*(h.beta1*mHat+(1-h.beta1)*g/h.c1)
}

// Slot 2 keeps the running maximum of v.
func amsgradStep(h *hyper, i int, w, g float64, cur, next *slots) float64 {
	m, v := moments(h, i, g, cur, next)
	vMax := math.Max(cur[2][i], v)
	next[2][i] = vMax

	return w - h.lr*(m/h.c1)/(math.Sqrt(vMax)+h.eps)
}
