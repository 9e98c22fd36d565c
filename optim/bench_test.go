// SPDX-License-Identifier: MIT
package optim_test

import (
	"testing"

	"github.com/katalvlaran/lvml/matrix"
	"github.com/katalvlaran/lvml/optim"
)

func BenchmarkUpdater(b *testing.B) {
	const n = 1024
	g := make([]float64, n)
	for i := range g {
		g[i] = float64(i%7) - 3
	}
	grad := matrix.NewVectorFrom(g)

	for _, rule := range []optim.Rule{optim.Plain, optim.Momentum, optim.Adam, optim.AMSGrad} {
		rule := rule
		b.Run(rule.String(), func(b *testing.B) {
			u, err := optim.NewUpdater(optim.Config{Rule: rule, LearningRate: 1e-6})
			if err != nil {
				b.Fatal(err)
			}
			w := matrix.NewVectorFrom(make([]float64, n))
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err = u.Update(w, grad); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
