package cohomology_test

import (
	"testing"

	"github.com/faiazparis/algebraic-moduli-sampler/cohomology"
	"github.com/faiazparis/algebraic-moduli-sampler/curve"
)

func BenchmarkTableP1(b *testing.B) {
	c := curve.NewP1()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := cohomology.Table(c, -20, 20); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCheckRiemannRoch(b *testing.B) {
	c := curve.NewHyperelliptic([]int64{1, 0, -2, 0, 1})
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := cohomology.CheckRiemannRoch(c, 3); err != nil {
			b.Fatal(err)
		}
	}
}
