package solver_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/imeth/matrix"
)

var sinkV *matrix.Vector

func BenchmarkSolvers(b *testing.B) {
	for _, n := range []int{16, 64, 128} {
		a, rhs := randomSystem(b, n, int64(n))
		for name, solve := range methods {
			b.Run(fmt.Sprintf("%s/n=%d", name, n), func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					x, err := solve(a, rhs)
					if err != nil {
						b.Fatal(err)
					}
					sinkV = x
				}
			})
		}
	}
}
