// SPDX-License-Identifier: MIT

package solver_test

import (
	"math/rand"
	"os"
	"testing"

	"github.com/katalvlaran/imeth/matrix"
	"github.com/katalvlaran/imeth/solver"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// tol is the agreement tolerance between solutions.
const tol = 1e-9

// hide masks *Dense so solvers read through the Matrix interface.
type hide struct{ matrix.Matrix }

// solveFunc is the common signature of the three entry points.
type solveFunc func(matrix.Matrix, *matrix.Vector, ...solver.Option) (*matrix.Vector, error)

var methods = map[string]solveFunc{
	"gaussian":     solver.GaussianElimination,
	"gauss-jordan": solver.GaussJordan,
	"lu":           solver.LUDecomposition,
}

// fixture is one entry of testdata/systems.yaml.
type fixture struct {
	Name string      `yaml:"name"`
	A    [][]float64 `yaml:"a"`
	B    []float64   `yaml:"b"`
	X    []float64   `yaml:"x"`
	Err  string      `yaml:"err"`
}

func loadFixtures(t *testing.T) []fixture {
	t.Helper()
	raw, err := os.ReadFile("testdata/systems.yaml")
	require.NoError(t, err)

	var doc struct {
		Systems []fixture `yaml:"systems"`
	}
	require.NoError(t, yaml.Unmarshal(raw, &doc))
	require.NotEmpty(t, doc.Systems)

	return doc.Systems
}

func mustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// randomSystem builds a diagonally dominant n×n system, so elimination
// without row exchanges is stable.
func randomSystem(t testing.TB, n int, seed int64) (*matrix.Dense, *matrix.Vector) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	a, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	b, err := matrix.NewVector(n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := rng.Float64()*2 - 1
			if i == j {
				v += float64(n) + 1
			}
			require.NoError(t, a.Set(i, j, v))
		}
		require.NoError(t, b.Set(i, rng.Float64()*20-10))
	}

	return a, b
}

func requireVecClose(t *testing.T, want, got []float64, eps float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.InDelta(t, want[i], got[i], eps, "component %d", i)
	}
}
