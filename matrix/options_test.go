// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsDefaults(t *testing.T) {
	o := matrix.NewMatrixOptions()
	assert.Equal(t, matrix.DefaultValidateNaNInf, o.ValidateNaNInf())
	assert.False(t, o.ValidateNaNInf())
}

func TestOptionsLastWins(t *testing.T) {
	o := matrix.NewMatrixOptions(matrix.WithValidateNaNInf(), nil, matrix.WithNoValidateNaNInf())
	assert.False(t, o.ValidateNaNInf())

	o = matrix.NewMatrixOptions(matrix.WithNoValidateNaNInf(), matrix.WithValidateNaNInf())
	assert.True(t, o.ValidateNaNInf())
}

// TestDefaultPolicyAcceptsNonFinite verifies IEEE values pass by default.
func TestDefaultPolicyAcceptsNonFinite(t *testing.T) {
	m := MustDense(t, 1, 2)
	require.NoError(t, m.Set(0, 0, math.NaN()))
	require.NoError(t, m.Set(0, 1, math.Inf(-1)))

	_, err := matrix.NewDenseFromGrid([][]float64{{math.Inf(1)}})
	require.NoError(t, err)
}

func TestValidateNaNInfPolicy(t *testing.T) {
	bad := []float64{math.NaN(), math.Inf(1), math.Inf(-1)}

	t.Run("Set", func(t *testing.T) {
		m := MustDense(t, 1, 1, matrix.WithValidateNaNInf())
		for _, v := range bad {
			require.ErrorIs(t, m.Set(0, 0, v), matrix.ErrNaNInf)
			require.Equal(t, 0.0, MustAt(t, m, 0, 0), "cell untouched")
		}
	})

	t.Run("grid", func(t *testing.T) {
		for _, v := range bad {
			m, err := matrix.NewDenseFromGrid([][]float64{{1, 2}, {3, v}}, matrix.WithValidateNaNInf())
			require.ErrorIs(t, err, matrix.ErrNaNInf)
			require.Nil(t, m)
		}
	})

	t.Run("vectors", func(t *testing.T) {
		v1, _ := vector.NewRow(1, 2)
		v2, _ := vector.NewRow(math.NaN(), 2)
		_, err := matrix.NewDenseFromVectors([]*vector.Vector{v1, v2}, matrix.WithValidateNaNInf())
		require.ErrorIs(t, err, matrix.ErrNaNInf)
	})

	t.Run("carried by Clone and Transpose", func(t *testing.T) {
		m := MustDense(t, 2, 1, matrix.WithValidateNaNInf())
		require.ErrorIs(t, m.Clone().Set(0, 0, math.NaN()), matrix.ErrNaNInf)

		tr, err := matrix.Transpose(m)
		require.NoError(t, err)
		require.ErrorIs(t, tr.Set(0, 1, math.Inf(1)), matrix.ErrNaNInf)
	})

	t.Run("Add inherits first operand", func(t *testing.T) {
		strict := MustDense(t, 1, 1, matrix.WithValidateNaNInf())
		loose := MustDense(t, 1, 1)

		sum, err := matrix.Add(strict, loose)
		require.NoError(t, err)
		require.ErrorIs(t, sum.Set(0, 0, math.NaN()), matrix.ErrNaNInf)

		sum, err = matrix.Add(loose, strict)
		require.NoError(t, err)
		require.NoError(t, sum.Set(0, 0, math.NaN()))
	})
}
