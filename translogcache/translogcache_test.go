package translogcache_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nileshpatra/gubbins/ratematrix"
	"github.com/nileshpatra/gubbins/translogcache"
)

func TestCompute_ZeroBranchIsLiteralIdentity(t *testing.T) {
	q, err := ratematrix.Build(ratematrix.JCFrequencies(), ratematrix.JCRates())
	require.NoError(t, err)

	p, err := translogcache.Compute(q, ratematrix.JCFrequencies(), 0)
	require.NoError(t, err)

	for i := 0; i < ratematrix.NumBases; i++ {
		for j := 0; j < ratematrix.NumBases; j++ {
			v, err := p.At(i, j)
			require.NoError(t, err)
			if i == j {
				require.Equal(t, 1.0, v)
			} else {
				require.Equal(t, 0.0, v)
			}
		}
	}
}

func TestCompute_JCRowsSumToOneInProbabilitySpace(t *testing.T) {
	q, err := ratematrix.Build(ratematrix.JCFrequencies(), ratematrix.JCRates())
	require.NoError(t, err)

	logP, err := translogcache.Compute(q, ratematrix.JCFrequencies(), 0.1)
	require.NoError(t, err)

	for i := 0; i < ratematrix.NumBases; i++ {
		sum := 0.0
		for j := 0; j < ratematrix.NumBases; j++ {
			v, err := logP.At(i, j)
			require.NoError(t, err)
			sum += math.Exp(v)
		}
		require.InDelta(t, 1.0, sum, 1e-6)
	}
}

func TestCompute_DiagonalDominatesForShortBranch(t *testing.T) {
	q, err := ratematrix.Build(ratematrix.JCFrequencies(), ratematrix.JCRates())
	require.NoError(t, err)

	logP, err := translogcache.Compute(q, ratematrix.JCFrequencies(), 1e-4)
	require.NoError(t, err)

	for i := 0; i < ratematrix.NumBases; i++ {
		diag, err := logP.At(i, i)
		require.NoError(t, err)
		require.InDelta(t, 0, diag, 0.01)
		for j := 0; j < ratematrix.NumBases; j++ {
			if j == i {
				continue
			}
			off, err := logP.At(i, j)
			require.NoError(t, err)
			require.Less(t, off, diag)
		}
	}
}

func TestCompute_NonUniformFrequenciesIsReversible(t *testing.T) {
	f := ratematrix.Frequencies{0.1, 0.2, 0.4, 0.3}
	r := ratematrix.JCRates()
	q, err := ratematrix.Build(f, r)
	require.NoError(t, err)

	logP, err := translogcache.Compute(q, f, 0.2)
	require.NoError(t, err)

	// This package's Q convention (Q[i][j] = pi[i]*rho(i,j)) is reversible
	// w.r.t. a stationary measure proportional to 1/pi, giving the
	// detailed-balance relation pi[j]*P_ij(t) == pi[i]*P_ji(t).
	for i := 0; i < ratematrix.NumBases; i++ {
		for j := 0; j < ratematrix.NumBases; j++ {
			pij, err := logP.At(i, j)
			require.NoError(t, err)
			pji, err := logP.At(j, i)
			require.NoError(t, err)
			lhs := f[j] * math.Exp(pij)
			rhs := f[i] * math.Exp(pji)
			require.InDelta(t, lhs, rhs, 1e-6)
		}
	}
}

func TestCompute_RejectsZeroFrequency(t *testing.T) {
	f := ratematrix.Frequencies{0, 0.4, 0.3, 0.3}
	q, err := ratematrix.Build(ratematrix.JCFrequencies(), ratematrix.JCRates())
	require.NoError(t, err)

	_, err = translogcache.Compute(q, f, 0.1)
	require.ErrorIs(t, err, translogcache.ErrNumericFailure)
}
