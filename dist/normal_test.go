/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package dist_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/montecarlo-project/gomc/data"
	"github.com/montecarlo-project/gomc/dist"
	"github.com/montecarlo-project/gomc/internal"
)

func TestNormal_Prob(t *testing.T) {
	// density of N(0, 1) at the origin is 1/sqrt(2*pi)
	assert.InDelta(t, 1/math.Sqrt(2*math.Pi), dist.StdNormal.Prob(0), 1e-15)
	assert.Equal(t, dist.StdNormal.Prob(1.3), dist.StdNormal.Prob(-1.3), "density must be symmetric")

	n, err := dist.NewNormal(0, 2)
	require.NoError(t, err)
	assert.InDelta(t, 1/(math.Sqrt(2*math.Pi)*2), n.Prob(0), 1e-15)
	assert.Equal(t, 0.0, n.Mu())
	assert.Equal(t, 2.0, n.Sigma())
}

func TestNormal_ProbVec(t *testing.T) {
	xs := data.NewVector([]float64{-2, -1, 0, 1, 2})
	ps := dist.StdNormal.ProbVec(xs)

	require.Equal(t, len(xs), len(ps))
	for i, x := range xs {
		assert.Equal(t, dist.StdNormal.Prob(x), ps[i])
	}
}

func TestNormal_InvalidSigma(t *testing.T) {
	var tests = []struct {
		name  string
		sigma float64
	}{
		{name: "zero sigma", sigma: 0},
		{name: "negative sigma", sigma: -0.5},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := dist.NewNormal(0, test.sigma)
			assert.ErrorIs(t, err, internal.ErrNonPositiveSigma)
		})
	}
}

func TestSquare(t *testing.T) {
	assert.Equal(t, 4.0, dist.Square(-2))
	assert.Equal(t, 0.0, dist.Square(0))

	xs := data.NewVector([]float64{-3, 0.5})
	assert.Equal(t, data.Vector{9, 0.25}, dist.SquareVec(xs))
}
