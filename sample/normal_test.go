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

package sample_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/montecarlo-project/gomc/internal"
	"github.com/montecarlo-project/gomc/sample"
)

func mean(vec []float64) float64 {
	sum := 0.0
	for i := 0; i < len(vec); i++ {
		sum += vec[i]
	}
	return sum / float64(len(vec))
}

func variance(vec []float64) float64 {
	sum := 0.0
	for i := 0; i < len(vec); i++ {
		sum += vec[i] * vec[i]
	}
	return sum / float64(len(vec))
}

func TestSample_Normal(t *testing.T) {
	c, err := sample.NewNormalSampler(10, 42)
	require.NoError(t, err)

	vec := make([]float64, 10000)
	for i := 0; i < len(vec); i++ {
		vec[i], err = c.Sample()
		require.NoError(t, err)
	}
	me := mean(vec)
	v := variance(vec)
	// me should be around 0 and v should be around 100
	assert.True(t, me < 0.5, "mean value of the normal distribution is too big")
	assert.True(t, me > -0.5, "mean value of the normal distribution is too small")
	assert.True(t, v < 110, "variance of the normal distribution is too big")
	assert.True(t, v > 90, "variance of the normal distribution is too small")
}

func TestSample_NormalSeeded(t *testing.T) {
	c1, err := sample.NewNormalSampler(2, 1)
	require.NoError(t, err)
	c2, err := sample.NewNormalSampler(2, 1)
	require.NoError(t, err)
	c3, err := sample.NewNormalSampler(2, 2)
	require.NoError(t, err)

	same := true
	for i := 0; i < 100; i++ {
		x1, _ := c1.Sample()
		x2, _ := c2.Sample()
		x3, _ := c3.Sample()
		assert.Equal(t, x1, x2, "equal seeds must give equal draws")
		if x1 != x3 {
			same = false
		}
	}
	assert.False(t, same, "different seeds must give different draws")
}

func TestSample_NormalInvalidSigma(t *testing.T) {
	var tests = []struct {
		name  string
		sigma float64
	}{
		{name: "zero sigma", sigma: 0},
		{name: "negative sigma", sigma: -1.5},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := sample.NewNormalSampler(test.sigma, 0)
			assert.ErrorIs(t, err, internal.ErrNonPositiveSigma)
		})
	}
}
