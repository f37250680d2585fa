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

package sample

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/montecarlo-project/gomc/internal"
)

// NormalSampler samples random values from the Normal (Gaussian)
// probability distribution, centered on 0. The seed given at
// construction fully determines the sequence of samples, so two
// samplers built with the same sigma and seed produce identical
// draws.
type NormalSampler struct {
	dist distuv.Normal
}

// NewNormalSampler returns an instance of the NormalSampler.
// It assumes mean = 0 and accepts the standard deviation sigma
// along with a seed for the random source. It returns an error
// if sigma is not strictly positive.
func NewNormalSampler(sigma float64, seed uint64) (*NormalSampler, error) {
	if sigma <= 0 {
		return nil, errors.Wrapf(internal.ErrNonPositiveSigma, "sigma = %v", sigma)
	}

	return &NormalSampler{
		dist: distuv.Normal{
			Mu:    0,
			Sigma: sigma,
			Src:   rand.NewSource(seed),
		},
	}, nil
}

// Sample returns the next random value from N(0, sigma^2).
func (s *NormalSampler) Sample() (float64, error) {
	return s.dist.Rand(), nil
}
