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
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/montecarlo-project/gomc/internal"
)

// NormalDet samples deterministic (pseudo)random values from the
// Normal (Gaussian) probability distribution, centered on 0. It
// transforms a keyed uniform stream through the inverse cumulative
// distribution function, so the 32-byte key fully determines the
// sequence of samples.
type NormalDet struct {
	uniform Sampler
	dist    distuv.Normal
}

// NewNormalDet returns an instance of the NormalDet sampler.
// It assumes mean = 0 and accepts the standard deviation sigma
// along with a key for the pseudo-random generator. It returns
// an error if sigma is not strictly positive.
func NewNormalDet(sigma float64, key *[32]byte) (*NormalDet, error) {
	if sigma <= 0 {
		return nil, errors.Wrapf(internal.ErrNonPositiveSigma, "sigma = %v", sigma)
	}

	return &NormalDet{
		uniform: NewUniformDet(key),
		dist:    distuv.Normal{Mu: 0, Sigma: sigma},
	}, nil
}

// Sample returns the next value of the keyed stream, distributed
// as N(0, sigma^2).
func (s *NormalDet) Sample() (float64, error) {
	u, err := s.uniform.Sample()
	if err != nil {
		return 0, errors.Wrap(err, "error while sampling")
	}
	if u == 0 {
		// Quantile(0) is -Inf
		u = math.SmallestNonzeroFloat64
	}

	return s.dist.Quantile(u), nil
}
