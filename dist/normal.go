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

// Package dist provides closed-form probability densities and the
// functions whose expectations the estimators approximate.
package dist

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/montecarlo-project/gomc/data"
	"github.com/montecarlo-project/gomc/internal"
)

// Normal is a normal (Gaussian) distribution with mean Mu and
// standard deviation Sigma. Density evaluation is pure and
// stateless.
type Normal struct {
	dist distuv.Normal
}

// StdNormal is the standard normal distribution N(0, 1).
var StdNormal = Normal{dist: distuv.Normal{Mu: 0, Sigma: 1}}

// NewNormal returns a Normal distribution instance with the given
// mean and standard deviation. It returns an error if sigma is not
// strictly positive, since the density is degenerate otherwise.
func NewNormal(mu, sigma float64) (Normal, error) {
	if sigma <= 0 {
		return Normal{}, errors.Wrapf(internal.ErrNonPositiveSigma, "sigma = %v", sigma)
	}

	return Normal{dist: distuv.Normal{Mu: mu, Sigma: sigma}}, nil
}

// Mu returns the mean of the distribution.
func (n Normal) Mu() float64 {
	return n.dist.Mu
}

// Sigma returns the standard deviation of the distribution.
func (n Normal) Sigma() float64 {
	return n.dist.Sigma
}

// Prob returns the value of the probability density function at x.
func (n Normal) Prob(x float64) float64 {
	return n.dist.Prob(x)
}

// ProbVec evaluates the probability density function at every
// element of xs. The result is returned in a new Vector.
func (n Normal) ProbVec(xs data.Vector) data.Vector {
	return xs.Apply(n.dist.Prob)
}
