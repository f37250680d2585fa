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

// Package montecarlo implements importance-sampling estimators of
// expectations under a target distribution, using samples drawn
// from a proposal distribution.
package montecarlo

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"

	"github.com/montecarlo-project/gomc/data"
	"github.com/montecarlo-project/gomc/dist"
	"github.com/montecarlo-project/gomc/internal"
	"github.com/montecarlo-project/gomc/sample"
)

// ImportanceParams represents configuration parameters for an
// Importance estimator instance.
type ImportanceParams struct {
	// Standard deviation of the zero-mean normal proposal
	// distribution.
	Sigma float64
	// Number of samples drawn from the proposal per estimate.
	N int
}

// Importance estimates the expectation of a function under the
// standard normal target distribution using samples from a
// zero-mean normal proposal. It offers a plain importance-sampling
// estimate, unbiased for any sample count, and a self-normalized
// one, biased for finite samples but usable when densities are only
// known up to a normalizing constant.
type Importance struct {
	Params   *ImportanceParams
	target   dist.Normal
	proposal dist.Normal
}

// NewImportance configures a new instance of the estimator.
// It accepts the standard deviation sigma of the proposal
// distribution and the number of samples n drawn per estimate.
//
// It returns an error in case the estimator could not be properly
// configured, i.e. if sigma is not strictly positive or n < 1.
func NewImportance(sigma float64, n int) (*Importance, error) {
	proposal, err := dist.NewNormal(0, sigma)
	if err != nil {
		return nil, errors.Wrap(err, "cannot configure proposal distribution")
	}
	if n < 1 {
		return nil, errors.Wrapf(internal.ErrInsufficientSamples, "n = %d", n)
	}

	return &Importance{
		Params: &ImportanceParams{
			Sigma: sigma,
			N:     n,
		},
		target:   dist.StdNormal,
		proposal: proposal,
	}, nil
}

// Sample draws n independent values from the proposal distribution.
// The seed fully determines the draw, so repeated calls with the
// same seed return identical vectors.
func (e *Importance) Sample(seed uint64) (data.Vector, error) {
	sampler, err := sample.NewNormalSampler(e.Params.Sigma, seed)
	if err != nil {
		return nil, errors.Wrap(err, "cannot configure sampler")
	}

	xs, err := data.NewRandomVector(e.Params.N, sampler)
	if err != nil {
		return nil, errors.Wrap(err, "error while sampling")
	}

	return xs, nil
}

// Weights returns the importance weights p(x_i)/q(x_i) correcting
// for the mismatch between the target density p and the proposal
// density q. Weights can range from near-zero to very large when
// sigma diverges from 1; that is the expected high-variance regime,
// not an error.
func (e *Importance) Weights(xs data.Vector) (data.Vector, error) {
	p := e.target.ProbVec(xs)
	q := e.proposal.ProbVec(xs)

	w, err := p.Div(q)
	if err != nil {
		return nil, errors.Wrap(err, "cannot compute importance weights")
	}

	return w, nil
}

// Estimate returns the plain importance-sampling estimate
// (1/n) * sum w_i * f_i for weights w and function values f.
// The estimate is unbiased for any n >= 1 as long as the proposal
// has support everywhere the target is nonzero.
func (e *Importance) Estimate(w, f data.Vector) (float64, error) {
	prod, err := w.Mul(f)
	if err != nil {
		return 0, errors.Wrap(err, "cannot combine weights and function values")
	}

	return prod.Mean(), nil
}

// EstimateSelfNormalized returns the self-normalized estimate
// sum(w_i * f_i) / sum(w_i). It is biased for finite n and
// asymptotically unbiased as n grows. It returns an error if the
// weights sum to zero, since the ratio is then undefined.
func (e *Importance) EstimateSelfNormalized(w, f data.Vector) (float64, error) {
	prod, err := w.Mul(f)
	if err != nil {
		return 0, errors.Wrap(err, "cannot combine weights and function values")
	}

	den := w.Sum()
	if den == 0 {
		return 0, internal.ErrDegenerateWeights
	}

	return prod.Sum() / den, nil
}

// EstimateVariance returns the variance of the plain
// importance-sampling estimate: the unbiased sample variance of the
// products w_i * f_i divided by the number of samples. It returns
// an error if fewer than 2 samples are given, since the sample
// variance is undefined below that.
func (e *Importance) EstimateVariance(w, f data.Vector) (float64, error) {
	if len(w) < 2 {
		return 0, errors.Wrapf(internal.ErrInsufficientSamples, "variance needs at least 2 samples, got %d", len(w))
	}

	prod, err := w.Mul(f)
	if err != nil {
		return 0, errors.Wrap(err, "cannot combine weights and function values")
	}

	return stat.Variance(prod, nil) / float64(len(prod)), nil
}

// StdError returns the standard error of the plain
// importance-sampling estimate, the square root of the value
// returned by EstimateVariance.
func (e *Importance) StdError(w, f data.Vector) (float64, error) {
	v, err := e.EstimateVariance(w, f)
	if err != nil {
		return 0, err
	}

	return math.Sqrt(v), nil
}
