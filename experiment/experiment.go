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

// Package experiment runs the importance-sampling comparison across
// a list of proposal scales and collects one result record per
// configuration.
package experiment

import (
	"github.com/pkg/errors"

	"github.com/montecarlo-project/gomc/dist"
	"github.com/montecarlo-project/gomc/internal"
	"github.com/montecarlo-project/gomc/montecarlo"
)

// TrueValue is the exact expectation of x^2 under the standard
// normal target, which both estimators approximate.
const TrueValue = 1.0

// Config represents configuration parameters for one experiment
// execution.
type Config struct {
	// Scales lists the proposal standard deviations; the
	// experiment runs one configuration per entry, in order.
	Scales []float64
	// Samples is the number of draws from the proposal per
	// configuration.
	Samples int
	// Seed determines the random draws of all configurations;
	// runs with equal configurations are identical.
	Seed uint64
}

// DefaultConfig returns the configuration of the reference
// experiment: proposal scales 0.5, 1, 2 and 5 with 10000 samples
// each.
func DefaultConfig() Config {
	return Config{
		Scales:  []float64{0.5, 1.0, 2.0, 5.0},
		Samples: 10000,
		Seed:    1,
	}
}

// Validate checks the configuration up front. It returns an error
// if no scales are given, if any scale is not strictly positive, or
// if the sample count is too small for the variance computation.
func (c Config) Validate() error {
	if len(c.Scales) == 0 {
		return errors.New("at least one proposal scale is required")
	}
	for _, s := range c.Scales {
		if s <= 0 {
			return errors.Wrapf(internal.ErrNonPositiveSigma, "scale = %v", s)
		}
	}
	if c.Samples < 2 {
		return errors.Wrapf(internal.ErrInsufficientSamples, "samples = %d", c.Samples)
	}

	return nil
}

// Record holds the results of one proposal configuration. Records
// are created once and never mutated.
type Record struct {
	// SigmaSq is the variance of the proposal distribution.
	SigmaSq float64
	// Estimate is the plain importance-sampling estimate.
	Estimate float64
	// SelfNormalized is the self-normalized (biased) estimate.
	SelfNormalized float64
	// Variance is the variance of the plain estimate.
	Variance float64
	// StdError is the standard error of the plain estimate.
	StdError float64
}

// Run executes the experiment described by cfg: for every proposal
// scale it draws samples, computes importance weights, evaluates
// both estimators along with the variance and standard error of the
// plain one, and collects a record. Records are returned in the
// order of cfg.Scales. Configurations are independent of one
// another; each gets its own seed derived from cfg.Seed.
func Run(cfg Config) ([]Record, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	records := make([]Record, 0, len(cfg.Scales))
	for i, sigma := range cfg.Scales {
		estimator, err := montecarlo.NewImportance(sigma, cfg.Samples)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot configure estimator for scale %v", sigma)
		}

		xs, err := estimator.Sample(cfg.Seed + uint64(i))
		if err != nil {
			return nil, errors.Wrapf(err, "error while sampling for scale %v", sigma)
		}

		w, err := estimator.Weights(xs)
		if err != nil {
			return nil, errors.Wrapf(err, "error computing weights for scale %v", sigma)
		}
		f := dist.SquareVec(xs)

		est, err := estimator.Estimate(w, f)
		if err != nil {
			return nil, errors.Wrapf(err, "error estimating for scale %v", sigma)
		}
		selfNorm, err := estimator.EstimateSelfNormalized(w, f)
		if err != nil {
			return nil, errors.Wrapf(err, "error estimating for scale %v", sigma)
		}
		variance, err := estimator.EstimateVariance(w, f)
		if err != nil {
			return nil, errors.Wrapf(err, "error computing variance for scale %v", sigma)
		}
		stdErr, err := estimator.StdError(w, f)
		if err != nil {
			return nil, errors.Wrapf(err, "error computing standard error for scale %v", sigma)
		}

		records = append(records, Record{
			SigmaSq:        sigma * sigma,
			Estimate:       est,
			SelfNormalized: selfNorm,
			Variance:       variance,
			StdError:       stdErr,
		})
	}

	return records, nil
}
