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

package data

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"github.com/montecarlo-project/gomc/internal"
	"github.com/montecarlo-project/gomc/sample"
)

// Vector wraps a slice of float64 elements.
type Vector []float64

// NewVector returns a new Vector instance.
func NewVector(coordinates []float64) Vector {
	return Vector(coordinates)
}

// NewRandomVector returns a new Vector instance
// with random elements sampled by the provided sample.Sampler.
// Returns an error in case of sampling failure.
func NewRandomVector(len int, sampler sample.Sampler) (Vector, error) {
	vec := make([]float64, len)
	var err error

	for i := 0; i < len; i++ {
		vec[i], err = sampler.Sample()
		if err != nil {
			return nil, err
		}
	}

	return NewVector(vec), nil
}

// NewConstantVector returns a new Vector instance
// with all elements set to constant c.
func NewConstantVector(len int, c float64) Vector {
	vec := make([]float64, len)
	for i := 0; i < len; i++ {
		vec[i] = c
	}

	return vec
}

// Copy creates a new vector with the same values
// of the entries.
func (v Vector) Copy() Vector {
	newVec := make(Vector, len(v))
	copy(newVec, v)

	return newVec
}

// Apply applies function f to all elements of vector v.
// The result is returned in a new Vector.
func (v Vector) Apply(f func(float64) float64) Vector {
	res := make(Vector, len(v))
	for i, vi := range v {
		res[i] = f(vi)
	}

	return res
}

// MulScalar multiplies vector v by a given scalar x.
// The result is returned in a new Vector.
func (v Vector) MulScalar(x float64) Vector {
	res := make(Vector, len(v))
	for i, vi := range v {
		res[i] = x * vi
	}

	return res
}

// Mul multiplies vectors v and other elementwise.
// The result is returned in a new Vector. It returns an
// error if the vectors are not of the same length.
func (v Vector) Mul(other Vector) (Vector, error) {
	if len(v) != len(other) {
		return nil, errors.Wrapf(internal.ErrDimensionMismatch, "%d != %d", len(v), len(other))
	}

	res := make(Vector, len(v))
	for i, vi := range v {
		res[i] = vi * other[i]
	}

	return res, nil
}

// Div divides vectors v and other elementwise.
// The result is returned in a new Vector. It returns an
// error if the vectors are not of the same length.
func (v Vector) Div(other Vector) (Vector, error) {
	if len(v) != len(other) {
		return nil, errors.Wrapf(internal.ErrDimensionMismatch, "%d != %d", len(v), len(other))
	}

	res := make(Vector, len(v))
	for i, vi := range v {
		res[i] = vi / other[i]
	}

	return res, nil
}

// Sum returns the sum of all elements of vector v.
func (v Vector) Sum() float64 {
	return floats.Sum(v)
}

// Mean returns the arithmetic mean of the elements of vector v.
func (v Vector) Mean() float64 {
	return floats.Sum(v) / float64(len(v))
}

// Dot calculates the dot product (inner product) of vectors v and other.
// It returns an error if the vectors are not of the same length.
func (v Vector) Dot(other Vector) (float64, error) {
	if len(v) != len(other) {
		return 0, errors.Wrapf(internal.ErrDimensionMismatch, "%d != %d", len(v), len(other))
	}

	return floats.Dot(v, other), nil
}

// CheckFinite checks whether all vector elements are finite numbers.
// It returns error if at least one element is NaN or infinite.
func (v Vector) CheckFinite() error {
	for i, vi := range v {
		if math.IsNaN(vi) || math.IsInf(vi, 0) {
			return fmt.Errorf("element at index %d is not finite", i)
		}
	}

	return nil
}
