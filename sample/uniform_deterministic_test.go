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

	"github.com/montecarlo-project/gomc/sample"
)

func TestSample_UniformDet(t *testing.T) {
	key := [32]byte{1, 2, 3}
	otherKey := [32]byte{4, 5, 6}

	u1 := sample.NewUniformDet(&key)
	u2 := sample.NewUniformDet(&key)
	u3 := sample.NewUniformDet(&otherKey)

	same := true
	for i := 0; i < 1000; i++ {
		x1, err := u1.Sample()
		assert.NoError(t, err)
		x2, _ := u2.Sample()
		x3, _ := u3.Sample()

		assert.True(t, x1 >= 0, "sample below the unit interval")
		assert.True(t, x1 < 1, "sample above the unit interval")
		assert.Equal(t, x1, x2, "equal keys must give equal draws")
		if x1 != x3 {
			same = false
		}
	}
	assert.False(t, same, "different keys must give different draws")
}

func TestSample_UniformDetMean(t *testing.T) {
	key := [32]byte{7}
	u := sample.NewUniformDet(&key)

	vec := make([]float64, 10000)
	for i := 0; i < len(vec); i++ {
		vec[i], _ = u.Sample()
	}
	me := mean(vec)
	// me should be around 0.5
	assert.True(t, me < 0.52, "mean value of the uniform distribution is too big")
	assert.True(t, me > 0.48, "mean value of the uniform distribution is too small")
}
