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

package dist

import (
	"github.com/montecarlo-project/gomc/data"
)

// Square returns x^2. Its expectation under the standard normal
// distribution equals 1, which the estimators approximate.
func Square(x float64) float64 {
	return x * x
}

// SquareVec evaluates Square at every element of xs.
// The result is returned in a new Vector.
func SquareVec(xs data.Vector) data.Vector {
	return xs.Apply(Square)
}
