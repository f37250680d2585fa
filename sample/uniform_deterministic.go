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
	"encoding/binary"

	"golang.org/x/crypto/salsa20"
)

// UniformDet samples deterministic (pseudo)random values from the
// interval [0, 1). The key determines the pseudo-random generator:
// two samplers with the same key produce identical sequences.
type UniformDet struct {
	key     *[32]byte
	counter uint64
}

// NewUniformDet returns an instance of the UniformDet sampler.
// It accepts a key for the pseudo-random generator.
func NewUniformDet(key *[32]byte) *UniformDet {
	return &UniformDet{
		key: key,
	}
}

// Sample returns the next value of the keyed stream, uniform on [0, 1).
func (u *UniformDet) Sample() (float64, error) {
	in := make([]byte, 8)
	out := make([]byte, 8)
	nonce := make([]byte, 8)
	binary.LittleEndian.PutUint64(nonce, u.counter)
	u.counter++

	salsa20.XORKeyStream(out, in, nonce, u.key)

	// keep the top 53 bits so the value fits a float64 mantissa
	bits := binary.LittleEndian.Uint64(out) >> 11
	return float64(bits) / float64(uint64(1)<<53), nil
}
