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
	"github.com/pkg/errors"

	"github.com/variate-project/govariate/entropy"
)

// Cross-parameter consistency errors shared by the samplers.
var (
	// ErrConflictingParams is returned when mutually exclusive
	// parameters are both supplied.
	ErrConflictingParams = errors.New("conflicting parameters")
	// ErrRange is returned when a lower bound exceeds an upper
	// bound.
	ErrRange = errors.New("lower bound exceeds upper bound")
)

// Sampler draws variates from a single entropy source. Calls on a
// Sampler are independent and keep no state between them, so a
// Sampler may be shared freely as long as its source allows it.
type Sampler struct {
	src entropy.Source
}

// New returns a Sampler drawing from the given source. A nil source
// selects a crypto/rand backed entropy.Device.
func New(src entropy.Source) *Sampler {
	if src == nil {
		src = entropy.NewDevice()
	}
	return &Sampler{src: src}
}

// next draws one uniform value from [0, 1) at default resolution.
func (s *Sampler) next() (float64, error) {
	return s.src.Float(entropy.DefaultByteLen)
}

// std backs the package-level sampling functions.
var std = New(nil)

// Float returns a pointer to v, for filling optional params fields
// inline.
func Float(v float64) *float64 {
	return &v
}

// Int returns a pointer to v, for filling optional params fields
// inline.
func Int(v int) *int {
	return &v
}
