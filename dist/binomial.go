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
	"github.com/variate-project/govariate/param"
)

// BinomParams holds the optional parameters of the binomial
// sampler.
type BinomParams struct {
	// Size is the number of Bernoulli trials per draw, a
	// non-negative whole number. Defaults to 1.
	Size *int
	// P is the success probability of each trial. Defaults to 0.5.
	P *float64
}

// Binom samples n values from the binomial distribution: each draw
// is the number of successes among Size independent trials with
// success probability P.
func (s *Sampler) Binom(n int, p BinomParams) ([]float64, error) {
	n, err := param.Count(n)
	if err != nil {
		return nil, err
	}
	size, err := param.NonNegativeInt(intToFloat(p.Size), Float(1))
	if err != nil {
		return nil, err
	}
	prob, err := param.Probability(p.P, Float(0.5))
	if err != nil {
		return nil, err
	}

	out := make([]float64, n)
	for i := range out {
		hits := 0.0
		for j := float64(0); j < size; j++ {
			u, err := s.next()
			if err != nil {
				return nil, err
			}
			if u < prob {
				hits++
			}
		}
		out[i] = hits
	}
	return out, nil
}

// Binom draws from the default crypto-backed sampler.
func Binom(n int, p BinomParams) ([]float64, error) {
	return std.Binom(n, p)
}

// intToFloat adapts an optional int field to the validator's
// optional float form.
func intToFloat(v *int) *float64 {
	if v == nil {
		return nil
	}
	f := float64(*v)
	return &f
}
