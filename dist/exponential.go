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
	"math"

	"github.com/variate-project/govariate/param"
)

// ExpParams holds the optional parameters of the exponential
// sampler.
type ExpParams struct {
	// Rate is the rate parameter, strictly positive. Defaults
	// to 1.
	Rate *float64
}

// Exp samples n values from the exponential distribution by
// inverting its CDF: -ln(u) / rate.
func (s *Sampler) Exp(n int, p ExpParams) ([]float64, error) {
	n, err := param.Count(n)
	if err != nil {
		return nil, err
	}
	rate, err := param.Positive(p.Rate, Float(1))
	if err != nil {
		return nil, err
	}

	out := make([]float64, n)
	for i := range out {
		u, err := s.next()
		if err != nil {
			return nil, err
		}
		out[i] = -math.Log(u) / rate
	}
	return out, nil
}

// Exp draws from the default crypto-backed sampler.
func Exp(n int, p ExpParams) ([]float64, error) {
	return std.Exp(n, p)
}
