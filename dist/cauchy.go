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

// CauchyParams holds the optional parameters of the Cauchy sampler.
type CauchyParams struct {
	// Loc is the location of the distribution's peak. Defaults
	// to 0.
	Loc *float64
	// Scale is the half-width at half-maximum, non-negative.
	// Defaults to 1.
	Scale *float64
}

// Cauchy samples n values from the Cauchy distribution by inverting
// its CDF: scale * tan(pi*(u - 0.5)) + loc.
func (s *Sampler) Cauchy(n int, p CauchyParams) ([]float64, error) {
	n, err := param.Count(n)
	if err != nil {
		return nil, err
	}
	loc, err := param.Real(p.Loc, Float(0))
	if err != nil {
		return nil, err
	}
	scale, err := param.NonNegative(p.Scale, Float(1))
	if err != nil {
		return nil, err
	}

	out := make([]float64, n)
	for i := range out {
		u, err := s.next()
		if err != nil {
			return nil, err
		}
		out[i] = scale*math.Tan(math.Pi*(u-0.5)) + loc
	}
	return out, nil
}

// Cauchy draws from the default crypto-backed sampler.
func Cauchy(n int, p CauchyParams) ([]float64, error) {
	return std.Cauchy(n, p)
}
