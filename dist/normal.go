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

// NormParams holds the optional parameters of the normal sampler.
type NormParams struct {
	// Mean of the distribution. Defaults to 0.
	Mean *float64
	// SD is the standard deviation, non-negative. Defaults to 1.
	SD *float64
}

// Norm samples n values from the normal distribution with the
// Marsaglia polar method: two uniforms are mapped onto the square
// [-1, 1)^2 and rejected until they land inside the unit circle,
// then one standard normal is read off the accepted point.
func (s *Sampler) Norm(n int, p NormParams) ([]float64, error) {
	n, err := param.Count(n)
	if err != nil {
		return nil, err
	}
	mean, err := param.Real(p.Mean, Float(0))
	if err != nil {
		return nil, err
	}
	sd, err := param.NonNegative(p.SD, Float(1))
	if err != nil {
		return nil, err
	}

	out := make([]float64, n)
	for i := range out {
		z, err := s.polar()
		if err != nil {
			return nil, err
		}
		out[i] = mean + sd*z
	}
	return out, nil
}

// polar draws one standard normal value.
func (s *Sampler) polar() (float64, error) {
	for {
		u1, err := s.next()
		if err != nil {
			return 0, err
		}
		u2, err := s.next()
		if err != nil {
			return 0, err
		}
		v1 := 2*u1 - 1
		v2 := 2*u2 - 1
		sum := v1*v1 + v2*v2
		if sum > 1 || sum == 0 {
			continue
		}
		return v1 * math.Sqrt(-2*math.Log(sum)/sum), nil
	}
}

// Norm draws from the default crypto-backed sampler.
func Norm(n int, p NormParams) ([]float64, error) {
	return std.Norm(n, p)
}
