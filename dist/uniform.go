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

	"github.com/variate-project/govariate/param"
)

// UnifParams holds the optional parameters of the uniform sampler.
type UnifParams struct {
	// Min is the inclusive lower bound. Defaults to 0.
	Min *float64
	// Max is the exclusive upper bound. Defaults to 1.
	Max *float64
}

// Unif samples n values uniformly from [Min, Max). Equal bounds are
// allowed and yield n copies of the bound; Min above Max is an
// error.
func (s *Sampler) Unif(n int, p UnifParams) ([]float64, error) {
	n, err := param.Count(n)
	if err != nil {
		return nil, err
	}
	min, err := param.Real(p.Min, Float(0))
	if err != nil {
		return nil, err
	}
	max, err := param.Real(p.Max, Float(1))
	if err != nil {
		return nil, err
	}
	if min > max {
		return nil, errors.Wrap(ErrRange, "min is greater than max")
	}

	out := make([]float64, n)
	for i := range out {
		u, err := s.next()
		if err != nil {
			return nil, err
		}
		out[i] = min + u*(max-min)
	}
	return out, nil
}

// Unif draws from the default crypto-backed sampler.
func Unif(n int, p UnifParams) ([]float64, error) {
	return std.Unif(n, p)
}
