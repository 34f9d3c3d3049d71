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

// ChisqParams holds the parameters of the chi-squared sampler.
type ChisqParams struct {
	// DF is the degrees of freedom, non-negative. Required.
	DF float64
	// NCP is the non-centrality parameter. Defaults to 0.
	NCP *float64
}

// Chisq samples n values from the chi-squared distribution: each
// draw starts at NCP and accumulates DF squared standard-normal
// draws. The inner draws go through Norm so its own validation
// applies.
func (s *Sampler) Chisq(n int, p ChisqParams) ([]float64, error) {
	n, err := param.Count(n)
	if err != nil {
		return nil, err
	}
	df, err := param.NonNegative(&p.DF, nil)
	if err != nil {
		return nil, err
	}
	ncp, err := param.Real(p.NCP, Float(0))
	if err != nil {
		return nil, err
	}

	out := make([]float64, n)
	for i := range out {
		sum := ncp
		for j := float64(0); j < df; j++ {
			z, err := s.Norm(1, NormParams{})
			if err != nil {
				return nil, err
			}
			sum += z[0] * z[0]
		}
		out[i] = sum
	}
	return out, nil
}

// Chisq draws from the default crypto-backed sampler.
func Chisq(n int, p ChisqParams) ([]float64, error) {
	return std.Chisq(n, p)
}
