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

// poisTrials is the number of Bernoulli trials approximating one
// Poisson draw for large lambda.
const poisTrials = 10000

// PoisParams holds the parameters of the Poisson sampler.
type PoisParams struct {
	// Lambda is the expected number of events, strictly positive.
	// Required.
	Lambda float64
}

// Pois samples n values from the Poisson distribution. For lambda
// below 30 it uses Knuth's product-of-uniforms algorithm; above
// that the product underflows quickly, so each draw is instead
// approximated by 10,000 Bernoulli trials with success probability
// lambda/10000.
func (s *Sampler) Pois(n int, p PoisParams) ([]float64, error) {
	n, err := param.Count(n)
	if err != nil {
		return nil, err
	}
	lambda, err := param.Positive(&p.Lambda, nil)
	if err != nil {
		return nil, err
	}

	out := make([]float64, n)
	if lambda < 30 {
		limit := math.Exp(-lambda)
		for i := range out {
			k := -1.0
			for prod := 1.0; prod > limit; k++ {
				u, err := s.next()
				if err != nil {
					return nil, err
				}
				prod *= u
			}
			out[i] = k
		}
		return out, nil
	}

	prob := lambda / poisTrials
	for i := range out {
		hits := 0.0
		for j := 0; j < poisTrials; j++ {
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

// Pois draws from the default crypto-backed sampler.
func Pois(n int, p PoisParams) ([]float64, error) {
	return std.Pois(n, p)
}
