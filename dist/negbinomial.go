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

// NBinomParams holds the parameters of the negative binomial
// sampler. Exactly one of P and Mu may be set; supplying both is an
// error, and supplying neither fails P's validation.
type NBinomParams struct {
	// Size is the target number of successes, a whole number of at
	// least 1. Defaults to 1.
	Size *float64
	// P is the per-trial success probability.
	P *float64
	// Mu is the mean parameterization: when set, the success
	// probability becomes size / (size + mu).
	Mu *float64
}

// NBinom samples n values from the negative binomial distribution:
// each draw counts the trials needed to reach Size successes, minus
// one.
func (s *Sampler) NBinom(n int, p NBinomParams) ([]float64, error) {
	n, err := param.Count(n)
	if err != nil {
		return nil, err
	}
	size, err := param.Size(p.Size, 1)
	if err != nil {
		return nil, err
	}
	if p.P != nil && p.Mu != nil {
		return nil, errors.Wrap(ErrConflictingParams, "p and mu may not both be given")
	}
	var prob float64
	if p.Mu != nil {
		mu, err := param.Real(p.Mu, nil)
		if err != nil {
			return nil, err
		}
		prob = size / (size + mu)
	} else {
		prob, err = param.Probability(p.P, nil)
		if err != nil {
			return nil, err
		}
	}

	out := make([]float64, n)
	for i := range out {
		draws := 0.0
		for successes := 0.0; successes < size; {
			u, err := s.next()
			if err != nil {
				return nil, err
			}
			draws++
			if u < prob {
				successes++
			}
		}
		out[i] = draws - 1
	}
	return out, nil
}

// NBinom draws from the default crypto-backed sampler.
func NBinom(n int, p NBinomParams) ([]float64, error) {
	return std.NBinom(n, p)
}
