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

// UF samples n values from the "unreliable friend" distribution:
// the waiting time for a friend whose punctuality is itself random.
// Each draw is one exponential draw whose rate is a fresh uniform
// value. The rate goes through Exp's own validation, so the
// vanishingly unlikely zero draw fails rather than yielding an
// infinite wait.
func (s *Sampler) UF(n int) ([]float64, error) {
	n, err := param.Count(n)
	if err != nil {
		return nil, err
	}

	out := make([]float64, n)
	for i := range out {
		rate, err := s.next()
		if err != nil {
			return nil, err
		}
		wait, err := s.Exp(1, ExpParams{Rate: &rate})
		if err != nil {
			return nil, err
		}
		out[i] = wait[0]
	}
	return out, nil
}

// UF draws from the default crypto-backed sampler.
func UF(n int) ([]float64, error) {
	return std.UF(n)
}
