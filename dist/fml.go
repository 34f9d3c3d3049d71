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
	"strconv"

	"github.com/variate-project/govariate/param"
)

// Failed marks a random walk that did not reach zero within its
// step cap.
const Failed = -1

// Step is one logged step of the FML random walk.
type Step struct {
	// Position of the walk after the step.
	Position float64
	// P is the walk's upward-transition probability for this
	// variate.
	P float64
	// Outcome is "up" or "down".
	Outcome string
}

// Trace collects the steps of an FML call, keyed by
// "{variate index}_{step index}". The sampler only appends entries;
// the map is owned by the caller and must not be read while a call
// is in flight.
type Trace map[string]Step

// FMLParams holds the optional parameters of the FML sampler.
type FMLParams struct {
	// Loc is the walk's starting position. Defaults to 1.
	Loc *float64
	// P produces the walk's transition probability. It is invoked
	// once per variate, not once per step. Defaults to one entropy
	// draw.
	P func() (float64, error)
	// Cap is the maximum number of steps per variate before the
	// walk gives up, non-negative. Defaults to 10000.
	Cap *int
	// Trace, when non-nil, receives one Step per executed walk
	// step.
	Trace Trace
}

// FML samples n values from a capped random walk: starting at Loc,
// each step moves up when a fresh uniform falls below the variate's
// transition probability and down otherwise. The variate is the
// number of steps taken to reach a position of at most 0, or Failed
// when Cap steps pass first.
func (s *Sampler) FML(n int, p FMLParams) ([]float64, error) {
	n, err := param.Count(n)
	if err != nil {
		return nil, err
	}
	loc, err := param.Real(p.Loc, Float(1))
	if err != nil {
		return nil, err
	}
	capF, err := param.NonNegativeInt(intToFloat(p.Cap), Float(10000))
	if err != nil {
		return nil, err
	}
	capSteps := int(capF)
	pFn := p.P
	if pFn == nil {
		pFn = s.next
	}

	out := make([]float64, n)
	for i := range out {
		currP, err := pFn()
		if err != nil {
			return nil, err
		}
		pos := loc
		steps := 0
		for {
			trial, err := s.next()
			if err != nil {
				return nil, err
			}
			outcome := "down"
			if trial < currP {
				pos++
				outcome = "up"
			} else {
				pos--
			}
			if p.Trace != nil {
				key := strconv.Itoa(i) + "_" + strconv.Itoa(steps)
				p.Trace[key] = Step{Position: pos, P: currP, Outcome: outcome}
			}
			steps++
			if pos <= 0 {
				out[i] = float64(steps)
				break
			}
			if steps >= capSteps {
				out[i] = Failed
				break
			}
		}
	}
	return out, nil
}

// FML draws from the default crypto-backed sampler.
func FML(n int, p FMLParams) ([]float64, error) {
	return std.FML(n, p)
}
