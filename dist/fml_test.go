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

package dist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/variate-project/govariate/dist"
)

// alwaysDown forces every trial to step the walk toward zero.
func alwaysDown() (float64, error) { return 0, nil }

// alwaysUp forces every trial to step the walk away from zero.
func alwaysUp() (float64, error) { return 1, nil }

func TestFML_ImmediateSuccess(t *testing.T) {
	s := streamSampler(30)
	// From the default start of 1, a single downward step ends the
	// walk, so every variate is exactly one step.
	out, err := s.FML(20, dist.FMLParams{P: alwaysDown})
	require.NoError(t, err)
	for _, x := range out {
		assert.Equal(t, 1.0, x)
	}
}

func TestFML_CapGivesUp(t *testing.T) {
	s := streamSampler(31)
	trace := dist.Trace{}
	out, err := s.FML(3, dist.FMLParams{P: alwaysUp, Cap: dist.Int(1), Trace: trace})
	require.NoError(t, err)
	for _, x := range out {
		assert.Equal(t, float64(dist.Failed), x)
	}

	// One executed step per variate, keyed by variate and step.
	require.Len(t, trace, 3)
	for _, key := range []string{"0_0", "1_0", "2_0"} {
		step, ok := trace[key]
		require.True(t, ok, "missing trace entry %s", key)
		assert.Equal(t, "up", step.Outcome)
		assert.Equal(t, 2.0, step.Position)
		assert.Equal(t, 1.0, step.P)
	}
}

func TestFML_TraceRecordsWalk(t *testing.T) {
	s := streamSampler(32)
	trace := dist.Trace{}
	out, err := s.FML(1, dist.FMLParams{Loc: dist.Float(3), P: alwaysDown, Trace: trace})
	require.NoError(t, err)
	// Three downward steps from 3 reach zero.
	require.Equal(t, 3.0, out[0])
	require.Len(t, trace, 3)
	assert.Equal(t, 2.0, trace["0_0"].Position)
	assert.Equal(t, 1.0, trace["0_1"].Position)
	assert.Equal(t, 0.0, trace["0_2"].Position)
	for _, step := range trace {
		assert.Equal(t, "down", step.Outcome)
	}
}

func TestFML_Defaults(t *testing.T) {
	s := streamSampler(33)
	out, err := s.FML(50, dist.FMLParams{})
	require.NoError(t, err)
	require.Len(t, out, 50)
	// Every variate is a positive step count or the give-up mark.
	for _, x := range out {
		assert.True(t, x >= 1 || x == dist.Failed, "unexpected variate %v", x)
	}
}

func TestFML_CallerOwnsTrace(t *testing.T) {
	s := streamSampler(34)
	trace := dist.Trace{"keep": dist.Step{Position: 9}}
	_, err := s.FML(1, dist.FMLParams{P: alwaysDown, Trace: trace})
	require.NoError(t, err)
	// The sampler appends; it never clears what the caller put in.
	assert.Equal(t, 9.0, trace["keep"].Position)
}
