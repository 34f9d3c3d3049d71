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
	"gonum.org/v1/gonum/stat"

	"github.com/variate-project/govariate/dist"
	"github.com/variate-project/govariate/param"
)

func TestExp(t *testing.T) {
	s := streamSampler(15)
	out, err := s.Exp(10000, dist.ExpParams{Rate: dist.Float(2)})
	require.NoError(t, err)
	assertAllFinite(t, out)
	for _, x := range out {
		assert.True(t, x >= 0)
	}
	// Mean of an exponential sample sits near 1/rate.
	assert.InDelta(t, 0.5, stat.Mean(out, nil), 0.05)
}

func TestExp_DefaultRate(t *testing.T) {
	s := streamSampler(16)
	out, err := s.Exp(10000, dist.ExpParams{})
	require.NoError(t, err)
	assert.InDelta(t, 1, stat.Mean(out, nil), 0.1)
}

func TestExp_InvalidRate(t *testing.T) {
	s := streamSampler(17)
	for _, rate := range []float64{0, -1} {
		_, err := s.Exp(10, dist.ExpParams{Rate: &rate})
		assert.ErrorIs(t, err, param.ErrPositive, "rate %v", rate)
	}
}
