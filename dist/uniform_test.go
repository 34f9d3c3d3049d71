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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/variate-project/govariate/dist"
	"github.com/variate-project/govariate/param"
)

func TestUnif(t *testing.T) {
	s := streamSampler(12)
	out, err := s.Unif(5000, dist.UnifParams{Min: dist.Float(2), Max: dist.Float(4)})
	require.NoError(t, err)
	for _, x := range out {
		assert.True(t, x >= 2 && x < 4)
	}
	assert.InDelta(t, 3, stat.Mean(out, nil), 0.05)
}

func TestUnif_Defaults(t *testing.T) {
	s := streamSampler(13)
	out, err := s.Unif(1000, dist.UnifParams{})
	require.NoError(t, err)
	for _, x := range out {
		assert.True(t, x >= 0 && x < 1)
	}
}

func TestUnif_EqualBounds(t *testing.T) {
	out, err := dist.Unif(10, dist.UnifParams{Min: dist.Float(5), Max: dist.Float(5)})
	require.NoError(t, err)
	require.Len(t, out, 10)
	for _, x := range out {
		assert.Equal(t, 5.0, x)
	}
}

func TestUnif_ReversedBounds(t *testing.T) {
	out, err := dist.Unif(5, dist.UnifParams{Min: dist.Float(10), Max: dist.Float(1)})
	assert.ErrorIs(t, err, dist.ErrRange)
	assert.Nil(t, out)
}

func TestUnif_InvalidBounds(t *testing.T) {
	s := streamSampler(14)
	_, err := s.Unif(5, dist.UnifParams{Max: dist.Float(math.Inf(1))})
	assert.ErrorIs(t, err, param.ErrReal)
}
