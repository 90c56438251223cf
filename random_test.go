// Copyright 2024-2025 CardinalHQ, Inc
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package histogram

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistogram_PickRandomKey_empty(t *testing.T) {
	h := New[string, uint64]()
	_, err := h.PickRandomKey()
	assert.ErrorIs(t, err, ErrEmptyHistogram)
}

func TestHistogram_PickRandomKey_fixedDraws(t *testing.T) {
	t.Parallel()

	// Counts are a:1, b:3 in first-seen order, so the cumulative
	// boundaries over a total of 4 are a=[0,1) and b=[1,4).
	tests := []struct {
		name string
		draw float64
		want string
	}{
		{"draw at zero", 0.0, "a"},
		{"draw below first boundary", 0.2, "a"},
		{"draw just past first boundary", 0.25, "b"},
		{"draw near one", 0.999, "b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := New[string, uint64](WithRandFunc(func() float64 { return tt.draw }))
			h.BumpBy("a", 1)
			h.BumpBy("b", 3)

			got, err := h.PickRandomKey()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHistogram_PickRandomKey_weighting(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	h := New[string, uint64](WithRandFunc(rng.Float64))
	h.BumpBy("a", 1)
	h.BumpBy("b", 3)

	const trials = 10000
	picked := New[string, uint64]()
	for range trials {
		k, err := h.PickRandomKey()
		require.NoError(t, err)
		picked.Bump(k)
	}

	// b carries 3/4 of the weight; the bounds are loose enough that a
	// seeded source cannot flake.
	assert.Equal(t, uint64(trials), picked.TotalCount())
	assert.Greater(t, picked.Count("b"), uint64(7000))
	assert.Less(t, picked.Count("b"), uint64(8000))
}

func TestHistogram_PickRandomKey_singleKey(t *testing.T) {
	h := New[string, float64]()
	h.BumpBy("only", 0.5)

	for range 10 {
		k, err := h.PickRandomKey()
		require.NoError(t, err)
		assert.Equal(t, "only", k)
	}
}
