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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistogram_Ranking(t *testing.T) {
	h := Of("a", "b", "a", "b", "c", "b", "a", "b")
	assert.Equal(t, []string{"b", "a", "c"}, h.Ranking())
}

func TestHistogram_Ranking_majority(t *testing.T) {
	// x holds the strict majority, so it must lead regardless of ties
	// between y and z.
	h := Of("x", "y", "x", "z", "x")
	ranked := h.RankingWithCounts()
	assert.Len(t, ranked, 3)
	assert.Equal(t, Entry[string, uint64]{Label: "x", Count: 3}, ranked[0])
	assert.ElementsMatch(t,
		[]Entry[string, uint64]{{Label: "y", Count: 1}, {Label: "z", Count: 1}},
		ranked[1:])
}

func TestHistogram_RankingWithCounts(t *testing.T) {
	h := Of("a", "b", "a", "b", "c", "b", "a", "b")
	assert.Equal(t, []Entry[string, uint64]{
		{Label: "b", Count: 4},
		{Label: "a", Count: 3},
		{Label: "c", Count: 1},
	}, h.RankingWithCounts())
}

func TestHistogram_Ranking_tiesFirstSeen(t *testing.T) {
	// All counts equal: ranking must fall back to observation order.
	h := Of("m", "z", "a", "q")
	assert.Equal(t, []string{"m", "z", "a", "q"}, h.Ranking())
}

func TestHistogram_Ranking_floatCounts(t *testing.T) {
	h := New[string, float64]()
	for _, kv := range []struct {
		key    string
		amount float64
	}{
		{"a", 0.25}, {"b", 0.5}, {"a", 0.3}, {"c", 0.4}, {"b", 0.1},
	} {
		h.BumpBy(kv.key, kv.amount)
	}

	assert.Equal(t, []string{"b", "a", "c"}, h.Ranking())
}

func TestHistogram_Ranking_empty(t *testing.T) {
	h := New[string, uint64]()
	assert.Empty(t, h.Ranking())
	assert.Empty(t, h.RankingWithCounts())
}

func TestHistogram_Mode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		keys     []string
		want     string
		wantFull bool
	}{
		{
			"single winner",
			[]string{"a", "b", "a", "b", "c", "b", "a", "b"},
			"b",
			true,
		},
		{
			"tie goes to first seen",
			[]string{"y", "x", "x", "y"},
			"y",
			true,
		},
		{
			"single key",
			[]string{"only"},
			"only",
			true,
		},
		{
			"empty",
			nil,
			"",
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := Of(tt.keys...)
			got, ok := h.Mode()
			assert.Equal(t, tt.wantFull, ok)
			if tt.wantFull {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestHistogram_Mode_maximal(t *testing.T) {
	h := Of(0, 0, 0, 1, 1, 2, 2, 2, 2)
	mode, ok := h.Mode()
	assert.True(t, ok)
	for _, k := range h.Labels() {
		assert.GreaterOrEqual(t, h.Count(mode), h.Count(k))
	}
}
