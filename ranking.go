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
	"cmp"
	"slices"
)

// Entry is one (key, count) pair in a ranking.
type Entry[K comparable, C Counter] struct {
	Label K
	Count C
}

// Ranking returns every present key exactly once, ordered by descending
// count.  Keys with equal counts appear in first-observed order.
func (h *Histogram[K, C]) Ranking() []K {
	ranked := h.RankingWithCounts()
	keys := make([]K, 0, len(ranked))
	for _, e := range ranked {
		keys = append(keys, e.Label)
	}
	return keys
}

// RankingWithCounts is Ranking with each key paired with its count.
func (h *Histogram[K, C]) RankingWithCounts() []Entry[K, C] {
	ranked := make([]Entry[K, C], 0, len(h.counts))
	for _, k := range h.keysBySeq() {
		ranked = append(ranked, Entry[K, C]{Label: k, Count: h.counts[k].count})
	}
	// keysBySeq already settled the ties; a stable sort on count alone
	// keeps the first-observed order among equals.
	slices.SortStableFunc(ranked, func(a, b Entry[K, C]) int {
		return cmp.Compare(b.Count, a.Count)
	})
	return ranked
}

// Mode returns the key with the largest count.  Among equal counts the
// first-observed key wins.  The second result is false when the
// histogram is empty.
func (h *Histogram[K, C]) Mode() (K, bool) {
	var (
		best  K
		found bool
		top   cell[C]
	)
	for k, c := range h.counts {
		if !found || c.count > top.count || (c.count == top.count && c.seq < top.seq) {
			best, top, found = k, c, true
		}
	}
	return best, found
}
