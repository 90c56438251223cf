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
	"errors"
	"math/rand/v2"
)

// ErrEmptyHistogram is returned by PickRandomKey when there is nothing
// to pick from.
var ErrEmptyHistogram = errors.New("histogram is empty")

// PickRandomKey selects a present key at random, weighted by count: a
// key holding a quarter of the total count is selected a quarter of the
// time.  The randomness source is the one set with WithRandFunc, or
// math/rand/v2 by default.
func (h *Histogram[K, C]) PickRandomKey() (K, error) {
	var zero K
	if len(h.counts) == 0 {
		return zero, ErrEmptyHistogram
	}
	total := float64(h.TotalCount())
	if total == 0 {
		return zero, ErrEmptyHistogram
	}

	fn := h.randFloat
	if fn == nil {
		fn = rand.Float64
	}

	// Cumulative-weight sampling over first-seen order.  The scan order
	// does not change the selection probabilities, but a fixed order
	// keeps a seeded source reproducible.
	keys := h.keysBySeq()
	target := fn() * total
	cumulative := 0.0
	for _, k := range keys {
		cumulative += float64(h.counts[k].count)
		if cumulative > target {
			return k, nil
		}
	}
	// Rounding in the float accumulation can leave the target
	// unreached; the draw then belongs to the final key.
	return keys[len(keys)-1], nil
}
