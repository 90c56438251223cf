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

import "errors"

// ErrZeroTotal is returned by Normalize when the histogram has no
// counts to rescale.
var ErrZeroTotal = errors.New("histogram total is zero")

// Normalize rescales every count in place so that the counts sum to
// targetTotal.  With an integer counter type, truncation means the new
// counts might not reach the target exactly, and a count that truncates
// to zero is removed.  Passing one as the target turns the counts into
// a probability distribution, counter type permitting fractions.
func (h *Histogram[K, C]) Normalize(targetTotal C) error {
	total := h.TotalCount()
	if total == 0 {
		return ErrZeroTotal
	}
	for k, c := range h.counts {
		// Multiply first so integer counters keep their precision.
		c.count = c.count * targetTotal / total
		if c.count == 0 {
			delete(h.counts, k)
			continue
		}
		h.counts[k] = c
	}
	return nil
}
