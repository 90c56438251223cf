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
	"fmt"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint returns a 64-bit digest of the histogram's contents.  It
// depends only on the keys and their counts, not on observation order,
// so two Equal histograms always fingerprint identically.  Useful for
// cheap change detection on a distribution.
func (h *Histogram[K, C]) Fingerprint() uint64 {
	items := make([]string, 0, len(h.counts))
	for k, c := range h.counts {
		items = append(items, fmt.Sprintf("%v=%v", k, c.count))
	}
	slices.Sort(items)
	return xxhash.Sum64String(strings.Join(items, "##"))
}
