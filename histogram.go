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
	"fmt"
	"iter"
	"slices"
	"strings"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
)

// Counter is the set of types usable as a histogram count.  Signed
// integers are excluded: counts only ever accumulate.  Negative
// floating point increments are unsupported.
type Counter interface {
	constraints.Unsigned | constraints.Float
}

// Histogram tracks how many times each key has been observed.  The zero
// value is an empty histogram ready for use, though New is preferred so
// that options can be applied.
type Histogram[K comparable, C Counter] struct {
	counts  map[K]cell[C]
	nextSeq uint64

	randFloat RandFunc
}

// cell pairs a count with the order in which its key was first
// observed.  The sequence number is what makes ranking and mode
// tie-breaks deterministic.
type cell[C Counter] struct {
	count C
	seq   uint64
}

// RandFunc returns a uniformly distributed value in [0, 1).
type RandFunc func() float64

type Option func(*options)

type options struct {
	randFloat RandFunc
}

// WithRandFunc sets the source of randomness used by PickRandomKey.
// This is useful for testing.
func WithRandFunc(fn RandFunc) Option {
	return func(o *options) {
		o.randFloat = fn
	}
}

// New creates an empty histogram.  If no options are provided, random
// selection draws from math/rand/v2.
func New[K comparable, C Counter](opts ...Option) *Histogram[K, C] {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	return &Histogram[K, C]{
		counts:    make(map[K]cell[C]),
		randFloat: o.randFloat,
	}
}

// Bump increments the count for key by one, inserting it if absent.
func (h *Histogram[K, C]) Bump(key K) {
	h.BumpBy(key, 1)
}

// BumpBy increments the count for key by amount, inserting it if
// absent.  A zero amount is a strict no-op: it never creates an entry.
// If the resulting count is zero, the entry is removed so that present
// keys always have strictly positive counts.
func (h *Histogram[K, C]) BumpBy(key K, amount C) {
	if amount == 0 {
		return
	}
	if h.counts == nil {
		h.counts = make(map[K]cell[C])
	}
	c, ok := h.counts[key]
	if !ok {
		c.seq = h.nextSeq
		h.nextSeq++
	}
	c.count += amount
	if c.count == 0 {
		delete(h.counts, key)
		return
	}
	h.counts[key] = c
}

// Count returns the count for key, or the zero value of C if key has
// never been observed.  It never inserts an entry.
func (h *Histogram[K, C]) Count(key K) C {
	return h.counts[key].count
}

// Len returns the number of distinct keys present.
func (h *Histogram[K, C]) Len() int {
	return len(h.counts)
}

// TotalCount returns the sum of all counts.  It is zero for an empty
// histogram.
func (h *Histogram[K, C]) TotalCount() C {
	var total C
	for _, c := range h.counts {
		total += c.count
	}
	return total
}

// All returns an iterator over every (key, count) pair.  The order is
// unspecified.
func (h *Histogram[K, C]) All() iter.Seq2[K, C] {
	return func(yield func(K, C) bool) {
		for k, c := range h.counts {
			if !yield(k, c.count) {
				return
			}
		}
	}
}

// Counts returns an iterator over the counts only, in unspecified
// order.
func (h *Histogram[K, C]) Counts() iter.Seq[C] {
	return func(yield func(C) bool) {
		for _, c := range h.counts {
			if !yield(c.count) {
				return
			}
		}
	}
}

// Labels returns every present key, in unspecified order.
func (h *Histogram[K, C]) Labels() []K {
	return maps.Keys(h.counts)
}

// Clone returns a deep copy, including first-seen ordering and the
// randomness source.
func (h *Histogram[K, C]) Clone() *Histogram[K, C] {
	return &Histogram[K, C]{
		counts:    maps.Clone(h.counts),
		nextSeq:   h.nextSeq,
		randFloat: h.randFloat,
	}
}

// Equal reports whether both histograms hold the same keys with the
// same counts.  Observation order does not participate.
func (h *Histogram[K, C]) Equal(other *Histogram[K, C]) bool {
	if len(h.counts) != len(other.counts) {
		return false
	}
	for k, c := range h.counts {
		if other.counts[k].count != c.count {
			return false
		}
	}
	return true
}

// String renders the histogram as "key:count; " pairs sorted by the
// formatted key, so output is stable regardless of map order.
func (h *Histogram[K, C]) String() string {
	keys := maps.Keys(h.counts)
	formatted := make([]string, 0, len(keys))
	for _, k := range keys {
		formatted = append(formatted, fmt.Sprintf("%v:%v; ", k, h.counts[k].count))
	}
	slices.Sort(formatted)
	return strings.Join(formatted, "")
}

// keysBySeq returns the present keys in first-seen order.
func (h *Histogram[K, C]) keysBySeq() []K {
	keys := maps.Keys(h.counts)
	slices.SortFunc(keys, func(a, b K) int {
		return cmp.Compare(h.counts[a].seq, h.counts[b].seq)
	})
	return keys
}
