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

import "iter"

// Merge adds every count from other into h.  Merging is commutative and
// associative over the resulting counts, and merging an empty histogram
// is a no-op.  Keys new to h take their first-seen position from the
// merge, in other's first-seen order.
func (h *Histogram[K, C]) Merge(other *Histogram[K, C]) {
	for _, k := range other.keysBySeq() {
		h.BumpBy(k, other.counts[k].count)
	}
}

// ExtendKeys bumps once for each key produced by the sequence.
func (h *Histogram[K, C]) ExtendKeys(keys iter.Seq[K]) {
	for k := range keys {
		h.Bump(k)
	}
}

// ExtendPairs bumps by the given amount for each (key, amount) pair
// produced by the sequence.
func (h *Histogram[K, C]) ExtendPairs(pairs iter.Seq2[K, C]) {
	for k, amount := range pairs {
		h.BumpBy(k, amount)
	}
}

// FromKeys builds a histogram by folding a key sequence into an empty
// histogram with Bump.
func FromKeys[K comparable, C Counter](keys iter.Seq[K], opts ...Option) *Histogram[K, C] {
	h := New[K, C](opts...)
	h.ExtendKeys(keys)
	return h
}

// FromPairs builds a histogram by folding a (key, amount) sequence into
// an empty histogram with BumpBy.
func FromPairs[K comparable, C Counter](pairs iter.Seq2[K, C], opts ...Option) *Histogram[K, C] {
	h := New[K, C](opts...)
	h.ExtendPairs(pairs)
	return h
}

// Of builds a uint64-counted histogram from the given keys.
func Of[K comparable](keys ...K) *Histogram[K, uint64] {
	h := New[K, uint64]()
	for _, k := range keys {
		h.Bump(k)
	}
	return h
}
