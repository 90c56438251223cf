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

//
// The package histogram provides a generic frequency-counting container.
// A Histogram maps keys of any comparable type to counts of an unsigned
// integer or floating point type, and derives rankings, modes, totals,
// normalized distributions, and weighted random selections from those
// counts.
//
// The Histogram type is the primary type in this package.  It is created
// with the New function, or built from existing data with FromKeys,
// FromPairs, or Of.  Observations are recorded with Bump and BumpBy, and
// two histograms covering the same key and counter types can be combined
// with Merge.
//
// A key is present in a Histogram only while its count is strictly
// positive.  Bumping by a zero amount is a no-op and never creates an
// entry, and operations that would leave a count of zero remove the
// entry instead.  Count returns the counter type's zero value for keys
// that have never been observed.
//
// Ranking and Mode order keys by descending count.  Keys with equal
// counts are ordered by first observation, so results are deterministic
// across runs.  Mode returns its second result false on an empty
// histogram; PickRandomKey and Normalize return errors when the
// histogram is empty or its total is zero.
//
// Histograms serialize to and from JSON and YAML as a plain mapping from
// key to count, provided the key type is itself encodable by the chosen
// codec.  Decoding rejects entries that would violate the
// strictly-positive-count rule.
//
// A Histogram is not safe for concurrent use.  Callers sharing one
// across goroutines must provide their own locking.
//
