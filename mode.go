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

// ModeOf returns the most frequent of the given values, aggregating
// them into a temporary histogram first.  Ties go to the value seen
// first.  The second result is false for empty input.
func ModeOf[K comparable](values ...K) (K, bool) {
	return Of(values...).Mode()
}

// ModeOfSeq is ModeOf over an arbitrary key sequence.
func ModeOfSeq[K comparable](values iter.Seq[K]) (K, bool) {
	return FromKeys[K, uint64](values).Mode()
}
