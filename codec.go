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
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"go.uber.org/multierr"
	"golang.org/x/exp/maps"
	"gopkg.in/yaml.v3"
)

// The wire shape for both codecs is a plain mapping from key to count.
// The key type must itself be encodable by the codec in use: for JSON
// that means a string or integer type, or one implementing
// encoding.TextMarshaler.

func (h *Histogram[K, C]) snapshot() map[K]C {
	snap := make(map[K]C, len(h.counts))
	for k, c := range h.counts {
		snap[k] = c.count
	}
	return snap
}

// MarshalJSON encodes the histogram as a JSON object of counts.
func (h *Histogram[K, C]) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.snapshot())
}

// UnmarshalJSON replaces the histogram's contents with the decoded
// counts.  Entries with zero, negative, or NaN counts are rejected, and
// every violation is reported, not just the first.
func (h *Histogram[K, C]) UnmarshalJSON(data []byte) error {
	var raw map[K]C
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decoding histogram: %w", err)
	}
	return h.reset(raw)
}

// MarshalYAML encodes the histogram as a YAML mapping of counts.
func (h *Histogram[K, C]) MarshalYAML() (any, error) {
	return h.snapshot(), nil
}

// UnmarshalYAML replaces the histogram's contents with the decoded
// counts, applying the same validation as UnmarshalJSON.
func (h *Histogram[K, C]) UnmarshalYAML(value *yaml.Node) error {
	var raw map[K]C
	if err := value.Decode(&raw); err != nil {
		return fmt.Errorf("decoding histogram: %w", err)
	}
	return h.reset(raw)
}

// reset validates the decoded counts and rebuilds the histogram from
// them.  Observation order is not recoverable from the wire shape, so
// first-seen order is assigned by sorted formatted key, which keeps
// ranking tie-breaks deterministic after a decode.
func (h *Histogram[K, C]) reset(raw map[K]C) error {
	var errs error
	for k, c := range raw {
		if c == 0 {
			errs = multierr.Append(errs, fmt.Errorf("key %v: count must be positive", k))
			continue
		}
		if c < 0 {
			errs = multierr.Append(errs, fmt.Errorf("key %v: negative count %v", k, c))
			continue
		}
		if c != c {
			errs = multierr.Append(errs, fmt.Errorf("key %v: count is NaN", k))
		}
	}
	if errs != nil {
		return errs
	}

	keys := maps.Keys(raw)
	slices.SortFunc(keys, func(a, b K) int {
		return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
	})

	h.counts = make(map[K]cell[C], len(raw))
	h.nextSeq = 0
	for _, k := range keys {
		h.counts[k] = cell[C]{count: raw[k], seq: h.nextSeq}
		h.nextSeq++
	}
	return nil
}
