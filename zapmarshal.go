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

	"go.uber.org/zap/zapcore"
)

// rankingLogLimit caps how much of the ranking MarshalLogObject emits.
const rankingLogLimit = 5

var _ zapcore.ObjectMarshaler = (*Histogram[string, uint64])(nil)

// MarshalLogObject lets a histogram be logged structurally with
// zap.Object.  It emits the key cardinality, the total count, and the
// top of the ranking.
func (h *Histogram[K, C]) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt("keys", h.Len())
	enc.AddFloat64("total", float64(h.TotalCount()))
	ranked := h.RankingWithCounts()
	if len(ranked) > rankingLogLimit {
		ranked = ranked[:rankingLogLimit]
	}
	return enc.AddArray("top", zapcore.ArrayMarshalerFunc(func(ae zapcore.ArrayEncoder) error {
		for _, e := range ranked {
			err := ae.AppendObject(zapcore.ObjectMarshalerFunc(func(oe zapcore.ObjectEncoder) error {
				oe.AddString("label", fmt.Sprint(e.Label))
				oe.AddFloat64("count", float64(e.Count))
				return nil
			}))
			if err != nil {
				return err
			}
		}
		return nil
	}))
}
