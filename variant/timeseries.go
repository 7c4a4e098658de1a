// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package variant

import (
	"cmp"
	"time"

	"github.com/proteanic/protean-sub000/internal/hashing"
)

type sample struct {
	at    int64 // unix milliseconds
	value Variant
}

// timeSeries keeps samples in append order. Timestamps are not required
// to be monotonic and are never re-sorted.
type timeSeries struct {
	samples []sample
}

func (ts *timeSeries) kind() Kind { return KindTimeSeries }
func (ts *timeSeries) size() int  { return len(ts.samples) }

func (ts *timeSeries) clear() {
	ts.release()
	ts.samples = ts.samples[:0]
}

func (ts *timeSeries) compare(o collection) (int, error) {
	r, ok := o.(*timeSeries)
	if !ok {
		return 0, incompatible(ts, o)
	}
	if c := compareSize(len(ts.samples), len(r.samples)); c != 0 {
		return c, nil
	}
	for i := range ts.samples {
		if c := cmp.Compare(ts.samples[i].at, r.samples[i].at); c != 0 {
			return c, nil
		}
		if c := ts.samples[i].value.Compare(r.samples[i].value); c != 0 {
			return c, nil
		}
	}
	return 0, nil
}

func (ts *timeSeries) hash(seed uint64) uint64 {
	for i := range ts.samples {
		seed = hashing.Int64(ts.samples[i].at, seed)
		seed = ts.samples[i].value.Hash(seed)
	}
	return seed
}

func (ts *timeSeries) clone() collection {
	out := &timeSeries{samples: make([]sample, len(ts.samples))}
	for i, s := range ts.samples {
		out.samples[i] = sample{at: s.at, value: s.value.Clone()}
	}
	return out
}

func (ts *timeSeries) release() {
	for i := range ts.samples {
		ts.samples[i].value.Release()
	}
}

func (ts *timeSeries) pushBack(at time.Time, v Variant) *Variant {
	ts.samples = append(ts.samples, sample{at: at.UnixMilli(), value: v})
	return &ts.samples[len(ts.samples)-1].value
}

func (ts *timeSeries) begin() iteratorImpl { return &tsIter{ts: ts} }
func (ts *timeSeries) end() iteratorImpl   { return &tsIter{ts: ts, pos: len(ts.samples)} }
