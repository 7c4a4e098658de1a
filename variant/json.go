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
	"math"
	"time"

	"github.com/proteanic/protean-sub000/internal/json"
)

// MarshalJSON renders v as JSON. Dictionaries become objects, Lists and
// Tuples arrays, Bags arrays of {"key", "value"} pairs and TimeSeries
// arrays of {"time", "value"} pairs. Temporal kinds and non-finite floats
// are rendered in their textual form, Buffers as base64.
func (v Variant) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonValue(v))
}

type keyedJSON struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

type sampleJSON struct {
	Time  string `json:"time"`
	Value any    `json:"value"`
}

type objectJSON struct {
	Class   string `json:"class"`
	Version int    `json:"version"`
	Params  any    `json:"params"`
}

type exceptionJSON struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Source  string `json:"source,omitempty"`
	Stack   string `json:"stack,omitempty"`
}

func jsonValue(v Variant) any {
	switch k := v.Kind(); k {
	case KindNone:
		return nil
	case KindBoolean:
		return v.slot.word != 0
	case KindInt32, KindInt64:
		return int64(v.slot.word)
	case KindUInt32, KindUInt64:
		return v.slot.word
	case KindFloat, KindDouble:
		f, _ := v.toFloat64()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return formatFloat(f, 64)
		}
		if k == KindFloat {
			return float32(f)
		}
		return f
	case KindAny, KindString:
		return v.text()
	case KindDate, KindTime, KindDateTime:
		a, _ := v.ToAny()
		return a.text()
	case KindBuffer:
		return v.slot.ref.([]byte)
	case KindException:
		e := v.slot.ref.(*Exception)
		return exceptionJSON{Type: e.typ, Message: e.message, Source: e.source, Stack: e.stack}
	case KindObject:
		obj := v.slot.ref.(*Handle).obj
		return objectJSON{Class: obj.Name(), Version: obj.Version(), Params: jsonValue(obj.Deflate())}
	case KindList, KindTuple:
		items := v.coll().(seqElems).elems()
		out := make([]any, len(items))
		for i := range items {
			out[i] = jsonValue(items[i])
		}
		return out
	case KindDictionary:
		entries := v.slot.ref.(*dictionary).entries
		out := make(map[string]any, len(entries))
		for i := range entries {
			out[entries[i].key.String()] = jsonValue(entries[i].value)
		}
		return out
	case KindBag:
		entries := v.slot.ref.(*bag).entries
		out := make([]keyedJSON, len(entries))
		for i := range entries {
			out[i] = keyedJSON{Key: entries[i].key.String(), Value: jsonValue(entries[i].value)}
		}
		return out
	case KindTimeSeries:
		samples := v.slot.ref.(*timeSeries).samples
		out := make([]sampleJSON, len(samples))
		for i := range samples {
			out[i] = sampleJSON{Time: formatDateTime(time.UnixMilli(samples[i].at)), Value: jsonValue(samples[i].value)}
		}
		return out
	}
	return nil
}
