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
	"fmt"
	"time"
)

// Of converts a native Go value into a Variant. Slices of any and
// []Variant become Lists, map[string]any and map[string]Variant become
// Dictionaries. Unsupported types fail with ErrTypeMismatch.
func Of(val any) (Variant, error) {
	switch v := val.(type) {
	case nil:
		return Variant{}, nil
	case Variant:
		return v, nil
	case *Variant:
		return *v, nil
	case bool:
		return NewBool(v), nil
	case int8:
		return NewInt32(int32(v)), nil
	case int16:
		return NewInt32(int32(v)), nil
	case int32:
		return NewInt32(v), nil
	case int:
		return NewInt64(int64(v)), nil
	case int64:
		return NewInt64(v), nil
	case uint8:
		return NewUInt32(uint32(v)), nil
	case uint16:
		return NewUInt32(uint32(v)), nil
	case uint32:
		return NewUInt32(v), nil
	case uint:
		return NewUInt64(uint64(v)), nil
	case uint64:
		return NewUInt64(v), nil
	case float32:
		return NewFloat(v), nil
	case float64:
		return NewDouble(v), nil
	case string:
		return NewString(v), nil
	case []byte:
		return NewBuffer(v), nil
	case Date:
		return NewDate(v), nil
	case time.Duration:
		return NewTime(v), nil
	case time.Time:
		return NewDateTime(v), nil
	case Exception:
		return NewException(v), nil
	case *Handle:
		return FromHandle(v), nil
	case Object:
		return NewObject(v), nil
	case []Variant:
		return ListOf(v...), nil
	case map[string]Variant:
		return DictionaryOf(v), nil
	case []any:
		items := make([]Variant, len(v))
		for i, elem := range v {
			item, err := Of(elem)
			if err != nil {
				return Variant{}, fmt.Errorf("element %d: %w", i, err)
			}
			items[i] = item
		}
		return ListOf(items...), nil
	case map[string]any:
		entries := make(map[string]Variant, len(v))
		for k, elem := range v {
			item, err := Of(elem)
			if err != nil {
				return Variant{}, fmt.Errorf("key %q: %w", k, err)
			}
			entries[k] = item
		}
		return DictionaryOf(entries), nil
	case error:
		return NewException(ExceptionFromError(v)), nil
	}
	return Variant{}, fmt.Errorf("%w: cannot create variant from %T", ErrTypeMismatch, val)
}
