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

// Package variant implements a dynamically typed value container.
//
// A Variant holds exactly one value of one Kind: None, a primitive (text,
// boolean, integers, floating point, date, time, date-time), a binary
// Buffer, an Exception record, a user defined Object, or a collection
// (List, Tuple, Dictionary, Bag, TimeSeries) of further Variants. Kinds are
// bit flags and can be tested in groups:
//
//	v := variant.NewInt32(42)
//	v.Is(variant.KindNumber) // true
//
// Values convert between kinds through the As methods. Integer kinds
// convert among each other when the value fits; Any text is parsed
// lexically:
//
//	d, err := variant.NewAny("2024-02-29").AsDate()
//
// Variants compare with a total order and hash consistently with that
// order, so they can be used as sort keys and in hashed indexes.
//
// User defined types implement Object and travel inside a Variant behind a
// reference counted Handle. Decoders resolve class names through a
// Factory; unresolved classes are kept as a Proxy which preserves their
// parameters unchanged.
//
// Variants are not safe for concurrent mutation. Concurrent reads of a
// Variant that is not being mutated are safe.
package variant
