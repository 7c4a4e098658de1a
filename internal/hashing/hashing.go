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

// Package hashing folds values into a running 64-bit hash. Every function
// takes the previous seed and returns the next one, so hashes compose
// across nested structures and are sensitive to the order of folding.
package hashing

import (
	"encoding/binary"
	"math"

	"github.com/zeebo/xxh3"
)

// Bytes folds b into seed.
func Bytes(b []byte, seed uint64) uint64 {
	return xxh3.HashSeed(b, seed)
}

// String folds s into seed.
func String(s string, seed uint64) uint64 {
	return xxh3.HashStringSeed(s, seed)
}

// Uint32 folds v into seed.
func Uint32(v uint32, seed uint64) uint64 {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	return xxh3.HashSeed(buf[:], seed)
}

// Uint64 folds v into seed.
func Uint64(v uint64, seed uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	return xxh3.HashSeed(buf[:], seed)
}

// Int64 folds v into seed.
func Int64(v int64, seed uint64) uint64 { return Uint64(uint64(v), seed) }

// Bool folds v into seed.
func Bool(v bool, seed uint64) uint64 {
	if v {
		return Uint32(1, seed)
	}
	return Uint32(0, seed)
}

// Float64 folds v into seed. Positive and negative zero hash alike, as do
// all NaN payloads, so values that compare equal hash equal.
func Float64(v float64, seed uint64) uint64 {
	switch {
	case v == 0:
		v = 0
	case math.IsNaN(v):
		v = math.NaN()
	}
	return Uint64(math.Float64bits(v), seed)
}

// Float32 folds v into seed with the same canonicalisation as Float64.
func Float32(v float32, seed uint64) uint64 {
	switch {
	case v == 0:
		v = 0
	case v != v:
		v = float32(math.NaN())
	}
	return Uint32(math.Float32bits(v), seed)
}
