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

// Package cstr implements a compact, immutable byte string. Values of up to
// MaxInline bytes are stored inside the String itself and never allocate;
// longer values own exactly one heap allocation.
package cstr

import (
	"bytes"
	"strings"
	"unsafe"

	"github.com/proteanic/protean-sub000/internal/hashing"
)

// MaxInline is the longest text stored without a heap allocation.
const MaxInline = 7

const (
	heapFlag uint8 = 0x80
	lenMask  uint8 = 0x7F
)

// String is a small-string-optimized text value. The zero value is the
// empty string. Callers never observe which representation is active.
type String struct {
	inline [MaxInline]byte
	// tag is the inline length, or heapFlag when heap is in use.
	tag  uint8
	heap string
}

// New returns a String holding a copy of s.
func New(s string) String {
	var out String
	if len(s) <= MaxInline {
		out.tag = uint8(copy(out.inline[:], s))
		return out
	}
	out.tag = heapFlag
	out.heap = strings.Clone(s)
	return out
}

// FromBytes returns a String holding a copy of b.
func FromBytes(b []byte) String {
	var out String
	if len(b) <= MaxInline {
		out.tag = uint8(copy(out.inline[:], b))
		return out
	}
	out.tag = heapFlag
	out.heap = string(b)
	return out
}

// Inline reports whether s is stored without a heap allocation.
func (s *String) Inline() bool { return s.tag&heapFlag == 0 }

// Len returns the length of s in bytes.
func (s *String) Len() int {
	if s.Inline() {
		return int(s.tag & lenMask)
	}
	return len(s.heap)
}

// Empty reports whether s has length zero.
func (s *String) Empty() bool { return s.Len() == 0 }

// String returns the text as a Go string.
func (s *String) String() string {
	if s.Inline() {
		return string(s.inline[:s.tag&lenMask])
	}
	return s.heap
}

// AppendTo appends the text of s to dst.
func (s *String) AppendTo(dst []byte) []byte {
	return append(dst, s.view()...)
}

// view exposes the bytes of s without copying. The result must not be
// modified or retained past the lifetime of s.
func (s *String) view() []byte {
	if s.Inline() {
		return s.inline[:s.tag&lenMask]
	}
	if len(s.heap) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s.heap), len(s.heap))
}

// Compare returns -1, 0 or +1 comparing a and b in byte order.
func Compare(a, b *String) int {
	return bytes.Compare(a.view(), b.view())
}

// CompareString compares s with t in byte order without allocating.
func (s *String) CompareString(t string) int {
	v := s.view()
	return strings.Compare(unsafe.String(unsafe.SliceData(v), len(v)), t)
}

// Equal reports whether a and b hold the same text.
func Equal(a, b *String) bool { return Compare(a, b) == 0 }

// Hash folds the text of s into seed.
func (s *String) Hash(seed uint64) uint64 {
	return hashing.Bytes(s.view(), seed)
}
