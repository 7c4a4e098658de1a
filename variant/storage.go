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
	"bytes"
	"cmp"
	"fmt"
	"math"

	"github.com/proteanic/protean-sub000/internal/cstr"
	"github.com/proteanic/protean-sub000/internal/hashing"
)

type storageClass uint8

const (
	// storeWord keeps numeric and temporal payloads in slot.word.
	storeWord storageClass = iota
	// storeText keeps String and Any payloads in slot.str.
	storeText
	// storeRef keeps everything else behind slot.ref.
	storeRef
)

// slot is the payload area of a Variant. Exactly one field is meaningful,
// chosen by the storage class of the owning kind.
type slot struct {
	word uint64
	str  cstr.String
	ref  any
}

// kindInfo is the per-kind dispatch record used for construction, copy,
// comparison, hashing and naming.
type kindInfo struct {
	name    string
	storage storageClass
	init    func(s *slot, size int) error
	clone   func(dst, src *slot)
	compare func(a, b *slot) int
	hash    func(s *slot, seed uint64) uint64
}

var kindTable [numKinds]kindInfo

func init() {
	// populated here rather than in a var initializer since the collection
	// entries reach back into Variant.Compare and Variant.Hash
	word := func(name string, compare func(a, b *slot) int, hash func(*slot, uint64) uint64) kindInfo {
		return kindInfo{name: name, storage: storeWord, init: initWord, clone: copySlot, compare: compare, hash: hash}
	}
	text := kindInfo{storage: storeText, init: initWord, clone: copySlot,
		compare: func(a, b *slot) int { return cstr.Compare(&a.str, &b.str) },
		hash:    func(s *slot, seed uint64) uint64 { return s.str.Hash(seed) },
	}
	coll := func(name string, mk func(size int) collection) kindInfo {
		return kindInfo{name: name, storage: storeRef,
			init:  func(s *slot, size int) error { s.ref = mk(size); return nil },
			clone: func(dst, src *slot) { *dst = slot{ref: src.ref.(collection).clone()} },
			compare: func(a, b *slot) int {
				c, _ := a.ref.(collection).compare(b.ref.(collection))
				return c
			},
			hash: func(s *slot, seed uint64) uint64 { return s.ref.(collection).hash(seed) },
		}
	}

	kindTable[KindNone.index()] = word("None",
		func(*slot, *slot) int { return 0 },
		func(_ *slot, seed uint64) uint64 { return seed })
	kindTable[KindAny.index()] = text
	kindTable[KindAny.index()].name = "Any"
	kindTable[KindString.index()] = text
	kindTable[KindString.index()].name = "String"
	kindTable[KindBoolean.index()] = word("Boolean", compareUnsigned, hashWord)
	kindTable[KindInt32.index()] = word("Int32", compareSigned, hashWord)
	kindTable[KindUInt32.index()] = word("UInt32", compareUnsigned, hashWord)
	kindTable[KindInt64.index()] = word("Int64", compareSigned, hashWord)
	kindTable[KindUInt64.index()] = word("UInt64", compareUnsigned, hashWord)
	kindTable[KindFloat.index()] = word("Float",
		func(a, b *slot) int { return cmp.Compare(math.Float32frombits(uint32(a.word)), math.Float32frombits(uint32(b.word))) },
		func(s *slot, seed uint64) uint64 { return hashing.Float32(math.Float32frombits(uint32(s.word)), seed) })
	kindTable[KindDouble.index()] = word("Double",
		func(a, b *slot) int { return cmp.Compare(math.Float64frombits(a.word), math.Float64frombits(b.word)) },
		func(s *slot, seed uint64) uint64 { return hashing.Float64(math.Float64frombits(s.word), seed) })
	kindTable[KindDate.index()] = word("Date", compareSigned, hashWord)
	kindTable[KindTime.index()] = word("Time", compareSigned, hashWord)
	kindTable[KindDateTime.index()] = word("DateTime", compareSigned, hashWord)
	kindTable[KindList.index()] = coll("List", func(n int) collection { return newList(n) })
	kindTable[KindDictionary.index()] = coll("Dictionary", func(int) collection { return &dictionary{} })
	kindTable[KindBag.index()] = coll("Bag", func(int) collection { return &bag{} })
	kindTable[KindTuple.index()] = coll("Tuple", func(n int) collection { return newTuple(n) })
	kindTable[KindTimeSeries.index()] = coll("TimeSeries", func(int) collection { return &timeSeries{} })
	kindTable[KindBuffer.index()] = kindInfo{name: "Buffer", storage: storeRef,
		init:    func(s *slot, size int) error { s.ref = make([]byte, size); return nil },
		clone:   func(dst, src *slot) { *dst = slot{ref: bytes.Clone(src.ref.([]byte))} },
		compare: func(a, b *slot) int { return bytes.Compare(a.ref.([]byte), b.ref.([]byte)) },
		hash:    func(s *slot, seed uint64) uint64 { return hashing.Bytes(s.ref.([]byte), seed) },
	}
	kindTable[KindException.index()] = kindInfo{name: "Exception", storage: storeRef,
		init:  noDefault(KindException),
		clone: copySlot, // exception records are immutable
		compare: func(a, b *slot) int {
			return a.ref.(*Exception).Compare(*b.ref.(*Exception))
		},
		hash: func(s *slot, seed uint64) uint64 { return s.ref.(*Exception).hash(seed) },
	}
	kindTable[KindObject.index()] = kindInfo{name: "Object", storage: storeRef,
		init: noDefault(KindObject),
		clone: func(dst, src *slot) {
			h := src.ref.(*Handle)
			h.Retain()
			*dst = slot{ref: h}
		},
		compare: func(a, b *slot) int { return compareObjects(a.ref.(*Handle).obj, b.ref.(*Handle).obj) },
		hash:    func(s *slot, seed uint64) uint64 { return hashObject(s.ref.(*Handle).obj, seed) },
	}
}

func initWord(s *slot, _ int) error {
	*s = slot{}
	return nil
}

func noDefault(k Kind) func(*slot, int) error {
	return func(*slot, int) error {
		return fmt.Errorf("%w: %s variants cannot be default constructed", ErrTypeMismatch, k)
	}
}

func copySlot(dst, src *slot) { *dst = *src }

func compareSigned(a, b *slot) int   { return cmp.Compare(int64(a.word), int64(b.word)) }
func compareUnsigned(a, b *slot) int { return cmp.Compare(a.word, b.word) }

func hashWord(s *slot, seed uint64) uint64 { return hashing.Uint64(s.word, seed) }

// info returns the dispatch record for a concrete kind.
func info(k Kind) *kindInfo { return &kindTable[k.index()] }
