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

	"github.com/proteanic/protean-sub000/internal/hashing"
)

// collection is implemented by the payload of every Collection kind.
type collection interface {
	kind() Kind
	size() int
	clear()
	// compare fails with ErrIncompatible when o is a different collection
	// type.
	compare(o collection) (int, error)
	hash(seed uint64) uint64
	clone() collection
	// release drops object handle references held by the elements.
	release()
	begin() iteratorImpl
	end() iteratorImpl
}

func incompatible(a, b collection) error {
	return fmt.Errorf("%w: cannot compare %s with %s", ErrIncompatible, a.kind(), b.kind())
}

func compareSize(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareItems(a, b []Variant) int {
	if c := compareSize(len(a), len(b)); c != 0 {
		return c
	}
	for i := range a {
		if c := a[i].Compare(b[i]); c != 0 {
			return c
		}
	}
	return 0
}

func hashItems(items []Variant, seed uint64) uint64 {
	seed = hashing.Uint64(uint64(len(items)), seed)
	for i := range items {
		seed = items[i].Hash(seed)
	}
	return seed
}

func cloneItems(items []Variant) []Variant {
	out := make([]Variant, len(items))
	for i := range items {
		out[i] = items[i].Clone()
	}
	return out
}

func releaseItems(items []Variant) {
	for i := range items {
		items[i].Release()
	}
}

func checkIndex(i, n int) error {
	if i < 0 || i >= n {
		return fmt.Errorf("%w: index %d, size %d", ErrIndex, i, n)
	}
	return nil
}
