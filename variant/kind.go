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
	"math/bits"
	"strings"
)

// Kind identifies which of the value categories a Variant holds. Kinds are
// single bits so they can be combined into groups with |.
type Kind uint32

const (
	KindNone       Kind = 0x00000001
	KindAny        Kind = 0x00000002
	KindString     Kind = 0x00000004
	KindBoolean    Kind = 0x00000008
	KindInt32      Kind = 0x00000010
	KindUInt32     Kind = 0x00000020
	KindInt64      Kind = 0x00000040
	KindUInt64     Kind = 0x00000080
	KindFloat      Kind = 0x00000100
	KindDouble     Kind = 0x00000200
	KindDate       Kind = 0x00000400
	KindTime       Kind = 0x00000800
	KindDateTime   Kind = 0x00001000
	KindList       Kind = 0x00002000
	KindDictionary Kind = 0x00004000
	KindBag        Kind = 0x00008000
	KindBuffer     Kind = 0x00010000
	KindTuple      Kind = 0x00020000
	KindException  Kind = 0x00040000
	KindTimeSeries Kind = 0x00080000
	KindObject     Kind = 0x00100000

	KindInteger    = KindBoolean | KindInt32 | KindUInt32 | KindInt64 | KindUInt64
	KindNumber     = KindInteger | KindFloat | KindDouble
	KindPrimitive  = KindNumber | KindDate | KindTime | KindDateTime | KindAny | KindString
	KindSequence   = KindList | KindTuple
	KindMapping    = KindDictionary | KindBag
	KindCollection = KindSequence | KindMapping | KindTimeSeries
)

// numKinds is the number of concrete kinds, one per bit from KindNone up to
// KindObject.
const numKinds = 21

// integral kinds that hold a numeric value, Boolean excluded.
const kindIntegral = KindInt32 | KindUInt32 | KindInt64 | KindUInt64

var groupNames = []struct {
	kind Kind
	name string
}{
	{KindCollection, "Collection"},
	{KindPrimitive, "Primitive"},
	{KindNumber, "Number"},
	{KindInteger, "Integer"},
	{KindSequence, "Sequence"},
	{KindMapping, "Mapping"},
}

// Concrete reports whether k names exactly one kind.
func (k Kind) Concrete() bool {
	return bits.OnesCount32(uint32(k)) == 1 && bits.TrailingZeros32(uint32(k)) < numKinds
}

func (k Kind) index() int { return bits.TrailingZeros32(uint32(k)) }

// String returns the display name of a concrete kind or group. Arbitrary
// masks render as their members joined with "|".
func (k Kind) String() string {
	if k.Concrete() {
		return kindTable[k.index()].name
	}
	for _, g := range groupNames {
		if k == g.kind {
			return g.name
		}
	}
	if k == 0 || uint32(k)>>numKinds != 0 {
		return fmt.Sprintf("Kind(0x%08x)", uint32(k))
	}
	var parts []string
	for i := range numKinds {
		if bit := Kind(1) << i; k&bit != 0 {
			parts = append(parts, kindTable[i].name)
		}
	}
	return strings.Join(parts, "|")
}

// ParseKind returns the kind or group with the given display name.
func ParseKind(name string) (Kind, error) {
	for i := range numKinds {
		if kindTable[i].name == name {
			return Kind(1) << i, nil
		}
	}
	for _, g := range groupNames {
		if g.name == name {
			return g.kind, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown kind name %q", ErrParse, name)
}
