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

package variant_test

import (
	"math"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proteanic/protean-sub000/variant"
)

func TestZeroValueIsNone(t *testing.T) {
	var v variant.Variant
	assert.Equal(t, variant.KindNone, v.Kind())
	assert.True(t, v.IsNone())
	assert.True(t, v.Equal(variant.Variant{}))
	assert.Equal(t, "None", v.String())
}

func TestConstructorKinds(t *testing.T) {
	now := time.Date(2024, 2, 29, 10, 11, 12, 0, time.UTC)
	tests := []struct {
		v    variant.Variant
		kind variant.Kind
	}{
		{variant.NewBool(true), variant.KindBoolean},
		{variant.NewInt32(-1), variant.KindInt32},
		{variant.NewUInt32(1), variant.KindUInt32},
		{variant.NewInt64(-1), variant.KindInt64},
		{variant.NewUInt64(1), variant.KindUInt64},
		{variant.NewFloat(1.5), variant.KindFloat},
		{variant.NewDouble(1.5), variant.KindDouble},
		{variant.NewString("s"), variant.KindString},
		{variant.NewAny("a"), variant.KindAny},
		{variant.NewDate(variant.DateFromTime(now)), variant.KindDate},
		{variant.NewTime(time.Hour), variant.KindTime},
		{variant.NewDateTime(now), variant.KindDateTime},
		{variant.NewBuffer([]byte{1}), variant.KindBuffer},
		{variant.NewException(variant.MakeException("E", "m", "", "")), variant.KindException},
		{variant.NewObject(&point{}), variant.KindObject},
		{variant.ListOf(), variant.KindList},
		{variant.TupleOf(variant.NewInt32(1)), variant.KindTuple},
		{variant.NewDictionary(), variant.KindDictionary},
		{variant.NewBag(), variant.KindBag},
		{variant.NewTimeSeries(), variant.KindTimeSeries},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.v.Kind())
			assert.True(t, tt.v.Is(tt.kind))
			assert.True(t, tt.kind.Concrete())
		})
	}
}

func TestNewDefaults(t *testing.T) {
	l, err := variant.New(variant.KindList, 3)
	require.NoError(t, err)
	n, _ := l.Len()
	assert.Equal(t, 3, n)
	first, err := l.At(0)
	require.NoError(t, err)
	assert.True(t, first.IsNone())

	tup, err := variant.New(variant.KindTuple, 2)
	require.NoError(t, err)
	n, _ = tup.Len()
	assert.Equal(t, 2, n)

	buf, err := variant.New(variant.KindBuffer, 4)
	require.NoError(t, err)
	b, _ := buf.AsBuffer()
	assert.Equal(t, []byte{0, 0, 0, 0}, b)

	i, err := variant.New(variant.KindInt64, 0)
	require.NoError(t, err)
	assert.True(t, i.Equal(variant.NewInt64(0)))

	for _, k := range []variant.Kind{variant.KindDictionary, variant.KindBag, variant.KindTimeSeries} {
		v, err := variant.New(k, 10)
		require.NoError(t, err)
		empty, err := v.Empty()
		require.NoError(t, err)
		assert.True(t, empty, k.String())
	}
}

func TestNewFailures(t *testing.T) {
	for _, k := range []variant.Kind{variant.KindException, variant.KindObject, variant.KindNumber, 0} {
		_, err := variant.New(k, 0)
		assert.ErrorIs(t, err, variant.ErrTypeMismatch, k.String())
	}
	_, err := variant.New(variant.KindList, -1)
	assert.ErrorIs(t, err, variant.ErrIndex)
}

func TestTemporalPrecision(t *testing.T) {
	ts := time.Date(2001, 9, 9, 1, 46, 40, 123456789, time.FixedZone("X", 3600))
	got, err := variant.NewDateTime(ts).AsDateTime()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, got.Location())
	assert.True(t, got.Equal(ts.Truncate(time.Millisecond)))

	d, err := variant.NewTime(1500*time.Microsecond + time.Second).AsTime()
	require.NoError(t, err)
	assert.Equal(t, time.Second+time.Millisecond, d)

	day := variant.DateOf(1969, time.December, 31)
	assert.EqualValues(t, -1, day.Days())
	assert.Equal(t, "1969-12-31", day.String())
	got2, err := variant.NewDate(day).AsDate()
	require.NoError(t, err)
	assert.Equal(t, day, got2)
}

func TestCloneIsDeep(t *testing.T) {
	orig := variant.ListOf(variant.NewString("a long string value"), variant.NewBuffer([]byte("xyz")))
	cp := orig.Clone()
	require.True(t, orig.Equal(cp))

	_, err := cp.PushBack(variant.NewInt32(1))
	require.NoError(t, err)
	elem, err := cp.At(1)
	require.NoError(t, err)
	b, err := elem.AsBuffer()
	require.NoError(t, err)
	b[0] = 'X'

	n, _ := orig.Len()
	assert.Equal(t, 2, n)
	origElem, _ := orig.At(1)
	ob, _ := origElem.AsBuffer()
	assert.Equal(t, []byte("xyz"), ob)
	assert.False(t, orig.Equal(cp))
}

func TestAssignmentShares(t *testing.T) {
	a := variant.NewDictionary()
	b := a
	_, err := b.Insert("k", variant.NewBool(true))
	require.NoError(t, err)
	ok, err := a.HasKey("k")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCompareAcrossKinds(t *testing.T) {
	// kinds order by tag: None < String < Int32 < List
	vals := []variant.Variant{
		variant.ListOf(),
		variant.NewInt32(-100),
		variant.NewString("zzz"),
		{},
	}
	slices.SortFunc(vals, variant.Variant.Compare)
	kinds := make([]variant.Kind, len(vals))
	for i, v := range vals {
		kinds[i] = v.Kind()
	}
	assert.Equal(t, []variant.Kind{variant.KindNone, variant.KindString, variant.KindInt32, variant.KindList}, kinds)
}

func TestCompareWithinKind(t *testing.T) {
	nan := math.NaN()
	tests := []struct {
		name string
		a, b variant.Variant
		want int
	}{
		{"bool", variant.NewBool(false), variant.NewBool(true), -1},
		{"int32 negative", variant.NewInt32(-5), variant.NewInt32(3), -1},
		{"uint64 large", variant.NewUInt64(math.MaxUint64), variant.NewUInt64(1), 1},
		{"double", variant.NewDouble(2.5), variant.NewDouble(2.5), 0},
		{"nan equal", variant.NewDouble(nan), variant.NewDouble(nan), 0},
		{"nan first", variant.NewDouble(nan), variant.NewDouble(math.Inf(-1)), -1},
		{"float zero", variant.NewFloat(0), variant.NewFloat(float32(math.Copysign(0, -1))), 0},
		{"string", variant.NewString("abc"), variant.NewString("abd"), -1},
		{"string prefix", variant.NewString("abcdefgh"), variant.NewString("abc"), 1},
		{"any", variant.NewAny("b"), variant.NewAny("a"), 1},
		{"buffer", variant.NewBuffer([]byte{1, 2}), variant.NewBuffer([]byte{1, 3}), -1},
		{"date", variant.NewDate(variant.DateOf(2000, 1, 1)), variant.NewDate(variant.DateOf(1999, 12, 31)), 1},
		{"time", variant.NewTime(-time.Hour), variant.NewTime(0), -1},
		{"exception stack", variant.NewException(variant.MakeException("T", "m", "s", "a")),
			variant.NewException(variant.MakeException("T", "m", "s", "b")), -1},
		{"list size first", variant.ListOf(variant.NewInt32(9)), variant.ListOf(variant.NewInt32(1), variant.NewInt32(1)), -1},
		{"list elementwise", variant.ListOf(variant.NewInt32(1), variant.NewInt32(2)), variant.ListOf(variant.NewInt32(1), variant.NewInt32(3)), -1},
		{"dictionary key", variant.DictionaryOf(map[string]variant.Variant{"a": variant.NewInt32(9)}),
			variant.DictionaryOf(map[string]variant.Variant{"b": variant.NewInt32(0)}), -1},
		{"object params", variant.NewObject(&point{x: 1}), variant.NewObject(&point{x: 2}), -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Compare(tt.b))
			assert.Equal(t, -tt.want, tt.b.Compare(tt.a))
			assert.Equal(t, tt.want < 0, tt.a.Less(tt.b))
		})
	}
}

func TestHashConsistentWithEqual(t *testing.T) {
	const seed = 42
	pairs := [][2]variant.Variant{
		{variant.NewDouble(0), variant.NewDouble(math.Copysign(0, -1))},
		{variant.NewDouble(math.NaN()), variant.NewDouble(-math.NaN())},
		{variant.NewString("short"), variant.NewString("short")},
		{variant.NewString("a much longer string"), variant.NewString("a much longer string")},
		{variant.NewObject(&point{1, 2}), variant.NewObject(&point{1, 2})},
		{variant.ListOf(variant.NewInt32(1)).Clone(), variant.ListOf(variant.NewInt32(1))},
	}
	for _, p := range pairs {
		require.True(t, p[0].Equal(p[1]), p[0].Summary())
		assert.Equal(t, p[0].Hash(seed), p[1].Hash(seed), p[0].Summary())
	}

	// same payload bits, different kind
	assert.NotEqual(t, variant.NewInt32(1).Hash(seed), variant.NewUInt32(1).Hash(seed))
	assert.NotEqual(t, variant.NewString("x").Hash(seed), variant.NewAny("x").Hash(seed))
	assert.NotEqual(t, variant.NewInt32(1).Hash(1), variant.NewInt32(1).Hash(2))
}

func TestHashCollectionOrder(t *testing.T) {
	l1 := variant.ListOf(variant.NewInt32(1), variant.NewInt32(2))
	l2 := variant.ListOf(variant.NewInt32(2), variant.NewInt32(1))
	assert.NotEqual(t, l1.Hash(0), l2.Hash(0))

	d1, d2 := variant.NewDictionary(), variant.NewDictionary()
	d1.Insert("a", variant.NewInt32(1))
	d1.Insert("b", variant.NewInt32(2))
	d2.Insert("b", variant.NewInt32(2))
	d2.Insert("a", variant.NewInt32(1))
	assert.True(t, d1.Equal(d2))
	assert.Equal(t, d1.Hash(0), d2.Hash(0))

	b1, b2 := variant.NewBag(), variant.NewBag()
	b1.Insert("a", variant.NewInt32(1))
	b1.Insert("b", variant.NewInt32(2))
	b2.Insert("b", variant.NewInt32(2))
	b2.Insert("a", variant.NewInt32(1))
	assert.False(t, b1.Equal(b2))
	assert.NotEqual(t, b1.Hash(0), b2.Hash(0))
}

func TestOf(t *testing.T) {
	v, err := variant.Of(map[string]any{
		"n":    3,
		"f":    float32(1.5),
		"s":    "x",
		"list": []any{true, nil, uint8(7)},
		"when": time.UnixMilli(0),
	})
	require.NoError(t, err)
	assert.Equal(t, variant.KindDictionary, v.Kind())

	n, _ := v.AtKey("n")
	assert.Equal(t, variant.KindInt64, n.Kind())
	l, _ := v.AtKey("list")
	last, _ := l.At(2)
	assert.True(t, last.Equal(variant.NewUInt32(7)))
	mid, _ := l.At(1)
	assert.True(t, mid.IsNone())

	_, err = variant.Of(struct{}{})
	assert.ErrorIs(t, err, variant.ErrTypeMismatch)
	_, err = variant.Of([]any{1, make(chan int)})
	assert.ErrorIs(t, err, variant.ErrTypeMismatch)

	e, err := variant.Of(errRejected)
	require.NoError(t, err)
	ex, _ := e.AsException()
	assert.Equal(t, "rejected", ex.Message())
}

func TestWithContext(t *testing.T) {
	assert.NoError(t, variant.WithContext(nil, variant.NewInt32(1)))

	err := variant.WithContext(variant.ErrNotFound, variant.ListOf(variant.NewInt32(1)))
	assert.ErrorIs(t, err, variant.ErrNotFound)
	assert.Contains(t, err.Error(), "List(size=1)")
}
