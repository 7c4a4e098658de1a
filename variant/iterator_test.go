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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proteanic/protean-sub000/variant"
)

func collect(t *testing.T, v variant.Variant) []variant.Variant {
	t.Helper()
	begin, err := v.Begin()
	require.NoError(t, err)
	end, err := v.End()
	require.NoError(t, err)

	var out []variant.Variant
	for it := begin; ; it.Next() {
		done, err := it.Equal(end)
		require.NoError(t, err)
		if done {
			break
		}
		out = append(out, *it.Value())
	}
	return out
}

func TestIterateSequences(t *testing.T) {
	l := variant.ListOf(variant.NewInt32(1), variant.NewInt32(2), variant.NewInt32(3))
	assert.Len(t, collect(t, l), 3)

	tup := variant.TupleOf(variant.NewString("a"), variant.Variant{})
	got := collect(t, tup)
	require.Len(t, got, 2)
	assert.True(t, got[1].IsNone())

	it, _ := l.Begin()
	_, err := it.Key()
	assert.ErrorIs(t, err, variant.ErrTypeMismatch)
	_, err = it.Time()
	assert.ErrorIs(t, err, variant.ErrTypeMismatch)
}

func TestIteratorMutatesInPlace(t *testing.T) {
	l := variant.ListOf(variant.NewInt32(1), variant.NewInt32(2))
	for _, v := range l.All() {
		i, _ := v.AsInt32()
		*v = variant.NewInt32(i * 10)
	}
	assert.True(t, l.Equal(variant.ListOf(variant.NewInt32(10), variant.NewInt32(20))))
}

func TestIterateMappings(t *testing.T) {
	b := variant.NewBag()
	b.Insert("x", variant.NewInt32(1))
	b.Insert("y", variant.NewInt32(2))

	it, err := b.Begin()
	require.NoError(t, err)
	k, err := it.Key()
	require.NoError(t, err)
	assert.Equal(t, "x", k)
	_, err = it.Time()
	assert.ErrorIs(t, err, variant.ErrTypeMismatch)

	it.Next()
	k, _ = it.Key()
	assert.Equal(t, "y", k)
	it.Prev()
	k, _ = it.Key()
	assert.Equal(t, "x", k)

	end, _ := b.End()
	_, err = end.Key()
	assert.ErrorIs(t, err, variant.ErrIndex)
	assert.Nil(t, end.Value())
}

func TestIterateTimeSeries(t *testing.T) {
	ts := variant.NewTimeSeries()
	t0 := time.UnixMilli(1_700_000_000_123).UTC()
	ts.PushBackAt(t0, variant.NewString("v"))

	it, err := ts.Begin()
	require.NoError(t, err)
	at, err := it.Time()
	require.NoError(t, err)
	assert.True(t, at.Equal(t0))
	_, err = it.Key()
	assert.ErrorIs(t, err, variant.ErrTypeMismatch)
}

func TestIteratorEquality(t *testing.T) {
	a := variant.ListOf(variant.NewInt32(1))
	b := variant.ListOf(variant.NewInt32(1))

	ai, _ := a.Begin()
	bi, _ := b.Begin()
	_, err := ai.Equal(bi)
	assert.ErrorIs(t, err, variant.ErrIncompatible)

	// header copies share the collection, so their iterators are comparable
	c := a
	ci, _ := c.Begin()
	eq, err := ai.Equal(ci)
	require.NoError(t, err)
	assert.True(t, eq)

	clone := ai.Clone()
	clone.Next()
	eq, _ = ai.Equal(clone)
	assert.False(t, eq)

	cit := ai.Const()
	cit.Next()
	end, _ := a.End()
	eq, err = cit.Equal(end.Const())
	require.NoError(t, err)
	assert.True(t, eq)
	assert.True(t, cit.Value().IsNone())

	first := ai.Const()
	assert.True(t, first.Value().Equal(variant.NewInt32(1)))
}

func TestIterateAny(t *testing.T) {
	empty := variant.NewAny("")
	assert.Empty(t, collect(t, empty))

	_, err := variant.NewAny("text").Begin()
	assert.ErrorIs(t, err, variant.ErrTypeMismatch)
	_, err = variant.NewInt32(1).End()
	assert.ErrorIs(t, err, variant.ErrTypeMismatch)
}

func TestRangeHelpers(t *testing.T) {
	d := variant.DictionaryOf(map[string]variant.Variant{
		"b": variant.NewInt32(2),
		"a": variant.NewInt32(1),
	})
	var idx []int
	for i := range d.All() {
		idx = append(idx, i)
	}
	assert.Equal(t, []int{0, 1}, idx)

	count := 0
	for range d.Entries() {
		count++
		break
	}
	assert.Equal(t, 1, count)

	for range variant.NewInt32(1).All() {
		t.Fatal("scalar yields nothing")
	}
	for range variant.ListOf(variant.NewInt32(1)).Entries() {
		t.Fatal("list has no entries")
	}
}

func TestConstIteratorValueIsCopy(t *testing.T) {
	outer := variant.ListOf(variant.ListOf())
	it, err := outer.Begin()
	require.NoError(t, err)

	v := it.Const().Value()
	_, err = v.PushBack(variant.NewInt32(1))
	require.NoError(t, err)

	inner, err := outer.At(0)
	require.NoError(t, err)
	n, _ := inner.Len()
	assert.Zero(t, n)
}
