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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proteanic/protean-sub000/variant"
)

func TestSummary(t *testing.T) {
	tests := []struct {
		v    variant.Variant
		want string
	}{
		{variant.Variant{}, "None"},
		{variant.NewInt32(5), "5"},
		{variant.NewString("hi"), "'hi'"},
		{variant.NewAny("x"), "Any('x')"},
		{variant.ListOf(variant.NewInt32(1), variant.NewInt32(2)), "List(size=2)"},
		{variant.NewBag(), "Bag(size=0)"},
		{variant.NewBuffer(make([]byte, 9)), "Buffer(size=9)"},
		{variant.NewException(variant.MakeException("E", "boom", "", "")), "Exception(E: boom)"},
		{variant.NewObject(&point{}), "Object(class=point, version=2)"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.Summary())
		})
	}
}

func TestStringNested(t *testing.T) {
	d := variant.NewDictionary()
	d.Insert("a", variant.NewInt32(1))
	d.Insert("b", variant.ListOf(variant.NewString("x"), variant.NewBool(false)))

	want := "{\n" +
		"   a: 1,\n" +
		"   b:\n" +
		"      [\n" +
		"         'x',\n" +
		"         false\n" +
		"      ]\n" +
		"}"
	assert.Equal(t, want, d.String())

	ts := variant.NewTimeSeries()
	ts.PushBackAt(time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC), variant.NewDouble(1.5))
	assert.Equal(t, "TimeSeries(\n   2020-01-02T03:04:05: 1.5\n)", ts.String())
}

func TestMarshalJSON(t *testing.T) {
	b := variant.NewBag()
	b.Insert("k", variant.NewInt32(1))
	b.Insert("k", variant.NewAny("two"))

	v := variant.DictionaryOf(map[string]variant.Variant{
		"n":    variant.NewInt64(-4),
		"d":    variant.NewDate(variant.DateOf(2024, time.March, 1)),
		"nan":  variant.NewDouble(math.NaN()),
		"list": variant.ListOf(variant.NewBool(true), variant.Variant{}),
		"bag":  b,
		"buf":  variant.NewBuffer([]byte("hi")),
		"obj":  variant.NewObject(&point{x: 1, y: 2}),
	})
	out, err := v.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"n": -4,
		"d": "2024-03-01",
		"nan": "NaN",
		"list": [true, null],
		"bag": [{"key": "k", "value": 1}, {"key": "k", "value": "two"}],
		"buf": "aGk=",
		"obj": {"class": "point", "version": 2, "params": {"x": 1, "y": 2}}
	}`, string(out))
}

func TestSelect(t *testing.T) {
	person := func(name string, age int32) variant.Variant {
		return variant.DictionaryOf(map[string]variant.Variant{
			"name": variant.NewString(name),
			"age":  variant.NewInt32(age),
		})
	}
	people := variant.NewBag()
	people.Insert("person", person("ann", 30))
	people.Insert("person", person("bob", 40))
	people.Insert("robot", person("r2", 99))
	root := variant.DictionaryOf(map[string]variant.Variant{"people": people})

	got, err := root.Select("people/person")
	require.NoError(t, err)
	n, _ := got.Len()
	assert.Equal(t, 2, n)

	got, err = root.Select(`/people/person[name="bob"]/age`)
	require.NoError(t, err)
	assert.True(t, got.Equal(variant.ListOf(variant.NewInt32(40))))

	got, err = root.Select("people/*[age=99]/name")
	require.NoError(t, err)
	assert.True(t, got.Equal(variant.ListOf(variant.NewString("r2"))))

	got, err = root.Select("")
	require.NoError(t, err)
	assert.True(t, got.Equal(variant.ListOf(root)))

	got, err = root.Select("missing/path")
	require.NoError(t, err)
	empty, _ := got.Empty()
	assert.True(t, empty)

	_, err = root.Select("people/per-son")
	assert.ErrorIs(t, err, variant.ErrParse)
}

func TestSelectReturnsCopies(t *testing.T) {
	root := variant.DictionaryOf(map[string]variant.Variant{
		"items": variant.ListOf(variant.NewInt32(1)),
		"obj":   variant.NewObject(&point{x: 1, y: 2}),
	})

	got, err := root.Select("items")
	require.NoError(t, err)
	items, err := got.At(0)
	require.NoError(t, err)
	_, err = items.PushBack(variant.NewInt32(2))
	require.NoError(t, err)
	src, _ := root.AtKey("items")
	n, _ := src.Len()
	assert.Equal(t, 1, n)

	obj, _ := root.AtKey("obj")
	h, err := obj.Handle()
	require.NoError(t, err)
	got, err = root.Select("obj")
	require.NoError(t, err)
	assert.EqualValues(t, 2, h.RefCount())
	got.Release()
	assert.EqualValues(t, 1, h.RefCount())
}
