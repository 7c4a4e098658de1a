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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proteanic/protean-sub000/variant"
)

func TestHandleRefCount(t *testing.T) {
	h := variant.NewHandle(&point{x: 1})
	assert.True(t, h.Unique())

	a := variant.FromHandle(h)
	assert.EqualValues(t, 2, h.RefCount())
	b := a.Clone()
	assert.EqualValues(t, 3, h.RefCount())

	b.Release()
	assert.True(t, b.IsNone())
	a.Release()
	assert.True(t, h.Unique())
	h.Release()
	assert.Zero(t, h.RefCount())
}

func TestNewObjectClones(t *testing.T) {
	p := &point{x: 1, y: 2}
	v := variant.NewObject(p)
	p.x = 100

	obj, err := v.AsObject()
	require.NoError(t, err)
	assert.EqualValues(t, 1, obj.(*point).x)
	assert.False(t, v.IsProxy())
}

func TestMutateObjectCopyOnWrite(t *testing.T) {
	a := variant.NewObject(&point{x: 1})
	b := a.Clone()

	err := b.MutateObject(func(o variant.Object) error {
		o.(*point).x = 5
		return nil
	})
	require.NoError(t, err)

	ao, _ := a.AsObject()
	bo, _ := b.AsObject()
	assert.EqualValues(t, 1, ao.(*point).x)
	assert.EqualValues(t, 5, bo.(*point).x)

	ha, _ := a.Handle()
	hb, _ := b.Handle()
	assert.NotSame(t, ha, hb)
	assert.True(t, ha.Unique())
	assert.True(t, hb.Unique())

	// a unique handle is updated in place
	err = a.MutateObject(func(o variant.Object) error {
		o.(*point).y = 7
		return nil
	})
	require.NoError(t, err)
	ha2, _ := a.Handle()
	assert.Same(t, ha, ha2)
	ao, _ = a.AsObject()
	assert.EqualValues(t, 7, ao.(*point).y)
}

func TestMutateObjectFailureLeavesValue(t *testing.T) {
	v := variant.NewObject(&point{x: 1})
	err := v.MutateObject(func(o variant.Object) error {
		o.(*point).x = 99
		return errRejected
	})
	assert.ErrorIs(t, err, errRejected)
	obj, _ := v.AsObject()
	assert.EqualValues(t, 1, obj.(*point).x)

	s := variant.NewString("x")
	assert.ErrorIs(t, s.MutateObject(func(variant.Object) error { return nil }), variant.ErrTypeMismatch)
}

func TestFactory(t *testing.T) {
	f := variant.NewFactory()
	require.NoError(t, f.Register(func() variant.Object { return &point{} }))

	err := f.Register(func() variant.Object { return &point{} })
	assert.ErrorIs(t, err, variant.ErrDuplicateKey)
	err = f.Register(func() variant.Object { return variant.NewProxy("ghost") })
	assert.ErrorIs(t, err, variant.ErrFactory)

	obj, ok := f.Create("point")
	require.True(t, ok)
	assert.IsType(t, &point{}, obj)

	_, ok = f.Create("ghost")
	assert.False(t, ok)
	assert.Equal(t, []string{"point"}, f.Names())

	var nilFactory *variant.Factory
	_, ok = nilFactory.Create("point")
	assert.False(t, ok)
}

func TestProxy(t *testing.T) {
	p := variant.NewProxy("point")
	params := (&point{x: 3, y: 4}).Deflate()
	require.NoError(t, p.Inflate(params, 2))
	assert.Equal(t, "point", p.Name())
	assert.Equal(t, 2, p.Version())

	v := variant.NewObject(p)
	assert.True(t, v.IsProxy())

	// a proxy compares equal to the concrete object it stands for
	assert.True(t, v.Equal(variant.NewObject(&point{x: 3, y: 4})))

	var concrete point
	require.NoError(t, v.ObjectInto(&concrete))
	assert.Equal(t, point{x: 3, y: 4}, concrete)

	other := variant.NewProxy("circle")
	assert.ErrorIs(t, variant.Coerce(&concrete, other), variant.ErrTypeMismatch)
}

func TestCoerceInflateFailure(t *testing.T) {
	p := variant.NewProxy("point")
	require.NoError(t, p.Inflate(variant.NewDictionary(), 2))
	var dst point
	err := variant.Coerce(&dst, p)
	assert.ErrorIs(t, err, variant.ErrNotFound)
}

func TestFactoryResolve(t *testing.T) {
	p := variant.NewProxy("point")
	require.NoError(t, p.Inflate((&point{x: 8, y: 9}).Deflate(), 2))
	tree := variant.ListOf(variant.NewObject(p), variant.NewObject(variant.NewProxy("unknown")))

	f := variant.NewFactory()
	require.NoError(t, f.Register(func() variant.Object { return &point{} }))
	require.NoError(t, f.Resolve(&tree))

	first, _ := tree.At(0)
	assert.False(t, first.IsProxy())
	obj, _ := first.AsObject()
	assert.Equal(t, &point{x: 8, y: 9}, obj)

	second, _ := tree.At(1)
	assert.True(t, second.IsProxy())
}

func TestReleaseNested(t *testing.T) {
	h := variant.NewHandle(&point{})
	d := variant.NewDictionary()
	d.Insert("obj", variant.FromHandle(h))
	l := variant.ListOf(d, variant.FromHandle(h))
	assert.EqualValues(t, 3, h.RefCount())

	l.Release()
	assert.True(t, h.Unique())
}

func TestExceptionPayload(t *testing.T) {
	e := variant.MakeException("IOError", "disk full", "writer", "frame 1")
	v := variant.NewException(e)
	got, err := v.AsException()
	require.NoError(t, err)
	assert.Equal(t, e, got)
	assert.Equal(t, "IOError: disk full", got.Error())
	assert.Equal(t, "writer", got.Source())
	assert.Equal(t, "frame 1", got.Stack())

	cp := v.Clone()
	assert.True(t, cp.Equal(v))
	assert.Equal(t, v.Hash(0), cp.Hash(0))
}
