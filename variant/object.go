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
	"cmp"
	"fmt"
	"sync/atomic"

	"github.com/proteanic/protean-sub000/internal/debug"
	"github.com/proteanic/protean-sub000/internal/hashing"
)

// Object is a user defined value that can travel inside a Variant. An
// Object serialises itself by deflating to a Variant of parameters and is
// rebuilt by inflating a fresh instance from those parameters.
type Object interface {
	// Name identifies the class of the object across processes.
	Name() string
	// Version is the schema version written alongside the parameters.
	Version() int
	// Deflate returns the parameters describing the object state.
	Deflate() Variant
	// Inflate restores the object state from params written at version.
	Inflate(params Variant, version int) error
	// Clone returns an independent copy of the object.
	Clone() Object
}

// Handle is a reference counted owner of an Object, shared by every
// Variant copy that refers to the same instance.
type Handle struct {
	refCount atomic.Int64
	obj      Object
}

// NewHandle returns a handle owning obj with a reference count of 1.
func NewHandle(obj Object) *Handle {
	h := &Handle{obj: obj}
	h.refCount.Store(1)
	return h
}

// Object returns the referenced object. Callers must not mutate it unless
// Unique reports true; use Variant.MutateObject instead.
func (h *Handle) Object() Object { return h.obj }

// Retain increases the reference count by 1.
func (h *Handle) Retain() { h.refCount.Add(1) }

// Release decreases the reference count by 1.
func (h *Handle) Release() {
	n := h.refCount.Add(-1)
	debug.Assert(n >= 0, "too many releases")
}

// Unique reports whether the caller holds the only reference.
func (h *Handle) Unique() bool { return h.refCount.Load() == 1 }

// RefCount returns the current reference count.
func (h *Handle) RefCount() int64 { return h.refCount.Load() }

func compareObjects(a, b Object) int {
	if c := cmp.Or(cmp.Compare(a.Name(), b.Name()), cmp.Compare(a.Version(), b.Version())); c != 0 {
		return c
	}
	return a.Deflate().Compare(b.Deflate())
}

func hashObject(o Object, seed uint64) uint64 {
	seed = hashing.String(o.Name(), seed)
	seed = hashing.Int64(int64(o.Version()), seed)
	return o.Deflate().Hash(seed)
}

// MutateObject applies fn to the object held by v. The mutation is
// applied to a clone, which replaces the shared object only if fn
// succeeds, so a failed mutation leaves v unchanged. When the handle is
// shared with other Variants, v is detached onto a new handle first.
func (v *Variant) MutateObject(fn func(Object) error) error {
	if err := v.check(KindObject, "MutateObject()"); err != nil {
		return err
	}
	h := v.slot.ref.(*Handle)
	obj := h.obj.Clone()
	if err := fn(obj); err != nil {
		return WithContext(err, *v)
	}
	if h.Unique() {
		h.obj = obj
		return nil
	}
	v.slot.ref = NewHandle(obj)
	h.Release()
	return nil
}

// IsProxy reports whether v holds an unresolved Proxy object.
func (v Variant) IsProxy() bool {
	if v.Kind() != KindObject {
		return false
	}
	_, ok := v.slot.ref.(*Handle).obj.(*Proxy)
	return ok
}

// Coerce transfers the state of src into dst by deflating src and
// inflating dst. Both must have the same class name. It is typically used
// to resolve a Proxy into its concrete class.
func Coerce(dst, src Object) error {
	if dst.Name() != src.Name() {
		return fmt.Errorf("%w: cannot coerce object of class %q into %q", ErrTypeMismatch, src.Name(), dst.Name())
	}
	if err := dst.Inflate(src.Deflate(), src.Version()); err != nil {
		return fmt.Errorf("inflating %q: %w", dst.Name(), err)
	}
	return nil
}

// ObjectInto coerces the object held by v into dst.
func (v Variant) ObjectInto(dst Object) error {
	if err := v.check(KindObject, "ObjectInto()"); err != nil {
		return err
	}
	return WithContext(Coerce(dst, v.slot.ref.(*Handle).obj), v)
}
