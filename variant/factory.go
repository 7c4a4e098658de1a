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
	"maps"
	"slices"
)

// Factory maps class names to object constructors. A Factory is populated
// explicitly by the application and passed to decoders; it is not safe for
// concurrent registration.
type Factory struct {
	ctors map[string]func() Object
}

// NewFactory returns an empty Factory.
func NewFactory() *Factory {
	return &Factory{ctors: make(map[string]func() Object)}
}

// Register adds ctor under the class name reported by the object it
// constructs. Registering a name twice, or registering a Proxy, fails.
func (f *Factory) Register(ctor func() Object) error {
	obj := ctor()
	if _, ok := obj.(*Proxy); ok {
		return fmt.Errorf("%w: cannot register proxy object %q", ErrFactory, obj.Name())
	}
	name := obj.Name()
	if _, ok := f.ctors[name]; ok {
		return fmt.Errorf("%w: class %q already registered", ErrDuplicateKey, name)
	}
	f.ctors[name] = ctor
	return nil
}

// Create returns a new instance of the class registered under name. The
// second result is false if nothing is registered.
func (f *Factory) Create(name string) (Object, bool) {
	if f == nil {
		return nil, false
	}
	ctor, ok := f.ctors[name]
	if !ok {
		return nil, false
	}
	return ctor(), true
}

// Names returns the registered class names in ascending order.
func (f *Factory) Names() []string {
	return slices.Sorted(maps.Keys(f.ctors))
}

// Resolve replaces every Proxy in v whose class is registered with f by an
// instance of that class, recursing into collections. Proxies of unknown
// classes are left in place.
func (f *Factory) Resolve(v *Variant) error {
	switch k := v.Kind(); {
	case k == KindObject:
		p, ok := v.slot.ref.(*Handle).obj.(*Proxy)
		if !ok {
			return nil
		}
		obj, ok := f.Create(p.Name())
		if !ok {
			return nil
		}
		if err := Coerce(obj, p); err != nil {
			return WithContext(err, *v)
		}
		v.slot.ref.(*Handle).Release()
		v.slot.ref = NewHandle(obj)
	case k&KindCollection != 0:
		for _, child := range v.All() {
			if err := f.Resolve(child); err != nil {
				return WithContext(err, *v)
			}
		}
	}
	return nil
}
