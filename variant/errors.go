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
	"errors"
	"fmt"
)

// Every failure reported by this module wraps exactly one of these
// sentinels, so callers can distinguish conditions with errors.Is while
// still receiving a descriptive message.
var (
	// ErrTypeMismatch is returned when casting, indexing or a kind-specific
	// operation is applied to a Variant of an incompatible kind.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrIndex is returned for sequence positions outside the valid range.
	ErrIndex = errors.New("index out of range")
	// ErrNotFound is returned when a mapping key is absent.
	ErrNotFound = errors.New("key not found")
	// ErrDuplicateKey is returned when inserting an existing key into a
	// dictionary, or registering a class name twice.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrParse is returned when text cannot be converted to the requested
	// kind.
	ErrParse = errors.New("bad lexical cast")
	// ErrWire is returned for malformed, truncated, or unsupported binary
	// streams and for failures of the underlying stream.
	ErrWire = errors.New("wire format error")
	// ErrIncompatible is returned when two collections or iterators of
	// incompatible shape are compared.
	ErrIncompatible = errors.New("incompatible operands")
	// ErrFactory is returned when strict object resolution finds no
	// constructor for a class name.
	ErrFactory = errors.New("object factory error")
)

func typeMismatch(op string, k Kind) error {
	return fmt.Errorf("%w: attempt to call %s on %s variant", ErrTypeMismatch, op, k)
}

// check fails with ErrTypeMismatch unless the kind of v intersects mask.
func (v Variant) check(mask Kind, op string) error {
	if v.Kind()&mask == 0 {
		return typeMismatch(op, v.Kind())
	}
	return nil
}

// WithContext appends the one-line summary of v to err, so that errors
// propagated out of nested structures identify the value they came from.
// It returns nil when err is nil.
func WithContext(err error, v Variant) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w\n\tin %s", err, v.Summary())
}
