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

	"github.com/proteanic/protean-sub000/internal/hashing"
)

// Exception is an immutable record describing a failure: its type name,
// message, and optionally the source that raised it and a stack trace.
type Exception struct {
	typ     string
	message string
	source  string
	stack   string
}

// MakeException returns an Exception record. source and stack may be
// empty.
func MakeException(typ, message, source, stack string) Exception {
	return Exception{typ: typ, message: message, source: source, stack: stack}
}

// ExceptionFromError records err with its dynamic Go type as the type name.
func ExceptionFromError(err error) Exception {
	return Exception{typ: fmt.Sprintf("%T", err), message: err.Error()}
}

func (e Exception) Type() string    { return e.typ }
func (e Exception) Message() string { return e.message }
func (e Exception) Source() string  { return e.source }
func (e Exception) Stack() string   { return e.stack }

// Error implements the error interface so that an Exception carried in a
// Variant can be returned directly.
func (e Exception) Error() string {
	if e.message == "" {
		return e.typ
	}
	return e.typ + ": " + e.message
}

// Compare orders exceptions by type, message, source and then stack.
func (e Exception) Compare(o Exception) int {
	return cmp.Or(
		cmp.Compare(e.typ, o.typ),
		cmp.Compare(e.message, o.message),
		cmp.Compare(e.source, o.source),
		cmp.Compare(e.stack, o.stack),
	)
}

func (e *Exception) hash(seed uint64) uint64 {
	for _, s := range [...]string{e.typ, e.message, e.source, e.stack} {
		seed = hashing.String(s, seed)
	}
	return seed
}
