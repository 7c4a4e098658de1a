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

package wire

import (
	"bytes"
	"io"

	"github.com/proteanic/protean-sub000/variant"
)

// Write encodes v as a single message onto w.
func Write(w io.Writer, v variant.Variant, mode Mode, opts ...Option) error {
	return NewWriter(w, mode, opts...).Write(v)
}

// Read decodes a single message from r. An empty stream is reported as
// truncated.
func Read(r io.Reader, mode Mode, opts ...Option) (variant.Variant, error) {
	v, err := NewReader(r, mode, opts...).Read()
	if err == io.EOF {
		return v, streamError("reading header", err)
	}
	return v, err
}

// Marshal returns the encoding of v.
func Marshal(v variant.Variant, mode Mode, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, v, mode, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes the message held by data.
func Unmarshal(data []byte, mode Mode, opts ...Option) (variant.Variant, error) {
	return Read(bytes.NewReader(data), mode, opts...)
}
