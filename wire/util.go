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
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/proteanic/protean-sub000/variant"
)

var (
	// minDateTime is the epoch of the tick encodings.
	minDateTime   = time.Date(1400, time.January, 1, 0, 0, 0, 0, time.UTC)
	minDate       = variant.DateFromTime(minDateTime)
	minDateTimeMs = minDateTime.UnixMilli()
)

var zeros [4]byte

// padding returns the number of zero bytes that follow a raw field of
// length n.
func padding(n int) int {
	return (4 - n%4) % 4
}

// streamError wraps a failure of the underlying stream. Short reads are
// reported as truncation.
func streamError(op string, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %s: truncated stream", variant.ErrWire, op)
	}
	return fmt.Errorf("%w: %s: %w", variant.ErrWire, op, err)
}
