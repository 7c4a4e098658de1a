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
	"encoding/binary"
	"fmt"
	"io"

	"github.com/proteanic/protean-sub000/variant"
)

const (
	Magic uint32 = 0x484913FF

	// MajorVersion is the highest major version this package reads.
	MajorVersion uint16 = 1
	MinorVersion uint16 = 1

	HeaderSize = 12
)

// Header is the fixed size preamble of every message.
type Header struct {
	Major uint16
	Minor uint16
	Mode  Mode
}

func (h Header) marshal() [HeaderSize]byte {
	var buf [HeaderSize]byte
	binary.LittleEndian.PutUint32(buf[0:], Magic)
	binary.LittleEndian.PutUint32(buf[4:], uint32(h.Major)<<16|uint32(h.Minor))
	binary.LittleEndian.PutUint32(buf[8:], uint32(h.Mode))
	return buf
}

func (h Header) String() string {
	return fmt.Sprintf("v%d.%d mode=%s", h.Major, h.Minor, h.Mode)
}

// ReadHeader reads and validates a message header. It fails with
// variant.ErrWire for short input, a bad magic number, or a major version
// newer than MajorVersion.
func ReadHeader(r io.Reader) (Header, error) {
	var buf [HeaderSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return Header{}, streamError("reading header", err)
	}
	if magic := binary.LittleEndian.Uint32(buf[0:]); magic != Magic {
		return Header{}, fmt.Errorf("%w: bad magic number 0x%08x, this looks like invalid binary data", variant.ErrWire, magic)
	}
	version := binary.LittleEndian.Uint32(buf[4:])
	h := Header{
		Major: uint16(version >> 16),
		Minor: uint16(version),
		Mode:  Mode(binary.LittleEndian.Uint32(buf[8:])),
	}
	if h.Major > MajorVersion {
		return Header{}, fmt.Errorf("%w: received binary data version %d.%d is not compatible with this version %d.%d",
			variant.ErrWire, h.Major, h.Minor, MajorVersion, MinorVersion)
	}
	return h, nil
}
