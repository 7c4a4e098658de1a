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
	"fmt"
	"strings"

	"github.com/proteanic/protean-sub000/compress"
)

// Mode is the flags word of a message header. Flags other than
// ModeStrict are recorded by the writer; ModeStrict only affects readers
// and is never written.
type Mode uint32

const (
	ModeDefault Mode = 0
	// ModeCompress compresses the body.
	ModeCompress Mode = 0x1
	// ModeZlibHeader frames deflate compressed bodies with a zlib header.
	ModeZlibHeader Mode = 0x2
	// ModeStrict makes readers fail with variant.ErrFactory instead of
	// creating a proxy for object classes the factory does not know.
	ModeStrict Mode = 0x4
	// ModeDateTimeAsTicks marks temporal values encoded as day and
	// millisecond counts.
	ModeDateTimeAsTicks Mode = 0x8

	codecShift      = 8
	codecMask  Mode = 0xF << codecShift
)

// WithCodec returns m with compression enabled using c. Zlib selects the
// deflate codec with ModeZlibHeader.
func (m Mode) WithCodec(c compress.Compression) Mode {
	m = m&^(codecMask|ModeZlibHeader) | ModeCompress
	if c == compress.Codecs.Zlib {
		return m | ModeZlibHeader
	}
	return m | Mode(c)<<codecShift
}

// Codec returns the compression selected by m. It is only meaningful
// when ModeCompress is set.
func (m Mode) Codec() compress.Compression {
	c := compress.Compression((m & codecMask) >> codecShift)
	if c == compress.Codecs.Deflate && m&ModeZlibHeader != 0 {
		return compress.Codecs.Zlib
	}
	return c
}

var modeNames = []struct {
	flag Mode
	name string
}{
	{ModeCompress, "Compress"},
	{ModeZlibHeader, "ZlibHeader"},
	{ModeStrict, "Strict"},
	{ModeDateTimeAsTicks, "DateTimeAsTicks"},
}

func (m Mode) String() string {
	var parts []string
	for _, f := range modeNames {
		if m&f.flag != 0 {
			parts = append(parts, f.name)
		}
	}
	if m&ModeCompress != 0 {
		parts = append(parts, "codec="+m.Codec().String())
	}
	if rest := m &^ (ModeCompress | ModeZlibHeader | ModeStrict | ModeDateTimeAsTicks | codecMask); rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", uint32(rest)))
	}
	if len(parts) == 0 {
		return "Default"
	}
	return strings.Join(parts, "|")
}
