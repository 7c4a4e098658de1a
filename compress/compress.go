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

// Package compress provides the streaming codecs that can be applied to the
// body of a binary encoded variant.
package compress

import (
	"fmt"
	"io"
	"math"

	"golang.org/x/xerrors"
)

// Compression identifies a codec. The values of the codecs selectable on
// the wire are the selector stored in bits 8 through 11 of the header mode
// word; Zlib is deflate with a zlib header and is selected by a separate
// flag.
type Compression uint8

const (
	codecDeflate Compression = iota
	codecSnappy
	codecLz4
	codecZstd
	codecBrotli
	codecZlib
)

// Codecs is a useful struct to provide the various compression types
// without polluting the package namespace.
var Codecs = struct {
	Deflate Compression
	Snappy  Compression
	Lz4     Compression
	Zstd    Compression
	Brotli  Compression
	Zlib    Compression
}{
	Deflate: codecDeflate,
	Snappy:  codecSnappy,
	Lz4:     codecLz4,
	Zstd:    codecZstd,
	Brotli:  codecBrotli,
	Zlib:    codecZlib,
}

var codecNames = [...]string{"DEFLATE", "SNAPPY", "LZ4", "ZSTD", "BROTLI", "ZLIB"}

func (c Compression) String() string {
	if int(c) < len(codecNames) {
		return codecNames[c]
	}
	return fmt.Sprintf("Compression(%d)", uint8(c))
}

// DefaultCompressionLevel asks each codec to use its own default level.
const DefaultCompressionLevel = math.MinInt

// Codec is a streaming compressor/decompressor pair.
type Codec interface {
	// NewReader returns a reader that decompresses data read from r.
	NewReader(r io.Reader) (io.ReadCloser, error)
	// NewWriter returns a writer that compresses data into w at the
	// codec's default level. Close must be called to flush.
	NewWriter(w io.Writer) (io.WriteCloser, error)
	// NewWriterLevel is NewWriter with an explicit compression level, in
	// the codec's own scale.
	NewWriterLevel(w io.Writer, level int) (io.WriteCloser, error)
}

var codecs = map[Compression]Codec{}

// RegisterCodec installs codec for compression, replacing any previous
// registration.
func RegisterCodec(compression Compression, codec Codec) {
	codecs[compression] = codec
}

// GetCodec returns the codec registered for typ.
func GetCodec(typ Compression) (Codec, error) {
	ret, ok := codecs[typ]
	if !ok {
		return nil, xerrors.Errorf("compression for %s unimplemented", typ)
	}
	return ret, nil
}

// nopCloser adds a no-op Close to decompressors that do not own resources.
func nopCloser(r io.Reader) io.ReadCloser { return io.NopCloser(r) }
