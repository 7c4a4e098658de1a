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

package compress

import (
	"io"

	"github.com/klauspost/compress/zstd"
	"golang.org/x/xerrors"
)

type zstdCodec struct{}

func (zstdCodec) NewReader(r io.Reader) (io.ReadCloser, error) {
	dec, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, xerrors.Errorf("zstd reader: %w", err)
	}
	return dec.IOReadCloser(), nil
}

func (c zstdCodec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return c.NewWriterLevel(w, DefaultCompressionLevel)
}

// NewWriterLevel takes a level in the zstd scale of 1 to 22.
func (zstdCodec) NewWriterLevel(w io.Writer, level int) (io.WriteCloser, error) {
	opts := []zstd.EOption{zstd.WithEncoderConcurrency(1)}
	if level != DefaultCompressionLevel {
		opts = append(opts, zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(level)))
	}
	enc, err := zstd.NewWriter(w, opts...)
	if err != nil {
		return nil, xerrors.Errorf("zstd writer: %w", err)
	}
	return enc, nil
}

func init() {
	RegisterCodec(Codecs.Zstd, zstdCodec{})
}
