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

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zlib"
	"golang.org/x/xerrors"
)

type deflateCodec struct{}

func (deflateCodec) NewReader(r io.Reader) (io.ReadCloser, error) {
	return flate.NewReader(r), nil
}

func (c deflateCodec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return c.NewWriterLevel(w, DefaultCompressionLevel)
}

func (deflateCodec) NewWriterLevel(w io.Writer, level int) (io.WriteCloser, error) {
	if level == DefaultCompressionLevel {
		level = flate.DefaultCompression
	}
	wr, err := flate.NewWriter(w, level)
	if err != nil {
		return nil, xerrors.Errorf("deflate writer: %w", err)
	}
	return wr, nil
}

type zlibCodec struct{}

func (zlibCodec) NewReader(r io.Reader) (io.ReadCloser, error) {
	rd, err := zlib.NewReader(r)
	if err != nil {
		return nil, xerrors.Errorf("zlib reader: %w", err)
	}
	return rd, nil
}

func (c zlibCodec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return c.NewWriterLevel(w, DefaultCompressionLevel)
}

func (zlibCodec) NewWriterLevel(w io.Writer, level int) (io.WriteCloser, error) {
	if level == DefaultCompressionLevel {
		level = zlib.DefaultCompression
	}
	wr, err := zlib.NewWriterLevel(w, level)
	if err != nil {
		return nil, xerrors.Errorf("zlib writer: %w", err)
	}
	return wr, nil
}

func init() {
	RegisterCodec(Codecs.Deflate, deflateCodec{})
	RegisterCodec(Codecs.Zlib, zlibCodec{})
}
