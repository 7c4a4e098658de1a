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

	"github.com/pierrec/lz4/v4"
	"golang.org/x/xerrors"
)

var lz4Levels = [...]lz4.CompressionLevel{
	lz4.Fast, lz4.Level1, lz4.Level2, lz4.Level3, lz4.Level4,
	lz4.Level5, lz4.Level6, lz4.Level7, lz4.Level8, lz4.Level9,
}

// lz4Codec uses the lz4 frame format. Levels run from 0 (fast) to 9.
type lz4Codec struct{}

func (lz4Codec) NewReader(r io.Reader) (io.ReadCloser, error) {
	return nopCloser(lz4.NewReader(r)), nil
}

func (c lz4Codec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return c.NewWriterLevel(w, DefaultCompressionLevel)
}

func (lz4Codec) NewWriterLevel(w io.Writer, level int) (io.WriteCloser, error) {
	wr := lz4.NewWriter(w)
	if level == DefaultCompressionLevel {
		return wr, nil
	}
	level = max(0, min(level, len(lz4Levels)-1))
	if err := wr.Apply(lz4.CompressionLevelOption(lz4Levels[level])); err != nil {
		return nil, xerrors.Errorf("lz4 writer: %w", err)
	}
	return wr, nil
}

func init() {
	RegisterCodec(Codecs.Lz4, lz4Codec{})
}
