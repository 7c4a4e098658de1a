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

package wire_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/stretchr/testify/suite"

	"github.com/proteanic/protean-sub000/variant"
	"github.com/proteanic/protean-sub000/wire"
)

type ReaderSuite struct {
	suite.Suite

	mem *memory.CheckedAllocator
}

func (rs *ReaderSuite) SetupTest() {
	rs.mem = memory.NewCheckedAllocator(memory.DefaultAllocator)
}

func (rs *ReaderSuite) TearDownTest() {
	rs.mem.AssertSize(rs.T(), 0)
}

func (rs *ReaderSuite) unmarshal(data []byte, opts ...wire.Option) (variant.Variant, error) {
	return wire.Unmarshal(data, wire.ModeDefault, append(opts, wire.WithAllocator(rs.mem))...)
}

func (rs *ReaderSuite) TestAllKinds() {
	for name, v := range sampleValues() {
		data, err := wire.Marshal(v, wire.ModeDefault)
		rs.Require().NoError(err, name)
		got, err := rs.unmarshal(data)
		rs.Require().NoError(err, name)
		rs.Zero(v.Compare(got), name)
	}
}

func (rs *ReaderSuite) TestGrowingStrings() {
	v := variant.ListOf(
		variant.NewString(""),
		variant.NewString("a"),
		variant.NewBuffer(bytes.Repeat([]byte{7}, 300)),
		variant.NewString("bc"),
		variant.NewAny(string(bytes.Repeat([]byte("x"), 5000))),
	)
	data, err := wire.Marshal(v, wire.ModeDefault)
	rs.Require().NoError(err)
	got, err := rs.unmarshal(data)
	rs.Require().NoError(err)
	rs.True(v.Equal(got))
}

func (rs *ReaderSuite) TestTruncated() {
	v := variant.DictionaryOf(map[string]variant.Variant{
		"name": variant.NewString("some longer string value"),
		"blob": variant.NewBuffer([]byte{1, 2, 3}),
	})
	data, err := wire.Marshal(v, wire.ModeDefault)
	rs.Require().NoError(err)
	for n := wire.HeaderSize; n < len(data); n++ {
		_, err := rs.unmarshal(data[:n])
		rs.ErrorIs(err, variant.ErrWire, "truncated at %d", n)
	}
}

func (rs *ReaderSuite) TestOversizedString() {
	var buf []byte
	buf = binary.LittleEndian.AppendUint32(buf, wire.Magic)
	buf = binary.LittleEndian.AppendUint32(buf, 1<<16|1)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(wire.ModeDateTimeAsTicks))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(variant.KindString))
	buf = binary.LittleEndian.AppendUint32(buf, 1<<20)
	_, err := rs.unmarshal(buf, wire.WithMaxSize(1<<10))
	rs.ErrorIs(err, variant.ErrWire)

	// within the limit but longer than the remaining input
	_, err = rs.unmarshal(buf)
	rs.ErrorIs(err, variant.ErrWire)
}

func TestReaderSuite(t *testing.T) {
	suite.Run(t, new(ReaderSuite))
}
