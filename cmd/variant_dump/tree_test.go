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

package main

import (
	"bytes"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proteanic/protean-sub000/variant"
	"github.com/proteanic/protean-sub000/wire"
)

func TestFlatten(t *testing.T) {
	ts := variant.NewTimeSeries()
	ts.PushBackAt(time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC), variant.NewInt32(9))
	v := variant.DictionaryOf(map[string]variant.Variant{
		"a":  variant.ListOf(variant.NewString("x"), variant.NewBool(true)),
		"ts": ts,
	})

	rows := flatten(v, "", nil)
	paths := make([]string, len(rows))
	for i, r := range rows {
		paths[i] = r.path
	}
	assert.Equal(t, []string{"", "/a", "/a[0]", "/a[1]", "/ts", "/ts@2020-01-02T03:04:05.000"}, paths)
	assert.Equal(t, "size=2", rows[0].value)
	assert.Equal(t, variant.KindString, rows[2].kind)
	assert.Equal(t, "'x'", rows[2].value)
}

func TestDumpStreamJSON(t *testing.T) {
	var in bytes.Buffer
	require.NoError(t, wire.Write(&in, variant.ListOf(variant.NewInt32(1), variant.NewString("two")), wire.ModeDefault))
	require.NoError(t, wire.Write(&in, variant.NewBool(false), wire.ModeDefault))

	var out bytes.Buffer
	require.NoError(t, dumpStream(&in, "test", wire.ModeDefault, config{JSON: true}, nil, &out))
	assert.Equal(t, "[\n  1,\n  \"two\"\n]\nfalse\n", out.String())
}

func TestDumpStreamTruncated(t *testing.T) {
	data, err := wire.Marshal(variant.NewString("abc"), wire.ModeDefault)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	err = dumpStream(bytes.NewReader(data[:len(data)-2]), "test", wire.ModeDefault, config{}, []wire.Option{wire.WithLogger(logger)}, io.Discard)
	assert.ErrorIs(t, err, variant.ErrWire)
}
