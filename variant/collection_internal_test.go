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

package variant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectionCompareIncompatible(t *testing.T) {
	l := newList(1)
	tup := newTuple(1)
	_, err := l.compare(tup)
	assert.ErrorIs(t, err, ErrIncompatible)

	d := &dictionary{}
	_, err = d.compare(&bag{})
	assert.ErrorIs(t, err, ErrIncompatible)

	_, err = (&timeSeries{}).compare(d)
	assert.ErrorIs(t, err, ErrIncompatible)

	c, err := l.compare(newList(1))
	require.NoError(t, err)
	assert.Zero(t, c)
}

func TestDictionaryStaysSorted(t *testing.T) {
	d := &dictionary{}
	for _, k := range []string{"m", "a", "zzzzzzzzzz", "b", "aaaaaaaaaa"} {
		_, err := d.insert(k, NewString(k))
		require.NoError(t, err)
	}
	var keys []string
	for _, e := range d.entries {
		keys = append(keys, e.key.String())
	}
	assert.Equal(t, []string{"a", "aaaaaaaaaa", "b", "m", "zzzzzzzzzz"}, keys)
	assert.True(t, d.has("aaaaaaaaaa"))
	assert.False(t, d.has("aa"))
}

func TestCloneSharesNoBuffers(t *testing.T) {
	orig := NewBuffer([]byte("payload"))
	cp := orig.Clone()
	x, y := orig.slot.ref.([]byte), cp.slot.ref.([]byte)
	assert.NotSame(t, &x[0], &y[0])
}
