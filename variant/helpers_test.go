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

package variant_test

import (
	"errors"
	"fmt"

	"github.com/proteanic/protean-sub000/variant"
)

// point is a minimal Object used throughout the tests.
type point struct {
	x, y int32
}

func (p *point) Name() string { return "point" }
func (p *point) Version() int { return 2 }

func (p *point) Deflate() variant.Variant {
	d := variant.NewDictionary()
	d.Insert("x", variant.NewInt32(p.x))
	d.Insert("y", variant.NewInt32(p.y))
	return d
}

func (p *point) Inflate(params variant.Variant, version int) error {
	if version > 2 {
		return fmt.Errorf("unsupported point version %d", version)
	}
	x, err := params.AtKey("x")
	if err != nil {
		return err
	}
	y, err := params.AtKey("y")
	if err != nil {
		return err
	}
	if p.x, err = x.AsInt32(); err != nil {
		return err
	}
	p.y, err = y.AsInt32()
	return err
}

func (p *point) Clone() variant.Object {
	c := *p
	return &c
}

var errRejected = errors.New("rejected")

func mustNew(k variant.Kind, size int) variant.Variant {
	v, err := variant.New(k, size)
	if err != nil {
		panic(err)
	}
	return v
}
