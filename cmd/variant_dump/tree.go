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
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"

	"github.com/proteanic/protean-sub000/variant"
)

type row struct {
	path  string
	kind  variant.Kind
	value string
}

// flatten lists v and every nested member in depth first order.
func flatten(v variant.Variant, path string, rows []row) []row {
	value := ""
	if !v.Is(variant.KindCollection) {
		value = v.Summary()
	} else if n, err := v.Len(); err == nil {
		value = fmt.Sprintf("size=%d", n)
	}
	rows = append(rows, row{path: path, kind: v.Kind(), value: value})

	switch {
	case v.Is(variant.KindSequence):
		for i, item := range v.All() {
			rows = flatten(*item, fmt.Sprintf("%s[%d]", path, i), rows)
		}
	case v.Is(variant.KindMapping):
		for key, item := range v.Entries() {
			rows = flatten(*item, path+"/"+key, rows)
		}
	case v.Is(variant.KindTimeSeries):
		for at, item := range v.Times() {
			rows = flatten(*item, path+"@"+at.Format("2006-01-02T15:04:05.000"), rows)
		}
	}
	return rows
}

func renderTree(out io.Writer, v variant.Variant) {
	data := pterm.TableData{{"path", "kind", "value"}}
	for _, r := range flatten(v, "", nil) {
		path := r.path
		if path == "" {
			path = "/"
		}
		data = append(data, []string{path, r.kind.String(), strings.ReplaceAll(r.value, "\n", " ")})
	}
	pterm.DefaultTable.WithHasHeader(true).WithWriter(out).WithData(data).Render()
}
