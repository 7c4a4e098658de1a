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
	"fmt"
	"regexp"
	"strings"
)

var selectStep = regexp.MustCompile(`^(\*|\w+)(?:\[@?(\w+)="?(\w[\s\w]*)"?\])?$`)

// Select evaluates a slash separated path against v and returns a List of
// copies of the matching values. Each step is a key, or * for every
// child, followed by an optional predicate [key="value"] that keeps only
// mappings whose key renders as value. An empty path selects v itself.
func (v Variant) Select(path string) (Variant, error) {
	var out []Variant
	if err := selectInto(&v, path, &out); err != nil {
		return Variant{}, err
	}
	return ListOf(out...), nil
}

func selectInto(input *Variant, path string, out *[]Variant) error {
	path = strings.TrimLeft(path, "/")
	if path == "" {
		*out = append(*out, input.Clone())
		return nil
	}
	head, tail, _ := strings.Cut(path, "/")

	m := selectStep.FindStringSubmatch(head)
	if m == nil {
		return fmt.Errorf("%w: select path has invalid syntax: %s", ErrParse, head)
	}
	node, predKey, predVal := m[1], m[2], m[3]

	var nodes []*Variant
	switch {
	case node == "*":
		for _, child := range input.All() {
			nodes = append(nodes, child)
		}
	case input.Is(KindMapping):
		nodes = input.slot.ref.(mapping).rangeOf(node)
	}

	for _, n := range nodes {
		if predKey != "" && !matchesPredicate(*n, predKey, predVal) {
			continue
		}
		if err := selectInto(n, tail, out); err != nil {
			return err
		}
	}
	return nil
}

func matchesPredicate(v Variant, key, want string) bool {
	if !v.Is(KindMapping) {
		return false
	}
	got, err := v.slot.ref.(mapping).get(key)
	if err != nil {
		return false
	}
	a, err := got.ToAny()
	return err == nil && a.text() == want
}
