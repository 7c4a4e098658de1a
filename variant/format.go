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
	"strings"
	"time"
)

const indentUnit = "   "

// String renders v and all of its children on multiple indented lines.
func (v Variant) String() string {
	var sb strings.Builder
	writeVariant(&sb, v, "", "")
	return sb.String()
}

// Summary renders v on a single line. Collections are shown by kind and
// size only.
func (v Variant) Summary() string {
	switch k := v.Kind(); {
	case k&KindCollection != 0:
		return fmt.Sprintf("%s(size=%d)", k, v.coll().size())
	case k == KindBuffer:
		return fmt.Sprintf("Buffer(size=%d)", len(v.slot.ref.([]byte)))
	case k == KindException:
		e := v.slot.ref.(*Exception)
		return fmt.Sprintf("Exception(%s)", e.Error())
	case k == KindObject:
		obj := v.slot.ref.(*Handle).obj
		return fmt.Sprintf("Object(class=%s, version=%d)", obj.Name(), obj.Version())
	}
	var sb strings.Builder
	writeScalar(&sb, v)
	return sb.String()
}

func writeScalar(sb *strings.Builder, v Variant) {
	switch v.Kind() {
	case KindNone:
		sb.WriteString("None")
	case KindAny:
		fmt.Fprintf(sb, "Any('%s')", v.text())
	case KindString:
		fmt.Fprintf(sb, "'%s'", v.text())
	default:
		a, _ := v.ToAny()
		sb.WriteString(a.text())
	}
}

// writeVariant renders v. lead is written before v itself, indent before
// each subsequent line.
func writeVariant(sb *strings.Builder, v Variant, lead, indent string) {
	sb.WriteString(lead)
	inner := indent + indentUnit
	switch k := v.Kind(); k {
	case KindList, KindTuple:
		lb, rb := "[", "]"
		if k == KindTuple {
			lb, rb = "(", ")"
		}
		sb.WriteString(lb + "\n")
		items := v.coll().(seqElems).elems()
		for i := range items {
			writeVariant(sb, items[i], inner, inner)
			writeSeparator(sb, i, len(items))
		}
		sb.WriteString(indent + rb)
	case KindDictionary, KindBag:
		lb, rb := "{", "}"
		if k == KindBag {
			lb, rb = "[", "]"
		}
		sb.WriteString(lb + "\n")
		entries := v.slot.ref.(mapping).entrySlice()
		for i := range entries {
			writeChild(sb, entries[i].key.String(), entries[i].value, inner)
			writeSeparator(sb, i, len(entries))
		}
		sb.WriteString(indent + rb)
	case KindTimeSeries:
		sb.WriteString("TimeSeries(\n")
		samples := v.slot.ref.(*timeSeries).samples
		for i := range samples {
			writeChild(sb, formatDateTime(time.UnixMilli(samples[i].at)), samples[i].value, inner)
			writeSeparator(sb, i, len(samples))
		}
		sb.WriteString(indent + ")")
	case KindBuffer:
		fmt.Fprintf(sb, "Buffer(size=%d, data=%x)", len(v.slot.ref.([]byte)), v.slot.ref.([]byte))
	case KindException:
		e := v.slot.ref.(*Exception)
		fmt.Fprintf(sb, "Exception(type=%s, message=%s", e.typ, e.message)
		if e.source != "" {
			fmt.Fprintf(sb, ", source=%s", e.source)
		}
		sb.WriteString(")")
	case KindObject:
		obj := v.slot.ref.(*Handle).obj
		fmt.Fprintf(sb, "Object(class=%s, version=%d)\n", obj.Name(), obj.Version())
		writeVariant(sb, obj.Deflate(), inner, inner)
	default:
		writeScalar(sb, v)
	}
}

// writeChild renders a keyed element: primitives on the key's line, nested
// values on the following lines.
func writeChild(sb *strings.Builder, key string, v Variant, indent string) {
	sb.WriteString(indent + key + ":")
	if v.Is(KindPrimitive | KindNone) {
		sb.WriteString(" ")
		writeScalar(sb, v)
		return
	}
	sb.WriteString("\n")
	writeVariant(sb, v, indent+indentUnit, indent+indentUnit)
}

func writeSeparator(sb *strings.Builder, i, n int) {
	if i+1 < n {
		sb.WriteString(",")
	}
	sb.WriteString("\n")
}
