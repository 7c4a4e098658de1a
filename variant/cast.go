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
	"math"
	"time"

	"golang.org/x/exp/constraints"
)

// Scalar is the set of Go types a Variant can be cast to with As.
type Scalar interface {
	bool | int32 | uint32 | int64 | uint64 | float32 | float64 | string |
		Date | time.Duration | time.Time | []byte | Exception
}

// As returns the payload of v converted to T, following the same rules as
// the kind specific As methods.
func As[T Scalar](v Variant) (T, error) {
	var (
		out T
		err error
	)
	switch p := any(&out).(type) {
	case *bool:
		*p, err = v.AsBool()
	case *int32:
		*p, err = v.AsInt32()
	case *uint32:
		*p, err = v.AsUInt32()
	case *int64:
		*p, err = v.AsInt64()
	case *uint64:
		*p, err = v.AsUInt64()
	case *float32:
		*p, err = v.AsFloat()
	case *float64:
		*p, err = v.AsDouble()
	case *string:
		*p, err = v.AsString()
	case *Date:
		*p, err = v.AsDate()
	case *time.Duration:
		*p, err = v.AsTime()
	case *time.Time:
		*p, err = v.AsDateTime()
	case *[]byte:
		*p, err = v.AsBuffer()
	case *Exception:
		*p, err = v.AsException()
	}
	return out, err
}

// AsBool returns the payload of a Boolean or the lexical value of an Any.
func (v Variant) AsBool() (bool, error) {
	switch v.Kind() {
	case KindBoolean:
		return v.slot.word != 0, nil
	case KindAny:
		b, err := parseBool(v.text())
		return b, WithContext(err, v)
	}
	return false, typeMismatch("AsBool()", v.Kind())
}

// integral converts an Int32, UInt32, Int64 or UInt64 payload to T,
// failing if the value does not fit.
func integral[T constraints.Integer](v Variant, op string) (T, error) {
	var out T
	switch v.Kind() {
	case KindInt32, KindInt64:
		s := int64(v.slot.word)
		out = T(s)
		if int64(out) != s || (out < 0) != (s < 0) {
			return 0, overflow(op, v)
		}
	case KindUInt32, KindUInt64:
		u := v.slot.word
		out = T(u)
		if uint64(out) != u || out < 0 {
			return 0, overflow(op, v)
		}
	}
	return out, nil
}

func overflow(op string, v Variant) error {
	return fmt.Errorf("%w: %s overflows in %s", ErrTypeMismatch, v.Summary(), op)
}

// AsInt32 converts an integer kind to int32, or parses an Any, failing
// when the value does not fit.
func (v Variant) AsInt32() (int32, error) {
	switch k := v.Kind(); {
	case k&kindIntegral != 0:
		return integral[int32](v, "AsInt32()")
	case k == KindAny:
		i, err := parseSigned(v.text(), 32)
		return int32(i), WithContext(err, v)
	}
	return 0, typeMismatch("AsInt32()", v.Kind())
}

// AsUInt32 converts an integer kind to uint32, or parses an Any, failing
// when the value does not fit.
func (v Variant) AsUInt32() (uint32, error) {
	switch k := v.Kind(); {
	case k&kindIntegral != 0:
		return integral[uint32](v, "AsUInt32()")
	case k == KindAny:
		u, err := parseUnsigned(v.text(), 32)
		return uint32(u), WithContext(err, v)
	}
	return 0, typeMismatch("AsUInt32()", v.Kind())
}

// AsInt64 converts an integer kind to int64, or parses an Any, failing
// when the value does not fit.
func (v Variant) AsInt64() (int64, error) {
	switch k := v.Kind(); {
	case k&kindIntegral != 0:
		return integral[int64](v, "AsInt64()")
	case k == KindAny:
		i, err := parseSigned(v.text(), 64)
		return i, WithContext(err, v)
	}
	return 0, typeMismatch("AsInt64()", v.Kind())
}

// AsUInt64 converts an integer kind to uint64, or parses an Any, failing
// when the value does not fit.
func (v Variant) AsUInt64() (uint64, error) {
	switch k := v.Kind(); {
	case k&kindIntegral != 0:
		return integral[uint64](v, "AsUInt64()")
	case k == KindAny:
		u, err := parseUnsigned(v.text(), 64)
		return u, WithContext(err, v)
	}
	return 0, typeMismatch("AsUInt64()", v.Kind())
}

// toFloat64 widens any numeric payload except Boolean.
func (v Variant) toFloat64() (float64, bool) {
	switch v.Kind() {
	case KindInt32, KindInt64:
		return float64(int64(v.slot.word)), true
	case KindUInt32, KindUInt64:
		return float64(v.slot.word), true
	case KindFloat:
		return float64(math.Float32frombits(uint32(v.slot.word))), true
	case KindDouble:
		return math.Float64frombits(v.slot.word), true
	}
	return 0, false
}

// AsFloat returns a Float payload, or converts an integer or Double
// payload. A finite Double outside the float32 range is a type mismatch.
func (v Variant) AsFloat() (float32, error) {
	switch v.Kind() {
	case KindFloat:
		return math.Float32frombits(uint32(v.slot.word)), nil
	case KindAny:
		f, err := parseFloat(v.text(), 32)
		return float32(f), WithContext(err, v)
	}
	f, ok := v.toFloat64()
	if !ok {
		return 0, typeMismatch("AsFloat()", v.Kind())
	}
	if !math.IsInf(f, 0) && !math.IsNaN(f) && math.Abs(f) > math.MaxFloat32 {
		return 0, overflow("AsFloat()", v)
	}
	return float32(f), nil
}

// AsDouble converts a numeric kind to float64 or parses an Any.
func (v Variant) AsDouble() (float64, error) {
	if v.Kind() == KindAny {
		f, err := parseFloat(v.text(), 64)
		return f, WithContext(err, v)
	}
	f, ok := v.toFloat64()
	if !ok {
		return 0, typeMismatch("AsDouble()", v.Kind())
	}
	return f, nil
}

// AsString returns the text of a String or Any variant. Other primitive
// kinds can be rendered with ToAny.
func (v Variant) AsString() (string, error) {
	if err := v.check(KindString|KindAny, "AsString()"); err != nil {
		return "", err
	}
	return v.text(), nil
}

// AsDate returns the payload of a Date variant.
func (v Variant) AsDate() (Date, error) {
	switch v.Kind() {
	case KindDate:
		return Date{days: int64(v.slot.word)}, nil
	case KindAny:
		d, err := parseDate(v.text())
		return d, WithContext(err, v)
	}
	return Date{}, typeMismatch("AsDate()", v.Kind())
}

// AsTime returns the payload of a Time variant as a duration.
func (v Variant) AsTime() (time.Duration, error) {
	switch v.Kind() {
	case KindTime:
		return time.Duration(int64(v.slot.word)) * time.Millisecond, nil
	case KindAny:
		d, err := parseTime(v.text())
		return d, WithContext(err, v)
	}
	return 0, typeMismatch("AsTime()", v.Kind())
}

// AsDateTime returns the payload of a DateTime variant in UTC.
func (v Variant) AsDateTime() (time.Time, error) {
	switch v.Kind() {
	case KindDateTime:
		return time.UnixMilli(int64(v.slot.word)).UTC(), nil
	case KindAny:
		t, err := parseDateTime(v.text())
		if err != nil {
			return time.Time{}, WithContext(err, v)
		}
		return truncMillis(t), nil
	}
	return time.Time{}, typeMismatch("AsDateTime()", v.Kind())
}

// AsBuffer returns the bytes of a Buffer variant. The result aliases the
// payload.
func (v Variant) AsBuffer() ([]byte, error) {
	if err := v.check(KindBuffer, "AsBuffer()"); err != nil {
		return nil, err
	}
	return v.slot.ref.([]byte), nil
}

// AsException returns the payload of an Exception variant.
func (v Variant) AsException() (Exception, error) {
	if err := v.check(KindException, "AsException()"); err != nil {
		return Exception{}, err
	}
	return *v.slot.ref.(*Exception), nil
}

// AsObject returns the object held by v. The object is shared with every
// copy of v; mutate it through MutateObject.
func (v Variant) AsObject() (Object, error) {
	if err := v.check(KindObject, "AsObject()"); err != nil {
		return nil, err
	}
	return v.slot.ref.(*Handle).obj, nil
}

// Handle returns the handle of an Object variant.
func (v Variant) Handle() (*Handle, error) {
	if err := v.check(KindObject, "Handle()"); err != nil {
		return nil, err
	}
	return v.slot.ref.(*Handle), nil
}

// Parse constructs a primitive variant of kind k from its textual form.
func Parse(k Kind, text string) (Variant, error) {
	if !k.Concrete() || k&KindPrimitive == 0 {
		return Variant{}, fmt.Errorf("%w: attempt to construct non-primitive kind %s from string", ErrTypeMismatch, k)
	}
	if k == KindString {
		return NewString(text), nil
	}
	return NewAny(text).ChangeKind(k)
}

// ToAny renders a primitive variant as Any text.
func (v Variant) ToAny() (Variant, error) {
	var s string
	switch k := v.Kind(); k {
	case KindAny, KindString:
		s = v.text()
	case KindBoolean:
		s = "false"
		if v.slot.word != 0 {
			s = "true"
		}
	case KindInt32, KindInt64:
		s = fmt.Sprint(int64(v.slot.word))
	case KindUInt32, KindUInt64:
		s = fmt.Sprint(v.slot.word)
	case KindFloat:
		s = formatFloat(float64(math.Float32frombits(uint32(v.slot.word))), 32)
	case KindDouble:
		s = formatFloat(math.Float64frombits(v.slot.word), 64)
	case KindDate:
		s = Date{days: int64(v.slot.word)}.String()
	case KindTime:
		s = formatTime(time.Duration(int64(v.slot.word)) * time.Millisecond)
	case KindDateTime:
		s = formatDateTime(time.UnixMilli(int64(v.slot.word)))
	default:
		return Variant{}, typeMismatch("ToAny()", k)
	}
	return NewAny(s), nil
}

// ChangeKind converts a primitive variant to another primitive kind by way
// of its textual form.
func (v Variant) ChangeKind(k Kind) (Variant, error) {
	if !k.Concrete() || k&KindPrimitive == 0 {
		return Variant{}, fmt.Errorf("%w: cannot change %s to non-primitive kind %s", ErrTypeMismatch, v.Kind(), k)
	}
	a, err := v.ToAny()
	if err != nil {
		return Variant{}, err
	}
	switch k {
	case KindAny:
		return a, nil
	case KindString:
		return NewString(a.text()), nil
	case KindBoolean:
		b, err := a.AsBool()
		return orNone(NewBool(b), err)
	case KindInt32:
		i, err := a.AsInt32()
		return orNone(NewInt32(i), err)
	case KindUInt32:
		u, err := a.AsUInt32()
		return orNone(NewUInt32(u), err)
	case KindInt64:
		i, err := a.AsInt64()
		return orNone(NewInt64(i), err)
	case KindUInt64:
		u, err := a.AsUInt64()
		return orNone(NewUInt64(u), err)
	case KindFloat:
		f, err := a.AsFloat()
		return orNone(NewFloat(f), err)
	case KindDouble:
		f, err := a.AsDouble()
		return orNone(NewDouble(f), err)
	case KindDate:
		d, err := a.AsDate()
		return orNone(NewDate(d), err)
	case KindTime:
		d, err := a.AsTime()
		return orNone(NewTime(d), err)
	default:
		t, err := a.AsDateTime()
		return orNone(NewDateTime(t), err)
	}
}

func orNone(v Variant, err error) (Variant, error) {
	if err != nil {
		return Variant{}, err
	}
	return v, nil
}
