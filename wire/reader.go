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

package wire

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/proteanic/protean-sub000/compress"
	"github.com/proteanic/protean-sub000/variant"
)

// Reader decodes binary messages from an input stream.
//
// Uncompressed messages may follow each other on the same stream. A
// compressed body is read until the codec reports its end, and codecs may
// consume input beyond it.
type Reader struct {
	br   *bufio.Reader
	mode Mode
	cfg  *config

	hdr     Header
	src     *bufio.Reader
	scratch []byte
	word    [8]byte
}

// NewReader returns a Reader for r. Of the mode flags only ModeStrict is
// used; everything else is taken from each message header.
func NewReader(r io.Reader, mode Mode, opts ...Option) *Reader {
	return &Reader{
		br:   bufio.NewReader(r),
		mode: mode & ModeStrict,
		cfg:  newConfig(opts...),
	}
}

// Header returns the header of the last message read.
func (r *Reader) Header() Header { return r.hdr }

// Read decodes the next message. It returns io.EOF when the stream ends
// cleanly before a header.
func (r *Reader) Read() (variant.Variant, error) {
	if _, err := r.br.Peek(1); err == io.EOF {
		return variant.Variant{}, io.EOF
	}
	hdr, err := ReadHeader(r.br)
	if err != nil {
		return variant.Variant{}, err
	}
	r.hdr = hdr
	r.cfg.logger.Debug("accepted header", "version", fmt.Sprintf("%d.%d", hdr.Major, hdr.Minor), "mode", hdr.Mode)

	r.src = r.br
	if hdr.Mode&ModeCompress != 0 {
		c := hdr.Mode.Codec()
		codec, err := compress.GetCodec(c)
		if err != nil {
			return variant.Variant{}, fmt.Errorf("%w: %w", variant.ErrWire, err)
		}
		cr, err := codec.NewReader(r.br)
		if err != nil {
			return variant.Variant{}, streamError("opening decompressor", err)
		}
		defer cr.Close()
		r.cfg.logger.Debug("decompressing body", "codec", c)
		r.src = bufio.NewReader(cr)
	}

	defer r.freeScratch()
	return r.readTagged(0)
}

func (r *Reader) freeScratch() {
	if r.scratch != nil {
		r.cfg.mem.Free(r.scratch)
		r.scratch = nil
	}
}

// buffer returns n bytes of scratch memory, valid until the next call.
func (r *Reader) buffer(n int) []byte {
	switch {
	case n == 0:
		return nil
	case r.scratch == nil:
		r.scratch = r.cfg.mem.Allocate(n)
	case cap(r.scratch) < n:
		r.scratch = r.cfg.mem.Reallocate(n, r.scratch)
	}
	return r.scratch[:n]
}

func (r *Reader) readFull(p []byte) error {
	if _, err := io.ReadFull(r.src, p); err != nil {
		return streamError("reading body", err)
	}
	if n := padding(len(p)); n > 0 {
		if _, err := io.ReadFull(r.src, r.word[:n]); err != nil {
			return streamError("reading padding", err)
		}
	}
	return nil
}

func (r *Reader) readUint32() (uint32, error) {
	if err := r.readFull(r.word[:4]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(r.word[:4]), nil
}

func (r *Reader) readUint64() (uint64, error) {
	if err := r.readFull(r.word[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(r.word[:]), nil
}

func (r *Reader) readLength(what string) (int, error) {
	n, err := r.readUint32()
	if err != nil {
		return 0, err
	}
	if uint64(n) > uint64(r.cfg.maxSize) {
		return 0, fmt.Errorf("%w: %s length %d exceeds limit of %d", variant.ErrWire, what, n, r.cfg.maxSize)
	}
	return int(n), nil
}

func (r *Reader) readBytes(what string) ([]byte, error) {
	n, err := r.readLength(what)
	if err != nil {
		return nil, err
	}
	buf := r.buffer(n)
	if err := r.readFull(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

func (r *Reader) readString() (string, error) {
	buf, err := r.readBytes("string")
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

func (r *Reader) ticks() bool { return r.hdr.Mode&ModeDateTimeAsTicks != 0 }

func (r *Reader) readDate() (variant.Date, error) {
	if !r.ticks() {
		return r.readPackedDate()
	}
	days, err := r.readUint32()
	if err != nil {
		return variant.Date{}, err
	}
	return variant.DateFromDays(minDate.Days() + int64(days)), nil
}

func (r *Reader) readPackedDate() (variant.Date, error) {
	if err := r.readFull(r.word[:4]); err != nil {
		return variant.Date{}, err
	}
	year := int(binary.LittleEndian.Uint16(r.word[0:]))
	month, day := time.Month(r.word[2]), int(r.word[3])
	if month < time.January || month > time.December || day < 1 || day > 31 {
		return variant.Date{}, fmt.Errorf("%w: invalid packed date %04d-%02d-%02d", variant.ErrWire, year, month, day)
	}
	return variant.DateOf(year, month, day), nil
}

func (r *Reader) readPackedTime() (time.Duration, error) {
	if err := r.readFull(r.word[:4]); err != nil {
		return 0, err
	}
	h, m, s := r.word[0], r.word[1], r.word[2]
	if h > 23 || m > 59 || s > 59 {
		return 0, fmt.Errorf("%w: invalid packed time %02d:%02d:%02d", variant.ErrWire, h, m, s)
	}
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(s)*time.Second, nil
}

func (r *Reader) readTime() (time.Duration, error) {
	if !r.ticks() {
		return r.readPackedTime()
	}
	ms, err := r.readUint64()
	if err != nil {
		return 0, err
	}
	return time.Duration(int64(ms)) * time.Millisecond, nil
}

func (r *Reader) readDateTime() (time.Time, error) {
	if !r.ticks() {
		d, err := r.readPackedDate()
		if err != nil {
			return time.Time{}, err
		}
		tod, err := r.readPackedTime()
		if err != nil {
			return time.Time{}, err
		}
		return d.Time().Add(tod), nil
	}
	ms, err := r.readUint64()
	if err != nil {
		return time.Time{}, err
	}
	return time.UnixMilli(minDateTimeMs + int64(ms)).UTC(), nil
}

func (r *Reader) readTagged(depth int) (variant.Variant, error) {
	tag, err := r.readUint32()
	if err != nil {
		return variant.Variant{}, err
	}
	k := variant.Kind(tag)
	if !k.Concrete() {
		return variant.Variant{}, fmt.Errorf("%w: unknown variant kind 0x%08x", variant.ErrWire, tag)
	}
	if k&(variant.KindCollection|variant.KindObject) != 0 && depth >= maxDepth {
		return variant.Variant{}, fmt.Errorf("%w: nesting deeper than %d", variant.ErrWire, maxDepth)
	}
	return r.readValue(k, depth)
}

func (r *Reader) readValue(k variant.Kind, depth int) (variant.Variant, error) {
	switch k {
	case variant.KindNone:
		return variant.Variant{}, nil
	case variant.KindString, variant.KindAny:
		s, err := r.readString()
		if err != nil {
			return variant.Variant{}, err
		}
		if k == variant.KindAny {
			return variant.NewAny(s), nil
		}
		return variant.NewString(s), nil
	case variant.KindBoolean:
		u, err := r.readUint32()
		return variant.NewBool(u != 0), err
	case variant.KindInt32:
		u, err := r.readUint32()
		return variant.NewInt32(int32(u)), err
	case variant.KindUInt32:
		u, err := r.readUint32()
		return variant.NewUInt32(u), err
	case variant.KindInt64:
		u, err := r.readUint64()
		return variant.NewInt64(int64(u)), err
	case variant.KindUInt64:
		u, err := r.readUint64()
		return variant.NewUInt64(u), err
	case variant.KindFloat:
		u, err := r.readUint32()
		return variant.NewFloat(math.Float32frombits(u)), err
	case variant.KindDouble:
		u, err := r.readUint64()
		return variant.NewDouble(math.Float64frombits(u)), err
	case variant.KindDate:
		d, err := r.readDate()
		return variant.NewDate(d), err
	case variant.KindTime:
		d, err := r.readTime()
		return variant.NewTime(d), err
	case variant.KindDateTime:
		t, err := r.readDateTime()
		return variant.NewDateTime(t), err
	case variant.KindBuffer:
		b, err := r.readBytes("buffer")
		if err != nil {
			return variant.Variant{}, err
		}
		return variant.NewBuffer(b), nil
	case variant.KindList, variant.KindTuple:
		return r.readSequence(k, depth)
	case variant.KindDictionary, variant.KindBag:
		return r.readMapping(k, depth)
	case variant.KindTimeSeries:
		return r.readTimeSeries(depth)
	case variant.KindException:
		var fields [4]string
		for i := range fields {
			s, err := r.readString()
			if err != nil {
				return variant.Variant{}, err
			}
			fields[i] = s
		}
		return variant.NewException(variant.MakeException(fields[0], fields[1], fields[2], fields[3])), nil
	case variant.KindObject:
		return r.readObject(depth)
	}
	return variant.Variant{}, fmt.Errorf("%w: unknown variant kind %s", variant.ErrWire, k)
}

// initialCap caps preallocation so a forged count cannot force a large
// allocation before the items are actually read.
func initialCap(n int) int { return min(n, 1024) }

func (r *Reader) readSequence(k variant.Kind, depth int) (variant.Variant, error) {
	n, err := r.readLength("collection")
	if err != nil {
		return variant.Variant{}, err
	}
	items := make([]variant.Variant, 0, initialCap(n))
	for range n {
		item, err := r.readTagged(depth + 1)
		if err != nil {
			return variant.Variant{}, err
		}
		items = append(items, item)
	}
	if k == variant.KindTuple {
		return variant.TupleOf(items...), nil
	}
	return variant.ListOf(items...), nil
}

func (r *Reader) readMapping(k variant.Kind, depth int) (variant.Variant, error) {
	n, err := r.readLength("collection")
	if err != nil {
		return variant.Variant{}, err
	}
	out := variant.NewBag()
	if k == variant.KindDictionary {
		out = variant.NewDictionary()
	}
	for range n {
		key, err := r.readString()
		if err != nil {
			return variant.Variant{}, err
		}
		item, err := r.readTagged(depth + 1)
		if err != nil {
			return variant.Variant{}, err
		}
		if _, err := out.Insert(key, item); err != nil {
			return variant.Variant{}, fmt.Errorf("%w: %w", variant.ErrWire, err)
		}
	}
	return out, nil
}

func (r *Reader) readTimeSeries(depth int) (variant.Variant, error) {
	n, err := r.readLength("collection")
	if err != nil {
		return variant.Variant{}, err
	}
	out := variant.NewTimeSeries()
	for range n {
		at, err := r.readDateTime()
		if err != nil {
			return variant.Variant{}, err
		}
		item, err := r.readTagged(depth + 1)
		if err != nil {
			return variant.Variant{}, err
		}
		if _, err := out.PushBackAt(at, item); err != nil {
			return variant.Variant{}, err
		}
	}
	return out, nil
}

func (r *Reader) readObject(depth int) (variant.Variant, error) {
	name, err := r.readString()
	if err != nil {
		return variant.Variant{}, err
	}
	version, err := r.readUint32()
	if err != nil {
		return variant.Variant{}, err
	}
	params, err := r.readTagged(depth + 1)
	if err != nil {
		return variant.Variant{}, err
	}

	obj, ok := r.cfg.factory.Create(name)
	if !ok {
		if r.mode&ModeStrict != 0 {
			return variant.Variant{}, fmt.Errorf("%w: no class registered for object %q", variant.ErrFactory, name)
		}
		r.cfg.logger.Debug("creating proxy", "class", name, "version", int32(version))
		obj = variant.NewProxy(name)
	}
	if err := obj.Inflate(params, int(int32(version))); err != nil {
		if errors.Is(err, variant.ErrTypeMismatch) {
			return variant.Variant{}, fmt.Errorf("inflating %s: %w", name, err)
		}
		return variant.Variant{}, fmt.Errorf("%w: inflating %s: %w", variant.ErrTypeMismatch, name, err)
	}
	return variant.AdoptObject(obj), nil
}
