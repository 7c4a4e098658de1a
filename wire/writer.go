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
	"fmt"
	"io"
	"math"
	"time"

	"github.com/proteanic/protean-sub000/compress"
	"github.com/proteanic/protean-sub000/variant"
)

// Writer encodes variants as binary messages onto an output stream.
type Writer struct {
	w    io.Writer
	mode Mode
	cfg  *config

	bw      *bufio.Writer
	scratch [8]byte
}

// NewWriter returns a Writer that writes messages with the given mode to
// w. ModeStrict is dropped and ModeDateTimeAsTicks is always added.
func NewWriter(w io.Writer, mode Mode, opts ...Option) *Writer {
	return &Writer{
		w:    w,
		mode: mode&^ModeStrict | ModeDateTimeAsTicks,
		cfg:  newConfig(opts...),
	}
}

// Mode reports the mode word written in message headers.
func (w *Writer) Mode() Mode { return w.mode }

// Write encodes v as one complete message and flushes it to the
// underlying stream.
func (w *Writer) Write(v variant.Variant) (err error) {
	hdr := Header{Major: MajorVersion, Minor: MinorVersion, Mode: w.mode}
	buf := hdr.marshal()
	if _, err := w.w.Write(buf[:]); err != nil {
		return streamError("writing header", err)
	}

	var sink io.Writer = w.w
	if w.mode&ModeCompress != 0 {
		cw, cerr := w.compressor()
		if cerr != nil {
			return cerr
		}
		defer func() {
			if cerr := cw.Close(); cerr != nil && err == nil {
				err = streamError("closing compressor", cerr)
			}
		}()
		sink = cw
	}

	if w.bw == nil {
		w.bw = bufio.NewWriter(sink)
	} else {
		w.bw.Reset(sink)
	}
	if err := w.writeTagged(v); err != nil {
		return err
	}
	if err := w.bw.Flush(); err != nil {
		return streamError("writing body", err)
	}
	return nil
}

func (w *Writer) compressor() (io.WriteCloser, error) {
	c := w.mode.Codec()
	codec, err := compress.GetCodec(c)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", variant.ErrWire, err)
	}
	var cw io.WriteCloser
	if w.cfg.level == compress.DefaultCompressionLevel {
		cw, err = codec.NewWriter(w.w)
	} else {
		cw, err = codec.NewWriterLevel(w.w, w.cfg.level)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", variant.ErrWire, err)
	}
	w.cfg.logger.Debug("compressing body", "codec", c, "level", w.cfg.level)
	return cw, nil
}

func (w *Writer) writeRaw(p []byte) error {
	if _, err := w.bw.Write(p); err != nil {
		return streamError("writing body", err)
	}
	if n := padding(len(p)); n > 0 {
		if _, err := w.bw.Write(zeros[:n]); err != nil {
			return streamError("writing body", err)
		}
	}
	return nil
}

func (w *Writer) writeUint32(u uint32) error {
	binary.LittleEndian.PutUint32(w.scratch[:4], u)
	return w.writeRaw(w.scratch[:4])
}

func (w *Writer) writeUint64(u uint64) error {
	binary.LittleEndian.PutUint64(w.scratch[:], u)
	return w.writeRaw(w.scratch[:])
}

func (w *Writer) writeString(s string) error {
	if uint64(len(s)) > math.MaxUint32 {
		return fmt.Errorf("%w: string of %d bytes is too long", variant.ErrWire, len(s))
	}
	if err := w.writeUint32(uint32(len(s))); err != nil {
		return err
	}
	if _, err := w.bw.WriteString(s); err != nil {
		return streamError("writing body", err)
	}
	if n := padding(len(s)); n > 0 {
		if _, err := w.bw.Write(zeros[:n]); err != nil {
			return streamError("writing body", err)
		}
	}
	return nil
}

func (w *Writer) writeBytes(b []byte) error {
	if uint64(len(b)) > math.MaxUint32 {
		return fmt.Errorf("%w: buffer of %d bytes is too long", variant.ErrWire, len(b))
	}
	if err := w.writeUint32(uint32(len(b))); err != nil {
		return err
	}
	return w.writeRaw(b)
}

func (w *Writer) writeDate(d variant.Date) error {
	days := d.Days() - minDate.Days()
	if days < 0 || days > math.MaxUint32 {
		return fmt.Errorf("%w: date %s cannot be encoded", variant.ErrWire, d)
	}
	return w.writeUint32(uint32(days))
}

func (w *Writer) writeDateTime(t time.Time) error {
	return w.writeUint64(uint64(t.UnixMilli() - minDateTimeMs))
}

func (w *Writer) writeTagged(v variant.Variant) error {
	if err := w.writeUint32(uint32(v.Kind())); err != nil {
		return err
	}
	return w.writeValue(v)
}

func (w *Writer) writeValue(v variant.Variant) error {
	switch k := v.Kind(); k {
	case variant.KindNone:
		return nil
	case variant.KindString, variant.KindAny:
		s, _ := v.AsString()
		return w.writeString(s)
	case variant.KindBoolean:
		b, _ := v.AsBool()
		var u uint32
		if b {
			u = 1
		}
		return w.writeUint32(u)
	case variant.KindInt32:
		i, _ := v.AsInt32()
		return w.writeUint32(uint32(i))
	case variant.KindUInt32:
		u, _ := v.AsUInt32()
		return w.writeUint32(u)
	case variant.KindInt64:
		i, _ := v.AsInt64()
		return w.writeUint64(uint64(i))
	case variant.KindUInt64:
		u, _ := v.AsUInt64()
		return w.writeUint64(u)
	case variant.KindFloat:
		f, _ := v.AsFloat()
		return w.writeUint32(math.Float32bits(f))
	case variant.KindDouble:
		f, _ := v.AsDouble()
		return w.writeUint64(math.Float64bits(f))
	case variant.KindDate:
		d, _ := v.AsDate()
		return w.writeDate(d)
	case variant.KindTime:
		d, _ := v.AsTime()
		return w.writeUint64(uint64(d.Milliseconds()))
	case variant.KindDateTime:
		t, _ := v.AsDateTime()
		return w.writeDateTime(t)
	case variant.KindBuffer:
		b, _ := v.AsBuffer()
		return w.writeBytes(b)
	case variant.KindList, variant.KindTuple:
		return w.writeSequence(v)
	case variant.KindDictionary, variant.KindBag:
		return w.writeMapping(v)
	case variant.KindTimeSeries:
		return w.writeTimeSeries(v)
	case variant.KindException:
		e, _ := v.AsException()
		for _, s := range [...]string{e.Type(), e.Message(), e.Source(), e.Stack()} {
			if err := w.writeString(s); err != nil {
				return err
			}
		}
		return nil
	case variant.KindObject:
		return w.writeObject(v)
	default:
		return fmt.Errorf("%w: cannot encode variant of kind %s", variant.ErrWire, k)
	}
}

func (w *Writer) writeCount(v variant.Variant) error {
	n, _ := v.Len()
	return w.writeUint32(uint32(n))
}

func (w *Writer) writeSequence(v variant.Variant) error {
	if err := w.writeCount(v); err != nil {
		return err
	}
	for _, item := range v.All() {
		if err := w.writeTagged(*item); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) writeMapping(v variant.Variant) error {
	if err := w.writeCount(v); err != nil {
		return err
	}
	for key, item := range v.Entries() {
		if err := w.writeString(key); err != nil {
			return err
		}
		if err := w.writeTagged(*item); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) writeTimeSeries(v variant.Variant) error {
	if err := w.writeCount(v); err != nil {
		return err
	}
	for at, item := range v.Times() {
		if err := w.writeDateTime(at); err != nil {
			return err
		}
		if err := w.writeTagged(*item); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) writeObject(v variant.Variant) error {
	obj, err := v.AsObject()
	if err != nil {
		return err
	}
	version := obj.Version()
	if version < math.MinInt32 || version > math.MaxInt32 {
		return fmt.Errorf("%w: object %q version %d does not fit in int32", variant.ErrWire, obj.Name(), version)
	}
	if err := w.writeString(obj.Name()); err != nil {
		return err
	}
	if err := w.writeUint32(uint32(int32(version))); err != nil {
		return err
	}
	return w.writeTagged(obj.Deflate())
}
