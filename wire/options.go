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
	"io"
	"log/slog"

	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/proteanic/protean-sub000/compress"
	"github.com/proteanic/protean-sub000/variant"
)

// DefaultMaxSize bounds length prefixes and element counts accepted by a
// Reader.
const DefaultMaxSize = 1 << 30

// maxDepth bounds the nesting of decoded collections and objects.
const maxDepth = 1000

type config struct {
	factory *variant.Factory
	mem     memory.Allocator
	logger  *slog.Logger
	level   int
	maxSize int
}

// Option configures a Reader or Writer.
type Option func(*config)

func newConfig(opts ...Option) *config {
	cfg := &config{
		mem:     memory.DefaultAllocator,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		level:   compress.DefaultCompressionLevel,
		maxSize: DefaultMaxSize,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithFactory specifies the factory used by a Reader to construct object
// classes. Without one every object is decoded as a proxy, unless
// ModeStrict is set.
func WithFactory(f *variant.Factory) Option {
	return func(cfg *config) {
		cfg.factory = f
	}
}

// WithAllocator specifies the allocator used for scratch buffers while
// decoding.
func WithAllocator(mem memory.Allocator) Option {
	return func(cfg *config) {
		cfg.mem = mem
	}
}

// WithLogger specifies the logger that receives debug records about
// headers, codecs and proxy creation.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}

// WithCompressionLevel specifies the level passed to the compression
// codec, in that codec's own scale.
func WithCompressionLevel(level int) Option {
	return func(cfg *config) {
		cfg.level = level
	}
}

// WithMaxSize bounds the string, buffer and collection lengths a Reader
// accepts.
func WithMaxSize(n int) Option {
	return func(cfg *config) {
		cfg.maxSize = n
	}
}
