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
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/docopt/docopt-go"

	"github.com/proteanic/protean-sub000/compress"
	"github.com/proteanic/protean-sub000/internal/json"
	"github.com/proteanic/protean-sub000/variant"
	"github.com/proteanic/protean-sub000/wire"
)

const usage = `Variant Dump.
Decodes binary encoded variants and prints their header and contents.

Usage:
  variant_dump [-v] [--json] [--strict] [--select=PATH] [--max-size=N] <file>...
  variant_dump encode [-v] [--codec=NAME] [--level=N] <input> <output>
  variant_dump -h | --help

Options:
  -h --help       Show this screen.
  -v              Log decoder activity to stderr.
  --json          Print values as JSON instead of a table.
  --strict        Fail on object classes without a registered constructor.
  --select=PATH   Print only the members matching PATH, e.g. orders/*[id="7"].
  --max-size=N    Largest accepted string, buffer or collection length [default: 1073741824].
  --codec=NAME    Compress with deflate, zlib, snappy, lz4, zstd or brotli.
  --level=N       Codec specific compression level.
`

type config struct {
	Encode  bool     `docopt:"encode"`
	Verbose bool     `docopt:"-v"`
	JSON    bool     `docopt:"--json"`
	Strict  bool     `docopt:"--strict"`
	Select  string   `docopt:"--select"`
	MaxSize string   `docopt:"--max-size"`
	Codec   string   `docopt:"--codec"`
	Level   string   `docopt:"--level"`
	Files   []string `docopt:"<file>"`
	Input   string   `docopt:"<input>"`
	Output  string   `docopt:"<output>"`
}

var codecNames = map[string]compress.Compression{
	"deflate": compress.Codecs.Deflate,
	"zlib":    compress.Codecs.Zlib,
	"snappy":  compress.Codecs.Snappy,
	"lz4":     compress.Codecs.Lz4,
	"zstd":    compress.Codecs.Zstd,
	"brotli":  compress.Codecs.Brotli,
}

func main() {
	opts, _ := docopt.ParseArgs(usage, nil, "0.1")
	var cfg config
	if err := opts.Bind(&cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	var err error
	if cfg.Encode {
		err = encode(cfg, logger)
	} else {
		err = dump(cfg, logger, os.Stdout)
	}
	if err != nil {
		logger.Error("variant_dump failed", "err", err)
		os.Exit(1)
	}
}

func dump(cfg config, logger *slog.Logger, out io.Writer) error {
	maxSize, err := strconv.Atoi(cfg.MaxSize)
	if err != nil {
		return fmt.Errorf("invalid max size %q", cfg.MaxSize)
	}
	mode := wire.ModeDefault
	if cfg.Strict {
		mode |= wire.ModeStrict
	}
	opts := []wire.Option{wire.WithMaxSize(maxSize)}
	for _, path := range cfg.Files {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		err = dumpStream(f, path, mode, cfg, append(opts, wire.WithLogger(logger.With("file", path))), out)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	return nil
}

func dumpStream(r io.Reader, name string, mode wire.Mode, cfg config, opts []wire.Option, out io.Writer) error {
	rdr := wire.NewReader(r, mode, opts...)
	for i := 0; ; i++ {
		v, err := rdr.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if cfg.Select != "" {
			if v, err = v.Select(cfg.Select); err != nil {
				return err
			}
		}
		if cfg.JSON {
			data, err := json.MarshalIndent(v, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s\n", data)
			continue
		}
		fmt.Fprintf(out, "%s message %d: %s\n", name, i, rdr.Header())
		renderTree(out, v)
	}
}

func encode(cfg config, logger *slog.Logger) error {
	in, err := os.Open(cfg.Input)
	if err != nil {
		return err
	}
	defer in.Close()

	var raw any
	if err := json.NewDecoder(in).Decode(&raw); err != nil {
		return fmt.Errorf("%s: %w", cfg.Input, err)
	}
	v, err := variant.Of(raw)
	if err != nil {
		return err
	}

	mode := wire.ModeDefault
	var opts []wire.Option
	if cfg.Codec != "" {
		c, ok := codecNames[strings.ToLower(cfg.Codec)]
		if !ok {
			return fmt.Errorf("unknown codec %q", cfg.Codec)
		}
		mode = mode.WithCodec(c)
	}
	if cfg.Level != "" {
		n, err := strconv.Atoi(cfg.Level)
		if err != nil {
			return fmt.Errorf("invalid level %q", cfg.Level)
		}
		opts = append(opts, wire.WithCompressionLevel(n))
	}
	opts = append(opts, wire.WithLogger(logger))

	out, err := os.Create(cfg.Output)
	if err != nil {
		return err
	}
	if err := wire.Write(out, v, mode, opts...); err != nil {
		out.Close()
		return err
	}
	logger.Debug("encoded", "input", cfg.Input, "output", cfg.Output, "mode", mode)
	return out.Close()
}
