// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package gofits implements reading and writing of FITS file headers: the
// 80-byte card grammar, typed header properties, and block-level stream I/O,
// including transparent decompression of gzip-compressed files.
package gofits

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/blinklabs-io/gofits/fitsio"
	"github.com/blinklabs-io/gofits/header"
	"github.com/klauspost/compress/gzip"
)

// FITS reads headers from a single FITS stream. The stream is consumed
// forward only, so headers must be requested in ascending HDU order.
type FITS struct {
	reader *fitsio.Reader
	filter header.FilterFunc
	gz     *gzip.Reader
	file   *os.File
	closed bool
}

// New wraps a FITS stream for header access. Gzip-compressed input is
// detected from the stream's magic bytes and decompressed transparently.
func New(r io.Reader, options ...FITSOptionFunc) (*FITS, error) {
	f := &FITS{}
	for _, option := range options {
		option(f)
	}
	br := bufio.NewReader(r)
	if magic, err := br.Peek(2); err == nil &&
		magic[0] == 0x1f && magic[1] == 0x8b {
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}
		f.gz = gz
		f.reader = fitsio.NewReader(gz)
	} else {
		f.reader = fitsio.NewReader(br)
	}
	return f, nil
}

// Open opens the named FITS file. The file is closed by Close.
func Open(path string, options ...FITSOptionFunc) (*FITS, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	f, err := New(file, options...)
	if err != nil {
		file.Close()
		return nil, err
	}
	f.file = file
	return f, nil
}

// Header reads the header of the HDU with the given zero-based index into a
// property list, applying the configured keyword filter if any. The stream
// only moves forward: requesting an HDU before the current one is an error.
func (f *FITS) Header(hdu int) (*header.PropertyList, error) {
	if f.closed {
		return nil, fmt.Errorf("file already closed")
	}
	if err := f.reader.SeekHDU(hdu); err != nil {
		return nil, err
	}
	return header.Decode(f.reader, f.filter)
}

// PrimaryHeader reads the header of the primary HDU
func (f *FITS) PrimaryHeader() (*header.PropertyList, error) {
	return f.Header(0)
}

func (f *FITS) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true
	var err error
	if f.gz != nil {
		err = f.gz.Close()
	}
	if f.file != nil {
		if ferr := f.file.Close(); err == nil {
			err = ferr
		}
	}
	return err
}

// WriteHeader encodes a property list as a complete FITS header, END card
// and block padding included
func WriteHeader(w io.Writer, list *header.PropertyList) error {
	fw := fitsio.NewWriter(w)
	if err := header.Encode(list, fw, nil); err != nil {
		return err
	}
	return fw.Close()
}
