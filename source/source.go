// Package source reads whitespace separated integers from a data file.
package source

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/xgzlucario/sortlist/option"
)

// Reader yields a finite sequence of integers from a text stream.
// Reading stops at end of data or at the first token that is not an
// integer, whichever comes first.
type Reader struct {
	fd  *os.File
	dec *zstd.Decoder
	sc  *bufio.Scanner
}

// Open open a data file. Files with a ".zst" suffix are decompressed
// with zstd on the fly.
func Open(path string, opts ...*option.Option) (*Reader, error) {
	opt := option.DefaultOption
	if len(opts) > 0 {
		opt = opts[0]
	}

	fd, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	var r io.Reader = fd
	var dec *zstd.Decoder

	if strings.HasSuffix(path, ".zst") {
		dec, err = zstd.NewReader(fd)
		if err != nil {
			fd.Close()
			return nil, err
		}
		r = dec
	}

	reader := NewReader(r, opt)
	reader.fd = fd
	reader.dec = dec

	return reader, nil
}

// NewReader
func NewReader(r io.Reader, opts ...*option.Option) *Reader {
	opt := option.DefaultOption
	if len(opts) > 0 {
		opt = opts[0]
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4*option.KB), opt.BufferSize)
	sc.Split(bufio.ScanWords)

	return &Reader{sc: sc}
}

// Iter call f for each integer in input order. A malformed token ends
// the iteration, it is not an error.
func (r *Reader) Iter(f func(v int64)) {
	for r.sc.Scan() {
		v, err := strconv.ParseInt(r.sc.Text(), 10, 64)
		if err != nil {
			return
		}
		f(v)
	}
}

// Close
func (r *Reader) Close() error {
	if r.dec != nil {
		r.dec.Close()
	}
	if r.fd != nil {
		return r.fd.Close()
	}
	return nil
}
