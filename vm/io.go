// This file is part of intcode - https://github.com/db47h/intcode
//
// Copyright 2019 Denis Bernard <db047h@gmail.com>
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

package vm

import (
	"bufio"
	"io"
	"strconv"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// readInput returns the next input value.
func (i *Instance) readInput() (Cell, error) {
	if i.inFn != nil {
		v, err := i.inFn()
		if err == io.EOF {
			return 0, ErrInputExhausted
		}
		return v, err
	}
	if len(i.in) == 0 {
		return 0, ErrInputExhausted
	}
	v := i.in[0]
	if !i.inFixed {
		i.in = i.in[1:]
	}
	return v, nil
}

func (i *Instance) writeOutput(v Cell) error {
	i.output = append(i.output, v)
	if i.outFn != nil {
		return i.outFn(v)
	}
	return nil
}

func newRuneReader(r io.Reader) io.RuneReader {
	if rr, ok := r.(io.RuneReader); ok {
		return rr
	}
	return bufio.NewReader(r)
}

// ReadRune reads a single unicode code point from r. Invalid UTF-8 sequences
// are reported as ErrInvalidUTF8; io.EOF is returned as is.
func ReadRune(r io.RuneReader) (Cell, error) {
	c, sz, err := r.ReadRune()
	if err != nil {
		if err == io.EOF {
			return 0, err
		}
		return 0, errors.Wrap(err, "input")
	}
	if c == utf8.RuneError && sz == 1 {
		return 0, ErrInvalidUTF8
	}
	return Cell(c), nil
}

// RuneInput configures the instance to read input values as unicode code
// points from r. This is the usual convention for programs that communicate in
// ASCII. When r reaches EOF, further IN instructions fail with
// ErrInputExhausted. Invalid UTF-8 input fails with ErrInvalidUTF8.
func RuneInput(r io.Reader) Option {
	rr := newRuneReader(r)
	return InputFunc(func() (Cell, error) {
		return ReadRune(rr)
	})
}

// RuneOutput configures the instance to write output values to w. Values in
// the ASCII range are written as characters. Any other value is written as a
// decimal integer on its own line. If w implements Flush() error, it is
// flushed after each new line.
func RuneOutput(w io.Writer) Option {
	type flusher interface {
		Flush() error
	}
	f, _ := w.(flusher)
	var b []byte
	return OutputFunc(func(v Cell) error {
		b = b[:0]
		if v >= 0 && v < 128 {
			b = append(b, byte(v))
		} else {
			b = strconv.AppendInt(b, int64(v), 10)
			b = append(b, '\n')
		}
		if _, err := w.Write(b); err != nil {
			return errors.Wrap(err, "output")
		}
		if f != nil && b[len(b)-1] == '\n' {
			return errors.Wrap(f.Flush(), "output")
		}
		return nil
	})
}
