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
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Parse reads an Intcode program from r. The program text is a sequence of
// signed base 10 integers separated by commas. White space around each integer
// is ignored.
//
// If any of the tokens is not a valid integer, the returned error will be a
// *ParseError.
func Parse(r io.Reader) (Memory, error) {
	var (
		mem Memory
		br  = bufio.NewReader(r)
	)
	for idx := 0; ; idx++ {
		tok, err := br.ReadString(',')
		if err != nil && err != io.EOF {
			return nil, errors.Wrap(err, "read failed")
		}
		eof := err == io.EOF
		tok = strings.TrimSpace(strings.TrimSuffix(tok, ","))
		n, perr := strconv.ParseInt(tok, 10, 64)
		if perr != nil {
			pe := &ParseError{Index: idx, Token: tok}
			if ne, ok := perr.(*strconv.NumError); ok && tok != "" {
				pe.Err = ne.Err
			}
			return nil, pe
		}
		mem = append(mem, Cell(n))
		if eof {
			return mem, nil
		}
	}
}

// ParseString is a shorthand for Parse(strings.NewReader(s)).
func ParseString(s string) (Memory, error) {
	return Parse(strings.NewReader(s))
}

// Load loads an Intcode program from file fileName.
func Load(fileName string) (Memory, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "open failed")
	}
	defer f.Close()
	mem, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", fileName)
	}
	return mem, nil
}

// WriteTo writes m to w in program text format, followed by a new line.
func (m Memory) WriteTo(w io.Writer) (n int64, err error) {
	bw := bufio.NewWriter(w)
	var b []byte
	for k, v := range m {
		b = b[:0]
		if k > 0 {
			b = append(b, ',')
		}
		b = strconv.AppendInt(b, int64(v), 10)
		nn, err := bw.Write(b)
		n += int64(nn)
		if err != nil {
			return n, errors.Wrap(err, "write failed")
		}
	}
	if err = bw.WriteByte('\n'); err != nil {
		return n, errors.Wrap(err, "write failed")
	}
	n++
	return n, errors.Wrap(bw.Flush(), "write failed")
}

// String returns m in program text format.
func (m Memory) String() string {
	var sb strings.Builder
	m.WriteTo(&sb)
	return strings.TrimSuffix(sb.String(), "\n")
}

// Save saves m to file fileName in program text format.
func Save(fileName string, m Memory) (err error) {
	f, err := os.Create(fileName)
	if err != nil {
		return errors.Wrap(err, "create failed")
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrap(cerr, "close failed")
		}
		// delete file on error
		if err != nil {
			os.Remove(fileName)
		}
	}()
	_, err = m.WriteTo(f)
	return errors.Wrap(err, "save failed")
}
