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

package asm

import (
	"fmt"
	"io"
	"strconv"

	"github.com/db47h/intcode/internal/ici"
	"github.com/db47h/intcode/vm"
)

// Assemble compiles assembly read from the supplied io.Reader and returns the
// resulting memory image. The name parameter is used only in error messages to
// name the source of the error. If the io.Reader is a file, name should be the
// file name.
//
// The returned error, if not nil, is of type ErrAsm.
func Assemble(name string, r io.Reader) (vm.Memory, error) {
	p := newParser()
	return p.Parse(name, r)
}

// Disassemble writes a disassembly of the instruction at position pc in mem to
// the provided io.Writer, and returns the position of the next instruction.
// Cells that do not decode to a valid instruction are written as a .dat
// directive.
func Disassemble(mem vm.Memory, pc int, w io.Writer) (next int, err error) {
	ew := ici.NewErrWriter(w)
	ins, err := vm.Decode(mem, pc)
	if err != nil {
		io.WriteString(ew, ".dat ")
		io.WriteString(ew, strconv.FormatInt(int64(mem.Read(pc)), 10))
		return pc + 1, ew.Err
	}
	io.WriteString(ew, ins.String())
	return pc + ins.Size(), ew.Err
}

// DisassembleAll writes a disassembly of all cells in mem, one instruction per
// line, each line prefixed by the instruction's address.
func DisassembleAll(mem vm.Memory, w io.Writer) error {
	ew := ici.NewErrWriter(w)
	for pc := 0; pc < len(mem); {
		fmt.Fprintf(ew, "% 6d\t", pc)
		pc, _ = Disassemble(mem, pc, ew)
		ew.Write([]byte{'\n'})
		if ew.Err != nil {
			return ew.Err
		}
	}
	return nil
}
