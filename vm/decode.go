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
	"strconv"
	"strings"
)

// Operand is a raw instruction parameter paired with its addressing mode.
type Operand struct {
	Mode  Mode
	Value Cell
}

// String returns the assembler representation of o: 42 for position mode, #42
// for immediate mode and @42 for relative mode.
func (o Operand) String() string {
	v := strconv.FormatInt(int64(o.Value), 10)
	switch o.Mode {
	case ModeImmediate:
		return "#" + v
	case ModeRelative:
		return "@" + v
	}
	return v
}

// Instruction is a decoded instruction.
type Instruction struct {
	Op   Opcode
	Args [3]Operand
}

// Operands returns the operands of ins. The returned slice aliases ins.Args.
func (ins *Instruction) Operands() []Operand {
	n := ins.Op.Arity()
	if n < 0 {
		n = 0
	}
	return ins.Args[:n]
}

// Size returns the number of cells used by ins in memory.
func (ins *Instruction) Size() int {
	return 1 + ins.Op.Arity()
}

// Encode returns the leading integer of ins, i.e. its opcode and modes.
func (ins *Instruction) Encode() Cell {
	v := Cell(ins.Op)
	d := Cell(100)
	for _, a := range ins.Operands() {
		v += Cell(a.Mode) * d
		d *= 10
	}
	return v
}

func (ins Instruction) String() string {
	var sb strings.Builder
	sb.WriteString(ins.Op.String())
	for _, a := range ins.Operands() {
		sb.WriteByte(' ')
		sb.WriteString(a.String())
	}
	return sb.String()
}

// modeDivisors[k] is 10^(k+2): the divisor that brings the mode digit of the
// (k+1)th operand to the units position.
var modeDivisors = [3]Cell{100, 1000, 10000}

// Decode decodes the instruction at address pc. If the opcode is unknown or if
// any of the operand modes is invalid, it returns a *DecodeError.
func Decode(mem Memory, pc int) (Instruction, error) {
	v := mem.Read(pc)
	ins := Instruction{Op: Opcode(v % 100)}
	n := ins.Op.Arity()
	if n < 0 {
		return ins, &DecodeError{PC: pc, Instr: v}
	}
	for k := 0; k < n; k++ {
		m := Mode(v / modeDivisors[k] % 10)
		switch m {
		case ModePosition, ModeImmediate, ModeRelative:
		default:
			return ins, &DecodeError{PC: pc, Instr: v, Param: k + 1}
		}
		ins.Args[k] = Operand{m, mem.Read(pc + 1 + k)}
	}
	return ins, nil
}
