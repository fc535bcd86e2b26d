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

	"github.com/pkg/errors"
)

// Execution failures. Errors returned by Run and Step wrap one of these (or a
// *DecodeError) with the PC at which the failure occurred. Use errors.Cause to
// retrieve them.
var (
	ErrInvalidWriteTarget = errors.New("immediate operand used as write target")
	ErrJumpOutOfRange     = errors.New("jump target out of range")
	ErrBadAddress         = errors.New("memory address out of range")
	ErrOverflow           = errors.New("integer overflow")
	ErrInputExhausted     = errors.New("input exhausted")
	ErrInvalidUTF8        = errors.New("invalid UTF-8 input")
	ErrStepLimit          = errors.New("step limit reached")
	ErrHalted             = errors.New("machine halted")
)

// ParseError is returned by Parse when a token of the program text is not a
// valid signed integer.
type ParseError struct {
	Index int    // token index, starting at 0
	Token string // offending token, trimmed
	Err   error  // underlying strconv error, if any
}

func (e *ParseError) Error() string {
	msg := "token " + strconv.Itoa(e.Index) + " " + strconv.Quote(e.Token)
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg + ": not an integer"
}

// Unwrap returns the underlying strconv error, if any. errors.Cause stops at
// the *ParseError.
func (e *ParseError) Unwrap() error { return e.Err }

// DecodeError is returned when the instruction at PC has an unknown opcode or
// one of its operands has an unknown addressing mode.
type DecodeError struct {
	PC    int
	Instr Cell
	Param int // 1 based operand index of a bad mode, 0 for a bad opcode
}

func (e *DecodeError) Error() string {
	pc := strconv.Itoa(e.PC)
	ins := strconv.FormatInt(int64(e.Instr), 10)
	if e.Param == 0 {
		return "unknown opcode " + strconv.FormatInt(int64(e.Instr%100), 10) + " in instruction " + ins + " @pc=" + pc
	}
	return "unknown addressing mode for parameter " + strconv.Itoa(e.Param) + " in instruction " + ins + " @pc=" + pc
}
