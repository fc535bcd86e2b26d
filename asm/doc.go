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

// Package asm provides utility functions to assemble and disassemble Intcode
// programs.
//
// The assembler syntax is very basic. Tokens are separated by white space.
// Each instruction is a mnemonic followed by its operands:
//
//	add a b dst    dst = a + b                (opcode 1)
//	mul a b dst    dst = a * b                (opcode 2)
//	in dst         dst = next input value     (opcode 3)
//	out a          output a                   (opcode 4)
//	jnz c target   jump to target if c != 0   (opcode 5)
//	jz c target    jump to target if c == 0   (opcode 6)
//	lt a b dst     dst = a < b ? 1 : 0        (opcode 7)
//	eq a b dst     dst = a == b ? 1 : 0       (opcode 8)
//	arb a          relative base += a         (opcode 9)
//	hlt            stop                       (opcode 99)
//
// Operands are written as:
//
//	42      position mode: the value at address 42
//	#42     immediate mode: the value 42
//	@42     relative mode: the value at address relative base + 42
//
// Operand values can be decimal, hexadecimal (0x prefix) or octal (0 prefix)
// integers, character literals like 'a', constants or labels. A label used as
// an operand is replaced by its address, so that "jnz #1 #loop" jumps to the
// label loop, while "out counter" outputs the value stored at label counter.
//
// Labels are defined by prefixing them with a colon:
//
//	:loop  in 100
//
// Any integer, char literal, constant or label that is not an operand is
// compiled as a raw data cell.
//
// The following directives are supported:
//
//	.org n     set the compilation address to n
//	.dat v     compile v as a raw data cell
//	.equ X v   define constant X with value v
//
// Comments are delimited by parentheses and can appear anywhere. There must be
// a white space after the opening paren and before the closing one:
//
//	( this is a comment )
//
// Immediate mode operands are rejected as write targets.
package asm
