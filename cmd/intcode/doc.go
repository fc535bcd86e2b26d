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

// The intcode command line tool runs Intcode programs with the package
// github.com/db47h/intcode/vm.
//
// Usage:
//
//	intcode [options] program
//
//	-ascii
//		  ASCII mode: read input from stdin, print outputs < 128 as characters
//	-asm
//		  program is assembly source (implied by a .asm extension)
//	-debug
//		  enable debug diagnostics
//	-disasm
//		  print a disassembly of the program and exit
//	-dump
//		  dump machine state and memory to stderr upon exit
//	-input values
//		  input values, comma separated (can be specified multiple times)
//	-o filename
//		  save memory to filename after the program halts
//	-overflow
//		  fail on integer overflow instead of wrapping around
//	-raw
//		  in ASCII mode, switch the terminal to cbreak mode
//	-result
//		  print the value at address 0 after the program halts
//	-set addr=value
//		  patch memory with addr=value before running (can be specified multiple times)
//	-steps int
//		  maximum number of instructions to execute, 0 for no limit
//	-trace
//		  log every executed instruction to stderr
//
// The program file is in Intcode program text format (comma separated
// integers), or in assembly if its name ends in .asm or if -asm is given. See
// the package github.com/db47h/intcode/asm for the assembly syntax.
//
// -input: when a single value is given, every IN instruction reads that same
// value. With several values, each IN instruction consumes the next one and
// the program fails once they have all been consumed. For example, to run a
// program in test mode 1:
//
//	intcode -input 1 input.txt
//
// Output values are printed one per line as they are produced.
//
// -set: patches memory before running the program. For example, to set the
// noun and verb parameters of a program at addresses 1 and 2 and print the
// result:
//
//	intcode -set 1=12 -set 2=2 -result input.txt
//
// -ascii: programs that communicate in ASCII read their input from stdin, one
// character per IN instruction. Outputs in the ASCII range are printed as
// characters, any other value is printed as a decimal number on its own line.
// With -raw, the terminal is switched to cbreak mode so that keys are fed to
// the program as they are typed. CTRL-D ends the input.
//
// -debug: will print a full stacktrace and the machine registers should the
// program fail.
//
// -trace: every instruction is logged along with the PC and relative base
// before it is executed. This is very verbose.
package main
