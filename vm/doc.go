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

// Package vm implements an Intcode virtual machine.
//
// Intcode programs are sequences of signed integers that serve as both code and
// data. The machine supports the full instruction set: ADD, MUL, IN, OUT, JNZ,
// JZ, LT, EQ, ARB (adjust relative base) and HLT, with position, immediate and
// relative addressing modes. Memory grows as needed: reading an address that
// was never written returns 0, writing past the end extends memory.
//
// A typical use is:
//
//	mem, err := vm.Load("input.txt")
//	if err != nil {
//		// handle error
//	}
//	i, err := vm.New(mem, vm.Input(1))
//	if err != nil {
//		// handle error
//	}
//	if err = i.Run(); err != nil {
//		// errors.Cause(err) is one of the Err* values or a *DecodeError
//	}
//	fmt.Println(i.Result(), i.Output())
//
// By default, every IN instruction reads the same fixed value (see Input).
// InputQueue, InputFunc and RuneInput provide consumable inputs that fail with
// ErrInputExhausted once no more values are available.
//
// For performance reasons, the PC is not incremented in a single place, rather
// each opcode deals with the PC as needed. Jumps set the PC directly when their
// condition holds and HLT leaves the PC on the HLT instruction.
//
// Execution is synchronous and deterministic. The machine can be single stepped
// with Step, and Clone makes a deep copy of the machine state so that
// executions can be replayed.
package vm
