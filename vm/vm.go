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
	"fmt"
	"io"
	"math"

	"github.com/db47h/intcode/internal/ici"
	"go.uber.org/zap"
)

// State is the execution state of an Instance.
type State int

// Execution states.
const (
	Running State = iota
	Halted
	Failed
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Halted:
		return "halted"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Instance represents an Intcode machine instance.
type Instance struct {
	PC       int    // Program Counter (aka. Instruction Pointer)
	Mem      Memory // Program memory
	rb       Cell   // relative base
	state    State
	err      error
	insCount int64

	in      []Cell
	inFixed bool
	inFn    func() (Cell, error)
	output  []Cell
	outFn   func(Cell) error

	maxSteps      int64
	maxMem        int
	checkOverflow bool
	log           *zap.Logger
}

// Option interface
type Option func(*Instance) error

// Input sets a fixed input value. Every IN instruction will read that same
// value. This is the default behavior with an input value of 0.
func Input(v Cell) Option {
	return func(i *Instance) error {
		i.in = []Cell{v}
		i.inFixed = true
		i.inFn = nil
		return nil
	}
}

// InputQueue sets a queue of input values. Each IN instruction consumes the
// value at the front of the queue. Executing IN with an empty queue fails
// with ErrInputExhausted.
func InputQueue(vs ...Cell) Option {
	return func(i *Instance) error {
		i.in = append([]Cell(nil), vs...)
		i.inFixed = false
		i.inFn = nil
		return nil
	}
}

// InputFunc sets a custom input function. It is called once per IN
// instruction, and any error it returns will make the machine fail. Returning
// io.EOF is reported as ErrInputExhausted.
//
// Note that instances created with Clone share the same input function.
func InputFunc(fn func() (Cell, error)) Option {
	return func(i *Instance) error {
		i.inFn = fn
		i.in = nil
		i.inFixed = false
		return nil
	}
}

// OutputFunc sets a function that will be called with every value output by
// the program, after it has been appended to the output sequence. Any error
// it returns will make the machine fail.
func OutputFunc(fn func(Cell) error) Option {
	return func(i *Instance) error {
		i.outFn = fn
		return nil
	}
}

// Patch writes v at address addr before the program is run. This is commonly
// used to set program parameters, e.g. addresses 1 and 2.
func Patch(addr int, v Cell) Option {
	return func(i *Instance) error {
		if addr < 0 || addr == math.MaxInt {
			return ErrBadAddress
		}
		i.Mem.Write(addr, v)
		return nil
	}
}

// MaxSteps sets the maximum number of instructions to execute. When reached,
// the machine fails with ErrStepLimit. The default is 0, meaning no limit.
func MaxSteps(n int64) Option {
	return func(i *Instance) error {
		i.maxSteps = n
		return nil
	}
}

// MaxMemory sets the maximum memory size in cells. Writes beyond that limit
// fail with ErrBadAddress. The default is 0, meaning no limit.
func MaxMemory(cells int) Option {
	return func(i *Instance) error {
		i.maxMem = cells
		return nil
	}
}

// CheckOverflow enables or disables overflow checking. When disabled (the
// default), arithmetic wraps around as two's complement 64 bits integers. When
// enabled, any overflow in ADD, MUL, ARB or relative address computation fails
// with ErrOverflow.
func CheckOverflow(check bool) Option {
	return func(i *Instance) error {
		i.checkOverflow = check
		return nil
	}
}

// Logger sets the logger used to trace execution. Each executed instruction is
// logged at debug level. The default is a no-op logger.
func Logger(l *zap.Logger) Option {
	return func(i *Instance) error {
		if l == nil {
			l = zap.NewNop()
		}
		i.log = l
		return nil
	}
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new Intcode machine instance.
//
// The mem parameter is used as the machine's memory and will be modified
// while the program runs. Use mem.Clone() if the program needs to be run more
// than once.
//
// Options will be set by calling SetOptions.
func New(mem Memory, opts ...Option) (*Instance, error) {
	i := &Instance{
		Mem:     mem,
		in:      []Cell{0},
		inFixed: true,
		log:     zap.NewNop(),
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	return i, nil
}

// State returns the execution state of the instance.
func (i *Instance) State() State {
	return i.state
}

// Err returns the reason of the failure if State() is Failed.
func (i *Instance) Err() error {
	return i.err
}

// RelativeBase returns the value of the relative base register.
func (i *Instance) RelativeBase() Cell {
	return i.rb
}

// InstructionCount returns the number of instructions executed so far.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}

// Result returns the value at address 0. It is only meaningful when the
// machine has halted.
func (i *Instance) Result() Cell {
	return i.Mem.Read(0)
}

// Output returns the output sequence. The returned slice must not be modified.
func (i *Instance) Output() []Cell {
	return i.output
}

// LastOutput returns the last output value, if any.
func (i *Instance) LastOutput() (Cell, bool) {
	if len(i.output) == 0 {
		return 0, false
	}
	return i.output[len(i.output)-1], true
}

// Clone returns a deep copy of i. The clone can be run independently of i,
// with the exception of custom input and output functions that are shared.
func (i *Instance) Clone() *Instance {
	c := *i
	c.Mem = i.Mem.Clone()
	c.in = append([]Cell(nil), i.in...)
	c.output = append([]Cell(nil), i.output...)
	return &c
}

func dumpCells(w io.Writer, a []Cell) {
	Memory(a).WriteTo(w)
}

// Dump dumps the machine registers, output sequence and memory to the
// specified io.Writer.
func (i *Instance) Dump(w io.Writer) error {
	ew := ici.NewErrWriter(w)
	fmt.Fprintf(ew, "state: %v\npc: %d\nrb: %d\nsteps: %d\n", i.state, i.PC, i.rb, i.insCount)
	if i.err != nil {
		fmt.Fprintf(ew, "error: %v\n", i.err)
	}
	io.WriteString(ew, "output: ")
	dumpCells(ew, i.output)
	io.WriteString(ew, "mem: ")
	dumpCells(ew, i.Mem)
	return ew.Err
}
