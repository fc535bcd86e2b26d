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
	"math"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func (i *Instance) add(x, y Cell) (Cell, error) {
	s := x + y
	if i.checkOverflow && ((x > 0 && y > 0 && s < 0) || (x < 0 && y < 0 && s >= 0)) {
		return 0, ErrOverflow
	}
	return s, nil
}

func (i *Instance) mul(x, y Cell) (Cell, error) {
	p := x * y
	if i.checkOverflow && x != 0 && (p/x != y || (x == -1 && y == math.MinInt64)) {
		return 0, ErrOverflow
	}
	return p, nil
}

// addr resolves o to a memory address.
func (i *Instance) addr(o Operand) (int, error) {
	a := o.Value
	switch o.Mode {
	case ModePosition:
	case ModeRelative:
		var err error
		if a, err = i.add(i.rb, o.Value); err != nil {
			return 0, err
		}
	default:
		return 0, ErrInvalidWriteTarget
	}
	if a < 0 || int64(a) >= int64(math.MaxInt) {
		return 0, errors.Wrapf(ErrBadAddress, "%v", o)
	}
	return int(a), nil
}

func (i *Instance) read(o Operand) (Cell, error) {
	if o.Mode == ModeImmediate {
		return o.Value, nil
	}
	a, err := i.addr(o)
	if err != nil {
		return 0, err
	}
	return i.Mem.Read(a), nil
}

func (i *Instance) read2(a, b Operand) (x, y Cell, err error) {
	if x, err = i.read(a); err != nil {
		return
	}
	y, err = i.read(b)
	return
}

func (i *Instance) write(o Operand, v Cell) error {
	a, err := i.addr(o)
	if err != nil {
		return err
	}
	if i.maxMem > 0 && a >= i.maxMem {
		return errors.Wrapf(ErrBadAddress, "address %d beyond memory limit", a)
	}
	i.Mem.Write(a, v)
	return nil
}

func (i *Instance) jump(o Operand) error {
	t, err := i.read(o)
	if err != nil {
		return err
	}
	if t < 0 || int64(t) > int64(math.MaxInt) {
		return errors.Wrapf(ErrJumpOutOfRange, "target %d", t)
	}
	i.PC = int(t)
	return nil
}

func bool2Cell(b bool) Cell {
	if b {
		return 1
	}
	return 0
}

// exec decodes and executes the instruction at PC. Each opcode deals with the
// PC as needed.
func (i *Instance) exec() error {
	ins, err := Decode(i.Mem, i.PC)
	if err != nil {
		return err
	}
	if ce := i.log.Check(zap.DebugLevel, "exec"); ce != nil {
		ce.Write(zap.Int("pc", i.PC), zap.Int64("rb", int64(i.rb)), zap.Stringer("ins", ins))
	}
	a := &ins.Args
	switch ins.Op {
	case OpAdd, OpMul, OpLessThan, OpEquals:
		x, y, err := i.read2(a[0], a[1])
		if err != nil {
			return err
		}
		var v Cell
		switch ins.Op {
		case OpAdd:
			v, err = i.add(x, y)
		case OpMul:
			v, err = i.mul(x, y)
		case OpLessThan:
			v = bool2Cell(x < y)
		case OpEquals:
			v = bool2Cell(x == y)
		}
		if err != nil {
			return err
		}
		if err = i.write(a[2], v); err != nil {
			return err
		}
		i.PC += 4
	case OpIn:
		v, err := i.readInput()
		if err != nil {
			return err
		}
		if err = i.write(a[0], v); err != nil {
			return err
		}
		i.PC += 2
	case OpOut:
		v, err := i.read(a[0])
		if err != nil {
			return err
		}
		if err = i.writeOutput(v); err != nil {
			return err
		}
		i.PC += 2
	case OpJumpIfTrue, OpJumpIfFalse:
		c, err := i.read(a[0])
		if err != nil {
			return err
		}
		if (c != 0) == (ins.Op == OpJumpIfTrue) {
			return i.jump(a[1])
		}
		i.PC += 3
	case OpAdjustBase:
		v, err := i.read(a[0])
		if err != nil {
			return err
		}
		if i.rb, err = i.add(i.rb, v); err != nil {
			return err
		}
		i.PC += 2
	case OpHalt:
		i.state = Halted
	}
	return nil
}

// Step executes a single instruction.
//
// It returns nil if the instruction executed successfully, including HLT which
// moves the machine to the Halted state. If the instruction fails, the machine
// moves to the Failed state and the error is returned. The PC will then point
// to the instruction that triggered the error.
//
// Calling Step on a halted machine returns ErrHalted. Calling it on a failed
// machine returns the error that caused the failure.
func (i *Instance) Step() (err error) {
	switch i.state {
	case Halted:
		return ErrHalted
	case Failed:
		return i.err
	}
	defer func() {
		if e := recover(); e != nil {
			switch e := e.(type) {
			case error:
				err = e
			default:
				panic(e)
			}
		}
		if err != nil {
			i.state = Failed
			i.err = errors.Wrapf(err, "@pc=%d, rb=%d", i.PC, i.rb)
			err = i.err
		}
	}()
	if i.maxSteps > 0 && i.insCount >= i.maxSteps {
		return ErrStepLimit
	}
	if err = i.exec(); err != nil {
		return err
	}
	i.insCount++
	return nil
}

// Run starts execution of the machine and runs it until it halts or fails.
//
// If an error occurs, the PC will point to the instruction that triggered the
// error and errors.Cause(err) will be one of the Err* errors of this package or
// a *DecodeError. The output sequence holds the values output until the
// failure, and memory may have been partially updated.
//
// Run returns nil immediately on a machine that has already halted.
func (i *Instance) Run() error {
	for i.state == Running {
		if err := i.Step(); err != nil {
			return err
		}
	}
	if i.state == Failed {
		return i.err
	}
	return nil
}
