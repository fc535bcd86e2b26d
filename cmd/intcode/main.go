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

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/db47h/intcode/asm"
	"github.com/db47h/intcode/vm"
)

var (
	inputs      cellList
	patches     patchList
	ascii       bool
	raw         bool
	isAsm       bool
	disasm      bool
	dump        bool
	trace       bool
	debug       bool
	result      bool
	overflow    bool
	maxSteps    int64
	outFileName string
)

// rawInput returns an input function for terminals in cbreak mode. Typed
// characters are echoed to w, CR is translated to LF and CTRL-D ends the
// input.
func rawInput(r io.RuneReader, w *bufio.Writer) func() (vm.Cell, error) {
	return func() (vm.Cell, error) {
		c, err := vm.ReadRune(r)
		if err != nil {
			return 0, err
		}
		switch c {
		case 4:
			return 0, io.EOF
		case '\r':
			c = '\n'
		}
		w.WriteRune(rune(c))
		return c, errors.Wrap(w.Flush(), "echo failed")
	}
}

func decimalOutput(w io.Writer) func(vm.Cell) error {
	return func(v vm.Cell) error {
		_, err := io.WriteString(w, strconv.FormatInt(int64(v), 10)+"\n")
		return errors.Wrap(err, "output failed")
	}
}

func loadProgram(fileName string) (vm.Memory, error) {
	if !isAsm && !strings.EqualFold(filepath.Ext(fileName), ".asm") {
		return vm.Load(fileName)
	}
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "open failed")
	}
	defer f.Close()
	return asm.Assemble(fileName, bufio.NewReader(f))
}

func newLogger() (*zap.Logger, error) {
	if !trace {
		return zap.NewNop(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	return cfg.Build()
}

func atExit(i *vm.Instance, err error) {
	if err == nil {
		return
	}
	if !debug {
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "\n%+v\n", err)
	if i != nil {
		ins, derr := vm.Decode(i.Mem, i.PC)
		if derr == nil {
			fmt.Fprintf(os.Stderr, "PC: %v (%v), RB: %v, Steps: %v\n", i.PC, ins, i.RelativeBase(), i.InstructionCount())
		} else {
			fmt.Fprintf(os.Stderr, "PC: %v (%v), RB: %v, Steps: %v\n", i.PC, i.Mem.Read(i.PC), i.RelativeBase(), i.InstructionCount())
		}
	}
	os.Exit(1)
}

func main() {
	// check exit condition
	var err error
	var i *vm.Instance

	stdout := bufio.NewWriter(os.Stdout)

	// flush output, catch and log errors
	defer func() {
		stdout.Flush()
		if i != nil && dump {
			if e := i.Dump(os.Stderr); err == nil {
				err = e
			}
		}
		atExit(i, err)
	}()

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [options] program\n\nOptions:\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Var(&inputs, "input", "input `value`s, comma separated (can be specified multiple times). A single value is fed to every IN instruction")
	flag.Var(&patches, "set", "patch memory with `addr=value` before running (can be specified multiple times)")
	flag.BoolVar(&ascii, "ascii", false, "ASCII mode: read input from stdin, print outputs < 128 as characters")
	flag.BoolVar(&raw, "raw", false, "in ASCII mode, switch the terminal to cbreak mode and feed keys as they are typed")
	flag.BoolVar(&isAsm, "asm", false, "program is assembly source (implied by a .asm extension)")
	flag.BoolVar(&disasm, "disasm", false, "print a disassembly of the program and exit")
	flag.BoolVar(&dump, "dump", false, "dump machine state and memory to stderr upon exit")
	flag.BoolVar(&trace, "trace", false, "log every executed instruction to stderr")
	flag.BoolVar(&debug, "debug", false, "enable debug diagnostics")
	flag.BoolVar(&result, "result", false, "print the value at address 0 after the program halts")
	flag.BoolVar(&overflow, "overflow", false, "fail on integer overflow instead of wrapping around")
	flag.Int64Var(&maxSteps, "steps", 0, "maximum number of instructions to execute, 0 for no limit")
	flag.StringVar(&outFileName, "o", "", "save memory to `filename` after the program halts")

	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	mem, err := loadProgram(flag.Arg(0))
	if err != nil {
		return
	}
	if disasm {
		err = asm.DisassembleAll(mem, stdout)
		return
	}

	log, err := newLogger()
	if err != nil {
		return
	}
	defer log.Sync()

	var opts = []vm.Option{
		vm.Logger(log),
		vm.MaxSteps(maxSteps),
		vm.CheckOverflow(overflow),
	}
	opts = append(opts, patches.options()...)

	if ascii {
		opts = append(opts, vm.RuneOutput(stdout))
		if raw {
			var tearDown func()
			if tearDown, err = setRawIO(); err != nil {
				return
			}
			defer tearDown()
			opts = append(opts, vm.InputFunc(rawInput(bufio.NewReader(os.Stdin), stdout)))
		} else {
			opts = append(opts, vm.RuneInput(bufio.NewReader(os.Stdin)))
		}
	} else {
		opts = append(opts, inputs.inputOption(), vm.OutputFunc(decimalOutput(stdout)))
	}

	i, err = vm.New(mem, opts...)
	if err != nil {
		return
	}
	log.Debug("start", zap.String("program", flag.Arg(0)), zap.Int("size", mem.Len()))
	if err = i.Run(); err != nil {
		return
	}
	log.Debug("halted", zap.Int64("steps", i.InstructionCount()), zap.Int("size", i.Mem.Len()))

	if result {
		fmt.Fprintln(stdout, i.Result())
	}
	if outFileName != "" {
		err = vm.Save(outFileName, i.Mem)
	}
}
