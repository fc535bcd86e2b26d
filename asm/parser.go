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
	"io"
	"sort"
	"strconv"
	"strings"
	"text/scanner"
	"unicode"

	"github.com/db47h/intcode/vm"
)

func isIdentRune(ch rune, i int) bool {
	return unicode.IsLetter(ch) || unicode.IsSymbol(ch) || unicode.IsPunct(ch) || unicode.IsDigit(ch)
}

type labelSite struct {
	pos     scanner.Position
	address int
}

type label struct {
	labelSite
	uses []labelSite
}

// instruction being assembled
type pending struct {
	op   vm.Opcode
	pc   int // address of the leading cell
	arg  int // index of the next operand
	pos  scanner.Position
	mult vm.Cell
}

type parser struct {
	i       vm.Memory
	pc      int
	s       scanner.Scanner
	labels  map[string]*label
	consts  map[string]labelSite
	cstName string
	cstPos  scanner.Position
	dirPos  scanner.Position
	ins     *pending
	errs    ErrAsm
}

func newParser() *parser {
	p := new(parser)
	p.labels = make(map[string]*label)
	p.consts = make(map[string]labelSite)
	return p
}

func (p *parser) write(v vm.Cell) {
	p.i.Write(p.pc, v)
	p.pc++
}

func (p *parser) error(msg string) {
	pos := p.s.Position
	if !pos.IsValid() {
		pos = p.s.Pos()
	}
	p.errs = append(p.errs, Error{pos, msg})
}

func (p *parser) useLabel(name string) {
	lbl := p.labels[name]
	if lbl == nil {
		lbl = &label{
			// use current position as valid temp position
			labelSite{p.s.Position, -1},
			nil,
		}
		p.labels[name] = lbl
	}
	lbl.uses = append(lbl.uses, labelSite{p.s.Position, p.pc})
}

// value parses s as an integer, char literal or constant.
func (p *parser) value(s string) (v vm.Cell, ok bool) {
	if n, err := strconv.ParseInt(s, 0, 64); err == nil {
		return vm.Cell(n), true
	}
	if len(s) > 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		r, _, tail, err := strconv.UnquoteChar(s[1:len(s)-1], '\'')
		if err != nil || tail != "" {
			p.error("Invalid char literal " + s)
			return 0, true
		}
		return vm.Cell(r), true
	}
	if c, ok := p.consts[s]; ok {
		return vm.Cell(c.address), true
	}
	return 0, false
}

// writes the cell for s, which must be an integer, char, const or label.
func (p *parser) writeValue(s string) {
	if v, ok := p.value(s); ok {
		p.write(v)
		return
	}
	if !isLabelName(s) {
		p.error("Invalid value or label name " + s)
		p.write(0)
		return
	}
	p.useLabel(s)
	p.write(0)
}

func isLabelName(s string) bool {
	if s == "" {
		return false
	}
	switch s[0] {
	case ':', '.', '#', '@', '\'', '(', ')':
		return false
	}
	return !unicode.IsDigit(rune(s[0])) && s[0] != '-' && s[0] != '+'
}

// hasDst returns true if the last operand of op is a write target.
func hasDst(op vm.Opcode) bool {
	switch op {
	case vm.OpAdd, vm.OpMul, vm.OpLessThan, vm.OpEquals, vm.OpIn:
		return true
	}
	return false
}

// operand assembles s as the next operand of the pending instruction.
func (p *parser) operand(s string) {
	ins := p.ins
	mode := vm.ModePosition
	switch s[0] {
	case '#':
		mode = vm.ModeImmediate
		s = s[1:]
	case '@':
		mode = vm.ModeRelative
		s = s[1:]
	}
	if s == "" {
		p.error("Missing value after addressing mode")
		s = "0"
	}
	ins.arg++
	if mode == vm.ModeImmediate && ins.arg == ins.op.Arity() && hasDst(ins.op) {
		p.error("Immediate operand used as write target: #" + s)
	}
	p.i[ins.pc] += vm.Cell(mode) * ins.mult
	ins.mult *= 10
	p.writeValue(s)
	if ins.arg == ins.op.Arity() {
		p.ins = nil
	}
}

func (p *parser) missingOperands() {
	if ins := p.ins; ins != nil {
		p.errs = append(p.errs, Error{ins.pos, "Missing operand(s) for " + ins.op.String()})
		p.ins = nil
	}
}

// Parse does the parsing and compiling.
func (p *parser) Parse(name string, r io.Reader) (vm.Memory, error) {
	// state:
	// 0: accept anything
	// 1: need integer, const or label argument (.dat)
	// 2: accept integer or const (for .org directive)
	// 3: accept integer or const (for .equ value)
	var state int

	p.s.Init(r)
	p.s.Error = func(s *scanner.Scanner, msg string) {
		p.error(msg)
	}
	p.s.IsIdentRune = isIdentRune
	p.s.Mode = scanner.ScanIdents
	p.s.Filename = name

	for tok := p.s.Scan(); tok != scanner.EOF; tok = p.s.Scan() {
		if tok != scanner.Ident {
			p.error("Unexpected character " + strconv.QuoteRune(tok))
			continue
		}
		s := p.s.TokenText()

		if s == "(" {
			// skip comments
			for ; tok != scanner.EOF && (tok != scanner.Ident || p.s.TokenText() != ")"); tok = p.s.Scan() {
			}
			continue
		}

		if p.ins != nil {
			switch {
			case s[0] == ':' || (s[0] == '.' && len(s) > 1 && !unicode.IsDigit(rune(s[1]))):
				p.missingOperands()
			default:
				if _, ok := vm.LookupOpcode(s); ok {
					p.missingOperands()
					break
				}
				p.operand(s)
				continue
			}
		}

		switch state {
		case 1:
			p.writeValue(s)
			state = 0
			continue
		case 2, 3:
			v, ok := p.value(s)
			if !ok {
				p.error("Expected integer or constant, got " + s)
			} else if state == 2 {
				if v < 0 {
					p.error("Negative .org address " + s)
				} else {
					p.pc = int(v)
				}
			} else {
				p.consts[p.cstName] = labelSite{p.cstPos, int(v)}
			}
			state = 0
			continue
		}

		switch {
		case s[0] == ':':
			n := s[1:]
			if len(n) == 0 {
				p.error("Empty label name")
				continue
			}
			if !isLabelName(n) {
				p.error("Invalid label name " + n)
				continue
			}
			if cst, ok := p.consts[n]; ok {
				p.error("Label redefinition: " + n + ", previously defined as a constant here: " + cst.pos.String())
				continue
			}
			if l, ok := p.labels[n]; ok {
				if l.address != -1 {
					p.error("Label redefinition: " + n + ", previous definition here: " + l.pos.String())
					continue
				}
				l.address = p.pc
				l.pos = p.s.Position
			} else {
				p.labels[n] = &label{
					labelSite{p.s.Position, p.pc},
					nil,
				}
			}
		case s[0] == '.' && len(s) > 1 && !unicode.IsDigit(rune(s[1])):
			p.dirPos = p.s.Position
			switch s {
			case ".org":
				state = 2
			case ".dat":
				state = 1
			case ".equ":
				t := p.s.Scan()
				if t != scanner.Ident {
					p.error(".equ: expected identifier, got " + p.s.TokenText())
					continue
				}
				p.cstName = p.s.TokenText()
				if l, ok := p.labels[p.cstName]; ok {
					p.error(".equ: redefinition of " + p.cstName + ", previously defined/used as a label here: " + l.pos.String())
					continue
				}
				p.cstPos = p.s.Position
				state = 3
			default:
				p.error("Unknown dot directive: " + s)
			}
		default:
			if op, ok := vm.LookupOpcode(s); ok {
				p.ins = &pending{op: op, pc: p.pc, pos: p.s.Position, mult: 100}
				p.write(vm.Cell(op))
				if op.Arity() == 0 {
					p.ins = nil
				}
				continue
			}
			// raw data
			p.writeValue(s)
		}
	}

	p.missingOperands()
	if state != 0 {
		p.errs = append(p.errs, Error{p.dirPos, "Missing directive argument"})
	}

	// write labels
	for n, l := range p.labels {
		if l.address == -1 {
			p.errs = append(p.errs, Error{l.uses[0].pos, "Undefined label " + n})
			continue
		}
		for _, u := range l.uses {
			p.i[u.address] = vm.Cell(l.address)
		}
	}

	if len(p.errs) > 0 {
		p.errs.sort()
		return nil, p.errs
	}
	return p.i, nil
}

// Error is an assembly error with its position in the source.
type Error struct {
	Pos scanner.Position
	Msg string
}

func (e *Error) Error() string {
	return e.Pos.String() + ": " + e.Msg
}

// ErrAsm is the error type returned by Assemble. It is a list of all the
// errors found in the source, sorted by position.
type ErrAsm []Error

func (e ErrAsm) Error() string {
	var sb strings.Builder
	for k := range e {
		if k > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(e[k].Error())
	}
	return sb.String()
}

func (e ErrAsm) sort() {
	sort.SliceStable(e, func(i, j int) bool { return e[i].Pos.Offset < e[j].Pos.Offset })
}
