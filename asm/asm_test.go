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

package asm_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/db47h/intcode/asm"
	"github.com/db47h/intcode/vm"
)

const sum = `
( add two inputs and output the sum )
		in a
		in b
		add a b sum
		out sum
		hlt
:a		.dat 0
:b		.dat 0
:sum	0
`

const countdown = `
		.equ N 3
		add #N #0 cnt
:loop	out cnt
		add cnt #-1 cnt
		jnz cnt #loop
		hlt
:cnt	0
`

const relative = `
		arb #buf
		in @0
		in @1
		lt @0 @1 @2
		out @2
		hlt
:buf
`

var tests = [...]struct {
	name   string
	code   string
	image  vm.Memory
	input  []vm.Cell
	output []vm.Cell
}{
	{"sum", sum, vm.Memory{3, 11, 3, 12, 1, 11, 12, 13, 4, 13, 99, 0, 0, 0}, []vm.Cell{20, 22}, []vm.Cell{42}},
	{"countdown", countdown, vm.Memory{1101, 3, 0, 14, 4, 14, 1001, 14, -1, 14, 1005, 14, 4, 99, 0}, nil, []vm.Cell{3, 2, 1}},
	{"relative", relative, vm.Memory{109, 13, 203, 0, 203, 1, 22207, 0, 1, 2, 204, 2, 99}, []vm.Cell{1, 2}, []vm.Cell{1}},
	{"chars", "out #'a' out #'\\n' hlt", vm.Memory{104, 'a', 104, '\n', 99}, nil, []vm.Cell{'a', '\n'}},
	{"org", "jz #0 #start .org 10 :start hlt", vm.Memory{1106, 0, 10, 0, 0, 0, 0, 0, 0, 0, 99}, nil, nil},
	{"hex", ".dat 0x10 -0x10 017", vm.Memory{16, -16, 15}, nil, nil},
}

func equal(a, b []vm.Cell) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if a[k] != b[k] {
			return false
		}
	}
	return true
}

func TestAssemble(t *testing.T) {
	for _, test := range tests {
		img, err := asm.Assemble(test.name, strings.NewReader(test.code))
		if err != nil {
			t.Errorf("%s: %v", test.name, err)
			continue
		}
		if !equal(img, test.image) {
			t.Errorf("%s: bad image\nexpected: %v\ngot:      %v", test.name, test.image, img)
			continue
		}
		if len(test.input) == 0 && len(test.output) == 0 {
			continue
		}
		i, err := vm.New(img, vm.InputQueue(test.input...))
		if err != nil {
			t.Fatal(err)
		}
		if err = i.Run(); err != nil {
			t.Errorf("%s: %+v", test.name, err)
			continue
		}
		if !equal(i.Output(), test.output) {
			t.Errorf("%s: bad output: expected %v, got %v", test.name, test.output, i.Output())
		}
	}
}

// disassembling then re-assembling a program must yield the same image.
func TestDisassemble_roundTrip(t *testing.T) {
	for _, test := range tests[:3] {
		var b bytes.Buffer
		for pc := 0; pc < len(test.image); {
			var err error
			pc, err = asm.Disassemble(test.image, pc, &b)
			if err != nil {
				t.Fatal(err)
			}
			b.WriteByte('\n')
		}
		img, err := asm.Assemble(test.name, &b)
		if err != nil {
			t.Errorf("%s: %v", test.name, err)
			continue
		}
		if !equal(img, test.image) {
			t.Errorf("%s: bad image\nexpected: %v\ngot:      %v", test.name, test.image, img)
		}
	}
}

func TestDisassemble(t *testing.T) {
	mem := vm.Memory{11101, 1, 2, 3, 0, 42, 99}
	var b bytes.Buffer
	if err := asm.DisassembleAll(mem, &b); err != nil {
		t.Fatal(err)
	}
	expected := "     0\tadd #1 #2 #3\n     4\t.dat 0\n     5\t.dat 42\n     6\thlt\n"
	if b.String() != expected {
		t.Errorf("Expected:\n%s\nGot:\n%s", expected, b.String())
	}
}

// check some errors. We're not checking the messages, rather that they point at
// the correct place.
func TestAssemble_errors(t *testing.T) {
	code := `
	add 1 2 #3		( immediate write )
	jnz #1 #nowhere	( undefined )
	in 5 add 1 2
	mul 1 1 1
:dup :dup
	.foo
	:001
	out #'ab'
	.org`
	_, err := asm.Assemble("test_errors", strings.NewReader(code))
	if err == nil {
		t.Fatal("expected errors")
	}
	errs, ok := err.(asm.ErrAsm)
	if !ok {
		t.Fatalf("expected ErrAsm, got %T", err)
	}
	expected := []struct {
		token string
		msg   string
	}{
		{"#3", "Immediate operand used as write target"},
		{"#nowhere", "Undefined label nowhere"},
		{"add 1 2", "Missing operand(s) for add"},
		{":dup", "Label redefinition"},
		{".foo", "Unknown dot directive"},
		{":001", "Invalid label name"},
		{"#'ab'", "Invalid char literal"},
		{".org", "Missing directive argument"},
	}
	if len(errs) != len(expected) {
		t.Fatalf("expected %d errors, got %d:\n%v", len(expected), len(errs), err)
	}
	for k, e := range errs {
		if !strings.HasPrefix(e.Msg, expected[k].msg) {
			t.Errorf("error %d: expected message %q, got %q", k, expected[k].msg, e.Msg)
		}
		o := e.Pos.Offset
		tok := expected[k].token
		if k == 3 {
			// the second definition is the one in error
			o -= len(":dup ")
		}
		if o < 0 || o+len(tok) > len(code) || code[o:o+len(tok)] != tok {
			t.Errorf("error %d (%s) points to offset %d", k, e.Msg, e.Pos.Offset)
		}
	}
}
