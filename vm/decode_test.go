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

package vm_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/db47h/intcode/vm"
)

func TestDecode(t *testing.T) {
	for _, test := range []struct {
		mem  vm.Memory
		pc   int
		want string
	}{
		{vm.Memory{1, 9, 10, 3}, 0, "add 9 10 3"},
		{vm.Memory{1002, 4, 3, 4}, 0, "mul 4 #3 4"},
		{vm.Memory{0, 0, 21101, 3, 4, 5}, 2, "add #3 #4 @5"},
		{vm.Memory{3}, 0, "in 0"},
		{vm.Memory{204, -1}, 0, "out @-1"},
		{vm.Memory{1105, 1, 9}, 0, "jnz #1 #9"},
		{vm.Memory{6, 12, 15}, 0, "jz 12 15"},
		{vm.Memory{1107, -1, 8, 3}, 0, "lt #-1 #8 3"},
		{vm.Memory{1008, 100, 16, 101}, 0, "eq 100 #16 101"},
		{vm.Memory{109, 1}, 0, "arb #1"},
		{vm.Memory{99}, 0, "hlt"},
		// mode digits beyond the opcode's arity are ignored
		{vm.Memory{22299}, 0, "hlt"},
		{vm.Memory{2104, 5}, 0, "out #5"},
	} {
		ins, err := vm.Decode(test.mem, test.pc)
		require.NoError(t, err)
		require.Equal(t, test.want, ins.String())
		require.Equal(t, test.mem[test.pc]%100, vm.Cell(ins.Op))
	}
}

func TestDecode_modes(t *testing.T) {
	// the mode of the kth operand is (v / 10^(k+1)) % 10 regardless of the
	// operand values
	for _, v := range []vm.Cell{1, 101, 1001, 10001, 1101, 2201, 21201, 22201, 12101} {
		for _, arg := range []vm.Cell{0, -7, 1 << 40} {
			ins, err := vm.Decode(vm.Memory{v, arg, arg, arg}, 0)
			require.NoError(t, err)
			d := vm.Cell(100)
			for k, a := range ins.Operands() {
				require.Equal(t, vm.Mode(v/d%10), a.Mode, "v=%d, k=%d", v, k+1)
				require.Equal(t, arg, a.Value)
				d *= 10
			}
			require.Equal(t, v, ins.Encode())
		}
	}
}

func TestDecode_pastEnd(t *testing.T) {
	ins, err := vm.Decode(vm.Memory{1, 5}, 0)
	require.NoError(t, err)
	require.Equal(t, "add 5 0 0", ins.String())
	require.Equal(t, 4, ins.Size())

	_, err = vm.Decode(vm.Memory{1, 5}, 10)
	require.Error(t, err)
	de, ok := err.(*vm.DecodeError)
	require.True(t, ok)
	require.Equal(t, 10, de.PC)
	require.Equal(t, 0, de.Param)
}

func TestOpcode(t *testing.T) {
	for _, op := range []vm.Opcode{vm.OpAdd, vm.OpMul, vm.OpIn, vm.OpOut, vm.OpJumpIfTrue,
		vm.OpJumpIfFalse, vm.OpLessThan, vm.OpEquals, vm.OpAdjustBase, vm.OpHalt} {
		require.True(t, op.Valid())
		got, ok := vm.LookupOpcode(op.String())
		require.True(t, ok)
		require.Equal(t, op, got)
	}
	require.Equal(t, 3, vm.OpLessThan.Arity())
	require.Equal(t, 2, vm.OpJumpIfFalse.Arity())
	require.Equal(t, 0, vm.OpHalt.Arity())
	require.Equal(t, -1, vm.Opcode(10).Arity())
	require.False(t, vm.Opcode(0).Valid())
	require.Equal(t, "op(42)", vm.Opcode(42).String())
}
