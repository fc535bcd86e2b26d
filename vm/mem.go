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

import "math"

// Cell is the raw type stored in a memory location.
type Cell int64

// Memory is the growable memory of an Intcode machine. Code and data share the
// same address space.
//
// Reading past the end of the slice yields 0 and does not grow it. Writing past
// the end grows the slice, zero filled, so that the address becomes valid.
type Memory []Cell

// Read returns the value stored at address addr, or 0 if addr has never been
// written to.
func (m Memory) Read(addr int) Cell {
	if addr < 0 || addr >= len(m) {
		return 0
	}
	return m[addr]
}

// Write stores v at address addr, growing m as needed. addr must be in the
// range [0, math.MaxInt).
func (m *Memory) Write(addr int, v Cell) {
	if addr < 0 || addr == math.MaxInt {
		panic(ErrBadAddress)
	}
	m.grow(addr + 1)
	(*m)[addr] = v
}

// grow makes sure that len(*m) >= n. New cells are zero.
func (m *Memory) grow(n int) {
	mem := *m
	if n <= len(mem) {
		return
	}
	if n <= cap(mem) {
		// cells between len and cap may hold stale values from a previous
		// truncation, so clear them explicitly.
		ext := mem[len(mem):n]
		for i := range ext {
			ext[i] = 0
		}
		*m = mem[:n]
		return
	}
	c := 2 * cap(mem)
	if c < n {
		c = n
	}
	t := make(Memory, n, c)
	copy(t, mem)
	*m = t
}

// Len returns the current size of the memory in cells.
func (m Memory) Len() int {
	return len(m)
}

// Clone returns a deep copy of m.
func (m Memory) Clone() Memory {
	if m == nil {
		return nil
	}
	t := make(Memory, len(m), cap(m))
	copy(t, m)
	return t
}
