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
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/db47h/intcode/vm"
)

func TestParse(t *testing.T) {
	for _, test := range []struct {
		text string
		want vm.Memory
	}{
		{"1,0,0,0,99", vm.Memory{1, 0, 0, 0, 99}},
		{"1,0,0,0,99\n", vm.Memory{1, 0, 0, 0, 99}},
		{" 1 ,\t-2,\n+3 , 99 ", vm.Memory{1, -2, 3, 99}},
		{"104,1125899906842624,99", vm.Memory{104, 1125899906842624, 99}},
		{"-9223372036854775808", vm.Memory{-9223372036854775808}},
	} {
		mem, err := vm.ParseString(test.text)
		require.NoError(t, err, "%q", test.text)
		require.Equal(t, test.want, mem)
	}
}

func TestParse_errors(t *testing.T) {
	for _, test := range []struct {
		text  string
		index int
		token string
		err   error
	}{
		{"", 0, "", nil},
		{"1,2,", 2, "", nil},
		{"1,x,3", 1, "x", strconv.ErrSyntax},
		{"1,2.5", 1, "2.5", strconv.ErrSyntax},
		{"1 2", 0, "1 2", strconv.ErrSyntax},
		{"1,9223372036854775808", 1, "9223372036854775808", strconv.ErrRange},
	} {
		_, err := vm.ParseString(test.text)
		pe, ok := err.(*vm.ParseError)
		require.True(t, ok, "%q: expected *ParseError, got %v", test.text, err)
		require.Equal(t, test.index, pe.Index)
		require.Equal(t, test.token, pe.Token)
		require.Equal(t, test.err, pe.Err)
		require.Same(t, pe, errors.Cause(pe))
		if test.err != nil {
			require.True(t, errors.Is(err, test.err))
		}
	}
}

func TestLoad(t *testing.T) {
	mem, err := vm.Load("testdata/quine.ic")
	require.NoError(t, err)
	require.Equal(t, 16, mem.Len())
	require.Equal(t, quine, mem.String())

	_, err = vm.Load("testdata/missing.ic")
	require.Error(t, err)
	require.True(t, os.IsNotExist(errors.Cause(err)))
}

func TestLoad_parseError(t *testing.T) {
	dir := t.TempDir()
	for _, test := range []struct {
		text  string
		index int
	}{
		{"", 0},
		{"1,x\n", 1},
	} {
		name := filepath.Join(dir, "bad.ic")
		require.NoError(t, os.WriteFile(name, []byte(test.text), 0644))
		_, err := vm.Load(name)
		require.Error(t, err)
		pe, ok := errors.Cause(err).(*vm.ParseError)
		require.True(t, ok, "%q: expected *ParseError cause, got %v", test.text, errors.Cause(err))
		require.Equal(t, test.index, pe.Index)
	}
}

func TestSave(t *testing.T) {
	mem, err := vm.ParseString(quine)
	require.NoError(t, err)
	name := filepath.Join(t.TempDir(), "quine.ic")
	require.NoError(t, vm.Save(name, mem))
	b, err := os.ReadFile(name)
	require.NoError(t, err)
	require.Equal(t, quine+"\n", string(b))

	back, err := vm.Load(name)
	require.NoError(t, err)
	require.Equal(t, mem, back)
}

func TestMemory_WriteTo(t *testing.T) {
	var b bytes.Buffer
	n, err := vm.Memory{1, -2, 3}.WriteTo(&b)
	require.NoError(t, err)
	require.Equal(t, "1,-2,3\n", b.String())
	require.Equal(t, int64(b.Len()), n)
}
