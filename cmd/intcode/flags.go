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
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/db47h/intcode/vm"
)

// cellList is a repeatable flag that collects Cell values.
type cellList []vm.Cell

func (l *cellList) String() string {
	var sb strings.Builder
	for k, v := range *l {
		if k > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatInt(int64(v), 10))
	}
	return sb.String()
}

func (l *cellList) Set(s string) error {
	for _, f := range strings.Split(s, ",") {
		n, err := strconv.ParseInt(strings.TrimSpace(f), 10, 64)
		if err != nil {
			return errors.Wrap(err, "invalid input value")
		}
		*l = append(*l, vm.Cell(n))
	}
	return nil
}

func (l *cellList) Get() interface{} { return *l }

type patch struct {
	addr int
	v    vm.Cell
}

// patchList is a repeatable flag of addr=value memory patches.
type patchList []patch

func (l *patchList) String() string {
	var sb strings.Builder
	for k, p := range *l {
		if k > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(p.addr))
		sb.WriteByte('=')
		sb.WriteString(strconv.FormatInt(int64(p.v), 10))
	}
	return sb.String()
}

func (l *patchList) Set(s string) error {
	a, v, ok := strings.Cut(s, "=")
	if !ok {
		return errors.Errorf("%q: expected addr=value", s)
	}
	addr, err := strconv.Atoi(strings.TrimSpace(a))
	if err != nil || addr < 0 {
		return errors.Errorf("%q: invalid address", s)
	}
	n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil {
		return errors.Errorf("%q: invalid value", s)
	}
	*l = append(*l, patch{addr, vm.Cell(n)})
	return nil
}

func (l *patchList) Get() interface{} { return *l }

func (l patchList) options() []vm.Option {
	opts := make([]vm.Option, 0, len(l))
	for _, p := range l {
		opts = append(opts, vm.Patch(p.addr, p.v))
	}
	return opts
}

// inputOption returns the VM input option for the values given on the command
// line: a single value is used as a fixed input, several values as a queue.
func (l cellList) inputOption() vm.Option {
	switch len(l) {
	case 0:
		return vm.Input(0)
	case 1:
		return vm.Input(l[0])
	default:
		return vm.InputQueue(l...)
	}
}
