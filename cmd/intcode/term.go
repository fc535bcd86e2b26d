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

//go:build !windows
// +build !windows

package main

import (
	"github.com/pkg/errors"
	"github.com/pkg/term"
)

// setRawIO switches the controlling terminal to cbreak mode: input is
// available to the program one key at a time, without local echo. It returns
// a function that restores the terminal settings as they were before.
func setRawIO() (func(), error) {
	t, err := term.Open("/dev/tty", term.CBreakMode)
	if err != nil {
		return nil, errors.Wrap(err, "cbreak mode failed")
	}
	return func() {
		t.Restore()
		t.Close()
	}, nil
}
