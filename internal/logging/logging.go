//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package logging provides a single shared *logging.Logger for every
// package in the module. Backend and level are configured once from
// internal/config; callers only ever call GetLog().
package logging

import (
	"os"

	"github.com/op/go-logging"
)

const loggerName = "FrankyGo"

var log *logging.Logger

var format = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{level:-7s} %{shortfile:-15s} %{message}`,
)

func init() {
	log = logging.MustGetLogger(loggerName)
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, format)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.INFO, "")
	logging.SetBackend(leveled)
}

// GetLog returns the shared logger instance for the engine.
func GetLog() *logging.Logger {
	return log
}

// SetLevel changes the global logging threshold. Level follows the
// go-logging convention: CRITICAL < ERROR < WARNING < NOTICE < INFO < DEBUG.
func SetLevel(level logging.Level) {
	logging.SetLevel(level, loggerName)
}

// LevelFromInt maps the small integer scale used by internal/config
// (0=CRITICAL .. 5=DEBUG) onto a go-logging Level.
func LevelFromInt(i int) logging.Level {
	switch {
	case i <= 0:
		return logging.CRITICAL
	case i == 1:
		return logging.ERROR
	case i == 2:
		return logging.WARNING
	case i == 3:
		return logging.NOTICE
	case i == 4:
		return logging.INFO
	default:
		return logging.DEBUG
	}
}
