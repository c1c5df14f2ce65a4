//
// chesscore - a bitboard chess engine core in Go
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

// Package logging is a thin wrapper around "github.com/op/go-logging"
// so each package that needs a logger gets one preconfigured instance
// instead of repeating backend/formatter setup.
package logging

import (
	"log"
	"os"

	"github.com/op/go-logging"

	"github.com/frankkopp/chesscore/internal/config"
)

var (
	standardLog = logging.MustGetLogger("standard")
	searchLog   = logging.MustGetLogger("search")
	testLog     = logging.MustGetLogger("test")

	standardFormat = logging.MustStringFormatter(
		`%{time:15:04:05.000} %{shortpkg:-8.8s}:%{shortfile:-14.14s} %{level:-7.7s}:  %{message}`,
	)
)

// GetLog returns the standard engine logger, level set from config.
func GetLog() *logging.Logger {
	return leveled(standardLog, config.LogLevel)
}

// GetSearchLog returns the per-node search trace logger, kept off the
// hot path unless the configured level enables Debug.
func GetSearchLog() *logging.Logger {
	return leveled(searchLog, config.SearchLogLevel)
}

// GetTestLog returns a logger for use from _test.go files.
func GetTestLog() *logging.Logger {
	return leveled(testLog, config.TestLogLevel)
}

func leveled(l *logging.Logger, level int) *logging.Logger {
	backend := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	formatted := logging.NewBackendFormatter(backend, standardFormat)
	withLevel := logging.AddModuleLevel(formatted)
	withLevel.SetLevel(logging.Level(level), "")
	l.SetBackend(withLevel)
	return l
}
