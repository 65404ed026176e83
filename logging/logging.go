// ©Robert Srinivasiah 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package logging connects rsbl's failure reporting to a zap.Logger.
//
// rsbl itself never logs operationally. Assertion failures go to the
// installed rsbl.AssertHandler, and failed Results are handed back to the
// caller. This package provides the two adapters an application needs to
// route both into its structured log:
//
//	logger, _ := zap.NewProduction()
//	defer logger.Sync()
//	prev := logging.Install(logger)
//	defer rsbl.SetAssertHandler(prev)
//
//	if logging.Failure(logger, "load scene", res) {
//		return
//	}
//
// Sink configuration (console, rotating files) belongs to the application.
package logging

import (
	"go.uber.org/zap"

	"github.com/robbiesri/rsbl"
)

// AssertMessage is the log message of every assertion failure.
const AssertMessage = "Assert Failure"

// Handler returns an rsbl.AssertHandler that logs each failure to l at
// error level and then returns behavior.
func Handler(l *zap.Logger, behavior rsbl.FailureBehavior) rsbl.AssertHandler {
	if l == nil {
		l = zap.NewNop()
	}
	return func(condition, msg, file string, line int) rsbl.FailureBehavior {
		fields := []zap.Field{
			zap.String("condition", condition),
			zap.String("file", file),
			zap.Int("line", line),
			zap.Stringer("behavior", behavior),
		}
		if msg != "" {
			fields = append(fields, zap.String("msg", msg))
		}
		l.Error(AssertMessage, fields...)
		return behavior
	}
}

// Install routes assertion failures to l, halting after logging, and
// returns the handler it replaced.
func Install(l *zap.Logger) rsbl.AssertHandler {
	return rsbl.SetAssertHandler(Handler(l, rsbl.Halt))
}

// Failure logs r's failure text under msg and reports whether r failed.
// A successful r logs nothing.
func Failure[V any](l *zap.Logger, msg string, r rsbl.Result[V]) bool {
	if r.IsOk() {
		return false
	}
	fields := []zap.Field{zap.String("failure", r.FailureText())}
	if err := r.Err(); err != nil {
		fields = append(fields, zap.Error(err))
	}
	l.Error(msg, fields...)
	return true
}
