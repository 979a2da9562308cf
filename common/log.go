package common

import (
	"fmt"
	"log"

	"github.com/gopherjs/gopherjs/js"
)

// EnableDebug gates Debug output. Warnings and errors are always printed.
var EnableDebug = false

// console returns the browser console, or nil when not running under GopherJS.
func console() *js.Object {
	if js.Global == nil {
		return nil
	}
	c := js.Global.Get("console")
	if c == nil || c == js.Undefined {
		return nil
	}
	return c
}

func emit(level string, args []interface{}) {
	if c := console(); c != nil {
		c.Call(level, args...)
		return
	}
	log.Print("[" + level + "] " + fmt.Sprintln(args...))
}

// Debug logs a message if debug mode is enabled.
func Debug(args ...interface{}) {
	if EnableDebug {
		emit("log", args)
	}
}

// Warn logs a non-fatal problem such as a blocked play() call.
func Warn(args ...interface{}) {
	emit("warn", args)
}

// Error logs an error.
func Error(args ...interface{}) {
	emit("error", args)
}
