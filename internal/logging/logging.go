// Package logging wires up the module-wide leveled logger. Every package
// that needs to log calls GetLog() once at init time and keeps the returned
// *logging.Logger, the way the teacher's franky_logging package did.
package logging

import (
	"os"

	"github.com/op/go-logging"
)

var (
	mainLog  *logging.Logger
	testLog  *logging.Logger
	leveled  logging.LeveledBackend
	initOnce bool
)

var format = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{shortfile} %{level:7s}: %{message}`,
)

func setup() {
	if initOnce {
		return
	}
	backend := logging.NewLogBackend(os.Stdout, "", 0)
	backendFormatter := logging.NewBackendFormatter(backend, format)
	leveled = logging.AddModuleLevel(backendFormatter)
	leveled.SetLevel(logging.INFO, "")
	logging.SetBackend(leveled)
	initOnce = true
}

// GetLog returns the module-wide logger used outside of tests.
func GetLog() *logging.Logger {
	setup()
	if mainLog == nil {
		mainLog = logging.MustGetLogger("corvid")
	}
	return mainLog
}

// GetTestLog returns a logger at DEBUG level for use from _test.go files.
func GetTestLog() *logging.Logger {
	setup()
	leveled.SetLevel(logging.DEBUG, "")
	if testLog == nil {
		testLog = logging.MustGetLogger("corvid-test")
	}
	return testLog
}

// SetLevel changes the log level of the shared backend, e.g. from config or
// command line flags.
func SetLevel(lvl logging.Level) {
	setup()
	leveled.SetLevel(lvl, "")
}
