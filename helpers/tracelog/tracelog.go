// Package tracelog provides the logger used to trace requests and retries.
// Nothing is printed unless TRACE_LEVEL is at least 1.
package tracelog

import (
	"log"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// TraceLevel returns the trace-level argument
func TraceLevel() int {
	return viper.GetInt("trace-level")
}

// LoggerFlags adds the trace-level flag to the flag set and records its environment
// variable
func LoggerFlags(pf *flag.FlagSet, argToEnv map[string]string) {
	pf.IntP("trace-level", "", 0, "Only print trace messages at or above this level (0 to 255, default 0, print nothing)")
	viper.BindPFlag("trace-level", pf.Lookup("trace-level"))
	argToEnv["trace-level"] = "TRACE_LEVEL"
}

// NewLogger creates a stderr logger. Derived loggers start at level 1, so with the
// default TRACE_LEVEL=0 nothing is printed. Request bodies and headers are logged at
// V(5) and need a higher TRACE_LEVEL.
func NewLogger() logr.Logger {
	stdr.SetVerbosity(TraceLevel())
	return stdr.New(log.New(os.Stderr, "", log.LstdFlags)).V(1) // NOTE: Increment of level, not absolute.
}
