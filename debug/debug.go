// Package debug provides env-gated debug logging for the opsel tool.
// The library packages stay silent; only the CLI and merge plumbing
// consult these switches.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Merge  bool
	Parse  bool
	Filter bool
	Patch  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Merge = boolEnv("OPSEL_DEBUG_MERGE")
	d.Parse = boolEnv("OPSEL_DEBUG_PARSE")
	d.Filter = boolEnv("OPSEL_DEBUG_FILTER")
	d.Patch = boolEnv("OPSEL_DEBUG_PATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Merge() bool {
	return d.Merge
}
func Parse() bool {
	return d.Parse
}
func Filter() bool {
	return d.Filter
}
func Patch() bool {
	return d.Patch
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}
