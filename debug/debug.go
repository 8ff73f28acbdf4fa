// Package debug gates trace logging for prune and merge walks behind
// environment variables, for diagnosing exclusion lists and patch
// documents without a debugger.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Prune bool
	Patch bool
}

var d *debug

func init() {
	d = &debug{}
	d.Prune = boolEnv("CLONE_DEBUG_PRUNE")
	d.Patch = boolEnv("CLONE_DEBUG_PATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Prune() bool {
	return d.Prune
}

func Patch() bool {
	return d.Patch
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}
