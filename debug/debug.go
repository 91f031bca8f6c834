package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Keys   bool
	Codec  bool
	Choice bool
	List   bool
	Patch  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Keys = boolEnv("ALPAKKA_DEBUG_KEYS")
	d.Codec = boolEnv("ALPAKKA_DEBUG_CODEC")
	d.Choice = boolEnv("ALPAKKA_DEBUG_CHOICE")
	d.List = boolEnv("ALPAKKA_DEBUG_LIST")
	d.Patch = boolEnv("ALPAKKA_DEBUG_PATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// Keys traces store key resolution.
func Keys() bool {
	return d.Keys
}
func Codec() bool {
	return d.Codec
}
func Choice() bool {
	return d.Choice
}
func List() bool {
	return d.List
}
func Patch() bool {
	return d.Patch
}
