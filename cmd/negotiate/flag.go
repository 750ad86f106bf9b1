package main

import (
	"strconv"
)

// uint32Value is a flag.Value holding a uint32. Values that do not fit
// are rejected.
type uint32Value struct {
	value uint32
	given bool // Set from the command line.
}

func (v *uint32Value) String() string {
	if v == nil {
		return "0"
	}
	return strconv.FormatUint(uint64(v.value), 10)
}

func (v *uint32Value) Set(s string) (err error) {
	n, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return
	}

	v.value = uint32(n)
	v.given = true
	return
}
