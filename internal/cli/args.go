// Copyright (c) 2025 oEg8
// SPDX-License-Identifier: MIT

package cli

import (
	"strconv"
	"strings"
)

// ArgParser handles the flag formats the commands accept:
//
//	--flag value    long flag with separate value
//	--flag=value    long flag with equals sign
//	--flag          boolean flag
//
// Positional arguments are collected in order.
type ArgParser struct {
	flags      map[string]string
	boolFlags  map[string]bool
	positional []string
}

// valueFlags are the flags that take a separate value. Anything else written
// bare is boolean, so a positional after it survives.
var valueFlags = map[string]bool{
	"backend":  true,
	"username": true,
	"code":     true,
	"limit":    true,
}

// NewArgParser parses raw arguments.
func NewArgParser(raw []string) *ArgParser {
	p := &ArgParser{
		flags:     make(map[string]string),
		boolFlags: make(map[string]bool),
	}

	for i := 0; i < len(raw); i++ {
		arg := raw[i]
		if !strings.HasPrefix(arg, "-") {
			p.positional = append(p.positional, arg)
			continue
		}
		name := strings.TrimLeft(arg, "-")

		if eq := strings.Index(name, "="); eq >= 0 {
			p.flags[name[:eq]] = name[eq+1:]
			continue
		}
		// Only known value flags consume the next token.
		if valueFlags[name] && i+1 < len(raw) && !strings.HasPrefix(raw[i+1], "-") {
			p.flags[name] = raw[i+1]
			i++
		} else {
			p.boolFlags[name] = true
		}
	}
	return p
}

// Flag returns the value of a string flag, or "".
func (p *ArgParser) Flag(name string) string {
	return p.flags[name]
}

// IntFlag returns the value of an integer flag, or def when absent or
// malformed.
func (p *ArgParser) IntFlag(name string, def int) int {
	v, ok := p.flags[name]
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// BoolFlag reports whether a boolean flag was set.
func (p *ArgParser) BoolFlag(name string) bool {
	return p.boolFlags[name]
}

// Positional returns the positional argument at index i, or "".
func (p *ArgParser) Positional(i int) string {
	if i < 0 || i >= len(p.positional) {
		return ""
	}
	return p.positional[i]
}
