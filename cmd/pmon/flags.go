// ABOUTME: pflag.Value for string flags restricted to a fixed set of values.
// ABOUTME: Backs --color and --log-level so bad values fail during flag parsing as usage errors.
package main

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

// enumFlag is a string flag that only accepts one of its allowed values.
type enumFlag struct {
	allowed []string
	value   string
}

var _ pflag.Value = (*enumFlag)(nil)

func newEnumFlag(defaultValue string, allowed ...string) *enumFlag {
	return &enumFlag{allowed: allowed, value: defaultValue}
}

func (e *enumFlag) String() string {
	return e.value
}

// Set accepts s case-insensitively.
func (e *enumFlag) Set(s string) error {
	s = strings.ToLower(s)
	for _, v := range e.allowed {
		if v == s {
			e.value = s
			return nil
		}
	}
	return errors.Errorf("invalid value %q, must be one of %s", s, strings.Join(e.allowed, "|"))
}

// Type is left blank so help text shows only the usage string.
func (e *enumFlag) Type() string {
	return ""
}
