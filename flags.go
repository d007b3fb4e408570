package main

import "strings"

// stringSlice is a repeatable flag; unlike pflag's StringSlice it does not
// split values on commas.
type stringSlice []string

func (s *stringSlice) String() string {
	if s == nil {
		return ""
	}
	return strings.Join(*s, ",")
}

func (s *stringSlice) Set(value string) error {
	*s = append(*s, value)
	return nil
}

func (s *stringSlice) Type() string {
	return "origin"
}
