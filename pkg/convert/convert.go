// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package convert provides lenient string-to-number conversions for query
parameters, where a malformed value should fall back rather than fail.

Use [strconv] directly when malformed input must be reported.
*/
package convert

import (
	"strconv"
	"strings"
)

// IntOr parses s as an integer, returning fallback when s is blank or malformed.
func IntOr(s string, fallback int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return v
}

// AtLeast parses s like [IntOr] and also applies fallback when the result is
// below floor.
func AtLeast(s string, floor, fallback int) int {
	if v := IntOr(s, fallback); v >= floor {
		return v
	}
	return fallback
}
