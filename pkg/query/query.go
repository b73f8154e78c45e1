// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package query parses comma-separated command-line values such as
// "--roles 1,2" or "--fields title:text,body:wysiwyg".
package query

import (
	"fmt"
	"strconv"
	"strings"
)

// StringSlice parses a single comma-separated string into a trimmed slice of
// strings. Blank entries are dropped.
func StringSlice(val string) []string {
	if val == "" {
		return nil
	}
	var res []string
	for _, v := range strings.Split(val, ",") {
		clean := strings.TrimSpace(v)
		if clean != "" {
			res = append(res, clean)
		}
	}
	return res
}

// IntSlice parses every value as an integer. Unlike a lenient query parser it
// reports the first invalid entry, since a silently dropped role ID would
// change what gets assigned.
func IntSlice(vals []string) ([]int, error) {
	res := make([]int, 0, len(vals))
	for _, v := range vals {
		i, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return nil, fmt.Errorf("query: %q is not a number", v)
		}
		res = append(res, i)
	}
	return res, nil
}

// Pair splits "key:value". A missing separator yields the fallback value.
func Pair(val, fallback string) (string, string) {
	key, value, found := strings.Cut(val, ":")
	key = strings.TrimSpace(key)
	if !found || strings.TrimSpace(value) == "" {
		return key, fallback
	}
	return key, strings.TrimSpace(value)
}
