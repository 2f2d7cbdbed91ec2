// Package cos provides common low-level types and utilities for all aisclient code
/*
 * Copyright (c) 2018-2025, NVIDIA CORPORATION. All rights reserved.
 */
package cos

import (
	"net/url"
	"strings"
)

// JoinWords assembles an absolute URL path from the given words
// (much faster than path.Join)
func JoinWords(w0 string, words ...string) (path string) {
	var l = len(w0)
	if w0[0] != '/' {
		l++
	}
	for _, w := range words {
		l += 1 + len(w)
	}
	b := make([]byte, 0, l)
	if w0[0] != '/' {
		b = append(b, '/')
	}
	b = append(b, w0...)
	for _, w := range words {
		b = append(b, '/')
		b = append(b, w...)
	}
	return UnsafeS(b)
}

// JoinPath joins two path elements that may (or may not) be prefixed/suffixed with a slash.
func JoinPath(url, path string) string {
	suffix := strings.HasSuffix(url, "/")
	prefix := path[0] == '/'
	if suffix && prefix {
		return url + path[1:]
	}
	if !suffix && !prefix {
		return url + "/" + path
	}
	return url + path
}

// CloneQuery copies the values so that the caller-owned original is never mutated.
func CloneQuery(q url.Values) url.Values {
	clone := make(url.Values, len(q)+4)
	for k, v := range q {
		clone[k] = append([]string(nil), v...)
	}
	return clone
}

func ParseURLScheme(rawURL string) (scheme, address string) {
	s := strings.SplitN(rawURL, "://", 2)
	if len(s) == 1 {
		return "", s[0]
	}
	return s[0], s[1]
}
