// Package cos provides common low-level types and utilities for all aisclient code
/*
 * Copyright (c) 2021-2025, NVIDIA CORPORATION. All rights reserved.
 */
package cos

import "unsafe"

// zero-copy string <=> []byte conversions; the caller must guarantee
// the argument is not modified for the lifetime of the result

func UnsafeB(s string) []byte { return unsafe.Slice(unsafe.StringData(s), len(s)) }

func UnsafeS(b []byte) string { return unsafe.String(unsafe.SliceData(b), len(b)) }
