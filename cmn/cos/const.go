// Package cos provides common low-level types and utilities for all aisclient code
/*
 * Copyright (c) 2018-2025, NVIDIA CORPORATION. All rights reserved.
 */
package cos

import "time"

// IEC units
const (
	KiB = 1024
	MiB = 1024 * KiB
	GiB = 1024 * MiB
)

// assorted http headers and content types
const (
	HdrContentType   = "Content-Type"
	HdrContentLength = "Content-Length"

	ContentJSON    = "application/json"
	ContentMsgPack = "application/msgpack"
	ContentBinary  = "application/octet-stream"
)

// (linear congruential generator) increment
const MLCG32 = 1103515245

// NonZero returns the value if non-zero, the default otherwise.
func NonZero[T int | int64 | time.Duration](val, dflt T) T {
	if val == 0 {
		return dflt
	}
	return val
}
