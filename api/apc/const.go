// Package apc: API messages and constants
/*
 * Copyright (c) 2018-2025, NVIDIA CORPORATION. All rights reserved.
 */
package apc

// node types
const (
	Proxy  = "proxy"
	Target = "target"
)

// RESTful URL path words
const (
	Version = "v1"

	Buckets = "buckets"
	Objects = "objects"
	Daemon  = "daemon"
	Cluster = "cluster"
	Health  = "health"
)
