// Package apc: API messages and constants
/*
 * Copyright (c) 2018-2025, NVIDIA CORPORATION. All rights reserved.
 */
package apc

// backend providers
const (
	AIS   = "ais"
	AWS   = "aws"
	Azure = "azure"
	GCP   = "gcp"
	HT    = "ht"
)

var Providers = map[string]struct{}{
	AIS:   {},
	AWS:   {},
	Azure: {},
	GCP:   {},
	HT:    {},
}

func IsProvider(p string) bool {
	_, ok := Providers[p]
	return ok
}
