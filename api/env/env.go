// Package env contains environment variables
/*
 * Copyright (c) 2018-2025, NVIDIA CORPORATION. All rights reserved.
 */
package env

import "os"

var (
	AIS = struct {
		Endpoint string
		UseHTTPS string
		// TLS: client side
		SkipVerifyCrt string
		// tests, CI
		NumTarget string
		NumProxy  string
	}{
		Endpoint: "AIS_ENDPOINT",
		UseHTTPS: "AIS_USE_HTTPS",

		SkipVerifyCrt: "AIS_SKIP_VERIFY_CRT",

		NumTarget: "NUM_TARGET",
		NumProxy:  "NUM_PROXY",
	}
)

// Endpoint returns the configured cluster endpoint, or the given default.
func Endpoint(dflt string) string {
	if ep := os.Getenv(AIS.Endpoint); ep != "" {
		return ep
	}
	return dflt
}
