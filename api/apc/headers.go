// Package apc: API messages and constants
/*
 * Copyright (c) 2018-2025, NVIDIA CORPORATION. All rights reserved.
 */
package apc

// AIS http header conventions:
//   - always starts with the prefix "ais-"
//   - all words separated with "-"

const HdrError = "Hdr-Error" // to return an error via response header (e.g., HEAD which has no body)

const (
	HeaderPrefix = "ais-"

	// object props
	HdrObjCksumType = HeaderPrefix + "checksum-type"
	HdrObjCksumVal  = HeaderPrefix + "checksum-value"
	HdrObjAtime     = HeaderPrefix + "atime"
	HdrObjVersion   = HeaderPrefix + "version"
)

// authn
const (
	HdrAuthorization         = "Authorization"
	AuthenticationTypeBearer = "Bearer"
)
