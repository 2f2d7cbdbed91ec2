// Package apc: API messages and constants
/*
 * Copyright (c) 2018-2025, NVIDIA CORPORATION. All rights reserved.
 */
package apc

// URL query parameter keywords
const (
	QparamWhat = "what" // "smap" | ...

	// bucket-scoped
	QparamProvider  = "provider"  // backend provider enum (see provider.go)
	QparamNamespace = "namespace" // bucket namespace: [uuid#]name

	// sharded (archived) objects: extract a single named member server-side
	QparamArchpath = "archpath"
	QparamArchmime = "archmime"

	// inline transform: apply the named ETL to the object before streaming it back
	QparamETLName = "etl_name"
)

// QparamWhat enum
const (
	WhatSmap = "smap"
)
