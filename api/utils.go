// Package api provides AIStore-compatible cluster API over HTTP(S)
/*
 * Copyright (c) 2018-2025, NVIDIA CORPORATION. All rights reserved.
 */
package api

import (
	"net/url"

	"github.com/NVIDIA/aisclient/api/apc"
	"github.com/NVIDIA/aisclient/cmn"
	"github.com/NVIDIA/aisclient/cmn/cos"
)

// each path segment is percent-encoded independently

func objPath(bck cmn.Bck, objName string) string {
	return cos.JoinWords(apc.Version, apc.Objects, url.PathEscape(bck.Name), url.PathEscape(objName))
}

func bckPath(bck cmn.Bck) string {
	return cos.JoinWords(apc.Version, apc.Objects, url.PathEscape(bck.Name))
}

func daePath() string { return cos.JoinWords(apc.Version, apc.Daemon) }

// bckQuery clones the caller-supplied query (never mutated) and merges the
// bucket-scoped parameters into the copy.
func bckQuery(bck cmn.Bck, query url.Values) url.Values {
	q := cos.CloneQuery(query)
	return bck.AddToQuery(q)
}
