// Package api provides AIStore-compatible cluster API over HTTP(S)
/*
 * Copyright (c) 2018-2025, NVIDIA CORPORATION. All rights reserved.
 */
package api

import (
	"net/http"

	"github.com/NVIDIA/aisclient/api/apc"
	"github.com/NVIDIA/aisclient/cmn"
	"github.com/NVIDIA/aisclient/cmn/cos"
	jsoniter "github.com/json-iterator/go"
)

// Promote instructs the cluster to absorb a file (or directory) that is
// already present on cluster-accessible storage into bck, without
// transferring bytes through this client. An explicit args.DaemonID pins the
// operation to that target, bypassing proxy routing; otherwise the action
// goes to the primary proxy, which fans out cluster-side. Success is a 2xx
// response plus object-properties headers.
func Promote(c *Client, bck cmn.Bck, args *apc.PromoteArgs) (http.Header, error) {
	if args == nil || args.SourcePath == "" {
		return nil, cmn.NewErrInvalidArgument("promote: source path is required")
	}
	if args.ObjName == "" {
		return nil, cmn.NewErrInvalidArgument("promote: destination object name is required")
	}
	if err := bck.Validate(); err != nil {
		return nil, cmn.NewErrInvalidArgument("%v", err)
	}
	destURL := c.controlURL()
	if args.DaemonID != "" {
		var err error
		if destURL, err = c.targetURL(args.DaemonID); err != nil {
			return nil, err
		}
	}
	msg := apc.ActMsg{Action: apc.ActPromote, Name: args.SourcePath, Value: args}
	body, err := jsoniter.Marshal(&msg)
	if err != nil {
		return nil, err
	}
	reqParams := c.reqParams(http.MethodPost, destURL, bckPath(bck), bckQuery(bck, nil))
	defer FreeRp(reqParams)
	reqParams.Body = body
	reqParams.Header = http.Header{cos.HdrContentType: []string{cos.ContentJSON}}

	hdr, err := reqParams.doHeaders()
	if err != nil {
		// the source path is resolved server-side, not by a local stat
		return nil, cmn.Promote2RemotePathErr(err, args.SourcePath)
	}
	return hdr, nil
}
