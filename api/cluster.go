// Package api provides AIStore-compatible cluster API over HTTP(S)
/*
 * Copyright (c) 2018-2025, NVIDIA CORPORATION. All rights reserved.
 */
package api

import (
	"net/http"
	"net/url"

	"github.com/NVIDIA/aisclient/api/apc"
	"github.com/NVIDIA/aisclient/meta"
)

// GetClusterMap retrieves the cluster map from the control plane and applies
// it to the session (monotonically - see Client.ApplySmap). The returned map
// is the fetched one regardless of whether it superseded the held one.
func GetClusterMap(c *Client) (*meta.Smap, error) {
	q := url.Values{apc.QparamWhat: []string{apc.WhatSmap}}
	reqParams := c.reqParams(http.MethodGet, c.controlURL(), daePath(), q)
	defer FreeRp(reqParams)

	smap := &meta.Smap{}
	if err := reqParams.DoHTTPReqResp(smap); err != nil {
		return nil, err
	}
	if err := smap.Validate(); err != nil {
		return nil, err
	}
	c.ApplySmap(smap)
	return smap, nil
}

// RefreshSmap is a convenience wrapper; refresh triggering is caller-driven.
func (c *Client) RefreshSmap() (*meta.Smap, error) { return GetClusterMap(c) }
