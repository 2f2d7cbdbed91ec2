// Package api provides AIStore-compatible cluster API over HTTP(S)
/*
 * Copyright (c) 2018-2025, NVIDIA CORPORATION. All rights reserved.
 */
package api

import (
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"

	"github.com/NVIDIA/aisclient/cmn"
	"github.com/NVIDIA/aisclient/meta"
)

// Client is a session against one cluster: an http.Client, the configured
// entry-point URL, an optional auth token, and the most recently observed
// cluster map. The Smap is the only cross-call mutable state; it is replaced
// wholesale via a single atomic swap and safe to read concurrently.
type Client struct {
	client *http.Client
	url    string
	token  string
	smap   atomic.Pointer[meta.Smap]
}

func New(client *http.Client, url, token string) *Client {
	return &Client{client: client, url: strings.TrimSuffix(url, "/"), token: token}
}

// Smap returns the currently held cluster map (nil until the first
// successful apply or refresh).
func (c *Client) Smap() *meta.Smap { return c.smap.Load() }

// ApplySmap replaces the held cluster map if, and only if, the new one has a
// strictly greater version - an out-of-order (stale) map is discarded, which
// keeps concurrent refreshes idempotent. Returns true when applied.
func (c *Client) ApplySmap(smap *meta.Smap) bool {
	if smap == nil {
		return false
	}
	for {
		cur := c.smap.Load()
		if cur != nil && smap.Version <= cur.Version {
			return false
		}
		if c.smap.CompareAndSwap(cur, smap) {
			return true
		}
	}
}

// controlURL resolves the control-plane destination: the primary proxy from
// the held Smap, or the configured endpoint when no map was fetched yet.
func (c *Client) controlURL() string {
	if smap := c.Smap(); smap != nil && smap.Primary != nil && smap.Primary.URL() != "" {
		return strings.TrimSuffix(smap.Primary.URL(), "/")
	}
	return c.url
}

// targetURL resolves a destination pinned to the given target.
func (c *Client) targetURL(tid string) (string, error) {
	smap := c.Smap()
	if smap == nil {
		return "", cmn.NewErrInvalidArgument("cannot pin %q: no cluster map (refresh first)", tid)
	}
	tsi := smap.GetTarget(tid)
	if tsi == nil {
		return "", cmn.NewErrNodeNotFound(meta.Tname(tid), smap.StringEx())
	}
	return strings.TrimSuffix(tsi.URL(), "/"), nil
}

func (c *Client) reqParams(method, destURL, path string, query url.Values) *ReqParams {
	reqParams := AllocRp()
	reqParams.BaseParams = BaseParams{
		Client: c.client,
		URL:    destURL,
		Method: method,
		Token:  c.token,
	}
	reqParams.Path = path
	reqParams.Query = query
	return reqParams
}
