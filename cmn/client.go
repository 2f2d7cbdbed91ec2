// Package cmn provides common constants, types, and utilities for AIS clients
/*
 * Copyright (c) 2018-2025, NVIDIA CORPORATION. All rights reserved.
 */
package cmn

import (
	"crypto/tls"
	"net"
	"net/http"
	"time"

	"github.com/NVIDIA/aisclient/cmn/cos"
)

const (
	DfltDialupTimeout = 10 * time.Second
	DfltKeepaliveTCP  = 30 * time.Second
)

// [NOTE]
// net/http.DefaultTransport has the following defaults:
//
// - MaxIdleConns:          100,
// - MaxIdleConnsPerHost :  2 (via DefaultMaxIdleConnsPerHost)
// - IdleConnTimeout:       90 * time.Second,
// - WriteBufferSize:       4KB
// - ReadBufferSize:        4KB
//
// Following are the defaults we use instead:
const (
	DefaultMaxIdleConns        = 0  // unlimited (in re: `http.errTooManyIdle`)
	DefaultMaxIdleConnsPerHost = 32 // (http.errTooManyIdleHost)
	DefaultIdleConnTimeout     = 6 * time.Second
	DefaultWriteBufferSize     = 64 * cos.KiB
	DefaultReadBufferSize      = 64 * cos.KiB
)

// TransportArgs: assorted http(s) client options.
// Timeout bounds the entire exchange (connection + response wait) of every
// call made through the resulting client; DialTimeout bounds connection
// establishment only. Both surface as distinct transport-error kinds.
type TransportArgs struct {
	DialTimeout      time.Duration
	Timeout          time.Duration
	IdleConnTimeout  time.Duration
	IdleConnsPerHost int
	MaxIdleConns     int
	WriteBufferSize  int
	ReadBufferSize   int
	UseHTTPProxyEnv  bool
}

// {TransportArgs + defaults} => http.Transport for a variety of ais clients
func NewTransport(cargs TransportArgs) *http.Transport {
	var (
		defaultTransport = http.DefaultTransport.(*http.Transport)
		dialTimeout      = cos.NonZero(cargs.DialTimeout, DfltDialupTimeout)
	)
	dialer := &net.Dialer{
		Timeout:   dialTimeout,
		KeepAlive: DfltKeepaliveTCP,
	}
	transport := &http.Transport{
		DialContext:           dialer.DialContext,
		TLSHandshakeTimeout:   defaultTransport.TLSHandshakeTimeout,
		ExpectContinueTimeout: defaultTransport.ExpectContinueTimeout,
		DisableCompression:    true,
	}
	transport.IdleConnTimeout = cos.NonZero(cargs.IdleConnTimeout, DefaultIdleConnTimeout)
	transport.MaxIdleConnsPerHost = cos.NonZero(cargs.IdleConnsPerHost, DefaultMaxIdleConnsPerHost)
	transport.MaxIdleConns = cos.NonZero(cargs.MaxIdleConns, DefaultMaxIdleConns)
	transport.WriteBufferSize = cos.NonZero(cargs.WriteBufferSize, DefaultWriteBufferSize)
	transport.ReadBufferSize = cos.NonZero(cargs.ReadBufferSize, DefaultReadBufferSize)
	if cargs.UseHTTPProxyEnv {
		transport.Proxy = defaultTransport.Proxy
	}
	return transport
}

func NewClient(cargs TransportArgs) *http.Client {
	return &http.Client{
		Transport: NewTransport(cargs),
		Timeout:   cargs.Timeout,
	}
}

func NewClientTLS(cargs TransportArgs, skipVerify bool) *http.Client {
	transport := NewTransport(cargs)
	transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: skipVerify}
	return &http.Client{
		Transport: transport,
		Timeout:   cargs.Timeout,
	}
}
