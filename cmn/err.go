// Package cmn provides common constants, types, and utilities for AIS clients
/*
 * Copyright (c) 2018-2025, NVIDIA CORPORATION. All rights reserved.
 */
package cmn

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/NVIDIA/aisclient/cmn/cos"
)

// The errors that api calls may return. Everything is returned to the caller;
// nothing is retried or logged-and-ignored at this layer - whether an
// operation is idempotent enough to retry is the caller's decision.

type (
	// ErrHTTP: any non-2xx response that is not otherwise specialized below;
	// carries the status code and the server-provided message verbatim.
	ErrHTTP struct {
		Message string `json:"message"`
		Method  string `json:"method"`
		URLPath string `json:"url_path"`
		Status  int    `json:"status"`
	}

	// ErrNotFound: server responded 404 to head/get/delete -
	// the object (or bucket) does not exist.
	ErrNotFound struct {
		Method  string
		URLPath string
	}

	// ErrInvalidArgument: mutually exclusive or missing required inputs,
	// detected before any network call.
	ErrInvalidArgument struct {
		what string
	}

	// ErrNodeNotFound: the given node ID is not a member of the current
	// cluster map (e.g., a pinned promote target).
	ErrNodeNotFound struct {
		Name string // rendered node name, p[...] or t[...]
		Smap string // rendered map the lookup ran against
	}

	// ErrRemotePathNotFound: promote source path does not resolve on the
	// cluster side (derived from the server's error payload - the path is
	// resolved by the target, not the client).
	ErrRemotePathNotFound struct {
		Path    string
		Message string
	}

	// ErrTransport: the request failed below HTTP - the three kinds have
	// different safe-retry implications and must not be collapsed.
	ErrTransport struct {
		Err  error
		Kind string
	}

	// ErrInvalidCksum: streamed payload does not match the checksum
	// the cluster returned in the response headers.
	ErrInvalidCksum struct {
		Expected *cos.Cksum
		Computed *cos.Cksum
	}
)

// ErrTransport.Kind
const (
	TransportRefused = "connection-refused" // request never reached the server
	TransportTimeout = "timeout"            // timed out waiting for the response
	TransportBroken  = "connection-broken"  // connection dropped mid-flight; outcome unknown
)

/////////////
// ErrHTTP //
/////////////

func NewErrHTTP(status int, msg, method, urlPath string) *ErrHTTP {
	return &ErrHTTP{Status: status, Message: msg, Method: method, URLPath: urlPath}
}

func (e *ErrHTTP) Error() string {
	if e.Method == "" && e.URLPath == "" {
		return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
	}
	return fmt.Sprintf("%s (%s %s, status %d)", e.Message, e.Method, e.URLPath, e.Status)
}

func Err2HTTPErr(err error) *ErrHTTP {
	var httpErr *ErrHTTP
	if errors.As(err, &httpErr) {
		return httpErr
	}
	return nil
}

func IsStatusNotFound(err error) bool {
	if IsErrNotFound(err) {
		return true
	}
	httpErr := Err2HTTPErr(err)
	return httpErr != nil && httpErr.Status == http.StatusNotFound
}

func IsStatusServiceUnavailable(err error) bool {
	httpErr := Err2HTTPErr(err)
	return httpErr != nil && httpErr.Status == http.StatusServiceUnavailable
}

/////////////////
// ErrNotFound //
/////////////////

func NewErrNotFound(method, urlPath string) *ErrNotFound {
	return &ErrNotFound{Method: method, URLPath: urlPath}
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s %s: does not exist", e.Method, e.URLPath)
}

func IsErrNotFound(err error) bool {
	var notFound *ErrNotFound
	return errors.As(err, &notFound)
}

////////////////////////
// ErrInvalidArgument //
////////////////////////

func NewErrInvalidArgument(format string, a ...any) *ErrInvalidArgument {
	return &ErrInvalidArgument{what: fmt.Sprintf(format, a...)}
}

func (e *ErrInvalidArgument) Error() string { return "invalid argument: " + e.what }

func IsErrInvalidArgument(err error) bool {
	var inval *ErrInvalidArgument
	return errors.As(err, &inval)
}

/////////////////////
// ErrNodeNotFound //
/////////////////////

func NewErrNodeNotFound(name, smap string) *ErrNodeNotFound {
	return &ErrNodeNotFound{Name: name, Smap: smap}
}

func (e *ErrNodeNotFound) Error() string {
	return fmt.Sprintf("node %s not found in %s", e.Name, e.Smap)
}

func IsErrNodeNotFound(err error) bool {
	var nnf *ErrNodeNotFound
	return errors.As(err, &nnf)
}

///////////////////////////
// ErrRemotePathNotFound //
///////////////////////////

func NewErrRemotePathNotFound(path, message string) *ErrRemotePathNotFound {
	return &ErrRemotePathNotFound{Path: path, Message: message}
}

func (e *ErrRemotePathNotFound) Error() string {
	return fmt.Sprintf("remote path %q not found on cluster storage: %s", e.Path, e.Message)
}

func IsErrRemotePathNotFound(err error) bool {
	var rpnf *ErrRemotePathNotFound
	return errors.As(err, &rpnf)
}

// promote-specific: the server reports an unresolvable source pathname
// in the error text (there is no client-side stat)
func isRemotePathMsg(msg string) bool {
	return strings.Contains(msg, "does not exist") || strings.Contains(msg, "no such file")
}

// Promote2RemotePathErr specializes a promote failure when the server's
// message indicates an unresolvable source path; otherwise returns err as is.
// The message must reference the path itself - a 404 about some other entity
// (e.g., the destination bucket) passes through unchanged.
func Promote2RemotePathErr(err error, srcPath string) error {
	httpErr := Err2HTTPErr(err)
	if httpErr == nil || !strings.Contains(httpErr.Message, srcPath) {
		return err
	}
	if httpErr.Status == http.StatusNotFound || isRemotePathMsg(httpErr.Message) {
		return NewErrRemotePathNotFound(srcPath, httpErr.Message)
	}
	return err
}

//////////////////
// ErrTransport //
//////////////////

// NewErrTransport classifies a network-level failure:
// - refused/DNS: the request definitely never reached the server
// - timeout: gave up waiting
// - broken: the server may have processed an unknown amount of work
func NewErrTransport(err error) *ErrTransport {
	kind := TransportBroken
	switch {
	case cos.IsErrTimeout(err):
		kind = TransportTimeout
	case cos.IsErrConnectionRefused(err) || cos.IsErrDNSLookup(err):
		kind = TransportRefused
	}
	return &ErrTransport{Err: err, Kind: kind}
}

func (e *ErrTransport) Error() string {
	return fmt.Sprintf("transport failure (%s): %v", e.Kind, e.Err)
}

func (e *ErrTransport) Unwrap() error { return e.Err }

func IsErrTransport(err error, kind string) bool {
	var terr *ErrTransport
	return errors.As(err, &terr) && terr.Kind == kind
}

/////////////////////
// ErrInvalidCksum //
/////////////////////

func NewErrInvalidCksum(expected, computed *cos.Cksum) *ErrInvalidCksum {
	return &ErrInvalidCksum{Expected: expected, Computed: computed}
}

func (e *ErrInvalidCksum) Error() string {
	return fmt.Sprintf("checksum mismatch: expected %s, computed %s", e.Expected, e.Computed)
}
