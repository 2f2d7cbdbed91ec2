// Package cos provides common low-level types and utilities for all aisclient code
/*
 * Copyright (c) 2018-2025, NVIDIA CORPORATION. All rights reserved.
 */
package cos

import (
	"context"
	"errors"
	"io"
	"net"
	"syscall"
)

// EOF (to accommodate unsized streaming)
func IsEOF(err error) bool {
	return err == io.ErrUnexpectedEOF || errors.Is(err, io.EOF)
}

func IsErrConnectionRefused(err error) (yes bool) { return errors.Is(err, syscall.ECONNREFUSED) }
func IsErrConnectionReset(err error) (yes bool)   { return errors.Is(err, syscall.ECONNRESET) }
func IsErrBrokenPipe(err error) (yes bool)        { return errors.Is(err, syscall.EPIPE) }

func IsErrDNSLookup(err error) bool {
	if _, ok := err.(*net.DNSError); ok {
		return true
	}
	var errDNS *net.DNSError
	return errors.As(err, &errDNS)
}

// context deadline or any net.Error that reports itself as such
func IsErrTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
