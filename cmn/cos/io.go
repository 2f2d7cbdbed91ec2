// Package cos provides common low-level types and utilities for all aisclient code
/*
 * Copyright (c) 2018-2025, NVIDIA CORPORATION. All rights reserved.
 */
package cos

import (
	"io"
)

// DrainReader reads and discards all the data from a reader
// (e.g., prior to closing an http response body so that the
// underlying connection can be reused).
func DrainReader(r io.Reader) {
	_, err := io.Copy(io.Discard, r)
	if err == nil || IsEOF(err) {
		return
	}
}

// CopyAndChecksum reads from `r`, writes to `w`, and simultaneously computes
// the checksum of the copied bytes (when cksumType != ChecksumNone).
func CopyAndChecksum(w io.Writer, r io.Reader, buf []byte, cksumType string) (n int64, cksum *CksumHash, err error) {
	if cksumType == ChecksumNone || cksumType == "" {
		n, err = io.CopyBuffer(w, r, buf)
		return n, nil, err
	}
	cksum, err = NewCksumHash(cksumType)
	if err != nil {
		return 0, nil, err
	}
	mw := io.MultiWriter(w, cksum.H)
	n, err = io.CopyBuffer(mw, r, buf)
	if err != nil {
		return n, nil, err
	}
	cksum.Finalize()
	return n, cksum, nil
}
