// Package api provides AIStore-compatible cluster API over HTTP(S)
/*
 * Copyright (c) 2018-2025, NVIDIA CORPORATION. All rights reserved.
 */
package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/NVIDIA/aisclient/api/apc"
	"github.com/NVIDIA/aisclient/cmn"
	"github.com/NVIDIA/aisclient/cmn/cos"
)

// ObjectStream is a handle over an in-flight GET response: a single-pass,
// pull-based sequence of fixed-size chunks. The stream exclusively owns the
// underlying connection until drained or closed; Close releases it either way.
type ObjectStream struct {
	hdr    http.Header
	body   io.ReadCloser
	sink   io.Writer
	cksum  *cos.CksumHash
	expect string // checksum value per response headers
	buf    []byte
	err    error
	done   bool
	closed bool
}

func newObjectStream(resp *http.Response, args *GetArgs) *ObjectStream {
	s := &ObjectStream{
		hdr:  resp.Header.Clone(), // captured before any body read
		body: resp.Body,
		sink: args.Writer,
		buf:  make([]byte, cos.NonZero(args.ChunkSize, DefaultChunkSize)),
	}
	if args.Validate {
		ty := s.hdr.Get(apc.HdrObjCksumType)
		s.expect = s.hdr.Get(apc.HdrObjCksumVal)
		if s.expect != "" && cos.SupportedChecksum(ty) && ty != cos.ChecksumNone {
			s.cksum, _ = cos.NewCksumHash(ty)
		}
	}
	return s
}

// Header returns the response header snapshot; available whether or not
// the body is ever read.
func (s *ObjectStream) Header() http.Header { return s.hdr }

// Next yields the next chunk: exactly chunk-size bytes except possibly the
// final chunk. Each chunk is written to the sink (when attached) before it is
// returned, so the sink and the yielded sequence never diverge. Returns
// io.EOF when exhausted - and keeps returning it (single-pass). The returned
// slice is valid until the following Next call.
func (s *ObjectStream) Next() ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.done {
		if verr := s.verify(); verr != nil {
			s.err = verr
			return nil, verr
		}
		return nil, io.EOF
	}
	n, err := io.ReadFull(s.body, s.buf)
	if n > 0 {
		if s.cksum != nil {
			s.cksum.H.Write(s.buf[:n])
		}
		if s.sink != nil {
			if _, werr := s.sink.Write(s.buf[:n]); werr != nil {
				s.err = werr
				return nil, werr
			}
		}
	}
	switch {
	case err == nil:
		return s.buf[:n], nil
	case err == io.ErrUnexpectedEOF:
		// final, partial chunk; exhaustion is reported by the next call
		s.done = true
		return s.buf[:n], nil
	case errors.Is(err, io.EOF):
		s.done = true
		if verr := s.verify(); verr != nil {
			s.err = verr
			return nil, verr
		}
		return nil, io.EOF
	default:
		// connection dropped mid-stream; outcome unknown
		s.err = cmn.NewErrTransport(err)
		return nil, s.err
	}
}

func (s *ObjectStream) verify() error {
	if s.cksum == nil {
		return nil
	}
	s.cksum.Finalize()
	ck := s.cksum
	s.cksum = nil
	if ck.Value() != s.expect {
		return cmn.NewErrInvalidCksum(cos.NewCksum(ck.Type(), s.expect), &ck.Cksum)
	}
	return nil
}

// ReadAll drains the remainder of the stream into memory and closes it.
func (s *ObjectStream) ReadAll() ([]byte, error) {
	var all []byte
	for {
		chunk, err := s.Next()
		if err != nil {
			cerr := s.Close()
			if err == io.EOF {
				return all, cerr
			}
			return all, err
		}
		all = append(all, chunk...)
	}
}

// Close releases the underlying connection whether or not the body was
// drained; abandoning iteration early must not leak the connection.
func (s *ObjectStream) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if s.done {
		cos.DrainReader(s.body) // residual trailers, if any - keeps the conn reusable
	}
	return s.body.Close()
}
