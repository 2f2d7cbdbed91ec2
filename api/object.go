// Package api provides AIStore-compatible cluster API over HTTP(S)
/*
 * Copyright (c) 2018-2025, NVIDIA CORPORATION. All rights reserved.
 */
package api

import (
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"

	"github.com/NVIDIA/aisclient/api/apc"
	"github.com/NVIDIA/aisclient/cmn"
	"github.com/NVIDIA/aisclient/cmn/cos"
)

const DefaultChunkSize = 64 * cos.KiB

type (
	// GetArgs: per-call options for GetObject
	GetArgs struct {
		// extract the single named member when the object is an archive
		// (.tar, .tgz, .zip, ...); server-side - no client unpacking
		ArchPath string
		// apply the named ETL transform server-side before streaming back
		ETLName string
		// local sink: receives every chunk, in order, before it is yielded
		Writer io.Writer
		// extra query parameters; never mutated
		Query url.Values
		// chunk size for the returned stream (default DefaultChunkSize)
		ChunkSize int
		// verify the streamed payload against the response checksum headers
		Validate bool
	}

	// PutArgs: Path and Content are mutually exclusive; a Path is streamed
	// from the open file handle, Content is sent as is.
	PutArgs struct {
		Path    string
		Content []byte
	}

	// ObjectProps as parsed from response headers
	ObjectProps struct {
		Cksum   *cos.Cksum
		Version string
		Atime   string
		Size    int64
	}
)

// HeadObject returns the object's properties (headers only, no body);
// a 404 surfaces as not-found.
func HeadObject(c *Client, bck cmn.Bck, objName string) (http.Header, error) {
	if err := validateObj(bck, objName); err != nil {
		return nil, err
	}
	reqParams := c.reqParams(http.MethodHead, c.controlURL(), objPath(bck, objName), bckQuery(bck, nil))
	defer FreeRp(reqParams)
	return reqParams.doHeaders()
}

// GetObject opens a streamed read of the object (or of a single archived
// member, or of a transformed rendition - see GetArgs). Response headers are
// captured before any body is consumed; the body is exposed as a lazy,
// single-pass sequence of chunks that blocks per chunk as data arrives.
func GetObject(c *Client, bck cmn.Bck, objName string, args *GetArgs) (*ObjectStream, error) {
	if args == nil {
		args = &GetArgs{}
	}
	if err := validateObj(bck, objName); err != nil {
		return nil, err
	}
	if args.ChunkSize < 0 {
		return nil, cmn.NewErrInvalidArgument("chunk size must be non-negative (got %d)", args.ChunkSize)
	}
	q := bckQuery(bck, args.Query)
	q.Set(apc.QparamArchpath, args.ArchPath)
	if args.ETLName != "" {
		q.Set(apc.QparamETLName, args.ETLName)
	}
	reqParams := c.reqParams(http.MethodGet, c.controlURL(), objPath(bck, objName), q)
	defer FreeRp(reqParams)
	resp, err := reqParams.doStream()
	if err != nil {
		return nil, err
	}
	return newObjectStream(resp, args), nil
}

// PutObject writes Content (or the file at Path) as bck/objName and returns
// the resulting object-properties headers. Supplying both Path and Content
// is a caller error, detected before any network call.
func PutObject(c *Client, bck cmn.Bck, objName string, args *PutArgs) (http.Header, error) {
	if args == nil {
		args = &PutArgs{}
	}
	if args.Path != "" && args.Content != nil {
		return nil, cmn.NewErrInvalidArgument("PutObject: path and content are mutually exclusive")
	}
	if err := validateObj(bck, objName); err != nil {
		return nil, err
	}
	reqParams := c.reqParams(http.MethodPut, c.controlURL(), objPath(bck, objName), bckQuery(bck, nil))
	defer FreeRp(reqParams)
	if args.Path != "" {
		fh, err := os.Open(args.Path)
		if err != nil {
			return nil, err
		}
		defer fh.Close()
		fi, err := fh.Stat()
		if err != nil {
			return nil, err
		}
		reqParams.BodyR, reqParams.ContentLen = fh, fi.Size()
	} else {
		reqParams.Body = args.Content
	}
	return reqParams.doHeaders()
}

// DeleteObject removes bck/objName; a 404 surfaces as not-found.
func DeleteObject(c *Client, bck cmn.Bck, objName string) error {
	if err := validateObj(bck, objName); err != nil {
		return err
	}
	reqParams := c.reqParams(http.MethodDelete, c.controlURL(), objPath(bck, objName), bckQuery(bck, nil))
	defer FreeRp(reqParams)
	return reqParams.DoHTTPRequest()
}

// ParseObjectProps extracts object properties from HEAD/PUT response headers.
func ParseObjectProps(hdr http.Header) *ObjectProps {
	props := &ObjectProps{
		Version: hdr.Get(apc.HdrObjVersion),
		Atime:   hdr.Get(apc.HdrObjAtime),
	}
	if cl := hdr.Get(cos.HdrContentLength); cl != "" {
		props.Size, _ = strconv.ParseInt(cl, 10, 64)
	}
	if ty := hdr.Get(apc.HdrObjCksumType); ty != "" {
		props.Cksum = cos.NewCksum(ty, hdr.Get(apc.HdrObjCksumVal))
	}
	return props
}

func validateObj(bck cmn.Bck, objName string) error {
	if err := bck.Validate(); err != nil {
		return cmn.NewErrInvalidArgument("%v", err)
	}
	if objName == "" {
		return cmn.NewErrInvalidArgument("object name is missing")
	}
	return nil
}
