// Package api provides AIStore-compatible cluster API over HTTP(S)
/*
 * Copyright (c) 2018-2025, NVIDIA CORPORATION. All rights reserved.
 */
package api

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"

	"github.com/NVIDIA/aisclient/api/apc"
	"github.com/NVIDIA/aisclient/cmn"
	"github.com/NVIDIA/aisclient/cmn/cos"
	jsoniter "github.com/json-iterator/go"
	"github.com/tinylib/msgp/msgp"
)

type (
	BaseParams struct {
		Client *http.Client
		URL    string
		Method string
		Token  string
	}

	// ReqParams is used in constructing client-side API requests.
	// Stores Query and Headers for providing arguments that are not used commonly in API requests.
	// There is no retrying at this level: many operations (promote, write)
	// are not safely idempotent, so retry policy belongs to the caller.
	ReqParams struct {
		BaseParams BaseParams
		Path       string
		Body       []byte
		BodyR      io.Reader // streaming alternative to Body (mutually exclusive)
		ContentLen int64     // BodyR size, when known
		Query      url.Values
		Header     http.Header

		// Determines if the response should be validated with the checksum
		Validate bool
	}

	wrappedResp struct {
		*http.Response
		n          int64  // number bytes read from `resp.Body`
		cksumValue string // checksum value of the response
	}
)

func SetAuthToken(r *http.Request, token string) {
	if token != "" {
		r.Header.Set(apc.HdrAuthorization, apc.AuthenticationTypeBearer+" "+token)
	}
}

// HTTPStatus returns HTTP status or (-1) for non-HTTP error.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	if httpErr := cmn.Err2HTTPErr(err); httpErr != nil {
		return httpErr.Status
	}
	return -1 // invalid
}

///////////////
// ReqParams //
///////////////

var (
	reqParamPool sync.Pool
	reqParams0   ReqParams
)

func AllocRp() *ReqParams {
	if v := reqParamPool.Get(); v != nil {
		return v.(*ReqParams)
	}
	return &ReqParams{}
}

func FreeRp(reqParams *ReqParams) {
	*reqParams = reqParams0
	reqParamPool.Put(reqParams)
}

// uses do() to make the request; if successful, checks, drains, and closes the response body
func (reqParams *ReqParams) DoHTTPRequest() error {
	resp, err := reqParams.do()
	if err != nil {
		return err
	}
	err = reqParams.checkResp(resp)
	cos.DrainReader(resp.Body)
	resp.Body.Close()
	return err
}

// uses do() to make the request; returns the response headers (and nothing else)
func (reqParams *ReqParams) doHeaders() (http.Header, error) {
	resp, err := reqParams.do()
	if err != nil {
		return nil, err
	}
	err = reqParams.checkResp(resp)
	cos.DrainReader(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, err
	}
	return resp.Header, nil
}

// uses doResp() to make the request and decode the response into `v`
func (reqParams *ReqParams) DoHTTPReqResp(v any) error {
	_, err := reqParams.doResp(v)
	return err
}

// doResp makes an http request via do(), decodes the `v` structure from the
// `resp.Body` (if provided), and returns the entire wrapped response.
func (reqParams *ReqParams) doResp(v any) (wrap *wrappedResp, err error) {
	var resp *http.Response
	resp, err = reqParams.do()
	if err != nil {
		return nil, err
	}
	wrap, err = reqParams.readResp(resp, v)
	resp.Body.Close()
	return wrap, err
}

// same as above except that the response is returned undrained, for
// subsequent streamed reading; the caller owns resp.Body
func (reqParams *ReqParams) doStream() (*http.Response, error) {
	resp, err := reqParams.do()
	if err != nil {
		return nil, err
	}
	if err := reqParams.checkResp(resp); err != nil {
		resp.Body.Close()
		return nil, err
	}
	return resp, nil
}

// makes the HTTP request and returns the response; transport-level failures
// are classified (refused | timeout | broken) - callers must be able to tell
// "definitely did not happen" from "outcome unknown"
func (reqParams *ReqParams) do() (*http.Response, error) {
	var reqBody io.Reader
	switch {
	case reqParams.Body != nil:
		reqBody = bytes.NewBuffer(reqParams.Body)
	case reqParams.BodyR != nil:
		reqBody = reqParams.BodyR
	}
	urlPath := reqParams.BaseParams.URL + reqParams.Path
	req, errR := http.NewRequest(reqParams.BaseParams.Method, urlPath, reqBody)
	if errR != nil {
		return nil, fmt.Errorf("failed to create http request: %w", errR)
	}
	if reqParams.BodyR != nil && reqParams.ContentLen > 0 {
		req.ContentLength = reqParams.ContentLen
	}
	reqParams.setRequestOptParams(req)
	SetAuthToken(req, reqParams.BaseParams.Token)

	resp, err := reqParams.BaseParams.Client.Do(req) //nolint:bodyclose // closed by a caller
	if err != nil {
		return nil, cmn.NewErrTransport(err)
	}
	return resp, nil
}

// setRequestOptParams given an existing HTTP Request and optional API parameters,
// sets the optional fields of the request if provided.
func (reqParams *ReqParams) setRequestOptParams(req *http.Request) {
	if len(reqParams.Query) != 0 {
		req.URL.RawQuery = reqParams.Query.Encode()
	}
	if reqParams.Header != nil {
		req.Header = reqParams.Header
	}
}

func (reqParams *ReqParams) readResp(resp *http.Response, v any) (*wrappedResp, error) {
	defer cos.DrainReader(resp.Body)

	if err := reqParams.checkResp(resp); err != nil {
		return nil, err
	}
	wresp := &wrappedResp{Response: resp}
	if v == nil {
		return wresp, nil
	}
	if w, ok := v.(io.Writer); ok {
		if !reqParams.Validate {
			n, err := io.Copy(w, resp.Body)
			if err != nil {
				return nil, cmn.NewErrTransport(err)
			}
			wresp.n = n
		} else {
			hdrCksumType := resp.Header.Get(apc.HdrObjCksumType)
			n, cksum, err := cos.CopyAndChecksum(w, resp.Body, nil, hdrCksumType)
			if err != nil {
				return nil, cmn.NewErrTransport(err)
			}
			wresp.n = n
			if cksum != nil {
				wresp.cksumValue = cksum.Value()
				hdrCksumValue := resp.Header.Get(apc.HdrObjCksumVal)
				if hdrCksumValue != "" && hdrCksumValue != cksum.Value() {
					expected := cos.NewCksum(hdrCksumType, hdrCksumValue)
					return nil, cmn.NewErrInvalidCksum(expected, &cksum.Cksum)
				}
			}
		}
		return wresp, nil
	}
	var err error
	switch t := v.(type) {
	case *string:
		// when the response is a string (e.g., UUID)
		var b []byte
		b, err = io.ReadAll(resp.Body)
		*t = string(b)
	default:
		if resp.StatusCode == http.StatusOK {
			if resp.Header.Get(cos.HdrContentType) == cos.ContentMsgPack {
				dec, ok := v.(msgp.Decodable)
				if !ok {
					return nil, fmt.Errorf("unexpected msgpack response (%T is not msgp.Decodable)", v)
				}
				r := msgp.NewReaderSize(resp.Body, 10*cos.KiB)
				err = dec.DecodeMsg(r)
			} else {
				err = jsoniter.NewDecoder(resp.Body).Decode(v)
			}
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read response, err: %w", err)
	}
	return wresp, nil
}

func (reqParams *ReqParams) checkResp(resp *http.Response) error {
	if resp.StatusCode < http.StatusBadRequest {
		return nil
	}
	method := reqParams.BaseParams.Method
	// 404 on read/head/delete means the object (or bucket) does not exist
	if resp.StatusCode == http.StatusNotFound &&
		(method == http.MethodGet || method == http.MethodHead || method == http.MethodDelete) {
		return cmn.NewErrNotFound(method, reqParams.Path)
	}
	if method == http.MethodHead {
		if msg := resp.Header.Get(apc.HdrError); msg != "" {
			return cmn.NewErrHTTP(resp.StatusCode, msg, method, reqParams.Path)
		}
	}
	var (
		httpErr *cmn.ErrHTTP
		msg, _  = io.ReadAll(resp.Body)
	)
	if method != http.MethodHead && resp.StatusCode != http.StatusServiceUnavailable {
		if jsonErr := jsoniter.Unmarshal(msg, &httpErr); jsonErr == nil && httpErr != nil && httpErr.Message != "" {
			httpErr.Method, httpErr.URLPath = method, reqParams.Path
			httpErr.Status = resp.StatusCode
			return httpErr
		}
	}
	strMsg := string(msg)
	if resp.StatusCode == http.StatusServiceUnavailable && strMsg == "" {
		strMsg = fmt.Sprintf("[%s]: starting up, please try again later...",
			http.StatusText(http.StatusServiceUnavailable))
	}
	// HEAD request does not return the body - create http error
	// 503 is also to be preserved
	return cmn.NewErrHTTP(resp.StatusCode, strMsg, method, reqParams.Path)
}
