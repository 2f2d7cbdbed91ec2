// Package api provides AIStore-compatible cluster API over HTTP(S)
/*
 * Copyright (c) 2018-2025, NVIDIA CORPORATION. All rights reserved.
 */
package api_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/NVIDIA/aisclient/api"
	"github.com/NVIDIA/aisclient/api/apc"
	"github.com/NVIDIA/aisclient/cmn"
	"github.com/NVIDIA/aisclient/cmn/cos"
	"github.com/NVIDIA/aisclient/meta"
	jsoniter "github.com/json-iterator/go"
	"github.com/tinylib/msgp/msgp"
)

// fakeCluster stands in for a proxy (or target) endpoint: it serves the
// object data plane, the bucket-level action endpoint, and `what=smap`.
type fakeCluster struct {
	t   *testing.T
	srv *httptest.Server

	mu      sync.Mutex
	objects map[string][]byte // "bucket/object" => payload
	smap    *meta.Smap

	reqCount  atomic.Int64
	lastQuery url.Values
	lastBody  []byte

	corruptCksum bool
	smapMsgPack  bool // serve the cluster map msgpack-encoded instead of JSON
	promoteFail  struct {
		status int
		msg    string
	}
}

func newFakeCluster(t *testing.T) *fakeCluster {
	f := &fakeCluster{t: t, objects: make(map[string][]byte)}
	f.srv = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeCluster) put(bucket, object string, data []byte) {
	f.mu.Lock()
	f.objects[bucket+"/"+object] = data
	f.mu.Unlock()
}

func (f *fakeCluster) handle(w http.ResponseWriter, r *http.Request) {
	f.reqCount.Add(1)
	f.mu.Lock()
	f.lastQuery = r.URL.Query()
	f.mu.Unlock()

	parts := strings.Split(strings.TrimPrefix(r.URL.Path, "/"), "/")
	if len(parts) < 2 || parts[0] != apc.Version {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	switch parts[1] {
	case apc.Daemon:
		if r.URL.Query().Get(apc.QparamWhat) == apc.WhatSmap {
			f.mu.Lock()
			smap := f.smap
			f.mu.Unlock()
			if f.smapMsgPack {
				w.Header().Set(cos.HdrContentType, cos.ContentMsgPack)
				mw := msgp.NewWriter(w)
				if err := smap.EncodeMsg(mw); err == nil {
					mw.Flush()
				}
				return
			}
			w.Header().Set(cos.HdrContentType, cos.ContentJSON)
			body, _ := jsoniter.Marshal(smap)
			w.Write(body)
			return
		}
		http.Error(w, "unknown what", http.StatusBadRequest)
	case apc.Objects:
		f.handleObjects(w, r, parts)
	default:
		http.Error(w, "not handled", http.StatusNotFound)
	}
}

func (f *fakeCluster) handleObjects(w http.ResponseWriter, r *http.Request, parts []string) {
	bucket := parts[2]
	if len(parts) == 3 {
		// bucket-level action endpoint (promote et al.)
		body, _ := io.ReadAll(r.Body)
		f.mu.Lock()
		f.lastBody = body
		fail := f.promoteFail
		f.mu.Unlock()
		if fail.status != 0 {
			w.WriteHeader(fail.status)
			w.Write([]byte(`{"message":` + strconv.Quote(fail.msg) + `,"status":` + strconv.Itoa(fail.status) + `}`))
			return
		}
		w.Header().Set(apc.HdrObjVersion, "1")
		w.WriteHeader(http.StatusOK)
		return
	}
	object := strings.Join(parts[3:], "/")
	key := bucket + "/" + object
	f.mu.Lock()
	data, ok := f.objects[key]
	f.mu.Unlock()

	switch r.Method {
	case http.MethodHead:
		if !ok {
			w.Header().Set(apc.HdrError, "object "+key+" does not exist")
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set(cos.HdrContentLength, strconv.Itoa(len(data)))
		w.Header().Set(apc.HdrObjVersion, "1")
		f.setCksumHeaders(w, data)
		w.WriteHeader(http.StatusOK)
	case http.MethodGet:
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"message":"object ` + key + ` does not exist","status":404}`))
			return
		}
		w.Header().Set(cos.HdrContentLength, strconv.Itoa(len(data)))
		w.Header().Set(apc.HdrObjVersion, "1")
		f.setCksumHeaders(w, data)
		w.WriteHeader(http.StatusOK)
		w.Write(data)
	case http.MethodPut:
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		f.put(bucket, object, body)
		w.Header().Set(apc.HdrObjVersion, "1")
		w.WriteHeader(http.StatusOK)
	case http.MethodDelete:
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"message":"object ` + key + ` does not exist","status":404}`))
			return
		}
		f.mu.Lock()
		delete(f.objects, key)
		f.mu.Unlock()
		w.WriteHeader(http.StatusOK)
	default:
		http.Error(w, "not handled", http.StatusMethodNotAllowed)
	}
}

func (f *fakeCluster) setCksumHeaders(w http.ResponseWriter, data []byte) {
	ck, _ := cos.NewCksumHash(cos.ChecksumCesXxh)
	ck.H.Write(data)
	ck.Finalize()
	value := ck.Value()
	if f.corruptCksum {
		value = "badbadbadbadbad0"
	}
	w.Header().Set(apc.HdrObjCksumType, cos.ChecksumCesXxh)
	w.Header().Set(apc.HdrObjCksumVal, value)
}

func newTestClient(f *fakeCluster) *api.Client {
	httpClient := cmn.NewClient(cmn.TransportArgs{Timeout: 10 * time.Second})
	return api.New(httpClient, f.srv.URL, "")
}

func testBck() cmn.Bck { return cmn.Bck{Name: "bck", Provider: apc.AIS} }
