// Package api provides AIStore-compatible cluster API over HTTP(S)
/*
 * Copyright (c) 2018-2025, NVIDIA CORPORATION. All rights reserved.
 */
package api_test

import (
	"net/http"
	"testing"

	"github.com/NVIDIA/aisclient/api"
	"github.com/NVIDIA/aisclient/api/apc"
	"github.com/NVIDIA/aisclient/cmn"
	"github.com/NVIDIA/aisclient/meta"
	"github.com/NVIDIA/aisclient/tools/tassert"
)

func TestPromotePayloadShape(t *testing.T) {
	f := newFakeCluster(t)
	c := newTestClient(f)

	_, err := api.Promote(c, testBck(), &apc.PromoteArgs{
		SourcePath: "/data/x",
		ObjName:    "x",
	})
	tassert.CheckFatal(t, err)

	const expected = `{"action":"promote","name":"/data/x","value":` +
		`{"source_path":"/data/x","object_name":"x","target_id":"","recursive":false,` +
		`"overwrite_dest":false,"delete_source":false,"src_not_file_share":false}}`
	tassert.Fatalf(t, string(f.lastBody) == expected, "unexpected action body:\n%s\nexpected:\n%s",
		string(f.lastBody), expected)
}

func TestPromotePinnedTarget(t *testing.T) {
	var (
		proxy  = newFakeCluster(t)
		target = newFakeCluster(t)
	)
	c := newTestClient(proxy)
	smap := smapV(1, proxy.srv.URL)
	smap.Tmap = meta.NodeMap{"t1": meta.NewSnode("t1", apc.Target, meta.NetInfo{URL: target.srv.URL})}
	tassert.Fatal(t, c.ApplySmap(smap), "expected the map to apply")

	_, err := api.Promote(c, testBck(), &apc.PromoteArgs{
		SourcePath: "/data/x",
		ObjName:    "x",
		DaemonID:   "t1",
	})
	tassert.CheckFatal(t, err)

	// an explicitly pinned member bypasses proxy routing entirely
	tassert.Errorf(t, target.reqCount.Load() == 1, "expected the request on t[t1], counted %d", target.reqCount.Load())
	tassert.Errorf(t, proxy.reqCount.Load() == 0, "expected no request on the proxy, counted %d", proxy.reqCount.Load())

	_, err = api.Promote(c, testBck(), &apc.PromoteArgs{
		SourcePath: "/data/x",
		ObjName:    "x",
		DaemonID:   "t404",
	})
	tassert.Fatalf(t, cmn.IsErrNodeNotFound(err), "expected node-not-found for an unknown target, got %v", err)
}

func TestPromoteRemotePathNotFound(t *testing.T) {
	f := newFakeCluster(t)
	c := newTestClient(f)
	f.promoteFail.status = http.StatusNotFound
	f.promoteFail.msg = "lstat /data/nope: no such file or directory"

	_, err := api.Promote(c, testBck(), &apc.PromoteArgs{
		SourcePath: "/data/nope",
		ObjName:    "nope",
	})
	tassert.Fatalf(t, cmn.IsErrRemotePathNotFound(err), "expected remote-path-not-found, got %v", err)
}

func TestPromoteMissingBucket(t *testing.T) {
	f := newFakeCluster(t)
	c := newTestClient(f)
	f.promoteFail.status = http.StatusNotFound
	f.promoteFail.msg = `bucket "bck" does not exist`

	// a 404 about the destination bucket is not a source-path condition
	_, err := api.Promote(c, testBck(), &apc.PromoteArgs{
		SourcePath: "/data/x",
		ObjName:    "x",
	})
	tassert.Fatalf(t, !cmn.IsErrRemotePathNotFound(err), "bucket 404 must not map to remote-path-not-found, got %v", err)
	tassert.Fatalf(t, cmn.IsStatusNotFound(err), "expected a 404 api error, got %v", err)
}

func TestPromoteRequiredArgs(t *testing.T) {
	f := newFakeCluster(t)
	c := newTestClient(f)

	_, err := api.Promote(c, testBck(), &apc.PromoteArgs{ObjName: "x"})
	tassert.Fatalf(t, cmn.IsErrInvalidArgument(err), "expected invalid-argument without a source path, got %v", err)

	_, err = api.Promote(c, testBck(), &apc.PromoteArgs{SourcePath: "/data/x"})
	tassert.Fatalf(t, cmn.IsErrInvalidArgument(err), "expected invalid-argument without an object name, got %v", err)

	tassert.Fatalf(t, f.reqCount.Load() == 0, "expected zero network calls, counted %d", f.reqCount.Load())
}
