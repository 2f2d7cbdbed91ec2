// Package meta: cluster-level metadata
/*
 * Copyright (c) 2018-2025, NVIDIA CORPORATION. All rights reserved.
 */
package meta_test

import (
	"bytes"

	"github.com/NVIDIA/aisclient/api/apc"
	"github.com/NVIDIA/aisclient/meta"
	jsoniter "github.com/json-iterator/go"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/tinylib/msgp/msgp"
)

func snode(id, daeType, url string) *meta.Snode {
	return meta.NewSnode(id, daeType, meta.NetInfo{
		Hostname: "10.0.0.1",
		Port:     "8080",
		URL:      url,
	})
}

func smapWith(primaryID string, version int64) *meta.Smap {
	primary := snode(primaryID, apc.Proxy, "http://10.0.0.1:8080")
	return &meta.Smap{
		Pmap:    meta.NodeMap{primaryID: primary},
		Tmap:    meta.NodeMap{"t1": snode("t1", apc.Target, "http://10.0.0.2:8081")},
		Primary: primary,
		Version: version,
	}
}

var _ = Describe("Smap", func() {
	Describe("wire format", func() {
		It("should unmarshal the canonical representation", func() {
			payload := `{
				"tmap": {"t1": {"public_net": {"direct_url": "http://10.0.0.2:8081"}, "daemon_type": "target", "daemon_id": "t1"}},
				"pmap": {"p1": {"public_net": {"direct_url": "http://10.0.0.1:8080"}, "daemon_type": "proxy", "daemon_id": "p1"}},
				"proxy_si": {"public_net": {"direct_url": "http://10.0.0.1:8080"}, "daemon_type": "proxy", "daemon_id": "p1"},
				"version": 13
			}`
			var smap meta.Smap
			Expect(jsoniter.UnmarshalFromString(payload, &smap)).To(Succeed())
			Expect(smap.Version).To(Equal(int64(13)))
			Expect(smap.CountTargets()).To(Equal(1))
			Expect(smap.CountProxies()).To(Equal(1))
			Expect(smap.Primary).NotTo(BeNil())
			Expect(smap.Primary.ID()).To(Equal("p1"))
			Expect(smap.Validate()).To(Succeed())
		})

		It("should round-trip through msgpack", func() {
			orig := smapWith("p1", 21)
			var buf bytes.Buffer
			en := msgp.NewWriter(&buf)
			Expect(orig.EncodeMsg(en)).To(Succeed())
			Expect(en.Flush()).To(Succeed())

			var got meta.Smap
			Expect(got.DecodeMsg(msgp.NewReader(&buf))).To(Succeed())
			Expect(got.Equals(orig)).To(BeTrue())
			Expect(got.Primary.URL()).To(Equal(orig.Primary.URL()))
		})

		It("should treat absent fields as empty, not as an error", func() {
			var smap meta.Smap
			Expect(jsoniter.UnmarshalFromString(`{}`, &smap)).To(Succeed())
			Expect(smap.CountTargets()).To(BeZero())
			Expect(smap.CountProxies()).To(BeZero())
			Expect(smap.Primary).To(BeNil())
			Expect(smap.Version).To(BeZero())
			Expect(smap.Validate()).To(Succeed())
		})
	})

	Describe("Validate", func() {
		It("should reject a primary that is not a Pmap member", func() {
			smap := smapWith("p1", 1)
			smap.Primary = snode("p2", apc.Proxy, "http://10.0.0.9:8080")
			Expect(smap.Validate()).To(HaveOccurred())
		})

		It("should reject a set primary with an empty Pmap", func() {
			smap := smapWith("p1", 1)
			smap.Pmap = nil
			Expect(smap.Validate()).To(HaveOccurred())
		})
	})

	Describe("Equals", func() {
		It("should be structural over all four attributes", func() {
			a, b := smapWith("p1", 2), smapWith("p1", 2)
			Expect(a.Equals(b)).To(BeTrue())

			b.Version = 3
			Expect(a.Equals(b)).To(BeFalse())

			b = smapWith("p1", 2)
			b.Tmap.Add(snode("t2", apc.Target, "http://10.0.0.3:8081"))
			Expect(a.Equals(b)).To(BeFalse())
		})
	})

	Describe("lookup", func() {
		smap := smapWith("p1", 5)

		It("should resolve nodes by stable member identifier", func() {
			Expect(smap.GetTarget("t1")).NotTo(BeNil())
			Expect(smap.GetTarget("p1")).To(BeNil())
			Expect(smap.GetProxy("p1")).NotTo(BeNil())
			Expect(smap.GetNode("t1").IsTarget()).To(BeTrue())
			Expect(smap.GetNode("nope")).To(BeNil())
		})

		It("should recognize the primary", func() {
			Expect(smap.IsPrimary(smap.GetProxy("p1"))).To(BeTrue())
			Expect(smap.IsPrimary(smap.GetTarget("t1"))).To(BeFalse())
		})
	})

	Describe("Snode", func() {
		It("should compute a stable id digest", func() {
			a := snode("t1", apc.Target, "http://10.0.0.2:8081")
			b := snode("t1", apc.Target, "http://10.0.0.2:8081")
			Expect(a.Digest()).To(Equal(b.Digest()))
			Expect(a.Digest()).NotTo(BeZero())
		})

		It("should validate the node type", func() {
			bad := snode("x", "gateway", "http://10.0.0.2:8081")
			Expect(bad.Validate()).To(HaveOccurred())
			Expect(snode("t1", apc.Target, "").Validate()).To(Succeed())
		})
	})
})
