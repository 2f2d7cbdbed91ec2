// Package meta: cluster-level metadata
/*
 * Copyright (c) 2018-2025, NVIDIA CORPORATION. All rights reserved.
 */
package meta

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/NVIDIA/aisclient/api/apc"
	"github.com/NVIDIA/aisclient/cmn/cos"
	"github.com/OneOfOne/xxhash"
)

//go:generate msgp -tests=false -marshal=false

type (
	// Snode's networking info
	NetInfo struct {
		Hostname string `json:"node_ip_addr"`
		Port     string `json:"daemon_port"`
		URL      string `json:"direct_url"`
	}

	// Snode - a node (gateway or target) in a cluster
	Snode struct {
		PubNet   NetInfo `json:"public_net"`
		DaeType  string  `json:"daemon_type"` // enum { apc.Proxy, apc.Target }
		DaeID    string  `json:"daemon_id"`
		idDigest uint64
	}

	NodeMap map[string]*Snode // map of Snodes indexed by node ID (Pmap & Tmap below)

	// Cluster map (aka Smap) is a versioned, immutable-per-version snapshot
	// of the cluster's topology. Smap versioning is monotonic and incremental.
	// A client session must never replace a held Smap with a lower-versioned one.
	Smap struct {
		Tmap    NodeMap `json:"tmap"` // [tid => Snode]
		Pmap    NodeMap `json:"pmap"` // [pid => Snode]
		Primary *Snode  `json:"proxy_si"`
		Version int64   `json:"version"`
	}
)

///////////
// Snode //
///////////

func NewSnode(id, daeType string, publicNet NetInfo) (snode *Snode) {
	snode = &Snode{PubNet: publicNet, DaeID: id, DaeType: daeType}
	snode.setDigest()
	return
}

func (d *Snode) ID() string   { return d.DaeID }
func (d *Snode) Type() string { return d.DaeType }

func (d *Snode) IsProxy() bool  { return d.DaeType == apc.Proxy }
func (d *Snode) IsTarget() bool { return d.DaeType == apc.Target }

func (d *Snode) Digest() uint64 {
	d.setDigest()
	return d.idDigest
}

func (d *Snode) setDigest() {
	if d.idDigest == 0 {
		d.idDigest = xxhash.Checksum64S(cos.UnsafeB(d.ID()), cos.MLCG32)
	}
}

const (
	PnamePrefix = "p["
	TnamePrefix = "t["
)

func Pname(pid string) string { return PnamePrefix + pid + "]" }
func Tname(tid string) string { return TnamePrefix + tid + "]" }

func (d *Snode) String() string {
	if d.IsProxy() {
		return Pname(d.DaeID)
	}
	return Tname(d.DaeID)
}

func (d *Snode) URL() string { return d.PubNet.URL }

func (d *Snode) Equals(o *Snode) bool {
	if d == nil || o == nil {
		return false
	}
	return d.ID() == o.ID() && d.DaeType == o.DaeType && d.PubNet == o.PubNet
}

func (d *Snode) Validate() error {
	if d == nil {
		return errors.New("invalid Snode: nil")
	}
	if d.ID() == "" {
		return errors.New("invalid Snode: missing node ID")
	}
	if d.DaeType != apc.Proxy && d.DaeType != apc.Target {
		return fmt.Errorf("invalid Snode type %q", d.DaeType)
	}
	return nil
}

//////////
// Smap //
//////////

func (m *Smap) String() string {
	if m == nil {
		return "Smap <nil>"
	}
	return "Smap v" + strconv.FormatInt(m.Version, 10)
}

func (m *Smap) StringEx() string {
	if m == nil {
		return "Smap <nil>"
	}
	if m.Primary == nil {
		return fmt.Sprintf("Smap v%d[nil]", m.Version)
	}
	return fmt.Sprintf("Smap v%d[%s, t=%d, p=%d]", m.Version,
		m.Primary.String(), m.CountTargets(), m.CountProxies())
}

func (m *Smap) CountTargets() int { return len(m.Tmap) }
func (m *Smap) CountProxies() int { return len(m.Pmap) }
func (m *Smap) Count() int        { return len(m.Pmap) + len(m.Tmap) }

func (m *Smap) GetProxy(pid string) *Snode {
	psi, ok := m.Pmap[pid]
	if !ok {
		return nil
	}
	return psi
}

func (m *Smap) GetTarget(tid string) *Snode {
	tsi, ok := m.Tmap[tid]
	if !ok {
		return nil
	}
	return tsi
}

func (m *Smap) GetNode(id string) *Snode {
	if node := m.GetTarget(id); node != nil {
		return node
	}
	return m.GetProxy(id)
}

func (m *Smap) IsPrimary(si *Snode) bool {
	return m.Primary != nil && m.Primary.ID() == si.ID()
}

// a valid Smap has a non-empty Pmap whenever Primary is set,
// and the Primary must itself be a Pmap member
func (m *Smap) Validate() error {
	if m == nil {
		return errors.New("invalid Smap: nil")
	}
	if m.Primary == nil {
		return nil
	}
	if err := m.Primary.Validate(); err != nil {
		return fmt.Errorf("%s: invalid primary: %v", m, err)
	}
	if len(m.Pmap) == 0 {
		return fmt.Errorf("%s: primary %s is set but Pmap is empty", m, m.Primary)
	}
	if m.GetProxy(m.Primary.ID()) == nil {
		return fmt.Errorf("%s: primary %s is not a Pmap member", m, m.Primary)
	}
	return nil
}

// structural equality over all four attributes
func (m *Smap) Equals(other *Smap) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.Version != other.Version {
		return false
	}
	if (m.Primary == nil) != (other.Primary == nil) {
		return false
	}
	if m.Primary != nil && !m.Primary.Equals(other.Primary) {
		return false
	}
	return mapsEq(m.Tmap, other.Tmap) && mapsEq(m.Pmap, other.Pmap)
}

/////////////
// NodeMap //
/////////////

func (m NodeMap) Add(snode *Snode) { m[snode.DaeID] = snode }

func (m NodeMap) Contains(daeID string) (exists bool) {
	_, exists = m[daeID]
	return
}

func mapsEq(a, b NodeMap) bool {
	if len(a) != len(b) {
		return false
	}
	for id, anode := range a {
		if bnode, ok := b[id]; !ok {
			return false
		} else if !anode.Equals(bnode) {
			return false
		}
	}
	return true
}
