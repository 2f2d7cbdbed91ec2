// Package cos provides common low-level types and utilities for all aisclient code
/*
 * Copyright (c) 2018-2025, NVIDIA CORPORATION. All rights reserved.
 */
package cos

import (
	"encoding/hex"
	"fmt"
	"hash"

	onexxh "github.com/OneOfOne/xxhash"
	cesxxh "github.com/cespare/xxhash/v2"
)

// supported checksum types
const (
	ChecksumNone   = "none"
	ChecksumOneXxh = "xxhash"  // xxhash64 (OneOfOne)
	ChecksumCesXxh = "xxhash2" // xxhash64 (cespare, faster on amd64)
)

type (
	Cksum struct {
		ty    string
		value string
	}
	CksumHash struct {
		Cksum
		H hash.Hash
	}
)

func SupportedChecksum(ty string) bool {
	return ty == ChecksumNone || ty == ChecksumOneXxh || ty == ChecksumCesXxh
}

///////////
// Cksum //
///////////

func NewCksum(ty, value string) *Cksum { return &Cksum{ty: ty, value: value} }

func (ck *Cksum) Type() string  { return ck.ty }
func (ck *Cksum) Value() string { return ck.value }

func (ck *Cksum) IsEmpty() bool { return ck == nil || ck.ty == "" || ck.ty == ChecksumNone }

func (ck *Cksum) Equal(to *Cksum) bool {
	if ck.IsEmpty() || to.IsEmpty() {
		return false
	}
	return ck.ty == to.ty && ck.value == to.value
}

func (ck *Cksum) String() string {
	if ck.IsEmpty() {
		return "cksum <none>"
	}
	return ck.ty + "[" + ck.value + "]"
}

///////////////
// CksumHash //
///////////////

func NewCksumHash(ty string) (*CksumHash, error) {
	ck := &CksumHash{Cksum: Cksum{ty: ty}}
	switch ty {
	case ChecksumOneXxh:
		ck.H = onexxh.New64()
	case ChecksumCesXxh:
		ck.H = cesxxh.New()
	default:
		return nil, fmt.Errorf("invalid checksum type %q", ty)
	}
	return ck, nil
}

func (ck *CksumHash) Finalize() {
	ck.value = hex.EncodeToString(ck.H.Sum(nil))
}
