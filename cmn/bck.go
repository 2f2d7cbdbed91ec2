// Package cmn provides common constants, types, and utilities for AIS clients
/*
 * Copyright (c) 2018-2025, NVIDIA CORPORATION. All rights reserved.
 */
package cmn

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/NVIDIA/aisclient/api/apc"
)

type (
	// Ns (or Namespace) adds additional layer for scoping the data under
	// the same provider.
	Ns struct {
		// UUID of the remote cluster the namespace is stored on; empty for local.
		UUID string `json:"uuid,omitempty"`
		// Name of the namespace; empty for the global (default) namespace.
		Name string `json:"name,omitempty"`
	}

	Bck struct {
		Name     string `json:"name"`
		Provider string `json:"provider"`
		Ns       Ns     `json:"namespace,omitempty"`
	}
)

// global (default) namespace
var NsGlobal = Ns{}

////////
// Ns //
////////

func (n Ns) IsGlobal() bool { return n == NsGlobal }

// Uname is the on-the-wire representation: [uuid#]name
func (n Ns) Uname() string {
	if n.UUID == "" {
		return n.Name
	}
	return n.UUID + "#" + n.Name
}

func (n Ns) String() string {
	if n.IsGlobal() {
		return ""
	}
	return "@" + n.Uname()
}

/////////
// Bck //
/////////

func (b *Bck) String() string {
	if b.Provider == "" {
		return b.Name + b.Ns.String()
	}
	return fmt.Sprintf("%s://%s%s", b.Provider, b.Name, b.Ns.String())
}

func (b *Bck) Validate() error {
	if b.Name == "" {
		return errors.New("bucket name is missing")
	}
	if b.Provider != "" && !apc.IsProvider(b.Provider) {
		return fmt.Errorf("invalid backend provider %q", b.Provider)
	}
	return nil
}

// AddToQuery inserts the bucket-scoped query parameters; the api layer
// hands in its own (cloned) url.Values - caller-owned state is never mutated.
func (b *Bck) AddToQuery(query url.Values) url.Values {
	if b.Provider == "" && b.Ns.IsGlobal() {
		return query
	}
	if query == nil {
		query = make(url.Values, 2)
	}
	if b.Provider != "" {
		query.Set(apc.QparamProvider, b.Provider)
	}
	if !b.Ns.IsGlobal() {
		query.Set(apc.QparamNamespace, b.Ns.Uname())
	}
	return query
}
