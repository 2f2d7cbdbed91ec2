// Package apc: API messages and constants
/*
 * Copyright (c) 2018-2025, NVIDIA CORPORATION. All rights reserved.
 */
package apc

// ActMsg.Action
const (
	ActPromote = "promote"
)

// ActMsg is a JSON-formatted control message sent to the bucket-level
// action endpoint; Value remains action-specific.
type ActMsg struct {
	Action string `json:"action"` // ActPromote, et al.
	Name   string `json:"name"`   // action-specific name (e.g., source pathname to promote)
	Value  any    `json:"value,omitempty"`
}

func (msg *ActMsg) String() string {
	s := "aismsg-" + msg.Action
	if msg.Name != "" {
		s += "[" + msg.Name + "]"
	}
	return s
}
