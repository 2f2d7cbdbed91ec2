// Package apc: API messages and constants
/*
 * Copyright (c) 2018-2025, NVIDIA CORPORATION. All rights reserved.
 */
package apc

// PromoteArgs instructs a target to absorb a file or directory that is
// already present on cluster-accessible storage into the object namespace -
// no bytes flow through the client. Carried as ActMsg{Action: ActPromote}.Value.
type PromoteArgs struct {
	SourcePath string `json:"source_path"` // must be resolvable on the cluster side
	ObjName    string `json:"object_name"` // destination object name or prefix
	DaemonID   string `json:"target_id"`   // when non-empty, pins the operation to this target
	Recursive  bool   `json:"recursive"`   // recursively promote nested dirs
	// once successfully promoted:
	OverwriteDst bool `json:"overwrite_dest"`
	DeleteSrc    bool `json:"delete_source"` // remove source when (and after) successfully promoting
	// explicit request _not_ to treat the source as a potential file share
	// equally accessible by all targets
	SrcIsNotFshare bool `json:"src_not_file_share"`
}
