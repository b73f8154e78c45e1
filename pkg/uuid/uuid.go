// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package uuid generates identifiers for objects that exist only on this side of
the wire: fields held by an unsaved content-type draft and per-invocation
request IDs.

Version 7 values are used so drafts and log lines sort by creation time.
*/
package uuid

import "github.com/google/uuid"

// # Generators

// New generates a new UUIDv7 string.
func New() string {
	id, err := uuid.NewV7()

	// entropy failure is an unrecoverable system-level error
	if err != nil {
		panic("uuid: failed to generate UUID: " + err.Error())
	}

	return id.String()
}

// Local generates an identifier for a draft object, prefixed so it can never
// be mistaken for a backend ID.
func Local() string {
	return LocalPrefix + New()
}

// LocalPrefix marks identifiers minted by [Local].
const LocalPrefix = "local-"
