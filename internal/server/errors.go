// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import "fmt"

// UnknownToolError rejects a call naming a tool outside the catalog.
// It surfaces to the host as a call failure, never as content.
type UnknownToolError struct {
	Name string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("unknown tool: %s", e.Name)
}

// MissingArgumentError rejects a call whose argument bag lacks a
// required key (or carries it empty or with the wrong type). Like
// UnknownToolError it is an argument-shape failure caught before any
// external call is made.
type MissingArgumentError struct {
	Argument string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("missing required argument: %s", e.Argument)
}
