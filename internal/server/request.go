// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import "strings"

// Per-tool request structures. The untyped argument bag from the wire
// is validated exactly once, here, into a typed request; handlers never
// see the raw map.

type searchRequest struct {
	Query string
}

type fetchRequest struct {
	ID string
}

// stringArg pulls a non-empty string out of the argument bag.
func stringArg(args map[string]any, key string) (string, bool) {
	v, ok := args[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", false
	}
	return s, true
}

func parseSearchRequest(args map[string]any) (searchRequest, error) {
	query, ok := stringArg(args, "query")
	if !ok {
		return searchRequest{}, &MissingArgumentError{Argument: "query"}
	}
	return searchRequest{Query: query}, nil
}

func parseFetchRequest(args map[string]any) (fetchRequest, error) {
	id, ok := stringArg(args, "id")
	if !ok {
		return fetchRequest{}, &MissingArgumentError{Argument: "id"}
	}
	return fetchRequest{ID: id}, nil
}
