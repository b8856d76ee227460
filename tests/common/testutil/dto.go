//go:build unit || e2e

// Package testutil turns request DTOs into JSON maps so tests can send payloads
// the typed structs cannot express: missing fields, wrong types, stray keys.
package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// Mutation edits a DTO map in place.
type Mutation func(map[string]any)

// DtoMap round-trips v through JSON and applies muts in order.
func DtoMap(t *testing.T, v any, muts ...Mutation) map[string]any {
	t.Helper()

	raw, err := json.Marshal(v)
	require.NoError(t, err, "marshal dto")
	m := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &m), "dto must encode as a JSON object")

	for _, mut := range muts {
		mut(m)
	}
	return m
}

// Field sets key to value. A nil value removes the key, which is how tests send a request without it.
func Field(key string, value any) Mutation {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}
