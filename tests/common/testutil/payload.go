//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"maps"
	"testing"

	"github.com/stretchr/testify/require"
)

// Mutation edits a JSON payload in place.
type Mutation func(m map[string]any)

// DtoMap turns a request struct or map into its JSON object form and applies muts in order,
// so table tests can derive broken payloads from one valid body.
func DtoMap(t *testing.T, v any, muts ...func(map[string]any)) map[string]any {
	t.Helper()

	var m map[string]any
	if src, ok := v.(map[string]any); ok {
		m = maps.Clone(src)
	} else {
		raw, err := json.Marshal(v)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, &m))
	}
	for _, mut := range muts {
		mut(m)
	}
	return m
}

// Field sets key to value; a nil value removes the key.
func Field(key string, value any) Mutation {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}
