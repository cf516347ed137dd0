//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Mutation edits the JSON form of a request DTO.
type Mutation func(map[string]any)

// DtoMap returns v as the generic map a client would send, after applying muts.
func DtoMap(t *testing.T, v any, muts ...Mutation) map[string]any {
	t.Helper()

	raw, err := json.Marshal(v)
	require.NoError(t, err, "encode dto")
	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m), "decode dto")

	for _, mut := range muts {
		mut(m)
	}
	return m
}

// Field sets key to value, or removes it when value is nil. Dotted keys such
// as "shipping.city" reach into nested objects, creating them as needed.
func Field(key string, value any) Mutation {
	return func(m map[string]any) {
		parts := strings.Split(key, ".")
		for _, p := range parts[:len(parts)-1] {
			next, ok := m[p].(map[string]any)
			if !ok {
				if value == nil {
					return
				}
				next = map[string]any{}
				m[p] = next
			}
			m = next
		}

		last := parts[len(parts)-1]
		if value == nil {
			delete(m, last)
			return
		}
		m[last] = value
	}
}
