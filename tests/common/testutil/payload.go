//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// Mutation edits a request body before it is sent.
type Mutation func(body map[string]any)

func Set(key string, value any) Mutation {
	return func(body map[string]any) { body[key] = value }
}

func Without(key string) Mutation {
	return func(body map[string]any) { delete(body, key) }
}

// Payload renders a request DTO as the JSON object the handler will see, then applies muts in order.
func Payload(t *testing.T, dto any, muts ...Mutation) map[string]any {
	t.Helper()

	raw, err := json.Marshal(dto)
	require.NoError(t, err)

	body := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &body))

	for _, mut := range muts {
		mut(body)
	}
	return body
}
