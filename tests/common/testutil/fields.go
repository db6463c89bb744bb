//go:build unit || e2e

package testutil

// Field returns a mutation that sets or, for a nil value, removes a key of a
// request map. Used to exercise binding validation one field at a time.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
		} else {
			m[key] = value
		}
	}
}
