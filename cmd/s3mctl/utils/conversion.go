// Package utils provides type-safe data conversion utilities for the s3mctl CLI.
//
// The provisioning API returns loosely specified JSON, so responses are
// decoded into map[string]any and fields are pulled out with these helpers.
// Each helper returns a zero value plus ok=false instead of panicking when a
// key is missing or has an unexpected type.
package utils

// GetString safely extracts a string value from any maps.
// Returns empty string if key doesn't exist or type assertion fails.
func GetString(m map[string]any, key string) string {
	if val, ok := m[key].(string); ok {
		return val
	}
	return ""
}

// GetFloat extracts a JSON number. ok is false when the key is missing or
// not a number.
func GetFloat(m map[string]any, key string) (float64, bool) {
	val, ok := m[key].(float64)
	return val, ok
}

// GetMap extracts a nested JSON object.
func GetMap(m map[string]any, key string) (map[string]any, bool) {
	val, ok := m[key].(map[string]any)
	return val, ok
}

// GetSlice extracts a JSON array.
func GetSlice(m map[string]any, key string) ([]any, bool) {
	val, ok := m[key].([]any)
	return val, ok
}
