package utils

import (
	"regexp"
	"testing"
)

func TestGenerateID(t *testing.T) {
	hexID := regexp.MustCompile(`^[0-9a-f]{12}$`)
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		id, err := GenerateID()
		if err != nil {
			t.Fatalf("GenerateID() error = %v", err)
		}
		if !hexID.MatchString(id) {
			t.Fatalf("GenerateID() = %q, want 12 lowercase hex characters", id)
		}
		if seen[id] {
			t.Fatalf("GenerateID() returned duplicate %q", id)
		}
		seen[id] = true
	}
}
