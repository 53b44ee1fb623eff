package idgen

import (
	"regexp"
	"testing"
)

func TestGenerate(t *testing.T) {
	pattern := regexp.MustCompile(`^ck-[a-z0-9]{10}$`)
	for i := 0; i < 50; i++ {
		id, err := Generate()
		if err != nil {
			t.Fatalf("Generate() error on iteration %d: %v", i, err)
		}
		if !pattern.MatchString(id) {
			t.Fatalf("Generate() = %q, does not match %v", id, pattern)
		}
	}
}

func TestGenerate_Uniqueness(t *testing.T) {
	const count = 1000
	seen := make(map[string]struct{}, count)
	for i := 0; i < count; i++ {
		id, err := Generate()
		if err != nil {
			t.Fatalf("Generate() error on iteration %d: %v", i, err)
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate ID after %d generations: %q", i, id)
		}
		seen[id] = struct{}{}
	}
}

func TestGenerateWithPrefix(t *testing.T) {
	id, err := GenerateWithPrefix("session-")
	if err != nil {
		t.Fatalf("GenerateWithPrefix() error: %v", err)
	}
	if want := len("session-") + Length; len(id) != want {
		t.Errorf("GenerateWithPrefix() length = %d, want %d (id=%q)", len(id), want, id)
	}
}
