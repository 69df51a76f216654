package utils

import "testing"

func TestGenerateResetCodeShape(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		code, err := GenerateResetCode()
		if err != nil {
			t.Fatalf("GenerateResetCode: %v", err)
		}
		if len(code) != 6 {
			t.Fatalf("expected 6 digits, got %q", code)
		}
		for _, r := range code {
			if r < '0' || r > '9' {
				t.Fatalf("non-digit character in code %q", code)
			}
		}
		seen[code] = true
	}

	// 200 draws over a million-value space should essentially never
	// collapse to a single value.
	if len(seen) < 2 {
		t.Fatal("generator returned the same code for every draw")
	}
}
