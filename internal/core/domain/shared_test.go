package domain

import "testing"

func TestValidateID(t *testing.T) {
	tests := []struct {
		name  string
		id    string
		valid bool
	}{
		{"valid 24-char hex", "aabbccddee112233aabbccdd", true},
		{"too short", "abc123", false},
		{"empty", "", false},
		{"too long", "aabbccddee112233aabbccdd00", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateID(tt.id); got != tt.valid {
				t.Errorf("ValidateID(%q) = %v, want %v", tt.id, got, tt.valid)
			}
		})
	}
}

func TestAmount(t *testing.T) {
	t.Run("from cents", func(t *testing.T) {
		if a := NewAmountFromCents(2999); int(a) != 2999 {
			t.Fatalf("expected 2999, got %d", a)
		}
	})

	t.Run("from value", func(t *testing.T) {
		if a := NewAmountFromValue(29); int(a) != 2900 {
			t.Fatalf("expected 2900, got %d", a)
		}
	})

	t.Run("add and multiply", func(t *testing.T) {
		a := NewAmountFromCents(100).Add(NewAmountFromCents(250))
		if int(a) != 350 {
			t.Fatalf("expected 350, got %d", a)
		}
		if m := NewAmountFromCents(150).Multiply(3); int(m) != 450 {
			t.Fatalf("expected 450, got %d", m)
		}
	})

	t.Run("to value", func(t *testing.T) {
		if v := NewAmountFromCents(2900).ToValue(); v != 29 {
			t.Fatalf("expected 29, got %d", v)
		}
	})
}
