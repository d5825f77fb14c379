package mint

import "testing"

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want Money
		ok   bool
	}{
		{"4.50", M(4.50), true},
		{"$4.50", M(4.50), true},
		{"2,000.00", M(2000), true},
		{"$2,000.00", M(2000), true},
		{"-4.50", M(-4.50), true},
		{"0", M(0), true},
		{"", Money{}, false},
		{"four", Money{}, false},
	}
	for _, tt := range tests {
		got, err := ParseAmount(tt.in)
		if (err == nil) != tt.ok {
			t.Errorf("ParseAmount(%q) error = %v", tt.in, err)
			continue
		}
		if tt.ok && !got.Equal(tt.want) {
			t.Errorf("ParseAmount(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestMoneyString(t *testing.T) {
	tests := []struct {
		in   Money
		want string
	}{
		{M(4.5), "$4.50"},
		{M(2000), "$2,000.00"},
		{M(0), "$0.00"},
		{M(-12.345), "-$12.35"},
	}
	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("String(%s) = %q, want %q", tt.in.Cell(), got, tt.want)
		}
	}
}

func TestMoneyCell(t *testing.T) {
	if got := M(2000).Cell(); got != "2000.00" {
		t.Errorf("Cell = %q, want a plain machine value", got)
	}
}

func TestMoneyArithmetic(t *testing.T) {
	a, b := M(50), M(10)
	if got := a.Sub(b); !got.Equal(M(40)) {
		t.Errorf("50 - 10 = %s", got)
	}
	if got := b.Neg(); !got.IsNegative() || !got.Abs().Equal(b) {
		t.Errorf("Neg/Abs = %s", got)
	}
	if !a.GreaterThan(b) || !b.LessThan(a) || !a.GreaterThanOrEqual(a) {
		t.Error("comparisons disagree")
	}
}
