package engine

import "testing"

func TestQuoteLiteral(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"results.csv", "results.csv"},
		{"bob's results.csv", "bob''s results.csv"},
		{"a'b'c", "a''b''c"},
	}
	for _, tt := range tests {
		if got := quoteLiteral(tt.in); got != tt.want {
			t.Errorf("quoteLiteral(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
