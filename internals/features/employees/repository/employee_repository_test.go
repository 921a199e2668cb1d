package repository

import "testing"

func TestFormatEmployeeID(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{241, "GTS241"},
		{999, "GTS999"},
		{1000, "GTS1000"},
	}
	for _, tt := range tests {
		if got := FormatEmployeeID(tt.n); got != tt.want {
			t.Errorf("FormatEmployeeID(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
