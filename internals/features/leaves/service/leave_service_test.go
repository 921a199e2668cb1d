package service

import (
	"testing"

	"github.com/Srinivaspandrala/server-hrm/internals/features/leaves/model"
)

func TestLeaveDays(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		want    int
		wantErr bool
	}{
		{"single day", "2025-03-10", "2025-03-10", 1, false},
		{"full week", "2025-03-10", "2025-03-16", 7, false},
		{"across month boundary", "2025-01-30", "2025-02-02", 4, false},
		{"across year boundary", "2024-12-30", "2025-01-02", 4, false},
		{"reversed range", "2025-03-16", "2025-03-10", 0, true},
		{"bad from date", "10-03-2025", "2025-03-16", 0, true},
		{"bad to date", "2025-03-10", "soon", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LeaveDays(tt.from, tt.to)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("LeaveDays(%q, %q) = %d, want %d", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func leaveRow(from, to string) model.LeaveRequestModel {
	return model.LeaveRequestModel{FromDate: from, ToDate: to}
}

func TestTotalDays(t *testing.T) {
	rows := []model.LeaveRequestModel{
		leaveRow("2025-03-10", "2025-03-12"), // 3 days
		leaveRow("2025-04-01", "2025-04-01"), // 1 day
		leaveRow("bad", "2025-04-05"),        // skipped
	}
	if got := TotalDays(rows); got != 4 {
		t.Errorf("TotalDays = %d, want 4", got)
	}
	if got := TotalDays(nil); got != 0 {
		t.Errorf("TotalDays(nil) = %d, want 0", got)
	}
}

func TestOverlaps(t *testing.T) {
	existing := []model.LeaveRequestModel{
		leaveRow("2025-03-10", "2025-03-14"),
		leaveRow("2025-05-01", "2025-05-01"),
	}

	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{"disjoint before", "2025-03-01", "2025-03-09", false},
		{"disjoint after", "2025-03-15", "2025-03-20", false},
		{"touching start day", "2025-03-05", "2025-03-10", true},
		{"touching end day", "2025-03-14", "2025-03-18", true},
		{"contained", "2025-03-11", "2025-03-12", true},
		{"containing", "2025-03-01", "2025-03-31", true},
		{"single-day clash", "2025-05-01", "2025-05-01", true},
		{"between existing ranges", "2025-04-01", "2025-04-10", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(existing, tt.from, tt.to); got != tt.want {
				t.Errorf("Overlaps(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}

	if Overlaps(nil, "2025-03-10", "2025-03-14") {
		t.Error("Overlaps with no existing rows should be false")
	}
}
