package calc

import (
	"errors"
	"testing"

	"github.com/nirbeaver/construction-management/internal/model"
)

func TestEndDate(t *testing.T) {
	cases := []struct {
		name         string
		start        string
		duration     int
		durationType model.DurationType
		want         string
	}{
		{"days", "2024-03-01", 10, model.DurationDays, "2024-03-11"},
		{"weeks", "2024-03-01", 2, model.DurationWeeks, "2024-03-15"},
		{"months", "2024-03-15", 2, model.DurationMonths, "2024-05-15"},
		{"month rollover clamps to leap day", "2024-01-31", 1, model.DurationMonths, "2024-02-29"},
		{"month rollover clamps in non-leap year", "2023-01-31", 1, model.DurationMonths, "2023-02-28"},
		{"month across year boundary", "2024-11-30", 3, model.DurationMonths, "2025-02-28"},
		{"zero duration", "2024-03-01", 0, model.DurationDays, "2024-03-01"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := EndDate(tc.start, tc.duration, tc.durationType)
			if err != nil {
				t.Fatalf("EndDate(%q, %d, %q) error: %v", tc.start, tc.duration, tc.durationType, err)
			}
			if got != tc.want {
				t.Errorf("EndDate(%q, %d, %q) = %q, want %q", tc.start, tc.duration, tc.durationType, got, tc.want)
			}
		})
	}
}

func TestEndDateInvalidStartFallsBack(t *testing.T) {
	got, err := EndDate("not-a-date", 5, model.DurationDays)
	if !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
	if got != "not-a-date" {
		t.Errorf("expected original input back, got %q", got)
	}
}

func TestEndDateNeverBeforeStart(t *testing.T) {
	for _, durationType := range []model.DurationType{model.DurationDays, model.DurationWeeks, model.DurationMonths} {
		for duration := 0; duration <= 24; duration++ {
			got, err := EndDate("2024-01-31", duration, durationType)
			if err != nil {
				t.Fatal(err)
			}
			if got < "2024-01-31" {
				t.Errorf("EndDate(2024-01-31, %d, %q) = %q is before start", duration, durationType, got)
			}
		}
	}
}

func TestChangeOrderImpact(t *testing.T) {
	cases := []struct {
		name         string
		duration     int
		durationType model.DurationType
		endDate      string
		wantDays     int
		wantEnd      string
	}{
		{"days", 5, model.DurationDays, "2024-06-01", 5, "2024-06-06"},
		{"weeks", 2, model.DurationWeeks, "2024-06-01", 14, "2024-06-15"},
		// months deliberately use the 30-day approximation here, not
		// calendar arithmetic.
		{"months approximate", 1, model.DurationMonths, "2024-01-31", 30, "2024-03-01"},
		{"zero duration", 0, model.DurationDays, "2024-06-01", 0, "2024-06-01"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			co := model.ChangeOrder{Duration: tc.duration, DurationType: tc.durationType}
			impact := ChangeOrderImpact(co, tc.endDate)
			if impact.AdditionalDays != tc.wantDays {
				t.Errorf("AdditionalDays = %d, want %d", impact.AdditionalDays, tc.wantDays)
			}
			if impact.NewEndDate != tc.wantEnd {
				t.Errorf("NewEndDate = %q, want %q", impact.NewEndDate, tc.wantEnd)
			}
		})
	}
}

func TestChangeOrderImpactInvalidEndDate(t *testing.T) {
	co := model.ChangeOrder{Duration: 2, DurationType: model.DurationWeeks}
	impact := ChangeOrderImpact(co, "garbage")
	if impact.AdditionalDays != 14 {
		t.Errorf("AdditionalDays = %d, want 14", impact.AdditionalDays)
	}
	if impact.NewEndDate != "garbage" {
		t.Errorf("expected unchanged end date, got %q", impact.NewEndDate)
	}
}
