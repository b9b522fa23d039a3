package shared

import (
	"testing"
	"time"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		t.Fatalf("bad fixture date %q: %v", s, err)
	}
	return d
}

func TestBucketDeadline(t *testing.T) {
	tests := []struct {
		name   string
		bucket string
		now    string
		want   string
	}{
		{"daily is today", BucketDaily, "2026-03-11", "2026-03-11"},
		{"weekly from wednesday ends sunday", BucketWeekly, "2026-03-11", "2026-03-15"},
		{"weekly from monday ends sunday", BucketWeekly, "2026-03-09", "2026-03-15"},
		{"weekly on sunday is same day", BucketWeekly, "2026-03-15", "2026-03-15"},
		{"monthly leap february", BucketMonthly, "2024-02-15", "2024-02-29"},
		{"monthly plain february", BucketMonthly, "2023-02-15", "2023-02-28"},
		{"monthly december", BucketMonthly, "2026-12-01", "2026-12-31"},
		{"monthly thirty day month", BucketMonthly, "2026-04-10", "2026-04-30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BucketDeadline(tt.bucket, mustDate(t, tt.now))
			want := mustDate(t, tt.want)
			if !got.Equal(want) {
				t.Errorf("BucketDeadline(%s, %s) = %s, want %s",
					tt.bucket, tt.now, got.Format("2006-01-02"), tt.want)
			}
		})
	}
}

func TestMondayIndex(t *testing.T) {
	if got := MondayIndex(time.Monday); got != 0 {
		t.Errorf("MondayIndex(Monday) = %d, want 0", got)
	}
	if got := MondayIndex(time.Sunday); got != 6 {
		t.Errorf("MondayIndex(Sunday) = %d, want 6", got)
	}
}

func TestDateOnly(t *testing.T) {
	in := time.Date(2026, 3, 11, 23, 59, 58, 12345, time.Local)
	got := DateOnly(in)
	want := mustDate(t, "2026-03-11")
	if !got.Equal(want) {
		t.Errorf("DateOnly = %s, want %s", got, want)
	}
}
