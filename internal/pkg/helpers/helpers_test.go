package helpers

import (
	"testing"
	"time"
)

func TestCalculateOffsetLimit(t *testing.T) {
	tests := []struct {
		page, size         int
		wantOffset, wantLm uint64
	}{
		{1, 10, 0, 10},
		{3, 10, 20, 10},
		{0, 10, 0, 10},
		{2, 0, DefaultPageSize, DefaultPageSize},
		{1, MaxPageSize + 1, 0, DefaultPageSize},
	}
	for _, tt := range tests {
		off, lim := CalculateOffsetLimit(tt.page, tt.size)
		if off != tt.wantOffset || lim != tt.wantLm {
			t.Errorf("CalculateOffsetLimit(%d, %d) = %d, %d", tt.page, tt.size, off, lim)
		}
	}
}

func TestNewPaginationInfo(t *testing.T) {
	info := NewPaginationInfo(25, 5, 10)
	if info.TotalPages != 3 || info.CurrentPage != 3 {
		t.Errorf("unexpected pagination %+v", info)
	}
	empty := NewPaginationInfo(0, 1, 10)
	if empty.TotalPages != 1 || empty.CurrentPage != 1 {
		t.Errorf("unexpected empty pagination %+v", empty)
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-10-19")
	if err != nil {
		t.Fatal(err)
	}
	if !d.Equal(time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("ParseDate = %v", d)
	}
	if _, err := ParseDate("19.10.2026"); err == nil {
		t.Error("expected error for non-ISO date")
	}
}

func TestDateOf(t *testing.T) {
	msk := time.FixedZone("MSK", 3*3600)
	late := time.Date(2026, 10, 19, 23, 30, 0, 0, msk)
	if got := DateOf(late); !got.Equal(time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("DateOf kept the wrong calendar day: %v", got)
	}
}

func TestParseDuration(t *testing.T) {
	if got := ParseDuration("15m", time.Minute); got != 15*time.Minute {
		t.Errorf("ParseDuration = %v", got)
	}
	if got := ParseDuration("soon", time.Minute); got != time.Minute {
		t.Errorf("fallback = %v", got)
	}
}

func TestGetNullDate(t *testing.T) {
	if GetNullDate(nil).Valid {
		t.Error("nil date must be NULL")
	}
	d := time.Date(2026, 9, 1, 15, 0, 0, 0, time.UTC)
	nd := GetNullDate(&d)
	if !nd.Valid || nd.Time.Hour() != 0 {
		t.Errorf("unexpected %+v", nd)
	}
}
