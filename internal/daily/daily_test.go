package daily

import (
	"testing"
	"time"
)

func TestDateKey_UTC(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	got := DateKey(time.Date(2024, 3, 1, 5, 0, 0, 0, loc))
	if got != "2024-02-29" {
		t.Errorf("DateKey %q, want 2024-02-29", got)
	}
}

func TestSeed_StablePerDay(t *testing.T) {
	morning := time.Date(2024, 5, 4, 1, 0, 0, 0, time.UTC)
	evening := time.Date(2024, 5, 4, 23, 0, 0, 0, time.UTC)
	if Seed(morning, "salt") != Seed(evening, "salt") {
		t.Error("seed changed within the same day")
	}
	if Seed(morning, "salt") == Seed(morning.AddDate(0, 0, 1), "salt") {
		t.Error("seed should differ between days")
	}
	if Seed(morning, "salt") == Seed(morning, "other") {
		t.Error("seed should depend on salt")
	}
	if Seed(morning, "salt") < 0 {
		t.Error("seed should be non-negative")
	}
}
