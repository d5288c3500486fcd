// Package clientsvc - Test tính đầu tuần ISO (UTC Monday 00:00).
package clientsvc

import (
	"testing"
	"time"
)

func TestWeekStartUTC_CacNgayTrongTuan(t *testing.T) {
	// 2026-08-24 là thứ Hai
	monday := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	wantMs := monday.UnixMilli()

	cases := []struct {
		name string
		t    time.Time
	}{
		{"thứ Hai 00:00", monday},
		{"thứ Hai giữa ngày", time.Date(2026, 8, 24, 15, 30, 0, 0, time.UTC)},
		{"thứ Tư", time.Date(2026, 8, 26, 9, 0, 0, 0, time.UTC)},
		{"Chủ nhật cuối tuần", time.Date(2026, 8, 30, 23, 59, 59, 0, time.UTC)},
	}
	for _, c := range cases {
		got := WeekStartUTC(c.t)
		if got != wantMs {
			t.Errorf("%s: WeekStartUTC = %d (%s), muốn %d (%s)",
				c.name, got, time.UnixMilli(got).UTC(), wantMs, monday)
		}
	}
}

func TestWeekStartUTC_TuanKeTiep(t *testing.T) {
	// Thứ Hai tuần sau phải cho weekStart khác tuần này
	thisWeek := WeekStartUTC(time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC))
	nextWeek := WeekStartUTC(time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC))

	if nextWeek <= thisWeek {
		t.Errorf("weekStart tuần sau (%d) phải lớn hơn tuần này (%d)", nextWeek, thisWeek)
	}
	if nextWeek-thisWeek != 7*24*time.Hour.Milliseconds() {
		t.Errorf("hai tuần liên tiếp phải cách nhau đúng 7 ngày, got %d ms", nextWeek-thisWeek)
	}
}

func TestWeekStartUTC_QuyVeUTC(t *testing.T) {
	// 2026-08-24 06:00 +07:00 = 2026-08-23 23:00 UTC (vẫn Chủ nhật theo UTC)
	loc := time.FixedZone("ICT", 7*3600)
	local := time.Date(2026, 8, 24, 6, 0, 0, 0, loc)

	got := WeekStartUTC(local)
	want := time.Date(2026, 8, 17, 0, 0, 0, 0, time.UTC).UnixMilli()
	if got != want {
		t.Errorf("WeekStartUTC phải tính theo UTC: got %s, muốn %s",
			time.UnixMilli(got).UTC(), time.UnixMilli(want).UTC())
	}
}
