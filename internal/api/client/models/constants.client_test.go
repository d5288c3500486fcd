// Package models - Test suy ra trạng thái từ streak và danh sách activity type hợp lệ.
package models

import "testing"

func TestStatusForStreak_Boundaries(t *testing.T) {
	cases := []struct {
		streak int
		want   string
	}{
		{0, ClientStatusCurrent},
		{1, ClientStatusWarning},
		{14, ClientStatusWarning},
		{15, ClientStatusCritical},
		{21, ClientStatusCritical},
		{22, ClientStatusSuspended},
		{100, ClientStatusSuspended},
	}
	for _, c := range cases {
		got := StatusForStreak(c.streak)
		if got != c.want {
			t.Errorf("StatusForStreak(%d) = %q, muốn %q", c.streak, got, c.want)
		}
	}
}

func TestWebhookActivityTypes_KhongChuaPayment(t *testing.T) {
	if WebhookActivityTypes[ActivityTypePayment] {
		t.Error("payment không được phép ghi qua webhook log-activity")
	}
	for _, at := range []string{ActivityTypeCall, ActivityTypeSms, ActivityTypeEmail, ActivityTypeSuspension} {
		if !WebhookActivityTypes[at] {
			t.Errorf("activity type %q phải được phép qua webhook", at)
		}
	}
}
