// Package models - Constants cho domain Client (trạng thái nợ, loại hoạt động).
package models

// Trạng thái thu hồi nợ của client, luôn suy ra từ StreakDays.
const (
	ClientStatusCurrent   = "current"   // streak = 0
	ClientStatusWarning   = "warning"   // streak 1-14 ngày
	ClientStatusCritical  = "critical"  // streak 15-21 ngày
	ClientStatusSuspended = "suspended" // streak > 21 ngày
)

// Ngưỡng streak (ngày) cho từng trạng thái.
const (
	StreakWarningMaxDays  = 14
	StreakCriticalMaxDays = 21
)

// Các loại hoạt động trong activity log.
const (
	ActivityTypeCall       = "call"
	ActivityTypeSms        = "sms"
	ActivityTypeEmail      = "email"
	ActivityTypePayment    = "payment"
	ActivityTypeSuspension = "suspension"
)

// WebhookActivityTypes là các loại hoạt động được phép ghi qua webhook log-activity.
// payment không nằm trong danh sách vì chỉ được ghi qua update-payment.
var WebhookActivityTypes = map[string]bool{
	ActivityTypeCall:       true,
	ActivityTypeSms:        true,
	ActivityTypeEmail:      true,
	ActivityTypeSuspension: true,
}

// StatusForStreak suy ra trạng thái client từ số ngày nợ liên tiếp.
func StatusForStreak(streakDays int) string {
	switch {
	case streakDays == 0:
		return ClientStatusCurrent
	case streakDays <= StreakWarningMaxDays:
		return ClientStatusWarning
	case streakDays <= StreakCriticalMaxDays:
		return ClientStatusCritical
	default:
		return ClientStatusSuspended
	}
}
