// Package clientsvc - Test quy tắc payment (streak reset, weekChange, previous/current balance).
package clientsvc

import (
	"testing"

	clientmodels "debt_recovery/internal/api/client/models"
)

func TestApplyPaymentRules_BalanceGiam_ResetStreak(t *testing.T) {
	client := clientmodels.Client{CurrentBalance: 1000, StreakDays: 18, Status: clientmodels.ClientStatusCritical}
	out := ApplyPaymentRules(client, 600)

	if out.StreakDays != 0 {
		t.Errorf("streak phải reset về 0 khi số dư giảm, got %d", out.StreakDays)
	}
	if out.Status != clientmodels.ClientStatusCurrent {
		t.Errorf("status phải là current sau khi reset streak, got %q", out.Status)
	}
	if out.WeekChange != -400 {
		t.Errorf("weekChange = %v, muốn -400", out.WeekChange)
	}
	if out.PreviousBalance != 1000 {
		t.Errorf("previousBalance = %v, muốn 1000 (currentBalance cũ)", out.PreviousBalance)
	}
	if out.CurrentBalance != 600 {
		t.Errorf("currentBalance = %v, muốn 600", out.CurrentBalance)
	}
}

func TestApplyPaymentRules_BalanceKhongGiam_GiuStreak(t *testing.T) {
	client := clientmodels.Client{CurrentBalance: 1000, StreakDays: 10}

	// Bằng số dư cũ: không có thanh toán, streak giữ nguyên
	out := ApplyPaymentRules(client, 1000)
	if out.StreakDays != 10 {
		t.Errorf("streak phải giữ nguyên khi số dư không giảm, got %d", out.StreakDays)
	}
	if out.Status != clientmodels.ClientStatusWarning {
		t.Errorf("status = %q, muốn warning (streak 10)", out.Status)
	}
	if out.WeekChange != 0 {
		t.Errorf("weekChange = %v, muốn 0", out.WeekChange)
	}

	// Số dư tăng: nợ thêm, streak vẫn giữ nguyên
	out = ApplyPaymentRules(client, 1500)
	if out.StreakDays != 10 {
		t.Errorf("streak phải giữ nguyên khi số dư tăng, got %d", out.StreakDays)
	}
	if out.WeekChange != 500 {
		t.Errorf("weekChange = %v, muốn 500", out.WeekChange)
	}
}

func TestPaymentActivityOutcome_Format(t *testing.T) {
	got := PaymentActivityOutcome(123.456)
	want := "Payment of $123.46 received"
	if got != want {
		t.Errorf("PaymentActivityOutcome(123.456) = %q, muốn %q", got, want)
	}

	got = PaymentActivityOutcome(0)
	want = "Payment of $0.00 received"
	if got != want {
		t.Errorf("PaymentActivityOutcome(0) = %q, muốn %q", got, want)
	}
}
