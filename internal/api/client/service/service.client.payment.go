// Package clientsvc - Áp dụng payment update từ webhook.
package clientsvc

import (
	"context"
	"fmt"
	"time"

	clientmodels "debt_recovery/internal/api/client/models"

	"go.mongodb.org/mongo-driver/bson"
)

// PaymentOutcome là kết quả áp dụng quy tắc payment lên một client.
type PaymentOutcome struct {
	StreakDays      int     // Streak mới: reset về 0 khi số dư giảm, giữ nguyên khi không
	Status          string  // Suy ra từ streak mới
	WeekChange      float64 // newBalance - currentBalance cũ
	PreviousBalance float64 // currentBalance cũ
	CurrentBalance  float64 // newBalance
}

// ApplyPaymentRules tính các field cần cập nhật khi nhận payment update.
// Quy tắc streak: số dư mới thấp hơn số dư hiện tại nghĩa là client có trả nợ,
// streak reset về 0; ngược lại giữ nguyên.
func ApplyPaymentRules(client clientmodels.Client, newBalance float64) PaymentOutcome {
	streak := client.StreakDays
	if newBalance < client.CurrentBalance {
		streak = 0
	}
	return PaymentOutcome{
		StreakDays:      streak,
		Status:          clientmodels.StatusForStreak(streak),
		WeekChange:      newBalance - client.CurrentBalance,
		PreviousBalance: client.CurrentBalance,
		CurrentBalance:  newBalance,
	}
}

// PaymentActivityOutcome trả về nội dung outcome cho activity log payment.
func PaymentActivityOutcome(paymentAmount float64) string {
	return fmt.Sprintf("Payment of $%.2f received", paymentAmount)
}

// ApplyPaymentUpdate áp dụng payment update cho client theo xeroContactId:
// cập nhật số dư, streak, status và ghi activity log loại payment.
// Các update cho cùng một client được serialize qua lock theo xeroContactId.
func (s *ClientService) ApplyPaymentUpdate(ctx context.Context, xeroContactId string, newBalance, paymentAmount float64) (*clientmodels.Client, error) {
	mu := s.lockFor(xeroContactId)
	mu.Lock()
	defer mu.Unlock()

	client, err := s.FindByXeroContactId(ctx, xeroContactId)
	if err != nil {
		return nil, err
	}

	outcome := ApplyPaymentRules(client, newBalance)
	now := time.Now().UnixMilli()

	updated, err := s.UpdateOne(ctx, bson.M{"_id": client.ID}, bson.M{
		"$set": bson.M{
			"previousBalance":      outcome.PreviousBalance,
			"currentBalance":       outcome.CurrentBalance,
			"weekChange":           outcome.WeekChange,
			"streakDays":           outcome.StreakDays,
			"status":               outcome.Status,
			"lastBalanceCheckDate": now,
			"lastPaymentDate":      now,
		},
	}, nil)
	if err != nil {
		return nil, err
	}

	_, err = s.activityLogService.InsertOne(ctx, clientmodels.ActivityLog{
		ClientID:     client.ID,
		ActivityType: clientmodels.ActivityTypePayment,
		Outcome:      PaymentActivityOutcome(paymentAmount),
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}
