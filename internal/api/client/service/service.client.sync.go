// Package clientsvc - Bulk upsert client từ webhook sync-clients.
package clientsvc

import (
	"context"

	basesvc "debt_recovery/internal/api/base/service"
	"debt_recovery/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
)

// SyncClientInput là một client trong payload sync từ automation.
type SyncClientInput struct {
	XeroContactId  string
	Name           string
	Email          string
	Phone          string
	Company        string
	CurrentBalance float64
}

// UpsertFromSync upsert idempotent một batch client theo xeroContactId.
// Client đã tồn tại: cập nhật profile + currentBalance. Client mới: các field
// theo dõi thu hồi khởi tạo giá trị 0, status = current.
// Lỗi từng client được đếm và log, không làm hỏng cả batch. Trả về số client xử lý thành công.
func (s *ClientService) UpsertFromSync(ctx context.Context, inputs []SyncClientInput) (int, error) {
	log := logger.GetAppLogger()
	processed := 0

	for _, input := range inputs {
		if input.XeroContactId == "" {
			log.Warn("🔄 [SYNC CLIENTS] Bỏ qua client thiếu xeroContactId")
			continue
		}

		update := &basesvc.UpdateData{
			Set: map[string]interface{}{
				"xeroContactId":  input.XeroContactId,
				"name":           input.Name,
				"email":          input.Email,
				"phone":          input.Phone,
				"company":        input.Company,
				"currentBalance": input.CurrentBalance,
			},
			SetOnInsert: map[string]interface{}{
				"previousBalance": float64(0),
				"streakDays":      0,
				"weekChange":      float64(0),
			},
		}

		_, err := s.Upsert(ctx, bson.M{"xeroContactId": input.XeroContactId}, update)
		if err != nil {
			log.WithError(err).WithField("xeroContactId", input.XeroContactId).Error("🔄 [SYNC CLIENTS] Lỗi upsert client")
			continue
		}
		processed++
	}

	return processed, nil
}
