// Package webhooksvc chứa service cho domain Webhook (log).
// File: service.webhook.log.go
package webhooksvc

import (
	"context"
	"fmt"
	"time"

	basesvc "debt_recovery/internal/api/base/service"
	basemodels "debt_recovery/internal/api/base/models"
	webhookmodels "debt_recovery/internal/api/webhook/models"
	"debt_recovery/internal/common"
	"debt_recovery/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// WebhookLogService là cấu trúc chứa các phương thức liên quan đến webhook logs
type WebhookLogService struct {
	*basesvc.BaseServiceMongoImpl[webhookmodels.WebhookLog]
}

// NewWebhookLogService tạo mới WebhookLogService
func NewWebhookLogService() (*WebhookLogService, error) {
	webhookLogCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.WebhookLogs)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.WebhookLogs, common.ErrNotFound)
	}

	return &WebhookLogService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[webhookmodels.WebhookLog](webhookLogCollection),
	}, nil
}

// CreateWebhookLog tạo mới webhook log
func (s *WebhookLogService) CreateWebhookLog(ctx context.Context, log webhookmodels.WebhookLog) (*webhookmodels.WebhookLog, error) {
	if log.ExpireAt.IsZero() {
		// Mốc cho TTL index, log tự xóa 30 ngày sau thời điểm nhận
		log.ExpireAt = time.Now()
	}
	result, err := s.InsertOne(ctx, log)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateProcessedStatus cập nhật trạng thái đã xử lý của webhook log
func (s *WebhookLogService) UpdateProcessedStatus(ctx context.Context, logID primitive.ObjectID, processed bool, errorMsg string) error {
	filter := bson.M{"_id": logID}
	update := bson.M{
		"$set": bson.M{
			"processed":    processed,
			"processError": errorMsg,
			"processedAt":  0,
			"updatedAt":    0,
		},
	}

	if processed {
		update["$set"].(bson.M)["processedAt"] = time.Now().UnixMilli()
	}
	update["$set"].(bson.M)["updatedAt"] = time.Now().UnixMilli()

	opts := options.Update()
	_, err := s.Collection().UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return common.ConvertMongoError(err)
	}
	return nil
}

// FindRecent trả về webhook log phân trang, mới nhất trước.
// Filter theo eventType nếu khác rỗng.
func (s *WebhookLogService) FindRecent(ctx context.Context, eventType string, page, limit int64) (*basemodels.PaginateResult[webhookmodels.WebhookLog], error) {
	filter := bson.M{}
	if eventType != "" {
		filter["eventType"] = eventType
	}
	opts := options.Find().SetSort(bson.D{{Key: "receivedAt", Value: -1}})
	return s.FindWithPagination(ctx, filter, page, limit, opts)
}
