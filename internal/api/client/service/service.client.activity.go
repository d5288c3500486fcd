// Package clientsvc - Service activity log (activity_logs).
package clientsvc

import (
	"context"
	"fmt"
	"time"

	clientmodels "debt_recovery/internal/api/client/models"
	basesvc "debt_recovery/internal/api/base/service"
	"debt_recovery/internal/common"
	"debt_recovery/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ActivityLogService xử lý các bản ghi hoạt động thu hồi nợ.
type ActivityLogService struct {
	*basesvc.BaseServiceMongoImpl[clientmodels.ActivityLog]
}

// NewActivityLogService tạo ActivityLogService mới.
func NewActivityLogService() (*ActivityLogService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.ActivityLogs)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.ActivityLogs, common.ErrNotFound)
	}
	return &ActivityLogService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[clientmodels.ActivityLog](coll),
	}, nil
}

// FindByClient trả về toàn bộ activity log của một client, mới nhất trước.
func (s *ActivityLogService) FindByClient(ctx context.Context, clientID primitive.ObjectID) ([]clientmodels.ActivityLog, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.Find(ctx, bson.M{"clientId": clientID}, opts)
}

// RecordActivity ghi một hoạt động (call, sms, email, suspension) cho client và cập nhật
// lastContactDate. lastCallOutcome chỉ được cập nhật khi outcome được cung cấp.
func (s *ClientService) RecordActivity(ctx context.Context, xeroContactId, activityType, outcome, recordingUrl, notes string) (*clientmodels.ActivityLog, error) {
	if !clientmodels.WebhookActivityTypes[activityType] {
		return nil, common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("activityType không hợp lệ: %s", activityType),
			common.StatusBadRequest,
			nil,
		)
	}

	client, err := s.FindByXeroContactId(ctx, xeroContactId)
	if err != nil {
		return nil, err
	}

	log, err := s.activityLogService.InsertOne(ctx, clientmodels.ActivityLog{
		ClientID:     client.ID,
		ActivityType: activityType,
		Outcome:      outcome,
		RecordingUrl: recordingUrl,
		Notes:        notes,
	})
	if err != nil {
		return nil, err
	}

	set := bson.M{"lastContactDate": time.Now().UnixMilli()}
	if outcome != "" {
		set["lastCallOutcome"] = outcome
	}
	if _, err := s.UpdateOne(ctx, bson.M{"_id": client.ID}, bson.M{"$set": set}, nil); err != nil {
		return nil, err
	}

	return &log, nil
}
