// Package clientsvc - Service weekly snapshot (weekly_snapshots).
package clientsvc

import (
	"context"
	"errors"
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

// WeeklySnapshotService xử lý snapshot số dư theo tuần.
type WeeklySnapshotService struct {
	*basesvc.BaseServiceMongoImpl[clientmodels.WeeklySnapshot]
}

// NewWeeklySnapshotService tạo WeeklySnapshotService mới.
func NewWeeklySnapshotService() (*WeeklySnapshotService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.WeeklySnapshots)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.WeeklySnapshots, common.ErrNotFound)
	}
	return &WeeklySnapshotService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[clientmodels.WeeklySnapshot](coll),
	}, nil
}

// WeekStartUTC trả về đầu tuần ISO (UTC Monday 00:00) chứa thời điểm t, tính bằng Unix ms.
func WeekStartUTC(t time.Time) int64 {
	t = t.UTC()
	// time.Weekday: Sunday = 0; tuần ISO bắt đầu từ Monday
	offset := (int(t.Weekday()) + 6) % 7
	monday := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -offset)
	return monday.UnixMilli()
}

// FindByClient trả về toàn bộ snapshot của một client, tuần mới nhất trước.
func (s *WeeklySnapshotService) FindByClient(ctx context.Context, clientID primitive.ObjectID) ([]clientmodels.WeeklySnapshot, error) {
	opts := options.Find().SetSort(bson.D{{Key: "weekStart", Value: -1}})
	return s.Find(ctx, bson.M{"clientId": clientID}, opts)
}

// EnsureWeeklySnapshot ghi snapshot cho client tại weekStart nếu tuần đó chưa có.
// Idempotent theo (clientId, weekStart): snapshot đã tồn tại được giữ nguyên.
// Trả về true nếu đã ghi snapshot mới.
func (s *WeeklySnapshotService) EnsureWeeklySnapshot(ctx context.Context, client clientmodels.Client, weekStart int64) (bool, error) {
	filter := bson.M{"clientId": client.ID, "weekStart": weekStart}
	exists, err := s.DocumentExists(ctx, filter)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	_, err = s.InsertOne(ctx, clientmodels.WeeklySnapshot{
		ClientID:    client.ID,
		WeekStart:   weekStart,
		Balance:     client.CurrentBalance,
		PaymentMade: client.CurrentBalance < client.PreviousBalance,
	})
	if err != nil {
		// Unique index (clientId, weekStart) chặn ghi trùng khi hai worker chạy đồng thời
		if errors.Is(err, common.ErrDuplicate) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
