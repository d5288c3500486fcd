// Package clientsvc - Service khách nợ (clients).
// Upsert từ sync, payment, activity, dashboard.
package clientsvc

import (
	"context"
	"fmt"
	"sync"

	clientmodels "debt_recovery/internal/api/client/models"
	basesvc "debt_recovery/internal/api/base/service"
	"debt_recovery/internal/common"
	"debt_recovery/internal/global"
	"debt_recovery/internal/registry"

	"go.mongodb.org/mongo-driver/bson"
)

// ClientService xử lý logic khách nợ.
type ClientService struct {
	*basesvc.BaseServiceMongoImpl[clientmodels.Client]

	activityLogService *ActivityLogService
	snapshotService    *WeeklySnapshotService

	// Lock theo xeroContactId: update payment cho cùng một client chạy tuần tự,
	// các client khác nhau chạy song song.
	clientLocks *registry.Registry[*sync.Mutex]
}

// NewClientService tạo ClientService mới.
func NewClientService() (*ClientService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Clients)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Clients, common.ErrNotFound)
	}

	activityLogService, err := NewActivityLogService()
	if err != nil {
		return nil, err
	}
	snapshotService, err := NewWeeklySnapshotService()
	if err != nil {
		return nil, err
	}

	return &ClientService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[clientmodels.Client](coll),
		activityLogService:   activityLogService,
		snapshotService:      snapshotService,
		clientLocks:          registry.NewRegistry[*sync.Mutex](),
	}, nil
}

// ActivityLogs trả về service activity log (dùng bởi webhook handler).
func (s *ClientService) ActivityLogs() *ActivityLogService {
	return s.activityLogService
}

// Snapshots trả về service weekly snapshot (dùng bởi worker).
func (s *ClientService) Snapshots() *WeeklySnapshotService {
	return s.snapshotService
}

// FindByXeroContactId tìm client theo Xero contact ID.
func (s *ClientService) FindByXeroContactId(ctx context.Context, xeroContactId string) (clientmodels.Client, error) {
	return s.FindOne(ctx, bson.M{"xeroContactId": xeroContactId}, nil)
}

// lockFor trả về mutex cho một xeroContactId (tạo mới nếu chưa có).
func (s *ClientService) lockFor(xeroContactId string) *sync.Mutex {
	mu, err := s.clientLocks.GetOrCreate(xeroContactId, func() (*sync.Mutex, error) {
		return &sync.Mutex{}, nil
	})
	if err != nil {
		// GetOrCreate chỉ lỗi khi name rỗng; fallback mutex riêng vẫn an toàn
		return &sync.Mutex{}
	}
	return mu
}
