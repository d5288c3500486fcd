// Package syncsvc - Service đồng bộ dữ liệu Xero qua Make.com.
// Trigger webhook ngoài, ghi nhận marker hoàn tất, theo dõi trạng thái in-progress.
package syncsvc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	basesvc "debt_recovery/internal/api/base/service"
	"debt_recovery/internal/api/events"
	syncmodels "debt_recovery/internal/api/sync/models"
	"debt_recovery/internal/common"
	"debt_recovery/internal/global"
	"debt_recovery/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
)

const (
	// SyncCompletionWindow là thời gian tối đa chờ sync hoàn tất sau khi trigger.
	// Quá thời gian này, trạng thái in-progress được reset (watchdog worker).
	SyncCompletionWindow = 5 * time.Minute

	triggerTimeout = 10 * time.Second
)

// SyncService quản lý vòng đời một lần sync: trigger -> chờ marker -> hoàn tất.
// Trạng thái in-progress giữ trong memory (mỗi instance theo dõi lần trigger của chính nó).
type SyncService struct {
	*basesvc.BaseServiceMongoImpl[syncmodels.SyncMarker]

	webhookURL string
	httpClient *http.Client

	mu           sync.Mutex
	pendingStart int64 // Unix ms của lần trigger đang chờ, 0 = không có
}

var (
	syncInstance *SyncService
	syncOnce     sync.Once
	syncInitErr  error
)

// GetSyncService trả về singleton SyncService.
// Singleton vì service đăng ký event handler nhận diện marker mới — chỉ đăng ký một lần.
func GetSyncService() (*SyncService, error) {
	syncOnce.Do(func() {
		coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.SyncMarkers)
		if !exist {
			syncInitErr = fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.SyncMarkers, common.ErrNotFound)
			return
		}

		webhookURL := ""
		if global.MongoDB_ServerConfig != nil {
			webhookURL = global.MongoDB_ServerConfig.MakeSyncWebhookURL
		}

		syncInstance = NewSyncService(basesvc.NewBaseServiceMongo[syncmodels.SyncMarker](coll), webhookURL)
		events.OnDataChanged(syncInstance.onMarkerChanged)
	})
	if syncInitErr != nil {
		return nil, syncInitErr
	}
	return syncInstance, nil
}

// NewSyncService tạo SyncService với base service và webhook URL cho trước.
func NewSyncService(base *basesvc.BaseServiceMongoImpl[syncmodels.SyncMarker], webhookURL string) *SyncService {
	return &SyncService{
		BaseServiceMongoImpl: base,
		webhookURL:           webhookURL,
		httpClient:           &http.Client{Timeout: triggerTimeout},
	}
}

// TriggerSync gọi webhook Make.com để bắt đầu sync Xero.
// Payload: {"timestamp": "<RFC3339 hiện tại>"}. Thành công thì ghi nhận thời điểm trigger
// để phân biệt marker cũ với marker của lần sync này.
func (s *SyncService) TriggerSync(ctx context.Context) error {
	if s.webhookURL == "" {
		return common.ErrSyncNotConfigured
	}

	payload, err := json.Marshal(map[string]string{
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return common.ErrInvalidFormat
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.webhookURL, bytes.NewReader(payload))
	if err != nil {
		logger.GetAppLogger().WithError(err).Error("❌ [SYNC] Không tạo được request trigger")
		return common.ErrUpstreamFailed
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		logger.GetAppLogger().WithError(err).Error("❌ [SYNC] Gọi webhook trigger thất bại")
		return common.ErrUpstreamFailed
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.GetAppLogger().Errorf("❌ [SYNC] Webhook trigger trả về status %d", resp.StatusCode)
		return common.ErrUpstreamFailed
	}

	start := time.Now().UnixMilli()
	s.mu.Lock()
	s.pendingStart = start
	s.mu.Unlock()

	logger.GetAppLogger().Infof("🔄 [SYNC] Đã trigger sync, chờ marker hoàn tất (start=%d)", start)
	return nil
}

// CompleteSync ghi nhận sync hoàn tất: upsert marker với completedAt = hiện tại.
// Luôn ghi đè — automation bên ngoài là nguồn sự thật về thời điểm hoàn tất.
func (s *SyncService) CompleteSync(ctx context.Context) (syncmodels.SyncMarker, error) {
	now := time.Now().UnixMilli()
	return s.Upsert(ctx, bson.M{"key": syncmodels.SyncMarkerKey}, basesvc.UpdateData{
		Set: map[string]interface{}{
			"key":         syncmodels.SyncMarkerKey,
			"completedAt": now,
		},
	})
}

// LastSync trả về thời điểm sync hoàn tất gần nhất (0 nếu chưa từng) và trạng thái in-progress.
func (s *SyncService) LastSync(ctx context.Context) (int64, bool, error) {
	marker, err := s.FindOne(ctx, bson.M{"key": syncmodels.SyncMarkerKey}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return 0, s.InProgress(), nil
		}
		return 0, false, err
	}
	return marker.CompletedAt, s.InProgress(), nil
}

// InProgress cho biết có lần trigger nào đang chờ hoàn tất không.
func (s *SyncService) InProgress() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pendingStart != 0
}

// onMarkerChanged nhận event ghi marker và đánh dấu hoàn tất khi marker mới hơn lần trigger.
func (s *SyncService) onMarkerChanged(ctx context.Context, e events.DataChangeEvent) {
	if e.CollectionName != global.MongoDB_ColNames.SyncMarkers {
		return
	}
	switch e.Operation {
	case events.OpInsert, events.OpUpdate, events.OpUpsert:
	default:
		return
	}
	completedAt := events.GetInt64Field(e.Document, "CompletedAt")
	s.markCompleted(completedAt)
}

// markCompleted reset trạng thái in-progress nếu completedAt thuộc về lần trigger đang chờ.
// Marker ghi trước thời điểm trigger là marker cũ, bỏ qua.
func (s *SyncService) markCompleted(completedAt int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pendingStart == 0 || completedAt <= s.pendingStart {
		return
	}
	logger.GetAppLogger().Infof("🔔 [SYNC] Sync hoàn tất (start=%d, completedAt=%d)", s.pendingStart, completedAt)
	s.pendingStart = 0
}

// ExpireStale reset trạng thái in-progress khi lần trigger đang chờ quá SyncCompletionWindow.
// Trả về true nếu có trigger bị expire. Gọi định kỳ bởi watchdog worker.
func (s *SyncService) ExpireStale(now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pendingStart == 0 {
		return false
	}
	if now.UnixMilli()-s.pendingStart <= SyncCompletionWindow.Milliseconds() {
		return false
	}
	logger.GetAppLogger().Warnf("🔔 [SYNC] Trigger quá %s không có marker hoàn tất, reset in-progress (start=%d)",
		SyncCompletionWindow, s.pendingStart)
	s.pendingStart = 0
	return true
}
