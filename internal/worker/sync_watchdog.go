// Package worker - SyncWatchdogWorker reset trạng thái sync in-progress khi quá hạn.
package worker

import (
	"context"
	"time"

	syncsvc "debt_recovery/internal/api/sync/service"
	"debt_recovery/internal/logger"
)

// SyncWatchdogWorker worker theo dõi lần trigger sync đang chờ.
// Nếu quá SyncCompletionWindow không có marker hoàn tất, trạng thái in-progress
// được reset để dashboard không hiển thị sync treo vô hạn.
type SyncWatchdogWorker struct {
	syncService *syncsvc.SyncService
	interval    time.Duration // Khoảng thời gian giữa các lần kiểm tra (vd: 30s)
}

// NewSyncWatchdogWorker tạo worker mới.
//
// Tham số:
//   - interval: Khoảng cách giữa các lần kiểm tra (mặc định: 30s)
func NewSyncWatchdogWorker(interval time.Duration) (*SyncWatchdogWorker, error) {
	syncService, err := syncsvc.GetSyncService()
	if err != nil {
		return nil, err
	}
	if interval < time.Second {
		interval = 30 * time.Second
	}
	return &SyncWatchdogWorker{
		syncService: syncService,
		interval:    interval,
	}, nil
}

// Start chạy worker trong vòng lặp.
func (w *SyncWatchdogWorker) Start(ctx context.Context) {
	log := logger.GetAppLogger()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.WithFields(map[string]interface{}{
		"interval": w.interval.String(),
		"window":   syncsvc.SyncCompletionWindow.String(),
	}).Info("⏱️ [SYNC_WATCHDOG] Starting Sync Watchdog Worker...")

	for {
		select {
		case <-ctx.Done():
			log.Info("⏱️ [SYNC_WATCHDOG] Sync Watchdog Worker stopped")
			return
		case <-ticker.C:
			w.syncService.ExpireStale(time.Now())
		}
	}
}
