// Package worker - SnapshotWorker chụp snapshot số dư hàng tuần cho từng client.
// Mỗi client một snapshot mỗi tuần ISO (thứ Hai 00:00 UTC), idempotent nên chạy
// nhiều lần trong tuần không tạo bản ghi trùng.
package worker

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	clientsvc "debt_recovery/internal/api/client/service"
	"debt_recovery/internal/logger"
)

// SnapshotWorker worker tạo weekly snapshot số dư định kỳ.
type SnapshotWorker struct {
	clientService *clientsvc.ClientService
	interval      time.Duration // Khoảng thời gian giữa các lần chạy (vd: 1h)
	batchSize     int64         // Số client tối đa mỗi batch (vd: 200)
}

// NewSnapshotWorker tạo worker mới.
//
// Tham số:
//   - interval: Khoảng cách giữa các lần chạy (mặc định: 1h)
//   - batchSize: Số client tối đa mỗi batch (mặc định: 200)
func NewSnapshotWorker(interval time.Duration, batchSize int64) (*SnapshotWorker, error) {
	clientService, err := clientsvc.NewClientService()
	if err != nil {
		return nil, err
	}
	if interval < time.Minute {
		interval = time.Hour
	}
	if batchSize <= 0 {
		batchSize = 200
	}
	return &SnapshotWorker{
		clientService: clientService,
		interval:      interval,
		batchSize:     batchSize,
	}, nil
}

// Start chạy worker trong vòng lặp.
func (w *SnapshotWorker) Start(ctx context.Context) {
	log := logger.GetAppLogger()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.WithFields(map[string]interface{}{
		"interval":  w.interval.String(),
		"batchSize": w.batchSize,
	}).Info("📸 [SNAPSHOT] Starting Weekly Snapshot Worker...")

	// Chạy ngay lần đầu sau 1 phút (tránh chạy lúc startup)
	time.Sleep(time.Minute)
	w.runBatch(ctx, log)

	for {
		select {
		case <-ctx.Done():
			log.Info("📸 [SNAPSHOT] Weekly Snapshot Worker stopped")
			return
		case <-ticker.C:
			w.runBatch(ctx, log)
		}
	}
}

// runBatch chạy một đợt: duyệt tất cả client theo batch, đảm bảo có snapshot cho tuần hiện tại.
func (w *SnapshotWorker) runBatch(ctx context.Context, log *logrus.Logger) {
	defer func() {
		if r := recover(); r != nil {
			log.WithFields(map[string]interface{}{
				"panic": r,
			}).Error("📸 [SNAPSHOT] Panic khi xử lý, sẽ tiếp tục lần chạy tiếp theo")
		}
	}()

	weekStart := clientsvc.WeekStartUTC(time.Now())
	skip := int64(0)
	totalCreated := 0

	for {
		opts := options.Find().
			SetSort(bson.D{{Key: "_id", Value: 1}}).
			SetSkip(skip).
			SetLimit(w.batchSize)
		clients, err := w.clientService.Find(ctx, bson.M{}, opts)
		if err != nil {
			log.WithError(err).Error("📸 [SNAPSHOT] Lỗi lấy danh sách client")
			return
		}
		if len(clients) == 0 {
			break
		}

		created := 0
		for _, client := range clients {
			ok, err := w.clientService.Snapshots().EnsureWeeklySnapshot(ctx, client, weekStart)
			if err != nil {
				log.WithError(err).WithFields(map[string]interface{}{
					"clientId":      client.ID.Hex(),
					"xeroContactId": client.XeroContactId,
				}).Warn("📸 [SNAPSHOT] Tạo snapshot thất bại, bỏ qua")
				continue
			}
			if ok {
				created++
			}
		}
		totalCreated += created

		if created > 0 {
			log.WithFields(map[string]interface{}{
				"batchCreated": created,
				"batchSize":    len(clients),
				"totalCreated": totalCreated,
				"weekStart":    weekStart,
			}).Info("📸 [SNAPSHOT] Đã tạo weekly snapshot")
		}

		if int64(len(clients)) < w.batchSize {
			break
		}
		skip += w.batchSize
	}
}
