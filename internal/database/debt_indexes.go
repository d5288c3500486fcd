// Package database - Index bổ sung (compound có hướng sort) không thể định nghĩa qua model tags.
package database

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"debt_recovery/internal/global"
)

// CreateDebtAdditionalIndexes tạo các index bổ sung cho domain thu hồi nợ.
// Gọi sau CreateIndexes cho từng collection.
func CreateDebtAdditionalIndexes(ctx context.Context, db *mongo.Database) error {
	// clients: (status, streakDays desc) — danh sách dashboard lọc theo status, sort streak giảm dần
	clients := db.Collection(global.MongoDB_ColNames.Clients)
	if _, err := clients.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "status", Value: 1},
			{Key: "streakDays", Value: -1},
		},
		Options: options.Index().SetName("client_status_streak"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// activity_logs: (clientId, createdAt desc) — lịch sử hoạt động newest-first cho client detail
	activityLogs := db.Collection(global.MongoDB_ColNames.ActivityLogs)
	if _, err := activityLogs.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "clientId", Value: 1},
			{Key: "createdAt", Value: -1},
		},
		Options: options.Index().SetName("activity_client_created"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// weekly_snapshots: (clientId, weekStart desc) unique — 1 snapshot mỗi client mỗi tuần
	weeklySnapshots := db.Collection(global.MongoDB_ColNames.WeeklySnapshots)
	if _, err := weeklySnapshots.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "clientId", Value: 1},
			{Key: "weekStart", Value: -1},
		},
		Options: options.Index().SetName("snapshot_client_week_unique").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	return nil
}

func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "already exists") || strings.Contains(s, "duplicate")
}
