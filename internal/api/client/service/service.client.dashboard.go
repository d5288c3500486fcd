// Package clientsvc - Truy vấn dashboard (danh sách, thống kê, chi tiết).
package clientsvc

import (
	"context"
	"regexp"

	clientdto "debt_recovery/internal/api/client/dto"
	clientmodels "debt_recovery/internal/api/client/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BuildClientFilter tạo filter MongoDB cho danh sách client.
// status = "all" hoặc rỗng nghĩa là không lọc theo trạng thái.
// search match substring không phân biệt hoa thường trên name, company, email (đã escape regex).
func BuildClientFilter(status, search string) bson.M {
	filter := bson.M{}

	if status != "" && status != "all" {
		filter["status"] = status
	}

	if search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
		filter["$or"] = []bson.M{
			{"name": pattern},
			{"company": pattern},
			{"email": pattern},
		}
	}

	return filter
}

// ListClients trả về danh sách client theo status/search, sắp theo streakDays giảm dần.
func (s *ClientService) ListClients(ctx context.Context, status, search string) ([]clientmodels.Client, error) {
	opts := options.Find().SetSort(bson.D{{Key: "streakDays", Value: -1}})
	return s.Find(ctx, BuildClientFilter(status, search), opts)
}

// ComputeStats tính số liệu tổng hợp từ danh sách client.
func ComputeStats(clients []clientmodels.Client) clientdto.ClientStatsResponse {
	stats := clientdto.ClientStatsResponse{
		TotalClients: int64(len(clients)),
	}

	paidClients := int64(0)
	for _, c := range clients {
		stats.TotalOutstanding += c.CurrentBalance
		if c.StreakDays >= 1 && c.StreakDays <= clientmodels.StreakCriticalMaxDays {
			stats.AtRisk++
		}
		if c.Status == clientmodels.ClientStatusSuspended {
			stats.Suspended++
		}
		if c.CurrentBalance < c.PreviousBalance {
			paidClients++
		}
	}

	if stats.TotalClients > 0 {
		stats.CollectionRate = float64(paidClients) / float64(stats.TotalClients) * 100
	}

	return stats
}

// GetStats trả về số liệu tổng hợp trên toàn bộ client.
func (s *ClientService) GetStats(ctx context.Context) (*clientdto.ClientStatsResponse, error) {
	clients, err := s.Find(ctx, nil, nil)
	if err != nil {
		return nil, err
	}
	stats := ComputeStats(clients)
	return &stats, nil
}

// GetClientDetail trả về client theo id kèm activity log và weekly snapshot, mới nhất trước.
func (s *ClientService) GetClientDetail(ctx context.Context, id primitive.ObjectID) (*clientdto.ClientDetailResponse, error) {
	client, err := s.FindOneById(ctx, id)
	if err != nil {
		return nil, err
	}

	activityLogs, err := s.activityLogService.FindByClient(ctx, client.ID)
	if err != nil {
		return nil, err
	}

	snapshots, err := s.snapshotService.FindByClient(ctx, client.ID)
	if err != nil {
		return nil, err
	}

	return &clientdto.ClientDetailResponse{
		Client:          client,
		ActivityLog:     activityLogs,
		WeeklySnapshots: snapshots,
	}, nil
}
