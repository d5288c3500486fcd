// Package dto - DTO cho domain Client (dashboard).
package dto

import (
	clientmodels "debt_recovery/internal/api/client/models"
)

// ClientStatsResponse trả về số liệu tổng hợp cho dashboard.
type ClientStatsResponse struct {
	TotalOutstanding float64 `json:"totalOutstanding"` // Tổng currentBalance của tất cả client
	TotalClients     int64   `json:"totalClients"`
	AtRisk           int64   `json:"atRisk"`    // streakDays trong [1, 21]
	Suspended        int64   `json:"suspended"` // status = suspended
	CollectionRate   float64 `json:"collectionRate"` // % client có currentBalance < previousBalance
}

// ClientDetailResponse trả về client kèm toàn bộ lịch sử hoạt động và snapshot tuần (mới nhất trước).
type ClientDetailResponse struct {
	Client          clientmodels.Client           `json:"client"`
	ActivityLog     []clientmodels.ActivityLog    `json:"activityLog"`
	WeeklySnapshots []clientmodels.WeeklySnapshot `json:"weeklySnapshots"`
}
