// Package clientsvc - Test filter danh sách client và tính thống kê dashboard.
package clientsvc

import (
	"testing"

	clientmodels "debt_recovery/internal/api/client/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildClientFilter_StatusAll_KhongLoc(t *testing.T) {
	filter := BuildClientFilter("all", "")
	if len(filter) != 0 {
		t.Errorf("status=all không được tạo điều kiện lọc, got %v", filter)
	}

	filter = BuildClientFilter("", "")
	if len(filter) != 0 {
		t.Errorf("status rỗng không được tạo điều kiện lọc, got %v", filter)
	}
}

func TestBuildClientFilter_StatusCuThe(t *testing.T) {
	filter := BuildClientFilter(clientmodels.ClientStatusSuspended, "")
	if filter["status"] != clientmodels.ClientStatusSuspended {
		t.Errorf("filter[status] = %v, muốn suspended", filter["status"])
	}
	if _, ok := filter["$or"]; ok {
		t.Error("không có search thì không được tạo điều kiện $or")
	}
}

func TestBuildClientFilter_Search_EscapeRegex(t *testing.T) {
	filter := BuildClientFilter("all", "acme (test).com")

	or, ok := filter["$or"].([]bson.M)
	if !ok {
		t.Fatalf("filter thiếu $or, got %v", filter)
	}
	if len(or) != 3 {
		t.Fatalf("$or phải phủ name/company/email, got %d điều kiện", len(or))
	}

	pattern, ok := or[0]["name"].(primitive.Regex)
	if !ok {
		t.Fatalf("điều kiện name phải là primitive.Regex, got %T", or[0]["name"])
	}
	if pattern.Options != "i" {
		t.Errorf("regex phải không phân biệt hoa thường, options = %q", pattern.Options)
	}
	// Ký tự đặc biệt regex trong search phải được escape
	want := `acme \(test\)\.com`
	if pattern.Pattern != want {
		t.Errorf("pattern = %q, muốn %q", pattern.Pattern, want)
	}
}

func TestComputeStats_DanhSachRong(t *testing.T) {
	stats := ComputeStats(nil)
	if stats.TotalClients != 0 || stats.TotalOutstanding != 0 {
		t.Errorf("danh sách rỗng phải cho stats zero, got %+v", stats)
	}
	if stats.CollectionRate != 0 {
		t.Errorf("collectionRate phải là 0 khi không có client (không chia cho 0), got %v", stats.CollectionRate)
	}
}

func TestComputeStats_TinhDayDu(t *testing.T) {
	clients := []clientmodels.Client{
		// Đã trả nợ: current < previous, streak 0
		{CurrentBalance: 500, PreviousBalance: 1000, StreakDays: 0, Status: clientmodels.ClientStatusCurrent},
		// At risk: streak trong [1, 21]
		{CurrentBalance: 2000, PreviousBalance: 2000, StreakDays: 14, Status: clientmodels.ClientStatusWarning},
		{CurrentBalance: 3000, PreviousBalance: 2500, StreakDays: 21, Status: clientmodels.ClientStatusCritical},
		// Suspended: streak > 21, không tính at risk
		{CurrentBalance: 4000, PreviousBalance: 4000, StreakDays: 30, Status: clientmodels.ClientStatusSuspended},
	}

	stats := ComputeStats(clients)

	if stats.TotalClients != 4 {
		t.Errorf("totalClients = %d, muốn 4", stats.TotalClients)
	}
	if stats.TotalOutstanding != 9500 {
		t.Errorf("totalOutstanding = %v, muốn 9500", stats.TotalOutstanding)
	}
	if stats.AtRisk != 2 {
		t.Errorf("atRisk = %d, muốn 2 (streak 14 và 21)", stats.AtRisk)
	}
	if stats.Suspended != 1 {
		t.Errorf("suspended = %d, muốn 1", stats.Suspended)
	}
	if stats.CollectionRate != 25 {
		t.Errorf("collectionRate = %v, muốn 25 (1/4 client có current < previous)", stats.CollectionRate)
	}
}
