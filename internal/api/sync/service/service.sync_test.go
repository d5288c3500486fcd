// Package syncsvc - Test trigger webhook và vòng đời trạng thái in-progress.
package syncsvc

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"debt_recovery/internal/common"
)

func TestTriggerSync_ThieuCauHinh(t *testing.T) {
	s := NewSyncService(nil, "")
	err := s.TriggerSync(context.Background())
	if !errors.Is(err, common.ErrSyncNotConfigured) {
		t.Errorf("thiếu MAKE_SYNC_WEBHOOK_URL phải trả ErrSyncNotConfigured, got %v", err)
	}
	if s.InProgress() {
		t.Error("trigger thất bại không được đánh dấu in-progress")
	}
}

func TestTriggerSync_GoiWebhookThanhCong(t *testing.T) {
	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("webhook phải được gọi bằng POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q, muốn application/json", ct)
		}
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &gotBody); err != nil {
			t.Errorf("body không phải JSON: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s := NewSyncService(nil, srv.URL)
	if err := s.TriggerSync(context.Background()); err != nil {
		t.Fatalf("TriggerSync lỗi: %v", err)
	}

	ts, ok := gotBody["timestamp"]
	if !ok {
		t.Fatal("payload thiếu field timestamp")
	}
	if _, err := time.Parse(time.RFC3339, ts); err != nil {
		t.Errorf("timestamp %q không đúng định dạng RFC3339: %v", ts, err)
	}
	if !s.InProgress() {
		t.Error("trigger thành công phải đánh dấu in-progress")
	}
}

func TestTriggerSync_WebhookLoi(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	s := NewSyncService(nil, srv.URL)
	err := s.TriggerSync(context.Background())
	if !errors.Is(err, common.ErrUpstreamFailed) {
		t.Errorf("webhook trả non-2xx phải trả ErrUpstreamFailed, got %v", err)
	}
	if s.InProgress() {
		t.Error("trigger thất bại không được đánh dấu in-progress")
	}
}

func TestMarkCompleted_ChiNhanMarkerMoiHon(t *testing.T) {
	s := NewSyncService(nil, "http://example.invalid")
	start := time.Now().UnixMilli()
	s.mu.Lock()
	s.pendingStart = start
	s.mu.Unlock()

	// Marker cũ hơn trigger: bỏ qua
	s.markCompleted(start - 1000)
	if !s.InProgress() {
		t.Error("marker cũ hơn thời điểm trigger không được coi là hoàn tất")
	}

	// Marker đúng thời điểm trigger: vẫn bỏ qua (phải mới hơn strict)
	s.markCompleted(start)
	if !s.InProgress() {
		t.Error("marker trùng thời điểm trigger không được coi là hoàn tất")
	}

	// Marker mới hơn: hoàn tất
	s.markCompleted(start + 1000)
	if s.InProgress() {
		t.Error("marker mới hơn thời điểm trigger phải reset in-progress")
	}
}

func TestExpireStale_QuaHanMoiReset(t *testing.T) {
	s := NewSyncService(nil, "http://example.invalid")
	start := time.Now()
	s.mu.Lock()
	s.pendingStart = start.UnixMilli()
	s.mu.Unlock()

	// Chưa quá hạn
	if s.ExpireStale(start.Add(SyncCompletionWindow - time.Second)) {
		t.Error("chưa quá SyncCompletionWindow không được expire")
	}
	if !s.InProgress() {
		t.Error("trạng thái in-progress phải giữ nguyên khi chưa quá hạn")
	}

	// Quá hạn
	if !s.ExpireStale(start.Add(SyncCompletionWindow + time.Second)) {
		t.Error("quá SyncCompletionWindow phải expire")
	}
	if s.InProgress() {
		t.Error("expire phải reset in-progress")
	}

	// Không còn gì để expire
	if s.ExpireStale(start.Add(time.Hour)) {
		t.Error("không có trigger đang chờ thì ExpireStale phải trả false")
	}
}
