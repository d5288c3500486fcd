// Package dto - Các cấu trúc response cho domain Sync.
package dto

// LastSyncResponse là response của GET /sync/last.
// Timestamp theo Unix milliseconds như mọi timestamp khác của API,
// dashboard tự format sang ISO8601 khi hiển thị.
type LastSyncResponse struct {
	LastSync   int64 `json:"lastSync"`   // Unix ms lần sync hoàn tất gần nhất, 0 = chưa từng
	InProgress bool  `json:"inProgress"` // Có trigger nào đang chờ hoàn tất không
}
