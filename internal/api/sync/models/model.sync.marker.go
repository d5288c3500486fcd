// Package models - SyncMarker thuộc domain Sync (sync_markers).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SyncMarkerKey là key của document marker duy nhất.
const SyncMarkerKey = "sync"

// SyncMarker lưu thời điểm lần sync ngoài hoàn tất gần nhất.
// Một document logic duy nhất (key cố định), ghi đè qua upsert.
type SyncMarker struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Key         string `json:"key" bson:"key" index:"unique"`
	CompletedAt int64  `json:"completedAt" bson:"completedAt"` // Unix ms, 0 = chưa từng hoàn tất

	CreatedAt int64 `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt int64 `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
