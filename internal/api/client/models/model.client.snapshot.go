// Package models - WeeklySnapshot thuộc domain Client (weekly_snapshots).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WeeklySnapshot lưu số dư của một client tại đầu mỗi tuần ISO (UTC Monday 00:00).
// Append-only, duy nhất theo (clientId, weekStart).
type WeeklySnapshot struct {
	ID       primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ClientID primitive.ObjectID `json:"clientId" bson:"clientId" index:"single"`

	WeekStart   int64   `json:"weekStart" bson:"weekStart"` // Unix ms, đầu tuần ISO (UTC Monday 00:00)
	Balance     float64 `json:"balance" bson:"balance"`
	PaymentMade bool    `json:"paymentMade" bson:"paymentMade"` // Số dư giảm so với lần quan sát trước

	CreatedAt int64 `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt int64 `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
