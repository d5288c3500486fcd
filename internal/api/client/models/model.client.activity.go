// Package models - ActivityLog thuộc domain Client (activity_logs).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ActivityLog lưu một hoạt động thu hồi nợ (call, sms, email, payment, suspension).
// Append-only: không bao giờ update hay delete sau khi ghi.
type ActivityLog struct {
	ID       primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ClientID primitive.ObjectID `json:"clientId" bson:"clientId" index:"single"`

	ActivityType string `json:"activityType" bson:"activityType"` // call | sms | email | payment | suspension
	Outcome      string `json:"outcome,omitempty" bson:"outcome,omitempty"`
	RecordingUrl string `json:"recordingUrl,omitempty" bson:"recordingUrl,omitempty"`
	Notes        string `json:"notes,omitempty" bson:"notes,omitempty"`

	CreatedAt int64 `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt int64 `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
