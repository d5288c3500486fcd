// Package models - Client thuộc domain Client (clients).
// Lưu khách nợ đã sync từ Xero (qua automation Make.com), dùng làm nguồn chính cho dashboard thu hồi nợ.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Client lưu một khách nợ (clients). Mọi thao tác webhook định danh client qua XeroContactId.
type Client struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	// Identity
	XeroContactId string `json:"xeroContactId" bson:"xeroContactId" index:"unique"` // Contact ID bên Xero, khóa duy nhất

	// Profile
	Name    string `json:"name" bson:"name"`
	Email   string `json:"email" bson:"email"`
	Phone   string `json:"phone,omitempty" bson:"phone,omitempty"`
	Company string `json:"company,omitempty" bson:"company,omitempty"`

	// Số dư nợ
	CurrentBalance  float64 `json:"currentBalance" bson:"currentBalance"`
	PreviousBalance float64 `json:"previousBalance" bson:"previousBalance"`
	WeekChange      float64 `json:"weekChange" bson:"weekChange"` // Delta số dư lần quan sát gần nhất

	// Theo dõi thu hồi
	StreakDays           int    `json:"streakDays" bson:"streakDays"`                                       // Số ngày nợ liên tiếp
	Status               string `json:"status" bson:"status" default:"current"`                             // current | warning | critical | suspended, suy ra từ StreakDays
	LastBalanceCheckDate int64  `json:"lastBalanceCheckDate,omitempty" bson:"lastBalanceCheckDate,omitempty"` // Unix ms, 0 = chưa từng
	LastPaymentDate      int64  `json:"lastPaymentDate,omitempty" bson:"lastPaymentDate,omitempty"`         // Unix ms, 0 = chưa từng
	LastContactDate      int64  `json:"lastContactDate,omitempty" bson:"lastContactDate,omitempty"`         // Unix ms, 0 = chưa từng
	LastCallOutcome      string `json:"lastCallOutcome,omitempty" bson:"lastCallOutcome,omitempty"`

	// Timestamps (persistence layer tự gán)
	CreatedAt int64 `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt int64 `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
