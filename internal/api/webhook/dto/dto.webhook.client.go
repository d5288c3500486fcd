// Package webhookdto chứa DTO cho domain Webhook.
// File: dto.webhook.client.go
package webhookdto

// SyncClientItem là một client trong payload sync-clients.
// Payload đến từ automation bên ngoài nên các field text đều qua no_xss,
// field định danh qua no_sql_injection (ID hợp lệ không chứa quote hay ';').
type SyncClientItem struct {
	XeroContactId  string  `json:"xeroContactId" validate:"required,no_sql_injection"` // ID contact bên Xero, key định danh
	Name           string  `json:"name" validate:"required,no_xss"`                    // Tên khách nợ
	Email          string  `json:"email,omitempty" validate:"omitempty,no_xss"`        // Email liên hệ
	Phone          string  `json:"phone,omitempty" validate:"omitempty,no_xss"`        // Số điện thoại
	Company        string  `json:"company,omitempty" validate:"omitempty,no_xss"`      // Tên công ty
	CurrentBalance float64 `json:"currentBalance"`                                     // Số dư nợ hiện tại từ Xero
}

// SyncClientsRequest là payload của POST /webhooks/sync-clients.
type SyncClientsRequest struct {
	Clients []SyncClientItem `json:"clients" validate:"required,min=1,dive"` // Danh sách client từ Xero
}

// UpdatePaymentRequest là payload của POST /webhooks/update-payment.
type UpdatePaymentRequest struct {
	XeroContactId string  `json:"xeroContactId" validate:"required,no_sql_injection"` // ID contact bên Xero
	NewBalance    float64 `json:"newBalance"`                                         // Số dư nợ sau thanh toán
	PaymentAmount float64 `json:"paymentAmount" validate:"gte=0"`                     // Số tiền thanh toán
}

// LogActivityRequest là payload của POST /webhooks/log-activity.
type LogActivityRequest struct {
	XeroContactId string `json:"xeroContactId" validate:"required,no_sql_injection"` // ID contact bên Xero
	ActivityType  string `json:"activityType" validate:"required,activity_type"`     // Loại hoạt động thu hồi
	Outcome       string `json:"outcome,omitempty" validate:"omitempty,no_xss"`      // Kết quả (với call: nội dung cuộc gọi)
	RecordingUrl  string `json:"recordingUrl,omitempty" validate:"omitempty,no_xss"` // Link ghi âm (với call)
	Notes         string `json:"notes,omitempty" validate:"omitempty,no_xss"`        // Ghi chú thêm
}
