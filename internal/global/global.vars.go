package global

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"

	"debt_recovery/config"
	"debt_recovery/internal/registry"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	Clients         string // Tên collection cho khách nợ (clients)
	ActivityLogs    string // Tên collection cho lịch sử hoạt động thu hồi nợ (append-only)
	WeeklySnapshots string // Tên collection cho snapshot số dư theo tuần (append-only)
	SyncMarkers     string // Tên collection cho marker thời điểm sync hoàn tất
	WebhookLogs     string // Tên collection cho log webhook nhận từ automation
}

// Các biến toàn cục
var Validate *validator.Validate                                         // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client                                        // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration                           // Cấu hình của server
var MongoDB_ColNames MongoDB_CollectionName = *new(MongoDB_CollectionName) // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases
