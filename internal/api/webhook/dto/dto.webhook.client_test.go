// Package webhookdto - Test validate payload webhook inbound.
package webhookdto

import (
	"testing"

	"debt_recovery/internal/global"
)

func validClient() SyncClientItem {
	return SyncClientItem{
		XeroContactId:  "a1b2c3d4-e5f6-7890-abcd-ef1234567890",
		Name:           "O'Brien & Sons",
		Email:          "billing@obrien.example",
		CurrentBalance: 1500,
	}
}

func TestSyncClientItem_PayloadHopLe(t *testing.T) {
	global.InitValidator()

	if err := global.Validate.Struct(validClient()); err != nil {
		t.Errorf("payload hợp lệ bị từ chối: %v", err)
	}
}

func TestSyncClientItem_ChanXSSTrongName(t *testing.T) {
	global.InitValidator()

	item := validClient()
	item.Name = "<script>alert(1)</script>"
	if err := global.Validate.Struct(item); err == nil {
		t.Errorf("name chứa script phải bị từ chối")
	}
}

func TestSyncClientItem_ChanInjectionTrongContactId(t *testing.T) {
	global.InitValidator()

	item := validClient()
	item.XeroContactId = "x' OR '1'='1"
	if err := global.Validate.Struct(item); err == nil {
		t.Errorf("xeroContactId chứa quote phải bị từ chối")
	}
}

func TestLogActivityRequest_NotesTuDoVanHopLe(t *testing.T) {
	global.InitValidator()

	req := LogActivityRequest{
		XeroContactId: "contact_123",
		ActivityType:  "call",
		Outcome:       "Client said they'll pay Friday",
		Notes:         "Follow up next week; left voicemail",
	}
	if err := global.Validate.Struct(req); err != nil {
		t.Errorf("payload log-activity hợp lệ bị từ chối: %v", err)
	}
}
