package utility

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestToMap_TheoBsonTag(t *testing.T) {
	type doc struct {
		Name    string `bson:"name"`
		Balance int64  `bson:"currentBalance"`
		Email   string `bson:"email,omitempty"`
	}

	m, err := ToMap(doc{Name: "Acme", Balance: 1500})
	if err != nil {
		t.Fatalf("ToMap lỗi: %v", err)
	}
	if m["name"] != "Acme" {
		t.Errorf("name = %v, muốn Acme", m["name"])
	}
	if P2Int64(m["currentBalance"]) != 1500 {
		t.Errorf("currentBalance = %v, muốn 1500", m["currentBalance"])
	}
	if _, ok := m["email"]; ok {
		t.Errorf("email rỗng với omitempty không được xuất hiện trong map")
	}
}

func TestToMap_TimeThanhDate(t *testing.T) {
	type doc struct {
		ExpireAt time.Time `bson:"expireAt"`
	}

	now := time.Now()
	m, err := ToMap(doc{ExpireAt: now})
	if err != nil {
		t.Fatalf("ToMap lỗi: %v", err)
	}
	dt, ok := m["expireAt"].(primitive.DateTime)
	if !ok {
		t.Fatalf("expireAt có kiểu %T, muốn primitive.DateTime", m["expireAt"])
	}
	if dt.Time().UnixMilli() != now.UnixMilli() {
		t.Errorf("expireAt = %v, muốn %v", dt.Time(), now)
	}
}
