package database

import (
	"reflect"
	"testing"
	"time"

	webhookmodels "debt_recovery/internal/api/webhook/models"
)

func TestBsonFieldName_BoOption(t *testing.T) {
	cases := []struct {
		tag  string
		want string
	}{
		{"xeroContactId,omitempty", "xeroContactId"},
		{"receivedAt", "receivedAt"},
		{"_id,omitempty", "_id"},
		{"", ""},
		{"-", "-"},
	}
	for _, c := range cases {
		if got := bsonFieldName(c.tag); got != c.want {
			t.Errorf("bsonFieldName(%q) = %q, muốn %q", c.tag, got, c.want)
		}
	}
}

func TestParseIndexTag_TTL(t *testing.T) {
	configs := parseIndexTag("ttl:2592000")
	if len(configs) != 1 {
		t.Fatalf("số config = %d, muốn 1", len(configs))
	}
	if got := configs[0]["ttl"]; got != "2592000" {
		t.Errorf("ttl = %q, muốn %q", got, "2592000")
	}
}

func TestParseOrder_GiamDan(t *testing.T) {
	if got := parseOrder("single:1,order:-1"); got != -1 {
		t.Errorf("parseOrder(single:1,order:-1) = %d, muốn -1", got)
	}
	if got := parseOrder("single:1"); got != 1 {
		t.Errorf("parseOrder(single:1) = %d, muốn 1", got)
	}
}

// Key của index lấy từ bson tag phải không dính option omitempty,
// và webhook log phải có TTL index trên field kiểu date.
func TestWebhookLogIndexTags(t *testing.T) {
	modelType := reflect.TypeOf(webhookmodels.WebhookLog{})

	var ttlField string
	for i := 0; i < modelType.NumField(); i++ {
		field := modelType.Field(i)
		tag, ok := field.Tag.Lookup("index")
		if !ok {
			continue
		}

		key := bsonFieldName(field.Tag.Get("bson"))
		if key == "" || key == "-" {
			t.Errorf("field %s có index tag nhưng bson tag rỗng", field.Name)
		}
		for _, r := range key {
			if r == ',' {
				t.Errorf("key index %q của field %s chứa option bson", key, field.Name)
			}
		}

		for _, config := range parseIndexTag(tag) {
			if v, ok := config["ttl"]; ok {
				ttlField = key
				if v != "2592000" {
					t.Errorf("ttl = %q, muốn 2592000 (30 ngày)", v)
				}
				if field.Type != reflect.TypeOf(time.Time{}) {
					t.Errorf("field TTL %s phải là time.Time để Mongo expire được", field.Name)
				}
			}
		}
	}

	if ttlField != "expireAt" {
		t.Errorf("TTL index nằm trên %q, muốn %q", ttlField, "expireAt")
	}
}
