package global

import (
	"testing"
)

func TestValidateNoXSS_ChanPatternNguyHiem(t *testing.T) {
	InitValidator()

	cases := []struct {
		value string
		valid bool
	}{
		{"Acme Corp", true},
		{"O'Brien & Sons", true},
		{"Client said they'll pay Friday", true},
		{"<script>alert(1)</script>", false},
		{"javascript:alert(1)", false},
		{"<img onerror=alert(1)>", false},
	}
	for _, c := range cases {
		err := Validate.Var(c.value, "no_xss")
		if (err == nil) != c.valid {
			t.Errorf("no_xss(%q): valid = %v, muốn %v", c.value, err == nil, c.valid)
		}
	}
}

func TestValidateNoSQLInjection_ChanKyTuNguyHiem(t *testing.T) {
	InitValidator()

	cases := []struct {
		value string
		valid bool
	}{
		{"a1b2c3d4-e5f6-7890-abcd-ef1234567890", true},
		{"contact_123", true},
		{"x' OR '1'='1", false},
		{"id; DROP TABLE clients", false},
	}
	for _, c := range cases {
		err := Validate.Var(c.value, "no_sql_injection")
		if (err == nil) != c.valid {
			t.Errorf("no_sql_injection(%q): valid = %v, muốn %v", c.value, err == nil, c.valid)
		}
	}
}

func TestValidateActivityType(t *testing.T) {
	InitValidator()

	for _, v := range []string{"call", "sms", "email", "suspension"} {
		if err := Validate.Var(v, "activity_type"); err != nil {
			t.Errorf("activity_type(%q) phải hợp lệ: %v", v, err)
		}
	}
	for _, v := range []string{"payment", "visit", ""} {
		if err := Validate.Var(v, "activity_type"); err == nil {
			t.Errorf("activity_type(%q) phải bị từ chối", v)
		}
	}
}

func TestValidateClientStatus(t *testing.T) {
	InitValidator()

	for _, v := range []string{"all", "current", "warning", "critical", "suspended"} {
		if err := Validate.Var(v, "client_status"); err != nil {
			t.Errorf("client_status(%q) phải hợp lệ: %v", v, err)
		}
	}
	if err := Validate.Var("overdue", "client_status"); err == nil {
		t.Errorf("client_status(overdue) phải bị từ chối")
	}
}
