package utility

import (
	"encoding/json"
)

// P2Float64 chuyển đổi giá trị parse từ JSON hoặc query string thành float64
func P2Float64(input interface{}) float64 {
	switch v := input.(type) {
	case json.Number:
		number, err := v.Float64()
		if err != nil {
			return 0
		}
		return number
	case string:
		number, err := json.Number(v).Float64()
		if err != nil {
			return 0
		}
		return number
	case float64:
		return v
	default:
		return 0
	}
}

// P2Int64 chuyển đổi giá trị parse từ JSON hoặc query string thành int64
func P2Int64(input interface{}) int64 {
	switch v := input.(type) {
	case json.Number:
		result, err := v.Int64()
		if err != nil {
			return 0
		}
		return result
	case string:
		result, err := json.Number(v).Int64()
		if err != nil {
			return 0
		}
		return result
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		// encoding/json decode số thành float64 khi không dùng UseNumber
		return int64(v)
	default:
		return 0
	}
}
