package util

import (
	"encoding/json"

	"techbuddies/biz/infrastructure/util/log"
)

// JSONF 序列化为字符串, 用于日志
func JSONF(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		log.Error("JSONF marshal failed: %v", err)
		return ""
	}
	return string(data)
}
