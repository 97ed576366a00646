package util

import (
	"strconv"
	"time"
)

// ParseUintParam 解析路径参数中的 ID，0 或非法值返回 false
func ParseUintParam(s string) (uint, bool) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func FormatISOTime(t time.Time) string {
	return t.UTC().Format(ISOTimeFormat)
}
