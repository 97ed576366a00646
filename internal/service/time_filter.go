package service

import (
	"skill_assessment_backend/internal/model"
	"strings"
	"time"
)

const (
	recentWeekWindow  = 7 * 24 * time.Hour
	recentMonthWindow = 30 * 24 * time.Hour
)

// ParseTimeFilter 空值或未知值按 all 处理
func ParseTimeFilter(s string) model.TimeFilter {
	return ParseTimeFilterOr(s, model.FilterAll)
}

// ParseTimeFilterOr 空值或未知值返回 fallback
func ParseTimeFilterOr(s string, fallback model.TimeFilter) model.TimeFilter {
	switch f := model.TimeFilter(strings.ToLower(strings.TrimSpace(s))); f {
	case model.FilterWeek, model.FilterMonth, model.FilterAll:
		return f
	default:
		return fallback
	}
}

// FilterStart 返回时间窗口下界，all 返回 nil。
// month 按自然月回退（与 recentActivity 的固定 30 天窗口不同）。
func FilterStart(filter model.TimeFilter, now time.Time) *time.Time {
	var start time.Time
	switch filter {
	case model.FilterWeek:
		start = now.AddDate(0, 0, -7)
	case model.FilterMonth:
		start = now.AddDate(0, -1, 0)
	default:
		return nil
	}
	return &start
}
