package util

// ISOTimeFormat 报告中时间戳统一使用 UTC 毫秒精度 ISO-8601
const ISOTimeFormat = "2006-01-02T15:04:05.000Z07:00"

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

// Redis 缓存键
const (
	PopulationScoresCacheKey = "skill_assessment:report:population_scores"
)
