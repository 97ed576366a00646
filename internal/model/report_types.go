package model

// TimeFilter 报告时间窗口
type TimeFilter string

const (
	FilterWeek  TimeFilter = "week"
	FilterMonth TimeFilter = "month"
	FilterAll   TimeFilter = "all"
)

// SkillStatus 技能掌握程度分级
type SkillStatus string

const (
	StatusExcellent        SkillStatus = "excellent"
	StatusGood             SkillStatus = "good"
	StatusNeedsImprovement SkillStatus = "needs-improvement"
	StatusCritical         SkillStatus = "critical"
)

// Trend 前后半段得分对比得出的趋势
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendDeclining Trend = "declining"
	TrendStable    Trend = "stable"
)

// TopicWiseReport 单次会话的得分摘要
type TopicWiseReport struct {
	QuizID       uint   `json:"quizId"`
	SkillName    string `json:"skillName"`
	SkillID      uint   `json:"skillId"`
	Correct      int    `json:"correct"`
	Total        int    `json:"total"`
	ScorePercent int    `json:"scorePercent"`
	CreatedAt    string `json:"createdAt"`
}

// SkillGap 用户在某技能上的聚合表现
type SkillGap struct {
	SkillID       uint        `json:"skillId"`
	SkillName     string      `json:"skillName"`
	AverageScore  int         `json:"averageScore"`
	QuizzesTaken  int         `json:"quizzesTaken"`
	LastAttempted string      `json:"lastAttempted"`
	Status        SkillStatus `json:"status"`
	Trend         Trend       `json:"trend"`
}

// RecentActivity 最近 7 天 / 30 天 / 全部已完成会话数
type RecentActivity struct {
	Week  int64 `json:"week"`
	Month int64 `json:"month"`
	Total int64 `json:"total"`
}

// QuizReport 用户报告完整响应
type QuizReport struct {
	TotalQuizzes   int               `json:"totalQuizzes"`
	AverageScore   int               `json:"averageScore"`
	ExcellentScore int               `json:"excellentScore"`
	TopicWise      []TopicWiseReport `json:"topicWise"`
	SkillGaps      []SkillGap        `json:"skillGaps"`
	RecentActivity RecentActivity    `json:"recentActivity"`
}

// ComparativeReport 用户平均分在全体已完成会话中的位置
type ComparativeReport struct {
	UserAverage    int `json:"userAverage"`
	OverallAverage int `json:"overallAverage"`
	Percentile     int `json:"percentile"`
	Rank           int `json:"rank"`
}

// SessionReport 单个会话的得分
type SessionReport struct {
	QuizID       uint   `json:"quizId"`
	Total        int    `json:"total"`
	Correct      int    `json:"correct"`
	ScorePercent int    `json:"scorePercent"`
	CreatedAt    string `json:"createdAt"`
}

// QuizHistoryItem 测验历史中的一条记录（包含进行中的会话）
type QuizHistoryItem struct {
	QuizID           uint    `json:"quizId"`
	SkillName        string  `json:"skillName"`
	SkillDescription string  `json:"skillDescription"`
	Total            int     `json:"total"`
	Correct          int     `json:"correct"`
	ScorePercent     float64 `json:"scorePercent"`
	Completed        bool    `json:"completed"`
	CreatedAt        string  `json:"createdAt"`
}

// QuizHistory 用户全部测验历史
type QuizHistory struct {
	TotalQuizzes   int               `json:"totalQuizzes"`
	AverageScore   int               `json:"averageScore"`
	ExcellentScore int               `json:"excellentScore"`
	TopicWise      []QuizHistoryItem `json:"topicWise"`
}

// AnswerResult 提交答案后的判定结果
type AnswerResult struct {
	IsCorrect  bool `json:"isCorrect"`
	TotalScore int  `json:"totalScore"`
}
