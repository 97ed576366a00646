package service

import (
	"skill_assessment_backend/internal/model"
	"skill_assessment_backend/internal/util"
	"sort"
	"time"
)

const (
	excellentThreshold        = 90
	goodThreshold             = 75
	needsImprovementThreshold = 60

	minSessionsForTrend = 4
	trendDelta          = 5.0
)

// skillGroup 单个技能下按时间排序的会话得分，技能信息按值保存一次
type skillGroup struct {
	skillID   uint
	skillName string
	scores    []float64
	lastStart time.Time
}

// AnalyzeSkillGaps 按技能聚合会话。sessions 需按开始时间升序排列。
// 结果按平均分升序，最薄弱的技能在前；同分时保持首次出现的顺序。
func AnalyzeSkillGaps(sessions []model.QuizSession) []model.SkillGap {
	groups := make(map[uint]*skillGroup)
	var order []uint

	for i := range sessions {
		s := &sessions[i]
		g, ok := groups[s.SkillID]
		if !ok {
			g = &skillGroup{skillID: s.SkillID, skillName: s.Skill.Name}
			groups[s.SkillID] = g
			order = append(order, s.SkillID)
		}
		g.scores = append(g.scores, ScoreSession(s).Ratio())
		g.lastStart = s.StartTime
	}

	gaps := make([]model.SkillGap, 0, len(order))
	for _, id := range order {
		g := groups[id]
		avg := roundHalfUp(mean(g.scores))
		gaps = append(gaps, model.SkillGap{
			SkillID:       g.skillID,
			SkillName:     g.skillName,
			AverageScore:  avg,
			QuizzesTaken:  len(g.scores),
			LastAttempted: util.FormatISOTime(g.lastStart),
			Status:        ClassifyStatus(avg),
			Trend:         DetectTrend(g.scores),
		})
	}

	sort.SliceStable(gaps, func(i, j int) bool {
		return gaps[i].AverageScore < gaps[j].AverageScore
	})
	return gaps
}

func ClassifyStatus(averageScore int) model.SkillStatus {
	switch {
	case averageScore >= excellentThreshold:
		return model.StatusExcellent
	case averageScore >= goodThreshold:
		return model.StatusGood
	case averageScore >= needsImprovementThreshold:
		return model.StatusNeedsImprovement
	default:
		return model.StatusCritical
	}
}

// DetectTrend 比较前后两半的平均分，少于 4 次会话时视为 stable
func DetectTrend(scores []float64) model.Trend {
	if len(scores) < minSessionsForTrend {
		return model.TrendStable
	}

	mid := len(scores) / 2
	first := mean(scores[:mid])
	second := mean(scores[mid:])

	switch {
	case second > first+trendDelta:
		return model.TrendImproving
	case second < first-trendDelta:
		return model.TrendDeclining
	default:
		return model.TrendStable
	}
}
