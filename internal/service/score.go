package service

import (
	"math"
	"skill_assessment_backend/internal/model"
)

// SessionScore 由原始答案推导出的会话得分，不使用 QuizSession.TotalScore 缓存
type SessionScore struct {
	Correct int
	Total   int
}

func ScoreAnswers(answers []model.QuizAnswer) SessionScore {
	score := SessionScore{Total: len(answers)}
	for _, a := range answers {
		if a.IsCorrect {
			score.Correct++
		}
	}
	return score
}

func ScoreSession(session *model.QuizSession) SessionScore {
	return ScoreAnswers(session.Answers)
}

// Ratio 未取整的百分比，无答案时为 0
func (s SessionScore) Ratio() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Total) * 100
}

// Percent 四舍五入后的整数百分比
func (s SessionScore) Percent() int {
	return roundHalfUp(s.Ratio())
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

// mean 空切片返回 0
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
