package service

import (
	"skill_assessment_backend/internal/model"
	"sort"
)

// RankMode 排名算法选择
type RankMode string

const (
	// RankModeLegacy 沿用旧版算法：降序排序后查找“未排序总体中第一个得分”的位置，
	// 与被查询用户的得分无关，待产品确认后再切换
	RankModeLegacy RankMode = "legacy"
	// RankModeCorrected 1 + 总体中严格高于用户平均分的会话数
	RankModeCorrected RankMode = "corrected"
	// RankModeOriginal 先原地降序再定位首元素，首元素即最大值，非空总体恒为 1
	RankModeOriginal RankMode = "original"
)

func ParseRankMode(s string) RankMode {
	switch m := RankMode(s); m {
	case RankModeCorrected, RankModeOriginal:
		return m
	default:
		return RankModeLegacy
	}
}

// PopulationScores 每个已完成会话的未取整得分
func PopulationScores(sessions []model.QuizSession) []float64 {
	scores := make([]float64, len(sessions))
	for i := range sessions {
		scores[i] = ScoreSession(&sessions[i]).Ratio()
	}
	return scores
}

// Percentile 严格低于 userScore 的比例（0-100），总体为空时为 0
func Percentile(userScore int, population []float64) int {
	if len(population) == 0 {
		return 0
	}
	below := 0
	for _, s := range population {
		if s < float64(userScore) {
			below++
		}
	}
	return roundHalfUp(float64(below) / float64(len(population)) * 100)
}

func Rank(mode RankMode, userScore int, population []float64) int {
	switch mode {
	case RankModeCorrected:
		return correctedRank(userScore, population)
	case RankModeOriginal:
		if len(population) == 0 {
			return 0
		}
		return 1
	default:
		return legacyRank(population)
	}
}

func legacyRank(population []float64) int {
	if len(population) == 0 {
		return 0
	}
	first := population[0]
	sorted := make([]float64, len(population))
	copy(sorted, population)
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))
	for i, s := range sorted {
		if s == first {
			return i + 1
		}
	}
	return 0
}

func correctedRank(userScore int, population []float64) int {
	if len(population) == 0 {
		return 0
	}
	above := 0
	for _, s := range population {
		if s > float64(userScore) {
			above++
		}
	}
	return above + 1
}

func OverallAverage(population []float64) int {
	return roundHalfUp(mean(population))
}
