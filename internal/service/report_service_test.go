package service

import (
	"context"
	"encoding/json"
	"errors"
	"skill_assessment_backend/internal/config"
	"skill_assessment_backend/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestReportService(store SessionStore, cache PopulationScoreCache, rankMode string, ttlSeconds int) *ReportService {
	svc := NewReportService(store, cache, config.ReportConfig{
		RankMode:                  rankMode,
		PopulationCacheTTLSeconds: ttlSeconds,
	})
	svc.Now = fixedClock
	return svc
}

// reportFixture 用户 1 的四个已完成会话跨越不同时间窗口
func reportFixture() *memorySessionStore {
	inProgress := completedSession(5, 1, 10, "JavaScript", daysAgo(1), 1, 1)
	inProgress.EndTime = nil

	return newMemorySessionStore(
		completedSession(1, 1, 10, "JavaScript", daysAgo(20), 2, 2),
		completedSession(2, 1, 10, "JavaScript", daysAgo(3), 1, 2),
		completedSession(3, 1, 20, "React", daysAgo(31), 0, 1),
		completedSession(4, 1, 20, "React", daysAgo(60), 3, 4),
		inProgress,
		completedSession(6, 2, 10, "JavaScript", daysAgo(2), 1, 1),
	)
}

func topicIDs(report *model.QuizReport) []uint {
	ids := make([]uint, 0, len(report.TopicWise))
	for _, tw := range report.TopicWise {
		ids = append(ids, tw.QuizID)
	}
	return ids
}

func TestGetUserReport_AllTime(t *testing.T) {
	svc := newTestReportService(reportFixture(), nil, "legacy", 0)

	report, err := svc.GetUserReport(context.Background(), 1, model.FilterAll)
	require.NoError(t, err)

	assert.Equal(t, 4, report.TotalQuizzes)
	assert.Equal(t, []uint{2, 1, 3, 4}, topicIDs(report), "newest first, in-progress excluded")
	assert.Equal(t, 56, report.AverageScore)
	assert.Equal(t, 1, report.ExcellentScore)

	first := report.TopicWise[0]
	assert.Equal(t, "JavaScript", first.SkillName)
	assert.Equal(t, uint(10), first.SkillID)
	assert.Equal(t, 1, first.Correct)
	assert.Equal(t, 2, first.Total)
	assert.Equal(t, 50, first.ScorePercent)
	assert.Equal(t, "2025-06-12T12:00:00.000Z", first.CreatedAt)

	require.Len(t, report.SkillGaps, 2)
	assert.Equal(t, "React", report.SkillGaps[0].SkillName)
	assert.Equal(t, 38, report.SkillGaps[0].AverageScore)
	assert.Equal(t, model.StatusCritical, report.SkillGaps[0].Status)
	assert.Equal(t, "JavaScript", report.SkillGaps[1].SkillName)
	assert.Equal(t, 75, report.SkillGaps[1].AverageScore)
	assert.Equal(t, model.StatusGood, report.SkillGaps[1].Status)
	assert.Equal(t, model.TrendStable, report.SkillGaps[1].Trend)
	assert.Equal(t, "2025-06-12T12:00:00.000Z", report.SkillGaps[1].LastAttempted)

	assert.Equal(t, model.RecentActivity{Week: 1, Month: 2, Total: 4}, report.RecentActivity)
}

func TestGetUserReport_Filters(t *testing.T) {
	tests := []struct {
		filter  model.TimeFilter
		wantIDs []uint
	}{
		{model.FilterWeek, []uint{2}},
		// 自然月窗口包含 31 天前的会话，而 recentActivity.month 的 30 天窗口不包含
		{model.FilterMonth, []uint{2, 1, 3}},
		{model.FilterAll, []uint{2, 1, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(string(tt.filter), func(t *testing.T) {
			svc := newTestReportService(reportFixture(), nil, "legacy", 0)

			report, err := svc.GetUserReport(context.Background(), 1, tt.filter)
			require.NoError(t, err)

			assert.Equal(t, tt.wantIDs, topicIDs(report))
			assert.Equal(t, len(tt.wantIDs), report.TotalQuizzes)
			assert.Equal(t, model.RecentActivity{Week: 1, Month: 2, Total: 4}, report.RecentActivity,
				"recent activity ignores the requested filter")
		})
	}
}

func TestGetUserReport_AverageRoundTrip(t *testing.T) {
	svc := newTestReportService(reportFixture(), nil, "legacy", 0)

	report, err := svc.GetUserReport(context.Background(), 1, model.FilterAll)
	require.NoError(t, err)

	var sum float64
	for _, tw := range report.TopicWise {
		sum += float64(tw.ScorePercent)
	}
	assert.Equal(t, roundHalfUp(sum/float64(len(report.TopicWise))), report.AverageScore)
}

func TestGetUserReport_NoSessions(t *testing.T) {
	svc := newTestReportService(newMemorySessionStore(), nil, "legacy", 0)

	report, err := svc.GetUserReport(context.Background(), 42, model.FilterAll)
	require.NoError(t, err)

	assert.Equal(t, 0, report.TotalQuizzes)
	assert.Equal(t, 0, report.AverageScore)
	assert.Equal(t, 0, report.ExcellentScore)
	assert.NotNil(t, report.TopicWise)
	assert.Empty(t, report.TopicWise)
	assert.NotNil(t, report.SkillGaps)
	assert.Empty(t, report.SkillGaps)
	assert.Equal(t, model.RecentActivity{}, report.RecentActivity)

	data, err := json.Marshal(report)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"totalQuizzes": 0,
		"averageScore": 0,
		"excellentScore": 0,
		"topicWise": [],
		"skillGaps": [],
		"recentActivity": {"week": 0, "month": 0, "total": 0}
	}`, string(data))
}

func TestGetUserReport_StoreFailure(t *testing.T) {
	store := reportFixture()
	store.err = errStoreDown
	svc := newTestReportService(store, nil, "legacy", 0)

	_, err := svc.GetUserReport(context.Background(), 1, model.FilterAll)
	assert.True(t, errors.Is(err, errStoreDown))
}

func TestGetSkillGaps(t *testing.T) {
	svc := newTestReportService(reportFixture(), nil, "legacy", 0)

	gaps, err := svc.GetSkillGaps(context.Background(), 1, model.FilterMonth)
	require.NoError(t, err)

	require.Len(t, gaps, 2)
	assert.Equal(t, "React", gaps[0].SkillName)
	assert.Equal(t, 0, gaps[0].AverageScore)
	assert.Equal(t, 1, gaps[0].QuizzesTaken)
	assert.Equal(t, "JavaScript", gaps[1].SkillName)
	assert.Equal(t, 2, gaps[1].QuizzesTaken)
}

func TestGetSkillGaps_MatchesUserReport(t *testing.T) {
	svc := newTestReportService(reportFixture(), nil, "legacy", 0)
	ctx := context.Background()

	for _, filter := range []model.TimeFilter{model.FilterWeek, model.FilterMonth, model.FilterAll} {
		report, err := svc.GetUserReport(ctx, 1, filter)
		require.NoError(t, err)
		gaps, err := svc.GetSkillGaps(ctx, 1, filter)
		require.NoError(t, err)

		assert.Equal(t, gaps, report.SkillGaps, "filter %s", filter)
	}
}

// comparativeFixture 总体得分 [50, 70, 90]，用户 1 平均 70
func comparativeFixture() *memorySessionStore {
	return newMemorySessionStore(
		completedSession(1, 2, 10, "Go", daysAgo(3), 5, 10),
		completedSession(2, 1, 10, "Go", daysAgo(2), 7, 10),
		completedSession(3, 3, 10, "Go", daysAgo(1), 9, 10),
	)
}

func TestGetComparativeReport(t *testing.T) {
	tests := []struct {
		mode     string
		wantRank int
	}{
		{"legacy", 3},
		{"corrected", 2},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			svc := newTestReportService(comparativeFixture(), nil, tt.mode, 0)

			result, err := svc.GetComparativeReport(context.Background(), 1)
			require.NoError(t, err)

			assert.Equal(t, 70, result.UserAverage)
			assert.Equal(t, 70, result.OverallAverage)
			assert.Equal(t, 33, result.Percentile)
			assert.Equal(t, tt.wantRank, result.Rank)
		})
	}
}

func TestGetComparativeReport_EmptyPopulation(t *testing.T) {
	svc := newTestReportService(newMemorySessionStore(), nil, "corrected", 0)

	result, err := svc.GetComparativeReport(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, model.ComparativeReport{}, *result)
}

func TestApplyConfigSwitchesRankMode(t *testing.T) {
	svc := newTestReportService(comparativeFixture(), nil, "legacy", 0)
	ctx := context.Background()

	result, err := svc.GetComparativeReport(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Rank)

	svc.ApplyConfig(config.ReportConfig{RankMode: "corrected"})

	result, err = svc.GetComparativeReport(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Rank)
}

func TestApplyConfigOriginalRankMode(t *testing.T) {
	svc := newTestReportService(comparativeFixture(), nil, "original", 0)

	result, err := svc.GetComparativeReport(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Rank)
	assert.Equal(t, RankModeOriginal, svc.CurrentRankMode())
}

func TestResolveFilter(t *testing.T) {
	svc := newTestReportService(newMemorySessionStore(), nil, "legacy", 0)

	assert.Equal(t, model.FilterAll, svc.ResolveFilter(""), "unset default falls back to all")
	assert.Equal(t, model.FilterAll, svc.ResolveFilter("bogus"))

	svc.ApplyConfig(config.ReportConfig{RankMode: "legacy", DefaultFilter: "month"})

	tests := []struct {
		raw  string
		want model.TimeFilter
	}{
		{"", model.FilterMonth},
		{"bogus", model.FilterMonth},
		{"week", model.FilterWeek},
		{"all", model.FilterAll},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.ResolveFilter(tt.raw))
		})
	}
}

func TestPopulationScoreCache(t *testing.T) {
	ctx := context.Background()

	t.Run("miss then hit", func(t *testing.T) {
		store := comparativeFixture()
		cache := &memoryScoreCache{}
		svc := newTestReportService(store, cache, "legacy", 60)

		_, err := svc.GetComparativeReport(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 1, cache.sets)
		assert.Equal(t, []float64{50, 70, 90}, cache.scores)

		_, err = svc.GetComparativeReport(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 1, store.allCompletedCalls, "second call served from cache")
	})

	t.Run("cached distribution is used", func(t *testing.T) {
		cache := &memoryScoreCache{scores: []float64{10, 20, 30, 40}, ok: true}
		svc := newTestReportService(comparativeFixture(), cache, "corrected", 60)

		result, err := svc.GetComparativeReport(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 100, result.Percentile)
		assert.Equal(t, 25, result.OverallAverage)
		assert.Equal(t, 1, result.Rank)
	})

	t.Run("read failure falls back to store", func(t *testing.T) {
		store := comparativeFixture()
		cache := &memoryScoreCache{getErr: errors.New("redis down")}
		svc := newTestReportService(store, cache, "legacy", 60)

		result, err := svc.GetComparativeReport(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 33, result.Percentile)
		assert.Equal(t, 1, store.allCompletedCalls)
	})

	t.Run("zero ttl disables cache", func(t *testing.T) {
		cache := &memoryScoreCache{scores: []float64{10}, ok: true}
		svc := newTestReportService(comparativeFixture(), cache, "legacy", 0)

		result, err := svc.GetComparativeReport(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 70, result.OverallAverage)
		assert.Equal(t, 0, cache.sets)
	})
}

func TestGetSessionReport(t *testing.T) {
	svc := newTestReportService(reportFixture(), nil, "legacy", 0)

	session, report, err := svc.GetSessionReport(context.Background(), 4)
	require.NoError(t, err)

	assert.Equal(t, uint(1), session.UserID)
	assert.Equal(t, model.SessionReport{
		QuizID:       4,
		Total:        4,
		Correct:      3,
		ScorePercent: 75,
		CreatedAt:    "2025-04-16T12:00:00.000Z",
	}, *report)

	_, _, err = svc.GetSessionReport(context.Background(), 999)
	assert.Error(t, err)
}
