package service

import (
	"context"
	"skill_assessment_backend/internal/config"
	"skill_assessment_backend/internal/model"
	"skill_assessment_backend/internal/repository"
	"skill_assessment_backend/internal/util"
	"skill_assessment_backend/pkg/logger"
	"skill_assessment_backend/pkg/monitoring"
	"skill_assessment_backend/pkg/tracing"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// SessionStore 报告计算所需的只读会话查询
type SessionStore interface {
	FindCompletedByUser(ctx context.Context, userID uint, since *time.Time, order repository.SortOrder) ([]model.QuizSession, error)
	CountCompletedByUser(ctx context.Context, userID uint, since *time.Time) (int64, error)
	FindAllCompleted(ctx context.Context) ([]model.QuizSession, error)
	FindByID(ctx context.Context, id uint) (*model.QuizSession, error)
}

// PopulationScoreCache 全体得分分布缓存，可为空
type PopulationScoreCache interface {
	GetPopulationScores(ctx context.Context) ([]float64, bool, error)
	SetPopulationScores(ctx context.Context, scores []float64, ttl time.Duration) error
}

type ReportService struct {
	Sessions SessionStore
	Cache    PopulationScoreCache
	Now      func() time.Time

	mu            sync.RWMutex
	rankMode      RankMode
	cacheTTL      time.Duration
	defaultFilter model.TimeFilter
}

func NewReportService(sessions SessionStore, cache PopulationScoreCache, cfg config.ReportConfig) *ReportService {
	s := &ReportService{
		Sessions: sessions,
		Cache:    cache,
		Now:      time.Now,
	}
	s.ApplyConfig(cfg)
	return s
}

// ApplyConfig 配置热更新回调
func (s *ReportService) ApplyConfig(cfg config.ReportConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rankMode = ParseRankMode(cfg.RankMode)
	s.cacheTTL = cfg.PopulationCacheTTL()
	s.defaultFilter = ParseTimeFilter(cfg.DefaultFilter)
}

// ResolveFilter 解析请求中的 filter，缺省或无法识别时使用配置的默认窗口
func (s *ReportService) ResolveFilter(raw string) model.TimeFilter {
	s.mu.RLock()
	fallback := s.defaultFilter
	s.mu.RUnlock()
	return ParseTimeFilterOr(raw, fallback)
}

func (s *ReportService) CurrentRankMode() RankMode {
	mode, _ := s.settings()
	return mode
}

func (s *ReportService) settings() (RankMode, time.Duration) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rankMode, s.cacheTTL
}

// GetUserReport 生成用户报告。topicWise 与 skillGaps 来自同一次查询结果，
// recentActivity 始终以当前时间为基准，不受 filter 影响。
func (s *ReportService) GetUserReport(ctx context.Context, userID uint, filter model.TimeFilter) (report *model.QuizReport, err error) {
	start := time.Now()
	ctx, span := tracing.StartSpan(ctx, "ReportService.GetUserReport",
		attribute.Int("user.id", int(userID)), attribute.String("report.filter", string(filter)))
	defer func() {
		tracing.EndSpan(span, err)
		monitoring.ObserveReport("user", string(filter), start, err)
	}()

	now := s.Now()
	sessions, err := s.Sessions.FindCompletedByUser(ctx, userID, FilterStart(filter, now), repository.OrderDesc)
	if err != nil {
		return nil, err
	}

	report = &model.QuizReport{
		TopicWise: make([]model.TopicWiseReport, 0, len(sessions)),
	}

	var total int
	for i := range sessions {
		sess := &sessions[i]
		score := ScoreSession(sess)
		percent := score.Percent()

		report.TopicWise = append(report.TopicWise, model.TopicWiseReport{
			QuizID:       sess.ID,
			SkillName:    sess.Skill.Name,
			SkillID:      sess.SkillID,
			Correct:      score.Correct,
			Total:        score.Total,
			ScorePercent: percent,
			CreatedAt:    util.FormatISOTime(sess.StartTime),
		})

		total += percent
		if percent >= excellentThreshold {
			report.ExcellentScore++
		}
	}

	report.TotalQuizzes = len(sessions)
	if report.TotalQuizzes > 0 {
		report.AverageScore = roundHalfUp(float64(total) / float64(report.TotalQuizzes))
	}

	report.SkillGaps = AnalyzeSkillGaps(chronological(sessions))

	report.RecentActivity, err = s.recentActivity(ctx, userID, now)
	if err != nil {
		return nil, err
	}

	logger.Log.Debug("User report generated",
		zap.Uint("user_id", userID),
		zap.String("filter", string(filter)),
		zap.Int("quizzes", report.TotalQuizzes),
		zap.Int("skills", len(report.SkillGaps)),
	)

	return report, nil
}

// GetSkillGaps 单独的技能差距分析
func (s *ReportService) GetSkillGaps(ctx context.Context, userID uint, filter model.TimeFilter) (gaps []model.SkillGap, err error) {
	start := time.Now()
	ctx, span := tracing.StartSpan(ctx, "ReportService.GetSkillGaps",
		attribute.Int("user.id", int(userID)), attribute.String("report.filter", string(filter)))
	defer func() {
		tracing.EndSpan(span, err)
		monitoring.ObserveReport("skill_gaps", string(filter), start, err)
	}()

	sessions, err := s.Sessions.FindCompletedByUser(ctx, userID, FilterStart(filter, s.Now()), repository.OrderAsc)
	if err != nil {
		return nil, err
	}
	return AnalyzeSkillGaps(sessions), nil
}

// GetComparativeReport 将用户平均分与全体已完成会话的得分分布比较
func (s *ReportService) GetComparativeReport(ctx context.Context, userID uint) (result *model.ComparativeReport, err error) {
	start := time.Now()
	ctx, span := tracing.StartSpan(ctx, "ReportService.GetComparativeReport", attribute.Int("user.id", int(userID)))
	defer func() {
		tracing.EndSpan(span, err)
		monitoring.ObserveReport("comparative", string(model.FilterAll), start, err)
	}()

	userReport, err := s.GetUserReport(ctx, userID, model.FilterAll)
	if err != nil {
		return nil, err
	}

	population, err := s.populationScores(ctx)
	if err != nil {
		return nil, err
	}

	mode, _ := s.settings()
	result = &model.ComparativeReport{
		UserAverage:    userReport.AverageScore,
		OverallAverage: OverallAverage(population),
		Percentile:     Percentile(userReport.AverageScore, population),
		Rank:           Rank(mode, userReport.AverageScore, population),
	}

	logger.Log.Debug("Comparative report generated",
		zap.Uint("user_id", userID),
		zap.String("rank_mode", string(mode)),
		zap.Int("population", len(population)),
	)

	return result, nil
}

// GetSessionReport 单个会话的得分
func (s *ReportService) GetSessionReport(ctx context.Context, sessionID uint) (*model.QuizSession, *model.SessionReport, error) {
	session, err := s.Sessions.FindByID(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}

	score := ScoreSession(session)
	return session, &model.SessionReport{
		QuizID:       session.ID,
		Total:        score.Total,
		Correct:      score.Correct,
		ScorePercent: score.Percent(),
		CreatedAt:    util.FormatISOTime(session.StartTime),
	}, nil
}

func (s *ReportService) recentActivity(ctx context.Context, userID uint, now time.Time) (model.RecentActivity, error) {
	var activity model.RecentActivity
	var err error

	weekStart := now.Add(-recentWeekWindow)
	if activity.Week, err = s.Sessions.CountCompletedByUser(ctx, userID, &weekStart); err != nil {
		return activity, err
	}

	monthStart := now.Add(-recentMonthWindow)
	if activity.Month, err = s.Sessions.CountCompletedByUser(ctx, userID, &monthStart); err != nil {
		return activity, err
	}

	if activity.Total, err = s.Sessions.CountCompletedByUser(ctx, userID, nil); err != nil {
		return activity, err
	}
	return activity, nil
}

// populationScores 优先读缓存；缓存故障只记录日志，不影响结果
func (s *ReportService) populationScores(ctx context.Context) ([]float64, error) {
	_, ttl := s.settings()
	useCache := s.Cache != nil && ttl > 0

	if useCache {
		scores, ok, err := s.Cache.GetPopulationScores(ctx)
		switch {
		case err != nil:
			monitoring.PopulationCacheLookups.WithLabelValues("error").Inc()
			logger.Log.Warn("Population score cache read failed", zap.Error(err))
		case ok:
			monitoring.PopulationCacheLookups.WithLabelValues("hit").Inc()
			return scores, nil
		default:
			monitoring.PopulationCacheLookups.WithLabelValues("miss").Inc()
		}
	}

	sessions, err := s.Sessions.FindAllCompleted(ctx)
	if err != nil {
		return nil, err
	}
	scores := PopulationScores(sessions)

	if useCache {
		if err := s.Cache.SetPopulationScores(ctx, scores, ttl); err != nil {
			logger.Log.Warn("Population score cache write failed", zap.Error(err))
		}
	}
	return scores, nil
}

// chronological 返回按开始时间升序的新切片，不修改入参
func chronological(desc []model.QuizSession) []model.QuizSession {
	asc := make([]model.QuizSession, len(desc))
	for i := range desc {
		asc[len(desc)-1-i] = desc[i]
	}
	return asc
}
