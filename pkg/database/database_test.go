package database

import (
	"path/filepath"
	"skill_assessment_backend/internal/config"
	"skill_assessment_backend/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialector(t *testing.T) {
	_, err := dialector(&config.DatabaseConfig{Driver: "postgres"})
	assert.Error(t, err)

	d, err := dialector(&config.DatabaseConfig{Driver: "mysql", Host: "localhost", Port: 3306, DBName: "skills", Charset: "utf8mb4"})
	require.NoError(t, err)
	assert.Equal(t, "mysql", d.Name())

	d, err = dialector(&config.DatabaseConfig{Driver: "sqlite", Path: "data/test.db"})
	require.NoError(t, err)
	assert.Equal(t, "sqlite", d.Name())
}

func TestInitDBAndSeed(t *testing.T) {
	cfg := &config.DatabaseConfig{Driver: "sqlite", Path: filepath.Join(t.TempDir(), "seed.db")}
	db, err := InitDB(cfg, "release")
	require.NoError(t, err)

	require.NoError(t, Seed(db))

	var users, skills, questions, sessions int64
	require.NoError(t, db.Model(&model.User{}).Count(&users).Error)
	require.NoError(t, db.Model(&model.Skill{}).Count(&skills).Error)
	require.NoError(t, db.Model(&model.Question{}).Count(&questions).Error)
	require.NoError(t, db.Model(&model.QuizSession{}).Where("end_time IS NOT NULL").Count(&sessions).Error)

	assert.Equal(t, int64(len(seedUsers)), users)
	assert.Equal(t, int64(len(seedSkills)), skills)
	assert.Equal(t, int64(15), questions)
	assert.Positive(t, sessions)

	var admin model.User
	require.NoError(t, db.Where("role = ?", model.RoleAdmin).First(&admin).Error)
	assert.Equal(t, "admin@example.com", admin.Email)

	// 缓存的 total_score 与答案一致
	var mismatched int64
	require.NoError(t, db.Raw(`
		SELECT COUNT(*) FROM quiz_sessions s
		WHERE s.total_score <> (SELECT COUNT(*) FROM quiz_answers a WHERE a.session_id = s.id AND a.is_correct = 1)
	`).Scan(&mismatched).Error)
	assert.Zero(t, mismatched)

	// 重复执行不会写入重复数据
	require.NoError(t, Seed(db))
	require.NoError(t, db.Model(&model.User{}).Count(&users).Error)
	assert.Equal(t, int64(len(seedUsers)), users)
}
