package model

import "time"

// QuizSession 一次测验尝试。EndTime 为空表示仍在进行中，只有已完成的会话参与报告统计。
// TotalScore 是写路径维护的正确题数缓存，报告计算不读取该字段。
// swagger:model QuizSession
type QuizSession struct {
	BaseModel
	UserID     uint         `gorm:"index;not null" json:"userId"`
	SkillID    uint         `gorm:"index;not null" json:"skillId"`
	StartTime  time.Time    `gorm:"index;not null" json:"startTime"`
	EndTime    *time.Time   `gorm:"index" json:"endTime,omitempty"`
	TotalScore int          `gorm:"default:0" json:"totalScore"`
	Skill      Skill        `gorm:"foreignKey:SkillID" json:"skill"`
	Answers    []QuizAnswer `gorm:"foreignKey:SessionID" json:"answers,omitempty"`
}

func (QuizSession) TableName() string {
	return "quiz_sessions"
}

func (s *QuizSession) Completed() bool {
	return s.EndTime != nil
}

// QuizAnswer 会话内的一次作答，IsCorrect 在提交时计算
// swagger:model QuizAnswer
type QuizAnswer struct {
	BaseModel
	SessionID      uint   `gorm:"index;not null" json:"sessionId"`
	QuestionID     uint   `gorm:"index;not null" json:"questionId"`
	SelectedOption Option `gorm:"size:1;not null" json:"selectedOption"`
	IsCorrect      bool   `gorm:"default:false" json:"isCorrect"`
}

func (QuizAnswer) TableName() string {
	return "quiz_answers"
}
