package model

import "strings"

// Option 选择题的四个选项字母
type Option string

const (
	OptionA Option = "A"
	OptionB Option = "B"
	OptionC Option = "C"
	OptionD Option = "D"
)

// ParseOption 大小写不敏感地解析选项字母
func ParseOption(s string) (Option, bool) {
	switch o := Option(strings.ToUpper(strings.TrimSpace(s))); o {
	case OptionA, OptionB, OptionC, OptionD:
		return o, true
	}
	return "", false
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty 空值按 medium 处理
func ParseDifficulty(s string) (Difficulty, bool) {
	switch d := Difficulty(strings.ToLower(strings.TrimSpace(s))); d {
	case "":
		return DifficultyMedium, true
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return d, true
	}
	return "", false
}

// swagger:model Question
type Question struct {
	BaseModel
	SkillID       uint       `gorm:"index;not null" json:"skillId"`
	Text          string     `gorm:"type:text;not null" json:"text"`
	OptionA       string     `gorm:"size:255" json:"optionA"`
	OptionB       string     `gorm:"size:255" json:"optionB"`
	OptionC       string     `gorm:"size:255" json:"optionC"`
	OptionD       string     `gorm:"size:255" json:"optionD"`
	CorrectOption Option     `gorm:"size:1;not null" json:"-"`
	Difficulty    Difficulty `gorm:"size:20;default:'medium'" json:"difficulty"`
}

func (Question) TableName() string {
	return "questions"
}

// QuestionDetail 管理员视图，附带正确选项
// swagger:model QuestionDetail
type QuestionDetail struct {
	Question
	CorrectOption Option `json:"correctOption"`
}

func NewQuestionDetail(q Question) QuestionDetail {
	return QuestionDetail{Question: q, CorrectOption: q.CorrectOption}
}
