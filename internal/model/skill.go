package model

// Skill 测验主题（如 JavaScript、React），一个技能对应多次测验会话
// swagger:model Skill
type Skill struct {
	BaseModel
	Name        string `gorm:"size:100;unique;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
}

func (Skill) TableName() string {
	return "skills"
}
