package model

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// swagger:model User
type User struct {
	BaseModel
	Name     string   `gorm:"size:100;not null" json:"name"`
	Email    string   `gorm:"size:100;unique;not null" json:"email"`
	Password string   `gorm:"size:100;not null" json:"-"`
	Role     UserRole `gorm:"size:20;default:'user'" json:"role"`
}

func (User) TableName() string {
	return "users"
}

// UserSummary 管理员用户列表项，统计只计已完成的测验
// swagger:model UserSummary
type UserSummary struct {
	ID             uint     `json:"id"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Role           UserRole `json:"role"`
	TestsCompleted int      `json:"testsCompleted"`
	LastTestDate   *string  `json:"lastTestDate"`
	AverageScore   int      `json:"averageScore"`
}
