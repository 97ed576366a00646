package database

import (
	"log"
	"skill_assessment_backend/internal/model"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type seedUser struct {
	name, email, password string
	role                  model.UserRole
}

type seedSkill struct {
	name, description string
	questions         []string
	answers           []model.Option
}

var seedUsers = []seedUser{
	{"Admin User", "admin@example.com", "admin123", model.RoleAdmin},
	{"Alice", "alice@example.com", "password1", model.RoleUser},
	{"Bob", "bob@example.com", "password2", model.RoleUser},
	{"Charlie", "charlie@example.com", "password3", model.RoleUser},
	{"Dave", "dave@example.com", "password4", model.RoleUser},
	{"Eve", "eve@example.com", "password5", model.RoleUser},
}

var seedSkills = []seedSkill{
	{
		name:        "JavaScript",
		description: "JS fundamentals",
		questions: []string{
			"What is closure in JS?",
			"What is the difference between var, let, const?",
			"What is hoisting?",
			"Explain async/await",
			"What is a promise?",
		},
		answers: []model.Option{model.OptionA, model.OptionC, model.OptionB, model.OptionD, model.OptionA},
	},
	{
		name:        "Node.js",
		description: "Backend with Node",
		questions: []string{
			"What is Event Loop in Node.js?",
			"Explain middleware in Express.",
			"What is non-blocking I/O?",
			"Difference between require and import",
			"What is process.nextTick?",
		},
		answers: []model.Option{model.OptionB, model.OptionB, model.OptionA, model.OptionC, model.OptionD},
	},
	{
		name:        "React",
		description: "Frontend framework",
		questions: []string{
			"What is JSX?",
			"Explain state vs props",
			"What is useEffect hook?",
			"What is virtual DOM?",
			"How to optimize React performance?",
		},
		answers: []model.Option{model.OptionC, model.OptionA, model.OptionD, model.OptionB, model.OptionA},
	},
}

// Seed 写入演示数据，已有用户时跳过
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Seed skipped: users already present")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		users := make([]model.User, 0, len(seedUsers))
		for _, u := range seedUsers {
			hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			user := model.User{Name: u.name, Email: u.email, Password: string(hash), Role: u.role}
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
			users = append(users, user)
		}

		questionsBySkill := make(map[uint][]model.Question)
		skills := make([]model.Skill, 0, len(seedSkills))
		for _, s := range seedSkills {
			skill := model.Skill{Name: s.name, Description: s.description}
			if err := tx.Create(&skill).Error; err != nil {
				return err
			}
			skills = append(skills, skill)

			for i, text := range s.questions {
				q := model.Question{
					SkillID:       skill.ID,
					Text:          text,
					OptionA:       "Option A",
					OptionB:       "Option B",
					OptionC:       "Option C",
					OptionD:       "Option D",
					CorrectOption: s.answers[i],
					Difficulty:    model.DifficultyMedium,
				}
				if err := tx.Create(&q).Error; err != nil {
					return err
				}
				questionsBySkill[skill.ID] = append(questionsBySkill[skill.ID], q)
			}
		}

		// 每个普通用户在每个技能上完成若干次测验，答对题数逐步变化以产生趋势
		now := time.Now()
		for ui, user := range users {
			if user.Role != model.RoleUser {
				continue
			}
			for si, skill := range skills {
				attempts := 2 + (ui+si)%4
				for a := 0; a < attempts; a++ {
					start := now.AddDate(0, 0, -(attempts-a)*6-si)
					end := start.Add(10 * time.Minute)
					session := model.QuizSession{
						UserID:    user.ID,
						SkillID:   skill.ID,
						StartTime: start,
						EndTime:   &end,
					}
					if err := tx.Create(&session).Error; err != nil {
						return err
					}

					correctTarget := (ui + a + si) % 6
					for qi, q := range questionsBySkill[skill.ID] {
						selected := q.CorrectOption
						if qi >= correctTarget {
							selected = wrongOption(q.CorrectOption)
						}
						answer := model.QuizAnswer{
							SessionID:      session.ID,
							QuestionID:     q.ID,
							SelectedOption: selected,
							IsCorrect:      selected == q.CorrectOption,
						}
						if err := tx.Create(&answer).Error; err != nil {
							return err
						}
						if answer.IsCorrect {
							session.TotalScore++
						}
					}
					if err := tx.Model(&session).Update("total_score", session.TotalScore).Error; err != nil {
						return err
					}
				}
			}
		}

		log.Printf("Seeded %d users, %d skills", len(users), len(skills))
		return nil
	})
}

func wrongOption(correct model.Option) model.Option {
	if correct == model.OptionA {
		return model.OptionB
	}
	return model.OptionA
}
