package service

import (
	"context"
	"skill_assessment_backend/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryUserLister []model.User

func (m memoryUserLister) FindAll(context.Context) ([]model.User, error) {
	return m, nil
}

func testUser(id uint, name string, role model.UserRole) model.User {
	u := model.User{Name: name, Email: name + "@example.com", Role: role}
	u.ID = id
	return u
}

func TestListUsers(t *testing.T) {
	inProgress := completedSession(4, 1, 10, "Go", daysAgo(0), 1, 1)
	inProgress.EndTime = nil

	store := newMemorySessionStore(
		completedSession(1, 1, 10, "Go", daysAgo(5), 2, 2),
		completedSession(2, 1, 20, "SQL", daysAgo(2), 1, 2),
		completedSession(3, 2, 10, "Go", daysAgo(9), 1, 3),
		inProgress,
	)
	users := memoryUserLister{
		testUser(1, "alice", model.RoleUser),
		testUser(2, "bob", model.RoleUser),
		testUser(3, "admin", model.RoleAdmin),
	}

	summaries, err := NewUserService(users, store).ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 3)

	alice := summaries[0]
	assert.Equal(t, 2, alice.TestsCompleted, "in-progress sessions are not counted")
	assert.Equal(t, 75, alice.AverageScore)
	require.NotNil(t, alice.LastTestDate)
	assert.Equal(t, "2025-06-13T12:00:00.000Z", *alice.LastTestDate)

	bob := summaries[1]
	assert.Equal(t, 1, bob.TestsCompleted)
	assert.Equal(t, 33, bob.AverageScore)

	admin := summaries[2]
	assert.Equal(t, model.RoleAdmin, admin.Role)
	assert.Zero(t, admin.TestsCompleted)
	assert.Zero(t, admin.AverageScore)
	assert.Nil(t, admin.LastTestDate)
}

func TestListUsers_StoreFailure(t *testing.T) {
	store := newMemorySessionStore()
	store.err = errStoreDown

	_, err := NewUserService(memoryUserLister{testUser(1, "alice", model.RoleUser)}, store).ListUsers(context.Background())
	assert.ErrorIs(t, err, errStoreDown)
}
