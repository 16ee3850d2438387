package mocks

import (
	"context"
	"sync"

	"github.com/quizhost/quizhost/internal/model"
	"github.com/quizhost/quizhost/internal/presenter"
)

// RoleAssignment records one AssignTeamRole call
type RoleAssignment struct {
	GuildID model.GuildID
	Member  model.MemberID
	Role    model.RoleID
}

// MockPresenter records presentation calls for assertions in tests
type MockPresenter struct {
	mu sync.Mutex

	Announcements   []model.GuildID
	RoleAssignments []RoleAssignment

	// AssignRoleErr, if set, is returned from every AssignTeamRole call
	AssignRoleErr error
}

var _ presenter.Presenter = (*MockPresenter)(nil)

// NewMockPresenter creates a new MockPresenter
func NewMockPresenter() *MockPresenter {
	return &MockPresenter{}
}

func (p *MockPresenter) AnnounceGame(ctx context.Context, guildID model.GuildID, name, description string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Announcements = append(p.Announcements, guildID)
	return nil
}

func (p *MockPresenter) AssignTeamRole(ctx context.Context, guildID model.GuildID, member model.MemberID, role model.RoleID) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.RoleAssignments = append(p.RoleAssignments, RoleAssignment{GuildID: guildID, Member: member, Role: role})
	return p.AssignRoleErr
}
