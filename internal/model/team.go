package model

// MemberID is an opaque user identifier supplied by the host's
// user-identity system (a Discord user snowflake in practice)
type MemberID string

// RoleID is an opaque role handle supplied by the presentation layer
type RoleID string

// Team is a named group of members competing in a game
type Team struct {
	Name    string     `json:"name"`
	RoleID  RoleID     `json:"role_id,omitempty"`
	Members []MemberID `json:"members"`
	Score   int        `json:"score"`
}

// NewTeam creates a team with zero score, no members, and no role binding
func NewTeam(name string) *Team {
	return &Team{
		Name:    name,
		Members: []MemberID{},
	}
}

// AttachRole binds the external role handle. The binding is write-once;
// a second call returns ErrRoleAlreadyBound.
func (t *Team) AttachRole(role RoleID) error {
	if t.RoleID != "" {
		return ErrRoleAlreadyBound
	}
	t.RoleID = role
	return nil
}

// AddPoints adds to the team score. Scores have no floor; negative totals
// are permitted.
func (t *Team) AddPoints(delta int) {
	t.Score += delta
}

// RemovePoints subtracts from the team score
func (t *Team) RemovePoints(delta int) {
	t.Score -= delta
}

// AddMember appends a member. Duplicates are permitted; balancing rebuilds
// every roster from scratch, so duplicates never survive a rebalance.
func (t *Team) AddMember(id MemberID) {
	t.Members = append(t.Members, id)
}

// RemoveMember removes the first occurrence of the member, reporting
// whether anything was removed
func (t *Team) RemoveMember(id MemberID) bool {
	for i, m := range t.Members {
		if m == id {
			t.Members = append(t.Members[:i], t.Members[i+1:]...)
			return true
		}
	}
	return false
}

// HasMember reports whether the member appears on the roster
func (t *Team) HasMember(id MemberID) bool {
	for _, m := range t.Members {
		if m == id {
			return true
		}
	}
	return false
}
