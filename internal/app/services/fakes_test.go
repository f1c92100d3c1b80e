package services

import (
	"context"
	"sort"
	"time"

	"github.com/frolicdev/frolic/internal/app/models"
	"github.com/frolicdev/frolic/internal/app/repositories"
)

// In-memory repository fakes. They mirror the store-side guards of the real
// repositories (conditional inserts, unique rank) so service behavior under
// rejected writes can be tested without a database.

type memUserRepo struct {
	nextID int64
	users  map[int64]*models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[int64]*models.User)}
}

func (m *memUserRepo) Create(_ context.Context, user *models.User) error {
	for _, u := range m.users {
		if u.Username == user.Username || u.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	m.nextID++
	user.ID = m.nextID
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	m.users[user.ID] = user
	return nil
}

func (m *memUserRepo) FindByID(_ context.Context, id int64) (*models.User, error) {
	return m.users[id], nil
}

func (m *memUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) ExistsByUsernameOrEmail(_ context.Context, username, email string) (bool, error) {
	for _, u := range m.users {
		if u.Username == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

type memInstituteRepo struct {
	nextID     int64
	institutes map[int64]*models.Institute

	departments  int64
	events       int64
	participants int64
}

func newMemInstituteRepo() *memInstituteRepo {
	return &memInstituteRepo{institutes: make(map[int64]*models.Institute)}
}

func (m *memInstituteRepo) Create(_ context.Context, institute *models.Institute) error {
	m.nextID++
	institute.ID = m.nextID
	m.institutes[institute.ID] = institute
	return nil
}

func (m *memInstituteRepo) GetByID(_ context.Context, id int64) (*models.Institute, error) {
	return m.institutes[id], nil
}

func (m *memInstituteRepo) GetAll(_ context.Context, offset uint64, limit int) ([]*models.Institute, int64, error) {
	var all []*models.Institute
	for _, inst := range m.institutes {
		all = append(all, inst)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	total := int64(len(all))
	if int(offset) >= len(all) {
		return nil, total, nil
	}
	all = all[offset:]
	if len(all) > limit {
		all = all[:limit]
	}
	return all, total, nil
}

func (m *memInstituteRepo) ExistsByName(_ context.Context, name string, excludeID int64) (bool, error) {
	for _, inst := range m.institutes {
		if inst.Name == name && inst.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memInstituteRepo) Update(_ context.Context, institute *models.Institute) error {
	if _, ok := m.institutes[institute.ID]; !ok {
		return repositories.ErrInstituteNotFound
	}
	m.institutes[institute.ID] = institute
	return nil
}

func (m *memInstituteRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.institutes[id]; !ok {
		return repositories.ErrInstituteNotFound
	}
	delete(m.institutes, id)
	return nil
}

func (m *memInstituteRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(m.institutes)), nil
}

func (m *memInstituteRepo) CountDepartments(_ context.Context, _ int64) (int64, error) {
	return m.departments, nil
}

func (m *memInstituteRepo) CountEvents(_ context.Context, _ int64) (int64, error) {
	return m.events, nil
}

func (m *memInstituteRepo) CountParticipants(_ context.Context, _ int64) (int64, error) {
	return m.participants, nil
}

type memDepartmentRepo struct {
	nextID      int64
	departments map[int64]*models.Department
	events      int64
}

func newMemDepartmentRepo() *memDepartmentRepo {
	return &memDepartmentRepo{departments: make(map[int64]*models.Department)}
}

func (m *memDepartmentRepo) Create(_ context.Context, department *models.Department) error {
	m.nextID++
	department.ID = m.nextID
	m.departments[department.ID] = department
	return nil
}

func (m *memDepartmentRepo) GetByID(_ context.Context, id int64) (*models.Department, error) {
	return m.departments[id], nil
}

func (m *memDepartmentRepo) GetAll(_ context.Context) ([]*models.Department, error) {
	var all []*models.Department
	for _, d := range m.departments {
		all = append(all, d)
	}
	return all, nil
}

func (m *memDepartmentRepo) GetByInstituteID(_ context.Context, instituteID int64) ([]*models.Department, error) {
	var out []*models.Department
	for _, d := range m.departments {
		if d.InstituteID == instituteID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *memDepartmentRepo) ExistsByNameAndInstitute(_ context.Context, name string, instituteID, excludeID int64) (bool, error) {
	for _, d := range m.departments {
		if d.Name == name && d.InstituteID == instituteID && d.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memDepartmentRepo) Update(_ context.Context, department *models.Department) error {
	if _, ok := m.departments[department.ID]; !ok {
		return repositories.ErrDepartmentNotFound
	}
	m.departments[department.ID] = department
	return nil
}

func (m *memDepartmentRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.departments[id]; !ok {
		return repositories.ErrDepartmentNotFound
	}
	delete(m.departments, id)
	return nil
}

func (m *memDepartmentRepo) CountEvents(_ context.Context, _ int64) (int64, error) {
	return m.events, nil
}

type memEventRepo struct {
	nextID int64
	events map[int64]*models.Event

	groups       int64
	participants int64
}

func newMemEventRepo() *memEventRepo {
	return &memEventRepo{events: make(map[int64]*models.Event)}
}

func (m *memEventRepo) Create(_ context.Context, event *models.Event) error {
	m.nextID++
	event.ID = m.nextID
	m.events[event.ID] = event
	return nil
}

func (m *memEventRepo) GetByID(_ context.Context, id int64) (*models.Event, error) {
	return m.events[id], nil
}

func (m *memEventRepo) List(_ context.Context, _ string, _ *int64, _ string, offset uint64, limit int) ([]*models.Event, int64, error) {
	var all []*models.Event
	for _, e := range m.events {
		all = append(all, e)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	total := int64(len(all))
	if int(offset) >= len(all) {
		return nil, total, nil
	}
	all = all[offset:]
	if len(all) > limit {
		all = all[:limit]
	}
	return all, total, nil
}

func (m *memEventRepo) GetByDepartmentID(_ context.Context, departmentID int64) ([]*models.Event, error) {
	var out []*models.Event
	for _, e := range m.events {
		if e.DepartmentID != nil && *e.DepartmentID == departmentID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memEventRepo) Update(_ context.Context, event *models.Event) error {
	if _, ok := m.events[event.ID]; !ok {
		return repositories.ErrEventNotFound
	}
	m.events[event.ID] = event
	return nil
}

func (m *memEventRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.events[id]; !ok {
		return repositories.ErrEventNotFound
	}
	delete(m.events, id)
	return nil
}

func (m *memEventRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(m.events)), nil
}

func (m *memEventRepo) CountGroups(_ context.Context, _ int64) (int64, error) {
	return m.groups, nil
}

func (m *memEventRepo) CountParticipants(_ context.Context, _ int64) (int64, error) {
	return m.participants, nil
}

type memGroupRepo struct {
	nextID int64
	groups map[int64]*models.Group
}

func newMemGroupRepo() *memGroupRepo {
	return &memGroupRepo{groups: make(map[int64]*models.Group)}
}

func (m *memGroupRepo) CreateIfBelowLimit(_ context.Context, group *models.Group, maxGroups int) (bool, error) {
	count := 0
	for _, g := range m.groups {
		if g.EventID == group.EventID {
			count++
		}
	}
	if count >= maxGroups {
		return false, nil
	}
	m.nextID++
	group.ID = m.nextID
	m.groups[group.ID] = group
	return true, nil
}

func (m *memGroupRepo) GetByID(_ context.Context, id int64) (*models.Group, error) {
	return m.groups[id], nil
}

func (m *memGroupRepo) GetByEventID(_ context.Context, eventID int64) ([]*models.Group, error) {
	var out []*models.Group
	for _, g := range m.groups {
		if g.EventID == eventID {
			out = append(out, g)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memGroupRepo) Update(_ context.Context, group *models.Group) error {
	if _, ok := m.groups[group.ID]; !ok {
		return repositories.ErrGroupNotFound
	}
	m.groups[group.ID] = group
	return nil
}

func (m *memGroupRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.groups[id]; !ok {
		return repositories.ErrGroupNotFound
	}
	delete(m.groups, id)
	return nil
}

type memParticipantRepo struct {
	nextID       int64
	participants map[int64]*models.Participant

	// groupEvent maps group IDs to their owning event, standing in for the
	// join the real repository performs.
	groupEvent map[int64]int64
}

func newMemParticipantRepo() *memParticipantRepo {
	return &memParticipantRepo{
		participants: make(map[int64]*models.Participant),
		groupEvent:   make(map[int64]int64),
	}
}

func (m *memParticipantRepo) CreateInGroup(_ context.Context, participant *models.Participant, groupMax int) (bool, error) {
	groupID := *participant.GroupID
	count := 0
	for _, p := range m.participants {
		if p.GroupID != nil && *p.GroupID == groupID {
			count++
		}
	}
	if count >= groupMax {
		return false, nil
	}
	eventID := m.groupEvent[groupID]
	for _, p := range m.participants {
		if p.UserID == participant.UserID && p.GroupID != nil && m.groupEvent[*p.GroupID] == eventID {
			return false, nil
		}
	}
	m.nextID++
	participant.ID = m.nextID
	participant.CreatedAt = time.Now()
	m.participants[participant.ID] = participant
	return true, nil
}

func (m *memParticipantRepo) GetByID(_ context.Context, id int64) (*models.Participant, error) {
	return m.participants[id], nil
}

func (m *memParticipantRepo) GetAll(_ context.Context, offset uint64, limit int) ([]*models.Participant, int64, error) {
	var all []*models.Participant
	for _, p := range m.participants {
		all = append(all, p)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	total := int64(len(all))
	if int(offset) >= len(all) {
		return nil, total, nil
	}
	all = all[offset:]
	if len(all) > limit {
		all = all[:limit]
	}
	return all, total, nil
}

func (m *memParticipantRepo) GetByGroupID(_ context.Context, groupID int64) ([]*models.Participant, error) {
	var out []*models.Participant
	for _, p := range m.participants {
		if p.GroupID != nil && *p.GroupID == groupID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memParticipantRepo) CountByGroupID(_ context.Context, groupID int64) (int, error) {
	count := 0
	for _, p := range m.participants {
		if p.GroupID != nil && *p.GroupID == groupID {
			count++
		}
	}
	return count, nil
}

func (m *memParticipantRepo) LeaderExists(_ context.Context, groupID int64) (bool, error) {
	for _, p := range m.participants {
		if p.GroupID != nil && *p.GroupID == groupID && p.IsGroupLeader {
			return true, nil
		}
	}
	return false, nil
}

func (m *memParticipantRepo) ExistsByUserAndEvent(_ context.Context, userID, eventID int64) (bool, error) {
	for _, p := range m.participants {
		if p.UserID == userID && p.GroupID != nil && m.groupEvent[*p.GroupID] == eventID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memParticipantRepo) Update(_ context.Context, participant *models.Participant) error {
	if _, ok := m.participants[participant.ID]; !ok {
		return repositories.ErrParticipantNotFound
	}
	m.participants[participant.ID] = participant
	return nil
}

func (m *memParticipantRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.participants[id]; !ok {
		return repositories.ErrParticipantNotFound
	}
	delete(m.participants, id)
	return nil
}

func (m *memParticipantRepo) Recent(_ context.Context, limit int) ([]*models.Participant, error) {
	var all []*models.Participant
	for _, p := range m.participants {
		all = append(all, p)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (m *memParticipantRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(m.participants)), nil
}

type memWinnerRepo struct {
	nextID  int64
	winners map[int64]*models.EventWiseWinner
}

func newMemWinnerRepo() *memWinnerRepo {
	return &memWinnerRepo{winners: make(map[int64]*models.EventWiseWinner)}
}

func (m *memWinnerRepo) Create(_ context.Context, winner *models.EventWiseWinner) error {
	for _, w := range m.winners {
		if w.EventID == winner.EventID && w.Rank == winner.Rank {
			return repositories.ErrWinnerRankTaken
		}
	}
	m.nextID++
	winner.ID = m.nextID
	m.winners[winner.ID] = winner
	return nil
}

func (m *memWinnerRepo) GetByID(_ context.Context, id int64) (*models.EventWiseWinner, error) {
	return m.winners[id], nil
}

func (m *memWinnerRepo) GetByEventID(_ context.Context, eventID int64) ([]*models.EventWiseWinner, error) {
	var out []*models.EventWiseWinner
	for _, w := range m.winners {
		if w.EventID == eventID {
			out = append(out, w)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Rank < out[j].Rank })
	return out, nil
}

func (m *memWinnerRepo) ExistsRank(_ context.Context, eventID int64, rank int, excludeID int64) (bool, error) {
	for _, w := range m.winners {
		if w.EventID == eventID && w.Rank == rank && w.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memWinnerRepo) Update(_ context.Context, winner *models.EventWiseWinner) error {
	if _, ok := m.winners[winner.ID]; !ok {
		return repositories.ErrWinnerNotFound
	}
	for _, w := range m.winners {
		if w.ID != winner.ID && w.EventID == winner.EventID && w.Rank == winner.Rank {
			return repositories.ErrWinnerRankTaken
		}
	}
	m.winners[winner.ID] = winner
	return nil
}

func (m *memWinnerRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.winners[id]; !ok {
		return repositories.ErrWinnerNotFound
	}
	delete(m.winners, id)
	return nil
}

func (m *memWinnerRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(m.winners)), nil
}
