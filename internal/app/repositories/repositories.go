package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories is a container for all repository instances
type Repositories struct {
	UserRepository        *UserRepository
	InstituteRepository   *InstituteRepository
	DepartmentRepository  *DepartmentRepository
	EventRepository       *EventRepository
	GroupRepository       *GroupRepository
	ParticipantRepository *ParticipantRepository
	WinnerRepository      *WinnerRepository
}

// NewRepositories creates all repositories sharing one pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:        NewUserRepository(db),
		InstituteRepository:   NewInstituteRepository(db),
		DepartmentRepository:  NewDepartmentRepository(db),
		EventRepository:       NewEventRepository(db),
		GroupRepository:       NewGroupRepository(db),
		ParticipantRepository: NewParticipantRepository(db),
		WinnerRepository:      NewWinnerRepository(db),
	}
}
