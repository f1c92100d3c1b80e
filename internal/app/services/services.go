package services

import (
	"context"

	"github.com/frolicdev/frolic/internal/app/models"
)

// The interfaces below are the service layer's view of the repository layer.
// They are satisfied by the concrete repositories and by in-package fakes in
// tests, so service logic can be exercised without a database.

type userRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id int64) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
}

type instituteRepository interface {
	Create(ctx context.Context, institute *models.Institute) error
	GetByID(ctx context.Context, id int64) (*models.Institute, error)
	GetAll(ctx context.Context, offset uint64, limit int) ([]*models.Institute, int64, error)
	ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error)
	Update(ctx context.Context, institute *models.Institute) error
	Delete(ctx context.Context, id int64) error
	CountAll(ctx context.Context) (int64, error)
	CountDepartments(ctx context.Context, id int64) (int64, error)
	CountEvents(ctx context.Context, id int64) (int64, error)
	CountParticipants(ctx context.Context, id int64) (int64, error)
}

type departmentRepository interface {
	Create(ctx context.Context, department *models.Department) error
	GetByID(ctx context.Context, id int64) (*models.Department, error)
	GetAll(ctx context.Context) ([]*models.Department, error)
	GetByInstituteID(ctx context.Context, instituteID int64) ([]*models.Department, error)
	ExistsByNameAndInstitute(ctx context.Context, name string, instituteID, excludeID int64) (bool, error)
	Update(ctx context.Context, department *models.Department) error
	Delete(ctx context.Context, id int64) error
	CountEvents(ctx context.Context, id int64) (int64, error)
}

type eventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	GetByID(ctx context.Context, id int64) (*models.Event, error)
	List(ctx context.Context, search string, departmentID *int64, location string, offset uint64, limit int) ([]*models.Event, int64, error)
	GetByDepartmentID(ctx context.Context, departmentID int64) ([]*models.Event, error)
	Update(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, id int64) error
	CountAll(ctx context.Context) (int64, error)
	CountGroups(ctx context.Context, id int64) (int64, error)
	CountParticipants(ctx context.Context, id int64) (int64, error)
}

type groupRepository interface {
	CreateIfBelowLimit(ctx context.Context, group *models.Group, maxGroups int) (bool, error)
	GetByID(ctx context.Context, id int64) (*models.Group, error)
	GetByEventID(ctx context.Context, eventID int64) ([]*models.Group, error)
	Update(ctx context.Context, group *models.Group) error
	Delete(ctx context.Context, id int64) error
}

type participantRepository interface {
	CreateInGroup(ctx context.Context, participant *models.Participant, groupMax int) (bool, error)
	GetByID(ctx context.Context, id int64) (*models.Participant, error)
	GetAll(ctx context.Context, offset uint64, limit int) ([]*models.Participant, int64, error)
	GetByGroupID(ctx context.Context, groupID int64) ([]*models.Participant, error)
	CountByGroupID(ctx context.Context, groupID int64) (int, error)
	LeaderExists(ctx context.Context, groupID int64) (bool, error)
	ExistsByUserAndEvent(ctx context.Context, userID, eventID int64) (bool, error)
	Update(ctx context.Context, participant *models.Participant) error
	Delete(ctx context.Context, id int64) error
	Recent(ctx context.Context, limit int) ([]*models.Participant, error)
	CountAll(ctx context.Context) (int64, error)
}

type winnerRepository interface {
	Create(ctx context.Context, winner *models.EventWiseWinner) error
	GetByID(ctx context.Context, id int64) (*models.EventWiseWinner, error)
	GetByEventID(ctx context.Context, eventID int64) ([]*models.EventWiseWinner, error)
	ExistsRank(ctx context.Context, eventID int64, rank int, excludeID int64) (bool, error)
	Update(ctx context.Context, winner *models.EventWiseWinner) error
	Delete(ctx context.Context, id int64) error
	CountAll(ctx context.Context) (int64, error)
}
