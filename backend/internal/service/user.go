package service

import (
	"context"
	"fmt"
	"time"

	"github.com/teamboard/teamboard/shared/domain"
	"github.com/teamboard/teamboard/shared/errors"
	"github.com/teamboard/teamboard/shared/logger"
)

// to mock service in tests
type UserService interface {
	Create(ctx context.Context, data domain.UserCreationData) (domain.UserId, error)
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id domain.UserId) (*domain.User, error)
	Update(ctx context.Context, id domain.UserId, patch domain.UserPatch) (*domain.User, error)
	Teams(ctx context.Context, id domain.UserId) ([]domain.TeamSummary, error)
}

type UserValidator interface {
	Name(name string) error
	DisplayName(name string) error
	UpdatedDisplayName(name string) error
}

type User struct {
	records   *Records
	validator UserValidator
	now       func() time.Time
}

func NewUser(records *Records, validator UserValidator) UserService {
	return &User{records: records, validator: validator, now: time.Now}
}

func (s *User) Create(ctx context.Context, data domain.UserCreationData) (domain.UserId, error) {
	if err := s.validator.Name(data.Name); err != nil {
		return 0, err
	}
	if err := s.validator.DisplayName(data.DisplayName); err != nil {
		return 0, err
	}

	defer s.records.Lock(UsersCollection)()

	users, err := load[domain.User](ctx, s.records, UsersCollection)
	if err != nil {
		return 0, err
	}
	for _, u := range users {
		if u.Name == data.Name {
			return 0, &errors.ConflictError{Message: "User name must be unique"}
		}
	}

	id := nextId(users)
	users[id] = domain.User{
		Id:          id,
		Name:        data.Name,
		DisplayName: data.DisplayName,
		CreatedAt:   s.now().UTC(),
	}
	if err := save(ctx, s.records, UsersCollection, users); err != nil {
		return 0, err
	}

	recordsCreated.WithLabelValues(UsersCollection).Inc()
	logger.FromContext(ctx).Info("user created", "id", id, "name", data.Name)
	return id, nil
}

func (s *User) List(ctx context.Context) ([]domain.User, error) {
	users, err := load[domain.User](ctx, s.records, UsersCollection)
	if err != nil {
		return nil, err
	}
	return inOrder(users), nil
}

func (s *User) Get(ctx context.Context, id domain.UserId) (*domain.User, error) {
	users, err := load[domain.User](ctx, s.records, UsersCollection)
	if err != nil {
		return nil, err
	}
	user, ok := users[id]
	if !ok {
		return nil, &errors.NotFoundError{Resource: "user", Id: id}
	}
	return &user, nil
}

// Update merges the fields present in patch. The name is fixed at creation.
func (s *User) Update(ctx context.Context, id domain.UserId, patch domain.UserPatch) (*domain.User, error) {
	defer s.records.Lock(UsersCollection)()

	users, err := load[domain.User](ctx, s.records, UsersCollection)
	if err != nil {
		return nil, err
	}
	user, ok := users[id]
	if !ok {
		return nil, &errors.NotFoundError{Resource: "user", Id: id}
	}

	if patch.Name != nil || patch.NameSent {
		return nil, &errors.ValidationError{Message: "User name cannot be updated"}
	}
	if patch.DisplayName != nil {
		if err := s.validator.UpdatedDisplayName(*patch.DisplayName); err != nil {
			return nil, err
		}
		user.DisplayName = *patch.DisplayName
	}

	users[id] = user
	if err := save(ctx, s.records, UsersCollection, users); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("user updated", "id", id)
	return &user, nil
}

// Teams lists every team whose membership set contains the user.
func (s *User) Teams(ctx context.Context, id domain.UserId) ([]domain.TeamSummary, error) {
	users, err := load[domain.User](ctx, s.records, UsersCollection)
	if err != nil {
		return nil, err
	}
	if _, ok := users[id]; !ok {
		return nil, &errors.NotFoundError{Resource: "user", Id: id}
	}

	memberships, err := load[domain.Members](ctx, s.records, TeamUsersCollection)
	if err != nil {
		return nil, err
	}
	teams, err := load[domain.Team](ctx, s.records, TeamsCollection)
	if err != nil {
		return nil, err
	}

	result := []domain.TeamSummary{}
	for _, teamId := range sortedIds(memberships) {
		if !memberships[teamId].Contains(id) {
			continue
		}
		team, ok := teams[teamId]
		if !ok {
			return nil, &errors.DanglingReferenceError{Resource: "team", Id: teamId, From: fmt.Sprintf("membership of user %d", id)}
		}
		result = append(result, domain.TeamSummary{
			Id:          team.Id,
			Name:        team.Name,
			Description: team.Description,
			CreatedAt:   team.CreatedAt,
		})
	}
	return result, nil
}
