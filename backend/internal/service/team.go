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
type TeamService interface {
	Create(ctx context.Context, data domain.TeamCreationData) (domain.TeamId, error)
	List(ctx context.Context) ([]domain.Team, error)
	Get(ctx context.Context, id domain.TeamId) (*domain.Team, error)
	Update(ctx context.Context, id domain.TeamId, patch domain.TeamPatch) (*domain.Team, error)
	AddUsers(ctx context.Context, id domain.TeamId, users []domain.UserId) (domain.Members, error)
	RemoveUsers(ctx context.Context, id domain.TeamId, users []domain.UserId) (domain.Members, error)
	Users(ctx context.Context, id domain.TeamId) ([]domain.UserRef, error)
}

type TeamValidator interface {
	Name(name string) error
	Description(description string) error
	UsersBatch(n int) error
}

type Team struct {
	records   *Records
	validator TeamValidator
	now       func() time.Time
}

func NewTeam(records *Records, validator TeamValidator) TeamService {
	return &Team{records: records, validator: validator, now: time.Now}
}

// Create stores the team and starts its membership set with the admin.
func (s *Team) Create(ctx context.Context, data domain.TeamCreationData) (domain.TeamId, error) {
	if err := s.validator.Name(data.Name); err != nil {
		return 0, err
	}
	if err := s.validator.Description(data.Description); err != nil {
		return 0, err
	}

	defer s.records.Lock(TeamsCollection, TeamUsersCollection)()

	teams, err := load[domain.Team](ctx, s.records, TeamsCollection)
	if err != nil {
		return 0, err
	}
	for _, t := range teams {
		if t.Name == data.Name {
			return 0, &errors.ConflictError{Message: "Team name must be unique"}
		}
	}
	memberships, err := load[domain.Members](ctx, s.records, TeamUsersCollection)
	if err != nil {
		return 0, err
	}

	id := nextId(teams)
	teams[id] = domain.Team{
		Id:          id,
		Name:        data.Name,
		Description: data.Description,
		Admin:       data.Admin,
		CreatedAt:   s.now().UTC(),
	}
	memberships[id] = domain.Members{data.Admin}

	// membership first: if the team write fails, the entry is unreachable and
	// the next create under the same id overwrites it
	if err := save(ctx, s.records, TeamUsersCollection, memberships); err != nil {
		return 0, err
	}
	if err := save(ctx, s.records, TeamsCollection, teams); err != nil {
		return 0, err
	}

	recordsCreated.WithLabelValues(TeamsCollection).Inc()
	logger.FromContext(ctx).Info("team created", "id", id, "name", data.Name, "admin", data.Admin)
	return id, nil
}

func (s *Team) List(ctx context.Context) ([]domain.Team, error) {
	teams, err := load[domain.Team](ctx, s.records, TeamsCollection)
	if err != nil {
		return nil, err
	}
	return inOrder(teams), nil
}

func (s *Team) Get(ctx context.Context, id domain.TeamId) (*domain.Team, error) {
	teams, err := load[domain.Team](ctx, s.records, TeamsCollection)
	if err != nil {
		return nil, err
	}
	team, ok := teams[id]
	if !ok {
		return nil, &errors.NotFoundError{Resource: "team", Id: id}
	}
	return &team, nil
}

// Update merges the fields present in patch.
// A rename is not checked against the other team names.
func (s *Team) Update(ctx context.Context, id domain.TeamId, patch domain.TeamPatch) (*domain.Team, error) {
	defer s.records.Lock(TeamsCollection)()

	teams, err := load[domain.Team](ctx, s.records, TeamsCollection)
	if err != nil {
		return nil, err
	}
	team, ok := teams[id]
	if !ok {
		return nil, &errors.NotFoundError{Resource: "team", Id: id}
	}

	if patch.Name != nil {
		if err := s.validator.Name(*patch.Name); err != nil {
			return nil, err
		}
		team.Name = *patch.Name
	}
	if patch.Description != nil {
		if err := s.validator.Description(*patch.Description); err != nil {
			return nil, err
		}
		team.Description = *patch.Description
	}
	if patch.Admin != nil {
		team.Admin = *patch.Admin
	}

	teams[id] = team
	if err := save(ctx, s.records, TeamsCollection, teams); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("team updated", "id", id)
	return &team, nil
}

func (s *Team) AddUsers(ctx context.Context, id domain.TeamId, users []domain.UserId) (domain.Members, error) {
	return s.changeMembers(ctx, id, users, "add", func(members domain.Members, users []domain.UserId) domain.Members {
		for _, u := range users {
			if !members.Contains(u) {
				members = append(members, u)
			}
		}
		return members
	})
}

// RemoveUsers drops the given ids from the team; ids that aren't members are ignored.
func (s *Team) RemoveUsers(ctx context.Context, id domain.TeamId, users []domain.UserId) (domain.Members, error) {
	return s.changeMembers(ctx, id, users, "remove", func(members domain.Members, users []domain.UserId) domain.Members {
		drop := domain.Members(users)
		kept := domain.Members{}
		for _, u := range members {
			if !drop.Contains(u) {
				kept = append(kept, u)
			}
		}
		return kept
	})
}

func (s *Team) changeMembers(
	ctx context.Context,
	id domain.TeamId,
	users []domain.UserId,
	op string,
	apply func(domain.Members, []domain.UserId) domain.Members,
) (domain.Members, error) {
	defer s.records.Lock(TeamUsersCollection)()

	if err := s.requireTeam(ctx, id); err != nil {
		return nil, err
	}
	if err := s.validator.UsersBatch(len(users)); err != nil {
		return nil, err
	}

	memberships, err := load[domain.Members](ctx, s.records, TeamUsersCollection)
	if err != nil {
		return nil, err
	}
	members := apply(memberships[id], users)
	if members == nil {
		members = domain.Members{}
	}
	memberships[id] = members

	if err := save(ctx, s.records, TeamUsersCollection, memberships); err != nil {
		return nil, err
	}

	membershipChanges.WithLabelValues(op).Inc()
	logger.FromContext(ctx).Info("team members changed", "id", id, "op", op, "batch", len(users), "members", len(members))
	return members, nil
}

// Users resolves the membership set into user references. A member id with no
// user record is reported as an error rather than skipped.
func (s *Team) Users(ctx context.Context, id domain.TeamId) ([]domain.UserRef, error) {
	if err := s.requireTeam(ctx, id); err != nil {
		return nil, err
	}

	memberships, err := load[domain.Members](ctx, s.records, TeamUsersCollection)
	if err != nil {
		return nil, err
	}
	users, err := load[domain.User](ctx, s.records, UsersCollection)
	if err != nil {
		return nil, err
	}

	refs := make([]domain.UserRef, 0, len(memberships[id]))
	for _, userId := range memberships[id] {
		user, ok := users[userId]
		if !ok {
			return nil, &errors.DanglingReferenceError{Resource: "user", Id: userId, From: fmt.Sprintf("team %d", id)}
		}
		refs = append(refs, domain.UserRef{Id: user.Id, Name: user.Name, DisplayName: user.DisplayName})
	}
	return refs, nil
}

func (s *Team) requireTeam(ctx context.Context, id domain.TeamId) error {
	teams, err := load[domain.Team](ctx, s.records, TeamsCollection)
	if err != nil {
		return err
	}
	if _, ok := teams[id]; !ok {
		return &errors.NotFoundError{Resource: "team", Id: id}
	}
	return nil
}
