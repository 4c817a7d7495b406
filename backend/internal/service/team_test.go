package service

import (
	"context"
	goerrors "errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teamboard/teamboard/backend/internal/utils"
	"github.com/teamboard/teamboard/shared/domain"
	"github.com/teamboard/teamboard/shared/errors"
)

func userIds(n int) []domain.UserId {
	ids := make([]domain.UserId, n)
	for i := range ids {
		ids[i] = domain.UserId(i + 100)
	}
	return ids
}

func TestTeamCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("creates team and admin membership", func(t *testing.T) {
		s := newTestServices(t)
		id, err := s.teams.Create(ctx, domain.TeamCreationData{Name: "Eng", Description: "d", Admin: 5})
		require.NoError(t, err)
		assert.Equal(t, int64(1), id)

		team, err := s.teams.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Eng", team.Name)
		assert.Equal(t, int64(5), team.Admin)

		memberships, err := load[domain.Members](ctx, s.records, TeamUsersCollection)
		require.NoError(t, err)
		assert.Equal(t, domain.Members{5}, memberships[id])
	})

	testCases := []struct {
		name  string
		input domain.TeamCreationData
		check func(error) bool
	}{
		{"missing name", domain.TeamCreationData{Admin: 1}, errors.Is[*errors.ValidationError]},
		{"long name", domain.TeamCreationData{Name: strings.Repeat("t", 65), Admin: 1}, errors.Is[*errors.ValidationError]},
		{"long description", domain.TeamCreationData{Name: "x", Description: strings.Repeat("d", 129), Admin: 1}, errors.Is[*errors.ValidationError]},
		{"duplicate name", domain.TeamCreationData{Name: "Eng", Admin: 2}, errors.Is[*errors.ConflictError]},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestServices(t)
			_, err := s.teams.Create(ctx, domain.TeamCreationData{Name: "Eng", Admin: 1})
			require.NoError(t, err)

			_, err = s.teams.Create(ctx, tc.input)
			assert.True(t, tc.check(err), "unexpected error: %v", err)

			teams, _ := s.teams.List(ctx)
			assert.Len(t, teams, 1)
		})
	}
}

func TestTeamCreateTeamWriteFails(t *testing.T) {
	ctx := context.Background()
	mem := newMemStorage()
	failTeams := true
	records := NewRecords(&MockDocumentStorage{
		readFunc: func(collection string) ([]byte, error) {
			return mem.ReadDocument(ctx, collection)
		},
		writeFunc: func(collection string, data []byte) error {
			if collection == TeamsCollection && failTeams {
				return goerrors.New("disk full")
			}
			return mem.WriteDocument(ctx, collection, data)
		},
	})
	teams := &Team{records: records, validator: &utils.TeamValidator{}, now: newFixedClock().Now}

	_, err := teams.Create(ctx, domain.TeamCreationData{Name: "Eng", Admin: 1})
	require.Error(t, err)
	assert.True(t, errors.Is[*errors.StorageError](err))

	list, err := teams.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list, "no team without its membership")

	failTeams = false
	id, err := teams.Create(ctx, domain.TeamCreationData{Name: "Eng", Admin: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	memberships, err := load[domain.Members](ctx, records, TeamUsersCollection)
	require.NoError(t, err)
	assert.Equal(t, domain.Members{2}, memberships[id], "leftover entry is replaced")
}

func TestTeamUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("shallow merge", func(t *testing.T) {
		s := newTestServices(t)
		id, _ := s.teams.Create(ctx, domain.TeamCreationData{Name: "Eng", Description: "old", Admin: 1})

		team, err := s.teams.Update(ctx, id, domain.TeamPatch{Description: ptr("new")})
		require.NoError(t, err)
		assert.Equal(t, "Eng", team.Name)
		assert.Equal(t, "new", team.Description)
		assert.Equal(t, int64(1), team.Admin)

		team, err = s.teams.Update(ctx, id, domain.TeamPatch{Name: ptr("Platform"), Admin: ptr(int64(7))})
		require.NoError(t, err)
		assert.Equal(t, "Platform", team.Name)
		assert.Equal(t, "new", team.Description)
		assert.Equal(t, int64(7), team.Admin)

		stored, _ := s.teams.Get(ctx, id)
		assert.Equal(t, *team, *stored)
	})

	t.Run("length checks", func(t *testing.T) {
		s := newTestServices(t)
		id, _ := s.teams.Create(ctx, domain.TeamCreationData{Name: "Eng", Admin: 1})

		_, err := s.teams.Update(ctx, id, domain.TeamPatch{Name: ptr(strings.Repeat("n", 65))})
		assert.True(t, errors.Is[*errors.ValidationError](err))
		_, err = s.teams.Update(ctx, id, domain.TeamPatch{Description: ptr(strings.Repeat("d", 129))})
		assert.True(t, errors.Is[*errors.ValidationError](err))
	})

	t.Run("unknown team", func(t *testing.T) {
		s := newTestServices(t)
		_, err := s.teams.Update(ctx, 3, domain.TeamPatch{})
		assert.True(t, errors.Is[*errors.NotFoundError](err))
	})

	// Renames are not checked for uniqueness; two teams can end up sharing a name.
	t.Run("rename to an existing name is accepted", func(t *testing.T) {
		s := newTestServices(t)
		_, _ = s.teams.Create(ctx, domain.TeamCreationData{Name: "Eng", Admin: 1})
		ops, _ := s.teams.Create(ctx, domain.TeamCreationData{Name: "Ops", Admin: 1})

		team, err := s.teams.Update(ctx, ops, domain.TeamPatch{Name: ptr("Eng")})
		require.NoError(t, err)
		assert.Equal(t, "Eng", team.Name)

		// creation still enforces uniqueness
		_, err = s.teams.Create(ctx, domain.TeamCreationData{Name: "Eng", Admin: 1})
		assert.True(t, errors.Is[*errors.ConflictError](err))
	})
}

func TestTeamMembership(t *testing.T) {
	ctx := context.Background()

	t.Run("add is idempotent and deduplicated", func(t *testing.T) {
		s := newTestServices(t)
		id, _ := s.teams.Create(ctx, domain.TeamCreationData{Name: "Eng", Admin: 1})

		members, err := s.teams.AddUsers(ctx, id, []domain.UserId{2, 3, 2, 1})
		require.NoError(t, err)
		assert.ElementsMatch(t, domain.Members{1, 2, 3}, members)

		members, err = s.teams.AddUsers(ctx, id, []domain.UserId{2, 3})
		require.NoError(t, err)
		assert.ElementsMatch(t, domain.Members{1, 2, 3}, members)
	})

	t.Run("remove ignores non members", func(t *testing.T) {
		s := newTestServices(t)
		id, _ := s.teams.Create(ctx, domain.TeamCreationData{Name: "Eng", Admin: 1})
		_, err := s.teams.AddUsers(ctx, id, []domain.UserId{2, 3})
		require.NoError(t, err)

		members, err := s.teams.RemoveUsers(ctx, id, []domain.UserId{3, 42})
		require.NoError(t, err)
		assert.ElementsMatch(t, domain.Members{1, 2}, members)
	})

	// The admin is only guaranteed to be a member at creation time.
	t.Run("admin can be removed", func(t *testing.T) {
		s := newTestServices(t)
		id, _ := s.teams.Create(ctx, domain.TeamCreationData{Name: "Eng", Admin: 1})

		members, err := s.teams.RemoveUsers(ctx, id, []domain.UserId{1})
		require.NoError(t, err)
		assert.Empty(t, members)
		assert.NotNil(t, members)
	})

	t.Run("batches over 50 are rejected", func(t *testing.T) {
		s := newTestServices(t)
		id, _ := s.teams.Create(ctx, domain.TeamCreationData{Name: "Eng", Admin: 1})

		_, err := s.teams.AddUsers(ctx, id, userIds(51))
		assert.True(t, errors.Is[*errors.ValidationError](err))
		_, err = s.teams.RemoveUsers(ctx, id, userIds(51))
		assert.True(t, errors.Is[*errors.ValidationError](err))

		members, err := s.teams.AddUsers(ctx, id, userIds(50))
		require.NoError(t, err)
		assert.Len(t, members, 51)
		members, err = s.teams.RemoveUsers(ctx, id, userIds(50))
		require.NoError(t, err)
		assert.Equal(t, domain.Members{1}, members)
	})

	t.Run("unknown team", func(t *testing.T) {
		s := newTestServices(t)
		_, err := s.teams.AddUsers(ctx, 1, []domain.UserId{1})
		assert.True(t, errors.Is[*errors.NotFoundError](err))
		_, err = s.teams.RemoveUsers(ctx, 1, []domain.UserId{1})
		assert.True(t, errors.Is[*errors.NotFoundError](err))
		_, err = s.teams.Users(ctx, 1)
		assert.True(t, errors.Is[*errors.NotFoundError](err))
	})

	// Member ids are not checked against the user collection.
	t.Run("unknown user ids are accepted", func(t *testing.T) {
		s := newTestServices(t)
		id, _ := s.teams.Create(ctx, domain.TeamCreationData{Name: "Eng", Admin: 1})

		members, err := s.teams.AddUsers(ctx, id, []domain.UserId{999})
		require.NoError(t, err)
		assert.Contains(t, members, domain.UserId(999))
	})
}

func TestTeamUsers(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves members", func(t *testing.T) {
		s := newTestServices(t)
		alice, _ := s.users.Create(ctx, domain.UserCreationData{Name: "alice", DisplayName: "Alice"})
		bob, _ := s.users.Create(ctx, domain.UserCreationData{Name: "bob", DisplayName: "Bob"})
		id, _ := s.teams.Create(ctx, domain.TeamCreationData{Name: "Eng", Admin: alice})
		_, err := s.teams.AddUsers(ctx, id, []domain.UserId{bob})
		require.NoError(t, err)

		users, err := s.teams.Users(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, []domain.UserRef{
			{Id: alice, Name: "alice", DisplayName: "Alice"},
			{Id: bob, Name: "bob", DisplayName: "Bob"},
		}, users)
	})

	t.Run("member without user record is an error", func(t *testing.T) {
		s := newTestServices(t)
		id, _ := s.teams.Create(ctx, domain.TeamCreationData{Name: "Eng", Admin: 77})

		_, err := s.teams.Users(ctx, id)
		require.Error(t, err)
		assert.True(t, errors.Is[*errors.DanglingReferenceError](err))
	})
}
