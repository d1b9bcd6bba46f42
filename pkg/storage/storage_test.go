package storage

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/career/pkg/auth"
	"github.com/artem13815/career/pkg/jobs"
)

// full panics on any method it does not override, so tests prove which calls delegate.
type full struct {
	Storage
	users map[uuid.UUID]auth.User
}

func (f full) GetUser(_ context.Context, id uuid.UUID) (auth.User, error) {
	return f.users[id], nil
}

func (full) ListCompanies(context.Context) ([]jobs.Company, error) {
	return []jobs.Company{{Name: "Stripe"}}, nil
}

func TestDegradeEmptiesLists(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	s := Degrade(full{users: map[uuid.UUID]auth.User{id: {ID: id, FirstName: "Ada"}}})

	j, err := s.ListJobs(ctx)
	require.NoError(t, err)
	assert.NotNil(t, j)
	assert.Empty(t, j)

	apps, _ := s.ListApplications(ctx, id)
	assert.Empty(t, apps)
	sk, _ := s.ListSkills(ctx)
	assert.Empty(t, sk)
	us, _ := s.ListUserSkills(ctx, id)
	assert.Empty(t, us)
	lp, _ := s.ListLearningPaths(ctx, id)
	assert.Empty(t, lp)
	b, _ := s.ListBadges(ctx, id)
	assert.Empty(t, b)
	p, _ := s.ListPosts(ctx, id)
	assert.NotNil(t, p)
	assert.Empty(t, p)
}

func TestDegradeDelegatesTheRest(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	s := Degrade(full{users: map[uuid.UUID]auth.User{id: {ID: id, FirstName: "Ada"}}})

	u, err := s.GetUser(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Ada", u.FirstName)

	c, err := s.ListCompanies(ctx)
	require.NoError(t, err)
	assert.Len(t, c, 1)
}
