package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orgseed/internal/models"
)

func TestUsersBasics(t *testing.T) {
	g := newTestGenerator(t, 300, 3, 15, 5)
	org := g.LargeOrganization()

	users, err := g.Users(org, testHash)
	require.NoError(t, err)
	require.Len(t, users, 300)

	emails := map[string]bool{}
	for _, u := range users {
		assert.False(t, emails[u.Email], "duplicate email %s", u.Email)
		emails[u.Email] = true

		assert.True(t, strings.HasSuffix(u.Email, "@"+org.Domain), "email %s not on org domain", u.Email)
		assert.Equal(t, org.OrgID, u.OrgID)
		assert.Equal(t, testHash, u.PasswordHash)
		assert.Equal(t, u.FirstName+" "+u.LastName, u.FullName)
		assert.NotEmpty(t, u.Department)
		assert.True(t, u.CreatedAt.Before(g.now))
	}
}

func TestUserEmailHasNoUppercase(t *testing.T) {
	g := newTestGenerator(t, 100, 3, 15, 8)
	org := g.LargeOrganization()

	users, err := g.Users(org, testHash)
	require.NoError(t, err)
	for _, u := range users {
		assert.Equal(t, strings.ToLower(u.Email), u.Email)
	}
}

func TestEnsureRoleDistribution(t *testing.T) {
	g := newTestGenerator(t, 500, 3, 15, 12)
	org := g.LargeOrganization()

	users, err := g.Users(org, testHash)
	require.NoError(t, err)
	users = g.EnsureRoleDistribution(users)

	byRole := map[models.UserRole]int{}
	for _, u := range users {
		byRole[u.Role]++
	}

	// Targets are 1% / 4% / 10% / 15% / 70% of 500; bounds leave room for
	// binomial noise at this sample size.
	assert.LessOrEqual(t, byRole[models.RoleExecutive], 15)
	assert.InDelta(t, 20, byRole[models.RoleDirector], 17)
	assert.InDelta(t, 50, byRole[models.RoleManager], 25)
	assert.InDelta(t, 75, byRole[models.RoleLead], 30)
	assert.Greater(t, byRole[models.RoleIndividualContributor], 300)
}

func TestRoleSenioritySubsets(t *testing.T) {
	g := newTestGenerator(t, 400, 3, 15, 21)
	org := g.LargeOrganization()

	users, err := g.Users(org, testHash)
	require.NoError(t, err)
	users = g.EnsureRoleDistribution(users)

	allowed := map[models.UserRole][]models.SeniorityLevel{
		models.RoleExecutive: {models.SeniorityStaff, models.SeniorityPrincipal},
		models.RoleDirector:  {models.SenioritySenior, models.SeniorityStaff, models.SeniorityPrincipal},
		models.RoleManager:   {models.SeniorityMid, models.SenioritySenior, models.SeniorityStaff},
		models.RoleLead:      {models.SeniorityMid, models.SenioritySenior},
		models.RoleIndividualContributor: {
			models.SeniorityIntern, models.SeniorityJunior, models.SeniorityMid,
		},
	}
	for _, u := range users {
		assert.Contains(t, allowed[u.Role], u.SeniorityLevel,
			"role %s cannot hold seniority %s", u.Role, u.SeniorityLevel)
	}
}
