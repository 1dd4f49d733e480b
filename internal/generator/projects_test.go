package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orgseed/internal/models"
	"orgseed/internal/sample"
)

func TestProjectsPerTeam(t *testing.T) {
	g := newTestGenerator(t, 200, 3, 15, 31)
	org := g.LargeOrganization()

	users, err := g.Users(org, testHash)
	require.NoError(t, err)
	teams, err := g.Teams(org)
	require.NoError(t, err)

	projects, err := g.Projects(org, teams, users)
	require.NoError(t, err)
	require.NotEmpty(t, projects)

	teamByID := map[string]models.Team{}
	for _, tm := range teams {
		teamByID[tm.TeamID] = tm
	}

	names := map[string]bool{}
	perTeam := map[string]int{}
	for _, p := range projects {
		team := teamByID[p.TeamID]
		assert.NotEqual(t, models.TeamLeadership, team.TeamType, "leadership teams run no projects")
		assert.Contains(t, projectTypesFor(team.TeamType), p.ProjectType)

		assert.False(t, names[p.Name], "duplicate project name %s", p.Name)
		names[p.Name] = true
		perTeam[p.TeamID]++

		assert.Equal(t, org.OrgID, p.OrgID)
		assert.Equal(t, "team", p.Visibility)
		assert.False(t, p.StartDate.Before(sample.Date(p.CreatedAt)))
		if p.Status != models.ProjectStatusCompleted {
			assert.True(t, p.TargetEndDate.After(p.StartDate))
		} else {
			assert.True(t, p.TargetEndDate.Before(g.now), "completed project must have ended")
		}
	}

	for teamID, n := range perTeam {
		assert.GreaterOrEqual(t, n, 2, "team %s has too few projects", teamByID[teamID].Name)
		assert.LessOrEqual(t, n, 5)
	}
}

func TestProjectStatusMix(t *testing.T) {
	g := newTestGenerator(t, 200, 6, 15, 33)
	org := g.LargeOrganization()

	users, err := g.Users(org, testHash)
	require.NoError(t, err)
	teams, err := g.Teams(org)
	require.NoError(t, err)
	projects, err := g.Projects(org, teams, users)
	require.NoError(t, err)

	byStatus := map[models.ProjectStatus]int{}
	for _, p := range projects {
		byStatus[p.Status]++
	}
	assert.Greater(t, byStatus[models.ProjectStatusActive], byStatus[models.ProjectStatusArchived],
		"active must dominate the status mix")
}

func TestSectionsMirrorCatalogWorkflow(t *testing.T) {
	g := newTestGenerator(t, 100, 2, 15, 37)
	org := g.LargeOrganization()

	users, err := g.Users(org, testHash)
	require.NoError(t, err)
	teams, err := g.Teams(org)
	require.NoError(t, err)
	projects, err := g.Projects(org, teams, users)
	require.NoError(t, err)

	sections := g.Sections(projects)

	byProject := map[string][]models.Section{}
	for _, s := range sections {
		byProject[s.ProjectID] = append(byProject[s.ProjectID], s)
	}

	for _, p := range projects {
		got := byProject[p.ProjectID]
		want := g.cat.Projects[p.ProjectType].Sections
		require.Len(t, got, len(want), "project %s section count", p.Name)
		for i, s := range got {
			assert.Equal(t, want[i], s.Name)
			assert.Equal(t, i, s.DisplayOrder)
			assert.Equal(t, p.CreatedAt, s.CreatedAt)
		}
	}
}
