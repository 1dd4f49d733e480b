package generator

import (
	"fmt"

	"orgseed/internal/models"
	"orgseed/internal/sample"
)

var quarters = []string{"Q1", "Q2", "Q3", "Q4"}
var quarterYears = []int{2024, 2025}

// projectTypesFor maps a team type to the project types it runs.
func projectTypesFor(t models.TeamType) []models.ProjectType {
	switch t {
	case models.TeamEngineering:
		return []models.ProjectType{models.ProjectProductDevelopment, models.ProjectInfrastructure}
	case models.TeamMarketing:
		return []models.ProjectType{models.ProjectMarketingCampaign}
	case models.TeamOperations:
		return []models.ProjectType{models.ProjectOperations}
	case models.TeamProduct:
		return []models.ProjectType{models.ProjectProduct}
	default:
		return []models.ProjectType{models.ProjectProductDevelopment, models.ProjectOperations}
	}
}

// Projects generates each team's projects. Leadership teams run no projects.
// Names are unique across the whole run.
func (g *Generator) Projects(org models.Organization, teams []models.Team, users []models.User) ([]models.Project, error) {
	var projects []models.Project
	usedNames := make(map[string]struct{})

	for _, team := range teams {
		if team.TeamType == models.TeamLeadership {
			continue
		}

		count := g.src.IntBetween(max(1, g.cfg.ProjectsPerTeam-1), g.cfg.ProjectsPerTeam+2)
		types := projectTypesFor(team.TeamType)

		for i := 0; i < count; i++ {
			projectType := sample.Choice(g.src, types)
			owner := sample.Choice(g.src, users)

			project, err := retryUnique(usedNames, "project name", func() (models.Project, string) {
				p := g.newProject(org, team, owner, projectType)
				return p, p.Name
			})
			if err != nil {
				return nil, err
			}
			projects = append(projects, project)
		}
	}
	return projects, nil
}

func (g *Generator) newProject(org models.Organization, team models.Team, owner models.User, projectType models.ProjectType) models.Project {
	profile := g.cat.Projects[projectType]

	name := sample.Choice(g.src, profile.Names)
	// A quarter/year token disambiguates recurring initiative names.
	if g.src.Chance(0.30) {
		name = fmt.Sprintf("%s %s %d", name, sample.Choice(g.src, quarters), sample.Choice(g.src, quarterYears))
	}

	createdAt := g.src.DaysAgo(g.now, 10, 365)
	startDate := sample.Date(createdAt.AddDate(0, 0, g.src.IntBetween(0, 10)))
	targetEndDate := startDate.AddDate(0, 0, g.src.IntBetween(30, 180))

	status := models.ProjectStatusActive
	switch r := g.src.Float64(); {
	case r < 0.10:
		status = models.ProjectStatusCompleted
		// Completed projects must have wrapped up before the reference moment.
		targetEndDate = sample.Date(g.src.DaysAgo(g.now, 1, 100))
	case r < 0.30:
		status = models.ProjectStatusArchived
	}

	return models.Project{
		ProjectID:     g.src.UUID(),
		OrgID:         org.OrgID,
		TeamID:        team.TeamID,
		Name:          name,
		Description:   profile.Description,
		ProjectType:   projectType,
		Status:        status,
		CreatedAt:     createdAt,
		StartDate:     startDate,
		TargetEndDate: targetEndDate,
		OwnerUserID:   owner.UserID,
		Visibility:    "team",
	}
}

// Sections spawns each project's fixed workflow columns; display order is
// the catalog index.
func (g *Generator) Sections(projects []models.Project) []models.Section {
	var sections []models.Section
	for _, project := range projects {
		profile := g.cat.Projects[project.ProjectType]
		for order, name := range profile.Sections {
			sections = append(sections, models.Section{
				SectionID:    g.src.UUID(),
				ProjectID:    project.ProjectID,
				Name:         name,
				Description:  fmt.Sprintf("Section for %s status", name),
				DisplayOrder: order,
				CreatedAt:    project.CreatedAt,
			})
		}
	}
	return sections
}
