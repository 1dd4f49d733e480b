package generator

import (
	"orgseed/internal/models"
	"orgseed/internal/sample"
)

// orgChart is the fixed organizational skeleton; counts are randomized
// within each range per run.
var orgChart = []struct {
	teamType models.TeamType
	min, max int
}{
	{models.TeamLeadership, 1, 1},
	{models.TeamEngineering, 2, 3},
	{models.TeamProduct, 1, 2},
	{models.TeamDesign, 1, 2},
	{models.TeamData, 1, 2},
	{models.TeamMarketing, 2, 3},
	{models.TeamSales, 2, 3},
	{models.TeamOperations, 1, 1},
}

// teamSizeRanges are type-specific headcount targets for membership
// assignment.
var teamSizeRanges = map[models.TeamType][2]int{
	models.TeamLeadership:  {8, 12},
	models.TeamEngineering: {15, 35},
	models.TeamProduct:     {8, 15},
	models.TeamDesign:      {5, 12},
	models.TeamData:        {8, 15},
	models.TeamMarketing:   {10, 25},
	models.TeamSales:       {15, 40},
	models.TeamOperations:  {10, 20},
}

// membershipSoftCap is the preferred maximum number of teams per user.
// Selection prefers users under the cap but falls back to the full pool when
// too few remain, so a user can exceed it in small populations.
const membershipSoftCap = 3

// joinBufferDays keeps join timestamps at least this many days after the
// team was created.
const joinBufferDays = 5

// Teams generates the org chart with unique names per type catalog.
func (g *Generator) Teams(org models.Organization) ([]models.Team, error) {
	var teams []models.Team
	usedNames := make(map[string]struct{})

	for _, plan := range orgChart {
		count := g.src.IntBetween(plan.min, plan.max)
		for i := 0; i < count; i++ {
			team, err := retryUnique(usedNames, string(plan.teamType)+" team name", func() (models.Team, string) {
				t := g.newTeam(org, plan.teamType)
				return t, t.Name
			})
			if err != nil {
				return nil, err
			}
			teams = append(teams, team)
		}
	}
	return teams, nil
}

func (g *Generator) newTeam(org models.Organization, teamType models.TeamType) models.Team {
	profile := g.cat.Teams[teamType]
	return models.Team{
		TeamID:      g.src.UUID(),
		OrgID:       org.OrgID,
		Name:        sample.Choice(g.src, profile.Names),
		Description: profile.Description,
		TeamType:    teamType,
		CreatedAt:   g.src.DaysAgo(g.now, 10, 180),
		IsActive:    g.src.Chance(0.95),
	}
}

// Memberships assigns users to teams. Candidates are drawn preferentially
// from users below the soft membership cap; a user may hold multiple
// memberships but never two in the same team.
func (g *Generator) Memberships(teams []models.Team, users []models.User) []models.TeamMembership {
	var memberships []models.TeamMembership
	teamCount := make(map[string]int, len(users))

	for _, team := range teams {
		sizeRange, ok := teamSizeRanges[team.TeamType]
		if !ok {
			sizeRange = [2]int{10, 20}
		}
		size := g.src.IntBetween(sizeRange[0], sizeRange[1])

		candidates := make([]models.User, 0, len(users))
		for _, u := range users {
			if teamCount[u.UserID] < membershipSoftCap {
				candidates = append(candidates, u)
			}
		}
		if len(candidates) < size {
			candidates = users
		}

		for _, user := range sample.WithoutReplacement(g.src, candidates, size) {
			isLead := g.leadChance(user)
			roleInTeam := "member"
			if isLead {
				roleInTeam = "lead"
			}

			sinceCreation := int(g.now.Sub(team.CreatedAt).Hours() / 24)
			daysAgo := g.src.IntBetween(0, max(1, sinceCreation-joinBufferDays))

			memberships = append(memberships, models.TeamMembership{
				MembershipID: g.src.UUID(),
				TeamID:       team.TeamID,
				UserID:       user.UserID,
				JoinedAt:     g.now.AddDate(0, 0, -daysAgo),
				IsLead:       isLead,
				RoleInTeam:   roleInTeam,
			})
			teamCount[user.UserID]++
		}
	}
	return memberships
}

// leadChance conditions the lead designation on role and seniority:
// managers and above get a 60% chance, senior+ individual contributors 20%.
func (g *Generator) leadChance(user models.User) bool {
	switch user.Role {
	case models.RoleLead, models.RoleManager, models.RoleDirector, models.RoleExecutive:
		return g.src.Chance(0.6)
	}
	switch user.SeniorityLevel {
	case models.SenioritySenior, models.SeniorityStaff, models.SeniorityPrincipal:
		return g.src.Chance(0.2)
	}
	return false
}
