package generator

import (
	"strings"

	"orgseed/internal/models"
	"orgseed/internal/sample"
)

var seniorityLevels = []models.SeniorityLevel{
	models.SeniorityIntern,
	models.SeniorityJunior,
	models.SeniorityMid,
	models.SenioritySenior,
	models.SeniorityStaff,
	models.SeniorityPrincipal,
}

var seniorityWeights = []float64{5, 30, 40, 20, 4, 1}

var roles = []models.UserRole{
	models.RoleIndividualContributor,
	models.RoleLead,
	models.RoleManager,
	models.RoleDirector,
	models.RoleExecutive,
}

// roleWeights conditions the role draw on seniority: the more senior the
// person, the more likely they hold a leadership role.
func roleWeights(s models.SeniorityLevel) []float64 {
	switch s {
	case models.SeniorityPrincipal:
		return []float64{20, 40, 30, 10, 0}
	case models.SeniorityStaff:
		return []float64{40, 30, 25, 5, 0}
	case models.SenioritySenior:
		return []float64{60, 20, 15, 5, 0}
	case models.SeniorityMid:
		return []float64{80, 10, 8, 2, 0}
	default: // junior, intern
		return []float64{95, 3, 2, 0, 0}
	}
}

// Users generates the workspace member population. Email uniqueness is the
// only retry loop in the pipeline: a colliding draw discards the entire user
// and rebuilds one, bounded by maxUniqueAttempts.
func (g *Generator) Users(org models.Organization, passwordHash string) ([]models.User, error) {
	users := make([]models.User, 0, g.cfg.Users)
	usedEmails := make(map[string]struct{}, g.cfg.Users)

	for i := 0; i < g.cfg.Users; i++ {
		user, err := retryUnique(usedEmails, "user email", func() (models.User, string) {
			u := g.newUser(org, passwordHash)
			return u, u.Email
		})
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func (g *Generator) newUser(org models.Organization, passwordHash string) models.User {
	var first string
	if g.src.Chance(0.5) {
		first = sample.Choice(g.src, g.cat.People.FirstNamesMale)
	} else {
		first = sample.Choice(g.src, g.cat.People.FirstNamesFemale)
	}
	last := sample.Choice(g.src, g.cat.People.LastNames)

	seniority := sample.Weighted(g.src, seniorityLevels, seniorityWeights)
	role := sample.Weighted(g.src, roles, roleWeights(seniority))

	return models.User{
		UserID:         g.src.UUID(),
		OrgID:          org.OrgID,
		Email:          g.email(first, last, org.Domain),
		FullName:       first + " " + last,
		FirstName:      first,
		LastName:       last,
		PasswordHash:   passwordHash,
		Role:           role,
		SeniorityLevel: seniority,
		CreatedAt:      g.src.DaysAgo(g.now, 30, 365*3),
		IsActive:       g.src.Chance(0.95),
		Department:     sample.Choice(g.src, g.cat.People.Departments),
	}
}

// email composes one of the three corporate address patterns:
// first.last, flast, firstlast.
func (g *Generator) email(first, last, domain string) string {
	first = strings.ToLower(first)
	last = strings.ToLower(last)
	patterns := []string{
		first + "." + last,
		first[:1] + last,
		first + last,
	}
	return sample.Choice(g.src, patterns) + "@" + domain
}

// EnsureRoleDistribution is phase two of the two-phase user design. Phase
// one draws role and seniority independently per user; this pass rewrites
// both across the whole population so the org-wide split holds: 1%
// executive, 4% director, 10% manager, 15% lead, 70% individual
// contributor, each with a seniority drawn from that role's allowed subset.
func (g *Generator) EnsureRoleDistribution(users []models.User) []models.User {
	for i := range users {
		r := g.src.Float64()
		switch {
		case r < 0.01:
			users[i].Role = models.RoleExecutive
			users[i].SeniorityLevel = sample.Choice(g.src, []models.SeniorityLevel{
				models.SeniorityStaff, models.SeniorityPrincipal,
			})
		case r < 0.05:
			users[i].Role = models.RoleDirector
			users[i].SeniorityLevel = sample.Choice(g.src, []models.SeniorityLevel{
				models.SenioritySenior, models.SeniorityStaff, models.SeniorityPrincipal,
			})
		case r < 0.15:
			users[i].Role = models.RoleManager
			users[i].SeniorityLevel = sample.Choice(g.src, []models.SeniorityLevel{
				models.SeniorityMid, models.SenioritySenior, models.SeniorityStaff,
			})
		case r < 0.30:
			users[i].Role = models.RoleLead
			users[i].SeniorityLevel = sample.Choice(g.src, []models.SeniorityLevel{
				models.SeniorityMid, models.SenioritySenior,
			})
		default:
			users[i].Role = models.RoleIndividualContributor
			users[i].SeniorityLevel = sample.Choice(g.src, []models.SeniorityLevel{
				models.SeniorityIntern, models.SeniorityJunior, models.SeniorityMid,
			})
		}
	}
	return users
}
