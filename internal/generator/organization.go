package generator

import (
	"strings"

	"orgseed/internal/models"
	"orgseed/internal/sample"
)

// orgAgeMonths is the default operational history for generic organizations.
const orgAgeMonths = 36

// Organization produces a generic company: tiered employee count, random
// industry, 80% verified domains.
func (g *Generator) Organization() models.Organization {
	name := g.companyName()
	ext := sample.Choice(g.src, g.cat.Organizations.DomainExtensions)
	domain := domainName(name) + "." + ext

	// Most companies land in the 50-2000 band; a few are larger or smaller.
	buckets := [][2]int{{10, 50}, {50, 500}, {500, 2000}, {2000, 10000}}
	bucket := sample.Weighted(g.src, buckets, []float64{10, 50, 30, 10})

	return models.Organization{
		OrgID:         g.src.UUID(),
		Name:          name,
		Domain:        domain,
		IsVerified:    g.src.Chance(0.80),
		CreatedAt:     g.src.DaysAgo(g.now, 30, orgAgeMonths*30),
		EmployeeCount: g.src.IntBetween(bucket[0], bucket[1]),
		Industry:      sample.Choice(g.src, g.cat.Organizations.Industries),
	}
}

// LargeOrganization is the variant the pipeline uses: a single established
// B2B SaaS company with 5000-10000 employees, 3-7 years of history and a
// verified .com domain.
func (g *Generator) LargeOrganization() models.Organization {
	name := g.cfg.OrgName
	return models.Organization{
		OrgID:         g.src.UUID(),
		Name:          name,
		Domain:        domainName(name) + ".com",
		IsVerified:    true,
		CreatedAt:     g.src.DaysAgo(g.now, 365*3, 365*7),
		EmployeeCount: g.src.IntBetween(5000, 10000),
		Industry:      "SaaS",
	}
}

func (g *Generator) companyName() string {
	prefix := sample.Choice(g.src, g.cat.Organizations.CompanyPrefixes)
	suffix := sample.Choice(g.src, g.cat.Organizations.CompanySuffixes)
	return prefix + suffix
}

func domainName(company string) string {
	return strings.ToLower(strings.ReplaceAll(company, " ", ""))
}
