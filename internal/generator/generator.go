// Package generator produces the workspace dataset: a single organization
// with users, teams, projects, tasks and their metadata, shaped by designed
// probability distributions and consistent across entities. Stages run in
// strict foreign-key dependency order; each stage is a function of previously
// generated collections, the shared random source and the reference moment.
package generator

import (
	"errors"
	"fmt"
	"log"
	"time"

	"orgseed/internal/catalog"
	"orgseed/internal/config"
	"orgseed/internal/models"
	"orgseed/internal/sample"
)

// maxUniqueAttempts bounds every uniqueness-retry loop. Exceeding it means
// the name/email catalogs are too small for the requested volume.
const maxUniqueAttempts = 1000

var ErrCatalogExhausted = errors.New("catalog exhausted")

// Generator holds the inputs shared by every stage.
type Generator struct {
	cfg *config.Config
	cat *catalog.Catalog
	src *sample.Source
	now time.Time
}

// New builds a Generator anchored at the reference moment now. All relative
// offsets (entity ages, due dates, join times) are computed against it.
func New(cfg *config.Config, cat *catalog.Catalog, src *sample.Source, now time.Time) *Generator {
	return &Generator{cfg: cfg, cat: cat, src: src, now: now}
}

// Dataset is one complete generation run, collections ordered by dependency.
type Dataset struct {
	Organization      models.Organization
	Users             []models.User
	Teams             []models.Team
	Memberships       []models.TeamMembership
	Projects          []models.Project
	Sections          []models.Section
	Tasks             []models.Task
	Subtasks          []models.Subtask
	Comments          []models.Comment
	Tags              []models.Tag
	CustomFields      []models.CustomFieldDefinition
	CustomFieldValues []models.CustomFieldValue
	TaskTags          []models.TaskTag
	Dependencies      []models.TaskDependency
	Attachments       []models.Attachment
}

// EntityCount pairs an entity name with how many rows were generated.
type EntityCount struct {
	Entity string
	Count  int
}

func (d *Dataset) Counts() []EntityCount {
	return []EntityCount{
		{"organizations", 1},
		{"users", len(d.Users)},
		{"teams", len(d.Teams)},
		{"team_memberships", len(d.Memberships)},
		{"projects", len(d.Projects)},
		{"sections", len(d.Sections)},
		{"tasks", len(d.Tasks)},
		{"subtasks", len(d.Subtasks)},
		{"comments", len(d.Comments)},
		{"tags", len(d.Tags)},
		{"custom_field_definitions", len(d.CustomFields)},
		{"custom_field_values", len(d.CustomFieldValues)},
		{"task_tags", len(d.TaskTags)},
		{"task_dependencies", len(d.Dependencies)},
		{"attachments", len(d.Attachments)},
	}
}

// Run executes the full pipeline. passwordHash is stamped on every user; it
// is computed once by the caller so the pipeline itself stays deterministic
// for a given seed.
func (g *Generator) Run(passwordHash string) (*Dataset, error) {
	log.Println("[1/12] Generating organization...")
	org := g.LargeOrganization()

	log.Println("[2/12] Generating users...")
	users, err := g.Users(org, passwordHash)
	if err != nil {
		return nil, err
	}
	users = g.EnsureRoleDistribution(users)

	log.Println("[3/12] Generating teams...")
	teams, err := g.Teams(org)
	if err != nil {
		return nil, err
	}

	log.Println("[4/12] Generating team memberships...")
	memberships := g.Memberships(teams, users)

	log.Println("[5/12] Generating projects...")
	projects, err := g.Projects(org, teams, users)
	if err != nil {
		return nil, err
	}

	log.Println("[6/12] Generating sections...")
	sections := g.Sections(projects)

	log.Println("[7/12] Generating tasks...")
	tasks := g.Tasks(projects, sections, users)

	log.Println("[8/12] Generating subtasks...")
	subtasks := g.Subtasks(tasks, users)

	log.Println("[9/12] Generating comments...")
	comments := g.Comments(tasks, users)

	log.Println("[10/12] Generating tags and custom fields...")
	tags := g.Tags(org)
	fields, fieldOptions := g.CustomFields(projects)
	values := g.CustomFieldValues(tasks, fields, fieldOptions)
	taskTags := g.TaskTags(tasks, tags)

	log.Println("[11/12] Generating task dependencies...")
	dependencies := g.Dependencies(tasks)

	log.Println("[12/12] Generating attachments...")
	attachments := g.Attachments(org, tasks, users)

	return &Dataset{
		Organization:      org,
		Users:             users,
		Teams:             teams,
		Memberships:       memberships,
		Projects:          projects,
		Sections:          sections,
		Tasks:             tasks,
		Subtasks:          subtasks,
		Comments:          comments,
		Tags:              tags,
		CustomFields:      fields,
		CustomFieldValues: values,
		TaskTags:          taskTags,
		Dependencies:      dependencies,
		Attachments:       attachments,
	}, nil
}

// retryUnique re-invokes build until key is unused, up to maxUniqueAttempts.
// The accepted key is recorded in used.
func retryUnique[T any](used map[string]struct{}, what string, build func() (T, string)) (T, error) {
	for i := 0; i < maxUniqueAttempts; i++ {
		v, key := build()
		if _, dup := used[key]; !dup {
			used[key] = struct{}{}
			return v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%s: %w after %d attempts", what, ErrCatalogExhausted, maxUniqueAttempts)
}
