// Package catalog loads the embedded content catalogs (name lists, title
// templates, tag palettes) the generators sample from. The catalogs are
// opaque lookup tables: all statistical shaping lives in the generators.
package catalog

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"orgseed/internal/models"
)

//go:embed data/*.yaml
var dataFS embed.FS

type People struct {
	FirstNamesMale   []string `yaml:"first_names_male"`
	FirstNamesFemale []string `yaml:"first_names_female"`
	LastNames        []string `yaml:"last_names"`
	Departments      []string `yaml:"departments"`
}

type Organizations struct {
	Industries       []string `yaml:"industries"`
	CompanyPrefixes  []string `yaml:"company_prefixes"`
	CompanySuffixes  []string `yaml:"company_suffixes"`
	DomainExtensions []string `yaml:"domain_extensions"`
}

// TeamProfile holds the name pool and boilerplate description for one team type.
type TeamProfile struct {
	Description string   `yaml:"description"`
	Names       []string `yaml:"names"`
}

// ProjectProfile holds the name pool and the ordered workflow sections for
// one project type.
type ProjectProfile struct {
	Description string   `yaml:"description"`
	Names       []string `yaml:"names"`
	Sections    []string `yaml:"sections"`
}

type TagSpec struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

type FieldSpec struct {
	Name    string   `yaml:"name"`
	Type    string   `yaml:"type"`
	Options []string `yaml:"options"`
}

type Tasks struct {
	TitlePatterns       map[models.ProjectType][]string `yaml:"title_patterns"`
	Vocab               map[string][]string             `yaml:"vocab"`
	BriefDescriptions   []string                        `yaml:"brief_descriptions"`
	DetailedTemplates   []string                        `yaml:"detailed_templates"`
	SubtaskNames        []string                        `yaml:"subtask_names"`
	SubtaskDescriptions []string                        `yaml:"subtask_descriptions"`
	CommentPhrases      []string                        `yaml:"comment_phrases"`
	AttachmentFiles     []string                        `yaml:"attachment_files"`
}

type Catalog struct {
	People        People
	Organizations Organizations
	Teams         map[models.TeamType]TeamProfile
	Projects      map[models.ProjectType]ProjectProfile
	Tasks         Tasks
	Tags          []TagSpec
	CustomFields  map[models.ProjectType][]FieldSpec
}

// Load parses every embedded catalog file. A missing or malformed catalog is
// a configuration error and aborts the run before generation starts.
func Load() (*Catalog, error) {
	var c Catalog

	if err := parse("people.yaml", &c.People); err != nil {
		return nil, err
	}
	if err := parse("organizations.yaml", &c.Organizations); err != nil {
		return nil, err
	}

	var teams struct {
		Teams map[models.TeamType]TeamProfile `yaml:"teams"`
	}
	if err := parse("teams.yaml", &teams); err != nil {
		return nil, err
	}
	c.Teams = teams.Teams

	var projects struct {
		Projects map[models.ProjectType]ProjectProfile `yaml:"projects"`
	}
	if err := parse("projects.yaml", &projects); err != nil {
		return nil, err
	}
	c.Projects = projects.Projects

	if err := parse("tasks.yaml", &c.Tasks); err != nil {
		return nil, err
	}

	var fields struct {
		Tags         []TagSpec                          `yaml:"tags"`
		CustomFields map[models.ProjectType][]FieldSpec `yaml:"custom_fields"`
	}
	if err := parse("fields.yaml", &fields); err != nil {
		return nil, err
	}
	c.Tags = fields.Tags
	c.CustomFields = fields.CustomFields

	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func parse(name string, out any) error {
	data, err := dataFS.ReadFile("data/" + name)
	if err != nil {
		return fmt.Errorf("read catalog %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse catalog %s: %w", name, err)
	}
	return nil
}

func (c *Catalog) validate() error {
	checks := []struct {
		name string
		n    int
	}{
		{"people.first_names_male", len(c.People.FirstNamesMale)},
		{"people.first_names_female", len(c.People.FirstNamesFemale)},
		{"people.last_names", len(c.People.LastNames)},
		{"people.departments", len(c.People.Departments)},
		{"organizations.industries", len(c.Organizations.Industries)},
		{"organizations.domain_extensions", len(c.Organizations.DomainExtensions)},
		{"teams", len(c.Teams)},
		{"projects", len(c.Projects)},
		{"tasks.vocab", len(c.Tasks.Vocab)},
		{"tasks.brief_descriptions", len(c.Tasks.BriefDescriptions)},
		{"tasks.detailed_templates", len(c.Tasks.DetailedTemplates)},
		{"tasks.subtask_names", len(c.Tasks.SubtaskNames)},
		{"tasks.comment_phrases", len(c.Tasks.CommentPhrases)},
		{"tags", len(c.Tags)},
		{"custom_fields", len(c.CustomFields)},
	}
	for _, check := range checks {
		if check.n == 0 {
			return fmt.Errorf("catalog %s is empty", check.name)
		}
	}
	for teamType, profile := range c.Teams {
		if len(profile.Names) == 0 {
			return fmt.Errorf("catalog teams.%s has no names", teamType)
		}
	}
	for projectType, profile := range c.Projects {
		if len(profile.Names) == 0 {
			return fmt.Errorf("catalog projects.%s has no names", projectType)
		}
		if len(profile.Sections) == 0 {
			return fmt.Errorf("catalog projects.%s has no sections", projectType)
		}
	}
	return nil
}
