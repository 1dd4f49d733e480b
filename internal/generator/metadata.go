package generator

import (
	"fmt"
	"strconv"

	"orgseed/internal/models"
	"orgseed/internal/sample"
)

var dependencyTypes = []models.DependencyType{
	models.DependencyBlocks, models.DependencyBlockedBy, models.DependencyRelated,
}

// Tags materializes the org-wide tag palette. The palette is set up with the
// workspace, so every tag carries the organization's creation timestamp.
func (g *Generator) Tags(org models.Organization) []models.Tag {
	tags := make([]models.Tag, 0, len(g.cat.Tags))
	for _, spec := range g.cat.Tags {
		tags = append(tags, models.Tag{
			TagID:     g.src.UUID(),
			OrgID:     org.OrgID,
			Name:      spec.Name,
			Color:     spec.Color,
			CreatedAt: org.CreatedAt,
		})
	}
	return tags
}

// CustomFields creates each project's field definitions from the per-type
// field specs. The returned map carries dropdown options per field id so
// value generation does not depend on catalog lookups.
func (g *Generator) CustomFields(projects []models.Project) ([]models.CustomFieldDefinition, map[string][]string) {
	var fields []models.CustomFieldDefinition
	options := make(map[string][]string)

	for _, project := range projects {
		specs, ok := g.cat.CustomFields[project.ProjectType]
		if !ok {
			specs = g.cat.CustomFields[models.ProjectProduct]
		}
		for _, spec := range specs {
			field := models.CustomFieldDefinition{
				FieldID:     g.src.UUID(),
				ProjectID:   project.ProjectID,
				Name:        spec.Name,
				FieldType:   models.FieldType(spec.Type),
				Description: fmt.Sprintf("Custom field: %s", spec.Name),
				IsRequired:  spec.Name == "Status",
				CreatedAt:   project.CreatedAt,
			}
			fields = append(fields, field)
			if len(spec.Options) > 0 {
				options[field.FieldID] = spec.Options
			}
		}
	}
	return fields, options
}

// CustomFieldValues fills every field of every task in the field's project,
// so boards render without holes.
func (g *Generator) CustomFieldValues(tasks []models.Task, fields []models.CustomFieldDefinition, options map[string][]string) []models.CustomFieldValue {
	fieldsByProject := make(map[string][]models.CustomFieldDefinition, len(fields))
	for _, f := range fields {
		fieldsByProject[f.ProjectID] = append(fieldsByProject[f.ProjectID], f)
	}

	var values []models.CustomFieldValue
	for _, task := range tasks {
		for _, field := range fieldsByProject[task.ProjectID] {
			values = append(values, models.CustomFieldValue{
				ValueID:   g.src.UUID(),
				TaskID:    task.TaskID,
				FieldID:   field.FieldID,
				Value:     g.fieldValue(field, options),
				CreatedAt: task.CreatedAt,
			})
		}
	}
	return values
}

func (g *Generator) fieldValue(field models.CustomFieldDefinition, options map[string][]string) string {
	switch field.FieldType {
	case models.FieldTypeDropdown, models.FieldTypeMultiSelect:
		if opts := options[field.FieldID]; len(opts) > 0 {
			return sample.Choice(g.src, opts)
		}
		return ""
	case models.FieldTypeNumber:
		return strconv.Itoa(g.src.IntBetween(1, 100))
	case models.FieldTypeCheckbox:
		return strconv.FormatBool(g.src.Chance(0.5))
	case models.FieldTypeDate:
		return sample.Date(g.now.AddDate(0, 0, g.src.IntBetween(-30, 60))).Format("2006-01-02")
	default:
		return sample.Choice(g.src, g.cat.Tasks.BriefDescriptions)
	}
}

// TaskTags labels 60% of tasks with 1-3 distinct tags.
func (g *Generator) TaskTags(tasks []models.Task, tags []models.Tag) []models.TaskTag {
	var taskTags []models.TaskTag
	for _, task := range tasks {
		if !g.src.Chance(0.60) {
			continue
		}

		count := g.src.IntBetween(1, 3)
		for _, tag := range sample.WithoutReplacement(g.src, tags, count) {
			taskTags = append(taskTags, models.TaskTag{
				TaskTagID: g.src.UUID(),
				TaskID:    task.TaskID,
				TagID:     tag.TagID,
				AddedAt:   task.CreatedAt.AddDate(0, 0, g.src.IntBetween(0, 5)),
			})
		}
	}
	return taskTags
}

// Dependencies links 20% of tasks to 1-2 other tasks in the same project.
// A task never depends on itself and never on the same task twice.
func (g *Generator) Dependencies(tasks []models.Task) []models.TaskDependency {
	tasksByProject := make(map[string][]models.Task, len(tasks))
	for _, t := range tasks {
		tasksByProject[t.ProjectID] = append(tasksByProject[t.ProjectID], t)
	}

	var dependencies []models.TaskDependency
	for _, task := range tasks {
		if !g.src.Chance(0.20) {
			continue
		}

		siblings := tasksByProject[task.ProjectID]
		candidates := make([]models.Task, 0, len(siblings)-1)
		for _, s := range siblings {
			if s.TaskID != task.TaskID {
				candidates = append(candidates, s)
			}
		}
		if len(candidates) == 0 {
			continue
		}

		count := g.src.IntBetween(1, 2)
		if count > len(candidates) {
			count = len(candidates)
		}
		for _, other := range sample.WithoutReplacement(g.src, candidates, count) {
			dependencies = append(dependencies, models.TaskDependency{
				DependencyID:    g.src.UUID(),
				TaskID:          task.TaskID,
				DependsOnTaskID: other.TaskID,
				DependencyType:  sample.Choice(g.src, dependencyTypes),
				CreatedAt:       task.CreatedAt,
			})
		}
	}
	return dependencies
}

// Attachments uploads 1-2 files to 15% of tasks. The assignee uploads when
// the task has one; file sizes span 10KB-5MB and URLs point at the org's
// file host.
func (g *Generator) Attachments(org models.Organization, tasks []models.Task, users []models.User) []models.Attachment {
	var attachments []models.Attachment
	for _, task := range tasks {
		if !g.src.Chance(0.15) {
			continue
		}

		count := g.src.IntBetween(1, 2)
		for i := 0; i < count; i++ {
			var uploader string
			if task.AssigneeID != nil {
				uploader = *task.AssigneeID
			} else {
				uploader = sample.Choice(g.src, users).UserID
			}
			name := sample.Choice(g.src, g.cat.Tasks.AttachmentFiles)
			id := g.src.UUID()
			attachments = append(attachments, models.Attachment{
				AttachmentID:     id,
				TaskID:           task.TaskID,
				FileName:         name,
				FileSize:         int64(g.src.IntBetween(10*1024, 5*1024*1024)),
				FileURL:          fmt.Sprintf("https://files.%s/%s/%s", org.Domain, id, name),
				UploadedByUserID: uploader,
				CreatedAt:        task.CreatedAt.AddDate(0, 0, g.src.IntBetween(0, 7)),
			})
		}
	}
	return attachments
}
