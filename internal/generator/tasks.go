package generator

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"orgseed/internal/models"
	"orgseed/internal/sample"
)

var priorities = []models.TaskPriority{
	models.PriorityLow, models.PriorityMedium, models.PriorityHigh, models.PriorityUrgent,
}
var priorityWeights = []float64{10, 60, 25, 5}

var openStatuses = []models.TaskStatus{
	models.TaskStatusNotStarted, models.TaskStatusInProgress, models.TaskStatusOnHold,
}
var openStatusWeights = []float64{30, 60, 10}

var estimateHours = []float64{2, 4, 8, 16, 24, 40}
var estimateWeights = []float64{20, 25, 30, 15, 8, 2}

// Tasks generates every project's tasks. Active projects get more tasks than
// archived or completed ones; each task lands in a random section of its
// project.
func (g *Generator) Tasks(projects []models.Project, sections []models.Section, users []models.User) []models.Task {
	sectionsByProject := make(map[string][]models.Section, len(projects))
	for _, s := range sections {
		sectionsByProject[s.ProjectID] = append(sectionsByProject[s.ProjectID], s)
	}

	userIDs := make([]string, len(users))
	for i, u := range users {
		userIDs[i] = u.UserID
	}

	var tasks []models.Task
	for _, project := range projects {
		projectSections := sectionsByProject[project.ProjectID]
		if len(projectSections) == 0 {
			continue
		}

		var count int
		if project.Status == models.ProjectStatusActive {
			count = g.src.IntBetween(max(1, g.cfg.TasksPerSection-2), g.cfg.TasksPerSection+5)
		} else {
			count = g.src.IntBetween(3, 10)
		}

		for i := 0; i < count; i++ {
			section := sample.Choice(g.src, projectSections)
			createdAt := g.taskCreationTime(project.CreatedAt)
			tasks = append(tasks, g.newTask(project, section, userIDs, createdAt))
		}
	}
	return tasks
}

func (g *Generator) newTask(project models.Project, section models.Section, userIDs []string, createdAt time.Time) models.Task {
	name := g.taskName(project.ProjectType)
	description := g.taskDescription(name)

	// 85% of tasks are assigned.
	var assigneeID *string
	if g.src.Chance(0.85) {
		id := sample.Choice(g.src, userIDs)
		assigneeID = &id
	}

	dueDate, _ := g.dueDate(createdAt)
	if dueDate != nil {
		d := sample.AvoidWeekend(*dueDate)
		dueDate = &d
	}

	completedAt, isCompleted := g.completionTime(createdAt, completionProbability(project.ProjectType))

	status := models.TaskStatusCompleted
	if !isCompleted {
		status = sample.Weighted(g.src, openStatuses, openStatusWeights)
	}

	// Work that has been picked up records when it started. Completed tasks
	// start on their creation date so the start never trails completion.
	var startDate *time.Time
	switch {
	case isCompleted:
		d := sample.Date(createdAt)
		startDate = &d
	case status == models.TaskStatusInProgress:
		d := sample.Date(createdAt.AddDate(0, 0, g.src.IntBetween(0, 3)))
		startDate = &d
	}

	var estimated *float64
	if g.src.Chance(0.70) {
		h := sample.Weighted(g.src, estimateHours, estimateWeights)
		estimated = &h
	}
	var actual *float64
	if isCompleted && estimated != nil {
		// Actuals track estimates with ~30% noise, floored at half an hour.
		a := *estimated * (1 + g.src.Gauss(0, 0.3))
		if a < 0.5 {
			a = 0.5
		}
		actual = &a
	}

	return models.Task{
		TaskID:          g.src.UUID(),
		ProjectID:       project.ProjectID,
		SectionID:       section.SectionID,
		Name:            name,
		Description:     description,
		AssigneeID:      assigneeID,
		CreatedByUserID: sample.Choice(g.src, userIDs),
		CreatedAt:       createdAt,
		DueDate:         dueDate,
		StartDate:       startDate,
		Priority:        sample.Weighted(g.src, priorities, priorityWeights),
		Status:          status,
		IsCompleted:     isCompleted,
		CompletedAt:     completedAt,
		EstimatedHours:  estimated,
		ActualHours:     actual,
	}
}

func completionProbability(t models.ProjectType) float64 {
	switch t {
	case models.ProjectProductDevelopment:
		return 0.75
	case models.ProjectInfrastructure:
		return 0.70
	default:
		return 0.60
	}
}

// taskCreationTime front-loads task creation: 60% of tasks appear in the
// first 20% of project lifetime, 25% in the first half, 15% anywhere.
// Intra-day times land within business hours.
func (g *Generator) taskCreationTime(projectCreatedAt time.Time) time.Time {
	projectAge := int(g.now.Sub(projectCreatedAt).Hours() / 24)

	var daysIn int
	switch r := g.src.Float64(); {
	case r < 0.60:
		daysIn = g.src.IntBetween(0, max(1, projectAge*20/100))
	case r < 0.85:
		daysIn = g.src.IntBetween(0, max(1, projectAge*50/100))
	default:
		daysIn = g.src.IntBetween(0, projectAge)
	}

	t := g.src.BusinessHours(projectCreatedAt.AddDate(0, 0, daysIn))
	// On day zero the business-hours draw can land earlier in the day than
	// the project's own creation instant; clamp so tasks never predate
	// their project.
	if t.Before(projectCreatedAt) {
		t = projectCreatedAt
	}
	return t
}

// dueDate draws from the five-way weighted branch: 10% no due date, 5%
// already overdue (1-90 days before creation), 25% within a week, 40% within
// a month, 20% one to three months out. The second return value reports the
// overdue branch.
func (g *Generator) dueDate(createdAt time.Time) (*time.Time, bool) {
	created := sample.Date(createdAt)

	var due time.Time
	overdue := false
	switch r := g.src.Float64(); {
	case r < 0.10:
		return nil, false
	case r < 0.15:
		due = created.AddDate(0, 0, -g.src.IntBetween(1, 90))
		overdue = true
	case r < 0.40:
		due = created.AddDate(0, 0, g.src.IntBetween(1, 7))
	case r < 0.80:
		due = created.AddDate(0, 0, g.src.IntBetween(1, 30))
	default:
		due = created.AddDate(0, 0, g.src.IntBetween(30, 90))
	}
	return &due, overdue
}

// completionTime samples cycle time from a log-normal distribution
// (location 1.0, shape 0.8) truncated to [1, 14] days. Truncation keeps
// completed_at strictly after created_at, so no corrective pass is needed.
func (g *Generator) completionTime(createdAt time.Time, probability float64) (*time.Time, bool) {
	if !g.src.Chance(probability) {
		return nil, false
	}
	cycleDays := g.src.LogNormal(1.0, 0.8, 1, 14)
	completedAt := createdAt.Add(time.Duration(cycleDays * 24 * float64(time.Hour)))
	return &completedAt, true
}

var slotPattern = regexp.MustCompile(`\{([a-z_]+)\}`)

// taskName synthesizes a title from a type-specific sentence template, with
// slots filled from the domain vocabularies.
func (g *Generator) taskName(projectType models.ProjectType) string {
	patterns := g.cat.Tasks.TitlePatterns[projectType]
	if len(patterns) == 0 {
		patterns = g.cat.Tasks.TitlePatterns[models.ProjectProduct]
	}
	name := g.fillPattern(sample.Choice(g.src, patterns))
	return upperFirst(name)
}

func (g *Generator) fillPattern(pattern string) string {
	return slotPattern.ReplaceAllStringFunc(pattern, func(m string) string {
		slot := m[1 : len(m)-1]
		if slot == "version" {
			return fmt.Sprintf("v%d.%d", g.src.IntBetween(1, 5), g.src.IntBetween(0, 9))
		}
		if words, ok := g.cat.Tasks.Vocab[slot]; ok {
			return sample.Choice(g.src, words)
		}
		return m
	})
}

// taskDescription is tiered to model real documentation effort: 20% empty,
// 50% a single line, 30% multi-section structured text.
func (g *Generator) taskDescription(name string) *string {
	var text string
	switch r := g.src.Float64(); {
	case r < 0.20:
		return nil
	case r < 0.70:
		text = sample.Choice(g.src, g.cat.Tasks.BriefDescriptions)
	default:
		tpl := sample.Choice(g.src, g.cat.Tasks.DetailedTemplates)
		tpl = strings.ReplaceAll(tpl, "{name}", name)
		tpl = strings.ReplaceAll(tpl, "{weeks}", strconv.Itoa(g.src.IntBetween(1, 4)))
		text = g.fillPattern(tpl)
	}
	return &text
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// Subtasks attaches 1-4 lifecycle-stage subtasks to 40% of tasks. Due date
// and completion state mirror the parent exactly.
func (g *Generator) Subtasks(tasks []models.Task, users []models.User) []models.Subtask {
	var subtasks []models.Subtask
	for _, task := range tasks {
		if !g.src.Chance(0.40) {
			continue
		}

		count := g.src.IntBetween(1, 4)
		for i := 0; i < count; i++ {
			var description *string
			if g.src.Chance(0.5) {
				d := sample.Choice(g.src, g.cat.Tasks.SubtaskDescriptions)
				description = &d
			}
			var assigneeID *string
			if g.src.Chance(0.5) {
				id := sample.Choice(g.src, users).UserID
				assigneeID = &id
			}
			var completedAt *time.Time
			if task.IsCompleted {
				completedAt = task.CompletedAt
			}

			subtasks = append(subtasks, models.Subtask{
				SubtaskID:   g.src.UUID(),
				TaskID:      task.TaskID,
				Name:        sample.Choice(g.src, g.cat.Tasks.SubtaskNames),
				Description: description,
				AssigneeID:  assigneeID,
				CreatedAt:   task.CreatedAt.AddDate(0, 0, g.src.IntBetween(0, 5)),
				DueDate:     task.DueDate,
				IsCompleted: task.IsCompleted,
				CompletedAt: completedAt,
			})
		}
	}
	return subtasks
}

// Comments attaches 1-3 status-update comments to 30% of tasks, 0-10 days
// after task creation.
func (g *Generator) Comments(tasks []models.Task, users []models.User) []models.Comment {
	var comments []models.Comment
	for _, task := range tasks {
		if !g.src.Chance(0.30) {
			continue
		}

		count := g.src.IntBetween(1, 3)
		for i := 0; i < count; i++ {
			comments = append(comments, models.Comment{
				CommentID: g.src.UUID(),
				TaskID:    task.TaskID,
				UserID:    sample.Choice(g.src, users).UserID,
				Content:   sample.Choice(g.src, g.cat.Tasks.CommentPhrases),
				CreatedAt: task.CreatedAt.AddDate(0, 0, g.src.IntBetween(0, 10)),
				IsEdited:  false,
			})
		}
	}
	return comments
}
