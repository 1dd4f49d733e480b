package generator

import (
	"testing"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orgseed/internal/models"
	"orgseed/internal/sample"
)

type taskFixture struct {
	g        *Generator
	projects []models.Project
	tasks    []models.Task
	users    []models.User
	byID     map[string]models.Project
}

func generateTasks(t *testing.T, seed int64) taskFixture {
	t.Helper()
	g := newTestGenerator(t, 150, 3, 10, seed)
	org := g.LargeOrganization()

	users, err := g.Users(org, testHash)
	require.NoError(t, err)
	teams, err := g.Teams(org)
	require.NoError(t, err)
	projects, err := g.Projects(org, teams, users)
	require.NoError(t, err)
	sections := g.Sections(projects)
	tasks := g.Tasks(projects, sections, users)
	require.NotEmpty(t, tasks)

	byID := map[string]models.Project{}
	for _, p := range projects {
		byID[p.ProjectID] = p
	}
	return taskFixture{g: g, projects: projects, tasks: tasks, users: users, byID: byID}
}

func TestTaskCountsPerProject(t *testing.T) {
	f := generateTasks(t, 41)

	perProject := map[string]int{}
	for _, task := range f.tasks {
		perProject[task.ProjectID]++
	}
	for _, p := range f.projects {
		n := perProject[p.ProjectID]
		if p.Status == models.ProjectStatusActive {
			assert.GreaterOrEqual(t, n, 8, "active project %s", p.Name)
			assert.LessOrEqual(t, n, 15)
		} else {
			assert.GreaterOrEqual(t, n, 3)
			assert.LessOrEqual(t, n, 10)
		}
	}
}

func TestTaskTemporalInvariants(t *testing.T) {
	f := generateTasks(t, 43)

	for _, task := range f.tasks {
		project := f.byID[task.ProjectID]
		assert.False(t, task.CreatedAt.Before(project.CreatedAt),
			"task created before its project")
		assert.False(t, task.CreatedAt.After(f.g.now.AddDate(0, 0, 1)))

		hour := task.CreatedAt.Hour()
		assert.GreaterOrEqual(t, hour, 8)
		assert.LessOrEqual(t, hour, 18)

		if task.IsCompleted {
			assert.Equal(t, models.TaskStatusCompleted, task.Status)
			require.NotNil(t, task.CompletedAt)
			assert.True(t, task.CompletedAt.After(task.CreatedAt),
				"completion must follow creation")
			assert.LessOrEqual(t, task.CompletedAt.Sub(task.CreatedAt), 15*24*time.Hour)
		} else {
			assert.NotEqual(t, models.TaskStatusCompleted, task.Status)
			assert.Nil(t, task.CompletedAt)
		}

		if task.StartDate != nil {
			assert.False(t, task.StartDate.Before(sample.Date(task.CreatedAt)))
			if task.CompletedAt != nil {
				assert.False(t, task.StartDate.After(*task.CompletedAt))
			}
		} else {
			assert.False(t, task.IsCompleted)
			assert.NotEqual(t, models.TaskStatusInProgress, task.Status)
		}
	}
}

func TestTaskCreationNeverPrecedesSameDayProject(t *testing.T) {
	g := newTestGenerator(t, 10, 2, 5, 97)

	// A project created mid-morning on the reference day: the business-hours
	// draw for a day-zero task could otherwise land earlier that morning.
	projectCreatedAt := g.now.Add(-3 * time.Hour)
	for i := 0; i < 500; i++ {
		got := g.taskCreationTime(projectCreatedAt)
		assert.False(t, got.Before(projectCreatedAt),
			"task at %s predates its project at %s", got, projectCreatedAt)
	}
}

func TestTaskDueDatesSkipWeekends(t *testing.T) {
	f := generateTasks(t, 47)

	withDue := 0
	for _, task := range f.tasks {
		if task.DueDate == nil {
			continue
		}
		withDue++
		wd := task.DueDate.Weekday()
		assert.NotEqual(t, time.Saturday, wd, "due date on a Saturday")
		assert.NotEqual(t, time.Sunday, wd, "due date on a Sunday")

		// Midnight UTC civil date.
		assert.Equal(t, 0, task.DueDate.Hour())
		assert.Equal(t, time.UTC, task.DueDate.Location())

		// Window spans the overdue branch (90 days back) through the long
		// branch (90 days out, +2 for weekend shifts).
		delta := task.DueDate.Sub(task.CreatedAt)
		assert.GreaterOrEqual(t, delta, -91*24*time.Hour)
		assert.LessOrEqual(t, delta, 93*24*time.Hour)
	}
	// Roughly 90% of tasks carry a due date.
	assert.Greater(t, withDue, len(f.tasks)*7/10)
	assert.Less(t, withDue, len(f.tasks))
}

func TestTaskEstimates(t *testing.T) {
	f := generateTasks(t, 53)

	allowed := map[float64]bool{2: true, 4: true, 8: true, 16: true, 24: true, 40: true}
	estimated, actuals := 0, 0
	for _, task := range f.tasks {
		if task.EstimatedHours != nil {
			estimated++
			assert.True(t, allowed[*task.EstimatedHours],
				"estimate %v is off the scale", *task.EstimatedHours)
		}
		if task.ActualHours != nil {
			actuals++
			require.NotNil(t, task.EstimatedHours, "actuals require an estimate")
			assert.True(t, task.IsCompleted, "actuals require completion")
			assert.GreaterOrEqual(t, *task.ActualHours, 0.5)
		}
	}
	assert.Greater(t, estimated, len(f.tasks)/2)
	assert.Greater(t, actuals, 0)
}

func TestTaskNamesAndDescriptions(t *testing.T) {
	f := generateTasks(t, 59)

	var withDesc, without int
	for _, task := range f.tasks {
		require.NotEmpty(t, task.Name)
		r, _ := utf8.DecodeRuneInString(task.Name)
		assert.False(t, unicode.IsLower(r), "task name %q starts lowercase", task.Name)
		assert.NotContains(t, task.Name, "{", "unresolved slot in %q", task.Name)

		if task.Description != nil {
			withDesc++
			assert.NotEmpty(t, *task.Description)
			assert.NotContains(t, *task.Description, "{weeks}")
		} else {
			without++
		}
	}
	assert.Greater(t, withDesc, 0)
	assert.Greater(t, without, 0)
}

func TestSubtasksMirrorParent(t *testing.T) {
	f := generateTasks(t, 61)
	subtasks := f.g.Subtasks(f.tasks, f.users)
	require.NotEmpty(t, subtasks)

	taskByID := map[string]models.Task{}
	for _, task := range f.tasks {
		taskByID[task.TaskID] = task
	}

	perParent := map[string]int{}
	for _, st := range subtasks {
		parent, ok := taskByID[st.TaskID]
		require.True(t, ok)
		perParent[st.TaskID]++

		assert.Equal(t, parent.DueDate, st.DueDate)
		assert.Equal(t, parent.IsCompleted, st.IsCompleted)
		if parent.IsCompleted {
			assert.Equal(t, parent.CompletedAt, st.CompletedAt)
		} else {
			assert.Nil(t, st.CompletedAt)
		}
		assert.False(t, st.CreatedAt.Before(parent.CreatedAt))
		assert.NotEmpty(t, st.Name)
	}
	for _, n := range perParent {
		assert.LessOrEqual(t, n, 4)
	}
}

func TestCommentsFollowTaskCreation(t *testing.T) {
	f := generateTasks(t, 67)
	comments := f.g.Comments(f.tasks, f.users)
	require.NotEmpty(t, comments)

	taskByID := map[string]models.Task{}
	for _, task := range f.tasks {
		taskByID[task.TaskID] = task
	}

	perTask := map[string]int{}
	for _, c := range comments {
		parent, ok := taskByID[c.TaskID]
		require.True(t, ok)
		perTask[c.TaskID]++

		assert.NotEmpty(t, c.Content)
		assert.False(t, c.CreatedAt.Before(parent.CreatedAt))
		assert.Nil(t, c.UpdatedAt)
		assert.False(t, c.IsEdited)
	}
	for _, n := range perTask {
		assert.LessOrEqual(t, n, 3)
	}
}
