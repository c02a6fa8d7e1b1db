package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProject_Defaults(t *testing.T) {
	p := NewProject("room-1", "capstone")

	assert.Equal(t, StatusInProgress, p.Status)
	assert.Equal(t, 0, p.Progress)
	assert.NotNil(t, p.Tasks)
	assert.Empty(t, p.Tasks)
}

func TestFindTask_ExactTitleMatch(t *testing.T) {
	p := NewProject("room-1", "capstone")
	p.Tasks = append(p.Tasks, Task{Title: "design"}, Task{Title: "Design"})

	task := p.FindTask("Design")
	require.NotNil(t, task)
	task.Assignee = "Kim"

	assert.Equal(t, "Kim", p.Tasks[1].Assignee, "FindTask must return a pointer into the slice")
	assert.Nil(t, p.FindTask("design "))
}
