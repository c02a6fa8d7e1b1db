// Package progress derives a project's progress and status from its tasks.
package progress

import "github.com/monocle-dev/huddle/internal/models"

// Recalculate sets p.Progress and p.Status from p.Tasks. It touches nothing else.
func Recalculate(p *models.Project) {
	p.Progress, p.Status = Compute(p.Tasks)
}

// Compute returns round-half-up(100 * completed / total) and COMPLETED only
// when every task is completed. An empty list is 0 and IN_PROGRESS. 100 is
// reserved for fully completed lists, so 199 of 200 reports 99. Plain
// rounding would report 100 there; the cap deliberately departs from it so
// that 100 always means every task is done.
func Compute(tasks []models.Task) (int, models.Status) {
	total := len(tasks)
	if total == 0 {
		return 0, models.StatusInProgress
	}

	completed := 0
	for _, t := range tasks {
		if t.Status == models.StatusCompleted {
			completed++
		}
	}

	percent := (200*completed + total) / (2 * total)

	if completed == total {
		return percent, models.StatusCompleted
	}
	if percent == 100 {
		percent = 99
	}
	return percent, models.StatusInProgress
}
