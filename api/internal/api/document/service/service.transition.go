// Package docsvc implements the document request lifecycle.
package docsvc

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	models "leoni_app/api/internal/api/document/models"
	"leoni_app/api/internal/common"
	"leoni_app/api/internal/utility"
)

// transitions lists the allowed status moves. The direct moves from
// "en attente" to a terminal state skip the processing step.
var transitions = map[string][]string{
	models.StatusPending:    {models.StatusInProgress, models.StatusAccepted, models.StatusRefused},
	models.StatusInProgress: {models.StatusAccepted, models.StatusRefused},
	models.StatusAccepted:   {},
	models.StatusRefused:    {},
}

// IsTerminal reports whether a status admits no further transition.
func IsTerminal(status string) bool {
	return status == models.StatusAccepted || status == models.StatusRefused
}

// CanTransition reports whether a request may move from one status to
// the other.
func CanTransition(from, to string) bool {
	return utility.Contains(transitions[from], to)
}

// transitionPath lists the steps completed by reaching the target, in
// lifecycle order. A terminal branch never includes its sibling.
func transitionPath(to string) []string {
	switch to {
	case models.StatusInProgress:
		return []string{models.StatusPending, models.StatusInProgress}
	case models.StatusAccepted:
		return []string{models.StatusPending, models.StatusInProgress, models.StatusAccepted}
	case models.StatusRefused:
		return []string{models.StatusPending, models.StatusInProgress, models.StatusRefused}
	default:
		return []string{models.StatusPending}
	}
}

// ApplyTransition mutates the request for a status change: the new
// status is recorded and every step up to the target is marked
// completed. A step already completed keeps its original date.
func ApplyTransition(request *models.DocumentRequest, to string, by primitive.ObjectID, now int64) error {
	from := request.Status.Current
	if from == to {
		return nil
	}
	if IsTerminal(from) {
		return common.ErrTerminalState
	}
	if !CanTransition(from, to) {
		return common.ErrInvalidState
	}

	request.Status = models.StatusInfo{Current: to, UpdatedAt: now, UpdatedBy: by}

	completed := map[string]bool{}
	for _, step := range transitionPath(to) {
		completed[step] = true
	}
	for i := range request.Progress {
		if !completed[request.Progress[i].Step] {
			continue
		}
		if request.Progress[i].Completed {
			continue
		}
		date := now
		request.Progress[i].Completed = true
		request.Progress[i].Date = &date
	}
	return nil
}
