package docsvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	models "leoni_app/api/internal/api/document/models"
	"leoni_app/api/internal/common"
)

func newRequest(now int64) *models.DocumentRequest {
	return &models.DocumentRequest{
		Status:   models.StatusInfo{Current: models.StatusPending, UpdatedAt: now},
		Progress: models.NewProgress(now),
	}
}

func stepByName(t *testing.T, request *models.DocumentRequest, name string) models.ProgressStep {
	t.Helper()
	for _, step := range request.Progress {
		if step.Step == name {
			return step
		}
	}
	t.Fatalf("step %q not found", name)
	return models.ProgressStep{}
}

func TestCanTransitionTable(t *testing.T) {
	assert.True(t, CanTransition(models.StatusPending, models.StatusInProgress))
	assert.True(t, CanTransition(models.StatusPending, models.StatusAccepted))
	assert.True(t, CanTransition(models.StatusPending, models.StatusRefused))
	assert.True(t, CanTransition(models.StatusInProgress, models.StatusAccepted))
	assert.True(t, CanTransition(models.StatusInProgress, models.StatusRefused))

	assert.False(t, CanTransition(models.StatusInProgress, models.StatusPending))
	assert.False(t, CanTransition(models.StatusAccepted, models.StatusRefused))
	assert.False(t, CanTransition(models.StatusAccepted, models.StatusInProgress))
	assert.False(t, CanTransition(models.StatusRefused, models.StatusAccepted))
	assert.False(t, CanTransition(models.StatusRefused, models.StatusPending))
}

func TestApplyTransitionToInProgress(t *testing.T) {
	request := newRequest(1000)
	admin := primitive.NewObjectID()

	err := ApplyTransition(request, models.StatusInProgress, admin, 2000)
	require.NoError(t, err)

	assert.Equal(t, models.StatusInProgress, request.Status.Current)
	assert.Equal(t, int64(2000), request.Status.UpdatedAt)
	assert.Equal(t, admin, request.Status.UpdatedBy)

	step := stepByName(t, request, models.StatusInProgress)
	assert.True(t, step.Completed)
	require.NotNil(t, step.Date)
	assert.Equal(t, int64(2000), *step.Date)

	assert.False(t, stepByName(t, request, models.StatusAccepted).Completed)
	assert.False(t, stepByName(t, request, models.StatusRefused).Completed)
}

func TestApplyTransitionFastPathAccepted(t *testing.T) {
	request := newRequest(1000)

	err := ApplyTransition(request, models.StatusAccepted, primitive.NewObjectID(), 2000)
	require.NoError(t, err)

	assert.True(t, stepByName(t, request, models.StatusInProgress).Completed)
	assert.True(t, stepByName(t, request, models.StatusAccepted).Completed)
	assert.False(t, stepByName(t, request, models.StatusRefused).Completed)
	assert.Nil(t, stepByName(t, request, models.StatusRefused).Date)
}

func TestApplyTransitionRefusedNeverMarksAccepted(t *testing.T) {
	request := newRequest(1000)

	err := ApplyTransition(request, models.StatusRefused, primitive.NewObjectID(), 2000)
	require.NoError(t, err)

	assert.True(t, stepByName(t, request, models.StatusRefused).Completed)
	assert.False(t, stepByName(t, request, models.StatusAccepted).Completed)
}

func TestApplyTransitionKeepsPriorDates(t *testing.T) {
	request := newRequest(1000)

	require.NoError(t, ApplyTransition(request, models.StatusInProgress, primitive.NewObjectID(), 2000))
	require.NoError(t, ApplyTransition(request, models.StatusAccepted, primitive.NewObjectID(), 3000))

	pending := stepByName(t, request, models.StatusPending)
	require.NotNil(t, pending.Date)
	assert.Equal(t, int64(1000), *pending.Date)

	inProgress := stepByName(t, request, models.StatusInProgress)
	require.NotNil(t, inProgress.Date)
	assert.Equal(t, int64(2000), *inProgress.Date)

	accepted := stepByName(t, request, models.StatusAccepted)
	require.NotNil(t, accepted.Date)
	assert.Equal(t, int64(3000), *accepted.Date)
}

func TestApplyTransitionTerminalState(t *testing.T) {
	request := newRequest(1000)
	require.NoError(t, ApplyTransition(request, models.StatusAccepted, primitive.NewObjectID(), 2000))

	err := ApplyTransition(request, models.StatusRefused, primitive.NewObjectID(), 3000)
	assert.ErrorIs(t, err, common.ErrTerminalState)
}

func TestApplyTransitionInvalidMove(t *testing.T) {
	request := newRequest(1000)
	require.NoError(t, ApplyTransition(request, models.StatusInProgress, primitive.NewObjectID(), 2000))

	err := ApplyTransition(request, models.StatusPending, primitive.NewObjectID(), 3000)
	assert.ErrorIs(t, err, common.ErrInvalidState)
}

func TestApplyTransitionSameStatusNoOp(t *testing.T) {
	request := newRequest(1000)

	err := ApplyTransition(request, models.StatusPending, primitive.NewObjectID(), 2000)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), request.Status.UpdatedAt)
}
