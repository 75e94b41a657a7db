package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestSentinelStatusCodes(t *testing.T) {
	cases := []struct {
		err      error
		expected int
	}{
		{ErrInvalidCredentials, StatusUnauthorized},
		{ErrTokenExpired, StatusUnauthorized},
		{ErrForbidden, StatusForbidden},
		{ErrNotFound, StatusNotFound},
		{ErrDuplicate, StatusConflict},
		{ErrInvalidState, StatusBadRequest},
		{ErrTerminalState, StatusConflict},
		{ErrVersionConflict, StatusConflict},
	}
	for _, tc := range cases {
		appErr, ok := tc.err.(*Error)
		assert.True(t, ok)
		assert.Equal(t, tc.expected, appErr.StatusCode, appErr.Message)
	}
}

func TestErrorsIsOnSentinels(t *testing.T) {
	assert.True(t, errors.Is(ErrVersionConflict, ErrVersionConflict))
	assert.False(t, errors.Is(ErrVersionConflict, ErrNotFound))

	wrapped := fmt.Errorf("update conversation: %w", ErrVersionConflict)
	assert.True(t, errors.Is(wrapped, ErrVersionConflict))
}

func TestConvertMongoErrorNil(t *testing.T) {
	assert.NoError(t, ConvertMongoError(nil))
}

func TestConvertMongoErrorNoDocuments(t *testing.T) {
	err := ConvertMongoError(mongo.ErrNoDocuments)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestConvertMongoErrorPassesNotFoundThrough(t *testing.T) {
	err := ConvertMongoError(ErrNotFound)
	assert.Equal(t, ErrNotFound, err)
}

func TestConvertMongoErrorDuplicateKey(t *testing.T) {
	dup := mongo.WriteException{
		WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "E11000 duplicate key error"}},
	}
	err := ConvertMongoError(dup)
	assert.True(t, errors.Is(err, ErrDuplicate))
}

func TestConvertMongoErrorUnknownFallsBackTo500(t *testing.T) {
	err := ConvertMongoError(errors.New("boom"))
	appErr, ok := err.(*Error)
	assert.True(t, ok)
	assert.Equal(t, StatusInternalServerError, appErr.StatusCode)
}
