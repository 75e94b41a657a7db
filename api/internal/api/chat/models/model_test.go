package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidStatusTransition(t *testing.T) {
	assert.True(t, ValidStatusTransition(ConversationOpen, ConversationInProgress))
	assert.True(t, ValidStatusTransition(ConversationOpen, ConversationClosed))
	assert.True(t, ValidStatusTransition(ConversationInProgress, ConversationClosed))
}

func TestInvalidStatusTransitions(t *testing.T) {
	assert.False(t, ValidStatusTransition(ConversationInProgress, ConversationOpen))
	assert.False(t, ValidStatusTransition(ConversationClosed, ConversationOpen))
	assert.False(t, ValidStatusTransition(ConversationClosed, ConversationInProgress))
	assert.False(t, ValidStatusTransition(ConversationOpen, ConversationOpen))
	assert.False(t, ValidStatusTransition("unknown", ConversationClosed))
}
