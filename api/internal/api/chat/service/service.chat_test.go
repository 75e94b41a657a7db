package chatsvc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	authmodels "leoni_app/api/internal/api/auth/models"
	basesvc "leoni_app/api/internal/api/base/service"
	chatdto "leoni_app/api/internal/api/chat/dto"
	models "leoni_app/api/internal/api/chat/models"
)

func TestNewConversationSnapshotsOwnerScope(t *testing.T) {
	owner := &authmodels.Principal{
		ID:         primitive.NewObjectID(),
		Department: " Production ",
		Location:   "Messadine",
	}
	input := &chatdto.CreateConversationInput{Subject: "Attestation de travail", Message: "Bonjour"}
	conversation := newConversation(owner, input, 1000)

	assert.Equal(t, owner.ID, conversation.UserID)
	assert.Equal(t, "Production", conversation.TargetDepartment)
	assert.Equal(t, "Messadine", conversation.TargetLocation)
	assert.Equal(t, models.ConversationOpen, conversation.Status)
	assert.Equal(t, int64(1), conversation.MessageCount)
	assert.Equal(t, int64(1000), conversation.LastActivityAt)
}

func TestNewConversationFrozenAgainstProfileEdits(t *testing.T) {
	owner := &authmodels.Principal{
		ID:         primitive.NewObjectID(),
		Department: "Production",
		Location:   "Messadine",
	}
	conversation := newConversation(owner, &chatdto.CreateConversationInput{Subject: "Congé", Message: "Bonjour"}, 1000)

	owner.Department = "Qualité"
	owner.Location = "Mateur"

	assert.Equal(t, "Production", conversation.TargetDepartment)
	assert.Equal(t, "Messadine", conversation.TargetLocation)
}

func TestCreateConversationDeletesThreadWhenFirstMessageFails(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("first message write error", func(mt *mtest.T) {
		service := &ChatService{
			conversations: basesvc.NewBaseServiceMongo[models.Conversation](mt.DB.Collection("conversations")),
			messages:      basesvc.NewBaseServiceMongo[models.Message](mt.DB.Collection("messages")),
		}

		owner := &authmodels.Principal{
			ID:         primitive.NewObjectID(),
			Department: "Production",
			Location:   "Messadine",
		}
		conversationID := primitive.NewObjectID()

		mt.AddMockResponses(
			// insert conversation
			mtest.CreateSuccessResponse(),
			// read the inserted conversation back
			mtest.CreateCursorResponse(0, mt.DB.Name()+".conversations", mtest.FirstBatch, bson.D{
				{Key: "_id", Value: conversationID},
				{Key: "userId", Value: owner.ID},
				{Key: "subject", Value: "Attestation de travail"},
				{Key: "targetDepartment", Value: "Production"},
				{Key: "targetLocation", Value: "Messadine"},
				{Key: "status", Value: models.ConversationOpen},
				{Key: "messageCount", Value: int64(1)},
			}),
			// first message insert fails
			mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 121, Message: "document failed validation"}),
			// compensating delete of the conversation
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
		)

		input := &chatdto.CreateConversationInput{Subject: "Attestation de travail", Message: "Bonjour"}
		_, err := service.CreateConversation(context.Background(), owner, input)
		require.Error(mt, err)

		var deleteSeen bool
		for _, evt := range mt.GetAllStartedEvents() {
			if evt.CommandName == "delete" {
				deleteSeen = true
				assert.Equal(mt, "conversations", evt.Command.Lookup("delete").StringValue())
			}
		}
		assert.True(mt, deleteSeen, "no compensating delete was issued")
	})
}
