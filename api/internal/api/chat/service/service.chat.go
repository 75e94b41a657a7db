// Package chatsvc implements the department scoped chat between
// employees and admins.
package chatsvc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	authmodels "leoni_app/api/internal/api/auth/models"
	basemodels "leoni_app/api/internal/api/base/models"
	basesvc "leoni_app/api/internal/api/base/service"
	chatdto "leoni_app/api/internal/api/chat/dto"
	models "leoni_app/api/internal/api/chat/models"
	"leoni_app/api/internal/api/scope"
	"leoni_app/api/internal/common"
	"leoni_app/api/internal/global"
	"leoni_app/api/internal/utility"
)

// occMaxAttempts bounds optimistic retries on concurrent status
// updates.
const occMaxAttempts = 3

// ChatService manages conversations and their messages.
type ChatService struct {
	conversations *basesvc.BaseServiceMongoImpl[models.Conversation]
	messages      *basesvc.BaseServiceMongoImpl[models.Message]
}

// NewChatService creates a ChatService.
func NewChatService() (*ChatService, error) {
	conversationCollection, exist := global.RegistryCollections.Get(global.ColConversations)
	if !exist {
		return nil, fmt.Errorf("failed to get conversations collection: %v", common.ErrNotFound)
	}
	messageCollection, exist := global.RegistryCollections.Get(global.ColMessages)
	if !exist {
		return nil, fmt.Errorf("failed to get messages collection: %v", common.ErrNotFound)
	}
	return &ChatService{
		conversations: basesvc.NewBaseServiceMongo[models.Conversation](conversationCollection),
		messages:      basesvc.NewBaseServiceMongo[models.Message](messageCollection),
	}, nil
}

// newConversation builds the document for a new thread. The owner's
// department and location are copied by value, so later profile edits
// cannot reach conversations created before them.
func newConversation(owner *authmodels.Principal, input *chatdto.CreateConversationInput, now int64) models.Conversation {
	return models.Conversation{
		UserID:           owner.ID,
		Subject:          input.Subject,
		TargetDepartment: scope.Normalize(owner.Department),
		TargetLocation:   scope.Normalize(owner.Location),
		Status:           models.ConversationOpen,
		MessageCount:     1,
		LastActivityAt:   now,
	}
}

// CreateConversation opens a thread for the owner with its first
// message. The owner's department and location are snapshotted onto
// the conversation once and never updated afterwards. When the first
// message cannot be written the conversation is deleted again so no
// empty thread survives.
func (s *ChatService) CreateConversation(ctx context.Context, owner *authmodels.Principal, input *chatdto.CreateConversationInput) (*chatdto.ConversationSummary, error) {
	conversation := newConversation(owner, input, utility.CurrentTimeInMilli())

	created, err := s.conversations.InsertOne(ctx, conversation)
	if err != nil {
		return nil, err
	}

	message := models.Message{
		ConversationID: created.ID,
		SenderID:       owner.ID,
		SenderRole:     models.SenderEmployee,
		Content:        input.Message,
	}
	insertedMessage, err := s.messages.InsertOne(ctx, message)
	if err != nil {
		// Compensating delete keeps creation all-or-nothing.
		if delErr := s.conversations.DeleteById(ctx, created.ID); delErr != nil {
			logrus.WithFields(logrus.Fields{
				"conversation_id": created.ID.Hex(),
				"error":           delErr.Error(),
			}).Error("CreateConversation: suppression compensatoire impossible")
		}
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"conversation_id": created.ID.Hex(),
		"department":      created.TargetDepartment,
		"location":        created.TargetLocation,
	}).Info("CreateConversation: nouvelle conversation")

	return &chatdto.ConversationSummary{
		Conversation: created,
		LastMessage:  &insertedMessage,
		UnreadCount:  0,
	}, nil
}

// ListOwn returns the owner's conversations, most recent activity
// first, each with its last message and the count of unread admin
// messages.
func (s *ChatService) ListOwn(ctx context.Context, ownerID primitive.ObjectID) ([]chatdto.ConversationSummary, error) {
	opts := options.Find().SetSort(bson.D{{Key: "lastActivityAt", Value: -1}})
	conversations, err := s.conversations.Find(ctx, bson.M{"userId": ownerID}, opts)
	if err != nil {
		return nil, err
	}

	summaries := make([]chatdto.ConversationSummary, 0, len(conversations))
	for _, conversation := range conversations {
		summary, err := s.summarize(ctx, conversation, models.SenderAdmin)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, *summary)
	}
	return summaries, nil
}

// ListAdmin returns conversations visible to the acting admin,
// paginated, most recent activity first.
func (s *ChatService) ListAdmin(ctx context.Context, actor scope.Principal, page, limit int64, overrideDept, overrideLoc string) (*basemodels.PaginateResult[models.Conversation], error) {
	opts := []scope.Option{scope.WithFields("targetDepartment", "targetLocation")}
	if overrideDept != "" || overrideLoc != "" {
		opts = append(opts, scope.WithOverride(overrideDept, overrideLoc))
	}

	filter := scope.Filter(actor, opts...)
	findOpts := options.Find().SetSort(bson.D{{Key: "lastActivityAt", Value: -1}})
	return s.conversations.FindWithPagination(ctx, filter, page, limit, findOpts)
}

// summarize attaches the last message and the unread count of the
// given counterpart role.
func (s *ChatService) summarize(ctx context.Context, conversation models.Conversation, counterpartRole string) (*chatdto.ConversationSummary, error) {
	summary := chatdto.ConversationSummary{Conversation: conversation}

	lastOpts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	last, err := s.messages.FindOne(ctx, bson.M{"conversationId": conversation.ID}, lastOpts)
	if err == nil {
		summary.LastMessage = &last
	} else if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	unread, err := s.messages.CountDocuments(ctx, bson.M{
		"conversationId": conversation.ID,
		"senderRole":     counterpartRole,
		"isRead":         false,
	})
	if err != nil {
		return nil, err
	}
	summary.UnreadCount = unread
	return &summary, nil
}

// loadVisible loads a conversation and checks the viewer may access
// it: owners for employees, scope for admins.
func (s *ChatService) loadVisible(ctx context.Context, viewer *authmodels.Principal, id primitive.ObjectID) (*models.Conversation, error) {
	conversation, err := s.conversations.FindOneById(ctx, id)
	if err != nil {
		return nil, err
	}

	if viewer.Role == scope.RoleEmployee {
		if conversation.UserID != viewer.ID {
			return nil, common.ErrForbidden
		}
		return &conversation, nil
	}

	actor := scope.Principal{Role: viewer.Role, Department: viewer.Department, Location: viewer.Location}
	if !scope.Match(actor, conversation.TargetDepartment, conversation.TargetLocation) {
		return nil, common.ErrForbidden
	}
	return &conversation, nil
}

// Messages returns a conversation's messages in chronological order
// and marks the counterpart's messages as read for the viewer.
func (s *ChatService) Messages(ctx context.Context, viewer *authmodels.Principal, id primitive.ObjectID) ([]models.Message, error) {
	if _, err := s.loadVisible(ctx, viewer, id); err != nil {
		return nil, err
	}

	counterpart := models.SenderAdmin
	if viewer.Role != scope.RoleEmployee {
		counterpart = models.SenderEmployee
	}
	if _, err := s.messages.Collection().UpdateMany(ctx,
		bson.M{"conversationId": id, "senderRole": counterpart, "isRead": false},
		bson.M{"$set": bson.M{"isRead": true}},
	); err != nil {
		return nil, common.ConvertMongoError(err)
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	return s.messages.Find(ctx, bson.M{"conversationId": id}, opts)
}

// AppendMessage adds a message to an open conversation and bumps its
// activity counters.
func (s *ChatService) AppendMessage(ctx context.Context, viewer *authmodels.Principal, id primitive.ObjectID, content string) (*models.Message, error) {
	conversation, err := s.loadVisible(ctx, viewer, id)
	if err != nil {
		return nil, err
	}
	if conversation.Status == models.ConversationClosed {
		return nil, common.NewError(common.ErrCodeBusinessState, "Conversation fermée", common.StatusConflict, nil)
	}

	senderRole := models.SenderEmployee
	if viewer.Role != scope.RoleEmployee {
		senderRole = models.SenderAdmin
	}

	message, err := s.messages.InsertOne(ctx, models.Message{
		ConversationID: id,
		SenderID:       viewer.ID,
		SenderRole:     senderRole,
		Content:        content,
	})
	if err != nil {
		return nil, err
	}

	if _, err := s.conversations.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: map[string]interface{}{"lastActivityAt": utility.CurrentTimeInMilli()},
		Inc: map[string]interface{}{"messageCount": 1},
	}); err != nil {
		return nil, err
	}
	return &message, nil
}

// UpdateStatus moves a conversation through its lifecycle under
// optimistic concurrency. On a version conflict the read and check are
// redone, at most occMaxAttempts times.
func (s *ChatService) UpdateStatus(ctx context.Context, actor scope.Principal, id primitive.ObjectID, status string) (*models.Conversation, error) {
	var lastErr error
	for attempt := 0; attempt < occMaxAttempts; attempt++ {
		if attempt > 0 {
			time.Sleep(time.Duration(1<<attempt) * 10 * time.Millisecond)
		}

		conversation, err := s.conversations.FindOneById(ctx, id)
		if err != nil {
			return nil, err
		}
		if !scope.Match(actor, conversation.TargetDepartment, conversation.TargetLocation) {
			return nil, common.ErrForbidden
		}
		if conversation.Status == status {
			return &conversation, nil
		}
		if !models.ValidStatusTransition(conversation.Status, status) {
			if conversation.Status == models.ConversationClosed {
				return nil, common.ErrTerminalState
			}
			return nil, common.ErrInvalidState
		}

		updated, err := s.conversations.UpdateVersioned(ctx, id, conversation.Version, &basesvc.UpdateData{
			Set: map[string]interface{}{"status": status},
		})
		if err == nil {
			logrus.WithFields(logrus.Fields{
				"conversation_id": id.Hex(),
				"status":          status,
			}).Info("UpdateStatus: statut de conversation modifié")
			return &updated, nil
		}
		if errors.Is(err, common.ErrVersionConflict) {
			lastErr = err
			continue
		}
		return nil, err
	}
	return nil, lastErr
}
