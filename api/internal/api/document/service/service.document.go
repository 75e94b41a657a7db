package docsvc

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
	docdto "leoni_app/api/internal/api/document/dto"
	models "leoni_app/api/internal/api/document/models"
	"leoni_app/api/internal/api/scope"
	"leoni_app/api/internal/common"
	"leoni_app/api/internal/global"
	"leoni_app/api/internal/utility"
)

// occMaxAttempts bounds optimistic retries on concurrent status
// updates.
const occMaxAttempts = 3

// DocumentService manages the document_requests collection.
type DocumentService struct {
	*basesvc.BaseServiceMongoImpl[models.DocumentRequest]
}

// NewDocumentService creates a DocumentService.
func NewDocumentService() (*DocumentService, error) {
	collection, exist := global.RegistryCollections.Get(global.ColDocumentRequests)
	if !exist {
		return nil, fmt.Errorf("failed to get document_requests collection: %v", common.ErrNotFound)
	}
	return &DocumentService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.DocumentRequest](collection),
	}, nil
}

// Create files a request for the owner. The owner's department and
// location are snapshotted once; the full progress checklist is seeded
// with only the first step completed.
func (s *DocumentService) Create(ctx context.Context, owner *authmodels.Principal, input *docdto.CreateDocumentInput) (*models.DocumentRequest, error) {
	now := utility.CurrentTimeInMilli()
	request := models.DocumentRequest{
		UserID:         owner.ID,
		DocumentType:   input.DocumentType,
		Description:    input.Description,
		UserDepartment: scope.Normalize(owner.Department),
		UserLocation:   scope.Normalize(owner.Location),
		Status:         models.StatusInfo{Current: models.StatusPending, UpdatedAt: now, UpdatedBy: owner.ID},
		Progress:       models.NewProgress(now),
		AdminComments:  []models.AdminComment{},
	}

	created, err := s.InsertOne(ctx, request)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"request_id":    created.ID.Hex(),
		"document_type": created.DocumentType,
		"department":    created.UserDepartment,
	}).Info("Create: nouvelle demande de document")
	return &created, nil
}

// ListOwn returns the owner's requests, most recent first.
func (s *DocumentService) ListOwn(ctx context.Context, ownerID primitive.ObjectID) ([]models.DocumentRequest, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.Find(ctx, bson.M{"userId": ownerID}, opts)
}

// DeleteOwn removes the owner's request. An accepted request is final
// paperwork and can no longer be withdrawn.
func (s *DocumentService) DeleteOwn(ctx context.Context, ownerID, id primitive.ObjectID) error {
	request, err := s.FindOneById(ctx, id)
	if err != nil {
		return err
	}
	if request.UserID != ownerID {
		return common.ErrForbidden
	}
	if request.Status.Current == models.StatusAccepted {
		return common.NewError(common.ErrCodeBusinessState, "Impossible de supprimer une demande acceptée", common.StatusConflict, nil)
	}
	return s.DeleteById(ctx, id)
}

// ListAdmin returns requests visible to the acting admin, optionally
// narrowed to one status.
func (s *DocumentService) ListAdmin(ctx context.Context, actor scope.Principal, page, limit int64, overrideDept, overrideLoc, status string) (*basemodels.PaginateResult[models.DocumentRequest], error) {
	opts := []scope.Option{scope.WithFields("userDepartment", "userLocation")}
	if overrideDept != "" || overrideLoc != "" {
		opts = append(opts, scope.WithOverride(overrideDept, overrideLoc))
	}

	filter := scope.Filter(actor, opts...)
	if status != "" {
		filter["status.current"] = status
	}

	findOpts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.FindWithPagination(ctx, filter, page, limit, findOpts)
}

// loadInScope loads a request and checks the actor may act on it.
func (s *DocumentService) loadInScope(ctx context.Context, actor scope.Principal, id primitive.ObjectID) (*models.DocumentRequest, error) {
	request, err := s.FindOneById(ctx, id)
	if err != nil {
		return nil, err
	}
	if !scope.Match(actor, request.UserDepartment, request.UserLocation) {
		return nil, common.ErrForbidden
	}
	return &request, nil
}

// UpdateStatus applies a lifecycle transition under optimistic
// concurrency. On a version conflict the read, scope check and
// transition are redone, at most occMaxAttempts times.
func (s *DocumentService) UpdateStatus(ctx context.Context, actor scope.Principal, actorID primitive.ObjectID, id primitive.ObjectID, input *docdto.UpdateStatusInput) (*models.DocumentRequest, error) {
	var lastErr error
	for attempt := 0; attempt < occMaxAttempts; attempt++ {
		if attempt > 0 {
			time.Sleep(time.Duration(1<<attempt) * 10 * time.Millisecond)
		}

		request, err := s.loadInScope(ctx, actor, id)
		if err != nil {
			return nil, err
		}

		now := utility.CurrentTimeInMilli()
		if err := ApplyTransition(request, input.Status, actorID, now); err != nil {
			return nil, err
		}

		set := map[string]interface{}{
			"status":   request.Status,
			"progress": request.Progress,
		}
		update := &basesvc.UpdateData{Set: set}
		if input.Comment != "" {
			update.Push = map[string]interface{}{
				"adminComments": models.AdminComment{AuthorID: actorID, Comment: input.Comment, CreatedAt: now},
			}
		}

		updated, err := s.UpdateVersioned(ctx, id, request.Version, update)
		if err == nil {
			logrus.WithFields(logrus.Fields{
				"request_id": id.Hex(),
				"status":     input.Status,
				"admin_id":   actorID.Hex(),
			}).Info("UpdateStatus: statut de demande modifié")
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

// AddComment attaches an admin note to a request in scope.
func (s *DocumentService) AddComment(ctx context.Context, actor scope.Principal, actorID primitive.ObjectID, id primitive.ObjectID, comment string) (*models.DocumentRequest, error) {
	if _, err := s.loadInScope(ctx, actor, id); err != nil {
		return nil, err
	}

	updated, err := s.UpdateById(ctx, id, &basesvc.UpdateData{
		Push: map[string]interface{}{
			"adminComments": models.AdminComment{AuthorID: actorID, Comment: comment, CreatedAt: utility.CurrentTimeInMilli()},
		},
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Assign sets the handling admin of a request in scope.
func (s *DocumentService) Assign(ctx context.Context, actor scope.Principal, id, adminID primitive.ObjectID) (*models.DocumentRequest, error) {
	if _, err := s.loadInScope(ctx, actor, id); err != nil {
		return nil, err
	}

	updated, err := s.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: map[string]interface{}{"assignedAdminId": adminID},
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Statistics aggregates per-status counts and last-24h volume over the
// actor's scope.
func (s *DocumentService) Statistics(ctx context.Context, actor scope.Principal, overrideDept, overrideLoc string) (*docdto.Statistics, error) {
	opts := []scope.Option{scope.WithFields("userDepartment", "userLocation")}
	if overrideDept != "" || overrideLoc != "" {
		opts = append(opts, scope.WithOverride(overrideDept, overrideLoc))
	}
	filter := scope.Filter(actor, opts...)

	pipeline := []bson.M{
		{"$match": filter},
		{"$group": bson.M{"_id": "$status.current", "count": bson.M{"$sum": 1}}},
	}
	rows, err := s.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	stats := &docdto.Statistics{ByStatus: map[string]int64{}}
	for _, step := range models.LifecycleSteps {
		stats.ByStatus[step] = 0
	}
	for _, row := range rows {
		status, _ := row["_id"].(string)
		var count int64
		switch v := row["count"].(type) {
		case int32:
			count = int64(v)
		case int64:
			count = v
		case float64:
			count = int64(v)
		}
		stats.ByStatus[status] = count
		stats.Total += count
	}

	dayAgo := utility.CurrentTimeInMilli() - 24*time.Hour.Milliseconds()
	recentFilter := bson.M{"createdAt": bson.M{"$gte": dayAgo}}
	for key, value := range filter {
		recentFilter[key] = value
	}
	recent, err := s.CountDocuments(ctx, recentFilter)
	if err != nil {
		return nil, err
	}
	stats.Last24Hours = recent
	return stats, nil
}
