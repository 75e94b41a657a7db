package newssvc

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	authmodels "leoni_app/api/internal/api/auth/models"
	basemodels "leoni_app/api/internal/api/base/models"
	basesvc "leoni_app/api/internal/api/base/service"
	newsdto "leoni_app/api/internal/api/news/dto"
	models "leoni_app/api/internal/api/news/models"
	"leoni_app/api/internal/api/scope"
	"leoni_app/api/internal/common"
	"leoni_app/api/internal/global"
	"leoni_app/api/internal/utility"
)

// NewsService manages the news collection.
type NewsService struct {
	*basesvc.BaseServiceMongoImpl[models.NewsItem]
}

// NewNewsService creates a NewsService.
func NewNewsService() (*NewsService, error) {
	collection, exist := global.RegistryCollections.Get(global.ColNews)
	if !exist {
		return nil, fmt.Errorf("failed to get news collection: %v", common.ErrNotFound)
	}
	return &NewsService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.NewsItem](collection),
	}, nil
}

// normalizeTarget maps empty strings onto nil so both spellings of
// "unrestricted" are stored the same way.
func normalizeTarget(target *string) *string {
	if target == nil {
		return nil
	}
	trimmed := scope.Normalize(*target)
	if trimmed == "" {
		return nil
	}
	if trimmed == models.TargetAll {
		all := models.TargetAll
		return &all
	}
	return &trimmed
}

// Feed returns active news visible to a reader with the given
// department and location, newest publication first.
func (s *NewsService) Feed(ctx context.Context, department, location string) ([]models.NewsItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "publishedAt", Value: -1}})
	return s.Find(ctx, FeedFilter(department, location), opts)
}

// ListAdmin returns news in the acting admin's scope, paginated.
func (s *NewsService) ListAdmin(ctx context.Context, actor scope.Principal, page, limit int64, overrideDept, overrideLoc string) (*basemodels.PaginateResult[models.NewsItem], error) {
	opts := options.Find().SetSort(bson.D{{Key: "publishedAt", Value: -1}})
	return s.FindWithPagination(ctx, AdminFilter(actor, overrideDept, overrideLoc), page, limit, opts)
}

// Create publishes an announcement with an author snapshot taken from
// the acting admin.
func (s *NewsService) Create(ctx context.Context, author *authmodels.Principal, input *newsdto.CreateNewsInput) (*models.NewsItem, error) {
	item := models.NewsItem{
		Title:            input.Title,
		Content:          input.Content,
		ImageURL:         input.ImageURL,
		TargetDepartment: normalizeTarget(input.TargetDepartment),
		TargetLocation:   normalizeTarget(input.TargetLocation),
		AuthorName:       author.FirstName + " " + author.LastName,
		AuthorRole:       author.Role,
		IsActive:         true,
		PublishedAt:      utility.CurrentTimeInMilli(),
	}

	created, err := s.InsertOne(ctx, item)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"news_id": created.ID.Hex(),
		"author":  created.AuthorName,
	}).Info("Create: nouvelle actualité publiée")
	return &created, nil
}

// Update edits an announcement in the actor's scope.
func (s *NewsService) Update(ctx context.Context, actor scope.Principal, id primitive.ObjectID, input *newsdto.UpdateNewsInput) (*models.NewsItem, error) {
	item, err := s.FindOneById(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.inScope(actor, &item) {
		return nil, common.ErrForbidden
	}

	set := map[string]interface{}{}
	if input.Title != nil {
		set["title"] = *input.Title
	}
	if input.Content != nil {
		set["content"] = *input.Content
	}
	if input.ImageURL != nil {
		set["imageUrl"] = *input.ImageURL
	}
	if input.TargetDepartment != nil {
		set["targetDepartment"] = normalizeTarget(input.TargetDepartment)
	}
	if input.TargetLocation != nil {
		set["targetLocation"] = normalizeTarget(input.TargetLocation)
	}
	if input.IsActive != nil {
		set["isActive"] = *input.IsActive
	}
	if len(set) == 0 {
		return &item, nil
	}

	updated, err := s.UpdateById(ctx, id, &basesvc.UpdateData{Set: set})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes an announcement in the actor's scope.
func (s *NewsService) Delete(ctx context.Context, actor scope.Principal, id primitive.ObjectID) error {
	item, err := s.FindOneById(ctx, id)
	if err != nil {
		return err
	}
	if !s.inScope(actor, &item) {
		return common.ErrForbidden
	}
	return s.DeleteById(ctx, id)
}

// inScope applies the admin visibility rule to one item in process.
// An empty actor field drops that axis from the check, mirroring
// AdminFilter.
func (s *NewsService) inScope(actor scope.Principal, item *models.NewsItem) bool {
	if actor.Role == scope.RoleSuperAdmin {
		return true
	}
	if actor.Role != scope.RoleAdmin {
		return false
	}
	if scope.Normalize(actor.Department) != "" && !targetAdmits(item.TargetDepartment, actor.Department) {
		return false
	}
	if scope.Normalize(actor.Location) != "" && !targetAdmits(item.TargetLocation, actor.Location) {
		return false
	}
	return true
}
