package authsvc

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	authdto "leoni_app/api/internal/api/auth/dto"
	models "leoni_app/api/internal/api/auth/models"
	basemodels "leoni_app/api/internal/api/base/models"
	basesvc "leoni_app/api/internal/api/base/service"
	"leoni_app/api/internal/api/scope"
	"leoni_app/api/internal/common"
	"leoni_app/api/internal/global"
	"leoni_app/api/internal/utility"
)

// resetCodes holds outstanding password reset codes keyed by email.
// Codes expire after 15 minutes.
var resetCodes = utility.NewCache(15*time.Minute, 5*time.Minute)

// PrincipalService manages accounts in the principals collection.
type PrincipalService struct {
	*basesvc.BaseServiceMongoImpl[models.Principal]
	mailer *utility.Mailer
}

// NewPrincipalService creates a PrincipalService.
func NewPrincipalService() (*PrincipalService, error) {
	collection, exist := global.RegistryCollections.Get(global.ColPrincipals)
	if !exist {
		return nil, fmt.Errorf("failed to get principals collection: %v", common.ErrNotFound)
	}
	return &PrincipalService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Principal](collection),
		mailer:               utility.NewMailer(global.MongoDB_ServerConfig),
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an unapproved EMPLOYEE account. The department and
// location are normalized once here; they later get snapshotted onto
// conversations and document requests as-is.
func (s *PrincipalService) Register(ctx context.Context, input *authdto.RegisterInput) (*models.Principal, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, common.MsgInternalError, common.StatusInternalServerError, err)
	}

	principal := models.Principal{
		Email:      normalizeEmail(input.Email),
		Password:   string(hash),
		FirstName:  strings.TrimSpace(input.FirstName),
		LastName:   strings.TrimSpace(input.LastName),
		Phone:      strings.TrimSpace(input.Phone),
		Role:       scope.RoleEmployee,
		Department: scope.Normalize(input.Department),
		Location:   scope.Normalize(input.Location),
		Approved:   false,
		Active:     true,
	}

	created, err := s.InsertOne(ctx, principal)
	if err != nil {
		if errors.Is(err, common.ErrDuplicate) {
			return nil, common.NewError(common.ErrCodeBusinessConflict, "Un compte existe déjà avec cet email", common.StatusConflict, nil)
		}
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"principal_id": created.ID.Hex(),
		"department":   created.Department,
		"location":     created.Location,
	}).Info("Register: nouveau compte employé en attente d'approbation")
	return &created, nil
}

// Login checks credentials and issues a token. Unapproved employees
// and deactivated accounts are refused.
func (s *PrincipalService) Login(ctx context.Context, input *authdto.LoginInput) (*models.Principal, string, error) {
	principal, err := s.FindOne(ctx, bson.M{"email": normalizeEmail(input.Email)}, nil)
	if err != nil {
		// Same answer for unknown email and bad password.
		return nil, "", common.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(principal.Password), []byte(input.Password)); err != nil {
		return nil, "", common.ErrInvalidCredentials
	}

	if !principal.Active {
		return nil, "", common.NewError(common.ErrCodeAuth, "Compte désactivé", common.StatusForbidden, nil)
	}
	if principal.Role == scope.RoleEmployee && !principal.Approved {
		return nil, "", common.ErrAccountNotApproved
	}

	token, err := CreateToken(&principal)
	if err != nil {
		return nil, "", err
	}

	logrus.WithFields(logrus.Fields{"principal_id": principal.ID.Hex(), "role": principal.Role}).Info("Login: connexion réussie")
	return &principal, token, nil
}

// profileSet builds the update map of a self-service profile edit.
// Only the contact fields are writable; role, department, location,
// email and approval are never part of the result.
func profileSet(input *authdto.UpdateProfileInput) map[string]interface{} {
	set := map[string]interface{}{}
	if input.FirstName != "" {
		set["firstName"] = strings.TrimSpace(input.FirstName)
	}
	if input.LastName != "" {
		set["lastName"] = strings.TrimSpace(input.LastName)
	}
	if input.Phone != "" {
		set["phone"] = strings.TrimSpace(input.Phone)
	}
	return set
}

// UpdateProfile applies a self-service profile update. Role, scope and
// approval never change through this path.
func (s *PrincipalService) UpdateProfile(ctx context.Context, id primitive.ObjectID, input *authdto.UpdateProfileInput) (*models.Principal, error) {
	set := profileSet(input)
	if len(set) == 0 {
		principal, err := s.FindOneById(ctx, id)
		if err != nil {
			return nil, err
		}
		return &principal, nil
	}

	updated, err := s.UpdateById(ctx, id, &basesvc.UpdateData{Set: set})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// ForgotPassword mails a reset code. An unknown email gets the same
// answer as a known one so the endpoint cannot be used to discover
// which emails have accounts.
func (s *PrincipalService) ForgotPassword(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	principal, err := s.FindOne(ctx, bson.M{"email": email}, nil)
	if err != nil {
		logrus.WithField("email", email).Warn("ForgotPassword: email inconnu")
		return nil
	}

	code := fmt.Sprintf("%06d", rand.Intn(1000000))
	resetCodes.Set(email, code)

	body := fmt.Sprintf("Bonjour %s,\n\nVotre code de réinitialisation est : %s\nIl expire dans 15 minutes.\n\nLeoni App", principal.FirstName, code)
	if err := s.mailer.Send(email, "Réinitialisation de votre mot de passe", body); err != nil {
		logrus.WithError(err).Error("ForgotPassword: envoi du mail impossible")
		return common.NewError(common.ErrCodeInternalServer, "Envoi du mail impossible", common.StatusInternalServerError, err)
	}
	return nil
}

// ResetPassword redeems a code and replaces the password. Codes are
// single use.
func (s *PrincipalService) ResetPassword(ctx context.Context, input *authdto.ResetPasswordInput) error {
	email := normalizeEmail(input.Email)
	stored, found := resetCodes.Get(email)
	if !found || stored.(string) != input.Code {
		return common.NewError(common.ErrCodeValidationInput, "Code de réinitialisation invalide ou expiré", common.StatusBadRequest, nil)
	}

	principal, err := s.FindOne(ctx, bson.M{"email": email}, nil)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return common.NewError(common.ErrCodeInternalServer, common.MsgInternalError, common.StatusInternalServerError, err)
	}

	if _, err := s.UpdateById(ctx, principal.ID, &basesvc.UpdateData{
		Set: map[string]interface{}{"password": string(hash)},
	}); err != nil {
		return err
	}

	resetCodes.Delete(email)
	logrus.WithField("principal_id", principal.ID.Hex()).Info("ResetPassword: mot de passe réinitialisé")
	return nil
}

// ListEmployees returns EMPLOYEE principals visible to the acting
// admin. Override department and location are honored for SUPERADMIN
// only.
func (s *PrincipalService) ListEmployees(ctx context.Context, actor scope.Principal, page, limit int64, overrideDept, overrideLoc string) (*basemodels.PaginateResult[models.Principal], error) {
	opts := []scope.Option{scope.WithFields("department", "location")}
	if overrideDept != "" || overrideLoc != "" {
		opts = append(opts, scope.WithOverride(overrideDept, overrideLoc))
	}

	filter := scope.Filter(actor, opts...)
	filter["role"] = scope.RoleEmployee
	return s.FindWithPagination(ctx, filter, page, limit, nil)
}

// ApproveEmployee marks an employee account approved. The actor must
// have the employee in scope.
func (s *PrincipalService) ApproveEmployee(ctx context.Context, actor scope.Principal, id primitive.ObjectID) (*models.Principal, error) {
	principal, err := s.FindOneById(ctx, id)
	if err != nil {
		return nil, err
	}
	if principal.Role != scope.RoleEmployee {
		return nil, common.NewError(common.ErrCodeBusinessState, "Seuls les comptes employés peuvent être approuvés", common.StatusBadRequest, nil)
	}
	if !scope.Match(actor, principal.Department, principal.Location) {
		return nil, common.ErrForbidden
	}

	updated, err := s.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: map[string]interface{}{"approved": true},
	})
	if err != nil {
		return nil, err
	}

	logrus.WithField("principal_id", id.Hex()).Info("ApproveEmployee: compte approuvé")
	return &updated, nil
}

// CreateAdmin creates an ADMIN principal. The caller enforces the
// SUPERADMIN requirement.
func (s *PrincipalService) CreateAdmin(ctx context.Context, input *authdto.CreateAdminInput) (*models.Principal, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, common.MsgInternalError, common.StatusInternalServerError, err)
	}

	principal := models.Principal{
		Email:      normalizeEmail(input.Email),
		Password:   string(hash),
		FirstName:  strings.TrimSpace(input.FirstName),
		LastName:   strings.TrimSpace(input.LastName),
		Role:       scope.RoleAdmin,
		Department: scope.Normalize(input.Department),
		Location:   scope.Normalize(input.Location),
		Approved:   true,
		Active:     true,
	}

	created, err := s.InsertOne(ctx, principal)
	if err != nil {
		if errors.Is(err, common.ErrDuplicate) {
			return nil, common.NewError(common.ErrCodeBusinessConflict, "Un compte existe déjà avec cet email", common.StatusConflict, nil)
		}
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"principal_id": created.ID.Hex(),
		"department":   created.Department,
		"location":     created.Location,
	}).Info("CreateAdmin: nouvel administrateur")
	return &created, nil
}

// ListAdmins returns ADMIN principals. Superadmin only.
func (s *PrincipalService) ListAdmins(ctx context.Context, page, limit int64) (*basemodels.PaginateResult[models.Principal], error) {
	return s.FindWithPagination(ctx, bson.M{"role": scope.RoleAdmin}, page, limit, nil)
}

// EnsureSuperadmin creates the bootstrap SUPERADMIN account when it
// does not exist yet. Used during init.
func (s *PrincipalService) EnsureSuperadmin(ctx context.Context, email, password string) error {
	if password == "" {
		return nil
	}
	// Bootstrap credentials come from the environment, not a validated
	// request body, so they are checked here.
	if err := utility.ValidateEmail(email); err != nil {
		return err
	}
	if err := utility.ValidatePassword(password); err != nil {
		return err
	}
	exists, err := s.DocumentExists(ctx, bson.M{"role": scope.RoleSuperAdmin})
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = s.InsertOne(ctx, models.Principal{
		Email:     normalizeEmail(email),
		Password:  string(hash),
		FirstName: "Super",
		LastName:  "Admin",
		Role:      scope.RoleSuperAdmin,
		Approved:  true,
		Active:    true,
	})
	if err != nil {
		return err
	}

	logrus.WithField("email", normalizeEmail(email)).Info("EnsureSuperadmin: compte superadmin créé")
	return nil
}
