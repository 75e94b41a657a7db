package common

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// HTTP Status Code Constants
const (
	// Success Codes (2xx)
	StatusOK        = 200
	StatusCreated   = 201
	StatusNoContent = 204

	// Client Error Codes (4xx)
	StatusBadRequest      = 400 // Requête invalide
	StatusUnauthorized    = 401 // Non authentifié
	StatusForbidden       = 403 // Accès refusé
	StatusNotFound        = 404 // Ressource introuvable
	StatusConflict        = 409 // Conflit de données
	StatusTooManyRequests = 429

	// Server Error Codes (5xx)
	StatusInternalServerError = 500
	StatusServiceUnavailable  = 503
)

// Response Messages (user facing, French like the mobile app)
const (
	MsgSuccess = "Opération réussie"
	MsgCreated = "Création réussie"

	MsgUnauthorized = "Veuillez vous connecter"
	MsgForbidden    = "Accès refusé"
	MsgNotFound     = "Ressource introuvable"
	MsgConflict     = "Conflit de données"

	MsgTokenMissing = "Token d'authentification manquant"
	MsgTokenInvalid = "Token invalide"
	MsgTokenExpired = "Session expirée"

	MsgValidationError = "Données invalides"
	MsgDatabaseError   = "Erreur d'accès à la base de données"
	MsgInternalError   = "Erreur interne du serveur"
)

// ErrorCode identifies an error class. Codes group by category
// (AUTH_xxx, VAL_xxx, DB_xxx, BIZ_xxx) for log filtering.
type ErrorCode struct {
	Code        string
	Category    string
	SubCategory string
	Description string
}

var (
	// System Errors (SYS_xxx)
	ErrCodeInternalServer = ErrorCode{
		Code:        "SYS_001",
		Category:    "System",
		SubCategory: "Internal",
		Description: "internal server error",
	}

	// Authentication Errors (AUTH_xxx)
	ErrCodeAuth = ErrorCode{
		Code:        "AUTH",
		Category:    "Authentication",
		SubCategory: "General",
		Description: "authentication error",
	}

	ErrCodeAuthToken = ErrorCode{
		Code:        "AUTH_001",
		Category:    "Authentication",
		SubCategory: "Token",
		Description: "token error",
	}

	ErrCodeAuthCredentials = ErrorCode{
		Code:        "AUTH_002",
		Category:    "Authentication",
		SubCategory: "Credentials",
		Description: "credentials error",
	}

	ErrCodeAuthRole = ErrorCode{
		Code:        "AUTH_003",
		Category:    "Authentication",
		SubCategory: "Role",
		Description: "role or scope error",
	}

	// Validation Errors (VAL_xxx)
	ErrCodeValidationInput = ErrorCode{
		Code:        "VAL_001",
		Category:    "Validation",
		SubCategory: "Input",
		Description: "invalid input data",
	}

	ErrCodeValidationFormat = ErrorCode{
		Code:        "VAL_002",
		Category:    "Validation",
		SubCategory: "Format",
		Description: "invalid data format",
	}

	// Database Errors (DB_xxx)
	ErrCodeDatabase = ErrorCode{
		Code:        "DB",
		Category:    "Database",
		SubCategory: "General",
		Description: "database error",
	}

	ErrCodeDatabaseConnection = ErrorCode{
		Code:        "DB_001",
		Category:    "Database",
		SubCategory: "Connection",
		Description: "database connection error",
	}

	ErrCodeDatabaseQuery = ErrorCode{
		Code:        "DB_002",
		Category:    "Database",
		SubCategory: "Query",
		Description: "database query error",
	}

	// Business Logic Errors (BIZ_xxx)
	ErrCodeBusinessState = ErrorCode{
		Code:        "BIZ_001",
		Category:    "Business",
		SubCategory: "State",
		Description: "invalid business state",
	}

	ErrCodeBusinessConflict = ErrorCode{
		Code:        "BIZ_002",
		Category:    "Business",
		SubCategory: "Conflict",
		Description: "concurrent update conflict",
	}
)

// Error is the error type every handler and service returns.
// StatusCode drives the HTTP status of the response envelope.
type Error struct {
	Code       ErrorCode
	Message    string
	StatusCode int
	Details    any
}

func (e *Error) Error() string {
	return e.Message
}

// Is supports errors.Is against the predefined sentinel errors below.
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}
	if targetErr, ok := target.(*Error); ok {
		return e.Code.Code == targetErr.Code.Code && e.Message == targetErr.Message
	}
	return false
}

// NewError builds an *Error with full information.
func NewError(code ErrorCode, message string, statusCode int, details any) error {
	return &Error{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    details,
	}
}

// Predefined errors, one per taxonomy entry.
var (
	// Authentication
	ErrInvalidCredentials = NewError(ErrCodeAuthCredentials, "Email ou mot de passe incorrect", StatusUnauthorized, nil)
	ErrTokenExpired       = NewError(ErrCodeAuthToken, MsgTokenExpired, StatusUnauthorized, nil)
	ErrTokenInvalid       = NewError(ErrCodeAuthToken, MsgTokenInvalid, StatusUnauthorized, nil)
	ErrTokenMissing       = NewError(ErrCodeAuthToken, MsgTokenMissing, StatusUnauthorized, nil)
	ErrForbidden          = NewError(ErrCodeAuthRole, MsgForbidden, StatusForbidden, nil)
	ErrAccountNotApproved = NewError(ErrCodeAuthRole, "Compte en attente d'approbation", StatusForbidden, nil)

	// Validation
	ErrInvalidInput  = NewError(ErrCodeValidationInput, MsgValidationError, StatusBadRequest, nil)
	ErrInvalidEmail  = NewError(ErrCodeValidationInput, "Format d'email invalide", StatusBadRequest, nil)
	ErrWeakPassword  = NewError(ErrCodeValidationInput, "Mot de passe trop faible", StatusBadRequest, nil)
	ErrRequiredField = NewError(ErrCodeValidationInput, "Champ obligatoire manquant", StatusBadRequest, nil)

	// Database
	ErrNotFound  = NewError(ErrCodeDatabaseQuery, MsgNotFound, StatusNotFound, nil)
	ErrDuplicate = NewError(ErrCodeDatabaseQuery, "Cette ressource existe déjà", StatusConflict, nil)

	// Business
	ErrInvalidState    = NewError(ErrCodeBusinessState, "Transition de statut invalide", StatusBadRequest, nil)
	ErrTerminalState   = NewError(ErrCodeBusinessState, "La ressource est dans un état final", StatusConflict, nil)
	ErrVersionConflict = NewError(ErrCodeBusinessConflict, "La ressource a été modifiée par un autre utilisateur", StatusConflict, nil)
)

// ConvertMongoError maps a mongo driver error onto the taxonomy.
// ErrNotFound passes through untouched so callers can errors.Is on it.
func ConvertMongoError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrNotFound) {
		return err
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}

	var mongoErr mongo.CommandError
	if errors.As(err, &mongoErr) {
		switch {
		case mongoErr.Code >= 100 && mongoErr.Code < 200:
			return NewError(ErrCodeDatabaseConnection, MsgDatabaseError, StatusServiceUnavailable, err)
		case mongoErr.Code >= 200 && mongoErr.Code < 300:
			return NewError(ErrCodeDatabaseConnection, MsgDatabaseError, StatusUnauthorized, err)
		default:
			return NewError(ErrCodeDatabaseQuery, MsgDatabaseError, StatusInternalServerError, err)
		}
	}

	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	if mongo.IsNetworkError(err) || mongo.IsTimeout(err) {
		return NewError(ErrCodeDatabaseConnection, MsgDatabaseError, StatusServiceUnavailable, err)
	}

	return NewError(ErrCodeDatabase, MsgDatabaseError, StatusInternalServerError, err)
}
