// Package authsvc implements account and token services.
package authsvc

import (
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"

	models "leoni_app/api/internal/api/auth/models"
	"leoni_app/api/internal/common"
	"leoni_app/api/internal/global"
)

// CreateToken signs an HS256 access token for the principal. The
// subject claim carries the principal id in hex.
func CreateToken(p *models.Principal) (string, error) {
	now := time.Now()
	expiry := time.Duration(global.MongoDB_ServerConfig.JwtExpiryHours) * time.Hour

	claims := models.JwtClaims{
		Role:       p.Role,
		Department: p.Department,
		Location:   p.Location,
		StandardClaims: jwt.StandardClaims{
			Subject:   p.ID.Hex(),
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(expiry).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(global.MongoDB_ServerConfig.JwtSecret))
	if err != nil {
		return "", common.NewError(common.ErrCodeAuthToken, common.MsgTokenInvalid, common.StatusInternalServerError, err)
	}
	return signed, nil
}

// ParseToken verifies a signed token and returns its claims. Expired
// tokens surface as ErrTokenExpired, everything else as
// ErrTokenInvalid.
func ParseToken(tokenString string) (*models.JwtClaims, error) {
	claims := &models.JwtClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(global.MongoDB_ServerConfig.JwtSecret), nil
	})
	if err != nil {
		var validationErr *jwt.ValidationError
		if errors.As(err, &validationErr) && validationErr.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrTokenInvalid
	}
	if !token.Valid {
		return nil, common.ErrTokenInvalid
	}
	return claims, nil
}
