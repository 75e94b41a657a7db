package models

import "github.com/dgrijalva/jwt-go"

// JwtClaims is the payload encoded in access tokens. Subject carries
// the principal id in hex.
type JwtClaims struct {
	Role       string `json:"role"`
	Department string `json:"department"`
	Location   string `json:"location"`
	jwt.StandardClaims
}
