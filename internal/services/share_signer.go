// internal/services/share_signer.go
package services

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"adproof/internal/models"
)

// ShareClaims carry a full creative snapshot inside the token, so a share
// link renders the same preview even after the live studio moves on. The
// image is not part of the snapshot and shared renders show the placeholder.
type ShareClaims struct {
	Content   models.CreativeContent `json:"content"`
	Transform models.ImageTransform  `json:"transform"`
	jwt.RegisteredClaims
}

// ShareSigner mints and verifies share-link tokens.
type ShareSigner struct {
	secret []byte
	ttl    time.Duration
}

func NewShareSigner(secret string, ttl time.Duration) *ShareSigner {
	return &ShareSigner{secret: []byte(secret), ttl: ttl}
}

func (s *ShareSigner) Sign(content models.CreativeContent, transform models.ImageTransform) (string, error) {
	now := time.Now()
	claims := ShareClaims{
		Content:   content,
		Transform: transform,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *ShareSigner) Parse(tokenString string) (*ShareClaims, error) {
	claims := &ShareClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithLeeway(30*time.Second))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
