package auth

import (
	"time"

	"github.com/gogf/gf/v2/errors/gerror"
	"github.com/golang-jwt/jwt/v5"

	"knscribe-service/internal/codes"
	"knscribe-service/internal/model/entity"
)

// TokenManager issues and validates HS256 bearer tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Issue creates a signed token carrying the user identity.
func (m *TokenManager) Issue(user *entity.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  user.Id,
		"username": user.Username,
		"exp":      time.Now().Add(m.ttl).Unix(),
		"iat":      time.Now().Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", gerror.Wrap(err, "failed to sign token")
	}
	return token, nil
}

// Parse validates a token and returns the user id it carries.
func (m *TokenManager) Parse(tokenString string) (int64, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, gerror.Newf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return 0, gerror.WrapCode(codes.CodeAuthInvalid, err, "invalid or expired token")
	}
	if !token.Valid {
		return 0, gerror.NewCode(codes.CodeAuthInvalid, "invalid or expired token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, gerror.NewCode(codes.CodeAuthInvalid, "invalid token claims")
	}
	raw, ok := claims["user_id"].(float64)
	if !ok || raw <= 0 {
		return 0, gerror.NewCode(codes.CodeAuthInvalid, "token carries no user identity")
	}
	return int64(raw), nil
}
