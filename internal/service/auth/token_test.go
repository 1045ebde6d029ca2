package auth

import (
	"testing"
	"time"

	"github.com/gogf/gf/v2/errors/gerror"

	"knscribe-service/internal/codes"
	"knscribe-service/internal/model/entity"
)

func TestTokenRoundTrip(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	token, err := m.Issue(&entity.User{Id: 17, Username: "maria"})
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	userID, err := m.Parse(token)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if userID != 17 {
		t.Fatalf("user id = %d, want 17", userID)
	}
}

func TestTokenWrongSecretRejected(t *testing.T) {
	issuer := NewTokenManager("secret-a", time.Hour)
	verifier := NewTokenManager("secret-b", time.Hour)

	token, err := issuer.Issue(&entity.User{Id: 1, Username: "x"})
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if _, err := verifier.Parse(token); gerror.Code(err) != codes.CodeAuthInvalid {
		t.Fatalf("error code = %v, want invalid auth", gerror.Code(err))
	}
}

func TestTokenExpiredRejected(t *testing.T) {
	m := &TokenManager{secret: []byte("s"), ttl: -time.Hour}

	token, err := m.Issue(&entity.User{Id: 1, Username: "x"})
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if _, err := m.Parse(token); gerror.Code(err) != codes.CodeAuthInvalid {
		t.Fatalf("error code = %v, want invalid auth", gerror.Code(err))
	}
}

func TestTokenGarbageRejected(t *testing.T) {
	m := NewTokenManager("s", time.Hour)
	for _, token := range []string{"", "garbage", "a.b.c"} {
		if _, err := m.Parse(token); gerror.Code(err) != codes.CodeAuthInvalid {
			t.Fatalf("Parse(%q) error code = %v, want invalid auth", token, gerror.Code(err))
		}
	}
}
