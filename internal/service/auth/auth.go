package auth

import (
	"context"

	"github.com/gogf/gf/v2/errors/gcode"
	"github.com/gogf/gf/v2/errors/gerror"
	"golang.org/x/crypto/bcrypt"

	"knscribe-service/internal/codes"
	"knscribe-service/internal/dao"
	"knscribe-service/internal/model/entity"
)

// Authenticate resolves an email-or-username plus password to a user record.
// A missing user and a wrong password are indistinguishable to the caller.
func Authenticate(ctx context.Context, emailOrUsername, password string) (*entity.User, error) {
	var user entity.User
	cols := dao.User.Columns()
	err := dao.User.Ctx(ctx).
		Where(cols.Email+" = ?", emailOrUsername).
		WhereOr(cols.Username+" = ?", emailOrUsername).
		Limit(1).
		Scan(&user)
	if err != nil {
		return nil, gerror.WrapCode(gcode.CodeDbOperationError, err, "failed to look up user")
	}
	if user.Id == 0 {
		return nil, gerror.NewCode(codes.CodeAuthInvalid, "invalid credentials")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, gerror.NewCode(codes.CodeAuthInvalid, "invalid credentials")
	}
	return &user, nil
}

// GetUser loads one user by id, not-found aware.
func GetUser(ctx context.Context, userID int64) (*entity.User, error) {
	var user entity.User
	cols := dao.User.Columns()
	err := dao.User.Ctx(ctx).Where(cols.Id+" = ?", userID).Scan(&user)
	if err != nil {
		return nil, gerror.WrapCode(gcode.CodeDbOperationError, err, "failed to look up user")
	}
	if user.Id == 0 {
		return nil, gerror.NewCode(codes.CodeAuthInvalid, "user no longer exists")
	}
	return &user, nil
}
