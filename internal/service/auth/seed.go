package auth

import (
	"context"

	"github.com/gogf/gf/v2/errors/gerror"
	"github.com/gogf/gf/v2/frame/g"
	"github.com/gogf/gf/v2/os/gtime"
	"golang.org/x/crypto/bcrypt"

	"knscribe-service/internal/dao"
	"knscribe-service/internal/model/do"
)

// SeedUser is one predefined account from configuration.
type SeedUser struct {
	Username string
	Email    string
	Password string
}

// SeedUsers inserts the configured accounts that do not exist yet. Passwords
// are stored as bcrypt hashes only.
func SeedUsers(ctx context.Context, users []SeedUser) error {
	cols := dao.User.Columns()
	for _, u := range users {
		if u.Username == "" || u.Email == "" || u.Password == "" {
			g.Log().Warningf(ctx, "skipping incomplete seed user entry: %q", u.Username)
			continue
		}
		count, err := dao.User.Ctx(ctx).Where(cols.Email+" = ?", u.Email).Count()
		if err != nil {
			return gerror.Wrap(err, "failed to check existing user")
		}
		if count > 0 {
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return gerror.Wrap(err, "failed to hash seed password")
		}
		now := gtime.Now()
		if _, err := dao.User.Ctx(ctx).Data(do.User{
			Username:     u.Username,
			Email:        u.Email,
			PasswordHash: string(hash),
			UpdatedAt:    now,
			CreatedAt:    now,
		}).Insert(); err != nil {
			return gerror.Wrap(err, "failed to insert seed user")
		}
		g.Log().Infof(ctx, "seeded user %s <%s>", u.Username, u.Email)
	}
	return nil
}
