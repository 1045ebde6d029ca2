package auth

import (
	"context"
	"strings"

	"github.com/gogf/gf/v2/errors/gerror"
	"github.com/gogf/gf/v2/frame/g"

	v1 "knscribe-service/api/auth/v1"
	"knscribe-service/internal/codes"
	authSvc "knscribe-service/internal/service/auth"
)

// Verify is itself the token check, so it lives outside the auth middleware
// group.
func (c *ControllerV1) Verify(ctx context.Context, req *v1.VerifyReq) (res *v1.VerifyRes, err error) {
	header := g.RequestFromCtx(ctx).Header.Get("Authorization")
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	if token == "" {
		return nil, gerror.NewCode(codes.CodeAuthRequired, "authentication token required")
	}
	userID, err := c.tokens.Parse(token)
	if err != nil {
		return nil, err
	}
	user, err := authSvc.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &v1.VerifyRes{
		User: v1.UserInfo{
			Id:       user.Id,
			Username: user.Username,
			Email:    user.Email,
		},
	}, nil
}
