package auth

import (
	"context"

	"github.com/gogf/gf/v2/errors/gerror"

	v1 "knscribe-service/api/auth/v1"
	authSvc "knscribe-service/internal/service/auth"
)

func (c *ControllerV1) Login(ctx context.Context, req *v1.LoginReq) (res *v1.LoginRes, err error) {
	user, err := authSvc.Authenticate(ctx, req.EmailOrUsername, req.Password)
	if err != nil {
		return nil, err
	}
	token, err := c.tokens.Issue(user)
	if err != nil {
		return nil, gerror.Wrap(err, "failed to issue token")
	}
	return &v1.LoginRes{
		Token: token,
		User: v1.UserInfo{
			Id:       user.Id,
			Username: user.Username,
			Email:    user.Email,
		},
	}, nil
}
