package v1

import (
	"github.com/gogf/gf/v2/frame/g"
)

// Login exchanges credentials for a bearer token.
type LoginReq struct {
	g.Meta          `path:"/login" method:"post" summary:"Authenticate and obtain a bearer token"`
	EmailOrUsername string `json:"email_or_username" v:"required" dc:"email address or username"`
	Password        string `json:"password" v:"required" dc:"account password"`
}
type LoginRes struct {
	Token string   `json:"token" dc:"bearer token, valid for 24h by default"`
	User  UserInfo `json:"user" dc:"authenticated account"`
}

// Verify validates the caller's bearer token.
type VerifyReq struct {
	g.Meta `path:"/verify" method:"get" summary:"Validate the bearer token"`
}
type VerifyRes struct {
	User UserInfo `json:"user" dc:"account the token resolves to"`
}

type UserInfo struct {
	Id       int64  `json:"id" dc:"user id"`
	Username string `json:"username" dc:"username"`
	Email    string `json:"email" dc:"email address"`
}
