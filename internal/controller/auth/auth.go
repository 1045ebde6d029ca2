package auth

import (
	authApi "knscribe-service/api/auth"
	authSvc "knscribe-service/internal/service/auth"
)

// ControllerV1 implements the auth API.
type ControllerV1 struct {
	tokens *authSvc.TokenManager
}

func NewV1(tokens *authSvc.TokenManager) authApi.IAuthV1 {
	return &ControllerV1{tokens: tokens}
}
