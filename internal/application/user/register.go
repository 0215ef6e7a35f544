package user

import (
	"context"

	"github.com/xiebiao/bookmart/internal/domain/user"
	"github.com/xiebiao/bookmart/pkg/jwt"
)

// RegisterUseCase 用户注册用例
// 设计说明：
// 1. 注册成功后直接颁发Token(注册即登录,减少一次交互)
// 2. 邮箱格式/密码强度校验由领域服务负责
type RegisterUseCase struct {
	userService user.Service
	jwtManager  *jwt.Manager
}

// NewRegisterUseCase 创建注册用例
func NewRegisterUseCase(userService user.Service, jwtManager *jwt.Manager) *RegisterUseCase {
	return &RegisterUseCase{
		userService: userService,
		jwtManager:  jwtManager,
	}
}

// RegisterRequest 注册请求DTO
type RegisterRequest struct {
	Email    string
	Password string
	Nickname string
}

// Execute 执行注册
func (uc *RegisterUseCase) Execute(ctx context.Context, req RegisterRequest) (*LoginResponse, error) {
	u, err := uc.userService.Register(ctx, req.Email, req.Password, req.Nickname)
	if err != nil {
		return nil, err
	}

	tokenPair, err := uc.jwtManager.GenerateToken(u.ID, u.Email, u.Nickname, u.IsAdmin)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		User:         toUserInfo(u),
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		ExpiresIn:    tokenPair.ExpiresIn,
	}, nil
}
