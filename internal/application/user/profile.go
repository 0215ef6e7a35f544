package user

import (
	"context"

	"github.com/xiebiao/bookmart/internal/domain/user"
)

// ProfileUseCase 个人信息用例(查询+更新)
type ProfileUseCase struct {
	userService user.Service
}

// NewProfileUseCase 创建个人信息用例
func NewProfileUseCase(userService user.Service) *ProfileUseCase {
	return &ProfileUseCase{userService: userService}
}

// Get 查询当前用户信息
func (uc *ProfileUseCase) Get(ctx context.Context, userID uint) (*UserInfo, error) {
	u, err := uc.userService.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	info := toUserInfo(u)
	return &info, nil
}

// UpdateProfileRequest 个人信息更新请求DTO
// 空字段保持不变;NewPassword非空时修改密码(需通过强度校验)
type UpdateProfileRequest struct {
	Nickname    string
	Phone       string
	Address     string
	NewPassword string
}

// Update 更新当前用户信息
func (uc *ProfileUseCase) Update(ctx context.Context, userID uint, req UpdateProfileRequest) (*UserInfo, error) {
	u, err := uc.userService.UpdateProfile(ctx, userID, req.Nickname, req.Phone, req.Address, req.NewPassword)
	if err != nil {
		return nil, err
	}

	info := toUserInfo(u)
	return &info, nil
}
