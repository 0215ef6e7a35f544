package user

import (
	"context"

	"github.com/xiebiao/bookmart/internal/domain/user"
)

// ListUsersUseCase 用户列表用例(管理员后台)
type ListUsersUseCase struct {
	userService user.Service
}

// NewListUsersUseCase 创建用户列表用例
func NewListUsersUseCase(userService user.Service) *ListUsersUseCase {
	return &ListUsersUseCase{userService: userService}
}

// UserListResponse 用户列表响应DTO(分页信封)
type UserListResponse struct {
	Users []UserInfo `json:"users"`
	Page  int        `json:"page"`
	Pages int        `json:"pages"`
	Total int64      `json:"total"`
}

// Execute 执行用户列表查询
func (uc *ListUsersUseCase) Execute(ctx context.Context, page, pageSize int) (*UserListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	if pageSize > 100 {
		pageSize = 100
	}

	users, total, err := uc.userService.ListUsers(ctx, page, pageSize)
	if err != nil {
		return nil, err
	}

	infos := make([]UserInfo, len(users))
	for i, u := range users {
		infos[i] = toUserInfo(u)
	}

	pages := int(total) / pageSize
	if int(total)%pageSize != 0 {
		pages++
	}

	return &UserListResponse{
		Users: infos,
		Page:  page,
		Pages: pages,
		Total: total,
	}, nil
}
