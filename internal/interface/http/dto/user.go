package dto

// RegisterRequest HTTP层注册请求
// 说明：HTTP层的DTO，包含参数验证tag
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=20"`
	Nickname string `json:"nickname" binding:"required,min=2,max=50"`
}

// LoginRequest HTTP层登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest HTTP层个人信息更新请求
// 空字段保持不变;new_password非空时修改密码
type UpdateProfileRequest struct {
	Nickname    string `json:"nickname" binding:"omitempty,min=2,max=50"`
	Phone       string `json:"phone" binding:"omitempty,max=30"`
	Address     string `json:"address" binding:"omitempty,max=500"`
	NewPassword string `json:"new_password" binding:"omitempty,min=8,max=20"`
}

// PageQuery 通用分页查询参数
type PageQuery struct {
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=100"`
}
