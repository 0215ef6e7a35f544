package user

import (
	"time"
)

// User 用户实体（聚合根）
// DDD设计说明：
// 1. 密码已加密存储（bcrypt），不应该有GetPassword()等方法暴露明文
// 2. IsAdmin区分顾客与管理员，管理接口据此鉴权
// 3. Phone/Address是可选的常用收货信息，下单时可作为默认值回填
// 4. 领域实体不依赖GORM tag（infrastructure层的Repository实现时会处理映射）
type User struct {
	ID        uint
	Email     string
	Password  string // bcrypt哈希值
	Nickname  string
	IsAdmin   bool   // 管理员标记
	Phone     string // 常用联系电话(可选)
	Address   string // 常用收货地址(可选)
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser 创建新用户（工厂方法）
// hashedPassword必须是bcrypt加密后的密码;新注册用户一律是普通顾客
func NewUser(email, hashedPassword, nickname string) *User {
	now := time.Now()
	return &User{
		Email:     email,
		Password:  hashedPassword,
		Nickname:  nickname,
		IsAdmin:   false,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// UpdateProfile 更新个人信息（领域行为）
// 空值保持不变
func (u *User) UpdateProfile(nickname, phone, address string) {
	if nickname != "" {
		u.Nickname = nickname
	}
	if phone != "" {
		u.Phone = phone
	}
	if address != "" {
		u.Address = address
	}
	u.UpdatedAt = time.Now()
}
