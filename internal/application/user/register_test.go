package user

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookmart/internal/domain/user"
	apperrors "github.com/xiebiao/bookmart/pkg/errors"
	"github.com/xiebiao/bookmart/pkg/jwt"
)

// fakeUserService 用户领域服务的内存假实现
// 跳过bcrypt加密,单元测试只关心用例编排逻辑
type fakeUserService struct {
	users  map[uint]*user.User
	nextID uint
}

func newFakeUserService() *fakeUserService {
	return &fakeUserService{users: make(map[uint]*user.User), nextID: 1}
}

func (f *fakeUserService) Register(ctx context.Context, email, password, nickname string) (*user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return nil, apperrors.ErrEmailDuplicate
		}
	}
	u := user.NewUser(email, "hashed:"+password, nickname)
	u.ID = f.nextID
	f.nextID++
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUserService) Login(ctx context.Context, email, password string) (*user.User, error) {
	for _, u := range f.users {
		if u.Email == email && u.Password == "hashed:"+password {
			return u, nil
		}
	}
	return nil, apperrors.ErrInvalidPassword
}

func (f *fakeUserService) GetByID(ctx context.Context, id uint) (*user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserService) UpdateProfile(ctx context.Context, id uint, nickname, phone, address, newPassword string) (*user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	u.UpdateProfile(nickname, phone, address)
	if newPassword != "" {
		u.Password = "hashed:" + newPassword
	}
	return u, nil
}

func (f *fakeUserService) ListUsers(ctx context.Context, page, pageSize int) ([]*user.User, int64, error) {
	var result []*user.User
	for _, u := range f.users {
		result = append(result, u)
	}
	return result, int64(len(result)), nil
}

func testJWTManager() *jwt.Manager {
	return jwt.NewManager("test-secret", 2*time.Hour, 7*24*time.Hour)
}

// TestRegisterUseCase 测试注册用例(注册即登录)
func TestRegisterUseCase(t *testing.T) {
	t.Run("注册成功直接颁发Token", func(t *testing.T) {
		uc := NewRegisterUseCase(newFakeUserService(), testJWTManager())

		resp, err := uc.Execute(context.Background(), RegisterRequest{
			Email:    "alice@example.com",
			Password: "Test1234",
			Nickname: "爱丽丝",
		})
		require.NoError(t, err)

		assert.Equal(t, "alice@example.com", resp.User.Email)
		assert.False(t, resp.User.IsAdmin)
		assert.NotEmpty(t, resp.AccessToken)
		assert.NotEmpty(t, resp.RefreshToken)
		assert.Positive(t, resp.ExpiresIn)
	})

	t.Run("Token中携带用户声明", func(t *testing.T) {
		mgr := testJWTManager()
		uc := NewRegisterUseCase(newFakeUserService(), mgr)

		resp, err := uc.Execute(context.Background(), RegisterRequest{
			Email:    "bob@example.com",
			Password: "Test1234",
			Nickname: "鲍勃",
		})
		require.NoError(t, err)

		claims, err := mgr.ParseToken(resp.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, resp.User.ID, claims.UserID)
		assert.Equal(t, "bob@example.com", claims.Email)
		assert.False(t, claims.IsAdmin)
	})

	t.Run("邮箱重复注册失败", func(t *testing.T) {
		svc := newFakeUserService()
		uc := NewRegisterUseCase(svc, testJWTManager())

		req := RegisterRequest{Email: "dup@example.com", Password: "Test1234", Nickname: "用户"}
		_, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)

		_, err = uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, apperrors.ErrEmailDuplicate)
	})
}

// TestProfileUseCase 测试个人信息用例
func TestProfileUseCase(t *testing.T) {
	setup := func(t *testing.T) (*ProfileUseCase, uint) {
		svc := newFakeUserService()
		u, err := svc.Register(context.Background(), "carol@example.com", "Test1234", "卡罗尔")
		require.NoError(t, err)
		return NewProfileUseCase(svc), u.ID
	}

	t.Run("查询个人信息", func(t *testing.T) {
		uc, id := setup(t)
		info, err := uc.Get(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, "carol@example.com", info.Email)
		assert.Equal(t, "卡罗尔", info.Nickname)
	})

	t.Run("更新个人信息", func(t *testing.T) {
		uc, id := setup(t)
		info, err := uc.Update(context.Background(), id, UpdateProfileRequest{
			Phone:   "13800138000",
			Address: "春田市梅因街123号",
		})
		require.NoError(t, err)
		assert.Equal(t, "13800138000", info.Phone)
		assert.Equal(t, "春田市梅因街123号", info.Address)
		assert.Equal(t, "卡罗尔", info.Nickname, "未传的字段不变")
	})

	t.Run("用户不存在", func(t *testing.T) {
		uc, _ := setup(t)
		_, err := uc.Get(context.Background(), 9999)
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}

// TestListUsersUseCase 测试后台用户列表
func TestListUsersUseCase(t *testing.T) {
	svc := newFakeUserService()
	for _, email := range []string{"u1@example.com", "u2@example.com", "u3@example.com"} {
		_, err := svc.Register(context.Background(), email, "Test1234", "用户")
		require.NoError(t, err)
	}
	uc := NewListUsersUseCase(svc)

	t.Run("返回分页信封", func(t *testing.T) {
		resp, err := uc.Execute(context.Background(), 1, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(3), resp.Total)
		assert.Len(t, resp.Users, 3)
		assert.Equal(t, 1, resp.Pages)
	})

	t.Run("分页参数归一化", func(t *testing.T) {
		resp, err := uc.Execute(context.Background(), -1, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, resp.Page)
	})
}
