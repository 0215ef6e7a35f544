package integration

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestUserRegister 测试用户注册流程
func TestUserRegister(t *testing.T) {
	SkipIfServerDown(t)

	t.Run("正常注册即登录", func(t *testing.T) {
		email := GenerateTestEmail("normal_user")
		resp := PostJSON(t, BaseURL+"/users/register", map[string]string{
			"email":    email,
			"password": "Test1234",
			"nickname": "测试用户",
		}, "")

		assert.Equal(t, 0, resp.Code, "注册应该成功")

		var data LoginData
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		assert.NotZero(t, data.User.ID)
		assert.Equal(t, email, data.User.Email)
		assert.False(t, data.User.IsAdmin, "注册用户不能是管理员")
		assert.NotEmpty(t, data.AccessToken, "注册应直接颁发Token")
	})

	t.Run("重复邮箱注册应失败", func(t *testing.T) {
		email := GenerateTestEmail("duplicate_user")
		req := map[string]string{
			"email":    email,
			"password": "Test1234",
			"nickname": "测试用户",
		}

		resp1 := PostJSON(t, BaseURL+"/users/register", req, "")
		require.Equal(t, 0, resp1.Code, "第一次注册应该成功")

		resp2 := PostJSON(t, BaseURL+"/users/register", req, "")
		assert.NotEqual(t, 0, resp2.Code, "重复邮箱注册应该失败")
	})

	t.Run("弱密码应被拒绝", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/users/register", map[string]string{
			"email":    GenerateTestEmail("weak_pwd"),
			"password": "12345678",
			"nickname": "测试用户",
		}, "")
		assert.NotEqual(t, 0, resp.Code, "纯数字密码应该被拒绝")
	})

	t.Run("非法邮箱应被拒绝", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/users/register", map[string]string{
			"email":    "not-an-email",
			"password": "Test1234",
			"nickname": "测试用户",
		}, "")
		assert.NotEqual(t, 0, resp.Code)
	})
}

// TestUserLoginAndProfile 测试登录与个人信息流程
func TestUserLoginAndProfile(t *testing.T) {
	SkipIfServerDown(t)

	email, _, _ := RegisterTestUser(t, "profile_user")

	t.Run("登录成功", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/users/login", map[string]string{
			"email":    email,
			"password": "Test1234",
		}, "")
		require.Equal(t, 0, resp.Code, "登录失败: %s", resp.Message)

		var data LoginData
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		assert.NotEmpty(t, data.AccessToken)
		assert.NotEmpty(t, data.RefreshToken)
	})

	t.Run("错误密码登录失败", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/users/login", map[string]string{
			"email":    email,
			"password": "Wrong5678",
		}, "")
		assert.NotEqual(t, 0, resp.Code)
	})

	t.Run("查询和更新个人信息", func(t *testing.T) {
		_, token, _ := RegisterTestUser(t, "update_user")

		getResp := GetJSON(t, BaseURL+"/users/profile", token)
		require.Equal(t, 0, getResp.Code)

		putResp := PutJSON(t, BaseURL+"/users/profile", map[string]string{
			"phone":   "13800138000",
			"address": "春田市梅因街123号",
		}, token)
		require.Equal(t, 0, putResp.Code, "更新个人信息失败: %s", putResp.Message)

		var data UserData
		require.NoError(t, json.Unmarshal(putResp.Data, &data))
		// 昵称未传应保持不变
		assert.Equal(t, "update_user", data.Nickname)
	})

	t.Run("未带Token访问受保护接口", func(t *testing.T) {
		resp := GetJSON(t, BaseURL+"/users/profile", "")
		assert.NotEqual(t, 0, resp.Code, "未认证访问应该失败")
	})

	t.Run("登出后Token失效", func(t *testing.T) {
		_, token, _ := RegisterTestUser(t, "logout_user")

		logoutResp := PostJSON(t, BaseURL+"/users/logout", nil, token)
		require.Equal(t, 0, logoutResp.Code, "登出失败: %s", logoutResp.Message)

		// 黑名单生效,旧Token不能再用
		profileResp := GetJSON(t, BaseURL+"/users/profile", token)
		assert.NotEqual(t, 0, profileResp.Code, "登出后的Token应该失效")
	})
}

// TestAdminUserList 测试后台用户列表权限
func TestAdminUserList(t *testing.T) {
	SkipIfServerDown(t)

	t.Run("普通用户访问后台接口应被拒绝", func(t *testing.T) {
		_, token, _ := RegisterTestUser(t, "not_admin")
		resp := GetJSON(t, BaseURL+"/users", token)
		assert.NotEqual(t, 0, resp.Code, "非管理员应该被拒绝")
	})

	t.Run("管理员查询用户列表", func(t *testing.T) {
		adminToken := AdminToken(t)
		resp := GetJSON(t, BaseURL+"/users?page=1&page_size=10", adminToken)
		assert.Equal(t, 0, resp.Code, "管理员查询失败: %s", resp.Message)
	})
}
