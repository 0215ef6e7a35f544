package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// 集成测试辅助工具
// 使用真实的服务进程+MySQL+Redis,验证完整的请求链路
// (Handler → UseCase → Service → Repository → Database)
//
// 运行方式:
//   make test-integration   # 需要先启动Docker环境和API服务
//   go test -v ./test/integration/...

const (
	// BaseURL API基础URL
	BaseURL = "http://localhost:8080/api/v1"
	// PingURL 健康检查地址
	PingURL = "http://localhost:8080/ping"
	// Timeout HTTP请求超时时间
	Timeout = 10 * time.Second
)

// Response 统一响应结构
type Response struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// LoginData 登录/注册响应数据
type LoginData struct {
	User         UserData `json:"user"`
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	ExpiresIn    int64    `json:"expires_in"`
}

// UserData 用户信息
type UserData struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	Nickname string `json:"nickname"`
	IsAdmin  bool   `json:"is_admin"`
}

// BookData 图书响应数据
type BookData struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	Author   string `json:"author"`
	Price    int64  `json:"price"`
	Category string `json:"category"`
	Stock    int    `json:"stock"`
	Featured bool   `json:"featured"`
}

// CatalogData 目录响应数据(分页信封)
type CatalogData struct {
	Books []BookData `json:"books"`
	Page  int        `json:"page"`
	Pages int        `json:"pages"`
	Total int64      `json:"total"`
}

// OrderData 订单响应数据
type OrderData struct {
	ID            uint   `json:"id"`
	OrderNo       string `json:"order_no"`
	UserID        uint   `json:"user_id"`
	PaymentStatus string `json:"payment_status"`
	ItemsPrice    int64  `json:"items_price"`
	TaxPrice      int64  `json:"tax_price"`
	ShippingPrice int64  `json:"shipping_price"`
	TotalPrice    int64  `json:"total_price"`
	OrderStatus   string `json:"order_status"`
	DeliveredAt   string `json:"delivered_at"`
}

// SkipIfServerDown 服务未启动时跳过测试
// 集成测试依赖运行中的API服务,本地没起服务时不应该报失败
func SkipIfServerDown(t *testing.T) {
	t.Helper()
	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(PingURL)
	if err != nil {
		t.Skipf("API服务未启动,跳过集成测试: %v", err)
	}
	resp.Body.Close()
}

// AdminToken 获取管理员Token
// 管理员账号无法通过注册接口创建,从环境变量读取预置账号;
// 未配置时跳过依赖管理员的测试
func AdminToken(t *testing.T) string {
	t.Helper()
	email := os.Getenv("BOOKMART_ADMIN_EMAIL")
	password := os.Getenv("BOOKMART_ADMIN_PASSWORD")
	if email == "" || password == "" {
		t.Skip("未配置BOOKMART_ADMIN_EMAIL/BOOKMART_ADMIN_PASSWORD,跳过管理员测试")
	}

	resp := PostJSON(t, BaseURL+"/users/login", map[string]string{
		"email":    email,
		"password": password,
	}, "")
	require.Equal(t, 0, resp.Code, "管理员登录失败: %s", resp.Message)

	var data LoginData
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	require.True(t, data.User.IsAdmin, "预置账号不是管理员")
	return data.AccessToken
}

// doJSON 发送请求并解析统一响应
func doJSON(t *testing.T, method, url string, data interface{}, token string) *Response {
	t.Helper()

	var body io.Reader
	if data != nil {
		jsonData, err := json.Marshal(data)
		require.NoError(t, err, "JSON序列化失败")
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err, "创建HTTP请求失败")

	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: Timeout}
	resp, err := client.Do(req)
	require.NoError(t, err, "发送HTTP请求失败")
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "读取响应体失败")

	var result Response
	err = json.Unmarshal(respBody, &result)
	require.NoError(t, err, "解析JSON响应失败: %s", string(respBody))

	return &result
}

// PostJSON 发送POST请求并解析JSON响应
func PostJSON(t *testing.T, url string, data interface{}, token string) *Response {
	return doJSON(t, http.MethodPost, url, data, token)
}

// PutJSON 发送PUT请求并解析JSON响应
func PutJSON(t *testing.T, url string, data interface{}, token string) *Response {
	return doJSON(t, http.MethodPut, url, data, token)
}

// GetJSON 发送GET请求并解析JSON响应
func GetJSON(t *testing.T, url string, token string) *Response {
	return doJSON(t, http.MethodGet, url, nil, token)
}

// DeleteJSON 发送DELETE请求并解析JSON响应
func DeleteJSON(t *testing.T, url string, token string) *Response {
	return doJSON(t, http.MethodDelete, url, nil, token)
}

// GenerateTestEmail 生成唯一的测试邮箱
// 时间戳保证重复运行时不撞邮箱唯一索引
func GenerateTestEmail(prefix string) string {
	return fmt.Sprintf("%s_%d@test.com", prefix, time.Now().UnixNano())
}

// RegisterTestUser 注册测试用户并返回Token
// 注册接口注册即登录,直接拿注册响应里的Token
func RegisterTestUser(t *testing.T, nickname string) (email string, token string, userID uint) {
	t.Helper()
	email = GenerateTestEmail(nickname)
	resp := PostJSON(t, BaseURL+"/users/register", map[string]string{
		"email":    email,
		"password": "Test1234",
		"nickname": nickname,
	}, "")
	require.Equal(t, 0, resp.Code, "注册失败: %s", resp.Message)

	var data LoginData
	require.NoError(t, json.Unmarshal(resp.Data, &data), "解析注册响应失败")
	return email, data.AccessToken, data.User.ID
}

// PublishTestBook 上架测试图书并返回图书ID(需要管理员Token)
func PublishTestBook(t *testing.T, adminToken, title string, price int64) uint {
	t.Helper()
	resp := PostJSON(t, BaseURL+"/books", map[string]interface{}{
		"title":       title,
		"author":      "测试作者",
		"description": "集成测试用图书",
		"price":       price,
		"category":    "Fiction",
		"stock":       100,
	}, adminToken)
	require.Equal(t, 0, resp.Code, "图书上架失败: %s", resp.Message)

	var data BookData
	require.NoError(t, json.Unmarshal(resp.Data, &data), "解析图书响应失败")
	return data.ID
}
