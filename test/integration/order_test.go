package integration

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testAddress 测试用收货地址(五项必填)
func testAddress() map[string]string {
	return map[string]string{
		"street":   "123 Main St",
		"city":     "Springfield",
		"state":    "IL",
		"zip_code": "62701",
		"country":  "USA",
	}
}

// createTestOrder 下单并返回订单数据
func createTestOrder(t *testing.T, token string, bookID uint, price int64, quantity int) OrderData {
	t.Helper()
	resp := PostJSON(t, BaseURL+"/orders", map[string]interface{}{
		"items": []map[string]interface{}{
			{"book_id": bookID, "title": "集成测试图书", "quantity": quantity, "price": price},
		},
		"shipping_address": testAddress(),
		"phone":            "13800138000",
	}, token)
	require.Equal(t, 0, resp.Code, "下单失败: %s", resp.Message)

	var data OrderData
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	return data
}

// TestCreateOrder 测试下单流程
func TestCreateOrder(t *testing.T) {
	SkipIfServerDown(t)
	adminToken := AdminToken(t)
	bookID := PublishTestBook(t, adminToken, "下单测试图书", 2999)

	t.Run("正常下单金额服务端算定", func(t *testing.T) {
		_, token, userID := RegisterTestUser(t, "order_user")
		data := createTestOrder(t, token, bookID, 2999, 1)

		assert.NotEmpty(t, data.OrderNo)
		assert.Equal(t, userID, data.UserID)
		assert.Equal(t, "Processing", data.OrderStatus)
		assert.Equal(t, "Pending", data.PaymentStatus)

		// 小计2999,税8%=239,不满$50收$5运费
		assert.Equal(t, int64(2999), data.ItemsPrice)
		assert.Equal(t, int64(239), data.TaxPrice)
		assert.Equal(t, int64(500), data.ShippingPrice)
		assert.Equal(t, int64(3738), data.TotalPrice)
	})

	t.Run("满50美元免运费", func(t *testing.T) {
		_, token, _ := RegisterTestUser(t, "free_ship_user")
		data := createTestOrder(t, token, bookID, 2999, 2)

		assert.Equal(t, int64(5998), data.ItemsPrice)
		assert.Equal(t, int64(0), data.ShippingPrice)
	})

	t.Run("引用不存在的图书下单失败", func(t *testing.T) {
		_, token, _ := RegisterTestUser(t, "ghost_book_user")
		resp := PostJSON(t, BaseURL+"/orders", map[string]interface{}{
			"items": []map[string]interface{}{
				{"book_id": 99999999, "title": "不存在的书", "quantity": 1, "price": 1000},
			},
			"shipping_address": testAddress(),
			"phone":            "13800138000",
		}, token)
		assert.NotEqual(t, 0, resp.Code)
	})

	t.Run("明细为空下单失败", func(t *testing.T) {
		_, token, _ := RegisterTestUser(t, "empty_order_user")
		resp := PostJSON(t, BaseURL+"/orders", map[string]interface{}{
			"items":            []map[string]interface{}{},
			"shipping_address": testAddress(),
			"phone":            "13800138000",
		}, token)
		assert.NotEqual(t, 0, resp.Code)
	})

	t.Run("未登录不能下单", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/orders", map[string]interface{}{
			"items": []map[string]interface{}{
				{"book_id": bookID, "title": "书", "quantity": 1, "price": 1000},
			},
			"shipping_address": testAddress(),
			"phone":            "13800138000",
		}, "")
		assert.NotEqual(t, 0, resp.Code)
	})
}

// TestOrderLifecycle 测试订单生命周期
func TestOrderLifecycle(t *testing.T) {
	SkipIfServerDown(t)
	adminToken := AdminToken(t)
	bookID := PublishTestBook(t, adminToken, "生命周期测试图书", 2999)

	t.Run("买家查看自己的订单", func(t *testing.T) {
		_, token, _ := RegisterTestUser(t, "view_user")
		data := createTestOrder(t, token, bookID, 2999, 1)

		resp := GetJSON(t, fmt.Sprintf("%s/orders/%d", BaseURL, data.ID), token)
		assert.Equal(t, 0, resp.Code)

		listResp := GetJSON(t, BaseURL+"/orders/myorders", token)
		require.Equal(t, 0, listResp.Code)

		var list struct {
			Orders []OrderData `json:"orders"`
			Total  int64       `json:"total"`
		}
		require.NoError(t, json.Unmarshal(listResp.Data, &list))
		assert.Equal(t, int64(1), list.Total)
	})

	t.Run("他人订单不可见", func(t *testing.T) {
		_, ownerToken, _ := RegisterTestUser(t, "owner_user")
		data := createTestOrder(t, ownerToken, bookID, 2999, 1)

		_, otherToken, _ := RegisterTestUser(t, "other_user")
		resp := GetJSON(t, fmt.Sprintf("%s/orders/%d", BaseURL, data.ID), otherToken)
		assert.NotEqual(t, 0, resp.Code, "越权访问应该被拒绝")
	})

	t.Run("标记支付", func(t *testing.T) {
		_, token, _ := RegisterTestUser(t, "pay_user")
		data := createTestOrder(t, token, bookID, 2999, 1)

		resp := PutJSON(t, fmt.Sprintf("%s/orders/%d/pay", BaseURL, data.ID), nil, token)
		require.Equal(t, 0, resp.Code, "标记支付失败: %s", resp.Message)

		var paid OrderData
		require.NoError(t, json.Unmarshal(resp.Data, &paid))
		assert.Equal(t, "Paid", paid.PaymentStatus)
	})

	t.Run("取消处理中的订单", func(t *testing.T) {
		_, token, _ := RegisterTestUser(t, "cancel_user")
		data := createTestOrder(t, token, bookID, 2999, 1)

		resp := PutJSON(t, fmt.Sprintf("%s/orders/%d/cancel", BaseURL, data.ID), nil, token)
		require.Equal(t, 0, resp.Code, "取消失败: %s", resp.Message)

		var cancelled OrderData
		require.NoError(t, json.Unmarshal(resp.Data, &cancelled))
		assert.Equal(t, "Cancelled", cancelled.OrderStatus)

		// 重复取消应失败
		again := PutJSON(t, fmt.Sprintf("%s/orders/%d/cancel", BaseURL, data.ID), nil, token)
		assert.NotEqual(t, 0, again.Code)
	})

	t.Run("后台推进状态到已送达", func(t *testing.T) {
		_, token, _ := RegisterTestUser(t, "deliver_user")
		data := createTestOrder(t, token, bookID, 2999, 1)

		resp := PutJSON(t, fmt.Sprintf("%s/orders/%d/status", BaseURL, data.ID), map[string]string{
			"order_status": "Delivered",
		}, adminToken)
		require.Equal(t, 0, resp.Code, "状态更新失败: %s", resp.Message)

		var delivered OrderData
		require.NoError(t, json.Unmarshal(resp.Data, &delivered))
		assert.Equal(t, "Delivered", delivered.OrderStatus)
		assert.NotEmpty(t, delivered.DeliveredAt, "送达时应盖章送达时间")

		// 已送达的订单不能取消
		cancelResp := PutJSON(t, fmt.Sprintf("%s/orders/%d/cancel", BaseURL, data.ID), nil, token)
		assert.NotEqual(t, 0, cancelResp.Code)
	})

	t.Run("普通用户不能推进状态", func(t *testing.T) {
		_, token, _ := RegisterTestUser(t, "no_admin_user")
		data := createTestOrder(t, token, bookID, 2999, 1)

		resp := PutJSON(t, fmt.Sprintf("%s/orders/%d/status", BaseURL, data.ID), map[string]string{
			"order_status": "Shipped",
		}, token)
		assert.NotEqual(t, 0, resp.Code)
	})

	t.Run("后台查询全部订单", func(t *testing.T) {
		resp := GetJSON(t, BaseURL+"/orders?page=1&page_size=10", adminToken)
		assert.Equal(t, 0, resp.Code, "后台订单列表失败: %s", resp.Message)
	})
}
