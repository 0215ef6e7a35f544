package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAddress() ShippingAddress {
	return ShippingAddress{
		Street:  "123 Main St",
		City:    "Springfield",
		State:   "IL",
		ZipCode: "62701",
		Country: "USA",
	}
}

func testItems() []OrderItem {
	return []OrderItem{
		{BookID: 1, Title: "Go程序设计", Quantity: 2, Price: 1999},
		{BookID: 2, Title: "数据库原理", Quantity: 1, Price: 2500},
	}
}

// TestNewOrder 测试订单工厂方法
func TestNewOrder(t *testing.T) {
	t.Run("正常创建", func(t *testing.T) {
		o, err := NewOrder("BK20260101000001", 10, testItems(), testAddress(), "13800138000", "")
		require.NoError(t, err)

		// 初始状态:Processing + 待支付
		assert.Equal(t, StatusProcessing, o.Status)
		assert.Equal(t, PaymentPending, o.PaymentStatus)
		assert.Equal(t, DefaultPaymentMethod, o.PaymentMethod, "未传支付方式应使用默认值")
		assert.Nil(t, o.DeliveredAt)

		// 金额在创建时一次性算定
		assert.Equal(t, int64(6498), o.ItemsPrice)
		assert.Equal(t, int64(519), o.TaxPrice)
		assert.Equal(t, int64(0), o.ShippingPrice, "小计超过$50免运费")
		assert.Equal(t, int64(7017), o.TotalPrice)
	})

	t.Run("明细为空应失败", func(t *testing.T) {
		_, err := NewOrder("BK20260101000002", 10, nil, testAddress(), "13800138000", "")
		assert.ErrorIs(t, err, ErrEmptyItems)
	})

	t.Run("数量小于1应失败", func(t *testing.T) {
		items := []OrderItem{{BookID: 1, Title: "Go程序设计", Quantity: 0, Price: 1999}}
		_, err := NewOrder("BK20260101000003", 10, items, testAddress(), "13800138000", "")
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})

	t.Run("单价为负应失败", func(t *testing.T) {
		items := []OrderItem{{BookID: 1, Title: "Go程序设计", Quantity: 1, Price: -1}}
		_, err := NewOrder("BK20260101000004", 10, items, testAddress(), "13800138000", "")
		assert.ErrorIs(t, err, ErrInvalidItemPrice)
	})

	t.Run("地址缺字段应失败", func(t *testing.T) {
		addr := testAddress()
		addr.ZipCode = ""
		_, err := NewOrder("BK20260101000005", 10, testItems(), addr, "13800138000", "")
		assert.ErrorIs(t, err, ErrIncompleteAddress)
	})

	t.Run("缺电话应失败", func(t *testing.T) {
		_, err := NewOrder("BK20260101000006", 10, testItems(), testAddress(), "", "")
		assert.ErrorIs(t, err, ErrMissingPhone)
	})
}

// TestSetStatus 测试管理员状态变更
func TestSetStatus(t *testing.T) {
	newOrder := func(t *testing.T) *Order {
		o, err := NewOrder("BK20260101000010", 10, testItems(), testAddress(), "13800138000", "")
		require.NoError(t, err)
		return o
	}

	t.Run("正常推进到已确认", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.SetStatus(StatusConfirmed))
		assert.Equal(t, StatusConfirmed, o.Status)
		assert.Nil(t, o.DeliveredAt)
	})

	t.Run("允许跳级推进", func(t *testing.T) {
		// 不检查相邻性,Processing可直接到Delivered
		o := newOrder(t)
		require.NoError(t, o.SetStatus(StatusDelivered))
		assert.Equal(t, StatusDelivered, o.Status)
	})

	t.Run("变更为已送达时盖章DeliveredAt", func(t *testing.T) {
		o := newOrder(t)
		require.Nil(t, o.DeliveredAt)

		require.NoError(t, o.SetStatus(StatusDelivered))
		require.NotNil(t, o.DeliveredAt)
		assert.False(t, o.DeliveredAt.IsZero())
	})

	t.Run("不能通过SetStatus取消", func(t *testing.T) {
		o := newOrder(t)
		err := o.SetStatus(StatusCancelled)
		assert.ErrorIs(t, err, ErrInvalidStatus)
		assert.Equal(t, StatusProcessing, o.Status, "失败时状态不变")
	})

	t.Run("终态拒绝任何变更", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.SetStatus(StatusDelivered))

		err := o.SetStatus(StatusShipped)
		assert.ErrorIs(t, err, ErrFinalState)
		assert.Equal(t, StatusDelivered, o.Status)
	})

	t.Run("非法状态值", func(t *testing.T) {
		o := newOrder(t)
		err := o.SetStatus(OrderStatus(99))
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})
}

// TestCancel 测试买家取消订单
func TestCancel(t *testing.T) {
	newOrder := func(t *testing.T) *Order {
		o, err := NewOrder("BK20260101000020", 10, testItems(), testAddress(), "13800138000", "")
		require.NoError(t, err)
		return o
	}

	t.Run("处理中可取消", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.Cancel())
		assert.Equal(t, StatusCancelled, o.Status)
	})

	t.Run("已确认可取消", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.SetStatus(StatusConfirmed))
		require.NoError(t, o.Cancel())
		assert.Equal(t, StatusCancelled, o.Status)
	})

	t.Run("已发货不可取消", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.SetStatus(StatusShipped))

		err := o.Cancel()
		assert.ErrorIs(t, err, ErrNotCancelable)
		assert.Equal(t, StatusShipped, o.Status, "拒绝时不产生任何状态变化")
	})

	t.Run("已送达不可取消", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.SetStatus(StatusDelivered))
		assert.ErrorIs(t, o.Cancel(), ErrNotCancelable)
	})

	t.Run("重复取消应失败", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.Cancel())
		assert.ErrorIs(t, o.Cancel(), ErrNotCancelable)
	})
}

// TestMarkPaid 测试支付标记
func TestMarkPaid(t *testing.T) {
	t.Run("支付状态与订单状态解耦", func(t *testing.T) {
		o, err := NewOrder("BK20260101000030", 10, testItems(), testAddress(), "13800138000", "")
		require.NoError(t, err)

		// 已取消的订单也能标记为已支付(支付状态与订单状态解耦)
		require.NoError(t, o.Cancel())
		o.MarkPaid()

		assert.Equal(t, PaymentPaid, o.PaymentStatus)
		assert.Equal(t, StatusCancelled, o.Status)
	})
}

// TestOrderStatus 测试状态枚举
func TestOrderStatus(t *testing.T) {
	t.Run("String返回API契约状态名", func(t *testing.T) {
		assert.Equal(t, "Processing", StatusProcessing.String())
		assert.Equal(t, "Confirmed", StatusConfirmed.String())
		assert.Equal(t, "Shipped", StatusShipped.String())
		assert.Equal(t, "Delivered", StatusDelivered.String())
		assert.Equal(t, "Cancelled", StatusCancelled.String())
		assert.Equal(t, "Unknown", OrderStatus(0).String())
	})

	t.Run("ParseStatus与String互逆", func(t *testing.T) {
		s, ok := ParseStatus("Shipped")
		assert.True(t, ok)
		assert.Equal(t, StatusShipped, s)

		_, ok = ParseStatus("shipped")
		assert.False(t, ok, "状态名区分大小写")

		_, ok = ParseStatus("Refunded")
		assert.False(t, ok)
	})

	t.Run("终态判断", func(t *testing.T) {
		assert.True(t, StatusDelivered.IsTerminal())
		assert.True(t, StatusCancelled.IsTerminal())
		assert.False(t, StatusProcessing.IsTerminal())
		assert.False(t, StatusConfirmed.IsTerminal())
		assert.False(t, StatusShipped.IsTerminal())
	})
}

// TestIsOwnedBy 测试订单归属校验
func TestIsOwnedBy(t *testing.T) {
	o, err := NewOrder("BK20260101000040", 10, testItems(), testAddress(), "13800138000", "")
	require.NoError(t, err)

	assert.True(t, o.IsOwnedBy(10))
	assert.False(t, o.IsOwnedBy(11))
}
