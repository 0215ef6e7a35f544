package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestItemsTotal 测试商品小计计算
func TestItemsTotal(t *testing.T) {
	t.Run("多件商品按单价乘数量累加", func(t *testing.T) {
		items := []OrderItem{
			{BookID: 1, Title: "Go程序设计", Quantity: 2, Price: 1999},
			{BookID: 2, Title: "数据库原理", Quantity: 1, Price: 2500},
		}

		total := ItemsTotal(items)
		assert.Equal(t, int64(2*1999+2500), total)
	})

	t.Run("空明细小计为0", func(t *testing.T) {
		assert.Equal(t, int64(0), ItemsTotal(nil))
	})
}

// TestCheckout 测试结算规则
//
// 规则回顾:
// - 税费 = 小计 × 8%,整数除法向下取整
// - 小计严格大于$50(5000分)免运费,否则收$5(500分)
func TestCheckout(t *testing.T) {
	t.Run("满50美元免运费", func(t *testing.T) {
		// 小计$60 = 6000分
		tax, shipping, total := Checkout(6000)

		assert.Equal(t, int64(480), tax, "税费应为6000*8%=480")
		assert.Equal(t, int64(0), shipping, "超过免运费门槛")
		assert.Equal(t, int64(6480), total)
	})

	t.Run("不满50美元收固定运费", func(t *testing.T) {
		// 小计$30 = 3000分
		tax, shipping, total := Checkout(3000)

		assert.Equal(t, int64(240), tax)
		assert.Equal(t, int64(500), shipping)
		assert.Equal(t, int64(3740), total)
	})

	t.Run("恰好50美元仍收运费", func(t *testing.T) {
		// 门槛是严格大于,等于5000分不免运费
		_, shipping, _ := Checkout(5000)
		assert.Equal(t, int64(500), shipping)
	})

	t.Run("税费整数除法向下取整", func(t *testing.T) {
		// 1234 * 8 / 100 = 98.72 -> 98
		tax, _, _ := Checkout(1234)
		assert.Equal(t, int64(98), tax)
	})

	t.Run("小计为0", func(t *testing.T) {
		tax, shipping, total := Checkout(0)
		assert.Equal(t, int64(0), tax)
		assert.Equal(t, int64(500), shipping)
		assert.Equal(t, int64(500), total)
	})
}
