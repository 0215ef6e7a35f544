package order

// 结算规则常量
// 金额单位统一为分:满$50免运费,否则收$5固定运费;税率8%
const (
	// FreeShippingThreshold 免运费门槛(分),小计严格大于该值时免运费
	FreeShippingThreshold int64 = 5000

	// FlatShippingFee 固定运费(分)
	FlatShippingFee int64 = 500

	// TaxRatePercent 税率(百分比)
	TaxRatePercent int64 = 8
)

// ItemsTotal 计算商品小计(Σ 单价×数量)
// 说明:单价来自下单时的明细快照,本设计不回查图书表的实时价格
// (接口契约信任客户端快照,见DESIGN.md的开放问题决议)
func ItemsTotal(items []OrderItem) int64 {
	var total int64
	for _, item := range items {
		total += item.Price * int64(item.Quantity)
	}
	return total
}

// Checkout 结算:根据商品小计算出税费、运费、总价
// 规则:
// - 税费 = 小计 × 8%(分为单位的整除,向下取整,保证确定性)
// - 运费 = 小计 > $50 ? 0 : $5
// - 总价 = 小计 + 税费 + 运费(创建时一次算定,之后不再重导)
func Checkout(itemsPrice int64) (tax, shipping, total int64) {
	tax = itemsPrice * TaxRatePercent / 100

	if itemsPrice > FreeShippingThreshold {
		shipping = 0
	} else {
		shipping = FlatShippingFee
	}

	total = itemsPrice + tax + shipping
	return tax, shipping, total
}
