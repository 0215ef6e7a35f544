package order

import (
	"time"
)

// OrderStatus 订单状态
// 设计说明:
// 1. 使用int类型而非string(节省存储空间,便于索引)
// 2. String()返回API对外的英文状态名(与前端契约一致)
// 3. 状态值1-4为正常流转方向,5为取消分支
type OrderStatus int

const (
	StatusProcessing OrderStatus = 1 // 处理中(下单后的初始状态)
	StatusConfirmed  OrderStatus = 2 // 已确认
	StatusShipped    OrderStatus = 3 // 已发货
	StatusDelivered  OrderStatus = 4 // 已送达(终态)
	StatusCancelled  OrderStatus = 5 // 已取消(终态)
)

// String 实现Stringer接口,返回API契约中的状态名
func (s OrderStatus) String() string {
	switch s {
	case StatusProcessing:
		return "Processing"
	case StatusConfirmed:
		return "Confirmed"
	case StatusShipped:
		return "Shipped"
	case StatusDelivered:
		return "Delivered"
	case StatusCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// IsTerminal 是否为终态(终态订单不再接受任何状态变更)
func (s OrderStatus) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// ParseStatus 解析API传入的状态名
func ParseStatus(s string) (OrderStatus, bool) {
	switch s {
	case "Processing":
		return StatusProcessing, true
	case "Confirmed":
		return StatusConfirmed, true
	case "Shipped":
		return StatusShipped, true
	case "Delivered":
		return StatusDelivered, true
	case "Cancelled":
		return StatusCancelled, true
	default:
		return 0, false
	}
}

// PaymentStatus 支付状态
type PaymentStatus int

const (
	PaymentPending PaymentStatus = 1 // 待支付
	PaymentPaid    PaymentStatus = 2 // 已支付
	PaymentFailed  PaymentStatus = 3 // 支付失败
)

// String 实现Stringer接口
func (s PaymentStatus) String() string {
	switch s {
	case PaymentPending:
		return "Pending"
	case PaymentPaid:
		return "Paid"
	case PaymentFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// DefaultPaymentMethod 默认支付方式
const DefaultPaymentMethod = "Cash on Delivery"

// ShippingAddress 收货地址(值对象,五个字段均必填)
type ShippingAddress struct {
	Street  string
	City    string
	State   string
	ZipCode string
	Country string
}

// IsComplete 地址是否完整
func (a ShippingAddress) IsComplete() bool {
	return a.Street != "" && a.City != "" && a.State != "" &&
		a.ZipCode != "" && a.Country != ""
}

// OrderItem 订单明细项
// 设计说明:
//  1. 不是独立聚合根,必须通过Order访问
//  2. Title/Price/ImageURL是下单时的快照,与图书表解耦
//     (商家改价、删书都不影响历史订单)
type OrderItem struct {
	ID       uint
	OrderID  uint   // 所属订单ID
	BookID   uint   // 图书ID(仅作引用,不保证图书仍存在)
	Title    string // 下单时的书名快照
	Quantity int    // 购买数量,必须>=1
	Price    int64  // 下单时的单价快照(分)
	ImageURL string // 下单时的封面快照
}

// Order 订单实体(聚合根)
// 设计说明:
// 1. Order是聚合根,OrderItem是子实体
// 2. 四项金额在创建时一次性计算并冗余存储,之后不再重新推导
// 3. 并发更新走存储层的last-write-wins,不做版本号检查(低写入量场景的取舍)
type Order struct {
	ID            uint
	OrderNo       string // 订单号(业务主键,全局唯一)
	UserID        uint   // 买家用户ID(订单归属)
	Items         []OrderItem
	Address       ShippingAddress
	Phone         string // 联系电话,必填
	PaymentMethod string // 支付方式,默认Cash on Delivery
	PaymentStatus PaymentStatus
	ItemsPrice    int64 // 商品小计(分)
	TaxPrice      int64 // 税费(分)
	ShippingPrice int64 // 运费(分)
	TotalPrice    int64 // 总价(分) = 小计+税费+运费
	Status        OrderStatus
	DeliveredAt   *time.Time // 仅在状态变为Delivered时盖章
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewOrder 创建新订单(工厂方法)
// 业务规则:
// - 明细非空,数量>=1
// - 地址完整,电话必填
// - 金额由结算规则(见pricing.go)基于明细快照一次性算出
// - 初始状态:Processing + Pending
func NewOrder(orderNo string, userID uint, items []OrderItem, address ShippingAddress, phone, paymentMethod string) (*Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyItems
	}
	for _, item := range items {
		if item.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
		if item.Price < 0 {
			return nil, ErrInvalidItemPrice
		}
	}
	if !address.IsComplete() {
		return nil, ErrIncompleteAddress
	}
	if phone == "" {
		return nil, ErrMissingPhone
	}
	if paymentMethod == "" {
		paymentMethod = DefaultPaymentMethod
	}

	itemsPrice := ItemsTotal(items)
	tax, shipping, total := Checkout(itemsPrice)

	now := time.Now()
	return &Order{
		OrderNo:       orderNo,
		UserID:        userID,
		Items:         items,
		Address:       address,
		Phone:         phone,
		PaymentMethod: paymentMethod,
		PaymentStatus: PaymentPending,
		ItemsPrice:    itemsPrice,
		TaxPrice:      tax,
		ShippingPrice: shipping,
		TotalPrice:    total,
		Status:        StatusProcessing,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// SetStatus 管理员设置订单状态
// 业务规则:
// - 目标状态只能是Processing/Confirmed/Shipped/Delivered(取消走Cancel)
// - 终态(Delivered/Cancelled)订单拒绝任何变更
// - 不做相邻性检查:允许Processing直接跳到Delivered(后台宽松语义,见DESIGN.md)
// - 变更为Delivered时盖章DeliveredAt,其他变更一律不动它
func (o *Order) SetStatus(target OrderStatus) error {
	if target != StatusProcessing && target != StatusConfirmed &&
		target != StatusShipped && target != StatusDelivered {
		return ErrInvalidStatus
	}
	if o.Status.IsTerminal() {
		return ErrFinalState
	}

	o.Status = target
	if target == StatusDelivered {
		now := time.Now()
		o.DeliveredAt = &now
	}
	o.UpdatedAt = time.Now()
	return nil
}

// Cancel 买家取消订单
// 业务规则:仅Processing/Confirmed可取消;Shipped/Delivered/Cancelled一律拒绝,
// 拒绝时不产生任何状态变化
func (o *Order) Cancel() error {
	if o.Status != StatusProcessing && o.Status != StatusConfirmed {
		return ErrNotCancelable
	}
	o.Status = StatusCancelled
	o.UpdatedAt = time.Now()
	return nil
}

// MarkPaid 标记已支付
// 说明:支付状态与订单状态完全解耦,不做任何订单状态校验
// (已取消的订单也能被标记为已支付,见DESIGN.md的开放问题决议)
func (o *Order) MarkPaid() {
	o.PaymentStatus = PaymentPaid
	o.UpdatedAt = time.Now()
}

// IsOwnedBy 检查订单是否属于指定用户(权限校验,防止越权访问)
func (o *Order) IsOwnedBy(userID uint) bool {
	return o.UserID == userID
}
