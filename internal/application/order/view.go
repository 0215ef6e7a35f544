package order

import (
	"github.com/xiebiao/bookmart/internal/domain/order"
)

// OrderItemView 订单明细视图DTO
type OrderItemView struct {
	BookID   uint   `json:"book_id"`
	Title    string `json:"title"`
	Quantity int    `json:"quantity"`
	Price    int64  `json:"price"` // 下单时的单价快照(分)
	ImageURL string `json:"image_url,omitempty"`
}

// AddressView 收货地址视图DTO
type AddressView struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
	Country string `json:"country"`
}

// OrderView 订单视图DTO
// 状态对外使用英文名(Processing/Confirmed/Shipped/Delivered/Cancelled)
type OrderView struct {
	ID            uint            `json:"id"`
	OrderNo       string          `json:"order_no"`
	UserID        uint            `json:"user_id"`
	Items         []OrderItemView `json:"items"`
	Address       AddressView     `json:"shipping_address"`
	Phone         string          `json:"phone"`
	PaymentMethod string          `json:"payment_method"`
	PaymentStatus string          `json:"payment_status"`
	ItemsPrice    int64           `json:"items_price"`
	TaxPrice      int64           `json:"tax_price"`
	ShippingPrice int64           `json:"shipping_price"`
	TotalPrice    int64           `json:"total_price"`
	Status        string          `json:"order_status"`
	DeliveredAt   string          `json:"delivered_at,omitempty"`
	CreatedAt     string          `json:"created_at"`
}

// toOrderView 实体转视图DTO
func toOrderView(o *order.Order) OrderView {
	items := make([]OrderItemView, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItemView{
			BookID:   item.BookID,
			Title:    item.Title,
			Quantity: item.Quantity,
			Price:    item.Price,
			ImageURL: item.ImageURL,
		}
	}

	v := OrderView{
		ID:      o.ID,
		OrderNo: o.OrderNo,
		UserID:  o.UserID,
		Items:   items,
		Address: AddressView{
			Street:  o.Address.Street,
			City:    o.Address.City,
			State:   o.Address.State,
			ZipCode: o.Address.ZipCode,
			Country: o.Address.Country,
		},
		Phone:         o.Phone,
		PaymentMethod: o.PaymentMethod,
		PaymentStatus: o.PaymentStatus.String(),
		ItemsPrice:    o.ItemsPrice,
		TaxPrice:      o.TaxPrice,
		ShippingPrice: o.ShippingPrice,
		TotalPrice:    o.TotalPrice,
		Status:        o.Status.String(),
		CreatedAt:     o.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if o.DeliveredAt != nil {
		v.DeliveredAt = o.DeliveredAt.Format("2006-01-02 15:04:05")
	}
	return v
}

// toOrderViews 批量转换
func toOrderViews(orders []*order.Order) []OrderView {
	views := make([]OrderView, len(orders))
	for i, o := range orders {
		views[i] = toOrderView(o)
	}
	return views
}
