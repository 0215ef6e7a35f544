package dto

// ShippingAddressRequest 收货地址(五项均必填)
type ShippingAddressRequest struct {
	Street  string `json:"street" binding:"required,max=200"`
	City    string `json:"city" binding:"required,max=100"`
	State   string `json:"state" binding:"required,max=100"`
	ZipCode string `json:"zip_code" binding:"required,max=20"`
	Country string `json:"country" binding:"required,max=100"`
}

// CreateOrderItemRequest 订单明细项快照
// title/price/image_url是下单时的商品快照,由客户端提交
type CreateOrderItemRequest struct {
	BookID   uint   `json:"book_id" binding:"required"`
	Title    string `json:"title" binding:"required,max=200"`
	Quantity int    `json:"quantity" binding:"required,min=1,max=999"`
	Price    int64  `json:"price" binding:"min=0"`
	ImageURL string `json:"image_url" binding:"omitempty,max=500"`
}

// CreateOrderRequest HTTP下单请求
type CreateOrderRequest struct {
	Items         []CreateOrderItemRequest `json:"items" binding:"required,min=1,dive"`
	Address       ShippingAddressRequest   `json:"shipping_address" binding:"required"`
	Phone         string                   `json:"phone" binding:"required,max=30"`
	PaymentMethod string                   `json:"payment_method" binding:"omitempty,max=50"`
}

// UpdateOrderStatusRequest HTTP后台状态更新请求
// 合法值:Processing/Confirmed/Shipped/Delivered(取消走买家取消接口)
type UpdateOrderStatusRequest struct {
	OrderStatus string `json:"order_status" binding:"required" example:"Shipped"`
}
