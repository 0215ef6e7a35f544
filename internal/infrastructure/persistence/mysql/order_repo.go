package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/bookmart/internal/domain/order"
	apperrors "github.com/xiebiao/bookmart/pkg/errors"
)

// orderRepository 订单仓储实现(MySQL)
// 设计说明:
// 1. 订单与明细在同一事务中写入(通过dbFromContext参与TxManager的事务)
// 2. 更新为整单覆盖,并发更新按last-write-wins处理(无版本号检查)
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓储
func NewOrderRepository(db *gorm.DB) order.Repository {
	return &orderRepository{db: db}
}

// Create 创建订单(包含订单明细)
func (r *orderRepository) Create(ctx context.Context, o *order.Order) error {
	model := toOrderModel(o)

	db := dbFromContext(ctx, r.db)
	// GORM级联创建关联的order_items
	if err := db.Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建订单失败")
	}

	// 回填自增ID与时间戳
	o.ID = model.ID
	o.CreatedAt = model.CreatedAt
	o.UpdatedAt = model.UpdatedAt
	for i := range model.Items {
		o.Items[i].ID = model.Items[i].ID
		o.Items[i].OrderID = model.ID
	}

	return nil
}

// FindByID 根据ID查找订单(包含订单明细)
func (r *orderRepository) FindByID(ctx context.Context, id uint) (*order.Order, error) {
	var model OrderModel

	err := r.db.WithContext(ctx).
		Preload("Items").
		First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, order.ErrOrderNotFound
		}
		return nil, apperrors.Wrap(err, "查询订单失败")
	}

	return toOrderEntity(&model), nil
}

// Update 更新订单(状态、支付状态、送达时间)
// 说明:明细快照创建后不可变,更新只覆盖订单主表
func (r *orderRepository) Update(ctx context.Context, o *order.Order) error {
	db := dbFromContext(ctx, r.db)

	updates := map[string]interface{}{
		"status":         int(o.Status),
		"payment_status": int(o.PaymentStatus),
		"delivered_at":   o.DeliveredAt,
		"updated_at":     o.UpdatedAt,
	}

	result := db.Model(&OrderModel{}).Where("id = ?", o.ID).Updates(updates)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新订单失败")
	}
	if result.RowsAffected == 0 {
		return order.ErrOrderNotFound
	}

	return nil
}

// ListByUserID 查询用户的订单列表(分页,按创建时间降序)
func (r *orderRepository) ListByUserID(ctx context.Context, userID uint, page, pageSize int) ([]*order.Order, int64, error) {
	return r.list(ctx, r.db.WithContext(ctx).Model(&OrderModel{}).Where("user_id = ?", userID), page, pageSize)
}

// ListAll 查询全部订单(管理员,分页,按创建时间降序)
func (r *orderRepository) ListAll(ctx context.Context, page, pageSize int) ([]*order.Order, int64, error) {
	return r.list(ctx, r.db.WithContext(ctx).Model(&OrderModel{}), page, pageSize)
}

// list 公共分页查询逻辑
func (r *orderRepository) list(ctx context.Context, query *gorm.DB, page, pageSize int) ([]*order.Order, int64, error) {
	var models []OrderModel
	var total int64

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询订单总数失败")
	}

	offset := (page - 1) * pageSize
	err := query.
		Preload("Items").
		Order("created_at DESC").
		Limit(pageSize).
		Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "查询订单列表失败")
	}

	orders := make([]*order.Order, len(models))
	for i := range models {
		orders[i] = toOrderEntity(&models[i])
	}

	return orders, total, nil
}

// =========================================
// 辅助函数:模型转换
// =========================================

// toOrderModel 领域实体 → GORM模型
func toOrderModel(o *order.Order) *OrderModel {
	items := make([]OrderItemModel, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItemModel{
			BookID:   item.BookID,
			Title:    item.Title,
			Quantity: item.Quantity,
			Price:    item.Price,
			ImageURL: item.ImageURL,
		}
	}

	return &OrderModel{
		OrderNo:       o.OrderNo,
		UserID:        o.UserID,
		Street:        o.Address.Street,
		City:          o.Address.City,
		State:         o.Address.State,
		ZipCode:       o.Address.ZipCode,
		Country:       o.Address.Country,
		Phone:         o.Phone,
		PaymentMethod: o.PaymentMethod,
		PaymentStatus: int(o.PaymentStatus),
		ItemsPrice:    o.ItemsPrice,
		TaxPrice:      o.TaxPrice,
		ShippingPrice: o.ShippingPrice,
		TotalPrice:    o.TotalPrice,
		Status:        int(o.Status),
		DeliveredAt:   o.DeliveredAt,
		Items:         items,
	}
}

// toOrderEntity GORM模型 → 领域实体
func toOrderEntity(model *OrderModel) *order.Order {
	items := make([]order.OrderItem, len(model.Items))
	for i, item := range model.Items {
		items[i] = order.OrderItem{
			ID:       item.ID,
			OrderID:  item.OrderID,
			BookID:   item.BookID,
			Title:    item.Title,
			Quantity: item.Quantity,
			Price:    item.Price,
			ImageURL: item.ImageURL,
		}
	}

	return &order.Order{
		ID:      model.ID,
		OrderNo: model.OrderNo,
		UserID:  model.UserID,
		Items:   items,
		Address: order.ShippingAddress{
			Street:  model.Street,
			City:    model.City,
			State:   model.State,
			ZipCode: model.ZipCode,
			Country: model.Country,
		},
		Phone:         model.Phone,
		PaymentMethod: model.PaymentMethod,
		PaymentStatus: order.PaymentStatus(model.PaymentStatus),
		ItemsPrice:    model.ItemsPrice,
		TaxPrice:      model.TaxPrice,
		ShippingPrice: model.ShippingPrice,
		TotalPrice:    model.TotalPrice,
		Status:        order.OrderStatus(model.Status),
		DeliveredAt:   model.DeliveredAt,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}
}
