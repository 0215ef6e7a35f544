package order

import (
	"context"
)

// Repository 订单仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 订单与明细必须在同一事务中创建(通过context传递事务)
// 3. 更新采用整单覆盖的last-write-wins,不做乐观锁版本检查
type Repository interface {
	// Create 创建订单(包含订单明细,同一事务)
	Create(ctx context.Context, order *Order) error

	// FindByID 根据ID查找订单(包含订单明细)
	FindByID(ctx context.Context, id uint) (*Order, error)

	// Update 更新订单(状态、支付状态、送达时间)
	Update(ctx context.Context, order *Order) error

	// ListByUserID 查询某用户的订单列表,按创建时间降序,分页
	ListByUserID(ctx context.Context, userID uint, page, pageSize int) ([]*Order, int64, error)

	// ListAll 查询全部订单(管理员),按创建时间降序,分页
	ListAll(ctx context.Context, page, pageSize int) ([]*Order, int64, error)
}
