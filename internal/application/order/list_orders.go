package order

import (
	"context"

	"github.com/xiebiao/bookmart/internal/domain/order"
)

// ListOrdersUseCase 全部订单列表用例(管理员后台)
// 管理员身份由接口层中间件保证,这里不再重复校验
type ListOrdersUseCase struct {
	orderRepo order.Repository
}

// NewListOrdersUseCase 创建全部订单列表用例
func NewListOrdersUseCase(orderRepo order.Repository) *ListOrdersUseCase {
	return &ListOrdersUseCase{orderRepo: orderRepo}
}

// Execute 执行全部订单查询
func (uc *ListOrdersUseCase) Execute(ctx context.Context, page, pageSize int) (*OrderListResponse, error) {
	page, pageSize = normalizePage(page, pageSize)

	orders, total, err := uc.orderRepo.ListAll(ctx, page, pageSize)
	if err != nil {
		return nil, err
	}

	return &OrderListResponse{
		Orders: toOrderViews(orders),
		Page:   page,
		Pages:  totalPages(total, pageSize),
		Total:  total,
	}, nil
}
