package order

import (
	"context"

	"github.com/xiebiao/bookmart/internal/domain/order"
)

// 订单列表分页默认值
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// ListMyOrdersUseCase 我的订单列表用例
// 只返回当前登录用户自己的订单,按创建时间降序
type ListMyOrdersUseCase struct {
	orderRepo order.Repository
}

// NewListMyOrdersUseCase 创建我的订单列表用例
func NewListMyOrdersUseCase(orderRepo order.Repository) *ListMyOrdersUseCase {
	return &ListMyOrdersUseCase{orderRepo: orderRepo}
}

// OrderListResponse 订单列表响应DTO(分页信封)
type OrderListResponse struct {
	Orders []OrderView `json:"orders"`
	Page   int         `json:"page"`
	Pages  int         `json:"pages"`
	Total  int64       `json:"total"`
}

// Execute 执行我的订单查询
func (uc *ListMyOrdersUseCase) Execute(ctx context.Context, userID uint, page, pageSize int) (*OrderListResponse, error) {
	page, pageSize = normalizePage(page, pageSize)

	orders, total, err := uc.orderRepo.ListByUserID(ctx, userID, page, pageSize)
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

// normalizePage 分页参数归一化
func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return page, pageSize
}

// totalPages 总页数向上取整
func totalPages(total int64, pageSize int) int {
	pages := int(total) / pageSize
	if int(total)%pageSize != 0 {
		pages++
	}
	return pages
}
