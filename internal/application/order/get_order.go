package order

import (
	"context"

	"github.com/xiebiao/bookmart/internal/domain/order"
	apperrors "github.com/xiebiao/bookmart/pkg/errors"
)

// GetOrderUseCase 订单详情查询用例
// 权限规则:只有订单归属人或管理员可以查看,越权访问返回Forbidden
// (不返回NotFound,避免与"订单不存在"混淆;订单ID本身不是敏感信息)
type GetOrderUseCase struct {
	orderRepo order.Repository
}

// NewGetOrderUseCase 创建详情查询用例
func NewGetOrderUseCase(orderRepo order.Repository) *GetOrderUseCase {
	return &GetOrderUseCase{orderRepo: orderRepo}
}

// Execute 执行详情查询
// requesterID为当前登录用户,isAdmin来自JWT声明
func (uc *GetOrderUseCase) Execute(ctx context.Context, orderID, requesterID uint, isAdmin bool) (*OrderView, error) {
	o, err := uc.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !isAdmin && !o.IsOwnedBy(requesterID) {
		return nil, apperrors.ErrForbidden
	}

	view := toOrderView(o)
	return &view, nil
}
