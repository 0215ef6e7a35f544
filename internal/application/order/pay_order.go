package order

import (
	"context"

	"github.com/xiebiao/bookmart/internal/domain/order"
	apperrors "github.com/xiebiao/bookmart/pkg/errors"
)

// PayOrderUseCase 订单支付标记用例
// 说明:这里只负责标记支付状态,不对接真实支付渠道;
// 支付状态与订单状态解耦,不做订单状态校验(见MarkPaid)
type PayOrderUseCase struct {
	orderRepo order.Repository
}

// NewPayOrderUseCase 创建支付标记用例
func NewPayOrderUseCase(orderRepo order.Repository) *PayOrderUseCase {
	return &PayOrderUseCase{orderRepo: orderRepo}
}

// Execute 执行支付标记
// 权限规则与详情查询一致:归属人或管理员
func (uc *PayOrderUseCase) Execute(ctx context.Context, orderID, requesterID uint, isAdmin bool) (*OrderView, error) {
	o, err := uc.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !isAdmin && !o.IsOwnedBy(requesterID) {
		return nil, apperrors.ErrForbidden
	}

	o.MarkPaid()

	if err := uc.orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	view := toOrderView(o)
	return &view, nil
}
