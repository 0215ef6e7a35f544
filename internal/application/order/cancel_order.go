package order

import (
	"context"

	"github.com/xiebiao/bookmart/internal/domain/order"
	apperrors "github.com/xiebiao/bookmart/pkg/errors"
	"github.com/xiebiao/bookmart/pkg/metrics"
)

// CancelOrderUseCase 订单取消用例(买家操作)
// 取消规则见order.Order.Cancel:仅Processing/Confirmed可取消,
// 已发货及之后的状态一律拒绝且不产生任何变更
type CancelOrderUseCase struct {
	orderRepo order.Repository
}

// NewCancelOrderUseCase 创建取消用例
func NewCancelOrderUseCase(orderRepo order.Repository) *CancelOrderUseCase {
	return &CancelOrderUseCase{orderRepo: orderRepo}
}

// Execute 执行订单取消
// 权限规则:仅订单归属人可取消(管理员走后台状态接口,那个接口不含取消)
func (uc *CancelOrderUseCase) Execute(ctx context.Context, orderID, requesterID uint) (*OrderView, error) {
	o, err := uc.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !o.IsOwnedBy(requesterID) {
		return nil, apperrors.ErrForbidden
	}

	if err := o.Cancel(); err != nil {
		return nil, err
	}

	if err := uc.orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	metrics.OrdersCancelledTotal.Inc()

	view := toOrderView(o)
	return &view, nil
}
