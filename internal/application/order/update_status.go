package order

import (
	"context"
	"strings"

	"github.com/xiebiao/bookmart/internal/domain/order"
	"github.com/xiebiao/bookmart/pkg/metrics"
)

// UpdateStatusUseCase 后台订单状态更新用例(管理员操作)
// 状态机规则见order.Order.SetStatus:
// - 目标状态只能是四个非取消状态
// - 终态订单拒绝变更
// - 变更为Delivered时盖章送达时间
type UpdateStatusUseCase struct {
	orderRepo order.Repository
}

// NewUpdateStatusUseCase 创建状态更新用例
func NewUpdateStatusUseCase(orderRepo order.Repository) *UpdateStatusUseCase {
	return &UpdateStatusUseCase{orderRepo: orderRepo}
}

// Execute 执行状态更新
// statusName为API传入的英文状态名(Processing/Confirmed/Shipped/Delivered)
func (uc *UpdateStatusUseCase) Execute(ctx context.Context, orderID uint, statusName string) (*OrderView, error) {
	target, ok := order.ParseStatus(statusName)
	if !ok {
		return nil, order.ErrInvalidStatus
	}

	o, err := uc.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := o.SetStatus(target); err != nil {
		return nil, err
	}

	if err := uc.orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	metrics.IncCounterVec(metrics.OrderStatusUpdatesTotal, map[string]string{
		"status": strings.ToLower(target.String()),
	})

	view := toOrderView(o)
	return &view, nil
}
