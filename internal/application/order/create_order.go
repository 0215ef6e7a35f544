package order

import (
	"context"
	"errors"
	"time"

	"github.com/xiebiao/bookmart/internal/domain/book"
	"github.com/xiebiao/bookmart/internal/domain/order"
	"github.com/xiebiao/bookmart/pkg/metrics"
	"github.com/xiebiao/bookmart/pkg/tracing"
)

// Transactor 事务执行接口
// 由infrastructure层的mysql.TxManager实现,应用层只依赖这个抽象
type Transactor interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// CreateOrderUseCase 创建订单用例
// 设计说明:
//  1. 明细中的书名/单价/封面是客户端提交的下单快照,金额由结算规则
//     基于快照统一算出(税费、运费、总价不信任客户端)
//  2. 明细引用的图书必须存在(在事务内校验,防止下单瞬间图书被下架)
//  3. 订单主表与明细表在同一事务中写入
type CreateOrderUseCase struct {
	orderRepo order.Repository
	bookRepo  book.Repository
	txManager Transactor
}

// NewCreateOrderUseCase 创建下单用例
func NewCreateOrderUseCase(
	orderRepo order.Repository,
	bookRepo book.Repository,
	txManager Transactor,
) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		orderRepo: orderRepo,
		bookRepo:  bookRepo,
		txManager: txManager,
	}
}

// CreateOrderRequest 下单请求DTO
type CreateOrderRequest struct {
	UserID        uint              // 买家用户ID(从JWT中提取,不信任请求体)
	Items         []CreateOrderItem // 订单明细快照
	Address       order.ShippingAddress
	Phone         string
	PaymentMethod string // 空值取默认Cash on Delivery
}

// CreateOrderItem 订单明细项快照
type CreateOrderItem struct {
	BookID   uint
	Title    string
	Quantity int
	Price    int64 // 下单时的单价(分)
	ImageURL string
}

// Execute 执行下单用例
func (uc *CreateOrderUseCase) Execute(ctx context.Context, req CreateOrderRequest) (*OrderView, error) {
	ctx, span := tracing.StartSpan(ctx, "bookmart", "CreateOrder")
	defer span.End()

	start := time.Now()

	items := make([]order.OrderItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = order.OrderItem{
			BookID:   item.BookID,
			Title:    item.Title,
			Quantity: item.Quantity,
			Price:    item.Price,
			ImageURL: item.ImageURL,
		}
	}

	// 工厂方法完成明细/地址/电话校验与金额结算
	newOrder, err := order.NewOrder(
		order.GenerateOrderNo(),
		req.UserID,
		items,
		req.Address,
		req.Phone,
		req.PaymentMethod,
	)
	if err != nil {
		metrics.OrdersFailedTotal.Inc()
		return nil, err
	}

	// 事务内:校验图书存在+写入订单及明细
	err = uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		for _, item := range req.Items {
			if _, err := uc.bookRepo.FindByID(txCtx, item.BookID); err != nil {
				if errors.Is(err, book.ErrBookNotFound) {
					return book.ErrBookNotFound
				}
				return err
			}
		}
		return uc.orderRepo.Create(txCtx, newOrder)
	})
	if err != nil {
		metrics.OrdersFailedTotal.Inc()
		return nil, err
	}

	metrics.OrdersCreatedTotal.Inc()
	metrics.OrderCreationDuration.Observe(time.Since(start).Seconds())

	view := toOrderView(newOrder)
	return &view, nil
}
