package handler

import (
	"github.com/gin-gonic/gin"

	apporder "github.com/xiebiao/bookmart/internal/application/order"
	"github.com/xiebiao/bookmart/internal/domain/order"
	"github.com/xiebiao/bookmart/internal/interface/http/dto"
	"github.com/xiebiao/bookmart/internal/interface/http/middleware"
	apperrors "github.com/xiebiao/bookmart/pkg/errors"
	"github.com/xiebiao/bookmart/pkg/response"
)

// OrderHandler 订单HTTP处理器
type OrderHandler struct {
	createOrderUseCase  *apporder.CreateOrderUseCase
	getOrderUseCase     *apporder.GetOrderUseCase
	listMyOrdersUseCase *apporder.ListMyOrdersUseCase
	listOrdersUseCase   *apporder.ListOrdersUseCase
	updateStatusUseCase *apporder.UpdateStatusUseCase
	payOrderUseCase     *apporder.PayOrderUseCase
	cancelOrderUseCase  *apporder.CancelOrderUseCase
}

// NewOrderHandler 创建订单处理器
func NewOrderHandler(
	createOrderUseCase *apporder.CreateOrderUseCase,
	getOrderUseCase *apporder.GetOrderUseCase,
	listMyOrdersUseCase *apporder.ListMyOrdersUseCase,
	listOrdersUseCase *apporder.ListOrdersUseCase,
	updateStatusUseCase *apporder.UpdateStatusUseCase,
	payOrderUseCase *apporder.PayOrderUseCase,
	cancelOrderUseCase *apporder.CancelOrderUseCase,
) *OrderHandler {
	return &OrderHandler{
		createOrderUseCase:  createOrderUseCase,
		getOrderUseCase:     getOrderUseCase,
		listMyOrdersUseCase: listMyOrdersUseCase,
		listOrdersUseCase:   listOrdersUseCase,
		updateStatusUseCase: updateStatusUseCase,
		payOrderUseCase:     payOrderUseCase,
		cancelOrderUseCase:  cancelOrderUseCase,
	}
}

// CreateOrder 下单
// @Summary      创建订单
// @Description  明细为下单时的商品快照,税费/运费/总价由服务端统一结算
// @Tags         订单
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateOrderRequest true "订单信息"
// @Success      200 {object} response.Response{data=apporder.OrderView}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      404 {object} response.Response "明细引用的图书不存在"
// @Router       /api/v1/orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	userID := middleware.MustGetUserID(c)

	items := make([]apporder.CreateOrderItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = apporder.CreateOrderItem{
			BookID:   item.BookID,
			Title:    item.Title,
			Quantity: item.Quantity,
			Price:    item.Price,
			ImageURL: item.ImageURL,
		}
	}

	result, err := h.createOrderUseCase.Execute(c.Request.Context(), apporder.CreateOrderRequest{
		UserID: userID,
		Items:  items,
		Address: order.ShippingAddress{
			Street:  req.Address.Street,
			City:    req.Address.City,
			State:   req.Address.State,
			ZipCode: req.Address.ZipCode,
			Country: req.Address.Country,
		},
		Phone:         req.Phone,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// ListMyOrders 我的订单列表
// @Summary      我的订单
// @Tags         订单
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "页码"
// @Param        page_size query int false "每页数量"
// @Success      200 {object} response.Response{data=apporder.OrderListResponse}
// @Router       /api/v1/orders/myorders [get]
func (h *OrderHandler) ListMyOrders(c *gin.Context) {
	var q dto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	userID := middleware.MustGetUserID(c)

	result, err := h.listMyOrdersUseCase.Execute(c.Request.Context(), userID, q.Page, q.PageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetOrder 订单详情
// @Summary      订单详情
// @Description  仅订单归属人或管理员可查看
// @Tags         订单
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "订单ID"
// @Success      200 {object} response.Response{data=apporder.OrderView}
// @Failure      403 {object} response.Response "无权限访问"
// @Failure      404 {object} response.Response "订单不存在"
// @Router       /api/v1/orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	result, err := h.getOrderUseCase.Execute(
		c.Request.Context(), id,
		middleware.MustGetUserID(c), middleware.GetIsAdmin(c),
	)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// PayOrder 标记支付
// @Summary      标记订单已支付
// @Tags         订单
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "订单ID"
// @Success      200 {object} response.Response{data=apporder.OrderView}
// @Failure      403 {object} response.Response "无权限访问"
// @Router       /api/v1/orders/{id}/pay [put]
func (h *OrderHandler) PayOrder(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	result, err := h.payOrderUseCase.Execute(
		c.Request.Context(), id,
		middleware.MustGetUserID(c), middleware.GetIsAdmin(c),
	)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// CancelOrder 取消订单
// @Summary      取消订单
// @Description  仅Processing/Confirmed状态可取消
// @Tags         订单
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "订单ID"
// @Success      200 {object} response.Response{data=apporder.OrderView}
// @Failure      400 {object} response.Response "当前状态不允许取消"
// @Failure      403 {object} response.Response "无权限访问"
// @Router       /api/v1/orders/{id}/cancel [put]
func (h *OrderHandler) CancelOrder(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	result, err := h.cancelOrderUseCase.Execute(c.Request.Context(), id, middleware.MustGetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// ListOrders 全部订单(管理员)
// @Summary      全部订单
// @Tags         后台
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "页码"
// @Param        page_size query int false "每页数量"
// @Success      200 {object} response.Response{data=apporder.OrderListResponse}
// @Failure      403 {object} response.Response "需要管理员权限"
// @Router       /api/v1/orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	var q dto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.listOrdersUseCase.Execute(c.Request.Context(), q.Page, q.PageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// UpdateOrderStatus 后台状态更新(管理员)
// @Summary      更新订单状态
// @Description  目标状态:Processing/Confirmed/Shipped/Delivered;终态订单拒绝变更
// @Tags         后台
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "订单ID"
// @Param        request body dto.UpdateOrderStatusRequest true "目标状态"
// @Success      200 {object} response.Response{data=apporder.OrderView}
// @Failure      400 {object} response.Response "状态非法或订单已完结"
// @Failure      403 {object} response.Response "需要管理员权限"
// @Router       /api/v1/orders/{id}/status [put]
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.updateStatusUseCase.Execute(c.Request.Context(), id, req.OrderStatus)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
