package order

import (
	apperrors "github.com/xiebiao/bookmart/pkg/errors"
)

// 订单领域错误定义
var (
	// ErrOrderNotFound 订单不存在
	ErrOrderNotFound = apperrors.New(apperrors.ErrCodeOrderNotFound, "订单不存在")

	// ErrEmptyItems 订单明细为空
	ErrEmptyItems = apperrors.New(apperrors.ErrCodeInvalidParams, "订单明细不能为空")

	// ErrInvalidQuantity 购买数量不合法
	ErrInvalidQuantity = apperrors.New(apperrors.ErrCodeInvalidParams, "购买数量必须大于0")

	// ErrInvalidItemPrice 明细单价不合法
	ErrInvalidItemPrice = apperrors.New(apperrors.ErrCodeInvalidParams, "商品单价不能为负数")

	// ErrIncompleteAddress 收货地址不完整
	ErrIncompleteAddress = apperrors.New(apperrors.ErrCodeInvalidParams, "收货地址五项均为必填")

	// ErrMissingPhone 缺少联系电话
	ErrMissingPhone = apperrors.New(apperrors.ErrCodeInvalidParams, "联系电话为必填项")

	// ErrInvalidStatus 非法的目标状态
	ErrInvalidStatus = apperrors.New(apperrors.ErrCodeInvalidOrderStatus, "订单状态非法")

	// ErrFinalState 订单已处于终态,不再接受状态变更
	ErrFinalState = apperrors.New(apperrors.ErrCodeOrderFinalState, "订单已完结,不能再变更状态")

	// ErrNotCancelable 当前状态不允许取消
	ErrNotCancelable = apperrors.New(apperrors.ErrCodeOrderNotCancelable, "订单当前状态不允许取消")

	// ErrOrderNoGenerate 订单号生成失败
	ErrOrderNoGenerate = apperrors.New(apperrors.ErrCodeInternal, "订单号生成失败")
)
