package book

import (
	apperrors "github.com/xiebiao/bookmart/pkg/errors"
)

// 图书领域错误定义
var (
	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.New(apperrors.ErrCodeBookNotFound, "图书不存在")

	// ErrISBNDuplicate ISBN已存在
	ErrISBNDuplicate = apperrors.New(apperrors.ErrCodeISBNDuplicate, "ISBN号已存在")

	// ErrInvalidPrice 无效的价格
	ErrInvalidPrice = apperrors.New(apperrors.ErrCodeInvalidParams, "价格不能为负数")

	// ErrInvalidStock 无效的库存
	ErrInvalidStock = apperrors.New(apperrors.ErrCodeInvalidParams, "库存不能为负数")

	// ErrInvalidCategory 分类不在枚举集合内
	ErrInvalidCategory = apperrors.New(apperrors.ErrCodeInvalidCategory, "图书分类非法")

	// ErrMissingRequired 必填字段缺失
	ErrMissingRequired = apperrors.New(apperrors.ErrCodeInvalidParams, "书名、作者、描述为必填项")
)
