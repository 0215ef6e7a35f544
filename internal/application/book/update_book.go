package book

import (
	"context"

	"github.com/xiebiao/bookmart/internal/domain/book"
)

// UpdateBookUseCase 图书更新用例(管理员操作)
// 部分更新语义:未传的字段保持不变,见book.UpdateParams
type UpdateBookUseCase struct {
	bookService book.Service
	cache       CatalogCache
}

// NewUpdateBookUseCase 创建更新用例
func NewUpdateBookUseCase(bookService book.Service, cache CatalogCache) *UpdateBookUseCase {
	return &UpdateBookUseCase{
		bookService: bookService,
		cache:       cache,
	}
}

// Execute 执行更新用例
func (uc *UpdateBookUseCase) Execute(ctx context.Context, id uint, params book.UpdateParams) (*BookView, error) {
	updated, err := uc.bookService.UpdateBook(ctx, id, params)
	if err != nil {
		return nil, err
	}

	_ = uc.cache.Invalidate(ctx)

	view := toBookView(updated)
	return &view, nil
}
