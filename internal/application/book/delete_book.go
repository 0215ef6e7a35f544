package book

import (
	"context"

	"github.com/xiebiao/bookmart/internal/domain/book"
)

// DeleteBookUseCase 图书下架用例(管理员操作,软删除)
type DeleteBookUseCase struct {
	bookService book.Service
	cache       CatalogCache
}

// NewDeleteBookUseCase 创建下架用例
func NewDeleteBookUseCase(bookService book.Service, cache CatalogCache) *DeleteBookUseCase {
	return &DeleteBookUseCase{
		bookService: bookService,
		cache:       cache,
	}
}

// Execute 执行下架用例
func (uc *DeleteBookUseCase) Execute(ctx context.Context, id uint) error {
	if err := uc.bookService.DeleteBook(ctx, id); err != nil {
		return err
	}

	_ = uc.cache.Invalidate(ctx)
	return nil
}
