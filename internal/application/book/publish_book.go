package book

import (
	"context"
	"time"

	"github.com/xiebiao/bookmart/internal/domain/book"
)

// PublishBookUseCase 图书上架用例(管理员操作)
// 设计说明:
// 1. 应用层负责用例编排,业务规则校验由领域层负责
// 2. 输入输出使用DTO,与HTTP层解耦
// 3. 上架成功后使目录缓存失效(精选/分类可能变化)
type PublishBookUseCase struct {
	bookService book.Service
	cache       CatalogCache
}

// NewPublishBookUseCase 创建上架用例
func NewPublishBookUseCase(bookService book.Service, cache CatalogCache) *PublishBookUseCase {
	return &PublishBookUseCase{
		bookService: bookService,
		cache:       cache,
	}
}

// PublishBookRequest 上架请求DTO
type PublishBookRequest struct {
	Title         string     // 书名(必填)
	Author        string     // 作者(必填)
	Description   string     // 图书描述(必填)
	Price         int64      // 价格(分)
	Category      string     // 分类(必须在枚举集合内)
	ISBN          string     // ISBN号(可选,填写时全局唯一)
	Publisher     string     // 出版社
	PublishedDate *time.Time // 出版日期
	Pages         int        // 页数
	Language      string     // 语言,空值取默认English
	ImageURL      string     // 封面URL,空值取默认占位图
	Stock         int        // 初始库存
	Featured      bool       // 是否精选推荐
}

// Execute 执行上架用例
func (uc *PublishBookUseCase) Execute(ctx context.Context, req PublishBookRequest) (*BookView, error) {
	b := book.NewBook(req.Title, req.Author, req.Description, req.Price, req.Category)
	b.ISBN = req.ISBN
	b.Publisher = req.Publisher
	b.PublishedDate = req.PublishedDate
	b.Pages = req.Pages
	b.Stock = req.Stock
	b.Featured = req.Featured
	if req.Language != "" {
		b.Language = req.Language
	}
	if req.ImageURL != "" {
		b.ImageURL = req.ImageURL
	}

	created, err := uc.bookService.CreateBook(ctx, b)
	if err != nil {
		return nil, err
	}

	// 目录缓存失效,失败不影响主流程
	_ = uc.cache.Invalidate(ctx)

	view := toBookView(created)
	return &view, nil
}
