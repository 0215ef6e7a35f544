package book

import (
	"context"

	"github.com/xiebiao/bookmart/internal/domain/book"
)

// 目录分页默认值
const (
	DefaultPage  = 1
	DefaultLimit = 12
)

// ListBooksUseCase 目录查询用例
// 设计说明:
// 1. 全文搜索+分类+价格区间组合过滤,条件之间为AND关系
// 2. 分页信封返回pages=ceil(total/limit),前端据此渲染分页条
// 3. 搜索走存储层的全文索引,不是LIKE子串匹配
type ListBooksUseCase struct {
	bookService book.Service
}

// NewListBooksUseCase 创建目录查询用例
func NewListBooksUseCase(bookService book.Service) *ListBooksUseCase {
	return &ListBooksUseCase{
		bookService: bookService,
	}
}

// ListBooksRequest 目录查询请求DTO
type ListBooksRequest struct {
	Search   string // 搜索关键词(标题/作者/描述,全文检索)
	Category string // 分类精确匹配
	MinPrice int64  // 价格下界(分),0表示不限
	MaxPrice int64  // 价格上界(分),0表示不限
	Page     int    // 页码(从1开始)
	Limit    int    // 每页数量
}

// BookView 图书视图DTO(目录/详情共用)
type BookView struct {
	ID            uint    `json:"id"`
	Title         string  `json:"title"`
	Author        string  `json:"author"`
	Description   string  `json:"description"`
	Price         int64   `json:"price"` // 价格(分)
	Category      string  `json:"category"`
	ISBN          string  `json:"isbn,omitempty"`
	Publisher     string  `json:"publisher,omitempty"`
	PublishedDate string  `json:"published_date,omitempty"`
	Pages         int     `json:"pages,omitempty"`
	Language      string  `json:"language"`
	ImageURL      string  `json:"image_url"`
	Stock         int     `json:"stock"`
	RatingAvg     float64 `json:"rating_avg"`
	RatingCount   int     `json:"rating_count"`
	Featured      bool    `json:"featured"`
	CreatedAt     string  `json:"created_at"`
}

// ListBooksResponse 目录查询响应DTO(分页信封)
type ListBooksResponse struct {
	Books []BookView `json:"books"`
	Page  int        `json:"page"`
	Pages int        `json:"pages"` // 总页数=ceil(total/limit)
	Total int64      `json:"total"` // 过滤后的总记录数,与分页无关
}

// Execute 执行目录查询
// 参数归一化:
// - page < 1 时取1
// - limit < 1 时取默认12
func (uc *ListBooksUseCase) Execute(ctx context.Context, req ListBooksRequest) (*ListBooksResponse, error) {
	if req.Page < 1 {
		req.Page = DefaultPage
	}
	if req.Limit < 1 {
		req.Limit = DefaultLimit
	}

	query := book.CatalogQuery{
		Search:   req.Search,
		Category: req.Category,
		MinPrice: req.MinPrice,
		MaxPrice: req.MaxPrice,
		Page:     req.Page,
		Limit:    req.Limit,
	}

	books, total, err := uc.bookService.Catalog(ctx, query)
	if err != nil {
		return nil, err
	}

	views := make([]BookView, len(books))
	for i, b := range books {
		views[i] = toBookView(b)
	}

	// 总页数向上取整
	pages := int(total) / req.Limit
	if int(total)%req.Limit != 0 {
		pages++
	}

	return &ListBooksResponse{
		Books: views,
		Page:  req.Page,
		Pages: pages,
		Total: total,
	}, nil
}

// toBookView 实体转视图DTO
func toBookView(b *book.Book) BookView {
	v := BookView{
		ID:          b.ID,
		Title:       b.Title,
		Author:      b.Author,
		Description: b.Description,
		Price:       b.Price,
		Category:    b.Category,
		ISBN:        b.ISBN,
		Publisher:   b.Publisher,
		Pages:       b.Pages,
		Language:    b.Language,
		ImageURL:    b.ImageURL,
		Stock:       b.Stock,
		RatingAvg:   b.RatingAvg,
		RatingCount: b.RatingCount,
		Featured:    b.Featured,
		CreatedAt:   b.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if b.PublishedDate != nil {
		v.PublishedDate = b.PublishedDate.Format("2006-01-02")
	}
	return v
}
