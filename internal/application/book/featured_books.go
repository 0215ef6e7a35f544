package book

import (
	"context"

	"github.com/xiebiao/bookmart/internal/domain/book"
	"github.com/xiebiao/bookmart/pkg/circuitbreaker"
	"github.com/xiebiao/bookmart/pkg/metrics"
)

// FeaturedBooksLimit 首页精选图书上限
const FeaturedBooksLimit = 6

// CatalogCache 目录缓存接口(Cache-Aside)
// 由redis实现;未命中返回(nil, nil),调用方回源数据库
type CatalogCache interface {
	GetFeatured(ctx context.Context) ([]*book.Book, error)
	SetFeatured(ctx context.Context, books []*book.Book) error
	GetCategories(ctx context.Context) ([]string, error)
	SetCategories(ctx context.Context, categories []string) error
	Invalidate(ctx context.Context) error
}

// FeaturedBooksUseCase 精选图书查询用例
// 设计说明:
// 1. Cache-Aside:先查Redis,未命中回源MySQL并回填
// 2. Redis访问由熔断器保护,熔断打开时直接降级到数据库
// 3. 缓存读写失败只降级不报错,目录查询永远以数据库为准
type FeaturedBooksUseCase struct {
	bookService book.Service
	cache       CatalogCache
	breaker     *circuitbreaker.CircuitBreaker
}

// NewFeaturedBooksUseCase 创建精选查询用例
func NewFeaturedBooksUseCase(
	bookService book.Service,
	cache CatalogCache,
	breaker *circuitbreaker.CircuitBreaker,
) *FeaturedBooksUseCase {
	return &FeaturedBooksUseCase{
		bookService: bookService,
		cache:       cache,
		breaker:     breaker,
	}
}

// FeaturedBooksResponse 精选图书响应DTO
type FeaturedBooksResponse struct {
	Books []BookView `json:"books"`
}

// Execute 执行精选图书查询
func (uc *FeaturedBooksUseCase) Execute(ctx context.Context) (*FeaturedBooksResponse, error) {
	// 1. 尝试读缓存(熔断器保护)
	var cached []*book.Book
	cacheErr := uc.breaker.Execute(func() error {
		var err error
		cached, err = uc.cache.GetFeatured(ctx)
		return err
	})
	if cacheErr == nil && cached != nil {
		metrics.IncCounterVec(metrics.CatalogCacheHitsTotal, map[string]string{"key": "featured"})
		return &FeaturedBooksResponse{Books: toBookViews(cached)}, nil
	}
	metrics.IncCounterVec(metrics.CatalogCacheMissesTotal, map[string]string{"key": "featured"})

	// 2. 回源数据库
	books, err := uc.bookService.FeaturedBooks(ctx, FeaturedBooksLimit)
	if err != nil {
		return nil, err
	}

	// 3. 回填缓存(尽力而为,失败只计入熔断统计)
	_ = uc.breaker.Execute(func() error {
		return uc.cache.SetFeatured(ctx, books)
	})

	return &FeaturedBooksResponse{Books: toBookViews(books)}, nil
}

func toBookViews(books []*book.Book) []BookView {
	views := make([]BookView, len(books))
	for i, b := range books {
		views[i] = toBookView(b)
	}
	return views
}
