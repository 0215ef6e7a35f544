package book

import (
	"context"

	"github.com/xiebiao/bookmart/internal/domain/book"
	"github.com/xiebiao/bookmart/pkg/circuitbreaker"
	"github.com/xiebiao/bookmart/pkg/metrics"
)

// CategoriesUseCase 分类列表查询用例
// 返回库中实际存在的分类(DISTINCT),不是静态枚举集合;
// 缓存策略与精选图书相同(Cache-Aside+熔断降级)
type CategoriesUseCase struct {
	bookService book.Service
	cache       CatalogCache
	breaker     *circuitbreaker.CircuitBreaker
}

// NewCategoriesUseCase 创建分类查询用例
func NewCategoriesUseCase(
	bookService book.Service,
	cache CatalogCache,
	breaker *circuitbreaker.CircuitBreaker,
) *CategoriesUseCase {
	return &CategoriesUseCase{
		bookService: bookService,
		cache:       cache,
		breaker:     breaker,
	}
}

// CategoriesResponse 分类列表响应DTO
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// Execute 执行分类查询
func (uc *CategoriesUseCase) Execute(ctx context.Context) (*CategoriesResponse, error) {
	var cached []string
	cacheErr := uc.breaker.Execute(func() error {
		var err error
		cached, err = uc.cache.GetCategories(ctx)
		return err
	})
	if cacheErr == nil && cached != nil {
		metrics.IncCounterVec(metrics.CatalogCacheHitsTotal, map[string]string{"key": "categories"})
		return &CategoriesResponse{Categories: cached}, nil
	}
	metrics.IncCounterVec(metrics.CatalogCacheMissesTotal, map[string]string{"key": "categories"})

	categories, err := uc.bookService.Categories(ctx)
	if err != nil {
		return nil, err
	}

	_ = uc.breaker.Execute(func() error {
		return uc.cache.SetCategories(ctx, categories)
	})

	return &CategoriesResponse{Categories: categories}, nil
}
