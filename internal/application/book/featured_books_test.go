package book

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookmart/internal/domain/book"
	"github.com/xiebiao/bookmart/pkg/circuitbreaker"
)

// fakeCatalogCache 目录缓存的内存假实现
type fakeCatalogCache struct {
	featured    []*book.Book
	categories  []string
	getErr      error
	setErr      error
	setCalls    int
	invalidated int
}

func (f *fakeCatalogCache) GetFeatured(ctx context.Context) ([]*book.Book, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.featured, nil
}

func (f *fakeCatalogCache) SetFeatured(ctx context.Context, books []*book.Book) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.setCalls++
	f.featured = books
	return nil
}

func (f *fakeCatalogCache) GetCategories(ctx context.Context) ([]string, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.categories, nil
}

func (f *fakeCatalogCache) SetCategories(ctx context.Context, categories []string) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.setCalls++
	f.categories = categories
	return nil
}

func (f *fakeCatalogCache) Invalidate(ctx context.Context) error {
	f.invalidated++
	f.featured = nil
	f.categories = nil
	return nil
}

func testBreaker(name string) *circuitbreaker.CircuitBreaker {
	return circuitbreaker.NewCircuitBreaker(name, circuitbreaker.Config{
		MaxRequests: 1,
		Interval:    time.Second,
		Timeout:     time.Second,
		ReadyToTrip: func(counts circuitbreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	})
}

// TestFeaturedBooks 测试精选图书查询的Cache-Aside流程
func TestFeaturedBooks(t *testing.T) {
	t.Run("缓存命中不回源", func(t *testing.T) {
		cache := &fakeCatalogCache{featured: []*book.Book{sampleBook(1, "缓存中的书")}}
		svc := &fakeBookService{featured: []*book.Book{sampleBook(2, "数据库里的书")}}
		uc := NewFeaturedBooksUseCase(svc, cache, testBreaker("t-featured-hit"))

		resp, err := uc.Execute(context.Background())
		require.NoError(t, err)
		require.Len(t, resp.Books, 1)
		assert.Equal(t, "缓存中的书", resp.Books[0].Title)
		assert.Equal(t, 0, cache.setCalls, "命中时不应回填")
	})

	t.Run("缓存未命中回源并回填", func(t *testing.T) {
		cache := &fakeCatalogCache{} // featured为nil表示未命中
		svc := &fakeBookService{featured: []*book.Book{sampleBook(1, "数据库里的书")}}
		uc := NewFeaturedBooksUseCase(svc, cache, testBreaker("t-featured-miss"))

		resp, err := uc.Execute(context.Background())
		require.NoError(t, err)
		require.Len(t, resp.Books, 1)
		assert.Equal(t, "数据库里的书", resp.Books[0].Title)
		assert.Equal(t, 1, cache.setCalls, "未命中应回填缓存")
	})

	t.Run("缓存故障静默降级到数据库", func(t *testing.T) {
		cache := &fakeCatalogCache{getErr: errors.New("redis: connection refused")}
		svc := &fakeBookService{featured: []*book.Book{sampleBook(1, "数据库里的书")}}
		uc := NewFeaturedBooksUseCase(svc, cache, testBreaker("t-featured-degrade"))

		resp, err := uc.Execute(context.Background())
		require.NoError(t, err, "缓存故障不应影响查询结果")
		require.Len(t, resp.Books, 1)
	})

	t.Run("精选数量上限", func(t *testing.T) {
		var many []*book.Book
		for i := uint(1); i <= 10; i++ {
			many = append(many, sampleBook(i, "书"))
		}
		cache := &fakeCatalogCache{}
		svc := &fakeBookService{featured: many}
		uc := NewFeaturedBooksUseCase(svc, cache, testBreaker("t-featured-limit"))

		resp, err := uc.Execute(context.Background())
		require.NoError(t, err)
		assert.Len(t, resp.Books, FeaturedBooksLimit)
	})

	t.Run("连续缓存故障触发熔断后仍可降级", func(t *testing.T) {
		cacheErr := errors.New("redis: connection refused")
		cache := &fakeCatalogCache{getErr: cacheErr, setErr: cacheErr}
		svc := &fakeBookService{featured: []*book.Book{sampleBook(1, "数据库里的书")}}
		breaker := testBreaker("t-featured-trip")
		uc := NewFeaturedBooksUseCase(svc, cache, breaker)

		// 连续失败直到熔断器打开(回填的Execute也计入失败)
		for i := 0; i < 5; i++ {
			_, err := uc.Execute(context.Background())
			require.NoError(t, err)
		}
		assert.Equal(t, circuitbreaker.StateOpen, breaker.State())

		// 熔断打开后依旧直接走数据库
		resp, err := uc.Execute(context.Background())
		require.NoError(t, err)
		require.Len(t, resp.Books, 1)
	})
}

// TestCategories 测试分类列表查询
func TestCategories(t *testing.T) {
	t.Run("缓存命中", func(t *testing.T) {
		cache := &fakeCatalogCache{categories: []string{"Fiction", "Technology"}}
		svc := &fakeBookService{categories: []string{"History"}}
		uc := NewCategoriesUseCase(svc, cache, testBreaker("t-categories-hit"))

		resp, err := uc.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"Fiction", "Technology"}, resp.Categories)
	})

	t.Run("未命中回源并回填", func(t *testing.T) {
		cache := &fakeCatalogCache{}
		svc := &fakeBookService{categories: []string{"Fiction", "Science"}}
		uc := NewCategoriesUseCase(svc, cache, testBreaker("t-categories-miss"))

		resp, err := uc.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"Fiction", "Science"}, resp.Categories)
		assert.Equal(t, 1, cache.setCalls)
	})
}
