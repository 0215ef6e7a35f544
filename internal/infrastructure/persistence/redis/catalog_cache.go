package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/xiebiao/bookmart/internal/domain/book"
)

// 缓存Key
// Key设计规范:冒号分隔命名空间,便于管理和监控
const (
	keyFeaturedBooks = "catalog:featured"
	keyCategories    = "catalog:categories"
)

// CatalogCache 目录缓存(Redis)
// 设计说明:
//  1. 精选图书和分类列表是首页高频只读数据,走Cache-Aside:
//     先查缓存,未命中查库并回填
//  2. 图书增删改时整体失效(更新数据库后删除缓存,避免并发写缓存的不一致)
//  3. 缓存故障不应影响读路径,调用方配合熔断器降级直查数据库
type CatalogCache struct {
	client        *redis.Client
	featuredTTL   time.Duration
	categoriesTTL time.Duration
}

// NewCatalogCache 创建目录缓存
func NewCatalogCache(client *redis.Client, featuredTTL, categoriesTTL time.Duration) *CatalogCache {
	return &CatalogCache{
		client:        client,
		featuredTTL:   featuredTTL,
		categoriesTTL: categoriesTTL,
	}
}

// GetFeatured 获取精选图书缓存
// 缓存未命中时返回(nil, nil),调用方需要回源数据库
func (c *CatalogCache) GetFeatured(ctx context.Context) ([]*book.Book, error) {
	val, err := c.client.Get(ctx, keyFeaturedBooks).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("获取精选图书缓存失败: %w", err)
	}

	var books []*book.Book
	if err := json.Unmarshal([]byte(val), &books); err != nil {
		return nil, fmt.Errorf("反序列化精选图书缓存失败: %w", err)
	}

	return books, nil
}

// SetFeatured 回填精选图书缓存
func (c *CatalogCache) SetFeatured(ctx context.Context, books []*book.Book) error {
	val, err := json.Marshal(books)
	if err != nil {
		return fmt.Errorf("序列化精选图书失败: %w", err)
	}

	if err := c.client.Set(ctx, keyFeaturedBooks, val, c.featuredTTL).Err(); err != nil {
		return fmt.Errorf("写入精选图书缓存失败: %w", err)
	}

	return nil
}

// GetCategories 获取分类列表缓存
// 缓存未命中时返回(nil, nil)
func (c *CatalogCache) GetCategories(ctx context.Context) ([]string, error) {
	val, err := c.client.Get(ctx, keyCategories).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("获取分类缓存失败: %w", err)
	}

	var categories []string
	if err := json.Unmarshal([]byte(val), &categories); err != nil {
		return nil, fmt.Errorf("反序列化分类缓存失败: %w", err)
	}

	return categories, nil
}

// SetCategories 回填分类列表缓存
func (c *CatalogCache) SetCategories(ctx context.Context, categories []string) error {
	val, err := json.Marshal(categories)
	if err != nil {
		return fmt.Errorf("序列化分类列表失败: %w", err)
	}

	if err := c.client.Set(ctx, keyCategories, val, c.categoriesTTL).Err(); err != nil {
		return fmt.Errorf("写入分类缓存失败: %w", err)
	}

	return nil
}

// Invalidate 图书数据变更后整体失效目录缓存
func (c *CatalogCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, keyFeaturedBooks, keyCategories).Err(); err != nil {
		return fmt.Errorf("清除目录缓存失败: %w", err)
	}
	return nil
}
