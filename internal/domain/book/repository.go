package book

import (
	"context"
)

// Repository 图书仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 便于Mock测试,不依赖具体数据库实现
type Repository interface {
	// Create 创建图书
	Create(ctx context.Context, book *Book) error

	// FindByID 根据ID查找图书
	FindByID(ctx context.Context, id uint) (*Book, error)

	// FindByISBN 根据ISBN查找图书(ISBN可选,仅在填写时检索)
	FindByISBN(ctx context.Context, isbn string) (*Book, error)

	// Update 更新图书信息
	Update(ctx context.Context, book *Book) error

	// Delete 删除图书(软删除)
	Delete(ctx context.Context, id uint) error

	// List 目录查询:全文搜索+分类+价格区间+分页,按创建时间降序
	// 返回当前页数据与过滤后的总记录数(与分页无关的真实总数)
	List(ctx context.Context, query CatalogQuery) ([]*Book, int64, error)

	// ListFeatured 查询精选图书,最多limit本
	ListFeatured(ctx context.Context, limit int) ([]*Book, error)

	// ListCategories 查询库中实际存在的分类集合(DISTINCT)
	ListCategories(ctx context.Context) ([]string, error)
}

// CatalogQuery 目录查询参数
// 所有过滤条件均可选:
// - Search 非空时走全文索引(分词+相关性,非子串匹配)
// - MinPrice/MaxPrice 单位为分,0表示该侧不限
// - Page/Limit 由应用层归一化后传入
type CatalogQuery struct {
	Search   string // 全文搜索关键词(标题/作者/描述)
	Category string // 分类精确匹配
	MinPrice int64  // 价格下界(分),含边界
	MaxPrice int64  // 价格上界(分),含边界
	Page     int    // 页码(从1开始)
	Limit    int    // 每页数量
}
