package book

import (
	"time"
)

// DefaultImageURL 默认封面占位图
const DefaultImageURL = "https://via.placeholder.com/300x400?text=Book+Cover"

// DefaultLanguage 默认语言
const DefaultLanguage = "English"

// Categories 图书分类的固定枚举集合
// 说明：分类集合是业务约定的闭集，下单、建书、筛选都依赖它；
// 目录筛选接口返回的是"库中实际存在的分类"，与这里的静态集合是两回事
var Categories = []string{
	"Fiction", "Non-Fiction", "Science", "History", "Biography", "Children",
	"Romance", "Mystery", "Fantasy", "Self-Help", "Technology", "Business",
}

// IsValidCategory 校验分类是否在枚举集合内
func IsValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// Book 图书实体(聚合根)
// DDD设计说明:
// 1. Book是图书聚合的根实体,包含图书的核心属性
// 2. 价格使用int64存储"分"为单位(避免浮点数精度问题)
// 3. ISBN可选,但一旦填写须全局唯一(数据库层唯一索引保证)
// 4. Title/Author/Description参与全文检索(存储层维护FULLTEXT索引)
type Book struct {
	ID            uint
	Title         string     // 书名
	Author        string     // 作者
	Description   string     // 图书描述
	Price         int64      // 价格(单位:分,1美元=100分)
	Category      string     // 分类(固定枚举)
	ISBN          string     // ISBN号,可选
	Publisher     string     // 出版社
	PublishedDate *time.Time // 出版日期
	Pages         int        // 页数
	Language      string     // 语言,默认English
	ImageURL      string     // 封面图片URL,默认占位图
	Stock         int        // 库存数量,默认0
	RatingAvg     float64    // 平均评分(0-5)
	RatingCount   int        // 评分人数
	Featured      bool       // 是否精选推荐
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewBook 创建新图书(工厂方法)
// 默认值在这里统一补齐：Language=English、ImageURL=占位图
func NewBook(title, author, description string, price int64, category string) *Book {
	now := time.Now()
	return &Book{
		Title:       title,
		Author:      author,
		Description: description,
		Price:       price,
		Category:    category,
		Language:    DefaultLanguage,
		ImageURL:    DefaultImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Validate 校验图书核心不变量
// 业务规则:
// - 书名、作者、描述必填
// - 价格 >= 0,库存 >= 0
// - 分类必须在枚举集合内
func (b *Book) Validate() error {
	if b.Title == "" || b.Author == "" || b.Description == "" {
		return ErrMissingRequired
	}
	if b.Price < 0 {
		return ErrInvalidPrice
	}
	if b.Stock < 0 {
		return ErrInvalidStock
	}
	if !IsValidCategory(b.Category) {
		return ErrInvalidCategory
	}
	return nil
}

// UpdateParams 图书更新参数
// 设计说明:"部分更新"语义:
// 字符串字段空值表示保持不变,数值/布尔字段用指针区分"未传"与"传了零值"
type UpdateParams struct {
	Title         string
	Author        string
	Description   string
	Category      string
	ISBN          string
	Publisher     string
	PublishedDate *time.Time
	Language      string
	ImageURL      string
	Price         *int64
	Pages         *int
	Stock         *int
	Featured      *bool
}

// Apply 应用部分更新(领域行为)
// 更新后重新校验不变量,非法更新不落到实体上由调用方丢弃
func (b *Book) Apply(p UpdateParams) error {
	updated := *b

	if p.Title != "" {
		updated.Title = p.Title
	}
	if p.Author != "" {
		updated.Author = p.Author
	}
	if p.Description != "" {
		updated.Description = p.Description
	}
	if p.Category != "" {
		updated.Category = p.Category
	}
	if p.ISBN != "" {
		updated.ISBN = p.ISBN
	}
	if p.Publisher != "" {
		updated.Publisher = p.Publisher
	}
	if p.PublishedDate != nil {
		updated.PublishedDate = p.PublishedDate
	}
	if p.Language != "" {
		updated.Language = p.Language
	}
	if p.ImageURL != "" {
		updated.ImageURL = p.ImageURL
	}
	if p.Price != nil {
		updated.Price = *p.Price
	}
	if p.Pages != nil {
		updated.Pages = *p.Pages
	}
	if p.Stock != nil {
		updated.Stock = *p.Stock
	}
	if p.Featured != nil {
		updated.Featured = *p.Featured
	}

	if err := updated.Validate(); err != nil {
		return err
	}

	updated.UpdatedAt = time.Now()
	*b = updated
	return nil
}
