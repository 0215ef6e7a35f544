package mysql

import (
	"errors"

	"context"

	"gorm.io/gorm"

	"github.com/xiebiao/bookmart/internal/domain/book"
	apperrors "github.com/xiebiao/bookmart/pkg/errors"
)

// bookRepository 图书仓储实现(MySQL)
// 设计说明:
// 1. 实现domain/book/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. 处理数据库特定的错误(如ISBN重复),转换为业务错误
// 4. 目录查询的条件拼接集中在List方法(本仓储的核心)
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

// Create 创建图书
func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	model := toBookModel(b)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		// ISBN唯一索引冲突
		if isDuplicateError(err) {
			return book.ErrISBNDuplicate
		}
		return apperrors.Wrap(err, "创建图书失败")
	}

	// 回填自增ID与时间戳
	b.ID = model.ID
	b.CreatedAt = model.CreatedAt
	b.UpdatedAt = model.UpdatedAt

	return nil
}

// FindByID 根据ID查找图书
func (r *bookRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	err := r.db.WithContext(ctx).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}

	return toBookEntity(&model), nil
}

// FindByISBN 根据ISBN查找图书
func (r *bookRepository) FindByISBN(ctx context.Context, isbn string) (*book.Book, error) {
	var model BookModel
	err := r.db.WithContext(ctx).Where("isbn = ?", isbn).First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}

	return toBookEntity(&model), nil
}

// Update 更新图书信息
func (r *bookRepository) Update(ctx context.Context, b *book.Book) error {
	model := toBookModel(b)
	model.ID = b.ID
	model.CreatedAt = b.CreatedAt

	// 使用Save更新所有字段(整行覆盖,last-write-wins)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		if isDuplicateError(err) {
			return book.ErrISBNDuplicate
		}
		return apperrors.Wrap(err, "更新图书失败")
	}

	b.UpdatedAt = model.UpdatedAt
	return nil
}

// Delete 删除图书(软删除)
func (r *bookRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&BookModel{}, id)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除图书失败")
	}

	if result.RowsAffected == 0 {
		return book.ErrBookNotFound
	}

	return nil
}

// List 目录查询
// 查询构建规则(每个条件都可选,全不传则返回全量目录分页):
// - Search: MATCH...AGAINST走FULLTEXT索引(分词+相关性,非LIKE子串)
// - Category: 精确匹配
// - MinPrice/MaxPrice: 闭区间,0表示该侧不限
// - 排序固定为创建时间降序;total是过滤后的真实总数,与分页无关
func (r *bookRepository) List(ctx context.Context, q book.CatalogQuery) ([]*book.Book, int64, error) {
	var models []BookModel
	var total int64

	query := r.db.WithContext(ctx).Model(&BookModel{})

	// 全文搜索(标题、作者、描述)
	if q.Search != "" {
		query = query.Where(
			"MATCH (title, author, description) AGAINST (? IN NATURAL LANGUAGE MODE)",
			q.Search,
		)
	}

	// 分类过滤
	if q.Category != "" {
		query = query.Where("category = ?", q.Category)
	}

	// 价格区间过滤(含边界)
	if q.MinPrice > 0 {
		query = query.Where("price >= ?", q.MinPrice)
	}
	if q.MaxPrice > 0 {
		query = query.Where("price <= ?", q.MaxPrice)
	}

	// 查询过滤后的总数(在分页之前)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询图书总数失败")
	}

	// 分页 + 默认排序
	offset := (q.Page - 1) * q.Limit
	err := query.
		Order("created_at DESC").
		Limit(q.Limit).
		Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "查询图书列表失败")
	}

	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}

	return books, total, nil
}

// ListFeatured 查询精选图书,最多limit本
func (r *bookRepository) ListFeatured(ctx context.Context, limit int) ([]*book.Book, error) {
	var models []BookModel

	err := r.db.WithContext(ctx).
		Where("featured = ?", true).
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询精选图书失败")
	}

	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}

	return books, nil
}

// ListCategories 查询库中实际存在的分类集合
func (r *bookRepository) ListCategories(ctx context.Context) ([]string, error) {
	var categories []string

	err := r.db.WithContext(ctx).
		Model(&BookModel{}).
		Distinct("category").
		Order("category").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询分类列表失败")
	}

	return categories, nil
}

// =========================================
// 辅助函数:模型转换
// =========================================

// toBookModel 领域实体 → GORM模型
// ISBN空串映射为NULL,保证唯一索引允许多本无ISBN的图书共存
func toBookModel(b *book.Book) *BookModel {
	var isbn *string
	if b.ISBN != "" {
		v := b.ISBN
		isbn = &v
	}
	return &BookModel{
		Title:         b.Title,
		Author:        b.Author,
		Description:   b.Description,
		Price:         b.Price,
		Category:      b.Category,
		ISBN:          isbn,
		Publisher:     b.Publisher,
		PublishedDate: b.PublishedDate,
		Pages:         b.Pages,
		Language:      b.Language,
		ImageURL:      b.ImageURL,
		Stock:         b.Stock,
		RatingAvg:     b.RatingAvg,
		RatingCount:   b.RatingCount,
		Featured:      b.Featured,
	}
}

// toBookEntity GORM模型 → 领域实体
func toBookEntity(model *BookModel) *book.Book {
	isbn := ""
	if model.ISBN != nil {
		isbn = *model.ISBN
	}
	return &book.Book{
		ID:            model.ID,
		Title:         model.Title,
		Author:        model.Author,
		Description:   model.Description,
		Price:         model.Price,
		Category:      model.Category,
		ISBN:          isbn,
		Publisher:     model.Publisher,
		PublishedDate: model.PublishedDate,
		Pages:         model.Pages,
		Language:      model.Language,
		ImageURL:      model.ImageURL,
		Stock:         model.Stock,
		RatingAvg:     model.RatingAvg,
		RatingCount:   model.RatingCount,
		Featured:      model.Featured,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}
}
