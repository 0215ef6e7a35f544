package book

import (
	"context"
	"errors"
)

// Service 图书领域服务接口
// 设计说明:
// 1. 领域服务封装跨实体的业务规则校验(如ISBN唯一性预检)
// 2. 不依赖具体的Repository实现(依赖倒置)
// 3. 管理员身份校验在接口层中间件完成,领域服务只关心图书本身的规则
type Service interface {
	// CreateBook 创建图书(管理员操作)
	// 业务规则:
	// - 核心不变量校验见Book.Validate
	// - ISBN填写时不能与现有图书重复
	CreateBook(ctx context.Context, b *Book) (*Book, error)

	// GetBook 根据ID获取图书详情
	GetBook(ctx context.Context, id uint) (*Book, error)

	// UpdateBook 部分更新图书(管理员操作)
	UpdateBook(ctx context.Context, id uint, params UpdateParams) (*Book, error)

	// DeleteBook 删除图书(管理员操作,软删除)
	DeleteBook(ctx context.Context, id uint) error

	// Catalog 目录查询(公开接口)
	Catalog(ctx context.Context, query CatalogQuery) ([]*Book, int64, error)

	// FeaturedBooks 精选图书(公开接口,最多limit本)
	FeaturedBooks(ctx context.Context, limit int) ([]*Book, error)

	// Categories 库中实际存在的分类(公开接口)
	Categories(ctx context.Context) ([]string, error)
}

// service 领域服务实现
type service struct {
	repo Repository
}

// NewService 创建图书领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// CreateBook 创建图书
func (s *service) CreateBook(ctx context.Context, b *Book) (*Book, error) {
	// 1. 不变量校验
	if err := b.Validate(); err != nil {
		return nil, err
	}

	// 2. ISBN唯一性预检(最终由数据库唯一索引兜底)
	if b.ISBN != "" {
		existing, err := s.repo.FindByISBN(ctx, b.ISBN)
		if err == nil && existing != nil {
			return nil, ErrISBNDuplicate
		}
		if err != nil && !errors.Is(err, ErrBookNotFound) {
			return nil, err
		}
	}

	// 3. 持久化
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

// GetBook 根据ID获取图书
func (s *service) GetBook(ctx context.Context, id uint) (*Book, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateBook 部分更新图书
func (s *service) UpdateBook(ctx context.Context, id uint, params UpdateParams) (*Book, error) {
	// 1. 查询图书
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 2. 应用部分更新(实体内部重新校验不变量)
	if err := b.Apply(params); err != nil {
		return nil, err
	}

	// 3. 持久化
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

// DeleteBook 删除图书(软删除)
func (s *service) DeleteBook(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// Catalog 目录查询
func (s *service) Catalog(ctx context.Context, query CatalogQuery) ([]*Book, int64, error) {
	return s.repo.List(ctx, query)
}

// FeaturedBooks 精选图书
func (s *service) FeaturedBooks(ctx context.Context, limit int) ([]*Book, error) {
	return s.repo.ListFeatured(ctx, limit)
}

// Categories 实际存在的分类列表
func (s *service) Categories(ctx context.Context) ([]string, error) {
	return s.repo.ListCategories(ctx)
}
