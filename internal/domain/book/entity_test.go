package book

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewBook 测试图书工厂方法的默认值补齐
func TestNewBook(t *testing.T) {
	b := NewBook("Go程序设计", "张三", "一本讲Go的书", 1999, "Technology")

	assert.Equal(t, DefaultLanguage, b.Language)
	assert.Equal(t, DefaultImageURL, b.ImageURL)
	assert.Equal(t, 0, b.Stock)
	assert.False(t, b.Featured)
	assert.NoError(t, b.Validate())
}

// TestValidate 测试图书不变量校验
func TestValidate(t *testing.T) {
	valid := func() *Book {
		return NewBook("Go程序设计", "张三", "一本讲Go的书", 1999, "Technology")
	}

	t.Run("缺必填字段", func(t *testing.T) {
		b := valid()
		b.Author = ""
		assert.ErrorIs(t, b.Validate(), ErrMissingRequired)
	})

	t.Run("价格为负", func(t *testing.T) {
		b := valid()
		b.Price = -1
		assert.ErrorIs(t, b.Validate(), ErrInvalidPrice)
	})

	t.Run("价格为0合法", func(t *testing.T) {
		b := valid()
		b.Price = 0
		assert.NoError(t, b.Validate())
	})

	t.Run("库存为负", func(t *testing.T) {
		b := valid()
		b.Stock = -1
		assert.ErrorIs(t, b.Validate(), ErrInvalidStock)
	})

	t.Run("分类不在枚举内", func(t *testing.T) {
		b := valid()
		b.Category = "Cooking"
		assert.ErrorIs(t, b.Validate(), ErrInvalidCategory)
	})
}

// TestIsValidCategory 测试分类枚举
func TestIsValidCategory(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, IsValidCategory(c), c)
	}
	assert.False(t, IsValidCategory("fiction"), "分类区分大小写")
	assert.False(t, IsValidCategory(""))
}

// TestApply 测试部分更新语义
func TestApply(t *testing.T) {
	newBook := func() *Book {
		b := NewBook("Go程序设计", "张三", "一本讲Go的书", 1999, "Technology")
		b.Stock = 10
		return b
	}

	t.Run("空值字段保持不变", func(t *testing.T) {
		b := newBook()
		require.NoError(t, b.Apply(UpdateParams{Title: "Go高级编程"}))

		assert.Equal(t, "Go高级编程", b.Title)
		assert.Equal(t, "张三", b.Author, "未传的字段不变")
		assert.Equal(t, int64(1999), b.Price)
		assert.Equal(t, 10, b.Stock)
	})

	t.Run("指针字段区分未传与零值", func(t *testing.T) {
		b := newBook()
		zero := 0
		price := int64(0)
		featured := true
		require.NoError(t, b.Apply(UpdateParams{Stock: &zero, Price: &price, Featured: &featured}))

		assert.Equal(t, 0, b.Stock, "传了指针零值应生效")
		assert.Equal(t, int64(0), b.Price)
		assert.True(t, b.Featured)
	})

	t.Run("出版日期更新", func(t *testing.T) {
		b := newBook()
		d := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
		require.NoError(t, b.Apply(UpdateParams{PublishedDate: &d}))
		require.NotNil(t, b.PublishedDate)
		assert.True(t, b.PublishedDate.Equal(d))
	})

	t.Run("非法更新不落到实体上", func(t *testing.T) {
		b := newBook()
		bad := int64(-1)
		err := b.Apply(UpdateParams{Price: &bad, Title: "不该生效的书名"})

		assert.ErrorIs(t, err, ErrInvalidPrice)
		assert.Equal(t, "Go程序设计", b.Title, "整个更新应该原子地被丢弃")
		assert.Equal(t, int64(1999), b.Price)
	})

	t.Run("非法分类被拒绝", func(t *testing.T) {
		b := newBook()
		err := b.Apply(UpdateParams{Category: "Cooking"})
		assert.ErrorIs(t, err, ErrInvalidCategory)
		assert.Equal(t, "Technology", b.Category)
	})
}
