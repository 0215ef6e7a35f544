package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/bookmart/internal/application/book"
	"github.com/xiebiao/bookmart/internal/domain/book"
	"github.com/xiebiao/bookmart/internal/interface/http/dto"
	apperrors "github.com/xiebiao/bookmart/pkg/errors"
	"github.com/xiebiao/bookmart/pkg/response"
)

// BookHandler 图书HTTP处理器
// 公开接口:目录查询/精选/分类/详情;管理接口:建书/改书/删书
type BookHandler struct {
	listBooksUseCase     *appbook.ListBooksUseCase
	featuredBooksUseCase *appbook.FeaturedBooksUseCase
	categoriesUseCase    *appbook.CategoriesUseCase
	getBookUseCase       *appbook.GetBookUseCase
	publishBookUseCase   *appbook.PublishBookUseCase
	updateBookUseCase    *appbook.UpdateBookUseCase
	deleteBookUseCase    *appbook.DeleteBookUseCase
}

// NewBookHandler 创建图书处理器
func NewBookHandler(
	listBooksUseCase *appbook.ListBooksUseCase,
	featuredBooksUseCase *appbook.FeaturedBooksUseCase,
	categoriesUseCase *appbook.CategoriesUseCase,
	getBookUseCase *appbook.GetBookUseCase,
	publishBookUseCase *appbook.PublishBookUseCase,
	updateBookUseCase *appbook.UpdateBookUseCase,
	deleteBookUseCase *appbook.DeleteBookUseCase,
) *BookHandler {
	return &BookHandler{
		listBooksUseCase:     listBooksUseCase,
		featuredBooksUseCase: featuredBooksUseCase,
		categoriesUseCase:    categoriesUseCase,
		getBookUseCase:       getBookUseCase,
		publishBookUseCase:   publishBookUseCase,
		updateBookUseCase:    updateBookUseCase,
		deleteBookUseCase:    deleteBookUseCase,
	}
}

// ListBooks 目录查询
// @Summary      图书目录查询
// @Description  全文搜索+分类+价格区间组合过滤,分页信封返回
// @Tags         图书
// @Produce      json
// @Param        search query string false "搜索关键词(标题/作者/描述)"
// @Param        category query string false "分类精确匹配"
// @Param        min_price query int false "价格下界(分)"
// @Param        max_price query int false "价格上界(分)"
// @Param        page query int false "页码,默认1"
// @Param        limit query int false "每页数量,默认12"
// @Success      200 {object} response.Response{data=appbook.ListBooksResponse}
// @Router       /api/v1/books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	var q dto.CatalogRequest
	if err := c.ShouldBindQuery(&q); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.listBooksUseCase.Execute(c.Request.Context(), appbook.ListBooksRequest{
		Search:   q.Search,
		Category: q.Category,
		MinPrice: q.MinPrice,
		MaxPrice: q.MaxPrice,
		Page:     q.Page,
		Limit:    q.Limit,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// FeaturedBooks 精选图书
// @Summary      精选图书
// @Description  首页推荐位,最多6本,带Redis缓存
// @Tags         图书
// @Produce      json
// @Success      200 {object} response.Response{data=appbook.FeaturedBooksResponse}
// @Router       /api/v1/books/featured [get]
func (h *BookHandler) FeaturedBooks(c *gin.Context) {
	result, err := h.featuredBooksUseCase.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Categories 分类列表
// @Summary      分类列表
// @Description  返回库中实际存在的分类(非静态枚举)
// @Tags         图书
// @Produce      json
// @Success      200 {object} response.Response{data=appbook.CategoriesResponse}
// @Router       /api/v1/books/categories [get]
func (h *BookHandler) Categories(c *gin.Context) {
	result, err := h.categoriesUseCase.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetBook 图书详情
// @Summary      图书详情
// @Tags         图书
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} response.Response{data=appbook.BookView}
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{id} [get]
func (h *BookHandler) GetBook(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	result, err := h.getBookUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// CreateBook 建书(管理员)
// @Summary      新建图书
// @Tags         后台
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateBookRequest true "图书信息"
// @Success      200 {object} response.Response{data=appbook.BookView}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      403 {object} response.Response "需要管理员权限"
// @Failure      409 {object} response.Response "ISBN已存在"
// @Router       /api/v1/books [post]
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req dto.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	publishedDate, ok := parseDate(c, req.PublishedDate)
	if !ok {
		return
	}

	result, err := h.publishBookUseCase.Execute(c.Request.Context(), appbook.PublishBookRequest{
		Title:         req.Title,
		Author:        req.Author,
		Description:   req.Description,
		Price:         req.Price,
		Category:      req.Category,
		ISBN:          req.ISBN,
		Publisher:     req.Publisher,
		PublishedDate: publishedDate,
		Pages:         req.Pages,
		Language:      req.Language,
		ImageURL:      req.ImageURL,
		Stock:         req.Stock,
		Featured:      req.Featured,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// UpdateBook 改书(管理员,部分更新)
// @Summary      更新图书
// @Tags         后台
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "图书ID"
// @Param        request body dto.UpdateBookRequest true "更新字段"
// @Success      200 {object} response.Response{data=appbook.BookView}
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{id} [put]
func (h *BookHandler) UpdateBook(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	publishedDate, dateOK := parseDate(c, req.PublishedDate)
	if !dateOK {
		return
	}

	result, err := h.updateBookUseCase.Execute(c.Request.Context(), id, book.UpdateParams{
		Title:         req.Title,
		Author:        req.Author,
		Description:   req.Description,
		Category:      req.Category,
		ISBN:          req.ISBN,
		Publisher:     req.Publisher,
		PublishedDate: publishedDate,
		Language:      req.Language,
		ImageURL:      req.ImageURL,
		Price:         req.Price,
		Pages:         req.Pages,
		Stock:         req.Stock,
		Featured:      req.Featured,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// DeleteBook 删书(管理员,软删除)
// @Summary      删除图书
// @Tags         后台
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "图书ID"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{id} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.deleteBookUseCase.Execute(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

// parseIDParam 解析路径中的:id参数,非法时直接写响应并返回false
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "ID参数非法")
		return 0, false
	}
	return uint(id), true
}

// parseDate 解析2006-01-02格式的日期,空串返回nil
func parseDate(c *gin.Context, s string) (*time.Time, bool) {
	if s == "" {
		return nil, true
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "日期格式应为YYYY-MM-DD")
		return nil, false
	}
	return &t, true
}
