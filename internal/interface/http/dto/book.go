package dto

// CreateBookRequest HTTP建书请求(管理员)
// 价格单位为分;published_date格式为2006-01-02
type CreateBookRequest struct {
	Title         string `json:"title" binding:"required,max=200" example:"The Go Programming Language"`
	Author        string `json:"author" binding:"required,max=100" example:"Alan Donovan"`
	Description   string `json:"description" binding:"required,max=5000"`
	Price         int64  `json:"price" binding:"min=0" example:"3599"`
	Category      string `json:"category" binding:"required" example:"Technology"`
	ISBN          string `json:"isbn" binding:"omitempty,max=20" example:"9780134190440"`
	Publisher     string `json:"publisher" binding:"omitempty,max=100"`
	PublishedDate string `json:"published_date" binding:"omitempty" example:"2015-11-16"`
	Pages         int    `json:"pages" binding:"omitempty,min=1"`
	Language      string `json:"language" binding:"omitempty,max=50"`
	ImageURL      string `json:"image_url" binding:"omitempty,url,max=500"`
	Stock         int    `json:"stock" binding:"min=0" example:"100"`
	Featured      bool   `json:"featured"`
}

// UpdateBookRequest HTTP改书请求(管理员,部分更新)
// 字符串空值表示保持不变,数值/布尔用指针区分"未传"与"传了零值"
type UpdateBookRequest struct {
	Title         string `json:"title" binding:"omitempty,max=200"`
	Author        string `json:"author" binding:"omitempty,max=100"`
	Description   string `json:"description" binding:"omitempty,max=5000"`
	Category      string `json:"category" binding:"omitempty"`
	ISBN          string `json:"isbn" binding:"omitempty,max=20"`
	Publisher     string `json:"publisher" binding:"omitempty,max=100"`
	PublishedDate string `json:"published_date" binding:"omitempty"`
	Language      string `json:"language" binding:"omitempty,max=50"`
	ImageURL      string `json:"image_url" binding:"omitempty,url,max=500"`
	Price         *int64 `json:"price" binding:"omitempty,min=0"`
	Pages         *int   `json:"pages" binding:"omitempty,min=1"`
	Stock         *int   `json:"stock" binding:"omitempty,min=0"`
	Featured      *bool  `json:"featured"`
}

// CatalogRequest HTTP目录查询参数
// 所有条件可选,组合为AND关系;价格单位为分,0表示该侧不限
type CatalogRequest struct {
	Search   string `form:"search" binding:"omitempty,max=200" example:"golang"`
	Category string `form:"category" binding:"omitempty" example:"Technology"`
	MinPrice int64  `form:"min_price" binding:"omitempty,min=0"`
	MaxPrice int64  `form:"max_price" binding:"omitempty,min=0"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	Limit    int    `form:"limit" binding:"omitempty,min=1,max=100"`
}
