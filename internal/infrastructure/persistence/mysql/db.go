package mysql

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/bookmart/internal/infrastructure/config"
)

// NewDB 创建数据库连接
// 设计说明：
// 1. 使用GORM v2作为ORM框架
// 2. 配置连接池参数（MaxOpenConns、MaxIdleConns、ConnMaxLifetime）
// 3. 开发环境开启SQL日志，生产环境关闭
// 4. 自动迁移表结构（AutoMigrate）
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	// 1. 构建DSN连接字符串
	dsn := cfg.Database.DSN()

	// 2. 配置GORM日志
	logLevel := logger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info // 开发环境打印SQL
	}

	// 3. 连接数据库
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	// 4. 配置连接池
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// 5. 测试连接
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	log.Println("✓ 数据库连接成功")

	// 6. 自动迁移表结构（开发环境）
	// 注意：生产环境应使用专门的迁移工具（如golang-migrate）
	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	return db, nil
}

// autoMigrate 自动迁移表结构
// 说明：AutoMigrate只会创建表、添加字段/索引，不会删除或修改现有字段
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&UserModel{},
		&BookModel{},
		&OrderModel{},
		&OrderItemModel{},
	)
}

// UserModel GORM用户模型
// 设计说明：
// 1. 这是infrastructure层的数据模型，包含GORM tag
// 2. domain/user/entity.go是领域实体，不依赖GORM
// 3. Repository负责两者之间的转换
type UserModel struct {
	ID        uint           `gorm:"primaryKey"`
	Email     string         `gorm:"uniqueIndex;size:100;not null;comment:邮箱"`
	Password  string         `gorm:"size:255;not null;comment:密码（bcrypt加密）"`
	Nickname  string         `gorm:"size:50;not null;comment:昵称"`
	IsAdmin   bool           `gorm:"default:false;comment:是否管理员"`
	Phone     string         `gorm:"size:30;comment:常用联系电话"`
	Address   string         `gorm:"size:500;comment:常用收货地址"`
	CreatedAt time.Time      `gorm:"comment:创建时间"`
	UpdatedAt time.Time      `gorm:"comment:更新时间"`
	DeletedAt gorm.DeletedAt `gorm:"index;comment:删除时间（软删除）"`
}

// TableName 指定表名
func (UserModel) TableName() string {
	return "users"
}

// BookModel GORM图书模型
// 设计说明:
//  1. 价格使用int64存储"分"为单位(避免浮点数精度问题)
//  2. Title/Author/Description上建FULLTEXT复合索引,目录搜索走MATCH...AGAINST
//     (分词、相关性排序由存储引擎负责,不是LIKE子串匹配)
//  3. ISBN可空,填写时唯一(MySQL唯一索引允许多个NULL)
//  4. Featured/Category/CreatedAt加普通索引优化列表查询
type BookModel struct {
	ID            uint           `gorm:"primaryKey"`
	Title         string         `gorm:"index:idx_books_fulltext,class:FULLTEXT;size:200;not null;comment:书名"`
	Author        string         `gorm:"index:idx_books_fulltext,class:FULLTEXT;size:100;not null;comment:作者"`
	Description   string         `gorm:"index:idx_books_fulltext,class:FULLTEXT;type:text;comment:图书描述"`
	Price         int64          `gorm:"index;not null;comment:价格(分)"`
	Category      string         `gorm:"index;size:50;not null;comment:分类"`
	ISBN          *string        `gorm:"uniqueIndex;size:20;comment:ISBN号(可选)"`
	Publisher     string         `gorm:"size:100;comment:出版社"`
	PublishedDate *time.Time     `gorm:"comment:出版日期"`
	Pages         int            `gorm:"comment:页数"`
	Language      string         `gorm:"size:50;default:English;comment:语言"`
	ImageURL      string         `gorm:"size:500;comment:封面图片URL"`
	Stock         int            `gorm:"default:0;comment:库存数量"`
	RatingAvg     float64        `gorm:"default:0;comment:平均评分(0-5)"`
	RatingCount   int            `gorm:"default:0;comment:评分人数"`
	Featured      bool           `gorm:"index;default:false;comment:是否精选"`
	CreatedAt     time.Time      `gorm:"index;comment:创建时间"` // 目录默认按创建时间降序
	UpdatedAt     time.Time      `gorm:"comment:更新时间"`
	DeletedAt     gorm.DeletedAt `gorm:"index;comment:删除时间(软删除)"`
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books"
}

// OrderModel GORM订单模型
// 设计说明:
// 1. 与OrderItemModel是一对多关系
// 2. OrderNo有唯一索引(业务主键)
// 3. 收货地址内嵌为列(一个订单一个地址,无需单独建表)
// 4. 四项金额创建时算定后冗余存储,不再重导
type OrderModel struct {
	ID            uint             `gorm:"primaryKey"`
	OrderNo       string           `gorm:"uniqueIndex;size:32;not null;comment:订单号"`
	UserID        uint             `gorm:"index;not null;comment:买家用户ID"`
	Street        string           `gorm:"size:200;not null;comment:街道"`
	City          string           `gorm:"size:100;not null;comment:城市"`
	State         string           `gorm:"size:100;not null;comment:州/省"`
	ZipCode       string           `gorm:"size:20;not null;comment:邮编"`
	Country       string           `gorm:"size:100;not null;comment:国家"`
	Phone         string           `gorm:"size:30;not null;comment:联系电话"`
	PaymentMethod string           `gorm:"size:50;not null;default:Cash on Delivery;comment:支付方式"`
	PaymentStatus int              `gorm:"type:tinyint;default:1;comment:支付状态(1待支付2已支付3失败)"`
	ItemsPrice    int64            `gorm:"not null;default:0;comment:商品小计(分)"`
	TaxPrice      int64            `gorm:"not null;default:0;comment:税费(分)"`
	ShippingPrice int64            `gorm:"not null;default:0;comment:运费(分)"`
	TotalPrice    int64            `gorm:"not null;default:0;comment:总价(分)"`
	Status        int              `gorm:"index;type:tinyint;default:1;comment:订单状态(1处理中2已确认3已发货4已送达5已取消)"`
	DeliveredAt   *time.Time       `gorm:"comment:送达时间(仅Delivered时写入)"`
	Items         []OrderItemModel `gorm:"foreignKey:OrderID"` // 一对多关联
	CreatedAt     time.Time        `gorm:"index;comment:创建时间"`
	UpdatedAt     time.Time        `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel GORM订单明细模型
// 设计说明:Title/Price/ImageURL是下单时的快照,图书改价、删除不影响历史订单
type OrderItemModel struct {
	ID       uint   `gorm:"primaryKey"`
	OrderID  uint   `gorm:"index;not null;comment:订单ID"`
	BookID   uint   `gorm:"index;not null;comment:图书ID"`
	Title    string `gorm:"size:200;not null;comment:下单时书名快照"`
	Quantity int    `gorm:"not null;comment:购买数量"`
	Price    int64  `gorm:"not null;comment:下单时单价(分)"`
	ImageURL string `gorm:"size:500;comment:下单时封面快照"`
}

// TableName 指定表名
func (OrderItemModel) TableName() string {
	return "order_items"
}
