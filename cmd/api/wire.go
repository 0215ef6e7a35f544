//go:build wireinject
// +build wireinject

// Wire依赖注入配置文件
//
// 说明：
// Wire在编译期生成依赖组装代码。运行 `wire gen ./cmd/api` 生成wire_gen.go,
// main.go当前手动组装依赖,二者等价,本文件用于校验依赖图完整性。
//
// 核心概念：
// - Provider: 提供依赖的构造函数（如NewUserRepository）
// - Injector: 声明最终要构造的目标类型（如*gin.Engine）
// - wire.Build(): 告诉Wire如何组装依赖链

package main

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	goredis "github.com/redis/go-redis/v9"

	appbook "github.com/xiebiao/bookmart/internal/application/book"
	apporder "github.com/xiebiao/bookmart/internal/application/order"
	appuser "github.com/xiebiao/bookmart/internal/application/user"
	"github.com/xiebiao/bookmart/internal/domain/book"
	"github.com/xiebiao/bookmart/internal/domain/user"
	"github.com/xiebiao/bookmart/internal/infrastructure/config"
	"github.com/xiebiao/bookmart/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/bookmart/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookmart/internal/interface/http/handler"
	"github.com/xiebiao/bookmart/internal/interface/http/middleware"
	"github.com/xiebiao/bookmart/pkg/circuitbreaker"
	"github.com/xiebiao/bookmart/pkg/jwt"
)

// infrastructureSet 基础设施层依赖
var infrastructureSet = wire.NewSet(
	config.Load,     // 加载配置文件
	mysql.NewDB,     // 创建MySQL连接
	redis.NewClient, // 创建Redis连接
)

// repositorySet 仓储层依赖
var repositorySet = wire.NewSet(
	mysql.NewUserRepository,  // 用户仓储
	mysql.NewBookRepository,  // 图书仓储
	mysql.NewOrderRepository, // 订单仓储
	mysql.NewTxManager,       // 事务管理器
	wire.Bind(new(apporder.Transactor), new(*mysql.TxManager)),
)

// domainSet 领域层依赖
var domainSet = wire.NewSet(
	user.NewService, // 用户领域服务
	book.NewService, // 图书领域服务
)

// applicationSet 应用层依赖
var applicationSet = wire.NewSet(
	appuser.NewRegisterUseCase,
	appuser.NewLoginUseCase,
	appuser.NewLogoutUseCase,
	appuser.NewProfileUseCase,
	appuser.NewListUsersUseCase,

	appbook.NewListBooksUseCase,
	appbook.NewFeaturedBooksUseCase,
	appbook.NewCategoriesUseCase,
	appbook.NewGetBookUseCase,
	appbook.NewPublishBookUseCase,
	appbook.NewUpdateBookUseCase,
	appbook.NewDeleteBookUseCase,

	apporder.NewCreateOrderUseCase,
	apporder.NewGetOrderUseCase,
	apporder.NewListMyOrdersUseCase,
	apporder.NewListOrdersUseCase,
	apporder.NewUpdateStatusUseCase,
	apporder.NewPayOrderUseCase,
	apporder.NewCancelOrderUseCase,
)

// middlewareSet 中间件依赖
var middlewareSet = wire.NewSet(
	provideJWTManager,            // JWT管理器（从config提取参数）
	provideSessionStore,          // Session存储
	provideCatalogCache,          // 目录缓存
	provideCacheBreaker,          // 缓存熔断器
	middleware.NewAuthMiddleware, // 认证中间件
)

// handlerSet HTTP处理器依赖
var handlerSet = wire.NewSet(
	handler.NewUserHandler,
	handler.NewBookHandler,
	handler.NewOrderHandler,
)

// provideJWTManager 从配置创建JWT管理器
// Wire无法自动从Config提取字段参数，所以需要手动编写Provider
func provideJWTManager(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)
}

// provideSessionStore 从Redis客户端创建Session存储
func provideSessionStore(client *goredis.Client) *redis.SessionStore {
	return redis.NewSessionStore(client)
}

// provideCatalogCache 从Redis客户端和配置创建目录缓存
func provideCatalogCache(client *goredis.Client, cfg *config.Config) appbook.CatalogCache {
	return redis.NewCatalogCache(client, cfg.Cache.FeaturedTTL, cfg.Cache.CategoriesTTL)
}

// provideCacheBreaker 创建目录缓存熔断器
// 参数与main.go中保持一致：连续失败5次打开，30秒后半开探测
func provideCacheBreaker() *circuitbreaker.CircuitBreaker {
	return circuitbreaker.NewCircuitBreaker("catalog-cache", circuitbreaker.Config{
		MaxRequests: 3,
		Interval:    10 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts circuitbreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})
}

// provideGinEngine 创建并配置Gin引擎
// 路由注册复用main.go中的registerRoutes，避免两处路由表漂移
func provideGinEngine(
	cfg *config.Config,
	userHandler *handler.UserHandler,
	bookHandler *handler.BookHandler,
	orderHandler *handler.OrderHandler,
	authMiddleware *middleware.AuthMiddleware,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.Metrics())
	if cfg.Tracing.Enabled {
		r.Use(middleware.Tracing("bookmart-api"))
	}

	registerRoutes(r, userHandler, bookHandler, orderHandler, authMiddleware)

	return r
}

// InitializeApp 初始化整个应用
// Wire会按依赖链的正确顺序调用所有构造函数
func InitializeApp() (*gin.Engine, error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		middlewareSet,
		handlerSet,
		provideGinEngine,
	)

	// 占位返回值，实际代码由wire_gen.go生成
	return nil, nil
}
