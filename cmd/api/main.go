package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

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
	"github.com/xiebiao/bookmart/pkg/metrics"
	"github.com/xiebiao/bookmart/pkg/response"
	"github.com/xiebiao/bookmart/pkg/tracing"
)

// main 主程序入口
// 说明：手动依赖注入,Wire配置见wire.go(运行wire gen可生成等价代码)
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	fmt.Printf("✓ 配置加载成功\n")
	fmt.Printf("  - 服务端口: %d\n", cfg.Server.Port)
	fmt.Printf("  - 运行模式: %s\n", cfg.Server.Mode)
	fmt.Printf("  - 数据库: %s:%d/%s\n", cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
	fmt.Printf("  - Redis: %s\n", cfg.Redis.Addr())

	// 2. 初始化指标
	metrics.InitMetrics()

	// 3. 初始化追踪(可选)
	if cfg.Tracing.Enabled {
		shutdown, err := tracing.InitTracer("bookmart-api", cfg.Tracing.Endpoint)
		if err != nil {
			log.Fatalf("初始化追踪失败: %v", err)
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				log.Printf("关闭追踪失败: %v", err)
			}
		}()
	}

	// 4. 初始化数据库连接
	db, err := mysql.NewDB(cfg)
	if err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}

	// 5. 初始化Redis连接
	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		log.Fatalf("初始化Redis失败: %v", err)
	}

	// 6. 依赖注入（手动组装）
	// 依赖链：Repository ← Service ← UseCase ← Handler

	// 基础设施层
	userRepo := mysql.NewUserRepository(db)
	bookRepo := mysql.NewBookRepository(db)
	orderRepo := mysql.NewOrderRepository(db)
	txManager := mysql.NewTxManager(db)
	sessionStore := redis.NewSessionStore(redisClient)
	catalogCache := redis.NewCatalogCache(redisClient, cfg.Cache.FeaturedTTL, cfg.Cache.CategoriesTTL)
	jwtManager := jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)

	// 目录缓存熔断器:Redis连续失败5次后打开,30秒后半开探测
	cacheBreaker := circuitbreaker.NewCircuitBreaker("catalog-cache", circuitbreaker.Config{
		MaxRequests: 3,
		Interval:    10 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts circuitbreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})
	cacheBreaker.SetStateChangeCallback(func(name string, from, to circuitbreaker.State) {
		log.Printf("熔断器[%s]状态变化: %s -> %s", name, from, to)
		metrics.SetGaugeVec(metrics.CircuitBreakerState, map[string]string{"name": name}, float64(to))
	})

	// 领域层
	userService := user.NewService(userRepo)
	bookService := book.NewService(bookRepo)

	// 应用层
	registerUseCase := appuser.NewRegisterUseCase(userService, jwtManager)
	loginUseCase := appuser.NewLoginUseCase(userService, jwtManager, sessionStore)
	logoutUseCase := appuser.NewLogoutUseCase(sessionStore)
	profileUseCase := appuser.NewProfileUseCase(userService)
	listUsersUseCase := appuser.NewListUsersUseCase(userService)

	listBooksUseCase := appbook.NewListBooksUseCase(bookService)
	featuredBooksUseCase := appbook.NewFeaturedBooksUseCase(bookService, catalogCache, cacheBreaker)
	categoriesUseCase := appbook.NewCategoriesUseCase(bookService, catalogCache, cacheBreaker)
	getBookUseCase := appbook.NewGetBookUseCase(bookService)
	publishBookUseCase := appbook.NewPublishBookUseCase(bookService, catalogCache)
	updateBookUseCase := appbook.NewUpdateBookUseCase(bookService, catalogCache)
	deleteBookUseCase := appbook.NewDeleteBookUseCase(bookService, catalogCache)

	createOrderUseCase := apporder.NewCreateOrderUseCase(orderRepo, bookRepo, txManager)
	getOrderUseCase := apporder.NewGetOrderUseCase(orderRepo)
	listMyOrdersUseCase := apporder.NewListMyOrdersUseCase(orderRepo)
	listOrdersUseCase := apporder.NewListOrdersUseCase(orderRepo)
	updateStatusUseCase := apporder.NewUpdateStatusUseCase(orderRepo)
	payOrderUseCase := apporder.NewPayOrderUseCase(orderRepo)
	cancelOrderUseCase := apporder.NewCancelOrderUseCase(orderRepo)

	// 接口层
	userHandler := handler.NewUserHandler(
		registerUseCase, loginUseCase, logoutUseCase, profileUseCase, listUsersUseCase)
	bookHandler := handler.NewBookHandler(
		listBooksUseCase, featuredBooksUseCase, categoriesUseCase, getBookUseCase,
		publishBookUseCase, updateBookUseCase, deleteBookUseCase)
	orderHandler := handler.NewOrderHandler(
		createOrderUseCase, getOrderUseCase, listMyOrdersUseCase, listOrdersUseCase,
		updateStatusUseCase, payOrderUseCase, cancelOrderUseCase)
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, sessionStore)

	// 7. 初始化Gin引擎
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.Use(middleware.Metrics())
	if cfg.Tracing.Enabled {
		r.Use(middleware.Tracing("bookmart-api"))
	}

	// 8. 注册路由
	registerRoutes(r, userHandler, bookHandler, orderHandler, authMiddleware)

	// 9. 启动服务
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	fmt.Printf("\n🚀 服务启动成功！\n")
	fmt.Printf("   访问地址: http://localhost%s\n", addr)
	fmt.Printf("   健康检查: http://localhost%s/ping\n", addr)
	fmt.Printf("   API文档:  http://localhost%s/swagger/index.html\n", addr)
	fmt.Printf("   指标采集: http://localhost%s/metrics\n", addr)
	fmt.Printf("\n按Ctrl+C停止服务\n\n")

	if err := r.Run(addr); err != nil {
		log.Fatalf("启动服务失败: %v", err)
	}
}

// registerRoutes 注册路由
func registerRoutes(
	r *gin.Engine,
	userHandler *handler.UserHandler,
	bookHandler *handler.BookHandler,
	orderHandler *handler.OrderHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// Prometheus指标端点
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger文档,生产环境建议禁用或加访问控制
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	{
		// 用户模块
		users := v1.Group("/users")
		{
			users.POST("/register", userHandler.Register)
			users.POST("/login", userHandler.Login)
			users.POST("/logout", authMiddleware.RequireAuth(), userHandler.Logout)
			users.GET("/profile", authMiddleware.RequireAuth(), userHandler.GetProfile)
			users.PUT("/profile", authMiddleware.RequireAuth(), userHandler.UpdateProfile)

			// 后台:用户列表
			users.GET("", authMiddleware.RequireAuth(), authMiddleware.RequireAdmin(), userHandler.ListUsers)
		}

		// 图书模块
		books := v1.Group("/books")
		{
			// 公开接口
			books.GET("", bookHandler.ListBooks)
			books.GET("/featured", bookHandler.FeaturedBooks)
			books.GET("/categories", bookHandler.Categories)
			books.GET("/:id", bookHandler.GetBook)

			// 后台:建书/改书/删书
			admin := books.Group("", authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
			{
				admin.POST("", bookHandler.CreateBook)
				admin.PUT("/:id", bookHandler.UpdateBook)
				admin.DELETE("/:id", bookHandler.DeleteBook)
			}
		}

		// 订单模块(全部需要登录)
		orders := v1.Group("/orders")
		orders.Use(authMiddleware.RequireAuth())
		{
			orders.POST("", orderHandler.CreateOrder)
			orders.GET("/myorders", orderHandler.ListMyOrders)
			orders.GET("/:id", orderHandler.GetOrder)
			orders.PUT("/:id/pay", orderHandler.PayOrder)
			orders.PUT("/:id/cancel", orderHandler.CancelOrder)

			// 后台:全部订单+状态更新
			orders.GET("", authMiddleware.RequireAdmin(), orderHandler.ListOrders)
			orders.PUT("/:id/status", authMiddleware.RequireAdmin(), orderHandler.UpdateOrderStatus)
		}
	}
}
