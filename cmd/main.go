package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"wht-deposit-api/internal/config"
	"wht-deposit-api/internal/dal"
	"wht-deposit-api/internal/handler"
	"wht-deposit-api/internal/idgen"
	"wht-deposit-api/internal/logger"
	"wht-deposit-api/internal/middleware"
	"wht-deposit-api/internal/mq"
	"wht-deposit-api/internal/shard"
)

func main() {
	// load config env
	config.Init()

	// init infra
	dal.InitMainDB()
	dal.InitRedis()
	dal.InitRabbitMQ()

	logger.InitLogger()
	shard.InitShardEngines()
	idgen.InitFromEnv()

	// start consumers
	go mq.StartConsumers()

	// http server
	if config.C.Server.Mode != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	// 设置可信代理 IP（如本地或内网）
	r.SetTrustedProxies([]string{"127.0.0.1", "192.168.0.0/16"})
	r.Use(middleware.Recover())
	r.Use(middleware.RequestLogger())

	v1 := r.Group("/api/v1")
	{
		dh := handler.NewDepositHandler()
		v1.POST("/deposits", middleware.AuthHMAC(), dh.Create)
		v1.GET("/deposits/:orderNo", dh.Get)
		v1.POST("/deposits/:orderNo/cancel", middleware.AuthHMAC(), dh.Cancel)

		// 观察器 / 调度器内部接口
		wh := handler.NewWebhookHandler()
		internal := v1.Group("/internal", middleware.InternalAuth())
		{
			internal.POST("/deposits/webhook", wh.HandleDeposit)
			internal.POST("/deposits/expire", wh.ExpireDue)
		}

		// 运营后台
		ah := handler.NewAdminHandler()
		lh := handler.NewLimitHandler()
		admin := v1.Group("/admin", middleware.AdminAuth())
		{
			admin.GET("/deposits", ah.ListOrders)
			admin.POST("/deposits/:orderNo/confirm", ah.ManualConfirm)
			admin.POST("/deposits/:orderNo/cancel", ah.CancelOrder)
			admin.GET("/audit-logs", ah.ListAuditLogs)
			admin.GET("/stats", ah.Stats)
			admin.GET("/sweep/pending", ah.SweepPending)
			admin.POST("/sweep/confirm", ah.SweepConfirm)

			admin.GET("/limits", lh.List)
			admin.POST("/limits", lh.Create)
			admin.PUT("/limits/:id", lh.Update)
			admin.DELETE("/limits/:id", lh.Delete)
		}
	}

	addr := ":" + config.C.Server.Port
	log.Printf("listening %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
