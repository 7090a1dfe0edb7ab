package app

import (
	"database/sql"

	"go-payroll-my/internal/contribution"
	"go-payroll-my/internal/employee"
	"go-payroll-my/internal/epf"
	"go-payroll-my/internal/messaging/kafka"
	"go-payroll-my/internal/payroll"
	"go-payroll-my/internal/pcb"
	"go-payroll-my/internal/relief"
	"go-payroll-my/internal/shared/audit"
	"go-payroll-my/internal/shared/counter"
	"go-payroll-my/internal/socso"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	bandRepo := contribution.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	reliefRepo := relief.NewRepository(gormDB)
	pcbRepo := pcb.NewRepository(gormDB)
	payrollRepo := payroll.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	epfRateRepo := epf.NewRateRepository(gormDB)

	// --- Statutory engines ---
	bandTable := contribution.NewRepoTable(bandRepo)
	epfEngine := epf.NewEngine(bandTable, epf.NewRepoRates(epfRateRepo))
	socsoEngine := socso.NewEngine(bandTable)

	// --- Services ---
	auditLogger := audit.NewStdoutLogger(zap.L())
	reliefService := relief.NewService(reliefRepo)
	payrollService := payroll.NewService(
		db,
		payrollRepo,
		employeeRepo,
		reliefService,
		pcbRepo,
		epfEngine,
		socsoEngine,
		outboxRepo,
		counterRepo,
		auditLogger,
	)

	// --- Handlers ---
	reliefHandler := relief.NewHandler(reliefService)
	payrollHandler := payroll.NewHandlerWithRedis(payrollService, rdb)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		relief.RegisterRoutes(api, reliefHandler)
		payroll.RegisterRoutes(api, payrollHandler, rdb)
	}

	return nil
}
