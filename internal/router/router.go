package router

import (
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"presensi/backend/foundation/web"
	"presensi/backend/internal/auth"
	"presensi/backend/internal/middleware"
	"presensi/backend/internal/pkg/cache"
	"presensi/backend/internal/pkg/config"
	"presensi/backend/internal/pkg/repository/postgresql"
	"presensi/backend/internal/repository/postgres/book"
	"presensi/backend/internal/repository/postgres/presensi"
	"presensi/backend/internal/repository/postgres/report"
	"presensi/backend/internal/repository/postgres/user"

	auth_controller "presensi/backend/internal/controller/http/v1/auth"
	book_controller "presensi/backend/internal/controller/http/v1/book"
	"presensi/backend/internal/controller/http/v1/file"
	presensi_controller "presensi/backend/internal/controller/http/v1/presensi"
	report_controller "presensi/backend/internal/controller/http/v1/report"
)

const reportCacheTTL = 30 * time.Second

type Router struct {
	*web.App
	postgresDB *postgresql.Database
	redisDB    *redis.Client
	auth       *auth.Auth
	cfg        *config.Config
	log        zerolog.Logger
}

func NewRouter(
	app *web.App,
	postgresDB *postgresql.Database,
	redisDB *redis.Client,
	auth *auth.Auth,
	cfg *config.Config,
	log zerolog.Logger,
) *Router {
	return &Router{
		app,
		postgresDB,
		redisDB,
		auth,
		cfg,
		log,
	}
}

func (r Router) Init() error {

	r.HandleMethodNotAllowed = true
	r.Use(middleware.RequestLogger(r.log))
	r.Use(middleware.CorsMiddleware(r.cfg.AllowedOrigins))

	// - postgresql
	userPostgres := user.NewRepository(r.postgresDB)
	presensiPostgres := presensi.NewRepository(r.postgresDB)
	reportPostgres := report.NewRepository(r.postgresDB)
	bookPostgres := book.NewRepository(r.postgresDB)

	reportCache := cache.New(r.redisDB, reportCacheTTL)

	// controller
	authController := auth_controller.NewController(userPostgres, r.auth)
	presensiController := presensi_controller.NewController(
		presensiPostgres,
		r.cfg.RequireLocation,
		r.cfg.RequireEvidence,
		r.cfg.MediaBasePath,
		r.cfg.BaseUrl,
	)
	reportController := report_controller.NewController(reportPostgres, reportCache)
	bookController := book_controller.NewController(bookPostgres)

	fileC := file.NewController(r.cfg.MediaBasePath)

	// #auth
	r.Post("/api/v1/sign-in", authController.SignIn)
	r.Post("/api/v1/refresh-token", authController.RefreshToken)

	r.GET("/media/*filepath", fileC.File)
	r.HEAD("/media/*filepath", fileC.File)

	// #presensi
	r.Post("/api/v1/presensi/check-in", presensiController.CheckIn, middleware.Authenticate(r.auth))
	r.Post("/api/v1/presensi/check-out", presensiController.CheckOut, middleware.Authenticate(r.auth))
	r.Put("/api/v1/presensi/:id", presensiController.Update, middleware.Authenticate(r.auth))
	r.Delete("/api/v1/presensi/:id", presensiController.Delete, middleware.Authenticate(r.auth))
	r.Get("/api/v1/presensi/:id/qrcode", presensiController.GetQRCode, middleware.Authenticate(r.auth))

	// #report
	r.Get("/api/v1/report/daily", reportController.GetDaily, middleware.Authenticate(r.auth))
	r.Get("/api/v1/report/daily/export", reportController.Export, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/api/v1/report/daily/export_pdf", reportController.ExportPDF, middleware.Authenticate(r.auth, auth.RoleAdmin))

	// #book
	r.Get("/api/v1/book/list", bookController.GetList, middleware.Authenticate(r.auth))
	r.Get("/api/v1/book/:id", bookController.GetDetailById, middleware.Authenticate(r.auth))
	r.Post("/api/v1/book/create", bookController.Create, middleware.Authenticate(r.auth))
	r.Put("/api/v1/book/:id", bookController.UpdateAll, middleware.Authenticate(r.auth))
	r.Delete("/api/v1/book/:id", bookController.Delete, middleware.Authenticate(r.auth))

	return r.Run(r.cfg.HTTPPort)
}
