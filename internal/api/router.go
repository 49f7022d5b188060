package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/echart-dentnu/echart-api/internal/api/handler"
	apimw "github.com/echart-dentnu/echart-api/internal/api/middleware"
	"github.com/echart-dentnu/echart-api/internal/core/domain"
	"github.com/echart-dentnu/echart-api/internal/core/service"
	"github.com/echart-dentnu/echart-api/internal/infrastructure/auth"
	"github.com/echart-dentnu/echart-api/internal/infrastructure/config"
	mongodb "github.com/echart-dentnu/echart-api/internal/infrastructure/db/mongo"
	redisdb "github.com/echart-dentnu/echart-api/internal/infrastructure/db/redis"
)

// NewRouter builds the Echo instance with all routes, middleware and
// dependencies wired.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *goredis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(echomw.Logger())
	e.Use(echoprometheus.NewMiddleware("echart"))
	e.Use(corsMiddleware(cfg))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	patientRepo := mongodb.NewPatientRepository(db)
	clinicRepo := mongodb.NewClinicRepository(db)
	icd10Repo := mongodb.NewICD10Repository(db)
	screeningRepo := mongodb.NewScreeningRepository(db)

	hasher := auth.NewHasher(cfg.Auth.HashScheme)
	issuer := auth.NewTokenIssuer(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Audience, cfg.JWT.ExpireMinutes)

	authSvc := service.NewAuthService(userRepo, hasher, issuer, log)
	staffSvc := service.NewStaffService(userRepo, hasher, log)
	patientSvc := service.NewPatientService(patientRepo, log)
	clinicSvc := service.NewClinicService(clinicRepo)
	icd10Svc := service.NewICD10Service(icd10Repo)
	screeningSvc := service.NewScreeningService(screeningRepo, log)

	authHandler := handler.NewAuthHandler(authSvc)
	staffHandler := handler.NewStaffHandler(staffSvc)
	patientHandler := handler.NewPatientHandler(patientSvc)
	clinicHandler := handler.NewClinicHandler(clinicSvc)
	icd10Handler := handler.NewICD10Handler(icd10Svc)
	screeningHandler := handler.NewScreeningHandler(screeningSvc)

	requireAuth := apimw.Auth(issuer)
	window := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
	readLimiter := apimw.RateLimit(apimw.PolicyRead, limiterStore(rdb, apimw.PolicyRead, cfg.RateLimit.ReadLimit, window))
	writeLimiter := apimw.RateLimit(apimw.PolicyWrite, limiterStore(rdb, apimw.PolicyWrite, cfg.RateLimit.WriteLimit, window))
	loginLimiter := apimw.RateLimit(apimw.PolicyLogin, limiterStore(rdb, apimw.PolicyLogin, cfg.RateLimit.LoginLimit, window))

	// --- Auth ---
	authGroup := e.Group("/api/auth")
	authGroup.POST("/login", authHandler.Login, loginLimiter)
	authGroup.POST("/logout", authHandler.Logout, requireAuth)

	// --- Staff users (Administrator only) ---
	staff := e.Group("/api/tbdentalrecorduser", requireAuth, apimw.RBAC(domain.RoleAdministrator))
	staff.POST("", staffHandler.Create, writeLimiter)
	staff.GET("", staffHandler.List, readLimiter)
	staff.GET("/:userId", staffHandler.Get, readLimiter)
	staff.PATCH("/:userId", staffHandler.Patch, writeLimiter)
	staff.DELETE("/:userId", staffHandler.Delete, writeLimiter)

	// --- Clinics (any authenticated role) ---
	e.GET("/api/tbclinic", clinicHandler.List, requireAuth, readLimiter)

	// --- ICD-10-TM codes ---
	e.GET("/api/tbicd10tm", icd10Handler.List, requireAuth,
		apimw.RBAC(domain.RoleAdministrator, domain.RoleTeacher, domain.RoleBachelor, domain.RoleMaster),
		readLimiter)

	// --- Patients (medical records staff) ---
	patients := e.Group("/api/tpatient", requireAuth)
	recordsRBAC := apimw.RBAC(domain.RoleAdministrator, domain.RoleMedicalRecord)
	patients.POST("", patientHandler.Create, recordsRBAC, writeLimiter)
	patients.GET("", patientHandler.List, recordsRBAC, readLimiter)
	patients.GET("/:dn", patientHandler.Get, recordsRBAC, readLimiter)
	patients.PATCH("/:dn", patientHandler.Patch, recordsRBAC, writeLimiter)
	patients.DELETE("/:dn", patientHandler.Delete, apimw.RBAC(domain.RoleAdministrator), writeLimiter)

	// --- Screening records ---
	screenings := e.Group("/api/screeningrecord", requireAuth, recordsRBAC)
	screenings.POST("", screeningHandler.Create, writeLimiter)
	screenings.GET("/:dn", screeningHandler.ListByDN, readLimiter)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}

// limiterStore picks the Redis fixed-window store when Redis is available
// and falls back to the in-process store otherwise.
func limiterStore(rdb *goredis.Client, policy string, limit int, window time.Duration) echomw.RateLimiterStore {
	if rdb != nil {
		return redisdb.NewFixedWindowStore(rdb, policy, limit, window)
	}
	return apimw.NewMemoryFixedWindowStore(limit, window)
}

// corsMiddleware echoes configured origins back; with no allow-list it
// admits any origin, acceptable in development only.
func corsMiddleware(cfg *config.Config) echo.MiddlewareFunc {
	if len(cfg.CORSOrigins) == 0 {
		return echomw.CORS()
	}
	return echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowCredentials: true,
	})
}
