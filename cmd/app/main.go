package main

import (
	"context"
	"log"

	"InvoiceNestAPI/internal/auth"
	"InvoiceNestAPI/internal/config"
	"InvoiceNestAPI/internal/db"
	"InvoiceNestAPI/internal/middleware"
	"InvoiceNestAPI/internal/repository"
	"InvoiceNestAPI/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

func main() {
	// ======================
	// INFRA
	// ======================
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	pool, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	hasher := auth.NewHasher(cfg.BcryptCost)
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)

	// ======================
	// REPOSITORIES
	// ======================
	userRepo := repository.NewUserRepository(pool)
	customerRepo := repository.NewCustomerRepository(pool)
	invoiceRepo := repository.NewInvoiceRepository(pool)
	paymentRepo := repository.NewPaymentRepository(pool)
	taxTypeRepo := repository.NewTaxTypeRepository(pool)
	settingRepo := repository.NewSettingRepository(pool)

	// ======================
	// SERVICES
	// ======================
	authSvc := services.NewAuthService(userRepo, hasher, tokens)
	customerSvc := services.NewCustomerService(customerRepo)
	invoiceSvc := services.NewInvoiceService(invoiceRepo, customerRepo, settingRepo)
	paymentSvc := services.NewPaymentService(paymentRepo, customerRepo, invoiceRepo, settingRepo)
	taxTypeSvc := services.NewTaxTypeService(taxTypeRepo)
	settingSvc := services.NewSettingService(settingRepo)

	// ======================
	// ECHO
	// ======================
	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(middleware.RequestGate(tokens))

	api := e.Group("/api")

	// ======================
	// ROUTES (ONLY REGISTRATION)
	// ======================
	registerAuthRoutes(api, authSvc)
	registerUserRoutes(api, authSvc, userRepo)
	registerCustomerRoutes(api, customerSvc)
	registerInvoiceRoutes(api, invoiceSvc)
	registerPaymentRoutes(api, paymentSvc)
	registerTaxTypeRoutes(api, taxTypeSvc)
	registerSettingRoutes(api, settingSvc)
	registerPageRoutes(e)

	// ======================
	// SERVER
	// ======================
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
