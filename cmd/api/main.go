package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/worklane/timekeeping-backend-go/internal/config"
	appHTTP "github.com/worklane/timekeeping-backend-go/internal/handler/http"
	"github.com/worklane/timekeeping-backend-go/internal/pkg/database"
	"github.com/worklane/timekeeping-backend-go/internal/pkg/jwt"
	"github.com/worklane/timekeeping-backend-go/internal/pkg/oauth"
	"github.com/worklane/timekeeping-backend-go/internal/repository/postgresql"
	authService "github.com/worklane/timekeeping-backend-go/internal/service/auth"
	employeeService "github.com/worklane/timekeeping-backend-go/internal/service/employee"
	reportService "github.com/worklane/timekeeping-backend-go/internal/service/report"
	timeRecordService "github.com/worklane/timekeeping-backend-go/internal/service/timerecord"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	displayLocation, err := time.LoadLocation(cfg.Report.DisplayTimezone)
	if err != nil {
		log.Fatal("Invalid DISPLAY_TIMEZONE: ", err)
	}

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	timeRecordRepo := postgresql.NewTimeRecordRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	authSvc := authService.NewAuthService(db, userRepo, employeeRepo, jwtService, refreshTokenRepo)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, userRepo)
	timeRecordSvc := timeRecordService.NewTimeRecordService(db, timeRecordRepo, employeeRepo, displayLocation)
	reportSvc := reportService.NewReportService(timeRecordRepo, employeeRepo, displayLocation)

	authHandler := appHTTP.NewAuthHandler(jwtService, authSvc, googleService, cfg.App.FrontendURL)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	timeRecordHandler := appHTTP.NewTimeRecordHandler(timeRecordSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{Env: cfg.App.Env, LogLevel: cfg.App.LogLevel, FrontendURL: cfg.App.FrontendURL},
		jwtService,
		authHandler,
		employeeHandler,
		timeRecordHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
