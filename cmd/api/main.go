package main

import (
	"fmt"
	"net/http"

	"github.com/attendly/attendance-backend-go/internal/config"
	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	appHTTP "github.com/attendly/attendance-backend-go/internal/handler/http"
	"github.com/attendly/attendance-backend-go/internal/pkg/clock"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
	"github.com/attendly/attendance-backend-go/internal/pkg/jwt"
	"github.com/attendly/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/attendly/attendance-backend-go/internal/service/attendance"
	authService "github.com/attendly/attendance-backend-go/internal/service/auth"
	queryService "github.com/attendly/attendance-backend-go/internal/service/query"
	reportService "github.com/attendly/attendance-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	loc, err := cfg.Location()
	if err != nil {
		fmt.Println("Error resolving timezone:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	personRepo := postgresql.NewPersonRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	systemClock := clock.System()
	latePolicy := attendance.LatePolicy{
		StartHour:    cfg.Attendance.WorkStartHour,
		StartMinute:  cfg.Attendance.WorkStartMinute,
		GraceMinutes: cfg.Attendance.LateGraceMinutes,
	}

	authSvc := authService.NewAuthService(personRepo, jwtService)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, systemClock, latePolicy, loc)
	querySvc := queryService.NewQueryService(attendanceRepo, personRepo, loc)
	reportSvc := reportService.NewReportService(querySvc, attendanceSvc, personRepo, systemClock, loc)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc, querySvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc, querySvc)
	dashboardHandler := appHTTP.NewDashboardHandler(reportSvc)
	userHandler := appHTTP.NewUserHandler(personRepo)

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		authHandler,
		attendanceHandler,
		reportHandler,
		dashboardHandler,
		userHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
