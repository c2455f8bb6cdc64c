package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/peoplekit/leave-backend-go/internal/config"
	appHTTP "github.com/peoplekit/leave-backend-go/internal/handler/http"
	"github.com/peoplekit/leave-backend-go/internal/pkg/database"
	"github.com/peoplekit/leave-backend-go/internal/pkg/jwt"
	"github.com/peoplekit/leave-backend-go/internal/repository/postgresql"
	authService "github.com/peoplekit/leave-backend-go/internal/service/auth"
	leaveService "github.com/peoplekit/leave-backend-go/internal/service/leave"
	managerService "github.com/peoplekit/leave-backend-go/internal/service/manager"
	roleService "github.com/peoplekit/leave-backend-go/internal/service/role"
	userService "github.com/peoplekit/leave-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "leave-backend"),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	roleRepo := postgresql.NewRoleRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	managerPairRepo := postgresql.NewManagerPairRepository(db)
	txManager := postgresql.NewTxManager(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	roleSvc := roleService.NewRoleService(roleRepo)
	if err := roleSvc.Seed(context.Background()); err != nil {
		log.Fatal("Failed to seed roles: ", err)
	}

	leaveSvc := leaveService.NewRequestService(leaveRequestRepo, userRepo, txManager, logger)
	userSvc := userService.NewUserService(userRepo, roleRepo, cfg.App.DefaultLeaveBalance, logger)
	authSvc := authService.NewAuthService(userRepo, JWTService, logger)
	managerSvc := managerService.NewPairService(managerPairRepo, userRepo, logger)

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	userHandler := appHTTP.NewUserHandler(userSvc)
	roleHandler := appHTTP.NewRoleHandler(roleSvc, roleRepo)
	managerHandler := appHTTP.NewManagerHandler(managerSvc)

	router := appHTTP.NewRouter(
		cfg,
		JWTService,
		authHandler,
		leaveHandler,
		userHandler,
		roleHandler,
		managerHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
