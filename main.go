package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/cvntrieu/Group-3/config"
	"github.com/cvntrieu/Group-3/controller"
	"github.com/cvntrieu/Group-3/dao"
	"github.com/cvntrieu/Group-3/logic"
	"github.com/cvntrieu/Group-3/middleware"
	"github.com/cvntrieu/Group-3/models"
	"github.com/cvntrieu/Group-3/pkg"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// .env is optional; secrets may also live in the YAML file
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logrus.WithError(err).Warn("failed to load .env")
	}

	// Initialize config
	if len(os.Args) < 2 {
		logrus.Fatal("Usage: go run main.go <config.yaml>")
	}
	configFile := os.Args[1]
	if err := config.LoadConfig(configFile); err != nil {
		logrus.Fatalf("Failed to load config from %s: %v", configFile, err)
	}

	// Initialize database
	db, err := gorm.Open(postgres.Open(config.GlobalConfig.DSN()), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.ConversationHistory{}, &models.Message{}); err != nil {
		logrus.Fatalf("Failed to migrate database: %v", err)
	}

	// Token issuers; missing signing material is fatal here, before any
	// request can reach a half-configured issuer
	tokenIssuer, err := logic.NewTokenIssuer(
		config.GlobalConfig.Auth.Secret,
		config.GlobalConfig.Auth.Issuer,
		config.GlobalConfig.Auth.Audience,
		time.Duration(config.GlobalConfig.Auth.TokenTTLMinutes)*time.Minute,
	)
	if err != nil {
		logrus.Fatalf("Failed to initialize token issuer: %v", err)
	}
	roomTokenIssuer, err := logic.NewRoomTokenIssuer(
		config.GlobalConfig.LiveKit.APIKey,
		config.GlobalConfig.LiveKit.APISecret,
		time.Duration(config.GlobalConfig.LiveKit.RoomTokenTTLMinutes)*time.Minute,
	)
	if err != nil {
		logrus.Fatalf("Failed to initialize room token issuer: %v", err)
	}

	// Identity generation
	randomSource := pkg.NewRandomSource()
	usernameGenerator := pkg.NewUsernameGenerator(randomSource)

	// Initialize DAOs
	userDAO := dao.NewUserDAO(db)
	historyDAO := dao.NewConversationHistoryDAO(db)
	messageDAO := dao.NewMessageDAO(db)

	// Initialize Logics
	accountLogic := logic.NewAccountLogic(userDAO, tokenIssuer)
	historyLogic := logic.NewHistoryLogic(historyDAO, messageDAO)
	sessionLogic := logic.NewSessionLogic(
		usernameGenerator,
		randomSource,
		roomTokenIssuer,
		config.GlobalConfig.LiveKit.URL,
	)

	// Initialize Controllers
	accountCtrl := controller.NewAccountController(accountLogic)
	sessionCtrl := controller.NewSessionController(sessionLogic)
	messageCtrl := controller.NewMessageController(historyLogic)
	historyCtrl := controller.NewHistoryController(historyLogic)

	// Setup Gin router
	r := gin.Default()
	r.POST("/api/account/register", accountCtrl.Register)
	r.POST("/api/account/login", accountCtrl.Login)
	r.POST("/api/session", sessionCtrl.CreateSession)
	r.POST("/api/messages", middleware.Auth, messageCtrl.AddMessages)
	r.GET("/api/conversation-history", middleware.Auth, historyCtrl.GetConversationHistory)

	// Run server
	if err := r.Run(fmt.Sprintf(":%d", config.GlobalConfig.Server.Port)); err != nil {
		logrus.Fatalf("Failed to run server: %v", err)
	}
}
