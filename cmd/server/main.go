package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"clubportal/backend/internal/api/handler"
	"clubportal/backend/internal/auth"
	"clubportal/backend/internal/complaint"
	"clubportal/backend/internal/config"
	"clubportal/backend/internal/hub"
	"clubportal/backend/internal/store"
	"clubportal/backend/internal/telegram"
)

// setupPubSub prefers Redis when an address is configured so conversation
// frames reach every instance; otherwise the hub stays in-process.
func setupPubSub() hub.PubSub {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Println("REDIS_ADDR not set, using in-process conversation fan-out.")
		return hub.NewMemoryPubSub()
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Fatalf("Failed to connect Redis: %v", err)
	}
	return hub.NewRedisPubSub(rdb)
}

func setupSentry() {
	dsn := os.Getenv("SENTRY_DSN")
	if dsn == "" {
		return
	}
	if err := sentry.Init(sentry.ClientOptions{Dsn: dsn}); err != nil {
		log.Printf("Warning: sentry init failed: %v", err)
	}
}

func main() {
	log.Println("Starting Club Portal Backend...")

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET is not set!")
	}

	setupSentry()

	// Authoritative in-memory state, seeded with the demo data.
	st := store.NewMemory()
	store.Seed(st)

	tokens := auth.NewTokenManager([]byte(jwtSecret))
	authSvc := auth.NewService(st, tokens, config.LoginLatency)

	conversationHub := hub.NewManager(setupPubSub())

	complaints := complaint.NewService(st)
	complaints.SetBroadcaster(conversationHub)

	h := handler.NewHandler(complaints, authSvc, tokens, st, conversationHub)

	if botToken := os.Getenv("TELEGRAM_BOT_TOKEN"); botToken != "" {
		chatID, err := strconv.ParseInt(os.Getenv("TELEGRAM_STAFF_CHAT_ID"), 10, 64)
		if err != nil {
			log.Fatalf("TELEGRAM_STAFF_CHAT_ID must be a chat id: %v", err)
		}
		alerter, err := telegram.NewAlerter(botToken, chatID)
		if err != nil {
			log.Fatalf("Failed to start staff alert bot: %v", err)
		}
		complaints.SetAlerter(alerter)
		h.Alerter = alerter
	}

	go conversationHub.Run()

	r := gin.Default()
	if os.Getenv("SENTRY_DSN") != "" {
		r.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	h.RegisterRoutes(r)

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	server := &http.Server{
		Addr:           addr,
		Handler:        r,
		ReadTimeout:    config.ReadTimeout,
		WriteTimeout:   config.WriteTimeout,
		MaxHeaderBytes: config.MaxHeaderBytes,
	}

	log.Fatal(server.ListenAndServe())
}
