package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/wickedfiles/wickedfiles/cmd/middleware"
	"github.com/wickedfiles/wickedfiles/internal/api"
	"github.com/wickedfiles/wickedfiles/internal/configuration"
	natsrouting "github.com/wickedfiles/wickedfiles/internal/nats"
	"github.com/wickedfiles/wickedfiles/internal/services"
	"github.com/wickedfiles/wickedfiles/internal/services/infrastructure"
	gintrace "gopkg.in/DataDog/dd-trace-go.v1/contrib/gin-gonic/gin"
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/tracer"
)

func main() {
	cfg := configuration.Load()

	if err := infrastructure.InitializePostgres(cfg.Database.ConnectionString()); err != nil {
		log.Fatalf("Failed to initialize PostgreSQL: %v", err)
	}

	services.InitializeGateway()

	if _, _, err := services.ConnectNATS(cfg.NATSURL); err != nil {
		log.Printf("Warning: NATS unavailable, events disabled: %v", err)
	} else if err := natsrouting.SubscribeAll(natsrouting.Routes(cfg.CLAMAVURL)); err != nil {
		log.Printf("Warning: failed to subscribe to NATS subjects: %v", err)
	}

	if err := middleware.InitAuth(cfg.OIDCIssuerURL); err != nil {
		log.Fatalf("Failed to initialize OIDC auth: %v", err)
	}

	tracer.Start(tracer.WithService("wickedfiles-api"))
	defer tracer.Stop()

	setupGracefulShutdown()

	r := gin.Default()
	r.Use(gintrace.Middleware("wickedfiles-api"))

	api.RegisterRoutes(r)

	log.Printf("Server starting on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupGracefulShutdown() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Shutting down gracefully...")
		services.CloseNATS()
		tracer.Stop()
		os.Exit(0)
	}()
}
