package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"

	"github.com/sustain-inventory/inventory-api/internal/api/handler"
	"github.com/sustain-inventory/inventory-api/internal/api/handler/router"
	"github.com/sustain-inventory/inventory-api/internal/config"
	"github.com/sustain-inventory/inventory-api/internal/usecases/authenticating"
	"github.com/sustain-inventory/inventory-api/internal/usecases/contact"
	"github.com/sustain-inventory/inventory-api/internal/usecases/dashboarding"
	"github.com/sustain-inventory/inventory-api/internal/usecases/forecasting"
	"github.com/sustain-inventory/inventory-api/internal/usecases/inventory"
	"github.com/sustain-inventory/inventory-api/internal/usecases/reserving"
	"github.com/sustain-inventory/inventory-api/internal/usecases/selling"
	"github.com/sustain-inventory/inventory-api/pkg/log"
	"github.com/sustain-inventory/inventory-api/pkg/middleware"
)

// Services reúne os usecases expostos pela API
type Services struct {
	Authenticator authenticating.Authenticator
	Inventory     inventory.Inventory
	Reserver      reserving.Reserver
	Seller        selling.Seller
	Contacter     contact.Contacter
	Dashboarder   dashboarding.Dashboarder
	Forecaster    forecasting.Forecaster
	Snapshots     handler.SnapshotService
	Database      handler.Pinger
}

type Server struct {
	httpServer *http.Server
}

func New(config *config.Config, services Services) (*Server, error) {
	if services.Authenticator == nil {
		return nil, fmt.Errorf("authenticator é obrigatório")
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           NewHandler(config, services),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// NewHandler monta o router com a cadeia de middlewares globais
func NewHandler(config *config.Config, services Services) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck(services.Database)...),
		router.WithRoutes(handler.Authentication(services.Authenticator)...),
		router.WithRoutes(handler.Items(services.Inventory)...),
		router.WithRoutes(handler.Reservations(services.Reserver)...),
		router.WithRoutes(handler.Contacts(services.Contacter)...),
		router.WithRoutes(handler.Sales(services.Seller)...),
		router.WithRoutes(handler.Forecasting(services.Forecaster, services.Dashboarder, services.Snapshots)...),
		router.WithRoutes(handler.CronJobs(services.Snapshots)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.App.AllowedOrigins),
		middleware.AuthMiddleware(services.Authenticator),
	}

	return alice.New(middlewares...).Then(rt)
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		log.L.WithField("address", s.httpServer.Addr).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.L.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		log.L.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		log.L.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.L.WithField("timeout", "15s").Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		log.L.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	log.L.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	log.L.Info("Servidor HTTP desligado com sucesso")
	return nil
}
