package handler

import (
	"net/http"

	"github.com/sustain-inventory/inventory-api/internal/api/handler/router"
	"github.com/sustain-inventory/inventory-api/internal/usecases/authenticating"
	"github.com/sustain-inventory/inventory-api/internal/usecases/contact"
	"github.com/sustain-inventory/inventory-api/internal/usecases/dashboarding"
	"github.com/sustain-inventory/inventory-api/internal/usecases/forecasting"
	"github.com/sustain-inventory/inventory-api/internal/usecases/inventory"
	"github.com/sustain-inventory/inventory-api/internal/usecases/reserving"
	"github.com/sustain-inventory/inventory-api/internal/usecases/selling"
	"github.com/sustain-inventory/inventory-api/pkg/middleware"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: Register(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Items(service inventory.Inventory) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/items",
			Method:      http.MethodGet,
			Handler:     ListItems(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/items",
			Method:      http.MethodPost,
			Handler:     CreateItem(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/items/:id",
			Method:      http.MethodGet,
			Handler:     GetItem(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/items/:id",
			Method:      http.MethodPut,
			Handler:     UpdateItem(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/items/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteItem(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/items/:id/status",
			Method:      http.MethodPatch,
			Handler:     UpdateItemStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/catalogs/:kind",
			Method:      http.MethodGet,
			Handler:     ListCatalog(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/catalogs/:kind",
			Method:      http.MethodPost,
			Handler:     AddCatalogEntry(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Reservations(service reserving.Reserver) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/items/:id/reserve",
			Method:      http.MethodPost,
			Handler:     ReserveItem(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reservations",
			Method:      http.MethodGet,
			Handler:     ListReservedItems(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reservations/:id/finalize",
			Method:      http.MethodPost,
			Handler:     FinalizeReservation(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reservations/:id",
			Method:      http.MethodDelete,
			Handler:     CancelReservation(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/deliveries",
			Method:      http.MethodGet,
			Handler:     ListDeliveries(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/deliveries/:id/delivered",
			Method:      http.MethodPost,
			Handler:     MarkDelivered(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Contacts(service contact.Contacter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/contacts",
			Method:      http.MethodGet,
			Handler:     ListContacts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/contacts",
			Method:      http.MethodPost,
			Handler:     AddContact(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Sales(service selling.Seller) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/sales",
			Method:      http.MethodGet,
			Handler:     ListSales(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/sales/seed",
			Method:      http.MethodPost,
			Handler:     SeedSales(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/sales/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteSale(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Forecasting(forecaster forecasting.Forecaster, dashboarder dashboarding.Dashboarder, snapshots SnapshotService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/forecast",
			Method:      http.MethodPost,
			Handler:     PostForecast(forecaster),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/forecast/snapshots/latest",
			Method:      http.MethodGet,
			Handler:     GetLatestForecastSnapshot(snapshots),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard",
			Method:      http.MethodGet,
			Handler:     GetDashboard(dashboarder),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/analytics",
			Method:      http.MethodGet,
			Handler:     GetAnalytics(dashboarder),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(service SnapshotService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
