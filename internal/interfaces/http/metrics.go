package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total de peticiones HTTP por método, ruta y status.",
	}, []string{"method", "path", "status"})

	// SalesRecordedTotal cuenta ventas registradas con éxito.
	SalesRecordedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sales_recorded_total",
		Help: "Total de ventas registradas.",
	})

	// InventoryAdjustmentsTotal cuenta ajustes de inventario aplicados.
	InventoryAdjustmentsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inventory_adjustments_total",
		Help: "Total de ajustes de inventario aplicados.",
	})
)

// MetricsMiddleware incrementa el contador de peticiones usando la ruta
// registrada (no el path crudo) para mantener acotada la cardinalidad.
func MetricsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		path := c.Route().Path
		httpRequestsTotal.WithLabelValues(
			c.Method(), path, strconv.Itoa(c.Response().StatusCode()),
		).Inc()
		return err
	}
}

// MetricsHandler expone /metrics en formato Prometheus.
func MetricsHandler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
