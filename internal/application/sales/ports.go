package sales

import (
	"context"

	"github.com/jhoicas/ecommerce-admin-api/internal/domain/repository"
)

// ReportPDFGenerator genera la representación PDF del reporte de ingresos por
// producto. Implementado en infrastructure/pdf con Maroto.
type ReportPDFGenerator interface {
	GenerateProductRevenuePDF(ctx context.Context, rows []repository.ProductRevenueRow) ([]byte, error)
}
