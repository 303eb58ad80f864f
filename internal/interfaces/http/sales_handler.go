package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ecommerce-admin-api/internal/application/dto"
	"github.com/jhoicas/ecommerce-admin-api/internal/application/sales"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain"
)

// SalesHandler maneja ventas y reportes de ingresos (protegido).
type SalesHandler struct {
	uc *sales.AggregatorUseCase
}

// NewSalesHandler construye el handler.
func NewSalesHandler(uc *sales.AggregatorUseCase) *SalesHandler {
	return &SalesHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar venta
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "Datos de la venta"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SalesHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.RecordSale(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "sale_date YYYY-MM-DD, quantity y total_amount > 0 son requeridos"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "PRODUCT_NOT_FOUND", Message: "el producto no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	SalesRecordedTotal.Inc()
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener venta por ID
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [get]
func (h *SalesHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetSale(c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venta no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar ventas en un rango de fechas (intervalo cerrado)
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        start  query  string  true  "Fecha inicial YYYY-MM-DD"
// @Param        end    query  string  true  "Fecha final YYYY-MM-DD"
// @Success      200    {array}  dto.SaleResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/sales [get]
func (h *SalesHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.SalesByDateRange(c.UserContext(), c.Query("start"), c.Query("end"))
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start y end YYYY-MM-DD son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// RevenueByPeriod godoc
// @Summary      Ingresos agrupados por día, semana, mes o año
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        period  query  string  true  "day | week | month | year"
// @Param        start   query  string  true  "Fecha inicial YYYY-MM-DD"
// @Param        end     query  string  true  "Fecha final YYYY-MM-DD"
// @Success      200     {array}  dto.RevenueByPeriodDTO
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/reports/revenue [get]
func (h *SalesHandler) RevenueByPeriod(c *fiber.Ctx) error {
	out, err := h.uc.RevenueByPeriod(c.UserContext(), c.Query("period"), c.Query("start"), c.Query("end"))
	if err != nil {
		if err == domain.ErrInvalidPeriod {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PERIOD", Message: "period debe ser day, week, month o year"})
		}
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start y end YYYY-MM-DD son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// RevenueComparison godoc
// @Summary      Comparar ingresos de dos ventanas de fechas
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        start1  query  string  true  "Inicio ventana 1"
// @Param        end1    query  string  true  "Fin ventana 1"
// @Param        start2  query  string  true  "Inicio ventana 2"
// @Param        end2    query  string  true  "Fin ventana 2"
// @Success      200     {object}  dto.RevenueComparisonDTO
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/reports/revenue/compare [get]
func (h *SalesHandler) RevenueComparison(c *fiber.Ctx) error {
	out, err := h.uc.RevenueComparison(c.UserContext(),
		c.Query("start1"), c.Query("end1"), c.Query("start2"), c.Query("end2"))
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "las cuatro fechas YYYY-MM-DD son requeridas"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// RevenueByCategory godoc
// @Summary      Ingresos por categoría en un rango de fechas
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        start        query  string  true   "Fecha inicial YYYY-MM-DD"
// @Param        end          query  string  true   "Fecha final YYYY-MM-DD"
// @Param        category_id  query  string  false  "Filtrar por categoría"
// @Success      200  {array}  dto.RevenueByCategoryDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/revenue/by-category [get]
func (h *SalesHandler) RevenueByCategory(c *fiber.Ctx) error {
	start, end := c.Query("start"), c.Query("end")
	var (
		out []dto.RevenueByCategoryDTO
		err error
	)
	if categoryID := c.Query("category_id"); categoryID != "" {
		out, err = h.uc.RevenueByCategoryID(c.UserContext(), start, end, categoryID)
	} else {
		out, err = h.uc.RevenueByCategory(c.UserContext(), start, end)
	}
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start y end YYYY-MM-DD son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// RevenueByProduct godoc
// @Summary      Ingresos de un producto en un rango de fechas
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        product_id  path   string  true  "ID del producto"
// @Param        start       query  string  true  "Fecha inicial YYYY-MM-DD"
// @Param        end         query  string  true  "Fecha final YYYY-MM-DD"
// @Success      200  {array}  dto.RevenueByProductDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/revenue/by-product/{product_id} [get]
func (h *SalesHandler) RevenueByProduct(c *fiber.Ctx) error {
	out, err := h.uc.RevenueByProduct(c.UserContext(), c.Query("start"), c.Query("end"), c.Params("product_id"))
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start y end YYYY-MM-DD son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ProductRevenueReport godoc
// @Summary      Reporte histórico de ingresos por producto
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.RevenueByProductDTO
// @Router       /api/reports/products [get]
func (h *SalesHandler) ProductRevenueReport(c *fiber.Ctx) error {
	out, err := h.uc.ListAllProductRevenue(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ProductRevenuePDF godoc
// @Summary      Reporte histórico de ingresos por producto en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/reports/products/pdf [get]
func (h *SalesHandler) ProductRevenuePDF(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.ProductRevenuePDF(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="product-revenue.pdf"`)
	return c.Send(pdfBytes)
}
