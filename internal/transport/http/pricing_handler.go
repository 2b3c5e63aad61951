// Package http exposes the pricing queries over HTTP/JSON.
package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/light-bringer/parts-pricing-service/internal/app/pricing/domain"
	"github.com/light-bringer/parts-pricing-service/internal/app/pricing/queries/quote_cart"
	"github.com/light-bringer/parts-pricing-service/internal/app/pricing/queries/resolve_price"
)

// PricingHandler wires the pricing queries to echo routes.
type PricingHandler struct {
	resolvePrice *resolve_price.Query
	quoteCart    *quote_cart.Query
	logger       zerolog.Logger
}

// NewPricingHandler creates the HTTP handler for the pricing API.
func NewPricingHandler(resolvePrice *resolve_price.Query, quoteCart *quote_cart.Query, logger zerolog.Logger) *PricingHandler {
	return &PricingHandler{
		resolvePrice: resolvePrice,
		quoteCart:    quoteCart,
		logger:       logger,
	}
}

// Register mounts the pricing routes on e.
func (h *PricingHandler) Register(e *echo.Echo) {
	e.GET("/healthz", h.Health)
	e.GET("/api/v1/products/:id/price", h.ResolvePrice)
	e.POST("/api/v1/cart/quote", h.QuoteCart)
}

type errorResponse struct {
	Error string `json:"error"`
}

type priceResponse struct {
	ProductID       string  `json:"product_id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	OriginalPrice   float64 `json:"original_price"`
	Source          string  `json:"source"`
	DiscountPercent float64 `json:"discount_percent,omitempty"`
	GroupID         string  `json:"group_id,omitempty"`
}

type quoteLineRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

type quoteRequest struct {
	UserID string             `json:"user_id"`
	Lines  []quoteLineRequest `json:"lines"`
}

type quoteLineResponse struct {
	ProductID         string  `json:"product_id"`
	Name              string  `json:"name"`
	Quantity          int64   `json:"quantity"`
	UnitPrice         float64 `json:"unit_price"`
	OriginalUnitPrice float64 `json:"original_unit_price"`
	LineTotal         float64 `json:"line_total"`
	Source            string  `json:"source"`
	DiscountPercent   float64 `json:"discount_percent,omitempty"`
	GroupID           string  `json:"group_id,omitempty"`
}

type quoteResponse struct {
	Lines []quoteLineResponse `json:"lines"`
	Total float64             `json:"total"`
}

// Health reports readiness for load balancer probes.
func (h *PricingHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// ResolvePrice handles GET /api/v1/products/:id/price?user_id=...
func (h *PricingHandler) ResolvePrice(c echo.Context) error {
	requestID := uuid.NewString()
	start := time.Now()

	productID := c.Param("id")
	if productID == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "product id is required"})
	}
	userID := c.QueryParam("user_id")

	resp, err := h.resolvePrice.Execute(c.Request().Context(), &resolve_price.Request{
		ProductID: productID,
		UserID:    userID,
	})
	if err != nil {
		return h.writeError(c, requestID, err)
	}

	h.logger.Info().
		Str("request_id", requestID).
		Str("product_id", productID).
		Str("source", resp.Source).
		Dur("duration", time.Since(start)).
		Msg("price resolved")

	return c.JSON(http.StatusOK, priceResponse{
		ProductID:       resp.ProductID,
		Name:            resp.Name,
		Price:           resp.Price,
		OriginalPrice:   resp.OriginalPrice,
		Source:          resp.Source,
		DiscountPercent: resp.DiscountPercent,
		GroupID:         resp.GroupID,
	})
}

// QuoteCart handles POST /api/v1/cart/quote.
func (h *PricingHandler) QuoteCart(c echo.Context) error {
	requestID := uuid.NewString()
	start := time.Now()

	var req quoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}
	if len(req.Lines) == 0 {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "cart has no lines"})
	}

	lines := make([]quote_cart.Line, 0, len(req.Lines))
	for _, line := range req.Lines {
		lines = append(lines, quote_cart.Line{ProductID: line.ProductID, Quantity: line.Quantity})
	}

	resp, err := h.quoteCart.Execute(c.Request().Context(), &quote_cart.Request{
		UserID: req.UserID,
		Lines:  lines,
	})
	if err != nil {
		return h.writeError(c, requestID, err)
	}

	out := quoteResponse{
		Lines: make([]quoteLineResponse, 0, len(resp.Lines)),
		Total: resp.Total,
	}
	for _, line := range resp.Lines {
		out.Lines = append(out.Lines, quoteLineResponse{
			ProductID:         line.ProductID,
			Name:              line.Name,
			Quantity:          line.Quantity,
			UnitPrice:         line.UnitPrice,
			OriginalUnitPrice: line.OriginalUnitPrice,
			LineTotal:         line.LineTotal,
			Source:            line.Source,
			DiscountPercent:   line.DiscountPercent,
			GroupID:           line.GroupID,
		})
	}

	h.logger.Info().
		Str("request_id", requestID).
		Int("lines", len(out.Lines)).
		Dur("duration", time.Since(start)).
		Msg("cart quoted")

	return c.JSON(http.StatusOK, out)
}

func (h *PricingHandler) writeError(c echo.Context, requestID string, err error) error {
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: "product not found"})
	case errors.Is(err, quote_cart.ErrInvalidQuantity):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		h.logger.Error().
			Str("request_id", requestID).
			Err(err).
			Msg("pricing request failed")
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
