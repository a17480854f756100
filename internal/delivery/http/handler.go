package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/amoremio/backend/internal/domain"
	"github.com/amoremio/backend/internal/usecase"
	"github.com/gin-gonic/gin"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	catalog  *usecase.CatalogService
	cart     *usecase.CartService
	checkout *usecase.CheckoutService
	pageSize int
}

// NewHandler creates a new HTTP handler
func NewHandler(catalog *usecase.CatalogService, cart *usecase.CartService, checkout *usecase.CheckoutService, pageSize int) *Handler {
	if pageSize <= 0 {
		pageSize = usecase.DefaultPageSize
	}
	return &Handler{
		catalog:  catalog,
		cart:     cart,
		checkout: checkout,
		pageSize: pageSize,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "amoremio-backend",
		"version": "1.0.0",
	})
}

// GetCatalog returns one page of the catalog grid, filtered by category.
// Query params: category (default "All"), page (default 1).
func (h *Handler) GetCatalog(c *gin.Context) {
	state := usecase.NewCatalogState(h.pageSize)
	if category := c.Query("category"); category != "" {
		state = state.WithCategory(category)
	}
	if raw := c.Query("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "page must be a number"})
			return
		}
		state = state.WithPage(page)
	}

	products, err := h.catalog.LoadCatalog(c.Request.Context())
	if err != nil {
		// Serve the last cached catalog when the upstream fetch
		// fails; an empty grid beats a broken page.
		if cached := h.catalog.CachedCatalog(); len(cached) > 0 {
			products = cached
		}
	}

	c.JSON(http.StatusOK, usecase.BuildCatalogView(products, state))
}

// GetProduct returns one enriched product by its identity.
func (h *Handler) GetProduct(c *gin.Context) {
	product, err := h.catalog.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "catalog unavailable"})
		return
	}

	c.JSON(http.StatusOK, product)
}

// GetCart returns the rendered cart view.
func (h *Handler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, usecase.BuildCartView(h.cart.Items()))
}

// addItemRequest is the POST /cart/items body.
type addItemRequest struct {
	Identity string `json:"identity" binding:"required"`
	Quantity int    `json:"quantity"`
}

// AddCartItem resolves a product by identity and appends it to the cart.
func (h *Handler) AddCartItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "identity is required"})
		return
	}

	product, err := h.catalog.GetProduct(c.Request.Context(), req.Identity)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "catalog unavailable"})
		return
	}

	h.cart.Add(domain.CartItem{Product: *product, Quantity: req.Quantity})

	c.JSON(http.StatusCreated, gin.H{
		"count":    h.cart.Count(),
		"redirect": "/cart",
	})
}

// quantityRequest is the PUT /cart/items/:index body.
type quantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// UpdateCartItem sets the quantity of one cart line. Zero or negative
// removes the line.
func (h *Handler) UpdateCartItem(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "index must be a number"})
		return
	}

	var req quantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity is required"})
		return
	}

	h.cart.SetQuantity(index, *req.Quantity)
	c.JSON(http.StatusOK, usecase.BuildCartView(h.cart.Items()))
}

// RemoveCartItem deletes one cart line by its index.
func (h *Handler) RemoveCartItem(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "index must be a number"})
		return
	}

	h.cart.Remove(index)
	c.JSON(http.StatusOK, usecase.BuildCartView(h.cart.Items()))
}

// SubmitCheckout validates the checkout form, records the order, and
// returns the payment hand-off link.
func (h *Handler) SubmitCheckout(c *gin.Context) {
	var form domain.CheckoutForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid checkout payload"})
		return
	}

	result, err := h.checkout.Submit(c.Request.Context(), form)
	if err != nil {
		if errors.Is(err, domain.ErrCartEmpty) {
			c.JSON(http.StatusConflict, gin.H{
				"error":    "cart is empty",
				"redirect": "/catalog",
			})
			return
		}
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": verr.Error(),
				"field": verr.Field,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "checkout failed"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetWhatsAppLink returns the messaging deep link for the current cart.
func (h *Handler) GetWhatsAppLink(c *gin.Context) {
	link, err := h.checkout.WhatsAppLink()
	if err != nil {
		if errors.Is(err, domain.ErrCartEmpty) {
			c.JSON(http.StatusConflict, gin.H{"error": "cart is empty"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not build link"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": link})
}

// GetNav returns the navigation chrome for the given path, with the cart
// badge count. Query param: path (default "/").
func (h *Handler) GetNav(c *gin.Context) {
	path := c.Query("path")
	if path == "" {
		path = "/"
	}
	c.JSON(http.StatusOK, usecase.BuildNav(path, h.cart.Count()))
}
