package handler

import (
	"net/http"

	"biztrack/internal/apierror"
	"biztrack/internal/dto"
	"biztrack/internal/middleware"
	"biztrack/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PurchaseOrdersHandler struct{ svc service.PurchaseOrderService }

func NewPurchaseOrdersHandler(svc service.PurchaseOrderService) *PurchaseOrdersHandler {
	return &PurchaseOrdersHandler{svc: svc}
}

// Create godoc
// @Summary      Create a purchase order
// @Description  Inserts the procurement header and items atomically. Stock is never adjusted here.
// @Tags         purchase-orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreatePurchaseOrderRequest true "Order header and items"
// @Success      201  {object} dto.PurchaseOrderResponse
// @Failure      400  {object} apierror.ValidationError
// @Failure      402  {object} apierror.APIError
// @Router       /api/purchase-orders [post]
func (h *PurchaseOrdersHandler) Create(c *gin.Context) {
	var req dto.CreatePurchaseOrderRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New("malformed token"))
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), userID, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *PurchaseOrdersHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid order id"))
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PurchaseOrdersHandler) List(c *gin.Context) {
	var filter dto.OrderFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid query parameters"))
		return
	}
	orders, total, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data":  orders,
		"total": total,
		"page":  filter.Page,
		"limit": filter.Limit,
	})
}

// UpdateStatus godoc
// @Summary      Advance purchase order status
// @Description  pending→confirmed/cancelled, confirmed→received/cancelled. Terminal states reject further transitions.
// @Tags         purchase-orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                             true "Purchase order UUID"
// @Param        body body dto.UpdatePurchaseOrderStatusRequest true "Target status"
// @Success      200  {object} dto.PurchaseOrderResponse
// @Failure      409  {object} apierror.APIError
// @Router       /api/purchase-orders/{id} [put]
func (h *PurchaseOrdersHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid order id"))
		return
	}
	var req dto.UpdatePurchaseOrderStatusRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
