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

type SalesOrdersHandler struct{ svc service.SalesOrderService }

func NewSalesOrdersHandler(svc service.SalesOrderService) *SalesOrdersHandler {
	return &SalesOrdersHandler{svc: svc}
}

// Create godoc
// @Summary      Create a sales order
// @Description  Inserts the order header and items and decrements stock per line in one transaction. An unknown product aborts the whole order.
// @Tags         sales-orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateSalesOrderRequest true "Order header and items"
// @Success      201  {object} dto.SalesOrderResponse
// @Failure      400  {object} apierror.ValidationError
// @Failure      404  {object} apierror.APIError
// @Router       /api/sales-orders [post]
func (h *SalesOrdersHandler) Create(c *gin.Context) {
	var req dto.CreateSalesOrderRequest
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

func (h *SalesOrdersHandler) Get(c *gin.Context) {
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

// List godoc
// @Summary      List sales orders
// @Tags         sales-orders
// @Produce      json
// @Security     BearerAuth
// @Param        status query string false "pending | completed | cancelled | all"
// @Param        from   query string false "YYYY-MM-DD inclusive"
// @Param        to     query string false "YYYY-MM-DD inclusive"
// @Param        page   query int    false "Page (default 1)"
// @Param        limit  query int    false "Page size (default 50)"
// @Success      200 {array} dto.SalesOrderResponse
// @Router       /api/sales-orders [get]
func (h *SalesOrdersHandler) List(c *gin.Context) {
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
