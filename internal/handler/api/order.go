package api

import (
	"net/http"

	reqdto "bakery-orders/internal/handler/dto/request"
	resdto "bakery-orders/internal/handler/dto/response"
	"bakery-orders/internal/handler/httperr"
	"bakery-orders/internal/handler/middleware"
	"bakery-orders/internal/pkg/errs"
	"bakery-orders/internal/usecase/commands"
	"bakery-orders/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errTypeImmutable = errs.New("order type cannot change")

type OrderHandler struct {
	cmds commands.OrderCommands
	q    queries.OrderQueries
}

func NewOrderHandler(cmds commands.OrderCommands, q queries.OrderQueries) *OrderHandler {
	return &OrderHandler{cmds: cmds, q: q}
}

// @Summary List orders
// @Description List orders sorted by date. At most one of date, start/end or year/month may be given.
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param date query string false "Exact date (YYYY-MM-DD or D/M/YYYY)"
// @Param start query string false "Range start, inclusive"
// @Param end query string false "Range end, inclusive"
// @Param year query int false "Year"
// @Param month query int false "Month, 0-based"
// @Success 200 {object} resdto.OrderListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	var query reqdto.OrderListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	filter, err := query.ToFilter()
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	list, err := h.q.ListOrders(c.Request.Context(), filter)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	middleware.SetRevision(c, list.Revision)
	c.JSON(http.StatusOK, resdto.FromOrderList(list.Orders, list.Revision))
}

// @Summary Get order
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 404 {object} httperr.Response
// @Router /api/orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	o, rev, err := h.q.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	middleware.SetRevision(c, rev)
	c.JSON(http.StatusOK, resdto.FromOrder(o))
}

// @Summary Create order
// @Description Create a cake, sweet or wedding order. The id and timestamps are assigned by storage.
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateOrderRequest true "Order"
// @Success 201 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	var req reqdto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	draft, err := req.ToDraft()
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	res, err := h.cmds.CreateOrder(c.Request.Context(), draft)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	middleware.SetRevision(c, res.Revision)
	c.JSON(http.StatusCreated, resdto.FromOrder(res.Order))
}

// @Summary Update order
// @Description Merge the given fields into an existing order. The type cannot change.
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body reqdto.UpdateOrderRequest true "Fields to change"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/orders/{id} [patch]
func (h *OrderHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req reqdto.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if kind, ok, err := req.RequestedKind(); err != nil {
		abortWithDomainError(c, err)
		return
	} else if ok {
		current, _, err := h.q.GetOrder(c.Request.Context(), id)
		if err != nil {
			abortWithDomainError(c, err)
			return
		}
		if current.Kind() != kind {
			httperr.AbortWithError(c, http.StatusBadRequest, errTypeImmutable, "Order type cannot change", nil)
			return
		}
	}
	p, err := req.ToPatch()
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	res, err := h.cmds.UpdateOrder(c.Request.Context(), id, p)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	middleware.SetRevision(c, res.Revision)
	c.JSON(http.StatusOK, resdto.FromOrder(res.Order))
}

// @Summary Delete order
// @Description Deleting an order that does not exist also succeeds.
// @Tags orders
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 204 "No Content"
// @Failure 503 {object} httperr.Response
// @Router /api/orders/{id} [delete]
func (h *OrderHandler) Delete(c *gin.Context) {
	rev, err := h.cmds.DeleteOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	middleware.SetRevision(c, rev)
	c.Status(http.StatusNoContent)
}

// @Summary Reload orders
// @Description Replace the in-memory orders with the stored collection.
// @Tags orders
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 503 {object} httperr.Response
// @Router /api/orders/refresh [post]
func (h *OrderHandler) Refresh(c *gin.Context) {
	rev, err := h.cmds.RefreshOrders(c.Request.Context())
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	middleware.SetRevision(c, rev)
	c.Status(http.StatusNoContent)
}

// @Summary Delete all orders
// @Description Development only; disabled unless ALLOW_RESET is set.
// @Tags orders
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Router /api/orders [delete]
func (h *OrderHandler) Reset(c *gin.Context) {
	rev, err := h.cmds.ResetOrders(c.Request.Context())
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	middleware.SetRevision(c, rev)
	c.Status(http.StatusNoContent)
}

// @Summary Load sample orders
// @Description Development only; disabled unless ALLOW_RESET is set.
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 201 {object} map[string]int
// @Failure 403 {object} httperr.Response
// @Router /api/orders/seed [post]
func (h *OrderHandler) Seed(c *gin.Context) {
	n, rev, err := h.cmds.SeedOrders(c.Request.Context())
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	middleware.SetRevision(c, rev)
	c.JSON(http.StatusCreated, gin.H{"created": n})
}
