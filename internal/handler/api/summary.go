package api

import (
	"net/http"

	"bakery-orders/internal/domain/caldate"
	reqdto "bakery-orders/internal/handler/dto/request"
	resdto "bakery-orders/internal/handler/dto/response"
	"bakery-orders/internal/handler/httperr"
	"bakery-orders/internal/handler/middleware"
	"bakery-orders/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SummaryHandler struct {
	q queries.SummaryQueries
}

func NewSummaryHandler(q queries.SummaryQueries) *SummaryHandler {
	return &SummaryHandler{q: q}
}

// @Summary Daily summary
// @Tags summaries
// @Produce json
// @Security BearerAuth
// @Param date query string true "Date"
// @Success 200 {object} resdto.DailySummaryResponse
// @Failure 400 {object} httperr.Response
// @Router /api/summaries/daily [get]
func (h *SummaryHandler) Daily(c *gin.Context) {
	var query reqdto.DailySummaryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	date, err := caldate.Normalize(query.Date)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	res, err := h.q.Daily(c.Request.Context(), date)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	respond(c, res.Revision, res.Data, resdto.FromDailySummary)
}

// @Summary Period summary
// @Description Inclusive date range. An inverted range yields an empty summary.
// @Tags summaries
// @Produce json
// @Security BearerAuth
// @Param start query string true "Start date"
// @Param end query string true "End date"
// @Success 200 {object} resdto.PeriodSummaryResponse
// @Failure 400 {object} httperr.Response
// @Router /api/summaries/period [get]
func (h *SummaryHandler) Period(c *gin.Context) {
	var query reqdto.PeriodSummaryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	start, err := caldate.Normalize(query.Start)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	end, err := caldate.Normalize(query.End)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	res, err := h.q.Period(c.Request.Context(), start, end)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	respond(c, res.Revision, res.Data, resdto.FromPeriodSummary)
}

// @Summary Monthly summary
// @Tags summaries
// @Produce json
// @Security BearerAuth
// @Param year query int true "Year"
// @Param month query int true "Month, 0-based"
// @Success 200 {object} resdto.MonthlySummaryResponse
// @Failure 400 {object} httperr.Response
// @Router /api/summaries/monthly [get]
func (h *SummaryHandler) Monthly(c *gin.Context) {
	var query reqdto.MonthlySummaryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	res, err := h.q.Monthly(c.Request.Context(), *query.Year, *query.Month)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	respond(c, res.Revision, res.Data, resdto.FromMonthlySummary)
}

// @Summary Recent summary
// @Description Period summary over the last N days up to and including today.
// @Tags summaries
// @Produce json
// @Security BearerAuth
// @Param days query int false "Number of days" default(30)
// @Success 200 {object} resdto.PeriodSummaryResponse
// @Failure 400 {object} httperr.Response
// @Router /api/summaries/recent [get]
func (h *SummaryHandler) Recent(c *gin.Context) {
	var query reqdto.RecentSummaryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	res, err := h.q.Recent(c.Request.Context(), query.Days)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	respond(c, res.Revision, res.Data, resdto.FromPeriodSummary)
}

func respond[T, R any](c *gin.Context, rev uint64, data T, convert func(T) (*R, error)) {
	body, err := convert(data)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	middleware.SetRevision(c, rev)
	c.JSON(http.StatusOK, body)
}
