package payroll

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"go-payroll-my/internal/shared/apperror"
	"go-payroll-my/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type Handler struct {
	service Service
	rdb     *redis.Client
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func NewHandlerWithRedis(service Service, rdb *redis.Client) *Handler {
	return &Handler{service: service, rdb: rdb}
}

func getActorID(c *gin.Context) string {
	return c.GetString("actor_id")
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// Run memproses gaji satu pekerja satu periode. Dilindungi middleware
// idempotency: retry klien dengan Idempotency-Key sama mendapat hasil cache,
// bukan run ganda.
func (h *Handler) Run(c *gin.Context) {
	lockKey, _ := c.Get("idempotency_lock_key")
	cacheKey, _ := c.Get("idempotency_cache_key")

	if h.rdb != nil {
		if lk, ok := lockKey.(string); ok && lk != "" {
			defer h.rdb.Del(c.Request.Context(), lk)
		}
	}

	companyID := c.GetString("company_id")
	actorID := getActorID(c)

	var req RunPayrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.RunForEmployee(c.Request.Context(), companyID, actorID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	if h.rdb != nil {
		if ck, ok := cacheKey.(string); ok && ck != "" {
			if payload, marshalErr := json.Marshal(resp); marshalErr == nil {
				_ = h.rdb.Set(c.Request.Context(), ck, payload, 24*time.Hour).Err()
			}
		}
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) RunBatch(c *gin.Context) {
	companyID := c.GetString("company_id")
	actorID := getActorID(c)

	var req RunBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.RunBatch(c.Request.Context(), companyID, actorID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetRuns(c *gin.Context) {
	ctx := c.Request.Context()
	companyID := c.GetString("company_id")

	year, _ := strconv.Atoi(c.Query("year"))
	month, _ := strconv.Atoi(c.DefaultQuery("month", "0"))
	if year == 0 {
		year = time.Now().UTC().Year()
	}

	resp, err := h.service.GetRuns(ctx, companyID, year, month)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetRun(c *gin.Context) {
	ctx := c.Request.Context()
	companyID := c.GetString("company_id")
	id := c.Param("id")

	resp, err := h.service.GetRun(ctx, companyID, id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetYTD(c *gin.Context) {
	ctx := c.Request.Context()
	companyID := c.GetString("company_id")
	employeeID := c.Param("employeeID")

	year, _ := strconv.Atoi(c.Query("year"))
	if year == 0 {
		year = time.Now().UTC().Year()
	}

	resp, err := h.service.GetYTD(ctx, companyID, employeeID, year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetEPFPart(c *gin.Context) {
	ctx := c.Request.Context()
	companyID := c.GetString("company_id")
	employeeID := c.Param("employeeID")

	// ?period=MM/YYYY: resolusi pada akhir bulan itu; default bulan berjalan
	asOf := time.Now().UTC()
	if period := c.Query("period"); period != "" {
		parsed, err := time.Parse("01/2006", period)
		if err != nil {
			h.writeServiceError(c, apperror.InvalidField("period"))
			return
		}
		asOf = parsed.AddDate(0, 1, -1)
	}

	resp, err := h.service.GetEPFPart(ctx, companyID, employeeID, asOf)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
