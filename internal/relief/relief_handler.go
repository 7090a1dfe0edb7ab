package relief

import (
	"net/http"

	"go-payroll-my/internal/shared/apperror"
	"go-payroll-my/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// GetCatalog mengembalikan katalog TP1 efektif (override syarikat sudah diterapkan).
func (h *Handler) GetCatalog(c *gin.Context) {
	ctx := c.Request.Context()
	companyID := c.GetString("company_id")

	catalog, err := h.service.EffectiveCatalog(ctx, companyID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, mapCatalogToResponse(catalog), nil)
}

// PreviewClaims menghitung efek cap/kitaran klaim TP1 tanpa menulis YTD.
func (h *Handler) PreviewClaims(c *gin.Context) {
	ctx := c.Request.Context()
	companyID := c.GetString("company_id")

	var req PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Preview(ctx, companyID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
