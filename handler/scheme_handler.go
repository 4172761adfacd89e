package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"scheme-finder/dto"
	"scheme-finder/service"
)

// SchemeHandler serves the read-only catalog endpoints.
type SchemeHandler struct {
	matchService *service.MatchService
	logger       *zap.Logger
}

// NewSchemeHandler constructs a SchemeHandler.
func NewSchemeHandler(matchService *service.MatchService, logger *zap.Logger) *SchemeHandler {
	return &SchemeHandler{
		matchService: matchService,
		logger:       logger,
	}
}

// Health handles GET /health. The service is unhealthy while no scheme data
// is loaded.
func (h *SchemeHandler) Health(c *gin.Context) {
	count := h.matchService.SchemeCount()
	if count == 0 {
		h.logger.Error("health check failed, no scheme data loaded")
		sendError(c, http.StatusServiceUnavailable, dto.ErrorDataUnavailable, errors.New("Scheme data is not loaded"))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   "Bank Scheme Finder",
		"schemes":   count,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// GetBanks handles GET /api/banks.
func (h *SchemeHandler) GetBanks(c *gin.Context) {
	c.JSON(http.StatusOK, h.matchService.Banks())
}

// GetBankSchemes handles GET /api/banks/:bankId/schemes.
func (h *SchemeHandler) GetBankSchemes(c *gin.Context) {
	bankID := c.Param("bankId")
	response, err := h.matchService.SchemesByBank(bankID)
	if err != nil {
		h.logger.Warn("bank lookup failed", zap.String("bankId", bankID))
		sendError(c, http.StatusNotFound, dto.ErrorNotFound, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// GetCategories handles GET /api/categories.
func (h *SchemeHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, h.matchService.Categories())
}

// ListSchemes handles GET /api/schemes with optional substring filters.
func (h *SchemeHandler) ListSchemes(c *gin.Context) {
	limit := parseLimit(c.Query("limit"))
	response := h.matchService.List(c.Query("category"), c.Query("bank"), limit)
	c.JSON(http.StatusOK, response)
}

// GetScheme handles GET /api/schemes/:id.
func (h *SchemeHandler) GetScheme(c *gin.Context) {
	id := c.Param("id")
	response, err := h.matchService.SchemeByID(id)
	if err != nil {
		h.logger.Warn("scheme lookup failed", zap.String("schemeId", id))
		sendError(c, http.StatusNotFound, dto.ErrorNotFound, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// Search handles GET /api/search?q=.
func (h *SchemeHandler) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		sendError(c, http.StatusBadRequest, dto.ErrorInvalidInput, errors.New("Search query is required"))
		return
	}
	limit := parseLimit(c.Query("limit"))
	c.JSON(http.StatusOK, h.matchService.Search(query, limit))
}

// parseLimit tolerates absent or malformed limits; the service applies the
// per-endpoint default and cap.
func parseLimit(raw string) int {
	if raw == "" {
		return 0
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return limit
}

// sendError writes the structured error body shared by all endpoints.
func sendError(c *gin.Context, statusCode int, label string, err error) {
	c.JSON(statusCode, dto.ErrorResponse{
		Error:   label,
		Message: err.Error(),
		Code:    statusCode,
	})
}
