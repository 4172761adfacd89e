package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"scheme-finder/dto"
	"scheme-finder/service"
)

// errInvalidBody covers malformed JSON and type mismatches; field-level
// problems get precise messages from the request Validate methods.
var errInvalidBody = errors.New("Invalid request body")

// MatchHandler serves the criteria-driven matching endpoints.
type MatchHandler struct {
	matchService *service.MatchService
	logger       *zap.Logger
}

// NewMatchHandler constructs a MatchHandler.
func NewMatchHandler(matchService *service.MatchService, logger *zap.Logger) *MatchHandler {
	return &MatchHandler{
		matchService: matchService,
		logger:       logger,
	}
}

// Filter handles POST /api/filter with additive-bonus ranking.
func (h *MatchHandler) Filter(c *gin.Context) {
	var request dto.FilterRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.logger.Warn("rejected filter body", zap.Error(err))
		sendError(c, http.StatusBadRequest, dto.ErrorInvalidInput, errInvalidBody)
		return
	}
	if err := request.Validate(); err != nil {
		h.logger.Warn("rejected filter request", zap.Error(err))
		sendError(c, http.StatusBadRequest, dto.ErrorInvalidInput, err)
		return
	}

	c.JSON(http.StatusOK, h.matchService.Filter(&request))
}

// QuickFilter handles POST /api/quick-filter with penalty-based ranking.
func (h *MatchHandler) QuickFilter(c *gin.Context) {
	var request dto.QuickFilterRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.logger.Warn("rejected quick-filter body", zap.Error(err))
		sendError(c, http.StatusBadRequest, dto.ErrorInvalidInput, errInvalidBody)
		return
	}
	if err := request.Validate(); err != nil {
		h.logger.Warn("rejected quick-filter request", zap.Error(err))
		sendError(c, http.StatusBadRequest, dto.ErrorInvalidInput, err)
		return
	}

	c.JSON(http.StatusOK, h.matchService.QuickFilter(&request))
}

// Personalize handles POST /api/personalize.
func (h *MatchHandler) Personalize(c *gin.Context) {
	var request dto.PersonalizeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.logger.Warn("rejected personalize body", zap.Error(err))
		sendError(c, http.StatusBadRequest, dto.ErrorInvalidInput, errInvalidBody)
		return
	}
	if err := request.Validate(); err != nil {
		h.logger.Warn("rejected personalize request", zap.Error(err))
		sendError(c, http.StatusBadRequest, dto.ErrorInvalidInput, err)
		return
	}

	response, err := h.matchService.Personalize(&request)
	if err != nil {
		if errors.Is(err, service.ErrBankNotFound) {
			h.logger.Warn("bank lookup failed", zap.String("bankId", request.BankID))
			sendError(c, http.StatusNotFound, dto.ErrorNotFound, err)
			return
		}
		h.logger.Error("personalize failed", zap.Error(err))
		sendError(c, http.StatusInternalServerError, dto.ErrorInternal, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// Compare handles POST /api/compare. Cardinality is rejected before any
// catalog read.
func (h *MatchHandler) Compare(c *gin.Context) {
	var request dto.CompareRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.logger.Warn("rejected compare body", zap.Error(err))
		sendError(c, http.StatusBadRequest, dto.ErrorInvalidInput, errInvalidBody)
		return
	}
	if err := request.Validate(); err != nil {
		h.logger.Warn("rejected compare request", zap.Error(err))
		sendError(c, http.StatusBadRequest, dto.ErrorInvalidInput, err)
		return
	}

	response, err := h.matchService.Compare(&request)
	if err != nil {
		if errors.Is(err, service.ErrNoComparableSchemes) {
			h.logger.Warn("compare resolved no schemes", zap.Strings("schemeIds", request.SchemeIDs))
			sendError(c, http.StatusNotFound, dto.ErrorNotFound, err)
			return
		}
		h.logger.Error("compare failed", zap.Error(err))
		sendError(c, http.StatusInternalServerError, dto.ErrorInternal, err)
		return
	}
	c.JSON(http.StatusOK, response)
}
