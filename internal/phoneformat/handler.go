package phoneformat

import (
	"net/http"

	"contact_phone_backend/platform/httpkit"
	"contact_phone_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

// Handler handles HTTP requests for phone formatting.
type Handler struct {
	svc *Service
	val *validator.Validator
}

func NewHandler(svc *Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// Format handles POST /api/v1/phone/format
func (h *Handler) Format(c *gin.Context) {
	var req FormatRequest
	if !h.bind(c, &req) {
		return
	}
	httpkit.OK(c, h.svc.Format(req))
}

// Normalize handles POST /api/v1/phone/normalize
func (h *Handler) Normalize(c *gin.Context) {
	var req NumberRequest
	if !h.bind(c, &req) {
		return
	}
	httpkit.OK(c, h.svc.Normalize(req))
}

// Validate handles POST /api/v1/phone/validate
func (h *Handler) Validate(c *gin.Context) {
	var req NumberRequest
	if !h.bind(c, &req) {
		return
	}
	httpkit.OK(c, h.svc.Validate(req))
}

// DelZero handles POST /api/v1/phone/del-zero
func (h *Handler) DelZero(c *gin.Context) {
	var req NumberRequest
	if !h.bind(c, &req) {
		return
	}
	httpkit.OK(c, h.svc.DelZero(req))
}

// Describe handles POST /api/v1/phone/describe
func (h *Handler) Describe(c *gin.Context) {
	var req DescribeRequest
	if !h.bind(c, &req) {
		return
	}

	result, err := h.svc.Describe(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// Batch handles POST /api/v1/phone/batch
func (h *Handler) Batch(c *gin.Context) {
	var req BatchRequest
	if !h.bind(c, &req) {
		return
	}

	result, err := h.svc.Batch(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

func (h *Handler) bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return false
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return false
	}
	return true
}
