package handler

import (
	"errors"
	"io"
	"net"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/quinntest007-creator/QueueBlaze/internal/application/intake"
	"github.com/quinntest007-creator/QueueBlaze/internal/domain/shared"
	"github.com/quinntest007-creator/QueueBlaze/internal/interfaces/http/dto"
	"github.com/quinntest007-creator/QueueBlaze/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// MsgInvalidRequest is returned for intake calls that are not a POST
const MsgInvalidRequest = "Invalid request"

// IntakeHandler serves the storefront checkout and contact form endpoints.
// Responses use the flat {success, order_id, error} body the storefront expects.
type IntakeHandler struct {
	service *intake.Service
}

// NewIntakeHandler creates a new intake handler
func NewIntakeHandler(service *intake.Service) *IntakeHandler {
	return &IntakeHandler{service: service}
}

// SaveOrder handles POST /api/save-order
func (h *IntakeHandler) SaveOrder(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.fail(c, err)
		return
	}

	req, err := intake.DecodeCheckoutRequest(body)
	if err != nil {
		h.fail(c, err)
		return
	}

	created, err := h.service.SubmitOrder(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewIntakeSuccess(&created.OrderID))
}

// SaveInquiry handles POST /api/save-inquiry.
// The rate limit is checked before the body is read.
func (h *IntakeHandler) SaveInquiry(c *gin.Context) {
	ctx := c.Request.Context()
	clientIP := ClientIdentifier(c.Request)

	if err := h.service.CheckInquiryAllowed(ctx, clientIP); err != nil {
		h.fail(c, err)
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.fail(c, err)
		return
	}

	req, err := intake.DecodeInquiryRequest(body)
	if err != nil {
		h.fail(c, err)
		return
	}

	if err := h.service.SubmitInquiry(ctx, clientIP, req); err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewIntakeSuccess(nil))
}

// InvalidMethod answers intake paths called with anything but POST
func (h *IntakeHandler) InvalidMethod(c *gin.Context) {
	c.JSON(http.StatusBadRequest, dto.NewIntakeError(MsgInvalidRequest))
}

// fail writes an intake error body. Rate limiting is a 429; every other
// failure, including storage errors, is a 400 carrying the error text.
func (h *IntakeHandler) fail(c *gin.Context, err error) {
	status := http.StatusBadRequest
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		if domainErr.Code == shared.CodeRateLimited {
			status = http.StatusTooManyRequests
		}
	} else {
		logger.GetGinLogger(c).Warn("intake request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	c.JSON(status, dto.NewIntakeError(err.Error()))
}

// ClientIdentifier returns the first X-Forwarded-For entry, else the
// remote address host, else "unknown". An empty first entry does not
// shift to the next one.
func ClientIdentifier(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if r.RemoteAddr != "" {
		if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil && host != "" {
			return host
		}
		return r.RemoteAddr
	}
	return "unknown"
}
