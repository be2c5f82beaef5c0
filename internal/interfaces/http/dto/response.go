package dto

// Response represents the admin API response envelope
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
}

// ErrorInfo represents error details
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Meta represents pagination metadata
type Meta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

// NewSuccessResponse creates a success response
func NewSuccessResponse(data interface{}) Response {
	return Response{
		Success: true,
		Data:    data,
	}
}

// NewSuccessResponseWithMeta creates a success response with pagination meta.
// A pageSize of 0 means everything fits on one page.
func NewSuccessResponseWithMeta(data interface{}, total int64, page, pageSize int) Response {
	totalPages := 1
	if pageSize > 0 {
		totalPages = int((total + int64(pageSize) - 1) / int64(pageSize))
	}
	if page < 1 {
		page = 1
	}
	return Response{
		Success: true,
		Data:    data,
		Meta: &Meta{
			Total:      total,
			Page:       page,
			PageSize:   pageSize,
			TotalPages: totalPages,
		},
	}
}

// NewErrorResponse creates an error response
func NewErrorResponse(code, message string) Response {
	return Response{
		Success: false,
		Error: &ErrorInfo{
			Code:    code,
			Message: message,
		},
	}
}

// IntakeResponse is the flat body returned by the storefront checkout and contact endpoints
type IntakeResponse struct {
	Success bool    `json:"success"`
	OrderID *uint64 `json:"order_id,omitempty"`
	Error   string  `json:"error,omitempty"`
}

// NewIntakeSuccess creates a storefront success body. orderID may be nil.
func NewIntakeSuccess(orderID *uint64) IntakeResponse {
	return IntakeResponse{Success: true, OrderID: orderID}
}

// NewIntakeError creates a storefront error body
func NewIntakeError(message string) IntakeResponse {
	return IntakeResponse{Success: false, Error: message}
}
