package response

import (
	"time"

	"github.com/gin-gonic/gin"
)

// APIResponse is the uniform success envelope. Data is always present,
// even when null; Message only when set.
type APIResponse struct {
	Success   bool   `json:"success"`
	Data      any    `json:"data"`
	Message   string `json:"message,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// PaginatedResponse carries the page window as flat fields next to data.
type PaginatedResponse struct {
	Success    bool  `json:"success"`
	Data       any   `json:"data"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalItems int   `json:"totalItems"`
	TotalPages int   `json:"totalPages"`
	Timestamp  int64 `json:"timestamp"`
}

type ErrorResponse struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
}

func now() int64 { return time.Now().UnixMilli() }

func Success(c *gin.Context, status int, data any, message string) {
	c.JSON(status, APIResponse{
		Success:   true,
		Data:      data,
		Message:   message,
		Timestamp: now(),
	})
}

func SuccessWithPagination(c *gin.Context, status int, data any, page, pageSize, totalItems int) {
	totalPages := 0
	if pageSize > 0 {
		totalPages = (totalItems + pageSize - 1) / pageSize
	}

	c.JSON(status, PaginatedResponse{
		Success:    true,
		Data:       data,
		Page:       page,
		PageSize:   pageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
		Timestamp:  now(),
	})
}

func Error(c *gin.Context, status int, errCode, message string) {
	c.JSON(status, ErrorResponse{
		Success:   false,
		Error:     errCode,
		Message:   message,
		Timestamp: now(),
	})
}
