package httpx

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// PageQuery holds the parsed pagination window. Active reports whether
// pagination mode is on: both params supplied and positive. Absent or
// non-positive params leave the listing unpaginated.
type PageQuery struct {
	Page     int
	PageSize int
	Active   bool
}

func ParsePagination(c *gin.Context) PageQuery {
	page, _ := strconv.Atoi(c.Query("page"))
	pageSize, _ := strconv.Atoi(c.Query("pageSize"))

	return PageQuery{
		Page:     page,
		PageSize: pageSize,
		Active:   page > 0 && pageSize > 0,
	}
}
