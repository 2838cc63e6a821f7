package api

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// pageParams reads the page and limit query parameters, falling back to the
// defaults on anything unparseable.
func pageParams(c *gin.Context) (int, int) {
	page := defaultPage
	if v, err := strconv.Atoi(c.DefaultQuery("page", "")); err == nil && v > 0 {
		page = v
	}

	limit := defaultLimit
	if v, err := strconv.Atoi(c.DefaultQuery("limit", "")); err == nil && v > 0 {
		limit = v
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return page, limit
}
