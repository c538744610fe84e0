package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"motosync-api/models"
	"motosync-api/utils"
)

var (
	errEmailTaken = errors.New("email already registered")
	errNotFound   = errors.New("record not found")
)

const (
	defaultPageSize = 10
	maxPageSize     = 50
)

// parsePagination reads the 0-based page and size query params the
// mobile client sends.
func parsePagination(c *gin.Context) (page, size int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "0"))
	if page < 0 {
		page = 0
	}
	size, _ = strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(defaultPageSize)))
	if size <= 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	return page, size
}

// paginate slices one page out of n items, returning the slice bounds.
func paginate(n, page, size int) (start, end int) {
	start = page * size
	if start > n {
		start = n
	}
	end = start + size
	if end > n {
		end = n
	}
	return start, end
}

func yardExists(yards []models.Yard, name string) bool {
	normalized := utils.Normalize(name)
	for _, y := range yards {
		if utils.Normalize(y.Name) == normalized {
			return true
		}
	}
	return false
}
