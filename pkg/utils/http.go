package utils

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	ErrEmptyParameter = errors.New("empty parameter")
)

func ParseUUIDParam(c *gin.Context, param string) (uuid.UUID, error) {
	return uuid.Parse(c.Param(param))
}

// ParseQueryUUIDParam returns nil when the query parameter is absent.
func ParseQueryUUIDParam(c *gin.Context, param string) (*uuid.UUID, error) {
	valStr := c.Query(param)
	if valStr == "" {
		return nil, nil
	}
	id, err := uuid.Parse(valStr)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func ParseQueryIntParam(c *gin.Context, param string) (int, error) {
	valStr := c.Query(param)
	if valStr == "" {
		return 0, ErrEmptyParameter
	}
	return strconv.Atoi(valStr)
}

// ParsePagination reads page and page_size. Missing values come back as zero
// so the service defaults apply.
func ParsePagination(c *gin.Context) (page, pageSize int, err error) {
	page, err = ParseQueryIntParam(c, "page")
	if err != nil && !errors.Is(err, ErrEmptyParameter) {
		return 0, 0, err
	}
	pageSize, err = ParseQueryIntParam(c, "page_size")
	if err != nil && !errors.Is(err, ErrEmptyParameter) {
		return 0, 0, err
	}
	return page, pageSize, nil
}
