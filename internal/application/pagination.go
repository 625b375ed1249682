package application

import "github.com/linskybing/report-hub/internal/config"

// normalizePage applies the configured defaults and upper bound.
func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = config.DefaultPageSize
	}
	if config.MaxPageSize > 0 && pageSize > config.MaxPageSize {
		pageSize = config.MaxPageSize
	}
	return page, pageSize
}
