// Package pagination normalizes page sizes and offset page tokens.
package pagination

import (
	"fmt"
	"strconv"
	"strings"
)

// PageSizeConfig configures page size normalization.
type PageSizeConfig struct {
	Default int
	Max     int
}

// ClampPageSize applies defaults and limits for page sizes.
func ClampPageSize(value int32, cfg PageSizeConfig) int {
	pageSize := int(value)
	if pageSize <= 0 {
		pageSize = cfg.Default
	}
	if cfg.Max > 0 && pageSize > cfg.Max {
		pageSize = cfg.Max
	}
	if pageSize <= 0 {
		pageSize = 1
	}
	return pageSize
}

// ParseOffsetToken decodes an offset page token. The empty token is offset 0.
func ParseOffsetToken(token string) (int64, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return 0, nil
	}
	offset, err := strconv.ParseInt(token, 10, 64)
	if err != nil || offset < 0 {
		return 0, fmt.Errorf("invalid page token: %q", token)
	}
	return offset, nil
}

// NextOffsetToken returns the token for the page after one that started at
// offset and returned returned items. It is empty once total is reached.
func NextOffsetToken(offset int64, returned int, total int64) string {
	next := offset + int64(returned)
	if returned <= 0 || next >= total {
		return ""
	}
	return strconv.FormatInt(next, 10)
}
