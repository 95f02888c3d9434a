package httpx

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// ParseID — положительный int64 из path-параметра name.
func ParseID(c *gin.Context, name string) (int64, bool) {
	raw := strings.TrimSpace(c.Param(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// QueryTrimmed — значение query-параметра без пробелов по краям.
func QueryTrimmed(c *gin.Context, name string) string {
	return strings.TrimSpace(c.Query(name))
}
