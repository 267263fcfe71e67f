package handler

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/itseyans/ruric/internal/transport/http/response"
)

// internalError hides store detail from the caller; the full error goes to
// the server log only.
func internalError(c *gin.Context, operation string, err error) {
	log.Printf("%s failed: %v", operation, err)
	response.Error(c, http.StatusInternalServerError, "Internal Server Error")
}

func uintParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	parsed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || parsed == 0 {
		response.Error(c, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return uint(parsed), true
}
