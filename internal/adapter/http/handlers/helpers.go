package handlers

import (
	"net/http"
	"strconv"

	"oficina_mecanica/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Payload inválido", http.StatusBadRequest)

// parsePagination reads ?page= and ?size=, falling back to 1/10. Values
// below 1 get the same fallback, mirroring the use case normalization so the
// response envelope echoes what was actually served.
func parsePagination(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", "10"))
	if err != nil || size < 1 {
		size = 10
	}
	return page, size
}

func respondError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
