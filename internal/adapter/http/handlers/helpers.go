package handlers

import (
	"net/http"
	"strings"

	"imoveis_xpto/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

var errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid request payload", http.StatusBadRequest)

// respondError maps any error to the HTTP envelope. Unknown error
// types become a 500 without leaking internals.
func respondError(c *gin.Context, err error) {
	appErr := pkg.AsAppError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.FullPath()).Msg("[http] request failed")
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func respondInvalidPayload(c *gin.Context) {
	c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
}

func actorOrDefault(actor string) string {
	if v := strings.TrimSpace(actor); v != "" {
		return v
	}
	return "api"
}
