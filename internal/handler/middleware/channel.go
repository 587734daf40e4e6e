package middleware

import (
	"strings"

	"vet-scheduler/internal/domain/appointment"

	"github.com/gin-gonic/gin"
)

// HeaderClientChannel names the client a request came from. The mobile app
// sends "mobile"; anything else is treated as the web client.
const HeaderClientChannel = "X-Client-Channel"

func GetOrigin(c *gin.Context) appointment.Origin {
	return appointment.ParseOrigin(strings.ToLower(strings.TrimSpace(c.GetHeader(HeaderClientChannel))))
}
