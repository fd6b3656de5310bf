package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/slyt3/fyyur/internal/config"
	"github.com/slyt3/fyyur/internal/infra/flash"
	"github.com/slyt3/fyyur/internal/pkg/utils"
)

const sessionKeyPrefix = "fl_"

// FlashSession identifies the browser with a random cookie and puts a flash
// bag bound to it in the context.
func FlashSession(cfg *config.Config, store flash.Store) gin.HandlerFunc {
	name := cfg.Flash.CookieName
	return func(c *gin.Context) {
		sid, err := c.Cookie(name)
		fresh := err != nil || len(sid) <= len(sessionKeyPrefix)
		if fresh {
			sid, err = utils.GenerateKey(sessionKeyPrefix)
			if err != nil {
				c.AbortWithStatus(http.StatusInternalServerError)
				return
			}
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(name, sid, 0, "/", "", cfg.App.Env == gin.ReleaseMode, true)
		}

		span := trace.SpanFromContext(c.Request.Context())
		if span.SpanContext().IsValid() {
			span.SetAttributes(attribute.Bool("flash.new_session", fresh))
		}

		c.Set(flash.ContextKey, flash.NewBag(store, sid))
		c.Next()
	}
}
