package service

import (
	"context"

	"portfolio/logutils"
	"portfolio/response"

	"github.com/gin-gonic/gin"
)

// Pinger reports whether the database connection is alive.
type Pinger interface {
	Ping(ctx context.Context) error
}

// RegisterHealth mounts the liveness probe.
func RegisterHealth(r gin.IRouter, p Pinger) {
	r.GET("/healthz", func(c *gin.Context) {
		if err := p.Ping(c.Request.Context()); err != nil {
			logutils.Log.Error("healthz: ", err)
			response.Error(c, response.Upstream, "database unreachable")
			return
		}
		response.OK(c, gin.H{"status": "ok"})
	})
}
