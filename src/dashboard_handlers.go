package main

import (
	"net/http"
	"time"

	"github.com/Ja5ya/wanderlust-whisper-drafts-sub000/src/common"
	"github.com/gin-gonic/gin"
)

func dashboardHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/dashboard/stats", func(ctx *gin.Context) {
			if cached := common.GetCachedDashboardStats(); cached != nil {
				ctx.JSON(http.StatusOK, gin.H{"data": cached, "cached": true})
				return
			}
			stats, err := common.ComputeDashboardStats(time.Now())
			if err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			common.CacheDashboardStats(stats)
			ctx.JSON(http.StatusOK, gin.H{"data": stats, "cached": false})
		})
	return g
}
