package main

import (
	"log"
	"net/http"

	"webcafe/src/controllers"
	"webcafe/src/lib"
	"webcafe/src/middlewares"

	"github.com/gin-gonic/gin"
)

func guestAuthRoutes(g *gin.Engine) {
	auth := apiv1Group(g).Group("/auth")
	auth.Use(middlewares.Session)
	auth.
		POST("/signup", func(ctx *gin.Context) {
			if middlewares.IsAuthenticated(ctx) {
				ctx.Redirect(http.StatusSeeOther, "/")
				return
			}
			token, status, err := controllers.AccountSignup(ctx)
			if err != nil {
				log.Printf("Error on AccountSignup: %s\n", err.Error())
				ctx.JSON(status, gin.H{"error": err.Error()})
				return
			}
			ctx.SetCookie("token", *token, 24*60*60, "/", "", false, true)
			ctx.JSON(status, gin.H{"token": token, "next": apiPrefix + "/auth/signup/complete"})
		}).
		POST("/login", func(ctx *gin.Context) {
			if middlewares.IsAuthenticated(ctx) {
				ctx.Redirect(http.StatusSeeOther, "/")
				return
			}
			token, status, err := controllers.AccountLogin(ctx)
			if err != nil {
				log.Printf("Error on AccountLogin: %s\n", err.Error())
				ctx.JSON(status, gin.H{"error": err.Error()})
				return
			}
			ctx.SetCookie("token", *token, 24*60*60, "/", "", false, true)
			ctx.JSON(status, gin.H{"token": token, "next": apiPrefix + "/auth/login/complete"})
		}).
		GET("/signup/complete", middlewares.ReferrerRequired, func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, gin.H{"message": "signup complete"})
		}).
		GET("/login/complete", middlewares.ReferrerRequired, func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, gin.H{"message": "login complete"})
		}).
		GET("/logout/complete", middlewares.ReferrerRequired, func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, gin.H{"message": "logout complete"})
		})
}

func accountHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/auth/logout", func(ctx *gin.Context) {
			sessionID := ctx.GetString("session_id")
			if sessionID != "" {
				if err := lib.ClearBookingDraft(ctx, sessionID); err != nil {
					log.Printf("Error clearing session state on logout: %s\n", err.Error())
				}
			}
			ctx.SetCookie("token", "", -1, "/", "", false, true)
			ctx.Redirect(http.StatusSeeOther, apiPrefix+"/auth/logout/complete")
		}).
		PATCH("/settings/rename", func(ctx *gin.Context) {
			status, err := controllers.AccountRename(ctx)
			if err != nil {
				log.Printf("Error on AccountRename: %s\n", err.Error())
				ctx.JSON(status, gin.H{"error": err.Error()})
				return
			}
			ctx.Redirect(http.StatusSeeOther, apiPrefix+"/settings/rename/complete")
		}).
		GET("/settings/rename/complete", middlewares.ReferrerRequired, func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, gin.H{"message": "rename complete"})
		})
	return g
}
