package main

import (
	"errors"
	"log"
	"net/http"

	"webcafe/src/db"
	"webcafe/src/lib"
	"webcafe/src/middlewares"
	"webcafe/src/models"
	"webcafe/src/models/scopes"
	"webcafe/src/types"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func menuHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/menu", func(ctx *gin.Context) {
			db := db.GetDb()
			var items []models.Menu
			if err := db.
				Model(&models.Menu{}).
				Scopes(scopes.NewestFirst).
				Find(&items).
				Error; err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": items, "count": len(items)})
		}).
		GET("/menu/posted", middlewares.ReferrerRequired, func(ctx *gin.Context) {
			sessionID := ctx.GetString("session_id")
			id, err := lib.GetPostedID(ctx, sessionID, "menu")
			if err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
				return
			}
			db := db.GetDb()
			var item models.Menu
			if err := db.Scopes(scopes.WithID(id)).First(&item).Error; err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "menu item not found"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"posted_menu": item})
		}).
		GET("/menu/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			db := db.GetDb()
			var item models.Menu
			if err := db.
				Model(&models.Menu{}).
				Scopes(scopes.WithID(params.ID)).
				Preload("Reviews").
				First(&item).
				Error; err != nil {
				err := errors.New("menu item not found")
				ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": item})
		})
	return g
}

func menuAdminHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/menu", middlewares.SuperuserRequired(apiPrefix+"/menu"), func(ctx *gin.Context) {
			var body types.CreateMenuRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			item := models.Menu{
				Title: body.Title,
				Img:   body.Img,
				Alt:   body.Alt,
				Price: body.Price,
			}
			db := db.GetDb()
			err := db.Transaction(func(tx *gorm.DB) error {
				return tx.Create(&item).Error
			})
			if err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			sessionID := ctx.GetString("session_id")
			if err := lib.PutPostedID(ctx, sessionID, "menu", item.ID); err != nil {
				log.Printf("Error saving posted menu id to session: %s\n", err.Error())
			}
			ctx.Redirect(http.StatusSeeOther, apiPrefix+"/menu/posted")
		})
	return g
}
