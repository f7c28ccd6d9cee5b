package main

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"webcafe/src/common"
	"webcafe/src/db"
	"webcafe/src/lib"
	"webcafe/src/middlewares"
	"webcafe/src/models"
	"webcafe/src/models/scopes"
	"webcafe/src/types"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func pageQuery(ctx *gin.Context) int {
	page, err := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func newsHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/news", func(ctx *gin.Context) {
			page := pageQuery(ctx)
			db := db.GetDb()
			var count int64
			if err := db.Model(&models.News{}).Count(&count).Error; err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			var articles []models.News
			if err := db.
				Model(&models.News{}).
				Scopes(scopes.NewestFirst, scopes.Paginate(page)).
				Find(&articles).
				Error; err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			totalPages := common.TotalPages(count)
			ctx.JSON(http.StatusOK, gin.H{
				"data":       articles,
				"page":       page,
				"pagination": common.Window(page, totalPages),
			})
		}).
		GET("/news/category/:category", func(ctx *gin.Context) {
			category := types.NewsCategory(ctx.Param("category"))
			categoryName, ok := types.NewsCategoryNames[category]
			if !ok {
				err := errors.New("category does not exist")
				ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			page := pageQuery(ctx)
			db := db.GetDb()
			var count int64
			if err := db.
				Model(&models.News{}).
				Where(&models.News{Category: category}).
				Count(&count).
				Error; err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			var articles []models.News
			if err := db.
				Model(&models.News{}).
				Where(&models.News{Category: category}).
				Scopes(scopes.NewestFirst, scopes.Paginate(page)).
				Find(&articles).
				Error; err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			totalPages := common.TotalPages(count)
			ctx.JSON(http.StatusOK, gin.H{
				"data":          articles,
				"category_name": categoryName,
				"page":          page,
				"pagination":    common.Window(page, totalPages),
			})
		}).
		GET("/news/posted", middlewares.ReferrerRequired, func(ctx *gin.Context) {
			sessionID := ctx.GetString("session_id")
			id, err := lib.GetPostedID(ctx, sessionID, "news")
			if err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
				return
			}
			db := db.GetDb()
			var article models.News
			if err := db.Scopes(scopes.WithID(id)).First(&article).Error; err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "news article not found"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"posted_news": article})
		})
	return g
}

func newsAdminHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/news", middlewares.SuperuserRequired(apiPrefix+"/news"), func(ctx *gin.Context) {
			var body types.CreateNewsRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			// An image and its alt text come in pairs.
			if body.Img != "" && body.Alt == "" {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "an image requires alt text"})
				return
			}
			if body.Img == "" && body.Alt != "" {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "alt text requires an image"})
				return
			}
			article := models.News{
				Category: types.NewsCategory(body.Category),
				Title:    body.Title,
				Text:     body.Text,
			}
			if body.Img != "" {
				article.Img = &body.Img
				article.Alt = &body.Alt
			}
			db := db.GetDb()
			err := db.Transaction(func(tx *gorm.DB) error {
				return tx.Create(&article).Error
			})
			if err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			sessionID := ctx.GetString("session_id")
			if err := lib.PutPostedID(ctx, sessionID, "news", article.ID); err != nil {
				log.Printf("Error saving posted news id to session: %s\n", err.Error())
			}
			ctx.Redirect(http.StatusSeeOther, apiPrefix+"/news/posted")
		})
	return g
}
