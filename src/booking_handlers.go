package main

import (
	"log"
	"net/http"
	"time"

	"webcafe/src/common"
	"webcafe/src/db"
	"webcafe/src/lib"
	"webcafe/src/middlewares"
	"webcafe/src/models"
	"webcafe/src/models/scopes"
	"webcafe/src/types"

	"github.com/gin-gonic/gin"
)

func bookingHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/booking", func(ctx *gin.Context) {
			availability := common.ComputeAvailability(time.Now())
			ctx.JSON(http.StatusOK, gin.H{"data": availability})
		}).
		POST("/booking", func(ctx *gin.Context) {
			var body types.CreateBookingRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": bookingValidationMessage(err)})
				return
			}
			if body.NumberOfPeople == 0 {
				body.NumberOfPeople = 1
			}
			draft := types.BookingDraft{
				Name:           body.Name,
				Date:           body.Date,
				Time:           body.Time,
				Email:          body.Email,
				PhoneNumber:    body.PhoneNumber,
				NumberOfPeople: body.NumberOfPeople,
			}
			sessionID := ctx.GetString("session_id")
			if err := lib.PutBookingDraft(ctx, sessionID, &draft); err != nil {
				log.Printf("Error saving booking draft for session %s: %s\n", sessionID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
				return
			}
			ctx.Redirect(http.StatusSeeOther, apiPrefix+"/booking/confirm")
		}).
		GET("/booking/confirm", middlewares.ReferrerRequired, func(ctx *gin.Context) {
			sessionID := ctx.GetString("session_id")
			draft, err := lib.GetBookingDraft(ctx, sessionID)
			if err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
				return
			}
			if draft == nil {
				ctx.Redirect(http.StatusSeeOther, apiPrefix+"/booking")
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"booking_data": draft})
		}).
		POST("/booking/confirm", middlewares.ReferrerRequired, func(ctx *gin.Context) {
			sessionID := ctx.GetString("session_id")
			draft, err := lib.GetBookingDraft(ctx, sessionID)
			if err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
				return
			}
			// No pending draft is a recoverable state, not an error:
			// silently send the caller back to the intake step.
			if draft == nil {
				ctx.Redirect(http.StatusSeeOther, apiPrefix+"/booking")
				return
			}

			// Mail goes out before the record is written. A delivery
			// failure must never block the reservation.
			if err := common.SendBookingConfirmation(draft); err != nil {
				log.Printf("Booking confirmation mail failed for session %s, committing anyway\n", sessionID)
			}

			if _, err := common.CommitDraft(draft); err != nil {
				log.Printf("Error committing booking draft for session %s: %s\n", sessionID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
				return
			}
			if err := lib.ClearBookingDraft(ctx, sessionID); err != nil {
				log.Printf("Error clearing booking draft for session %s: %s\n", sessionID, err.Error())
			}
			ctx.Redirect(http.StatusSeeOther, apiPrefix+"/booking/complete")
		}).
		GET("/booking/complete", middlewares.ReferrerRequired, func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, gin.H{"message": "booking complete"})
		})
	return g
}

func bookingListHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	listBookings := func(ctx *gin.Context, period string) {
		start, end := common.PeriodRange(period, time.Now())
		page := pageQuery(ctx)

		db := db.GetDb()
		var count int64
		if err := db.
			Model(&models.Booking{}).
			Scopes(scopes.DateBetween(start, end)).
			Count(&count).
			Error; err != nil {
			ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		var bookings []models.Booking
		if err := db.
			Model(&models.Booking{}).
			Scopes(scopes.DateBetween(start, end), scopes.ByVisitNewestFirst, scopes.Paginate(page)).
			Find(&bookings).
			Error; err != nil {
			ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		totalPages := common.TotalPages(count)
		ctx.JSON(http.StatusOK, gin.H{
			"booking_list":    bookings,
			"selected_period": period,
			"page":            page,
			"pagination":      common.Window(page, totalPages),
		})
	}

	g.
		GET("/booking/list", middlewares.SuperuserRequired(apiPrefix+"/booking"), func(ctx *gin.Context) {
			page := pageQuery(ctx)
			db := db.GetDb()
			var count int64
			if err := db.Model(&models.Booking{}).Count(&count).Error; err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			var bookings []models.Booking
			if err := db.
				Model(&models.Booking{}).
				Scopes(scopes.ByVisitNewestFirst, scopes.Paginate(page)).
				Find(&bookings).
				Error; err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			totalPages := common.TotalPages(count)
			ctx.JSON(http.StatusOK, gin.H{
				"booking_list": bookings,
				"page":         page,
				"pagination":   common.Window(page, totalPages),
			})
		}).
		GET("/booking/list/:period", middlewares.SuperuserRequired(apiPrefix+"/booking"), func(ctx *gin.Context) {
			listBookings(ctx, ctx.Param("period"))
		})
	return g
}
