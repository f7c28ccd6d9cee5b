package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"webcafe/src/lib"
	"webcafe/src/middlewares"
	"webcafe/src/types"

	"github.com/gin-gonic/gin"
)

func contactHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/contact", func(ctx *gin.Context) {
			var body types.ContactRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			houseAddress := os.Getenv("MAIL_FROM")
			input := &lib.SendMailInput{
				From:     houseAddress,
				FromName: "WebCafe contact form",
				To:       []string{houseAddress},
				ReplyTo:  body.Email,
				Subject:  fmt.Sprintf("Subject: %s", body.Subject),
				Body: fmt.Sprintf(
					"Message: %s\n\nCustomer name: %s\nCustomer email: %s",
					body.Message, body.FullName, body.Email,
				),
			}
			if err := lib.SendMail(input); err != nil {
				log.Printf("Error sending contact mail: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "could not send message"})
				return
			}
			ctx.Redirect(http.StatusSeeOther, apiPrefix+"/contact/complete")
		}).
		GET("/contact/complete", middlewares.ReferrerRequired, func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, gin.H{"message": "message sent"})
		})
	return g
}
