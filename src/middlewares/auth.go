package middlewares

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"

	"webcafe/src/db"
	"webcafe/src/models"
	"webcafe/src/types"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var jwtKey = []byte(os.Getenv("JWT_SECRET"))

func tokenFromRequest(ctx *gin.Context) string {
	bearerToken := ctx.Request.Header.Get("Authorization")
	if strings.HasPrefix(bearerToken, "Bearer ") {
		return strings.Split(bearerToken, " ")[1]
	}
	if cookie, err := ctx.Cookie("token"); err == nil {
		return cookie
	}
	return ""
}

func AuthMiddleware(ctx *gin.Context) {
	reqToken := tokenFromRequest(ctx)
	if reqToken == "" {
		ctx.AbortWithStatus(401)
		return
	}
	claims := &types.Claims{}
	tkn, err := jwt.ParseWithClaims(reqToken, claims, func(t *jwt.Token) (any, error) {
		return jwtKey, nil
	})
	if err != nil {
		log.Printf("token error: %s\n", err.Error())
		ctx.AbortWithStatus(401)
		return
	}
	if !tkn.Valid {
		ctx.AbortWithStatus(401)
		return
	}

	db := db.GetDb()
	var user models.User
	uid, err := strconv.Atoi(claims.Subject)
	if err != nil {
		log.Println("error parsing claims:", err.Error())
		ctx.AbortWithStatus(401)
		return
	}
	db.Model(&models.User{}).Where(&models.User{ID: uint(uid)}).Find(&user)

	if uint(uid) != user.ID || user.ID < 1 {
		ctx.AbortWithStatus(401)
		return
	}
	ctx.Set("id", user.ID)
	ctx.Set("username", user.Username)
	ctx.Set("superuser", user.Superuser)
}

// IsAuthenticated reports whether the request carries a valid token,
// without gating anything. Signup and login use it to bounce users who
// are already signed in.
func IsAuthenticated(ctx *gin.Context) bool {
	reqToken := tokenFromRequest(ctx)
	if reqToken == "" {
		return false
	}
	claims := &types.Claims{}
	tkn, err := jwt.ParseWithClaims(reqToken, claims, func(t *jwt.Token) (any, error) {
		return jwtKey, nil
	})
	return err == nil && tkn.Valid
}

// SuperuserRequired gates content creation. Non-superusers are sent back
// to the public page, mirroring a login_url redirect rather than a 403.
func SuperuserRequired(redirectTo string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !ctx.GetBool("superuser") {
			ctx.Redirect(http.StatusSeeOther, redirectTo)
			ctx.Abort()
			return
		}
	}
}
