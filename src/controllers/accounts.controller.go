package controllers

import (
	"errors"
	"log"
	"net/http"

	"webcafe/src/db"
	"webcafe/src/models"
	"webcafe/src/types"
	"webcafe/src/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func AccountSignup(ctx *gin.Context) (token *string, status int, err error) {
	var body types.SignupRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return nil, http.StatusBadRequest, err
	}

	d := db.GetDb()
	var count int64
	if err := d.Model(&models.User{}).Where(&models.User{Username: body.Username}).Count(&count).Error; err != nil {
		return nil, http.StatusInternalServerError, err
	}
	if count > 0 {
		return nil, http.StatusBadRequest, errors.New("this username is already taken, please choose another one")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing password: %s\n", err.Error())
		return nil, http.StatusInternalServerError, err
	}

	user := models.User{
		Username:     body.Username,
		PasswordHash: string(hash),
	}
	err = d.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&user).Error
	})
	if err != nil {
		log.Printf("Error creating user %s: %s\n", body.Username, err.Error())
		return nil, http.StatusBadRequest, err
	}

	jwt, err := utils.GenerateJWT(user.Username, user.ID, user.Superuser)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}
	return &jwt, http.StatusCreated, nil
}

func AccountLogin(ctx *gin.Context) (token *string, status int, err error) {
	var body types.LoginRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return nil, http.StatusBadRequest, err
	}

	badCredentials := errors.New("username or password is incorrect")

	d := db.GetDb()
	var user models.User
	if err := d.
		Model(&models.User{}).
		Where(&models.User{Username: body.Username}).
		First(&user).
		Error; err != nil {
		return nil, http.StatusBadRequest, badCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(body.Password)); err != nil {
		return nil, http.StatusBadRequest, badCredentials
	}

	jwt, err := utils.GenerateJWT(user.Username, user.ID, user.Superuser)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}
	return &jwt, http.StatusOK, nil
}

func AccountRename(ctx *gin.Context) (status int, err error) {
	var body types.RenameRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return http.StatusBadRequest, err
	}

	userId := ctx.GetUint("id")
	d := db.GetDb()
	var count int64
	if err := d.Model(&models.User{}).Where(&models.User{Username: body.Username}).Count(&count).Error; err != nil {
		return http.StatusInternalServerError, err
	}
	if count > 0 {
		return http.StatusBadRequest, errors.New("this username is already taken, please choose another one")
	}

	err = d.Transaction(func(tx *gorm.DB) error {
		return tx.
			Model(&models.User{}).
			Where("id", userId).
			Update("username", body.Username).
			Error
	})
	if err != nil {
		log.Printf("Error renaming user [%d]: %s\n", userId, err.Error())
		return http.StatusBadRequest, err
	}
	return http.StatusOK, nil
}
