package controllers

import (
	"errors"
	"net/http"

	"shopapi/app/resources"
	"shopapi/app/services"
	"shopapi/pkg/bind"
	"shopapi/pkg/response"
)

type AuthController struct {
	service *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{service: service}
}

func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var in services.RegisterInput
	if err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	user, token, errs, err := c.service.Register(in)
	if err != nil {
		fail(w, r, err)
		return
	}
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	response.Created(w, map[string]interface{}{
		"user":  resources.NewUser(user),
		"token": token,
	})
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var in services.LoginInput
	if err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	user, token, err := c.service.Login(in)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			response.Error(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		fail(w, r, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"user":  resources.NewUser(user),
		"token": token,
	})
}
