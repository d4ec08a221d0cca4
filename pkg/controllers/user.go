package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chatflow/config"
	"chatflow/pkg/entities"
	"chatflow/pkg/middlewares"
	"chatflow/pkg/usecases"
	"chatflow/utilities"
)

type UserController struct {
	router      *gin.RouterGroup
	useCases    usecases.UserUseCaseImply
	middleWares *middlewares.Middlewares
}

func NewUserController(
	router *gin.RouterGroup, userUseCase usecases.UserUseCaseImply, middleWare *middlewares.Middlewares,
) *UserController {
	return &UserController{
		router:      router,
		useCases:    userUseCase,
		middleWares: middleWare,
	}
}

// InitRoutes initializes the routes for the UserController.
func (c *UserController) InitRoutes() {
	v1 := c.router.Group(config.GetConfig().Server.APIVersion)
	{
		v1.POST("/auth/login", c.Login)
		v1.POST("/auth/signup", c.Signup)
		v1.POST("/auth/logout", c.Logout)
		v1.GET("/auth/session", c.GetSession)
	}

	loggedIn := v1.Group("", c.middleWares.RequireSession)
	{
		loggedIn.PUT("/auth/profile", c.UpdateProfile)
	}
}

func (c *UserController) Login(ctx *gin.Context) {
	log := utilities.NewLogger("Login")
	log.Info("Received Login request")

	var request entities.LoginRequest
	if err := ctx.BindJSON(&request); err != nil {
		ctx.JSON(
			http.StatusBadRequest, entities.ErrorResponse{
				StatusCode: http.StatusBadRequest,
				Error:      "failed to login",
				Message:    err.Error(),
			},
		)
		return
	}

	if !c.useCases.Login(ctx, request.Email, request.Password) {
		ctx.JSON(
			http.StatusUnauthorized, entities.ErrorResponse{
				StatusCode: http.StatusUnauthorized,
				Error:      "failed to login",
				Message:    "Invalid email or password",
			},
		)
		return
	}

	ctx.JSON(
		http.StatusOK, entities.Response{
			StatusCode: http.StatusOK,
			Message:    "Logged in successfully.",
			Data:       c.useCases.Session(),
		},
	)
}

func (c *UserController) Signup(ctx *gin.Context) {
	log := utilities.NewLogger("Signup")
	log.Info("Received Signup request")

	var request entities.SignupRequest
	if err := ctx.BindJSON(&request); err != nil {
		ctx.JSON(
			http.StatusBadRequest, entities.ErrorResponse{
				StatusCode: http.StatusBadRequest,
				Error:      "failed to sign up",
				Message:    err.Error(),
			},
		)
		return
	}

	if !c.useCases.Signup(ctx, request) {
		ctx.JSON(
			http.StatusConflict, entities.ErrorResponse{
				StatusCode: http.StatusConflict,
				Error:      "failed to sign up",
				Message:    "Username or email already exists",
			},
		)
		return
	}

	ctx.JSON(
		http.StatusOK, entities.Response{
			StatusCode: http.StatusCreated,
			Message:    "Signed up successfully.",
			Data:       c.useCases.Session(),
		},
	)
}

func (c *UserController) Logout(ctx *gin.Context) {
	log := utilities.NewLogger("Logout")
	log.Info("Received Logout request")

	c.useCases.Logout(ctx)

	ctx.JSON(
		http.StatusOK, entities.Response{
			StatusCode: http.StatusOK,
			Message:    "Logged out successfully.",
		},
	)
}

func (c *UserController) GetSession(ctx *gin.Context) {
	ctx.JSON(
		http.StatusOK, entities.Response{
			StatusCode: http.StatusOK,
			Message:    "Session fetched successfully.",
			Data:       c.useCases.Session(),
		},
	)
}

func (c *UserController) UpdateProfile(ctx *gin.Context) {
	log := utilities.NewLogger("UpdateProfile")
	log.Info("Received UpdateProfile request")

	var request entities.ProfileUpdate
	if err := ctx.BindJSON(&request); err != nil {
		ctx.JSON(
			http.StatusBadRequest, entities.ErrorResponse{
				StatusCode: http.StatusBadRequest,
				Error:      "failed to update profile",
				Message:    err.Error(),
			},
		)
		return
	}

	c.useCases.UpdateProfile(ctx, request)

	ctx.JSON(
		http.StatusOK, entities.Response{
			StatusCode: http.StatusOK,
			Message:    "Profile updated successfully.",
			Data:       c.useCases.Session(),
		},
	)
}
