package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"

	"chatflow/config"
	"chatflow/pkg/entities"
	"chatflow/pkg/middlewares"
	"chatflow/pkg/repo/driver/medium"
	"chatflow/pkg/usecases"
	"chatflow/utilities"
)

type ChatController struct {
	router      *gin.RouterGroup
	useCases    usecases.ChatUseCaseImply
	middleWares *middlewares.Middlewares
	ws          *medium.EventSocket
}

func NewChatController(
	router *gin.RouterGroup, chatUseCase usecases.ChatUseCaseImply, ws *medium.EventSocket,
	middleWare *middlewares.Middlewares,
) *ChatController {
	return &ChatController{
		router:      router,
		useCases:    chatUseCase,
		middleWares: middleWare,
		ws:          ws,
	}
}

// InitRoutes initializes the routes for the ChatController.
func (c *ChatController) InitRoutes() {
	v1 := c.router.Group(config.GetConfig().Server.APIVersion)
	v1.GET("/ws/events", c.WebsocketHandler)

	loggedIn := v1.Group("", c.middleWares.RequireSession)
	{
		loggedIn.GET("/chats", c.GetChats)
		loggedIn.POST("/chats", c.CreateChat)
		loggedIn.GET("/chats/:chat_id/messages", c.GetMessages)
		loggedIn.POST("/chats/:chat_id/messages", c.SendMessage)
		loggedIn.DELETE("/chats/:chat_id/messages/:message_id", c.DeleteMessage)
		loggedIn.POST("/chats/:chat_id/mute", c.MuteChat)
		loggedIn.POST("/chats/:chat_id/unmute", c.UnmuteChat)
		loggedIn.POST("/chats/:chat_id/seen", c.MarkMessagesAsSeen)

		loggedIn.GET("/users/candidates", c.GetNewChatCandidates)
		loggedIn.GET("/users/blocked", c.GetBlockedUsers)
		loggedIn.POST("/users/:user_id/block", c.BlockUser)
		loggedIn.POST("/users/:user_id/unblock", c.UnblockUser)
	}
}

func (c *ChatController) GetChats(ctx *gin.Context) {
	log := utilities.NewLogger("GetChats")
	log.Info("Received GetChats request")

	search := ctx.Query("search")
	res := c.useCases.ChatList(ctx, search)

	ctx.JSON(
		http.StatusOK, entities.Response{
			StatusCode: http.StatusOK,
			Message:    "Chat list retrieved successfully.",
			Data:       res,
		},
	)
}

func (c *ChatController) CreateChat(ctx *gin.Context) {
	log := utilities.NewLogger("CreateChat")
	log.Info("Received CreateChat request")

	var request entities.CreateChatRequest
	if err := ctx.BindJSON(&request); err != nil {
		ctx.JSON(
			http.StatusBadRequest, entities.ErrorResponse{
				StatusCode: http.StatusBadRequest,
				Error:      "failed to create chat",
				Message:    err.Error(),
			},
		)
		return
	}

	chatID, ok := c.useCases.CreateChat(ctx, request.ParticipantIDs, request.Type, request.Name)
	if !ok {
		ctx.JSON(
			http.StatusBadRequest, entities.ErrorResponse{
				StatusCode: http.StatusBadRequest,
				Error:      "failed to create chat",
				Message:    "Group chats need a name",
			},
		)
		return
	}

	ctx.JSON(
		http.StatusOK, entities.Response{
			StatusCode: http.StatusCreated,
			Message:    "Chat created successfully.",
			Data:       map[string]string{"chat_id": chatID},
		},
	)
}

func (c *ChatController) GetMessages(ctx *gin.Context) {
	log := utilities.NewLogger("GetMessages")
	log.Info("Received GetMessages request")

	chatID := ctx.Param("chat_id")
	res := c.useCases.ChatMessages(ctx, chatID)

	// optional tail limit
	if limit := cast.ToInt(ctx.Query("limit")); limit > 0 && limit < len(res) {
		res = res[len(res)-limit:]
	}

	ctx.JSON(
		http.StatusOK, entities.Response{
			StatusCode: http.StatusOK,
			Message:    "Messages retrieved successfully.",
			Data:       res,
		},
	)
}

func (c *ChatController) SendMessage(ctx *gin.Context) {
	log := utilities.NewLogger("SendMessage")
	log.Info("Received SendMessage request")

	chatID := ctx.Param("chat_id")

	var request entities.SendMessageRequest
	if err := ctx.BindJSON(&request); err != nil {
		ctx.JSON(
			http.StatusBadRequest, entities.ErrorResponse{
				StatusCode: http.StatusBadRequest,
				Error:      "failed to send message",
				Message:    err.Error(),
			},
		)
		return
	}

	message, ok := c.useCases.SendMessage(ctx, chatID, request.Content, request.Type)
	if !ok {
		ctx.JSON(
			http.StatusBadRequest, entities.ErrorResponse{
				StatusCode: http.StatusBadRequest,
				Error:      "failed to send message",
				Message:    "Message content must not be empty",
			},
		)
		return
	}

	ctx.JSON(
		http.StatusOK, entities.Response{
			StatusCode: http.StatusCreated,
			Message:    "Message sent successfully.",
			Data:       message,
		},
	)
}

func (c *ChatController) DeleteMessage(ctx *gin.Context) {
	log := utilities.NewLogger("DeleteMessage")
	log.Info("Received DeleteMessage request")

	chatID := ctx.Param("chat_id")
	messageID := ctx.Param("message_id")

	c.useCases.DeleteMessage(ctx, messageID, chatID)

	ctx.JSON(
		http.StatusOK, entities.Response{
			StatusCode: http.StatusOK,
			Message:    "Message deleted successfully.",
		},
	)
}

func (c *ChatController) MuteChat(ctx *gin.Context) {
	log := utilities.NewLogger("MuteChat")
	log.Info("Received MuteChat request")

	c.useCases.MuteChat(ctx, ctx.Param("chat_id"))

	ctx.JSON(
		http.StatusOK, entities.Response{
			StatusCode: http.StatusOK,
			Message:    "Chat muted successfully.",
		},
	)
}

func (c *ChatController) UnmuteChat(ctx *gin.Context) {
	log := utilities.NewLogger("UnmuteChat")
	log.Info("Received UnmuteChat request")

	c.useCases.UnmuteChat(ctx, ctx.Param("chat_id"))

	ctx.JSON(
		http.StatusOK, entities.Response{
			StatusCode: http.StatusOK,
			Message:    "Chat unmuted successfully.",
		},
	)
}

func (c *ChatController) MarkMessagesAsSeen(ctx *gin.Context) {
	log := utilities.NewLogger("MarkMessagesAsSeen")
	log.Info("Received MarkMessagesAsSeen request")

	c.useCases.MarkMessagesAsSeen(ctx, ctx.Param("chat_id"))

	ctx.JSON(
		http.StatusOK, entities.Response{
			StatusCode: http.StatusOK,
			Message:    "Messages marked as seen.",
		},
	)
}

func (c *ChatController) GetNewChatCandidates(ctx *gin.Context) {
	log := utilities.NewLogger("GetNewChatCandidates")
	log.Info("Received GetNewChatCandidates request")

	search := ctx.Query("search")
	res := c.useCases.NewChatCandidates(ctx, search)

	ctx.JSON(
		http.StatusOK, entities.Response{
			StatusCode: http.StatusOK,
			Message:    "Candidates retrieved successfully.",
			Data:       res,
		},
	)
}

func (c *ChatController) GetBlockedUsers(ctx *gin.Context) {
	log := utilities.NewLogger("GetBlockedUsers")
	log.Info("Received GetBlockedUsers request")

	ctx.JSON(
		http.StatusOK, entities.Response{
			StatusCode: http.StatusOK,
			Message:    "Blocked users retrieved successfully.",
			Data:       c.useCases.BlockedUsers(ctx),
		},
	)
}

func (c *ChatController) BlockUser(ctx *gin.Context) {
	log := utilities.NewLogger("BlockUser")
	log.Info("Received BlockUser request")

	userID := ctx.Param("user_id")
	if userID == "" {
		ctx.JSON(
			http.StatusBadRequest, entities.ErrorResponse{
				StatusCode: http.StatusBadRequest,
				Error:      "failed to block user",
				Message:    "please provide user_id parameter",
			},
		)
		return
	}

	c.useCases.BlockUser(ctx, userID)

	ctx.JSON(
		http.StatusOK, entities.Response{
			StatusCode: http.StatusOK,
			Message:    "User blocked successfully.",
		},
	)
}

func (c *ChatController) UnblockUser(ctx *gin.Context) {
	log := utilities.NewLogger("UnblockUser")
	log.Info("Received UnblockUser request")

	userID := ctx.Param("user_id")
	if userID == "" {
		ctx.JSON(
			http.StatusBadRequest, entities.ErrorResponse{
				StatusCode: http.StatusBadRequest,
				Error:      "failed to unblock user",
				Message:    "please provide user_id parameter",
			},
		)
		return
	}

	c.useCases.UnblockUser(ctx, userID)

	ctx.JSON(
		http.StatusOK, entities.Response{
			StatusCode: http.StatusOK,
			Message:    "User unblocked successfully.",
		},
	)
}

func (c *ChatController) WebsocketHandler(ctx *gin.Context) {
	upgrader := medium.Upgrade()
	wsConn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		logrus.WithError(err).Error("failed to upgrade websocket connection")
		return
	}

	c.ws.Add(wsConn)
}
