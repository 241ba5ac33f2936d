package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/nowshad-islam-dev/skipq-api/internal/domain/user"
	"github.com/nowshad-islam-dev/skipq-api/internal/dto"
	"github.com/nowshad-islam-dev/skipq-api/internal/httperr"
	"github.com/nowshad-islam-dev/skipq-api/internal/httpresp"
	"github.com/nowshad-islam-dev/skipq-api/internal/middleware"
	ucUser "github.com/nowshad-islam-dev/skipq-api/internal/usecase/user"
	"github.com/nowshad-islam-dev/skipq-api/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type UserHandler struct {
	register *ucUser.RegisterUser
	login    *ucUser.Login
	update   *ucUser.UpdateUser
	remove   *ucUser.DeleteUser
	list     *ucUser.ListUsers
	get      *ucUser.GetUser
	logger   *slog.Logger
}

func NewUserHandler(
	register *ucUser.RegisterUser,
	login *ucUser.Login,
	update *ucUser.UpdateUser,
	remove *ucUser.DeleteUser,
	list *ucUser.ListUsers,
	get *ucUser.GetUser,
	logger *slog.Logger,
) *UserHandler {
	return &UserHandler{
		register: register,
		login:    login,
		update:   update,
		remove:   remove,
		list:     list,
		get:      get,
		logger:   logger.With("component", "user_handler"),
	}
}

// ======================================================
// RESPONSES
// ======================================================

type loginResponse struct {
	Token    string         `json:"token"`
	SafeUser dto.PublicUser `json:"safeUser"`
}

type updateResponse struct {
	Token       string         `json:"token"`
	UpdatedUser dto.PublicUser `json:"updatedUser"`
}

// ======================================================
// READ
// ======================================================

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.list.Execute(c.Request.Context())
	if err != nil {
		respond(c, h.logger, err, nil)
		return
	}
	httpresp.List(c, users)
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	user, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		respond(c, h.logger, err, nil)
		return
	}
	httpresp.OK(c, user)
}

// ======================================================
// WRITE
// ======================================================

func (h *UserHandler) Register(c *gin.Context) {
	var req validators.NewUser
	if err := bind(c, &req); err != nil {
		bindFailed(c, err)
		return
	}

	user, err := h.register.Execute(c.Request.Context(), req)
	if err != nil {
		respond(c, h.logger, err, nil)
		return
	}
	httpresp.Created(c, user)
}

func (h *UserHandler) Login(c *gin.Context) {
	var req validators.Login
	if err := bind(c, &req); err != nil {
		httperr.BadRequest(c, domain.CodeMissingCredentials, failures[domain.CodeMissingCredentials].message)
		return
	}

	session, err := h.login.Execute(c.Request.Context(), req)
	if err != nil {
		respond(c, h.logger, err, nil)
		return
	}
	httpresp.OK(c, loginResponse{Token: session.Token, SafeUser: session.User})
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req validators.UpdateUser
	if err := bind(c, &req); err != nil {
		bindFailed(c, err)
		return
	}

	picture, err := formFile(c, "profilePicture")
	if err != nil {
		bindFailed(c, err)
		return
	}

	session, err := h.update.Execute(c.Request.Context(), ucUser.UpdateUserInput{
		ID:             id,
		Fields:         req,
		ProfilePicture: picture,
	})
	if err != nil {
		respond(c, h.logger, err, map[string]int{
			domain.CodeNotFound: http.StatusBadRequest,
		})
		return
	}
	httpresp.OK(c, updateResponse{Token: session.Token, UpdatedUser: session.User})
}

// Delete requires AuthMiddleware.
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	actorID, ok := middleware.UserID(c)
	if !ok {
		httperr.Unauthorized(c, "unauthorized", "Authentication required")
		return
	}

	if err := h.remove.Execute(c.Request.Context(), actorID, id); err != nil {
		respond(c, h.logger, err, nil)
		return
	}
	httpresp.NoContent(c)
}
