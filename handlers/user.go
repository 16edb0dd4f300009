package handlers

import (
	"errors"
	"net/http"

	"dentax/models"
	"dentax/services/user"
	"dentax/utils"

	"github.com/gin-gonic/gin"
)

// UserHandler serves the user and token endpoints.
type UserHandler struct {
	Svc user.UserService
}

func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{Svc: svc}
}

// IssueJWT signs an access token for a known email; unknown emails get a 403
// with an empty token.
func (h *UserHandler) IssueJWT(c *gin.Context) {
	email := c.Query("email")

	token, err := h.Svc.IssueToken(email)
	if err != nil {
		if errors.Is(err, user.ErrUnknownEmail) {
			c.JSON(http.StatusForbidden, gin.H{"accessToken": ""})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to issue token", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"accessToken": token})
}

// ListUsers returns every user.
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.Svc.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load users", err.Error())
		return
	}
	// Empty lists serialize as [] rather than null.
	if users == nil {
		users = []models.User{}
	}
	c.JSON(http.StatusOK, users)
}

// CheckAdmin reports whether the given email belongs to an admin.
func (h *UserHandler) CheckAdmin(c *gin.Context) {
	email := c.Param("email")

	isAdmin, err := h.Svc.IsAdmin(email)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to check admin role", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"isAdmin": isAdmin})
}

// CreateUser stores a new user.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var u models.User
	if err := c.ShouldBindJSON(&u); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	id, err := h.Svc.Create(&u)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create user", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"acknowledged": true,
		"insertedId":   id,
	})
}

// PromoteAdmin upserts the admin role onto the user with the given id.
func (h *UserHandler) PromoteAdmin(c *gin.Context) {
	id := c.Param("id")

	if err := h.Svc.Promote(id); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to promote user", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true})
}
