package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gossip/internal/services"
)

type UserHandler struct {
	service services.UserService
}

func NewUserHandler(service services.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// @Summary      Get a profile by id
// @Tags         Users
// @Produce      json
// @Param        id   path      int  true  "Account ID"
// @Success      200  {object}  models.Profile
// @Failure      404  {object}  map[string]string
// @Security     BearerAuth
// @Router       /users/{id} [get]
func (h *UserHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}

	profile, err := h.service.GetProfileByID(id)
	if err != nil {
		log.Printf("[users][get] id=%d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Lookup failed"})
		return
	}
	if profile == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// @Summary      Get a profile by email
// @Tags         Users
// @Produce      json
// @Param        email  path      string  true  "Email"
// @Success      200    {object}  models.Profile
// @Failure      404    {object}  map[string]string
// @Security     BearerAuth
// @Router       /users/by-email/{email} [get]
func (h *UserHandler) GetByEmail(c *gin.Context) {
	email := c.Param("email")

	profile, err := h.service.GetProfileByEmail(email)
	if err != nil {
		log.Printf("[users][get-by-email] %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Lookup failed"})
		return
	}
	if profile == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// @Summary      Get the caller's own profile
// @Tags         Users
// @Produce      json
// @Success      200  {object}  models.Profile
// @Failure      401  {object}  map[string]string
// @Security     BearerAuth
// @Router       /users/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	accountID, ok := getAccountID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}

	profile, err := h.service.GetProfileByID(accountID)
	if err != nil {
		log.Printf("[users][me] account_id=%d: %v", accountID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Lookup failed"})
		return
	}
	if profile == nil {
		// token for an account that no longer resolves
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}
	c.JSON(http.StatusOK, profile)
}
