package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ssmapp/safety_management_system/internal/models"
)

// @Summary Register a new account
// @Description Self-register a new account. Self-registered accounts always get the worker role.
// @Tags Auth
// @Accept json
// @Produce json
// @Param registration body RegisterRequest true "Registration request"
// @Success 201 {object} UserResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 409 {object} map[string]string "Email already taken"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/register [post]
func (h *Handler) register(c *gin.Context) {
	var input RegisterRequest
	log := h.logger.WithField("method", "register")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.services.Auth.Register(c.Request.Context(), models.RegisterInput{
		Email:        input.Email,
		Password:     input.Password,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		EmployeeCode: input.EmployeeCode,
		PhoneNumber:  input.PhoneNumber,
	})
	if err != nil {
		log.WithError(err).Warn("Failed to register user in service")
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToUserResponse(user))
}

// @Summary Log in
// @Description Exchange email and password for a session token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login request"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var input LoginRequest
	log := h.logger.WithField("method", "login")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, user, err := h.services.Auth.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		log.WithError(err).Warn("Failed to log in")
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, LoginResponse{
		Token: session.Token,
		User:  ModelToUserResponse(user),
	})
}

// @Summary Log out
// @Description Invalidate the current session token.
// @Tags Auth
// @Produce json
// @Security SessionAuth
// @Success 200 "OK"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/logout [post]
func (h *Handler) logout(c *gin.Context) {
	log := h.logger.WithField("method", "logout")

	session := sessionFrom(c)
	if err := h.services.Auth.Logout(c.Request.Context(), session.Token); err != nil {
		log.WithError(err).Error("Failed to log out in service")
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Get current user
// @Description Get the profile of the authenticated user.
// @Tags Auth
// @Produce json
// @Security SessionAuth
// @Success 200 {object} UserResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/me [get]
func (h *Handler) currentUser(c *gin.Context) {
	log := h.logger.WithField("method", "currentUser")

	user, err := h.services.Auth.CurrentUser(c.Request.Context(), sessionFrom(c))
	if err != nil {
		log.WithError(err).Warn("Failed to get current user from service")
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelToUserResponse(user))
}

// @Summary Update own profile
// @Description Update first name, last name and phone number of the authenticated user.
// @Tags Auth
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param profile body UpdateProfileRequest true "Profile update request"
// @Success 200 {object} UserResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/profile [put]
func (h *Handler) updateProfile(c *gin.Context) {
	var input UpdateProfileRequest
	log := h.logger.WithField("method", "updateProfile")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.services.Auth.UpdateProfile(c.Request.Context(), sessionFrom(c), input.FirstName, input.LastName, input.PhoneNumber)
	if err != nil {
		log.WithError(err).Error("Failed to update profile in service")
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelToUserResponse(user))
}

// @Summary List users
// @Description Get all users. Requires the user management permission.
// @Tags Users
// @Produce json
// @Security SessionAuth
// @Success 200 {array} UserResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Operation not permitted"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users [get]
func (h *Handler) listUsers(c *gin.Context) {
	log := h.logger.WithField("method", "listUsers")

	users, err := h.services.Users.ListUsers(c.Request.Context(), sessionFrom(c))
	if err != nil {
		log.WithError(err).Warn("Failed to list users from service")
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToUserResponses(users))
}

// @Summary Create a user
// @Description Create a user with an explicit role. Requires the user management permission.
// @Tags Users
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param user body CreateUserRequest true "User creation request"
// @Success 201 {object} UserResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Operation not permitted"
// @Failure 409 {object} map[string]string "Email already taken"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users [post]
func (h *Handler) createUser(c *gin.Context) {
	var input CreateUserRequest
	log := h.logger.WithField("method", "createUser")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.services.Users.CreateUser(c.Request.Context(), sessionFrom(c), models.CreateUserInput{
		Email:        input.Email,
		Password:     input.Password,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Role:         models.Role(input.Role),
		EmployeeCode: input.EmployeeCode,
		PhoneNumber:  input.PhoneNumber,
	})
	if err != nil {
		log.WithError(err).Warn("Failed to create user in service")
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToUserResponse(user))
}

// @Summary Get user by ID
// @Description Get a single user. Requires the user management permission.
// @Tags Users
// @Produce json
// @Security SessionAuth
// @Param id path string true "User ID"
// @Success 200 {object} UserResponse
// @Failure 400 {object} map[string]string "Invalid user ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Operation not permitted"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users/{id} [get]
func (h *Handler) getUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}
	log := h.logger.WithField("method", "getUser").WithField("id", id)

	user, err := h.services.Users.GetUser(c.Request.Context(), sessionFrom(c), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get user from service")
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelToUserResponse(user))
}

// @Summary Update a user
// @Description Update user data and role. Requires the user management permission.
// @Tags Users
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param id path string true "User ID"
// @Param user body UpdateUserRequest true "User update request"
// @Success 200 {object} UserResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Operation not permitted"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users/{id} [put]
func (h *Handler) updateUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}
	log := h.logger.WithField("method", "updateUser").WithField("id", id)

	var input UpdateUserRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.services.Users.UpdateUser(c.Request.Context(), sessionFrom(c), id, models.UpdateUserInput{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Role:         models.Role(input.Role),
		EmployeeCode: input.EmployeeCode,
		PhoneNumber:  input.PhoneNumber,
	})
	if err != nil {
		log.WithError(err).Warn("Failed to update user in service")
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelToUserResponse(user))
}

// @Summary Delete a user
// @Description Delete a user account. Self-deletion is rejected. Requires the user management permission.
// @Tags Users
// @Produce json
// @Security SessionAuth
// @Param id path string true "User ID"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid user ID or self-deletion"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Operation not permitted"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users/{id} [delete]
func (h *Handler) deleteUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}
	log := h.logger.WithField("method", "deleteUser").WithField("id", id)

	if err := h.services.Users.DeleteUser(c.Request.Context(), sessionFrom(c), id); err != nil {
		log.WithError(err).Warn("Failed to delete user in service")
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}
