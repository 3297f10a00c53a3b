package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "budgetnatin/internal/errors"
	"budgetnatin/internal/logger"
	"budgetnatin/internal/models"
	"budgetnatin/internal/oauth"
	"budgetnatin/internal/response"
	"budgetnatin/internal/services"
)

const (
	oauthStateCookie = "oauth_state"
	oauthStateMaxAge = 10 * 60
)

// TokenIssuer signs session tokens for authenticated users.
type TokenIssuer interface {
	Generate(user *models.User) (string, error)
}

// AuthHandler handles authentication-related requests
type AuthHandler struct {
	userService services.UserServicer
	tokens      TokenIssuer
	google      oauth.GoogleProvider
	clientURL   string
}

// NewAuthHandler creates a new AuthHandler. google may be nil when Google
// sign-in is not configured.
func NewAuthHandler(userService services.UserServicer, tokens TokenIssuer, google oauth.GoogleProvider, clientURL string) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		tokens:      tokens,
		google:      google,
		clientURL:   clientURL,
	}
}

// RegisterRequest represents the registration request payload
type RegisterRequest struct {
	FirstName string `json:"firstname" binding:"max=50"`
	LastName  string `json:"lastname" binding:"max=50"`
	Username  string `json:"username" binding:"max=50"`
	Email     string `json:"email" binding:"omitempty,email,max=100"`
	Password  string `json:"password" binding:"max=128"`
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse represents the user data in the response
type UserResponse struct {
	ID           uint                `json:"id"`
	FirstName    string              `json:"firstname"`
	LastName     string              `json:"lastname"`
	Username     string              `json:"username"`
	Email        string              `json:"email"`
	AuthProvider models.AuthProvider `json:"auth_provider"`
}

// ProfileResponse is the current user's profile.
type ProfileResponse struct {
	UserResponse
	CreatedAt time.Time `json:"created_at"`
}

// AuthResponse represents the authentication response with token
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

func newUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:           user.ID,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Username:     user.Username,
		Email:        user.Email,
		AuthProvider: user.AuthProvider,
	}
}

// Register handles user registration
// @Summary     Register a new user
// @Description Register a local account and receive a session token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body RegisterRequest true "User registration data"
// @Success     201 {object} EnvelopeResponse{data=AuthResponse} "User registered successfully"
// @Failure     400 {object} ErrorResponse "Missing fields or user exists"
// @Failure     500 {object} ErrorResponse "Error creating user"
// @Router      /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err), "Error creating user")
		return
	}

	user, err := h.userService.Register(services.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		respondWithError(c, err, "Error creating user")
		return
	}

	token, err := h.tokens.Generate(user)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err), "Error creating user")
		return
	}

	response.OK(c, http.StatusCreated, "User registered successfully", AuthResponse{
		User:  newUserResponse(user),
		Token: token,
	})
}

// Login handles user login
// @Summary     Login user
// @Description Authenticate a local user and receive a session token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body LoginRequest true "Login credentials"
// @Success     200 {object} EnvelopeResponse{data=AuthResponse} "Login successful"
// @Failure     400 {object} ErrorResponse "Invalid email or password"
// @Failure     500 {object} ErrorResponse "Error during login"
// @Router      /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err), "Error during login")
		return
	}

	user, err := h.userService.AttemptLogin(req.Email, req.Password)
	if err != nil {
		respondWithError(c, err, "Error during login")
		return
	}

	token, err := h.tokens.Generate(user)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err), "Error during login")
		return
	}

	response.OK(c, http.StatusOK, "Login successful", AuthResponse{
		User:  newUserResponse(user),
		Token: token,
	})
}

// Me handles retrieving the current user
// @Summary     Get current user
// @Description Get the authenticated user's profile
// @Tags        auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} EnvelopeResponse{data=ProfileResponse} "User data retrieved"
// @Failure     401 {object} ErrorResponse "No token provided"
// @Failure     404 {object} ErrorResponse "User not found"
// @Failure     500 {object} ErrorResponse "Error getting user data"
// @Router      /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err, "Error getting user data")
		return
	}

	user, err := h.userService.GetUserByID(userID)
	if err != nil {
		respondWithError(c, err, "Error getting user data")
		return
	}

	response.OK(c, http.StatusOK, "User data retrieved", ProfileResponse{
		UserResponse: newUserResponse(user),
		CreatedAt:    user.CreatedAt,
	})
}

// GoogleLogin starts the Google OAuth flow
// @Summary     Sign in with Google
// @Description Redirect to the Google consent screen
// @Tags        auth
// @Success     302 "Redirect to Google"
// @Router      /auth/google [get]
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	if h.google == nil {
		response.Fail(c, http.StatusNotFound, apperrors.ErrRouteNotFound.Message)
		return
	}

	state := oauth.NewState()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(oauthStateCookie, state, oauthStateMaxAge, "/api/auth/google", "", isSecure(c), true)
	c.Redirect(http.StatusFound, h.google.AuthCodeURL(state))
}

// GoogleCallback completes the Google OAuth flow
// @Summary     Google OAuth callback
// @Description Exchange the authorization code and redirect to the client with a session token
// @Tags        auth
// @Param       state query string true "OAuth state"
// @Param       code  query string true "Authorization code"
// @Success     302 "Redirect to the client"
// @Router      /auth/google/callback [get]
func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	if h.google == nil {
		response.Fail(c, http.StatusNotFound, apperrors.ErrRouteNotFound.Message)
		return
	}
	log := logger.Get()

	expected, err := c.Cookie(oauthStateCookie)
	c.SetCookie(oauthStateCookie, "", -1, "/api/auth/google", "", isSecure(c), true)
	if err != nil || expected == "" || expected != c.Query("state") {
		log.Warnw("google callback state mismatch", "cookie_present", err == nil)
		h.redirectAuthFailed(c)
		return
	}
	if errParam := c.Query("error"); errParam != "" {
		log.Warnw("google consent denied", "error", errParam)
		h.redirectAuthFailed(c)
		return
	}

	profile, err := h.google.Exchange(c.Request.Context(), c.Query("code"))
	if err != nil {
		log.Errorw("google code exchange failed", "error", err)
		h.redirectAuthFailed(c)
		return
	}

	user, err := h.userService.FindOrCreateGoogleUser(profile)
	if err != nil {
		log.Errorw("google user lookup failed", "error", err)
		h.redirectAuthFailed(c)
		return
	}

	token, err := h.tokens.Generate(user)
	if err != nil {
		log.Errorw("token generation failed", "user_id", user.ID, "error", err)
		h.redirectAuthFailed(c)
		return
	}

	userJSON, err := json.Marshal(newUserResponse(user))
	if err != nil {
		h.redirectAuthFailed(c)
		return
	}

	query := url.Values{}
	query.Set("token", token)
	query.Set("user", string(userJSON))
	c.Redirect(http.StatusFound, h.clientURL+"/auth/callback?"+query.Encode())
}

func (h *AuthHandler) redirectAuthFailed(c *gin.Context) {
	c.Redirect(http.StatusFound, h.clientURL+"/login?error=auth_failed")
}

func isSecure(c *gin.Context) bool {
	return c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https"
}
