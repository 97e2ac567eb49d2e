package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/fire_risk_alert/internal/config"
	"github.com/shenikar/fire_risk_alert/internal/service"
)

type Handler struct {
	predictionService service.PredictionService
	authService       service.AuthService
	logger            *logrus.Logger
	validate          *validator.Validate
	cfg               *config.Config
}

func NewHandler(predictionService service.PredictionService, authService service.AuthService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		predictionService: predictionService,
		authService:       authService,
		logger:            logger,
		validate:          validator.New(),
		cfg:               cfg,
	}
}

// @Summary Predict fire risk
// @Description Score a sensor reading with the fire spread model. Sends an SMS alert to the given phone when the probability crosses the risk threshold.
// @Tags Prediction
// @Accept json
// @Produce json
// @Param reading body PredictRequest true "Sensor reading"
// @Success 200 {object} PredictResponse
// @Failure 400 {object} map[string]string "Missing data"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /predict [post]
func (h *Handler) predict(c *gin.Context) {
	var input PredictRequest
	log := h.logger.WithField("method", "predict")

	// Внешний контракт: любая ошибка валидации схлопывается в "Missing data",
	// детали остаются только в логах
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing data"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Prediction request is missing required fields")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing data"})
		return
	}

	probability, err := h.predictionService.PredictFireRisk(c.Request.Context(), DTOToObservation(input), *input.Phone)
	if err != nil {
		log.WithError(err).Error("Failed to compute fire risk in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, PredictResponse{Probability: probability})
}

// @Summary Send weather alert SMS
// @Description Send an informational weather SMS to the configured recipient. Absent fields are rendered as N/A.
// @Tags Alerts
// @Accept json
// @Produce json
// @Param report body SendSMSRequest true "Weather report"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 500 {object} map[string]string "Failed to send SMS"
// @Router /send_sms [post]
func (h *Handler) sendSMS(c *gin.Context) {
	var input SendSMSRequest
	log := h.logger.WithField("method", "sendSMS")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.predictionService.SendWeatherAlert(c.Request.Context(), DTOToWeatherReport(input)); err != nil {
		log.WithError(err).Error("Failed to send weather alert in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send SMS."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "SMS sent successfully!"})
}

// @Summary Register a new user
// @Description Register a new user with name, email and password. Phone and location are optional.
// @Tags Auth
// @Accept json
// @Produce json
// @Param user body RegisterRequest true "Registration request"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string "Missing required fields"
// @Failure 500 {object} map[string]string "Registration failed"
// @Router /register [post]
func (h *Handler) register(c *gin.Context) {
	var input RegisterRequest
	log := h.logger.WithField("method", "register")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please fill out all required fields"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Registration request validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please fill out all required fields"})
		return
	}

	user := DTOToUserModel(input)
	if err := h.authService.Register(c.Request.Context(), user, input.Password); err != nil {
		log.WithError(err).Error("Failed to register user in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed. Please try again."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Registration successful!"})
}

// @Summary Log in
// @Description Exchange email and password for a signed JWT.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login request"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /login [post]
func (h *Handler) login(c *gin.Context) {
	var input LoginRequest
	log := h.logger.WithField("method", "login")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Login request validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	token, err := h.authService.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		log.WithError(err).Error("Failed to log user in")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Token: token})
}

// @Summary Get current user profile
// @Description Get the profile of the authenticated user. Requires Bearer token.
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} UserResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /profile [get]
func (h *Handler) profile(c *gin.Context) {
	log := h.logger.WithField("method", "profile")

	userID, ok := UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	user, err := h.authService.GetUser(c.Request.Context(), userID)
	if err != nil {
		log.WithError(err).Error("Failed to get user from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelToUserResponse(user))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /healthz [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
