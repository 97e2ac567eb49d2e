package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API.
// Пути зафиксированы внешним контрактом, без префикса версии.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Конвейер оценки риска и уведомления
	api.POST("/predict", h.predict)
	api.POST("/send_sms", h.sendSMS)

	// Маршруты аутентификации
	api.POST("/register", h.register)
	api.POST("/login", h.login)
	api.GET("/profile", JWTAuthMiddleware(h.authService, h.logger), h.profile)

	// Маршрут Health-check
	api.GET("/healthz", h.healthCheck)
}
