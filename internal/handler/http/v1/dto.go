package v1

import (
	"time"

	"github.com/google/uuid"
)

// PredictRequest DTO для запроса оценки риска возгорания.
// Числовые поля - указатели: присутствующий ноль (например rain=0)
// проходит валидацию, отсутствующий ключ - нет.
// @Description DTO для запроса оценки риска возгорания
type PredictRequest struct {
	Temperature      *float64 `json:"temperature" validate:"required"`
	RelativeHumidity *float64 `json:"relative_humidity" validate:"required"`
	WindSpeed        *float64 `json:"wind_speed" validate:"required"`
	Rain             *float64 `json:"rain" validate:"required"`
	WindDirection    *float64 `json:"wind_direction" validate:"required"`
	Phone            *string  `json:"phone" validate:"required"`
}

// PredictResponse DTO для ответа с вероятностью возгорания
// @Description DTO для ответа с вероятностью возгорания
type PredictResponse struct {
	Probability float64 `json:"probability"`
}

// SendSMSRequest DTO для информационного SMS о погоде, все поля опциональны
// @Description DTO для информационного SMS о погоде
type SendSMSRequest struct {
	Location      *string  `json:"location"`
	Temperature   *float64 `json:"temperature"`
	Humidity      *float64 `json:"humidity"`
	WindSpeed     *float64 `json:"wind_speed"`
	WindDirection *float64 `json:"wind_direction"`
}

// RegisterRequest DTO для регистрации пользователя
// @Description DTO для регистрации пользователя
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest DTO для входа
// @Description DTO для входа
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse DTO с выданным токеном
// @Description DTO с выданным токеном
type LoginResponse struct {
	Token string `json:"token"`
}

// UserResponse DTO для ответа с информацией о пользователе
// @Description DTO для ответа с информацией о пользователе
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Location  string    `json:"location,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
