package v1

import "github.com/shenikar/fire_risk_alert/internal/models"

// DTOToObservation преобразует провалидированный запрос в доменный замер.
// Вызывается только после успешной валидации, указатели не равны nil.
func DTOToObservation(dto PredictRequest) models.Observation {
	return models.Observation{
		Temperature:      *dto.Temperature,
		RelativeHumidity: *dto.RelativeHumidity,
		WindSpeed:        *dto.WindSpeed,
		Rain:             *dto.Rain,
		WindDirection:    *dto.WindDirection,
	}
}

// DTOToWeatherReport преобразует запрос /send_sms в доменную модель
func DTOToWeatherReport(dto SendSMSRequest) models.WeatherReport {
	return models.WeatherReport{
		Location:      dto.Location,
		Temperature:   dto.Temperature,
		Humidity:      dto.Humidity,
		WindSpeed:     dto.WindSpeed,
		WindDirection: dto.WindDirection,
	}
}

// DTOToUserModel преобразует запрос регистрации в доменную модель
func DTOToUserModel(dto RegisterRequest) *models.User {
	return &models.User{
		Name:     dto.Name,
		Email:    dto.Email,
		Phone:    dto.Phone,
		Location: dto.Location,
	}
}

// ModelToUserResponse преобразует доменную модель в DTO для ответа
func ModelToUserResponse(model *models.User) *UserResponse {
	return &UserResponse{
		ID:        model.ID,
		Name:      model.Name,
		Email:     model.Email,
		Phone:     model.Phone,
		Location:  model.Location,
		CreatedAt: model.CreatedAt,
	}
}
