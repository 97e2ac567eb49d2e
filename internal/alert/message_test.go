package alert

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shenikar/fire_risk_alert/internal/models"
)

func TestFireRiskMessage_Format(t *testing.T) {
	// Формат сообщения зафиксирован внешним контрактом
	assert.Equal(t, "Fire Risk Alert! Probability: 95.00% - Stay safe!", FireRiskMessage(0.95))
	assert.Equal(t, "Fire Risk Alert! Probability: 80.00% - Stay safe!", FireRiskMessage(0.8))
	assert.Equal(t, "Fire Risk Alert! Probability: 83.33% - Stay safe!", FireRiskMessage(0.83333))
}

func TestWeatherMessage_AllFields(t *testing.T) {
	location := "Campinas"
	temperature := 25.5
	humidity := 40.0
	windSpeed := 5.0
	windDirection := 180.0

	msg := WeatherMessage(models.WeatherReport{
		Location:      &location,
		Temperature:   &temperature,
		Humidity:      &humidity,
		WindSpeed:     &windSpeed,
		WindDirection: &windDirection,
	})

	expected := "Weather Alert!\n" +
		"Location: Campinas\n" +
		"Temperature: 25.5°C\n" +
		"Humidity: 40%\n" +
		"Wind Speed: 5 m/s\n" +
		"Wind Direction: 180°"
	assert.Equal(t, expected, msg)
}

func TestWeatherMessage_Defaults(t *testing.T) {
	msg := WeatherMessage(models.WeatherReport{})

	expected := "Weather Alert!\n" +
		"Location: Unknown Location\n" +
		"Temperature: N/A°C\n" +
		"Humidity: N/A%\n" +
		"Wind Speed: N/A m/s\n" +
		"Wind Direction: N/A°"
	assert.Equal(t, expected, msg)
}
