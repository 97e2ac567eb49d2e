package alert

import (
	"fmt"
	"strconv"

	"github.com/shenikar/fire_risk_alert/internal/models"
)

// FireRiskMessage формирует текст SMS о риске возгорания.
// Формат зафиксирован, на него завязаны внешние получатели.
func FireRiskMessage(probability float64) string {
	return fmt.Sprintf("Fire Risk Alert! Probability: %.2f%% - Stay safe!", probability*100)
}

// WeatherMessage формирует текст информационного SMS о погоде.
// Отсутствующие поля отображаются как "N/A".
func WeatherMessage(report models.WeatherReport) string {
	location := "Unknown Location"
	if report.Location != nil {
		location = *report.Location
	}

	return fmt.Sprintf(
		"Weather Alert!\n"+
			"Location: %s\n"+
			"Temperature: %s°C\n"+
			"Humidity: %s%%\n"+
			"Wind Speed: %s m/s\n"+
			"Wind Direction: %s°",
		location,
		floatOrNA(report.Temperature),
		floatOrNA(report.Humidity),
		floatOrNA(report.WindSpeed),
		floatOrNA(report.WindDirection),
	)
}

func floatOrNA(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
