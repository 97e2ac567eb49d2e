package models

// NumFeatures - размер вектора признаков, ожидаемый моделью
const NumFeatures = 5

// Observation представляет один замер метеопараметров с датчиков
type Observation struct {
	Temperature      float64 `json:"temperature"`
	RelativeHumidity float64 `json:"relative_humidity"`
	WindSpeed        float64 `json:"wind_speed"`
	Rain             float64 `json:"rain"`
	WindDirection    float64 `json:"wind_direction"`
}

// Features возвращает вектор признаков в фиксированном порядке,
// согласованном с обученной моделью. Менять порядок нельзя:
// модель молча вернет искаженный прогноз.
func (o Observation) Features() []float64 {
	return []float64{
		o.Temperature,
		o.RelativeHumidity,
		o.WindSpeed,
		o.Rain,
		o.WindDirection,
	}
}

// WeatherReport - данные для информационного SMS о погоде.
// Поля-указатели: отсутствующее значение отображается как "N/A".
type WeatherReport struct {
	Location      *string  `json:"location,omitempty"`
	Temperature   *float64 `json:"temperature,omitempty"`
	Humidity      *float64 `json:"humidity,omitempty"`
	WindSpeed     *float64 `json:"wind_speed,omitempty"`
	WindDirection *float64 `json:"wind_direction,omitempty"`
}
