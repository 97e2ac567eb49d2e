package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObservation_FeatureOrder(t *testing.T) {
	obs := Observation{
		Temperature:      24.96,
		RelativeHumidity: 70,
		WindSpeed:        3.11,
		Rain:             0.19,
		WindDirection:    57,
	}

	features := obs.Features()

	assert.Len(t, features, NumFeatures)
	// Порядок согласован с обученной моделью и не подлежит изменению
	assert.Equal(t, []float64{24.96, 70, 3.11, 0.19, 57}, features)
}
