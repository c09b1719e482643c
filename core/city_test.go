package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCity(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Lowercase", "dubai", "dubai"},
		{"MixedCase", "Abu Dhabi", "abu dhabi"},
		{"ExtraSpaces", "  Ras  Al   Khaimah ", "ras al khaimah"},
		{"Empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeCity(tt.input))
		})
	}
}

func TestIsCity(t *testing.T) {
	assert.True(t, IsCity("Dubai"))
	assert.True(t, IsCity("umm al quwain"))
	assert.True(t, IsCity(" ABU  DHABI "))
	assert.False(t, IsCity("paris"))
	assert.False(t, IsCity(""))
}

func TestCities(t *testing.T) {
	cities := Cities()
	assert.Len(t, cities, 7)
	assert.Equal(t, []string{
		"abu dhabi",
		"ajman",
		"dubai",
		"fujairah",
		"ras al khaimah",
		"sharjah",
		"umm al quwain",
	}, cities)
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Dubai", DisplayName("dubai"))
	assert.Equal(t, "Abu Dhabi", DisplayName("abu dhabi"))
	assert.Equal(t, "Ras Al Khaimah", DisplayName("ras al khaimah"))
	assert.Equal(t, "Umm Al Quwain", DisplayName("UMM AL QUWAIN"))
}

func TestCityList(t *testing.T) {
	list := CityList()
	assert.Contains(t, list, "Dubai")
	assert.Contains(t, list, "Abu Dhabi")
	assert.Contains(t, list, "Fujairah")
}

func TestFindCityIn(t *testing.T) {
	t.Run("SingleCity", func(t *testing.T) {
		city, idx, ok := FindCityIn("what are the attractions in Dubai?")
		assert.True(t, ok)
		assert.Equal(t, "dubai", city)
		assert.Equal(t, 28, idx)
	})

	t.Run("EarliestWins", func(t *testing.T) {
		city, _, ok := FindCityIn("compare Sharjah with Dubai and Ajman")
		assert.True(t, ok)
		assert.Equal(t, "sharjah", city)
	})

	t.Run("NoCity", func(t *testing.T) {
		_, _, ok := FindCityIn("tell me about cultural etiquette")
		assert.False(t, ok)
	})

	t.Run("CaseInsensitive", func(t *testing.T) {
		city, _, ok := FindCityIn("PRAYER TIMES IN FUJAIRAH")
		assert.True(t, ok)
		assert.Equal(t, "fujairah", city)
	})
}
