package world_test

import (
	"testing"

	"github.com/CLOEI/gtworld-r/world"
)

func TestWeatherKnownIDs(t *testing.T) {
	cases := []struct {
		want world.Weather
		id   uint16
	}{
		{world.WeatherDefault, 0},
		{world.WeatherSunset, 1},
		{world.WeatherNight, 2},
		{world.WeatherSnowy, 11},
		{world.WeatherNotInitialized, 23},
		{world.WeatherPagoda, 30},
		{world.WeatherDigitalRain, 42},
		{world.WeatherCandyland, 78},
	}
	for _, tc := range cases {
		if got := world.WeatherFromID(tc.id); got != tc.want {
			t.Errorf("WeatherFromID(%d) = %v, want %v", tc.id, got, tc.want)
		}
	}
}

func TestWeatherOutOfRangeFoldsToDefault(t *testing.T) {
	for _, id := range []uint16{79, 80, 100, 0x7FFF, 0xFFFF} {
		if got := world.WeatherFromID(id); got != world.WeatherDefault {
			t.Errorf("WeatherFromID(%d) = %v, want Default", id, got)
		}
	}
}

func TestWeatherString(t *testing.T) {
	if s := world.WeatherHarvest.String(); s != "Harvest" {
		t.Errorf("Harvest.String() = %q", s)
	}
	if s := world.Weather(9999).String(); s != "Default" {
		t.Errorf("out-of-range String() = %q", s)
	}
}
