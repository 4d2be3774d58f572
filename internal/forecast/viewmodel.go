package forecast

import (
	"math"
	"strconv"
	"time"

	"github.com/suvwetoba/weather-app/internal/models"
)

// HumidityPlaceholder is shown when no humidity reading exists for the
// selected day. The daily aggregates carry no humidity field, so any day
// other than today renders this.
const HumidityPlaceholder = "--"

// HoursPerDay is the size of one day's block in the hourly series.
const HoursPerDay = 24

// MainCard describes the headline region plus the highlight stats.
type MainCard struct {
	Temperature   int
	Icon          string
	Date          string
	FeelsLike     int
	Humidity      string
	WindSpeed     int
	WindUnit      string
	Precipitation float64
	PrecipUnit    string
}

// DailyCard is one entry of the 7-day grid.
type DailyCard struct {
	Day  string
	Icon string
	Max  int
	Min  int
}

// HourlyItem is one row of the hourly list.
type HourlyItem struct {
	Label       string
	Icon        string
	Temperature int
}

// RenderModel is the complete projection of a forecast onto the UI
// regions. It is plain data; the UI layer only formats and styles it.
type RenderModel struct {
	MainCard   MainCard
	DailyCards []DailyCard
	Hourly     []HourlyItem
	DayOptions []string
}

// HourlyRange computes the half-open hourly slice [start, end) for the
// selected day. Day 0 starts at the current hour so only upcoming hours
// of today are shown; later days get their full 24-hour block. The range
// is clipped to the actual series length.
func HourlyRange(day, currentHour, seriesLen int) (start, end int) {
	start = day * HoursPerDay
	end = start + HoursPerDay
	if day == 0 {
		start += currentHour
	}
	if end > seriesLen {
		end = seriesLen
	}
	if start > end {
		start = end
	}
	return start, end
}

// Build projects (payload, units, selected day) into a RenderModel.
// now supplies the current local time for the day-0 hourly cutoff and
// the "now" date on the main card. Build is pure: no network, no store
// mutation.
func Build(f *models.Forecast, units models.UnitSettings, day int, now time.Time) RenderModel {
	if f == nil {
		return RenderModel{}
	}

	rm := RenderModel{
		MainCard:   buildMainCard(f, units, day, now),
		DailyCards: buildDailyCards(f),
		Hourly:     buildHourly(f, day, now),
		DayOptions: buildDayOptions(f),
	}
	return rm
}

func buildMainCard(f *models.Forecast, units models.UnitSettings, day int, now time.Time) MainCard {
	card := MainCard{
		WindUnit:   units.WindLabel(),
		PrecipUnit: units.PrecipLabel(),
	}

	if day == 0 {
		// The live snapshot is more accurate for "right now" than the
		// daily aggregate.
		cur := f.Current
		card.Temperature = roundInt(cur.Temperature)
		card.Icon = IconForCode(cur.WeatherCode)
		card.FeelsLike = roundInt(cur.ApparentTemperature)
		card.WindSpeed = roundInt(cur.WindSpeed)
		card.Precipitation = cur.Precipitation
		card.Humidity = formatHumidity(cur.RelativeHumidity)
		card.Date = now.Format("Monday, Jan 2, 2006")
		return card
	}

	d := f.Daily
	if day >= d.Len() {
		return card
	}
	card.Temperature = roundInt(d.TemperatureMax[day])
	card.Icon = IconForCode(d.WeatherCode[day])
	card.FeelsLike = roundInt(d.ApparentTemperatureMax[day])
	card.WindSpeed = roundInt(d.WindSpeedMax[day])
	card.Precipitation = d.PrecipitationSum[day]
	card.Humidity = HumidityPlaceholder
	if t := f.DayTime(day); !t.IsZero() {
		card.Date = t.Format("Monday, Jan 2, 2006")
	}
	return card
}

// buildDailyCards renders exactly 7 cards regardless of the selected day.
func buildDailyCards(f *models.Forecast) []DailyCard {
	cards := make([]DailyCard, models.DaysInForecast)
	for i := 0; i < models.DaysInForecast; i++ {
		if i >= f.Daily.Len() {
			cards[i] = DailyCard{Day: "--", Icon: IconClear}
			continue
		}
		day := "--"
		if t := f.DayTime(i); !t.IsZero() {
			day = t.Format("Mon")
		}
		cards[i] = DailyCard{
			Day:  day,
			Icon: IconForCode(f.Daily.WeatherCode[i]),
			Max:  roundInt(f.Daily.TemperatureMax[i]),
			Min:  roundInt(f.Daily.TemperatureMin[i]),
		}
	}
	return cards
}

func buildHourly(f *models.Forecast, day int, now time.Time) []HourlyItem {
	start, end := HourlyRange(day, now.Hour(), f.Hourly.Len())

	items := make([]HourlyItem, 0, end-start)
	for i := start; i < end; i++ {
		label := f.Hourly.Time[i]
		if t := f.HourTime(i); !t.IsZero() {
			label = t.Format("3 PM")
		}
		items = append(items, HourlyItem{
			Label:       label,
			Icon:        IconForCode(f.Hourly.WeatherCode[i]),
			Temperature: roundInt(f.Hourly.Temperature[i]),
		})
	}
	return items
}

// buildDayOptions labels the day selector: "Today" plus full weekday
// names for the remaining six days.
func buildDayOptions(f *models.Forecast) []string {
	options := make([]string, models.DaysInForecast)
	for i := 0; i < models.DaysInForecast; i++ {
		if i == 0 {
			options[i] = "Today"
			continue
		}
		if t := f.DayTime(i); !t.IsZero() {
			options[i] = t.Format("Monday")
		} else {
			options[i] = "--"
		}
	}
	return options
}

func formatHumidity(h float64) string {
	return strconv.Itoa(roundInt(h))
}

func roundInt(v float64) int {
	return int(math.Round(v))
}
