package advisory

import (
	"fmt"
	"strings"

	"crop-advisory-service/internal/models"
	"crop-advisory-service/internal/refdata"
)

// Composer assembles the structured advisory bundle and its flattened,
// translated message form.
type Composer struct {
	tables *refdata.Tables
}

// NewComposer builds a composer over the given reference tables.
func NewComposer(tables *refdata.Tables) *Composer {
	return &Composer{tables: tables}
}

// ComposeInput carries everything the composer consumes for one request.
type ComposeInput struct {
	Farmer             models.Farmer
	Current            *models.WeatherSnapshot
	Forecast           []models.ForecastDay
	Pests              []models.PestCandidate
	Recommendation     string
	TopPest            string
	SoilRecommendation string
	Schemes            []models.GovtScheme
	Health             *models.CropHealth
}

// Compose produces the structured bundle and the flattened message. Structured
// enumerable fields (precaution, crop health) carry translation keys plus
// context; the flattened form is fully rendered in the farmer's language,
// falling back to the default language when unsupported.
func (c *Composer) Compose(in ComposeInput) (models.AdvisoryBundle, string) {
	set := c.tables.Templates.Resolve(in.Farmer.Language)

	precaution := derivePrecaution(in.Current, in.Farmer.CropStage)
	precautionText := set.Render(precaution.Key, precaution.Context)

	var health *models.CropHealth
	if in.Health != nil {
		h := *in.Health
		h.Message = set.Render(h.MessageKey, map[string]string{
			"ndvi": fmt.Sprintf("%.2f", h.NDVI),
		})
		health = &h
	}

	bundle := models.AdvisoryBundle{
		DailyAdvice:        c.dailyAdvice(set, in.Current, precautionText),
		CurrentWeather:     in.Current,
		Forecast:           in.Forecast,
		PestPredictions:    in.Pests,
		Recommendation:     in.Recommendation,
		Precaution:         precaution,
		GovtSchemes:        in.Schemes,
		SoilRecommendation: in.SoilRecommendation,
		WaterInfo:          c.waterInfo(set, in.Farmer.Crop, in.Forecast),
		CropHealth:         health,
	}

	return bundle, c.flatten(set, in, precautionText, health)
}

// derivePrecaution picks the precaution key from the current weather and crop
// stage. Rain during flowering or ripening calls for drainage.
func derivePrecaution(current *models.WeatherSnapshot, stage string) models.Precaution {
	stage = strings.ToLower(stage)
	if current != nil && containsRain(current.Description) && (stage == "flowering" || stage == "ripening") {
		return models.Precaution{
			Key:     "precaution_rain",
			Context: map[string]string{"stage": stage, "description": current.Description},
		}
	}
	return models.Precaution{
		Key:     "precaution_default",
		Context: map[string]string{"stage": stage},
	}
}

func (c *Composer) dailyAdvice(set refdata.TemplateSet, current *models.WeatherSnapshot, precautionText string) string {
	if current == nil {
		return set.Render("weather_unavailable", nil)
	}
	return set.Render("daily_advice", map[string]string{
		"description":     current.Description,
		"temp":            fmt.Sprintf("%.1f", current.Temperature),
		"humidity":        fmt.Sprintf("%d", current.Humidity),
		"precaution_text": precautionText,
	})
}

// waterInfo derives availability from forecast rain and the crop's fixed
// seasonal requirement. Crops without a defined requirement get no water info.
func (c *Composer) waterInfo(set refdata.TemplateSet, crop string, forecast []models.ForecastDay) *models.WaterInfo {
	requirement, ok := c.tables.WaterRequirement(crop)
	if !ok {
		return nil
	}

	rainAhead := false
	for _, day := range forecast {
		if containsRain(day.Description) {
			rainAhead = true
			break
		}
	}

	availabilityKey := "water_availability_moderate"
	detailKey := "water_detail_no_rain"
	if rainAhead {
		availabilityKey = "water_availability_good"
		detailKey = "water_detail_rain"
	}

	return &models.WaterInfo{
		Availability: set.Render(availabilityKey, nil),
		Requirement:  set.Render("water_requirement", map[string]string{"value": fmt.Sprintf("%d", requirement)}),
		Recommendation: set.Render("water_recommendation", map[string]string{
			"detail": set.Render(detailKey, nil),
		}),
	}
}

func (c *Composer) flatten(set refdata.TemplateSet, in ComposeInput, precautionText string, health *models.CropHealth) string {
	lines := []string{
		set.Render("greeting", map[string]string{"name": in.Farmer.Name, "crop": in.Farmer.Crop}),
	}

	if in.Current != nil {
		lines = append(lines, set.Render("weather", map[string]string{
			"description": in.Current.Description,
			"temp":        fmt.Sprintf("%.1f", in.Current.Temperature),
		}))
	} else {
		lines = append(lines, set.Render("weather_unavailable", nil))
	}

	if in.TopPest != "" {
		lines = append(lines, set.Render("pest_risk", map[string]string{"pest": in.TopPest}))
	} else {
		lines = append(lines, set.Render("no_pest_risk", nil))
	}

	lines = append(lines,
		set.Render("recommendation", map[string]string{"recommendation": in.Recommendation}),
		precautionText,
	)

	if health != nil {
		lines = append(lines, health.Message)
	}

	return strings.Join(lines, "\n")
}

func containsRain(description string) bool {
	return strings.Contains(strings.ToLower(description), "rain")
}
