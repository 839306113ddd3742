package refdata

import (
	"strings"

	"crop-advisory-service/internal/models"
)

// CropInfo describes one supported crop: its growth stages and fixed seasonal
// water requirement. A zero WaterRequirementMM means no requirement is defined.
type CropInfo struct {
	Stages             []string
	WaterRequirementMM int
}

// Tables bundles the read-only reference data the advisory pipeline consumes.
// It is injected into the components so tests can substitute small fixtures.
type Tables struct {
	Crops        map[string]CropInfo
	Pests        map[string]map[string][]models.PestCandidate
	Treatments   map[string]string
	SoilAdvice   map[string]string
	Schemes      map[string][]models.GovtScheme
	MarketPrices map[string]models.MarketPrice
	Templates    *Catalog
}

const (
	defaultBucket    = "default"
	defaultTreatment = "Default"

	// GenericPest is the single fallback candidate for unknown crops.
	GenericPest = "General Pests"
)

// PestsFor returns the base candidates for a crop stage, falling back to the
// crop's default bucket, then to a single generic low-risk entry.
func (t *Tables) PestsFor(crop, stage string) []models.PestCandidate {
	crop = strings.ToLower(crop)
	stage = strings.ToLower(stage)
	byStage, ok := t.Pests[crop]
	if !ok {
		return []models.PestCandidate{{Pest: GenericPest, Risk: models.RiskLow}}
	}
	list, ok := byStage[stage]
	if !ok {
		list, ok = byStage[defaultBucket]
		if !ok {
			return []models.PestCandidate{{Pest: GenericPest, Risk: models.RiskLow}}
		}
	}
	// copy so callers can mutate risk levels without touching the table
	out := make([]models.PestCandidate, len(list))
	copy(out, list)
	return out
}

// TreatmentFor returns the treatment text for a pest, or the default guideline
// when the pest is unknown.
func (t *Tables) TreatmentFor(pest string) string {
	if rec, ok := t.Treatments[pest]; ok {
		return rec
	}
	return t.Treatments[defaultTreatment]
}

// SoilAdviceFor returns fertility guidance for a soil type, defaulting for
// unknown or unset types.
func (t *Tables) SoilAdviceFor(soil string) string {
	if rec, ok := t.SoilAdvice[strings.ToLower(soil)]; ok {
		return rec
	}
	return t.SoilAdvice[defaultBucket]
}

// SchemesFor returns the government schemes for a crop, or the default list.
func (t *Tables) SchemesFor(crop string) []models.GovtScheme {
	if s, ok := t.Schemes[strings.ToLower(crop)]; ok {
		return s
	}
	return t.Schemes[defaultBucket]
}

// WaterRequirement reports the crop's seasonal water requirement in mm.
// The second return is false when the crop has no defined requirement.
func (t *Tables) WaterRequirement(crop string) (int, bool) {
	info, ok := t.Crops[strings.ToLower(crop)]
	if !ok || info.WaterRequirementMM <= 0 {
		return 0, false
	}
	return info.WaterRequirementMM, true
}

// ValidCrop reports whether the crop is in the reference data.
func (t *Tables) ValidCrop(crop string) bool {
	_, ok := t.Crops[strings.ToLower(crop)]
	return ok
}

// ValidStage reports whether the stage is defined for the crop.
func (t *Tables) ValidStage(crop, stage string) bool {
	info, ok := t.Crops[strings.ToLower(crop)]
	if !ok {
		return false
	}
	stage = strings.ToLower(stage)
	for _, s := range info.Stages {
		if s == stage {
			return true
		}
	}
	return false
}

// ValidSoil reports whether the soil type has a guidance entry.
func (t *Tables) ValidSoil(soil string) bool {
	soil = strings.ToLower(soil)
	if soil == defaultBucket {
		return false
	}
	_, ok := t.SoilAdvice[soil]
	return ok
}

// SoilTypes lists the accepted soil types.
func (t *Tables) SoilTypes() []string {
	out := make([]string, 0, len(t.SoilAdvice))
	for s := range t.SoilAdvice {
		if s != defaultBucket {
			out = append(out, s)
		}
	}
	return out
}
