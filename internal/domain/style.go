package domain

// StylePreset is a named starting formula together with the technical
// profile used to judge how well a config fits the style.
type StylePreset struct {
	ID          string      `json:"id" yaml:"id"`
	Name        string      `json:"name" yaml:"name"`
	Description string      `json:"description,omitempty" yaml:"description,omitempty"`
	Style       RecipeStyle `json:"style" yaml:"style"`
	Tags        []string    `json:"tags,omitempty" yaml:"tags,omitempty"`

	Hydration       float64               `json:"hydration" yaml:"hydration"`
	Salt            float64               `json:"salt" yaml:"salt"`
	Oil             float64               `json:"oil" yaml:"oil"`
	Sugar           float64               `json:"sugar" yaml:"sugar"`
	YeastPercentage float64               `json:"yeastPercentage" yaml:"yeast_percentage"`
	Technique       FermentationTechnique `json:"technique" yaml:"technique"`
	FlourID         string                `json:"flourId,omitempty" yaml:"flour_id,omitempty"`

	Profile StyleProfile `json:"profile" yaml:"profile"`
}

// BakeType returns the preset's product category.
func (p StylePreset) BakeType() BakeType { return p.Style.BakeType() }

// StyleProfile is the technical envelope of a style.
type StyleProfile struct {
	HydrationBand     Range   `json:"hydrationBand" yaml:"hydration_band"`
	FermentationHours Range   `json:"fermentationHours" yaml:"fermentation_hours"`
	FlourStrengthW    Range   `json:"flourStrengthW" yaml:"flour_strength_w"`
	MinOvenTempC      float64 `json:"minOvenTempC" yaml:"min_oven_temp_c"`
	BakeTempC         float64 `json:"bakeTempC" yaml:"bake_temp_c"`
	Note              string  `json:"note,omitempty" yaml:"note,omitempty"`
}
