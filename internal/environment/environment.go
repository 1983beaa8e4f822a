// Package environment cross-checks a bake against the room, the oven and
// the baking surface, and picks a bake temperature/time profile.
package environment

import (
	"fmt"

	"github.com/hammamikhairi/doughlab/internal/domain"
)

// DefaultTargetDDTC is the desired dough temperature used when none is given.
const DefaultTargetDDTC = 25.0

// Ambient thresholds for fermentation notes, in °C.
const (
	HotAmbientC  = 28.0
	ColdAmbientC = 18.0
)

// Advice flags.
const (
	FlagStrictAVPN         = "STRICT_AVPN"
	FlagHomeOvenCompromise = "HOME_OVEN_COMPROMISE"
	FlagSteelBurnRisk      = "STEEL_BURN_RISK"
	FlagSurfaceSuggested   = "SURFACE_SUGGESTED"
)

// WaterTemperature returns the mixing-water temperature for a target dough
// temperature: (ddt - 1) * 3 - ambient - flour.
//
// This is a deliberately crude heuristic, not the friction-factor formula
// bakers usually quote. It is not symmetric in its inputs' meaning (the
// "-1" stands in for friction) and must not be corrected here: the smart
// adjustment rules depend on the exact numbers.
func WaterTemperature(targetDDT, ambientC, flourC float64) float64 {
	return (targetDDT-1)*3 - ambientC - flourC
}

// bakeProfile is a temperature and a time window in seconds.
type bakeProfile struct {
	tempC   float64
	seconds [2]int
}

type profileKey struct {
	oven    domain.OvenType
	surface domain.SurfaceType
}

// profiles is the fallback bake table keyed by oven and effective surface.
var profiles = map[profileKey]bakeProfile{
	{domain.OvenHomeElectric, domain.SurfaceSteel}:    {280, [2]int{300, 420}},
	{domain.OvenHomeElectric, domain.SurfaceStone}:    {270, [2]int{420, 600}},
	{domain.OvenHomeElectric, domain.SurfaceBiscotto}: {280, [2]int{420, 540}},
	{domain.OvenHomeElectric, domain.SurfacePan}:      {250, [2]int{720, 900}},

	{domain.OvenHomeGas, domain.SurfaceSteel}:    {275, [2]int{300, 420}},
	{domain.OvenHomeGas, domain.SurfaceStone}:    {265, [2]int{420, 600}},
	{domain.OvenHomeGas, domain.SurfaceBiscotto}: {275, [2]int{420, 540}},
	{domain.OvenHomeGas, domain.SurfacePan}:      {245, [2]int{720, 900}},

	{domain.OvenWoodFired, domain.SurfaceSteel}:    {380, [2]int{90, 150}},
	{domain.OvenWoodFired, domain.SurfaceStone}:    {430, [2]int{90, 150}},
	{domain.OvenWoodFired, domain.SurfaceBiscotto}: {450, [2]int{60, 120}},
	{domain.OvenWoodFired, domain.SurfacePan}:      {300, [2]int{480, 600}},

	{domain.OvenPortableHighTemp, domain.SurfaceSteel}:    {380, [2]int{90, 150}},
	{domain.OvenPortableHighTemp, domain.SurfaceStone}:    {430, [2]int{60, 120}},
	{domain.OvenPortableHighTemp, domain.SurfaceBiscotto}: {420, [2]int{75, 120}},
	{domain.OvenPortableHighTemp, domain.SurfacePan}:      {300, [2]int{420, 540}},
}

// DefaultSurface is the surface assumed when none is chosen.
func DefaultSurface(oven domain.OvenType) domain.SurfaceType {
	if oven.IsHome() {
		return domain.SurfacePan
	}
	return domain.SurfaceStone
}

// Advise evaluates in and returns the environment advice. It never fails.
func Advise(in domain.EnvironmentInput) domain.EnvironmentAdvice {
	adv := RoomAdvice(in)

	checkSurface(in, &adv)

	if !applyStyleProfile(in, &adv) {
		applyFallbackProfile(in, &adv)
		capToOven(in, &adv)
	}
	return adv
}

// RoomAdvice is the part of Advise that needs no oven: the water
// temperature and the ambient notes. The oven type and surface of in are
// ignored.
func RoomAdvice(in domain.EnvironmentInput) domain.EnvironmentAdvice {
	adv := domain.EnvironmentAdvice{
		Notes:    []string{},
		Warnings: []string{},
		Flags:    []string{},
	}

	if in.FlourTempC != nil {
		target := in.TargetDDTC
		if target == 0 {
			target = DefaultTargetDDTC
		}
		w := WaterTemperature(target, in.AmbientTempC, *in.FlourTempC)
		adv.RecommendedWaterTempC = &w
		adv.Notes = append(adv.Notes,
			fmt.Sprintf("Use water at about %.0f°C to land the dough near %.0f°C.", w, target))
	}

	switch {
	case in.AmbientTempC >= HotAmbientC:
		adv.Notes = append(adv.Notes,
			"Warm room: shorten the bulk ferment or reduce the yeast to avoid over-proofing.")
	case in.AmbientTempC <= ColdAmbientC:
		adv.Notes = append(adv.Notes,
			"Cool room: extend the bulk ferment; the dough will need more time to rise.")
	}
	return adv
}

func checkSurface(in domain.EnvironmentInput, adv *domain.EnvironmentAdvice) {
	if in.OvenType.IsHighTemp() && in.Surface == domain.SurfaceSteel {
		adv.Warnings = append(adv.Warnings,
			"Steel in a live-fire oven will scorch the base before the top is done; bake on biscotto instead.")
		adv.RecommendedSurfaceOverride = domain.SurfaceBiscotto
		adv.Flags = append(adv.Flags, FlagSteelBurnRisk)
		return
	}

	if in.OvenType.IsHome() && in.Surface == domain.SurfaceNone && !in.Style.IsPanStyle() {
		adv.Notes = append(adv.Notes,
			"A baking steel stores and transfers heat best in a home oven; preheat it for 45 minutes.")
		adv.RecommendedSurfaceOverride = domain.SurfaceSteel
		adv.Flags = append(adv.Flags, FlagSurfaceSuggested)
	}
}

// applyStyleProfile applies fixed profiles that override the table.
// It reports whether one applied.
func applyStyleProfile(in domain.EnvironmentInput, adv *domain.EnvironmentAdvice) bool {
	if in.Style != domain.StyleNeapolitan {
		return false
	}

	switch {
	case in.OvenType == domain.OvenWoodFired:
		setProfile(adv, bakeProfile{485, [2]int{60, 90}})
		adv.RecommendedSurfaceOverride = domain.SurfaceBiscotto
		adv.Flags = append(adv.Flags, FlagStrictAVPN)
		adv.Notes = append(adv.Notes, "Wood-fired Neapolitan: bake at 485°C on the hearth for 60-90 seconds.")
		return true
	case in.OvenType.IsHome():
		setProfile(adv, bakeProfile{290, [2]int{360, 480}})
		adv.RecommendedSurfaceOverride = domain.SurfaceSteel
		adv.Flags = append(adv.Flags, FlagHomeOvenCompromise)
		adv.Warnings = append(adv.Warnings,
			"Home-oven Neapolitan is an adapted profile, not an authentic one: expect a longer bake and a crisper, paler cornicione.")
		return true
	default:
		return false
	}
}

func applyFallbackProfile(in domain.EnvironmentInput, adv *domain.EnvironmentAdvice) {
	// A recommended override wins over the oven's default surface.
	surface := adv.RecommendedSurfaceOverride
	if surface == domain.SurfaceNone {
		surface = in.Surface
	}
	if surface == domain.SurfaceNone {
		surface = DefaultSurface(in.OvenType)
	}
	if p, ok := profiles[profileKey{in.OvenType, surface}]; ok {
		setProfile(adv, p)
	}
}

// capToOven lowers a table profile to what the oven can reach. The fixed
// style profiles are never capped.
func capToOven(in domain.EnvironmentInput, adv *domain.EnvironmentAdvice) {
	if in.MaxOvenTempC <= 0 || adv.RecommendedBakeTempC <= in.MaxOvenTempC {
		return
	}
	adv.Warnings = append(adv.Warnings, fmt.Sprintf(
		"The profile calls for %.0f°C but the oven tops out at %.0f°C; expect the bake to run long.",
		adv.RecommendedBakeTempC, in.MaxOvenTempC))
	adv.RecommendedBakeTempC = in.MaxOvenTempC
}

func setProfile(adv *domain.EnvironmentAdvice, p bakeProfile) {
	window := p.seconds
	adv.RecommendedBakeTempC = p.tempC
	adv.RecommendedBakeTimeSeconds = &window
}
