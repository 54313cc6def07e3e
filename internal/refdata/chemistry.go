package refdata

import "strings"

// chemistryProfiles describes the polymer families the engine understands.
// Aliases feed the question parser, which matches them as lowercase
// substrings.
var chemistryProfiles = []ChemistryProfile{
	{
		Type:      "epdm",
		Code:      "EPDM",
		Name:      "Ethylene Propylene Diene Monomer",
		Aliases:   []string{"epdm", "rubber membrane", "rubber roof"},
		Thermoset: true, OilSensitive: true,
		Notes: "thermoset rubber, excellent weathering, attacked by oils and asphalt",
	},
	{
		Type:          "tpo",
		Code:          "TPO",
		Name:          "Thermoplastic Polyolefin",
		Aliases:       []string{"tpo", "polyolefin"},
		Thermoplastic: true,
		Notes:         "heat-weldable, reflective, no plasticizers",
	},
	{
		Type:          "pvc",
		Code:          "PVC",
		Name:          "Polyvinyl Chloride",
		Aliases:       []string{"pvc", "vinyl membrane", "vinyl roof"},
		Thermoplastic: true, Plasticized: true,
		Notes: "heat-weldable, chemical resistant, plasticizer migration risk",
	},
	{
		Type:    "modified bitumen",
		Code:    "MB",
		Name:    "Modified Bitumen",
		Aliases: []string{"modified bitumen", "mod bit", "sbs", "app"},
		Notes:   "asphalt modified with SBS or APP polymers, multi-ply",
	},
	{
		Type:      "silicone",
		Code:      "SIL",
		Name:      "Silicone",
		Aliases:   []string{"silicone"},
		Thermoset: true,
		Notes:     "ponding-water tolerant coating, nothing adheres to cured silicone",
	},
	{
		Type:    "acrylic",
		Code:    "ACR",
		Name:    "Acrylic",
		Aliases: []string{"acrylic", "elastomeric coating"},
		Notes:   "water-based reflective coating, not for ponding water",
	},
	{
		Type:      "polyurethane",
		Code:      "PU",
		Name:      "Polyurethane",
		Aliases:   []string{"polyurethane", "urethane"},
		Thermoset: true,
		Notes:     "high-build coatings and sealants, UV-sensitive aromatics",
	},
	{
		Type:    "asphalt",
		Code:    "ASP",
		Name:    "Asphalt",
		Aliases: []string{"asphalt", "bitumen", "built-up", "bur", "tar"},
		Notes:   "traditional built-up roofing, oils attack many synthetics",
	},
	{
		Type:         "butyl",
		Code:         "BUT",
		Name:         "Butyl Rubber",
		Aliases:      []string{"butyl"},
		Thermoset:    true,
		SolventBased: true,
		Notes:        "low permeance tapes and sealants, excellent age stability",
	},
	{
		Type:    "polystyrene",
		Code:    "PS",
		Name:    "Polystyrene",
		Aliases: []string{"polystyrene", "eps", "xps", "styrofoam"},
		Notes:   "foam insulation, dissolved by solvents and plasticizers",
	},
	{
		Type:    "polyiso",
		Code:    "ISO",
		Name:    "Polyisocyanurate",
		Aliases: []string{"polyiso", "polyisocyanurate", "iso board"},
		Notes:   "faced foam insulation board, standard low-slope substrate",
	},
	{
		Type:    "concrete",
		Code:    "CON",
		Name:    "Concrete",
		Aliases: []string{"concrete", "cementitious", "masonry"},
		Notes:   "structural substrate, alkaline when fresh",
	},
}

// ChemistryProfiles returns every known chemistry profile.
func ChemistryProfiles() []ChemistryProfile { return chemistryProfiles }

// ProfileForType returns the profile whose canonical type matches.
func ProfileForType(chemType string) (ChemistryProfile, bool) {
	for _, p := range chemistryProfiles {
		if p.Type == chemType {
			return p, true
		}
	}
	return ChemistryProfile{}, false
}

// MatchChemistry resolves free text to a canonical chemistry type by
// substring match against each profile's aliases. The text must already be
// lowercase. Returns the first matching profile in declaration order.
func MatchChemistry(text string) (ChemistryProfile, bool) {
	for _, p := range chemistryProfiles {
		for _, alias := range p.Aliases {
			if strings.Contains(text, alias) {
				return p, true
			}
		}
	}
	return ChemistryProfile{}, false
}

// MatchChemistries resolves free text to every canonical chemistry type
// mentioned in it, deduplicated, in declaration order.
func MatchChemistries(text string) []string {
	var out []string
	for _, p := range chemistryProfiles {
		for _, alias := range p.Aliases {
			if strings.Contains(text, alias) {
				out = append(out, p.Type)
				break
			}
		}
	}
	return out
}
