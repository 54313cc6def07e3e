package refdata

// globalCompatibilityRules is the built-in chemistry-level rule table. It
// supplements per-material compatibility matrices: material-specific entries
// take precedence, these rules fill the gaps. Order matters, the first rule
// matching a material pairing wins.
var globalCompatibilityRules = []CompatibilityRule{
	{
		ChemistryType: "epdm",
		MaterialType:  "asphalt",
		Status:        StatusIncompatible,
		Reason:        "asphalt oils swell and degrade EPDM rubber on contact",
	},
	{
		ChemistryType: "epdm",
		MaterialType:  "modified bitumen",
		Status:        StatusIncompatible,
		Reason:        "bituminous oils attack EPDM, direct contact causes swelling",
	},
	{
		ChemistryType: "epdm",
		MaterialType:  "silicone",
		Status:        StatusConditional,
		Reason:        "silicone adheres poorly to weathered EPDM without preparation",
		Requirement:   "clean and prime the EPDM surface per coating manufacturer",
	},
	{
		ChemistryType: "epdm",
		MaterialType:  "polyiso",
		Status:        StatusCompatible,
		Reason:        "polyisocyanurate insulation is a standard substrate for EPDM",
	},
	{
		ChemistryType: "pvc",
		MaterialType:  "asphalt",
		Status:        StatusIncompatible,
		Reason:        "asphalt contact drives plasticizer migration out of PVC",
	},
	{
		ChemistryType: "pvc",
		MaterialType:  "polystyrene",
		Status:        StatusIncompatible,
		Reason:        "PVC plasticizers attack expanded and extruded polystyrene",
	},
	{
		ChemistryType: "pvc",
		MaterialType:  "epdm",
		Status:        StatusIncompatible,
		Reason:        "plasticized PVC and EPDM are chemically incompatible in contact",
	},
	{
		ChemistryType: "pvc",
		MaterialType:  "polyiso",
		Status:        StatusCompatible,
		Reason:        "faced polyiso is an accepted substrate for PVC membranes",
	},
	{
		ChemistryType: "tpo",
		MaterialType:  "asphalt",
		Status:        StatusConditional,
		Reason:        "direct asphalt contact stains and can degrade TPO over time",
		Requirement:   "install a separation sheet between TPO and asphaltic products",
	},
	{
		ChemistryType: "tpo",
		MaterialType:  "pvc",
		Status:        StatusIncompatible,
		Reason:        "TPO and PVC cannot be hot-air welded to each other",
	},
	{
		ChemistryType: "tpo",
		MaterialType:  "polystyrene",
		Status:        StatusCompatible,
		Reason:        "TPO contains no plasticizers that attack polystyrene",
	},
	{
		ChemistryType: "modified bitumen",
		MaterialType:  "polystyrene",
		Status:        StatusIncompatible,
		Reason:        "hot application and solvents in bitumen melt polystyrene",
	},
	{
		ChemistryType: "modified bitumen",
		MaterialType:  "asphalt",
		Status:        StatusCompatible,
		Reason:        "modified bitumen is asphalt based and bonds to asphaltic substrates",
	},
	{
		ChemistryType: "silicone",
		MaterialType:  "silicone",
		Status:        StatusCompatible,
		Reason:        "silicone recoats over existing silicone with surface cleaning",
	},
	{
		ChemistryType: "silicone",
		MaterialType:  "acrylic",
		Status:        StatusIncompatible,
		Reason:        "nothing adheres reliably to cured silicone, acrylic topcoats peel",
	},
	{
		ChemistryType: "silicone",
		MaterialType:  "asphalt",
		Status:        StatusConditional,
		Reason:        "asphalt bleed-through can stain silicone coatings",
		Requirement:   "apply a bleed-blocking primer over asphaltic surfaces",
	},
	{
		ChemistryType: "acrylic",
		MaterialType:  "asphalt",
		Status:        StatusConditional,
		Reason:        "asphalt exudate bleeds through unprimed acrylic coatings",
		Requirement:   "apply a stain-blocking primer and confirm positive drainage",
	},
	{
		ChemistryType: "acrylic",
		MaterialType:  "silicone",
		Status:        StatusIncompatible,
		Reason:        "acrylic coatings do not bond to silicone surfaces",
	},
	{
		ChemistryType: "polyurethane",
		MaterialType:  "asphalt",
		Status:        StatusConditional,
		Reason:        "some urethanes soften over fresh asphaltic surfaces",
		Requirement:   "allow asphalt to age and use an epoxy or urethane primer",
	},
	{
		ChemistryType: "polyurethane",
		MaterialType:  "concrete",
		Status:        StatusCompatible,
		Reason:        "polyurethane sealants and coatings bond well to prepared concrete",
	},
	{
		ChemistryType: "asphalt",
		MaterialType:  "epdm",
		Status:        StatusIncompatible,
		Reason:        "asphaltic products degrade EPDM membranes on contact",
	},
	{
		ChemistryType: "asphalt",
		MaterialType:  "polystyrene",
		Status:        StatusIncompatible,
		Reason:        "asphalt solvents and heat dissolve polystyrene insulation",
	},
}

// GlobalCompatibilityRules returns the built-in chemistry-level rule table in
// declaration order.
func GlobalCompatibilityRules() []CompatibilityRule { return globalCompatibilityRules }

// RulesForChemistry returns the global rules whose subject chemistry matches,
// preserving declaration order.
func RulesForChemistry(chemistry string) []CompatibilityRule {
	var out []CompatibilityRule
	for _, r := range globalCompatibilityRules {
		if r.ChemistryType == chemistry {
			out = append(out, r)
		}
	}
	return out
}
