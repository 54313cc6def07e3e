package refdata

// failureModes is the built-in failure-mode catalog. Order is stable so
// searches and reports list modes deterministically.
var failureModes = []FailureMode{
	{
		ID:       "fm-adhesion-loss",
		Name:     "Adhesive Bond Failure",
		Category: CategoryAdhesion,
		Causes: []string{
			"contaminated or dusty substrate",
			"application below minimum temperature",
			"incompatible or missing primer",
			"moisture on bonding surface",
		},
		Symptoms: []string{
			"membrane lifting at edges",
			"blisters between membrane and substrate",
			"clean peel with no adhesive transfer",
		},
		TimeToFailure: "weeks to months",
		Severity:      SeverityFunctional,
		Prevention: []string{
			"clean and dry substrate before application",
			"verify ambient and substrate temperature against product limits",
			"use the primer specified for the substrate",
		},
	},
	{
		ID:       "fm-cohesive-split",
		Name:     "Cohesive Splitting",
		Category: CategoryCohesion,
		Causes: []string{
			"sealant joint movement beyond rated capability",
			"cured material overstressed in thin sections",
		},
		Symptoms: []string{
			"tear through the body of the material",
			"material residue on both bonded faces",
		},
		TimeToFailure: "months to years",
		Severity:      SeverityFunctional,
		Prevention: []string{
			"size joints for expected movement",
			"maintain minimum sealant depth with backer rod",
		},
	},
	{
		ID:       "fm-puncture",
		Name:     "Puncture and Tear",
		Category: CategoryMechanical,
		Causes: []string{
			"foot traffic without walkway protection",
			"dropped tools or sharp debris",
			"hail impact on unsupported membrane",
		},
		Symptoms: []string{
			"localized membrane breach",
			"leaks traced to small openings",
		},
		TimeToFailure: "immediate",
		Severity:      SeverityStructural,
		Prevention: []string{
			"install walkway pads on traffic routes",
			"select thicker membrane where impact is expected",
		},
	},
	{
		ID:       "fm-thermal-cycling",
		Name:     "Thermal Cycling Fatigue",
		Category: CategoryThermal,
		Causes: []string{
			"repeated expansion and contraction across seasons",
			"dark surfaces in full sun driving high surface temperatures",
		},
		Symptoms: []string{
			"seam fatigue and fishmouthing",
			"cracking at fasteners and penetrations",
		},
		TimeToFailure: "years",
		Severity:      SeverityFunctional,
		Prevention: []string{
			"allow for thermal movement at terminations",
			"use reflective surfacing in hot climates",
		},
	},
	{
		ID:       "fm-cold-embrittlement",
		Name:     "Low-Temperature Embrittlement",
		Category: CategoryThermal,
		Causes: []string{
			"service temperature below rated low-temperature flexibility",
			"handling or flexing membrane in freezing conditions",
		},
		Symptoms: []string{
			"brittle cracking when flexed",
			"shattering at fold lines",
		},
		TimeToFailure: "immediate in cold weather",
		Severity:      SeverityStructural,
		Prevention: []string{
			"check low-temperature flexibility rating against climate",
			"avoid installation below the product minimum",
		},
		AffectedChemistries: []string{"pvc", "tpo", "asphalt"},
	},
	{
		ID:       "fm-moisture-intrusion",
		Name:     "Moisture Intrusion and Re-emulsification",
		Category: CategoryMoisture,
		Causes: []string{
			"ponding water on water-sensitive coatings",
			"application before rain without cure time",
			"trapped moisture in substrate",
		},
		Symptoms: []string{
			"softening or re-emulsification of coating",
			"blistering from vapor drive",
			"wash-off of uncured material",
		},
		TimeToFailure: "days to weeks",
		Severity:      SeverityFunctional,
		Prevention: []string{
			"verify positive drainage before coating",
			"respect cure windows before expected rain",
		},
		AffectedChemistries: []string{"acrylic"},
	},
	{
		ID:       "fm-plasticizer-migration",
		Name:     "Plasticizer Migration",
		Category: CategoryChemical,
		Causes: []string{
			"direct contact between plasticized membrane and asphalt",
			"contact with incompatible polystyrene insulation",
		},
		Symptoms: []string{
			"membrane stiffening and shrinkage",
			"staining and tackiness at the contact interface",
		},
		TimeToFailure: "months to years",
		Severity:      SeverityStructural,
		Prevention: []string{
			"install a separation layer between incompatible materials",
			"verify chemistry compatibility before layering",
		},
		AffectedChemistries: []string{"pvc"},
	},
	{
		ID:       "fm-chemical-attack",
		Name:     "Chemical and Oil Attack",
		Category: CategoryChemical,
		Causes: []string{
			"exhaust grease or oils on sensitive membranes",
			"solvent spills or incompatible cleaners",
		},
		Symptoms: []string{
			"swelling and softening of the membrane",
			"surface degradation near kitchen or mechanical exhausts",
		},
		TimeToFailure: "weeks to months",
		Severity:      SeverityFunctional,
		Prevention: []string{
			"use grease guards at exhaust outlets",
			"specify oil-resistant chemistry near contamination sources",
		},
		AffectedChemistries: []string{"epdm", "asphalt"},
	},
	{
		ID:       "fm-uv-degradation",
		Name:     "Ultraviolet Degradation",
		Category: CategoryUV,
		Causes: []string{
			"prolonged sun exposure of unprotected material",
			"missing surfacing or topcoat on UV-sensitive product",
		},
		Symptoms: []string{
			"chalking and surface crazing",
			"loss of elasticity and color fade",
		},
		TimeToFailure: "years",
		Severity:      SeverityCosmetic,
		Prevention: []string{
			"apply the specified UV-protective surfacing",
			"select UV-stable chemistry for exposed applications",
		},
		AffectedChemistries: []string{"asphalt", "modified bitumen", "polyurethane"},
	},
	{
		ID:       "fm-biological-growth",
		Name:     "Biological Growth",
		Category: CategoryBiological,
		Causes: []string{
			"standing water with organic debris",
			"shaded damp surfaces",
		},
		Symptoms: []string{
			"algae or mildew staining",
			"root penetration from vegetation",
		},
		TimeToFailure: "years",
		Severity:      SeverityCosmetic,
		Prevention: []string{
			"maintain drainage and clear debris",
			"use mildew-resistant formulations in damp climates",
		},
	},
	{
		ID:       "fm-seam-workmanship",
		Name:     "Seam Workmanship Failure",
		Category: CategoryInstallation,
		Causes: []string{
			"insufficient weld temperature or pressure",
			"contaminated seam area during hot-air welding",
			"missed probe testing after welding",
		},
		Symptoms: []string{
			"seam peel under probe",
			"leaks along field seams",
		},
		TimeToFailure: "immediate to months",
		Severity:      SeverityStructural,
		Prevention: []string{
			"follow manufacturer weld parameters and test welds daily",
			"probe all completed seams",
		},
		AffectedChemistries: []string{"tpo", "pvc"},
	},
	{
		ID:       "fm-design-ponding",
		Name:     "Ponding From Inadequate Slope",
		Category: CategoryDesign,
		Causes: []string{
			"deck slope below minimum drainage requirement",
			"clogged or undersized drains",
		},
		Symptoms: []string{
			"standing water 48 hours after rain",
			"accelerated aging in ponded areas",
		},
		TimeToFailure: "years",
		Severity:      SeverityFunctional,
		Prevention: []string{
			"design to at least 1/4 inch per foot slope",
			"add drains or crickets at low spots",
		},
	},
}

// FailureModes returns the full built-in failure-mode catalog.
func FailureModes() []FailureMode { return failureModes }

// FailureModeByID returns the mode with the given ID, or false when unknown.
func FailureModeByID(id string) (FailureMode, bool) {
	for _, fm := range failureModes {
		if fm.ID == id {
			return fm, true
		}
	}
	return FailureMode{}, false
}

// FailureModesByCategory returns all modes in the given category, in catalog
// order.
func FailureModesByCategory(c FailureCategory) []FailureMode {
	var out []FailureMode
	for _, fm := range failureModes {
		if fm.Category == c {
			out = append(out, fm)
		}
	}
	return out
}

// FailureModesForChemistry returns modes that affect the given chemistry
// type, including modes with no chemistry restriction.
func FailureModesForChemistry(chemistry string) []FailureMode {
	var out []FailureMode
	for _, fm := range failureModes {
		if len(fm.AffectedChemistries) == 0 {
			out = append(out, fm)
			continue
		}
		for _, c := range fm.AffectedChemistries {
			if c == chemistry {
				out = append(out, fm)
				break
			}
		}
	}
	return out
}
