package catalog

import "context"

// SeedRecords is the built-in demonstration catalog. The seed CLI command
// loads it into whichever store the config points at; tests use it directly
// through NewMemoryStoreWith.
func SeedRecords() []MaterialRecord {
	return []MaterialRecord{
		{
			ID:           "mat-epdm-60",
			TaxonomyCode: "07/53/23-EPDM-60",
			Classification: Classification{
				Division:     "07",
				Category:     "membrane",
				AssemblyType: "single-ply",
				Condition:    "new",
				Manufacturer: "Summit Roofing Systems",
				ProductCode:  "SRS-E60",
				ProductName:  "SureSeal EPDM 60",
				FullName:     "SureSeal 60 mil EPDM Roofing Membrane",
			},
			Physical: Physical{
				ChemistryType: "epdm",
				ChemistryCode: "EPDM",
				Reinforcement: "none",
				Surface:       "smooth",
				ThicknessMil:  60,
				Color:         "black",
				FireClass:     "A",
			},
			Performance: Performance{
				VaporPermeance:     "low",
				TensileStrengthPSI: 1305,
				ElongationPct:      300,
				ServiceTempMinF:    Float64Ptr(-40),
				ServiceTempMaxF:    Float64Ptr(180),
				AppTempMinF:        Float64Ptr(40),
				AppTempMaxF:        Float64Ptr(120),
			},
			Engineering: Engineering{
				FailureModeRefs: []string{"fm-adhesion-loss", "fm-chemical-attack", "fm-puncture", "fm-seam-workmanship"},
				CompatibilityMatrix: []CompatibilityEntry{
					{MaterialType: "asphalt", Status: "incompatible", Reason: "asphalt oils swell and degrade EPDM on contact"},
					{MaterialType: "polyiso insulation (ISO)", Status: "compatible", Reason: "standard substrate for adhered EPDM"},
					{MaterialType: "silicone coating", Status: "conditional", Reason: "weathered EPDM needs preparation before coating", Requirement: "power wash and apply EPDM primer before silicone"},
				},
				Constraints: []ApplicationConstraint{
					{Type: "temperature", Min: Float64Ptr(40), Unit: "F", Description: "adhesive application requires 40F and rising", Consequence: "bond failure below minimum temperature", Severity: SeverityError},
					{Type: "moisture", Description: "substrate must be dry at time of application", Consequence: "blistering from trapped moisture", Severity: SeverityWarning},
				},
				CodeReferences: []CodeReference{
					{Code: "ASTM D4637", Description: "standard specification for EPDM sheet", Compliant: true},
					{Code: "FM 4470", Description: "single-ply roof assembly approval", Compliant: true},
				},
				FireRatings:       []string{"UL Class A", "FM Class 1"},
				InstallationGuide: "SRS-E60 fully adhered installation manual, rev 2024",
			},
		},
		{
			ID:           "mat-tpo-60",
			TaxonomyCode: "07/54/23-TPO-60",
			Classification: Classification{
				Division:     "07",
				Category:     "membrane",
				AssemblyType: "single-ply",
				Condition:    "new",
				Manufacturer: "Summit Roofing Systems",
				ProductCode:  "SRS-T60",
				ProductName:  "ThermoWeld TPO 60",
				FullName:     "ThermoWeld 60 mil TPO Roofing Membrane",
			},
			Physical: Physical{
				ChemistryType: "tpo",
				ChemistryCode: "TPO",
				Reinforcement: "polyester scrim",
				Surface:       "smooth",
				ThicknessMil:  60,
				Color:         "white",
				FireClass:     "A",
			},
			Performance: Performance{
				VaporPermeance:     "low",
				TensileStrengthPSI: 2200,
				ElongationPct:      25,
				ServiceTempMinF:    Float64Ptr(-30),
				ServiceTempMaxF:    Float64Ptr(160),
				AppTempMinF:        Float64Ptr(20),
				AppTempMaxF:        Float64Ptr(120),
			},
			Engineering: Engineering{
				FailureModeRefs: []string{"fm-seam-workmanship", "fm-puncture", "fm-thermal-cycling"},
				CompatibilityMatrix: []CompatibilityEntry{
					{MaterialType: "asphalt", Status: "conditional", Reason: "direct asphalt contact stains TPO", Requirement: "install a separation sheet over asphaltic surfaces"},
					{MaterialType: "pvc membrane", Status: "incompatible", Reason: "TPO cannot be welded to PVC"},
				},
				Constraints: []ApplicationConstraint{
					{Type: "temperature", Min: Float64Ptr(20), Unit: "F", Description: "hot-air welding permitted to 20F with adjusted parameters", Consequence: "cold welds below minimum", Severity: SeverityError},
				},
				CodeReferences: []CodeReference{
					{Code: "ASTM D6878", Description: "standard specification for TPO sheet", Compliant: true},
				},
				FireRatings:       []string{"UL Class A"},
				InstallationGuide: "ThermoWeld heat-weld parameter guide",
			},
		},
		{
			ID:           "mat-pvc-50",
			TaxonomyCode: "07/54/19-PVC-50",
			Classification: Classification{
				Division:     "07",
				Category:     "membrane",
				AssemblyType: "single-ply",
				Condition:    "new",
				Manufacturer: "ClearSpan Membranes",
				ProductCode:  "CSM-P50",
				ProductName:  "AquaBar PVC 50",
				FullName:     "AquaBar 50 mil PVC Roofing Membrane",
			},
			Physical: Physical{
				ChemistryType: "pvc",
				ChemistryCode: "PVC",
				Reinforcement: "polyester scrim",
				Surface:       "smooth",
				ThicknessMil:  50,
				Color:         "gray",
				FireClass:     "A",
			},
			Performance: Performance{
				VaporPermeance:     "low",
				TensileStrengthPSI: 2100,
				ElongationPct:      30,
				ServiceTempMinF:    Float64Ptr(-20),
				ServiceTempMaxF:    Float64Ptr(160),
				AppTempMinF:        Float64Ptr(25),
				AppTempMaxF:        Float64Ptr(110),
			},
			Engineering: Engineering{
				FailureModeRefs: []string{"fm-plasticizer-migration", "fm-seam-workmanship", "fm-cold-embrittlement"},
				CompatibilityMatrix: []CompatibilityEntry{
					{MaterialType: "asphalt", Status: "incompatible", Reason: "asphalt contact drives plasticizer loss"},
					{MaterialType: "polystyrene insulation (EPS)", Status: "incompatible", Reason: "plasticizers attack polystyrene foam"},
				},
				CodeReferences: []CodeReference{
					{Code: "ASTM D4434", Description: "standard specification for PVC sheet", Compliant: true},
				},
				FireRatings: []string{"UL Class A"},
			},
		},
		{
			ID:           "mat-modbit-cap",
			TaxonomyCode: "07/52/16-MB-160",
			Classification: Classification{
				Division:     "07",
				Category:     "membrane",
				AssemblyType: "multi-ply",
				Condition:    "new",
				Manufacturer: "Granite State Bitumen",
				ProductCode:  "GSB-CAP",
				ProductName:  "StormCap SBS Cap Sheet",
				FullName:     "StormCap SBS Modified Bitumen Granulated Cap Sheet",
			},
			Physical: Physical{
				ChemistryType: "modified bitumen",
				ChemistryCode: "MB",
				Reinforcement: "fiberglass mat",
				Surface:       "granulated",
				ThicknessMil:  160,
				Color:         "white granule",
				FireClass:     "A",
			},
			Performance: Performance{
				VaporPermeance:     "low",
				TensileStrengthPSI: 1500,
				ElongationPct:      40,
				ServiceTempMinF:    Float64Ptr(-20),
				ServiceTempMaxF:    Float64Ptr(190),
				AppTempMinF:        Float64Ptr(45),
				AppTempMaxF:        Float64Ptr(100),
			},
			Engineering: Engineering{
				FailureModeRefs: []string{"fm-uv-degradation", "fm-thermal-cycling", "fm-design-ponding"},
				CompatibilityMatrix: []CompatibilityEntry{
					{MaterialType: "polystyrene insulation (EPS)", Status: "incompatible", Reason: "torch heat and bitumen solvents melt polystyrene"},
				},
				Constraints: []ApplicationConstraint{
					{Type: "temperature", Min: Float64Ptr(45), Unit: "F", Description: "torch application requires 45F minimum", Consequence: "poor interply adhesion in cold weather", Severity: SeverityError},
				},
				CodeReferences: []CodeReference{
					{Code: "ASTM D6164", Description: "SBS modified bitumen sheet", Compliant: true},
				},
				FireRatings: []string{"UL Class A"},
			},
		},
		{
			ID:           "mat-sil-coat",
			TaxonomyCode: "07/56/00-SIL-HS",
			Classification: Classification{
				Division:     "07",
				Category:     "coating",
				AssemblyType: "fluid-applied",
				Condition:    "restoration",
				Manufacturer: "Cascade Coatings",
				ProductCode:  "CC-SIL100",
				ProductName:  "EverDry Silicone 100",
				FullName:     "EverDry High Solids Silicone Restoration Coating",
			},
			Physical: Physical{
				ChemistryType: "silicone",
				ChemistryCode: "SIL",
				Surface:       "smooth",
				Color:         "white",
				FireClass:     "A",
			},
			Performance: Performance{
				VaporPermeance:     "high",
				TensileStrengthPSI: 350,
				ElongationPct:      200,
				ServiceTempMinF:    Float64Ptr(-65),
				ServiceTempMaxF:    Float64Ptr(300),
				AppTempMinF:        Float64Ptr(35),
				AppTempMaxF:        Float64Ptr(120),
			},
			Engineering: Engineering{
				FailureModeRefs: []string{"fm-adhesion-loss", "fm-biological-growth"},
				CompatibilityMatrix: []CompatibilityEntry{
					{MaterialType: "acrylic coating", Status: "incompatible", Reason: "acrylic will not bond over cured silicone"},
					{MaterialType: "asphalt", Status: "conditional", Reason: "bleed-through stains silicone", Requirement: "apply bleed-blocking primer over asphaltic substrates"},
				},
				Constraints: []ApplicationConstraint{
					{Type: "humidity", Max: Float64Ptr(85), Unit: "%", Description: "relative humidity below 85 percent during cure", Consequence: "surface defects and slow cure", Severity: SeverityWarning},
				},
				FireRatings:       []string{"UL Class A over approved assemblies"},
				InstallationGuide: "EverDry restoration application guide",
			},
		},
		{
			ID:           "mat-acr-coat",
			TaxonomyCode: "07/56/00-ACR-EL",
			Classification: Classification{
				Division:     "07",
				Category:     "coating",
				AssemblyType: "fluid-applied",
				Condition:    "restoration",
				Manufacturer: "Cascade Coatings",
				ProductCode:  "CC-ACR200",
				ProductName:  "BrightShield Acrylic 200",
				FullName:     "BrightShield Elastomeric Acrylic Roof Coating",
			},
			Physical: Physical{
				ChemistryType: "acrylic",
				ChemistryCode: "ACR",
				Surface:       "smooth",
				Color:         "white",
				FireClass:     "A",
			},
			Performance: Performance{
				VaporPermeance:     "high",
				TensileStrengthPSI: 250,
				ElongationPct:      150,
				ServiceTempMinF:    Float64Ptr(-10),
				ServiceTempMaxF:    Float64Ptr(180),
				AppTempMinF:        Float64Ptr(40),
				AppTempMaxF:        Float64Ptr(95),
			},
			Engineering: Engineering{
				FailureModeRefs: []string{"fm-moisture-intrusion", "fm-adhesion-loss"},
				CompatibilityMatrix: []CompatibilityEntry{
					{MaterialType: "silicone coating", Status: "incompatible", Reason: "acrylic does not adhere to silicone"},
					{MaterialType: "asphalt", Status: "conditional", Reason: "asphalt exudate bleeds through acrylic", Requirement: "apply stain-blocking primer first"},
				},
				Constraints: []ApplicationConstraint{
					{Type: "temperature", Min: Float64Ptr(40), Max: Float64Ptr(95), Unit: "F", Description: "apply between 40F and 95F", Consequence: "wash-off or flash drying outside range", Severity: SeverityError},
					{Type: "moisture", Description: "no rain within 24 hours of application", Consequence: "re-emulsification and wash-off", Severity: SeverityError},
					{Type: "drainage", Description: "not for ponding water areas", Consequence: "coating softens under standing water", Severity: SeverityWarning},
				},
				CodeReferences: []CodeReference{
					{Code: "ASTM D6083", Description: "liquid-applied acrylic coating", Compliant: true},
					{Code: "CRRC Rated", Description: "cool roof rating council listing", Compliant: true},
				},
				InstallationGuide: "BrightShield two-coat application bulletin",
			},
		},
		{
			ID:           "mat-iso-25",
			TaxonomyCode: "07/22/16-ISO-25",
			Classification: Classification{
				Division:     "07",
				Category:     "insulation",
				AssemblyType: "board",
				Condition:    "new",
				Manufacturer: "NorthStar Insulation",
				ProductCode:  "NSI-25",
				ProductName:  "ThermalLock ISO 2.5",
				FullName:     "ThermalLock 2.5 inch Polyisocyanurate Insulation Board",
			},
			Physical: Physical{
				ChemistryType: "polyiso",
				ChemistryCode: "ISO",
				Reinforcement: "glass facer",
				ThicknessMil:  2500,
				FireClass:     "A",
			},
			Performance: Performance{
				VaporPermeance:  "medium",
				ServiceTempMinF: Float64Ptr(-40),
				ServiceTempMaxF: Float64Ptr(200),
			},
			Engineering: Engineering{
				FailureModeRefs: []string{"fm-moisture-intrusion"},
				CodeReferences: []CodeReference{
					{Code: "ASTM C1289", Description: "faced polyiso insulation board", Compliant: true},
				},
			},
		},
		{
			ID:           "mat-bur-4ply",
			TaxonomyCode: "07/51/13-ASP-4P",
			Classification: Classification{
				Division:     "07",
				Category:     "membrane",
				AssemblyType: "built-up",
				Condition:    "existing",
				Manufacturer: "Granite State Bitumen",
				ProductCode:  "GSB-BUR4",
				ProductName:  "Legacy BUR 4-Ply",
				FullName:     "Legacy Four Ply Asphalt Built-Up Roof System",
			},
			Physical: Physical{
				ChemistryType: "asphalt",
				ChemistryCode: "ASP",
				Reinforcement: "fiberglass felts",
				Surface:       "gravel",
				Color:         "gravel",
				FireClass:     "A",
			},
			Performance: Performance{
				VaporPermeance:  "low",
				ServiceTempMinF: Float64Ptr(0),
				ServiceTempMaxF: Float64Ptr(160),
			},
			Engineering: Engineering{
				FailureModeRefs: []string{"fm-uv-degradation", "fm-chemical-attack", "fm-design-ponding"},
				CompatibilityMatrix: []CompatibilityEntry{
					{MaterialType: "epdm membrane", Status: "incompatible", Reason: "asphalt oils degrade EPDM rubber"},
					{MaterialType: "polystyrene insulation (EPS)", Status: "incompatible", Reason: "hot asphalt melts polystyrene"},
				},
			},
		},
	}
}

// Seed writes the built-in records into the store, overwriting records with
// the same IDs.
func Seed(ctx context.Context, store Store) (int, error) {
	recs := SeedRecords()
	for _, r := range recs {
		if err := store.Put(ctx, r); err != nil {
			return 0, err
		}
	}
	return len(recs), nil
}
