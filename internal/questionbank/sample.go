package questionbank

import "github.com/certprep/backend/internal/models"

// SampleQuestions returns the built-in fallback set used when the CSV
// load fails. It is intentionally small but covers both question types
// and several categories so the trainer stays usable.
func SampleQuestions() []models.Question {
	return []models.Question{
		{
			ID: 1, Category: "road", Department: models.DeptCivil,
			QuestionType: models.TypeBasic, Difficulty: "standard",
			Text:    "Which layer of a flexible pavement distributes wheel loads to the subgrade?",
			ChoiceA: "Surface course", ChoiceB: "Base course",
			ChoiceC: "Subbase course", ChoiceD: "Seal coat",
			CorrectAnswer: "B",
			Explanation:   "The base course is the main structural layer spreading loads downward.",
		},
		{
			ID: 2, Category: "road", Department: models.DeptCivil,
			QuestionType: models.TypeBasic, Difficulty: "standard",
			Text:    "The stopping sight distance on a highway depends primarily on which two factors?",
			ChoiceA: "Lane width and shoulder width", ChoiceB: "Design speed and reaction time",
			ChoiceC: "Pavement type and grade", ChoiceD: "Traffic volume and lane count",
			CorrectAnswer: "B",
			Explanation:   "Stopping sight distance combines perception-reaction distance and braking distance, both driven by speed.",
		},
		{
			ID: 3, Category: "river", Department: models.DeptCivil,
			QuestionType: models.TypeBasic, Difficulty: "standard",
			Text:    "A levee's primary function is to:",
			ChoiceA: "Increase channel roughness", ChoiceB: "Confine flood flows within the channel",
			ChoiceC: "Raise the riverbed", ChoiceD: "Reduce sediment transport",
			CorrectAnswer: "B",
			Explanation:   "Levees are embankments built to keep flood stages out of the protected lowland.",
		},
		{
			ID: 4, Category: "concrete", Department: models.DeptConstruction,
			QuestionType: models.TypeBasic, Difficulty: "standard",
			Text:    "Which factor most strongly controls the compressive strength of concrete?",
			ChoiceA: "Water-cement ratio", ChoiceB: "Aggregate color",
			ChoiceC: "Formwork material", ChoiceD: "Curing room humidity alone",
			CorrectAnswer: "A",
			Explanation:   "Lower water-cement ratios produce denser paste and higher strength.",
		},
		{
			ID: 5, Category: "soil", Department: models.DeptCivil,
			QuestionType: models.TypeBasic, Difficulty: "advanced",
			Text:    "Terzaghi's effective stress equals total stress minus:",
			ChoiceA: "Shear stress", ChoiceB: "Pore water pressure",
			ChoiceC: "Overburden pressure", ChoiceD: "Preconsolidation pressure",
			CorrectAnswer: "B",
			Explanation:   "Effective stress = total stress - pore water pressure.",
		},
		{
			ID: 6, Category: "power_systems", Department: models.DeptElectrical,
			QuestionType: models.TypeSpecialist, Year: 2024, Difficulty: "standard",
			Text:    "In a three-phase balanced system, line voltage relates to phase voltage (star connection) by a factor of:",
			ChoiceA: "1", ChoiceB: "sqrt(2)", ChoiceC: "sqrt(3)", ChoiceD: "3",
			CorrectAnswer: "C",
			Explanation:   "For a star connection, V_line = sqrt(3) x V_phase.",
		},
		{
			ID: 7, Category: "machine_design", Department: models.DeptMechanical,
			QuestionType: models.TypeSpecialist, Year: 2024, Difficulty: "standard",
			Text:    "A factor of safety is defined as the ratio of:",
			ChoiceA: "Working stress to ultimate stress", ChoiceB: "Ultimate stress to working stress",
			ChoiceC: "Yield strain to working strain", ChoiceD: "Elastic limit to proportional limit",
			CorrectAnswer: "B",
			Explanation:   "FoS = ultimate (or yield) stress divided by allowable working stress.",
		},
		{
			ID: 8, Category: "water_treatment", Department: models.DeptWaterSupply,
			QuestionType: models.TypeSpecialist, Year: 2023, Difficulty: "standard",
			Text:    "Coagulation in water treatment primarily removes:",
			ChoiceA: "Dissolved gases", ChoiceB: "Colloidal particles",
			ChoiceC: "Pathogenic bacteria", ChoiceD: "Hardness ions",
			CorrectAnswer: "B",
			Explanation:   "Coagulants destabilize colloids so they flocculate and settle.",
		},
		{
			ID: 9, Category: "environment_assessment", Department: models.DeptEnvironment,
			QuestionType: models.TypeSpecialist, Year: 2023, Difficulty: "advanced",
			Text:    "BOD measures the amount of oxygen consumed by:",
			ChoiceA: "Chemical oxidation of minerals", ChoiceB: "Microbial decomposition of organic matter",
			ChoiceC: "Photosynthesis of algae", ChoiceD: "Evaporation at the surface",
			CorrectAnswer: "B",
			Explanation:   "Biochemical oxygen demand reflects aerobic microbial breakdown of organics.",
		},
		{
			ID: 10, Category: "networks", Department: models.DeptInformation,
			QuestionType: models.TypeSpecialist, Year: 2025, Difficulty: "standard",
			Text:    "Which protocol resolves an IP address to a hardware (MAC) address on a LAN?",
			ChoiceA: "DNS", ChoiceB: "DHCP", ChoiceC: "ARP", ChoiceD: "ICMP",
			CorrectAnswer: "C",
			Explanation:   "ARP maps IPv4 addresses to link-layer addresses.",
		},
		{
			ID: 11, Category: "tunnel", Department: models.DeptCivil,
			QuestionType: models.TypeBasic, Difficulty: "advanced",
			Text:    "The NATM tunnelling method relies primarily on:",
			ChoiceA: "Full steel lining before excavation", ChoiceB: "Mobilizing the strength of the surrounding ground",
			ChoiceC: "Freezing the ground ahead of the face", ChoiceD: "Cut-and-cover excavation",
			CorrectAnswer: "B",
			Explanation:   "The New Austrian Tunnelling Method uses the ground itself as a load-bearing ring, supported by shotcrete and rock bolts.",
		},
		{
			ID: 12, Category: "surveying", Department: models.DeptConstruction,
			QuestionType: models.TypeBasic, Difficulty: "standard",
			Text:    "Closing error in a closed traverse is distributed by:",
			ChoiceA: "Bowditch's rule", ChoiceB: "Simpson's rule",
			ChoiceC: "Trapezoidal rule", ChoiceD: "Rankine's rule",
			CorrectAnswer: "A",
			Explanation:   "Bowditch (compass) rule adjusts coordinates in proportion to line lengths.",
		},
	}
}
