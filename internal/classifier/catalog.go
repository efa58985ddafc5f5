package classifier

import "github.com/civiclens/report-service/internal/domain"

// catalog is the ordered keyword table driving classification. Order is
// load-bearing: earlier sections shadow later ones, so roads and
// infrastructure outrank sanitation, then water, electricity, traffic,
// environment and public spaces.
var catalog = []Rule{
	// Roads and infrastructure
	{
		Keywords: []string{"pothole", "crater", "hole in road"},
		Result: domain.ClassificationResult{
			IssueType:  "Pothole",
			Department: "Municipal Roads",
			Urgency:    domain.UrgencyHigh,
			Reason:     "Potholes pose immediate safety hazards to vehicles and pedestrians, can cause accidents.",
		},
	},
	{
		Keywords: []string{"road damage", "broken road", "cracked road"},
		Result: domain.ClassificationResult{
			IssueType:  "Road Damage",
			Department: "Municipal Roads",
			Urgency:    domain.UrgencyHigh,
			Reason:     "Damaged roads create safety hazards and traffic disruptions.",
		},
	},
	{
		Keywords: []string{"footpath", "sidewalk", "pavement broken"},
		Result: domain.ClassificationResult{
			IssueType:  "Footpath Damage",
			Department: "Municipal Infrastructure",
			Urgency:    domain.UrgencyMedium,
			Reason:     "Broken footpaths endanger pedestrians, especially elderly and disabled citizens.",
		},
	},
	{
		Keywords: []string{"bridge", "overpass", "flyover"},
		Result: domain.ClassificationResult{
			IssueType:  "Bridge/Flyover Issue",
			Department: "Public Works Department",
			Urgency:    domain.UrgencyHigh,
			Reason:     "Bridge structural issues require immediate inspection for public safety.",
		},
	},
	{
		Keywords: []string{"manhole", "open drain cover", "missing cover"},
		Result: domain.ClassificationResult{
			IssueType:  "Open Manhole",
			Department: "Sewage & Drainage",
			Urgency:    domain.UrgencyHigh,
			Reason:     "Open manholes are life-threatening hazards, especially during night or rain.",
		},
	},
	{
		Keywords: []string{"speed breaker", "speed bump", "rumble strip"},
		Result: domain.ClassificationResult{
			IssueType:  "Speed Breaker Issue",
			Department: "Traffic Management",
			Urgency:    domain.UrgencyMedium,
			Reason:     "Improper speed breakers can damage vehicles and cause accidents.",
		},
	},
	{
		Keywords: []string{"road marking", "zebra crossing", "lane marking"},
		Result: domain.ClassificationResult{
			IssueType:  "Road Marking Faded",
			Department: "Traffic Management",
			Urgency:    domain.UrgencyMedium,
			Reason:     "Faded road markings reduce traffic safety and cause confusion.",
		},
	},
	{
		Keywords: []string{"divider", "median", "road barrier"},
		Result: domain.ClassificationResult{
			IssueType:  "Road Divider Damage",
			Department: "Municipal Roads",
			Urgency:    domain.UrgencyMedium,
			Reason:     "Damaged dividers can lead to wrong-way driving and accidents.",
		},
	},
	{
		Keywords: []string{"construction debris", "construction material", "building waste on road"},
		Result: domain.ClassificationResult{
			IssueType:  "Construction Debris",
			Department: "Municipal Corporation",
			Urgency:    domain.UrgencyMedium,
			Reason:     "Construction debris blocks roads and creates safety hazards.",
		},
	},
	{
		Keywords: []string{"encroachment", "illegal shop", "hawker blocking"},
		Result: domain.ClassificationResult{
			IssueType:  "Road Encroachment",
			Department: "Municipal Enforcement",
			Urgency:    domain.UrgencyMedium,
			Reason:     "Encroachments reduce road width and cause traffic congestion.",
		},
	},

	// Sanitation and waste management
	{
		Keywords: []string{"garbage", "trash pile", "waste accumulation"},
		Result: domain.ClassificationResult{
			IssueType:  "Garbage Accumulation",
			Department: "Sanitation Department",
			Urgency:    domain.UrgencyMedium,
			Reason:     "Accumulated waste causes health hazards, attracts pests, and creates foul odors.",
		},
	},
	{
		Keywords: []string{"overflowing bin", "dustbin full", "trash can overflow"},
		Result: domain.ClassificationResult{
			IssueType:  "Overflowing Dustbin",
			Department: "Sanitation Department",
			Urgency:    domain.UrgencyMedium,
			Reason:     "Overflowing bins spread litter and create unhygienic conditions.",
		},
	},
	{
		Keywords: []string{"garbage truck", "waste collection", "trash not picked"},
		Result: domain.ClassificationResult{
			IssueType:  "Missed Garbage Collection",
			Department: "Sanitation Department",
			Urgency:    domain.UrgencyMedium,
			Reason:     "Irregular waste collection leads to garbage buildup and sanitation issues.",
		},
	},
	{
		Keywords: []string{"illegal dumping", "unauthorized dump", "waste dump"},
		Result: domain.ClassificationResult{
			IssueType:  "Illegal Dumping",
			Department: "Sanitation & Enforcement",
			Urgency:    domain.UrgencyHigh,
			Reason:     "Illegal dumping violates regulations and creates environmental hazards.",
		},
	},
	{
		Keywords: []string{"medical waste", "hospital waste", "biomedical"},
		Result: domain.ClassificationResult{
			IssueType:  "Medical Waste Disposal",
			Department: "Health Department",
			Urgency:    domain.UrgencyHigh,
			Reason:     "Improper medical waste disposal poses serious health and biohazard risks.",
		},
	},
	{
		Keywords: []string{"plastic waste", "plastic pollution", "single-use plastic"},
		Result: domain.ClassificationResult{
			IssueType:  "Plastic Waste Issue",
			Department: "Environment Department",
			Urgency:    domain.UrgencyMedium,
			Reason:     "Plastic waste contributes to environmental pollution and drainage blockage.",
		},
	},
	{
		Keywords: []string{"e-waste", "electronic waste", "old electronics"},
		Result: domain.ClassificationResult{
			IssueType:  "E-Waste Disposal",
			Department: "Environment Department",
			Urgency:    domain.UrgencyMedium,
			Reason:     "E-waste contains toxic materials requiring specialized disposal.",
		},
	},
	{
		Keywords: []string{"public toilet dirty", "restroom filthy", "washroom unclean"},
		Result: domain.ClassificationResult{
			IssueType:  "Public Toilet Maintenance",
			Department: "Sanitation Department",
			Urgency:    domain.UrgencyMedium,
			Reason:     "Unclean public toilets create health hazards and discourage usage.",
		},
	},
	{
		Keywords: []string{"litter", "littering", "people throwing trash"},
		Result: domain.ClassificationResult{
			IssueType:  "Littering Problem",
			Department: "Sanitation & Enforcement",
			Urgency:    domain.UrgencyLow,
			Reason:     "Public littering degrades cleanliness and requires enforcement action.",
		},
	},
	{
		Keywords: []string{"stray animal carcass", "dead animal", "animal body"},
		Result: domain.ClassificationResult{
			IssueType:  "Dead Animal Removal",
			Department: "Sanitation Department",
			Urgency:    domain.UrgencyHigh,
			Reason:     "Dead animals pose health risks and require immediate removal.",
		},
	},

	// Water and drainage
	{
		Keywords: []string{"water leak", "pipe burst", "water pipe broken"},
		Result: domain.ClassificationResult{
			IssueType:  "Water Pipeline Leakage",
			Department: "Water Works Department",
			Urgency:    domain.UrgencyHigh,
			Reason:     "Water leakage causes wastage, flooding, and potential infrastructure damage.",
		},
	},
	{
		Keywords: []string{"no water supply", "water shortage", "tap dry"},
		Result: domain.ClassificationResult{
			IssueType:  "Water Supply Disruption",
			Department: "Water Works Department",
			Urgency:    domain.UrgencyHigh,
			Reason:     "Water supply disruption affects daily life and requires urgent resolution.",
		},
	},
	{
		Keywords: []string{"dirty water", "contaminated water", "water quality"},
		Result: domain.ClassificationResult{
			IssueType:  "Water Quality Issue",
			Department: "Water Quality Control",
			Urgency:    domain.UrgencyHigh,
			Reason:     "Contaminated water poses serious health risks and requires immediate testing.",
		},
	},
	{
		Keywords: []string{"drainage", "blocked drain", "clogged drain"},
		Result: domain.ClassificationResult{
			IssueType:  "Drainage Blockage",
			Department: "Sewage & Drainage",
			Urgency:    domain.UrgencyHigh,
			Reason:     "Blocked drains cause waterlogging and flooding during rains.",
		},
	},
	{
		Keywords: []string{"waterlogging", "flooding", "water accumulation"},
		Result: domain.ClassificationResult{
			IssueType:  "Waterlogging",
			Department: "Sewage & Drainage",
			Urgency:    domain.UrgencyHigh,
			Reason:     "Waterlogging disrupts traffic, damages property, and spreads diseases.",
		},
	},
	{
		Keywords: []string{"sewage", "sewer overflow", "sewage leak"},
		Result: domain.ClassificationResult{
			IssueType:  "Sewage Overflow",
			Department: "Sewage & Drainage",
			Urgency:    domain.UrgencyHigh,
			Reason:     "Sewage overflow creates severe health hazards and environmental pollution.",
		},
	},
	{
		Keywords: []string{"storm drain", "rainwater drain", "monsoon drain"},
		Result: domain.ClassificationResult{
			IssueType:  "Storm Drain Issue",
			Department: "Sewage & Drainage",
			Urgency:    domain.UrgencyHigh,
			Reason:     "Malfunctioning storm drains lead to flooding during heavy rainfall.",
		},
	},
	{
		Keywords: []string{"water meter", "meter broken", "meter not working"},
		Result: domain.ClassificationResult{
			IssueType:  "Water Meter Malfunction",
			Department: "Water Works Department",
			Urgency:    domain.UrgencyMedium,
			Reason:     "Faulty water meters lead to billing disputes and water wastage.",
		},
	},
	{
		Keywords: []string{"water tanker", "tanker supply", "emergency water"},
		Result: domain.ClassificationResult{
			IssueType:  "Water Tanker Request",
			Department: "Water Works Department",
			Urgency:    domain.UrgencyHigh,
			Reason:     "Emergency water tanker needed due to supply shortage.",
		},
	},
	{
		Keywords: []string{"hand pump", "tube well", "bore well"},
		Result: domain.ClassificationResult{
			IssueType:  "Hand Pump/Borewell Issue",
			Department: "Water Works Department",
			Urgency:    domain.UrgencyMedium,
			Reason:     "Non-functional public water sources affect community water access.",
		},
	},

	// Electricity and street lighting
	{
		Keywords: []string{"power outage", "no electricity", "blackout"},
		Result: domain.ClassificationResult{
			IssueType:  "Power Outage",
			Department: "Electricity Board",
			Urgency:    domain.UrgencyHigh,
			Reason:     "Power outages disrupt daily activities and can affect essential services.",
		},
	},
	{
		Keywords: []string{"exposed wire", "hanging wire", "loose cable"},
		Result: domain.ClassificationResult{
			IssueType:  "Exposed Electrical Wiring",
			Department: "Electricity Board",
			Urgency:    domain.UrgencyHigh,
			Reason:     "Exposed wires pose electrocution risk and fire hazards.",
		},
	},
	{
		Keywords: []string{"street light", "lamp post", "street lamp"},
		Result: domain.ClassificationResult{
			IssueType:  "Street Light Not Working",
			Department: "Municipal Lighting",
			Urgency:    domain.UrgencyMedium,
			Reason:     "Non-functional street lights compromise public safety and increase crime risk.",
		},
	},
	{
		Keywords: []string{"transformer", "electrical box", "power station"},
		Result: domain.ClassificationResult{
			IssueType:  "Transformer Issue",
			Department: "Electricity Board",
			Urgency:    domain.UrgencyHigh,
			Reason:     "Transformer problems affect power supply to entire neighborhoods.",
		},
	},
	{
		Keywords: []string{"electric pole", "power pole", "utility pole"},
		Result: domain.ClassificationResult{
			IssueType:  "Electric Pole Damage",
			Department: "Electricity Board",
			Urgency:    domain.UrgencyHigh,
			Reason:     "Damaged electric poles risk collapse and power disruption.",
		},
	},
	{
		Keywords: []string{"meter tampering", "electricity theft", "illegal connection"},
		Result: domain.ClassificationResult{
			IssueType:  "Electricity Theft",
			Department: "Electricity Board Enforcement",
			Urgency:    domain.UrgencyMedium,
			Reason:     "Illegal connections pose safety risks and cause revenue loss.",
		},
	},
	{
		Keywords: []string{"voltage fluctuation", "low voltage", "high voltage"},
		Result: domain.ClassificationResult{
			IssueType:  "Voltage Fluctuation",
			Department: "Electricity Board",
			Urgency:    domain.UrgencyMedium,
			Reason:     "Voltage issues damage electrical appliances and disrupt power quality.",
		},
	},
	{
		Keywords: []string{"traffic light", "signal not working", "traffic signal"},
		Result: domain.ClassificationResult{
			IssueType:  "Traffic Signal Malfunction",
			Department: "Traffic Police",
			Urgency:    domain.UrgencyHigh,
			Reason:     "Non-functional traffic signals cause accidents and traffic chaos.",
		},
	},

	// Traffic and transportation
	{
		Keywords: []string{"traffic jam", "congestion", "traffic block"},
		Result: domain.ClassificationResult{
			IssueType:  "Traffic Congestion",
			Department: "Traffic Management",
			Urgency:    domain.UrgencyMedium,
			Reason:     "Severe traffic congestion requires traffic management intervention.",
		},
	},
	{
		Keywords: []string{"parking", "illegal parking", "no parking zone"},
		Result: domain.ClassificationResult{
			IssueType:  "Illegal Parking",
			Department: "Traffic Police",
			Urgency:    domain.UrgencyLow,
			Reason:     "Illegal parking obstructs traffic flow and creates inconvenience.",
		},
	},
	{
		Keywords: []string{"bus stop", "bus shelter", "transit stop"},
		Result: domain.ClassificationResult{
			IssueType:  "Bus Stop Maintenance",
			Department: "Transport Department",
			Urgency:    domain.UrgencyLow,
			Reason:     "Damaged bus stops affect commuter comfort and public transport usage.",
		},
	},
	{
		Keywords: []string{"accident", "collision", "crash"},
		Result: domain.ClassificationResult{
			IssueType:  "Traffic Accident",
			Department: "Traffic Police",
			Urgency:    domain.UrgencyHigh,
			Reason:     "Traffic accidents require immediate emergency response and investigation.",
		},
	},
	{
		Keywords: []string{"abandoned vehicle", "parked vehicle", "old car"},
		Result: domain.ClassificationResult{
			IssueType:  "Abandoned Vehicle",
			Department: "Traffic Police",
			Urgency:    domain.UrgencyLow,
			Reason:     "Abandoned vehicles occupy public space and create visual pollution.",
		},
	},
	{
		Keywords: []string{"road sign", "signboard", "traffic sign"},
		Result: domain.ClassificationResult{
			IssueType:  "Road Signage Issue",
			Department: "Traffic Management",
			Urgency:    domain.UrgencyMedium,
			Reason:     "Missing or damaged road signs cause navigation confusion and safety issues.",
		},
	},
	{
		Keywords: []string{"railway crossing", "level crossing", "train crossing"},
		Result: domain.ClassificationResult{
			IssueType:  "Railway Crossing Issue",
			Department: "Railways",
			Urgency:    domain.UrgencyHigh,
			Reason:     "Railway crossing problems pose serious safety risks to commuters.",
		},
	},

	// Environment and pollution
	{
		Keywords: []string{"air pollution", "smoke", "dust pollution"},
		Result: domain.ClassificationResult{
			IssueType:  "Air Pollution",
			Department: "Pollution Control Board",
			Urgency:    domain.UrgencyMedium,
			Reason:     "Air pollution affects public health and environmental quality.",
		},
	},
	{
		Keywords: []string{"noise pollution", "loud noise", "sound pollution"},
		Result: domain.ClassificationResult{
			IssueType:  "Noise Pollution",
			Department: "Pollution Control Board",
			Urgency:    domain.UrgencyLow,
			Reason:     "Excessive noise disturbs peace and violates noise regulations.",
		},
	},
	{
		Keywords: []string{"tree fallen", "fallen tree", "tree blocking"},
		Result: domain.ClassificationResult{
			IssueType:  "Fallen Tree",
			Department: "Forest/Horticulture",
			Urgency:    domain.UrgencyHigh,
			Reason:     "Fallen trees block roads and pose safety hazards requiring immediate removal.",
		},
	},
	{
		Keywords: []string{"tree cutting", "illegal felling", "unauthorized tree removal"},
		Result: domain.ClassificationResult{
			IssueType:  "Illegal Tree Cutting",
			Department: "Forest Department",
			Urgency:    domain.UrgencyHigh,
			Reason:     "Unauthorized tree cutting violates environmental laws and requires action.",
		},
	},
	{
		Keywords: []string{"tree trimming", "branch overgrown", "tree maintenance"},
		Result: domain.ClassificationResult{
			IssueType:  "Tree Trimming Required",
			Department: "Horticulture Department",
			Urgency:    domain.UrgencyLow,
			Reason:     "Overgrown branches obstruct roads, power lines, and visibility.",
		},
	},
	{
		Keywords: []string{"stray dog", "stray animal", "street dog"},
		Result: domain.ClassificationResult{
			IssueType:  "Stray Animal Issue",
			Department: "Animal Welfare",
			Urgency:    domain.UrgencyMedium,
			Reason:     "Stray animals may pose safety concerns and require humane management.",
		},
	},
	{
		Keywords: []string{"mosquito", "dengue", "malaria", "breeding"},
		Result: domain.ClassificationResult{
			IssueType:  "Mosquito Breeding",
			Department: "Health Department",
			Urgency:    domain.UrgencyHigh,
			Reason:     "Mosquito breeding sites spread diseases like dengue and malaria.",
		},
	},

	// Public spaces and amenities
	{
		Keywords: []string{"park", "playground", "garden maintenance"},
		Result: domain.ClassificationResult{
			IssueType:  "Park Maintenance",
			Department: "Parks & Recreation",
			Urgency:    domain.UrgencyLow,
			Reason:     "Park maintenance ensures safe and pleasant recreational spaces.",
		},
	},
	{
		Keywords: []string{"graffiti", "vandalism", "wall defacement"},
		Result: domain.ClassificationResult{
			IssueType:  "Graffiti/Vandalism",
			Department: "Municipal Corporation",
			Urgency:    domain.UrgencyLow,
			Reason:     "Graffiti and vandalism degrade public property aesthetics.",
		},
	},
	{
		Keywords: []string{"illegal construction", "unauthorized building", "construction violation"},
		Result: domain.ClassificationResult{
			IssueType:  "Illegal Construction",
			Department: "Building Department",
			Urgency:    domain.UrgencyHigh,
			Reason:     "Unauthorized construction violates building codes and safety regulations.",
		},
	},
	{
		Keywords: []string{"street vendor", "hawker zone", "vendor encroachment"},
		Result: domain.ClassificationResult{
			IssueType:  "Street Vendor Issue",
			Department: "Municipal Enforcement",
			Urgency:    domain.UrgencyLow,
			Reason:     "Unregulated street vending requires proper zone management.",
		},
	},
	{
		Keywords: []string{"public drinking water", "water fountain", "drinking water tap"},
		Result: domain.ClassificationResult{
			IssueType:  "Public Drinking Water",
			Department: "Water Works Department",
			Urgency:    domain.UrgencyMedium,
			Reason:     "Non-functional public drinking water facilities affect community access.",
		},
	},
	{
		Keywords: []string{"cctv", "surveillance camera", "security camera"},
		Result: domain.ClassificationResult{
			IssueType:  "CCTV/Security Issue",
			Department: "Police/Security",
			Urgency:    domain.UrgencyMedium,
			Reason:     "Non-functional security cameras reduce public safety monitoring.",
		},
	},
	{
		Keywords: []string{"fire hydrant", "fire safety", "fire equipment"},
		Result: domain.ClassificationResult{
			IssueType:  "Fire Safety Equipment",
			Department: "Fire Department",
			Urgency:    domain.UrgencyHigh,
			Reason:     "Fire safety equipment must be functional for emergency response.",
		},
	},
}
