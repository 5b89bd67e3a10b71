package catalog

// Rates are indicative KSH figures shown next to each service.
var services = map[string][]Service{
	"plumbing": {
		{ID: "plumbing_001", Name: "Pipe Installation", Description: "Install new water supply or drainage pipes", Category: "plumbing", TypicalRate: 2500, UrgencyKeywords: []string{"leak", "burst", "flooding", "no water"}},
		{ID: "plumbing_002", Name: "Leak Repair", Description: "Fix leaking pipes, faucets, or fixtures", Category: "plumbing", TypicalRate: 1500, UrgencyKeywords: []string{"leak", "dripping", "water damage"}},
		{ID: "plumbing_003", Name: "Toilet Repair/Installation", Description: "Fix or install toilets and related plumbing", Category: "plumbing", TypicalRate: 2000, UrgencyKeywords: []string{"toilet blocked", "toilet broken", "bathroom flooded"}},
		{ID: "plumbing_004", Name: "Drain Cleaning", Description: "Clear blocked drains and sewage lines", Category: "plumbing", TypicalRate: 1800, UrgencyKeywords: []string{"blocked", "clogged", "overflow", "backup"}},
		{ID: "plumbing_005", Name: "Water Heater Service", Description: "Install, repair, or maintain water heaters", Category: "plumbing", TypicalRate: 3500, UrgencyKeywords: []string{"no hot water", "cold shower", "heater broken"}},
		{ID: "plumbing_006", Name: "Faucet Installation", Description: "Install or replace kitchen and bathroom faucets", Category: "plumbing", TypicalRate: 1200, UrgencyKeywords: []string{"no water", "faucet broken"}},
	},
	"electrical": {
		{ID: "electrical_001", Name: "Wiring Installation", Description: "Install electrical wiring for new constructions or renovations", Category: "electrical", TypicalRate: 3000, UrgencyKeywords: []string{"no power", "electrical fire", "sparks", "shock"}},
		{ID: "electrical_002", Name: "Outlet Installation", Description: "Install new electrical outlets and switches", Category: "electrical", TypicalRate: 800, UrgencyKeywords: []string{"no power", "outlet not working"}},
		{ID: "electrical_003", Name: "Light Fixture Installation", Description: "Install ceiling lights, chandeliers, and other fixtures", Category: "electrical", TypicalRate: 1500, UrgencyKeywords: []string{"no lights", "darkness", "bulb won't work"}},
		{ID: "electrical_004", Name: "Circuit Breaker Repair", Description: "Fix or replace circuit breakers and electrical panels", Category: "electrical", TypicalRate: 4000, UrgencyKeywords: []string{"power outage", "breaker tripping", "no electricity"}},
		{ID: "electrical_005", Name: "Emergency Electrical Repair", Description: "Urgent electrical issues and safety concerns", Category: "electrical", TypicalRate: 5000, UrgencyKeywords: []string{"electrical emergency", "sparks", "burning smell", "shock"}},
		{ID: "electrical_006", Name: "Security System Wiring", Description: "Install wiring for security cameras and alarm systems", Category: "electrical", TypicalRate: 2500, UrgencyKeywords: []string{"security breach", "alarm not working"}},
	},
	"hvac": {
		{ID: "hvac_001", Name: "Air Conditioning Installation", Description: "Install new AC units and cooling systems", Category: "hvac", TypicalRate: 15000, UrgencyKeywords: []string{"too hot", "no cooling", "heat wave"}},
		{ID: "hvac_002", Name: "AC Repair & Maintenance", Description: "Fix and service air conditioning units", Category: "hvac", TypicalRate: 3500, UrgencyKeywords: []string{"ac broken", "not cooling", "warm air"}},
		{ID: "hvac_003", Name: "Ventilation System Installation", Description: "Install exhaust fans and ventilation systems", Category: "hvac", TypicalRate: 4500, UrgencyKeywords: []string{"poor air", "stuffy", "no ventilation"}},
		{ID: "hvac_004", Name: "Duct Cleaning & Repair", Description: "Clean and repair air ducts", Category: "hvac", TypicalRate: 2500, UrgencyKeywords: []string{"dusty air", "blocked duct"}},
		{ID: "hvac_005", Name: "Heating System Service", Description: "Install and repair heating systems", Category: "hvac", TypicalRate: 8000, UrgencyKeywords: []string{"no heat", "cold", "heater broken"}},
	},
	"carpentry": {
		{ID: "carpentry_001", Name: "Custom Furniture Building", Description: "Build custom furniture pieces to specification", Category: "carpentry", TypicalRate: 8000, UrgencyKeywords: []string{"furniture broken"}},
		{ID: "carpentry_002", Name: "Door Installation", Description: "Install interior and exterior doors", Category: "carpentry", TypicalRate: 3500, UrgencyKeywords: []string{"door broken", "door won't close", "security"}},
		{ID: "carpentry_003", Name: "Window Installation", Description: "Install and replace windows and frames", Category: "carpentry", TypicalRate: 4500, UrgencyKeywords: []string{"window broken", "glass shattered", "draft"}},
		{ID: "carpentry_004", Name: "Deck Construction", Description: "Build outdoor decks and patios", Category: "carpentry", TypicalRate: 25000, UrgencyKeywords: []string{"deck collapsing", "unsafe deck"}},
		{ID: "carpentry_005", Name: "Kitchen Cabinet Installation", Description: "Install kitchen cabinets and countertops", Category: "carpentry", TypicalRate: 12000, UrgencyKeywords: []string{"cabinet falling"}},
		{ID: "carpentry_006", Name: "Trim and Molding", Description: "Install baseboards, crown molding, and trim work", Category: "carpentry", TypicalRate: 2500, UrgencyKeywords: nil},
	},
	"painting": {
		{ID: "painting_001", Name: "Interior Painting", Description: "Paint interior walls, ceilings, and rooms", Category: "painting", TypicalRate: 5000, UrgencyKeywords: nil},
		{ID: "painting_002", Name: "Exterior Painting", Description: "Paint building exteriors and outdoor structures", Category: "painting", TypicalRate: 8000, UrgencyKeywords: []string{"peeling paint", "weather damage"}},
		{ID: "painting_003", Name: "Wallpaper Installation", Description: "Install and remove wallpaper", Category: "painting", TypicalRate: 3500, UrgencyKeywords: nil},
		{ID: "painting_004", Name: "Surface Preparation", Description: "Prepare surfaces for painting, fill holes and cracks", Category: "painting", TypicalRate: 2000, UrgencyKeywords: nil},
		{ID: "painting_005", Name: "Decorative Painting", Description: "Specialty finishes and decorative techniques", Category: "painting", TypicalRate: 4500, UrgencyKeywords: nil},
	},
	"cleaning": {
		{ID: "cleaning_001", Name: "Deep House Cleaning", Description: "Thorough cleaning of entire home", Category: "cleaning", TypicalRate: 3500, UrgencyKeywords: []string{"urgent cleaning", "move in", "move out"}},
		{ID: "cleaning_002", Name: "Carpet Cleaning", Description: "Professional carpet and upholstery cleaning", Category: "cleaning", TypicalRate: 2500, UrgencyKeywords: []string{"stain", "spill", "odor"}},
		{ID: "cleaning_003", Name: "Window Cleaning", Description: "Interior and exterior window cleaning", Category: "cleaning", TypicalRate: 1500, UrgencyKeywords: nil},
		{ID: "cleaning_004", Name: "Post-Construction Cleanup", Description: "Clean up after renovation or construction work", Category: "cleaning", TypicalRate: 4500, UrgencyKeywords: []string{"construction mess", "dust everywhere"}},
		{ID: "cleaning_005", Name: "Pressure Washing", Description: "Pressure wash driveways, walls, and outdoor surfaces", Category: "cleaning", TypicalRate: 2000, UrgencyKeywords: nil},
	},
	"appliance_repair": {
		{ID: "appliance_001", Name: "Refrigerator Repair", Description: "Fix refrigerators and freezers", Category: "appliance_repair", TypicalRate: 3000, UrgencyKeywords: []string{"fridge broken", "food spoiling", "not cooling"}},
		{ID: "appliance_002", Name: "Washing Machine Repair", Description: "Repair washing machines and dryers", Category: "appliance_repair", TypicalRate: 2500, UrgencyKeywords: []string{"washer broken", "not spinning", "leaking"}},
		{ID: "appliance_003", Name: "Oven/Stove Repair", Description: "Fix ovens, stoves, and cooktops", Category: "appliance_repair", TypicalRate: 2800, UrgencyKeywords: []string{"stove not working", "gas smell", "no heat"}},
		{ID: "appliance_004", Name: "Dishwasher Repair", Description: "Repair and maintain dishwashers", Category: "appliance_repair", TypicalRate: 2200, UrgencyKeywords: []string{"dishwasher leaking", "not draining"}},
		{ID: "appliance_005", Name: "Microwave Repair", Description: "Fix microwave ovens", Category: "appliance_repair", TypicalRate: 1500, UrgencyKeywords: []string{"microwave broken", "sparking"}},
	},
	"gardening": {
		{ID: "gardening_001", Name: "Garden Design & Landscaping", Description: "Design and create garden landscapes", Category: "gardening", TypicalRate: 8000, UrgencyKeywords: nil},
		{ID: "gardening_002", Name: "Lawn Maintenance", Description: "Mow, trim, and maintain lawns", Category: "gardening", TypicalRate: 1500, UrgencyKeywords: []string{"overgrown", "jungle"}},
		{ID: "gardening_003", Name: "Tree Trimming & Removal", Description: "Trim or remove trees and large shrubs", Category: "gardening", TypicalRate: 5000, UrgencyKeywords: []string{"fallen tree", "dangerous branch", "storm damage"}},
		{ID: "gardening_004", Name: "Irrigation System Installation", Description: "Install garden watering systems", Category: "gardening", TypicalRate: 6500, UrgencyKeywords: []string{"plants dying", "no water"}},
		{ID: "gardening_005", Name: "Pest Control for Gardens", Description: "Control garden pests and diseases", Category: "gardening", TypicalRate: 2000, UrgencyKeywords: []string{"pests eating plants", "infestation"}},
	},
	"security": {
		{ID: "security_001", Name: "Security Camera Installation", Description: "Install CCTV and security camera systems", Category: "security", TypicalRate: 8000, UrgencyKeywords: []string{"break in", "theft", "security breach"}},
		{ID: "security_002", Name: "Alarm System Installation", Description: "Install burglar alarms and monitoring systems", Category: "security", TypicalRate: 6500, UrgencyKeywords: []string{"burglary", "alarm not working"}},
		{ID: "security_003", Name: "Lock Installation & Repair", Description: "Install and repair door locks and padlocks", Category: "security", TypicalRate: 2500, UrgencyKeywords: []string{"locked out", "lock broken", "lost keys"}},
		{ID: "security_004", Name: "Gate & Fence Installation", Description: "Install security gates and perimeter fencing", Category: "security", TypicalRate: 12000, UrgencyKeywords: []string{"gate broken", "fence damaged"}},
		{ID: "security_005", Name: "Safe Installation", Description: "Install home and office safes", Category: "security", TypicalRate: 4500, UrgencyKeywords: nil},
	},
	"roofing": {
		{ID: "roofing_001", Name: "Roof Repair", Description: "Fix leaks, damaged shingles, and roof problems", Category: "roofing", TypicalRate: 5500, UrgencyKeywords: []string{"roof leaking", "water coming in", "storm damage"}},
		{ID: "roofing_002", Name: "Roof Installation", Description: "Install new roofs and replacements", Category: "roofing", TypicalRate: 35000, UrgencyKeywords: []string{"roof collapsed", "no roof"}},
		{ID: "roofing_003", Name: "Gutter Installation", Description: "Install and repair rain gutters and downspouts", Category: "roofing", TypicalRate: 4500, UrgencyKeywords: []string{"gutter overflowing", "water damage"}},
		{ID: "roofing_004", Name: "Roof Inspection", Description: "Inspect roof condition and provide reports", Category: "roofing", TypicalRate: 1500, UrgencyKeywords: nil},
		{ID: "roofing_005", Name: "Skylight Installation", Description: "Install skylights and roof windows", Category: "roofing", TypicalRate: 8000, UrgencyKeywords: []string{"skylight leaking"}},
	},
	"flooring": {
		{ID: "flooring_001", Name: "Hardwood Floor Installation", Description: "Install hardwood and engineered flooring", Category: "flooring", TypicalRate: 12000, UrgencyKeywords: nil},
		{ID: "flooring_002", Name: "Tile Installation", Description: "Install ceramic, porcelain, and stone tiles", Category: "flooring", TypicalRate: 8500, UrgencyKeywords: []string{"broken tiles", "cracked floor"}},
		{ID: "flooring_003", Name: "Carpet Installation", Description: "Install wall-to-wall carpeting", Category: "flooring", TypicalRate: 6000, UrgencyKeywords: nil},
		{ID: "flooring_004", Name: "Floor Refinishing", Description: "Sand and refinish existing floors", Category: "flooring", TypicalRate: 7500, UrgencyKeywords: nil},
		{ID: "flooring_005", Name: "Vinyl/Laminate Installation", Description: "Install vinyl and laminate flooring", Category: "flooring", TypicalRate: 5500, UrgencyKeywords: nil},
	},
	"general_handyman": {
		{ID: "handyman_001", Name: "General Home Repairs", Description: "Fix various household problems and maintenance", Category: "general_handyman", TypicalRate: 2000, UrgencyKeywords: []string{"broken", "not working", "repair needed"}},
		{ID: "handyman_002", Name: "Furniture Assembly", Description: "Assemble flat-pack and new furniture", Category: "general_handyman", TypicalRate: 1500, UrgencyKeywords: nil},
		{ID: "handyman_003", Name: "Picture Hanging & Mounting", Description: "Hang pictures, mirrors, and mount TVs", Category: "general_handyman", TypicalRate: 1000, UrgencyKeywords: nil},
		{ID: "handyman_004", Name: "Caulking & Sealing", Description: "Seal gaps around windows, doors, and fixtures", Category: "general_handyman", TypicalRate: 1200, UrgencyKeywords: []string{"draft", "water seeping"}},
		{ID: "handyman_005", Name: "Home Maintenance Check", Description: "Inspect and maintain home systems", Category: "general_handyman", TypicalRate: 2500, UrgencyKeywords: nil},
	},
	"pest_control": {
		{ID: "pest_001", Name: "Cockroach Extermination", Description: "Eliminate cockroach infestations", Category: "pest_control", TypicalRate: 3000, UrgencyKeywords: []string{"cockroaches", "roaches everywhere", "infestation"}},
		{ID: "pest_002", Name: "Termite Treatment", Description: "Treat and prevent termite damage", Category: "pest_control", TypicalRate: 8000, UrgencyKeywords: []string{"termites", "wood damage", "eating furniture"}},
		{ID: "pest_003", Name: "Rodent Control", Description: "Remove rats and mice, seal entry points", Category: "pest_control", TypicalRate: 2500, UrgencyKeywords: []string{"rats", "mice", "rodents"}},
		{ID: "pest_004", Name: "Bedbugs Treatment", Description: "Eliminate bedbug infestations", Category: "pest_control", TypicalRate: 4500, UrgencyKeywords: []string{"bedbugs", "bites", "can't sleep"}},
		{ID: "pest_005", Name: "General Fumigation", Description: "Whole-house pest fumigation", Category: "pest_control", TypicalRate: 6000, UrgencyKeywords: []string{"infestation", "pests everywhere"}},
	},
	"moving": {
		{ID: "moving_001", Name: "House Moving", Description: "Full household relocation services", Category: "moving", TypicalRate: 15000, UrgencyKeywords: []string{"urgent move", "eviction", "moving today"}},
		{ID: "moving_002", Name: "Office Relocation", Description: "Move offices and business premises", Category: "moving", TypicalRate: 25000, UrgencyKeywords: nil},
		{ID: "moving_003", Name: "Furniture Transport", Description: "Transport individual furniture pieces", Category: "moving", TypicalRate: 3500, UrgencyKeywords: nil},
		{ID: "moving_004", Name: "Packing Services", Description: "Professional packing and unpacking", Category: "moving", TypicalRate: 5000, UrgencyKeywords: nil},
	},
	"automotive": {
		{ID: "auto_001", Name: "Car Repair", Description: "General vehicle repairs and diagnostics", Category: "automotive", TypicalRate: 8000, UrgencyKeywords: []string{"car broken down", "won't start", "stranded"}},
		{ID: "auto_002", Name: "Battery Service", Description: "Jump start, test, and replace car batteries", Category: "automotive", TypicalRate: 1500, UrgencyKeywords: []string{"dead battery", "won't start"}},
		{ID: "auto_003", Name: "Tire Service", Description: "Fix punctures, replace and balance tires", Category: "automotive", TypicalRate: 2500, UrgencyKeywords: []string{"flat tire", "puncture", "stranded"}},
		{ID: "auto_004", Name: "Car Wash & Detailing", Description: "Professional car cleaning and detailing", Category: "automotive", TypicalRate: 1200, UrgencyKeywords: nil},
	},
	"wellness": {
		{ID: "wellness_001", Name: "Massage Therapy", Description: "Therapeutic and relaxation massage", Category: "wellness", TypicalRate: 3000, UrgencyKeywords: nil},
		{ID: "wellness_002", Name: "Personal Training", Description: "One-on-one fitness coaching", Category: "wellness", TypicalRate: 2500, UrgencyKeywords: nil},
		{ID: "wellness_003", Name: "Hair & Beauty Services", Description: "Mobile hair styling and beauty treatments", Category: "wellness", TypicalRate: 2000, UrgencyKeywords: nil},
	},
	"business_services": {
		{ID: "business_001", Name: "Accounting Services", Description: "Bookkeeping, tax returns, and financial advice", Category: "business_services", TypicalRate: 5000, UrgencyKeywords: []string{"tax deadline", "audit"}},
		{ID: "business_002", Name: "Legal Services", Description: "Legal consultation and document preparation", Category: "business_services", TypicalRate: 8000, UrgencyKeywords: []string{"court date", "legal emergency"}},
		{ID: "business_003", Name: "Marketing Services", Description: "Digital marketing and brand promotion", Category: "business_services", TypicalRate: 6000, UrgencyKeywords: nil},
	},
	"catering": {
		{ID: "catering_001", Name: "Event Catering", Description: "Full-service catering for events and functions", Category: "catering", TypicalRate: 12000, UrgencyKeywords: []string{"event tomorrow", "caterer cancelled"}},
		{ID: "catering_002", Name: "Personal Chef", Description: "In-home cooking and meal preparation", Category: "catering", TypicalRate: 4000, UrgencyKeywords: nil},
		{ID: "catering_003", Name: "Event Planning", Description: "Plan and coordinate events end to end", Category: "catering", TypicalRate: 15000, UrgencyKeywords: nil},
	},
	"tutoring": {
		{ID: "tutoring_001", Name: "Academic Tutoring", Description: "Tutoring for primary and secondary subjects", Category: "tutoring", TypicalRate: 1500, UrgencyKeywords: []string{"exam tomorrow", "failing"}},
		{ID: "tutoring_002", Name: "Language Teaching", Description: "Learn English, Swahili, and other languages", Category: "tutoring", TypicalRate: 2000, UrgencyKeywords: nil},
		{ID: "tutoring_003", Name: "Skills Training", Description: "Vocational and professional skills training", Category: "tutoring", TypicalRate: 3000, UrgencyKeywords: nil},
	},
	"technology": {
		{ID: "tech_001", Name: "Computer Repair", Description: "Fix laptops, desktops, and hardware issues", Category: "technology", TypicalRate: 3500, UrgencyKeywords: []string{"computer crashed", "won't boot", "lost data"}},
		{ID: "tech_002", Name: "Phone Repair", Description: "Repair smartphone screens and components", Category: "technology", TypicalRate: 2500, UrgencyKeywords: []string{"screen cracked", "phone dead"}},
		{ID: "tech_003", Name: "Network Setup", Description: "Install and configure home and office networks", Category: "technology", TypicalRate: 3000, UrgencyKeywords: []string{"no internet", "wifi down"}},
	},
}
