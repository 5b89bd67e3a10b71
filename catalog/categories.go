package catalog

// categoryOrder fixes the display order of the catalog.
var categoryOrder = []string{
	"plumbing", "electrical", "hvac", "carpentry", "painting", "cleaning",
	"appliance_repair", "gardening", "security", "roofing", "flooring",
	"general_handyman", "pest_control", "moving", "automotive", "wellness",
	"business_services", "catering", "tutoring", "technology",
}

var categories = map[string]Category{
	"plumbing": {
		Key:         "plumbing",
		Name:        "Plumbing",
		Description: "Water systems, pipes, and drainage solutions",
		Icon:        "fas fa-wrench",
		Color:       "blue",
	},
	"electrical": {
		Key:         "electrical",
		Name:        "Electrical",
		Description: "Wiring, lighting, and electrical installations",
		Icon:        "fas fa-bolt",
		Color:       "yellow",
	},
	"hvac": {
		Key:         "hvac",
		Name:        "HVAC",
		Description: "Heating, ventilation, and air conditioning",
		Icon:        "fas fa-temperature-high",
		Color:       "orange",
	},
	"carpentry": {
		Key:         "carpentry",
		Name:        "Carpentry",
		Description: "Wood work, furniture, and custom installations",
		Icon:        "fas fa-hammer",
		Color:       "amber",
	},
	"painting": {
		Key:         "painting",
		Name:        "Painting",
		Description: "Interior and exterior painting services",
		Icon:        "fas fa-paint-brush",
		Color:       "green",
	},
	"cleaning": {
		Key:         "cleaning",
		Name:        "Cleaning",
		Description: "Residential and commercial cleaning services",
		Icon:        "fas fa-broom",
		Color:       "teal",
	},
	"appliance_repair": {
		Key:         "appliance_repair",
		Name:        "Appliance Repair",
		Description: "Repair and maintenance of home appliances",
		Icon:        "fas fa-tools",
		Color:       "purple",
	},
	"gardening": {
		Key:         "gardening",
		Name:        "Gardening & Landscaping",
		Description: "Garden maintenance and landscape design",
		Icon:        "fas fa-seedling",
		Color:       "emerald",
	},
	"security": {
		Key:         "security",
		Name:        "Security & Safety",
		Description: "Security systems and safety installations",
		Icon:        "fas fa-shield-alt",
		Color:       "red",
	},
	"roofing": {
		Key:         "roofing",
		Name:        "Roofing",
		Description: "Roof installation, repair, and maintenance",
		Icon:        "fas fa-home",
		Color:       "slate",
	},
	"flooring": {
		Key:         "flooring",
		Name:        "Flooring",
		Description: "Floor installation and refinishing",
		Icon:        "fas fa-th-large",
		Color:       "stone",
	},
	"general_handyman": {
		Key:         "general_handyman",
		Name:        "General Handyman",
		Description: "Various small repairs and maintenance tasks",
		Icon:        "fas fa-toolbox",
		Color:       "gray",
	},
	"pest_control": {
		Key:         "pest_control",
		Name:        "Pest Control",
		Description: "Eliminate pests and prevent infestations",
		Icon:        "fas fa-bug",
		Color:       "red",
	},
	"moving": {
		Key:         "moving",
		Name:        "Moving & Transport",
		Description: "Moving services and transportation",
		Icon:        "fas fa-truck",
		Color:       "blue",
	},
	"automotive": {
		Key:         "automotive",
		Name:        "Automotive Services",
		Description: "Car repairs and maintenance",
		Icon:        "fas fa-car",
		Color:       "orange",
	},
	"wellness": {
		Key:         "wellness",
		Name:        "Health & Wellness",
		Description: "Personal care and wellness services",
		Icon:        "fas fa-heart",
		Color:       "pink",
	},
	"business_services": {
		Key:         "business_services",
		Name:        "Business Services",
		Description: "Professional and business support services",
		Icon:        "fas fa-briefcase",
		Color:       "indigo",
	},
	"catering": {
		Key:         "catering",
		Name:        "Catering & Events",
		Description: "Food service and event planning",
		Icon:        "fas fa-utensils",
		Color:       "yellow",
	},
	"tutoring": {
		Key:         "tutoring",
		Name:        "Education & Tutoring",
		Description: "Educational services and tutoring",
		Icon:        "fas fa-graduation-cap",
		Color:       "emerald",
	},
	"technology": {
		Key:         "technology",
		Name:        "Tech Support",
		Description: "Computer and technology services",
		Icon:        "fas fa-laptop",
		Color:       "cyan",
	},
}
