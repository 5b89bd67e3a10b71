// models/signup.go
package models

// SignupForm is the union of all wizard field values. Identity fields are
// autofilled from the account and flagged readonly; those are never persisted
// to the state store so a stale autosave cannot clobber server-trusted data.
type SignupForm struct {
	// Step 1 — identity.
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	BusinessName string `json:"businessName"`
	IDNumber     string `json:"idNumber"`

	// Step 2 — services.
	SelectedCategories []string `json:"selectedCategories"` // full category keys
	SelectedServices   []string `json:"selectedServices"`   // "category:Service Name" pairs
	ResponseTime       string   `json:"responseTime"`

	// Step 3 — location.
	County           string `json:"county"`
	SubCounty        string `json:"subCounty"`
	Ward             string `json:"ward"`
	SpecificLocation string `json:"specificLocation"`
	Latitude         string `json:"latitude"`
	Longitude        string `json:"longitude"`
	FullAddress      string `json:"fullAddress"`
	ManualAddress    string `json:"manualAddress"`
	ServiceRadius    string `json:"serviceRadius"`

	// Step 4 — rates and extras.
	MinRate        string `json:"minRate"`
	MaxRate        string `json:"maxRate"`
	Experience     string `json:"experience"`
	Description    string `json:"description"`
	AcceptTerms    bool   `json:"acceptTerms"`
	ReadonlyFields []string `json:"-"`
}

// ApplyResult is the backend's answer to a provider application.
type ApplyResult struct {
	Message        string `json:"message"`
	UserTransition bool   `json:"user_transition"`
	UserData       *User  `json:"user_data,omitempty"`
	RedirectTo     string `json:"redirect_to,omitempty"`
}

// FieldError is one entry of a structured validation failure (422 detail).
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
