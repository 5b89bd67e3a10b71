// signup/wizard.go
package signup

import (
	"context"
	"sync"
	"time"

	"fundilink/appstate"
	"fundilink/backend"
	"fundilink/models"
	"fundilink/session"
)

const totalSteps = 4

// Wizard is the provider onboarding state machine: four linear steps,
// forward movement gated by validation, backward movement unconditional.
// Field values autosave to the state store so an interrupted signup can
// resume where it left off.
type Wizard struct {
	mu       sync.Mutex
	api      *backend.Client
	state    *appstate.State
	sessions *session.Manager

	form        models.SignupForm
	currentStep int
	readonly    map[string]bool

	// Autosave machinery. The debounce timer coalesces rapid field edits;
	// the ticker covers anything the debounce missed.
	debounce      *time.Timer
	debounceDelay time.Duration
	ticker        *time.Ticker
	stopAutosave  chan struct{}
	stopOnce      sync.Once
	dirty         bool
}

// NewWizard builds a wizard for the current visitor. Entry checks and state
// restoration happen in Start, not here, because both need a context.
func NewWizard(api *backend.Client, state *appstate.State, sessions *session.Manager, autosaveInterval time.Duration) *Wizard {
	if autosaveInterval <= 0 {
		autosaveInterval = 30 * time.Second
	}
	w := &Wizard{
		api:           api,
		state:         state,
		sessions:      sessions,
		currentStep:   1,
		readonly:      map[string]bool{},
		debounceDelay: time.Second,
		stopAutosave:  make(chan struct{}),
	}
	w.ticker = time.NewTicker(autosaveInterval)
	return w
}

// CurrentStep reports the active step, 1-based.
func (w *Wizard) CurrentStep() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.currentStep
}

// Progress is the fraction of steps reached, for the progress bar.
func (w *Wizard) Progress() float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return float64(w.currentStep) / float64(totalSteps)
}

// Form returns a copy of the current field values.
func (w *Wizard) Form() models.SignupForm {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshotForm()
}

// NextStep validates the active step and advances unless a blocking error is
// found. Warnings ride along either way; on errors the step is unchanged.
func (w *Wizard) NextStep(ctx context.Context) (int, []string, []string) {
	w.mu.Lock()
	errs, warns := w.validateStep(w.currentStep)
	if len(errs) > 0 {
		step := w.currentStep
		w.mu.Unlock()
		return step, errs, warns
	}
	if w.currentStep < totalSteps {
		w.currentStep++
	}
	step := w.currentStep
	w.mu.Unlock()

	w.saveNow(ctx)
	return step, nil, warns
}

// PrevStep moves back without re-validating; data already entered on the
// abandoned step is kept.
func (w *Wizard) PrevStep(ctx context.Context) int {
	w.mu.Lock()
	if w.currentStep > 1 {
		w.currentStep--
	}
	step := w.currentStep
	w.mu.Unlock()

	w.saveNow(ctx)
	return step
}

// ValidateCurrentStep reports the active step's blocking errors and warnings
// without moving.
func (w *Wizard) ValidateCurrentStep() ([]string, []string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.validateStep(w.currentStep)
}

// SetField updates one field by its wire name. Readonly fields are ignored.
// The change is persisted on the debounce timer, not immediately.
func (w *Wizard) SetField(name, value string) {
	w.mu.Lock()
	if w.readonly[name] {
		w.mu.Unlock()
		return
	}
	w.applyField(name, value)
	w.dirty = true
	w.mu.Unlock()

	w.scheduleSave()
}

// applyField writes a field by wire name. Callers must hold w.mu.
func (w *Wizard) applyField(name, value string) {
	switch name {
	case "fullName":
		w.form.FullName = value
	case "email":
		w.form.Email = value
	case "phone":
		w.form.Phone = value
	case "businessName":
		w.form.BusinessName = value
	case "idNumber":
		w.form.IDNumber = value
	case "responseTime":
		w.form.ResponseTime = value
	case "county":
		w.form.County = value
		// A county change invalidates the rest of the cascade.
		w.form.SubCounty = ""
		w.form.Ward = ""
		w.form.SpecificLocation = ""
	case "subCounty":
		w.form.SubCounty = value
		w.form.Ward = ""
		w.form.SpecificLocation = ""
	case "ward":
		w.form.Ward = value
		w.form.SpecificLocation = ""
	case "specificLocation":
		w.form.SpecificLocation = value
	case "latitude":
		w.form.Latitude = value
	case "longitude":
		w.form.Longitude = value
	case "fullAddress":
		w.form.FullAddress = value
	case "manualAddress":
		w.form.ManualAddress = value
	case "serviceRadius":
		w.form.ServiceRadius = value
	case "minRate":
		w.form.MinRate = value
	case "maxRate":
		w.form.MaxRate = value
	case "experience":
		w.form.Experience = value
	case "description":
		w.form.Description = value
	case "acceptTerms":
		w.form.AcceptTerms = value == "true" || value == "on"
	}
}

// snapshotForm copies the form. Callers must hold w.mu.
func (w *Wizard) snapshotForm() models.SignupForm {
	form := w.form
	form.SelectedCategories = append([]string(nil), w.form.SelectedCategories...)
	form.SelectedServices = append([]string(nil), w.form.SelectedServices...)
	form.ReadonlyFields = append([]string(nil), w.form.ReadonlyFields...)
	return form
}
