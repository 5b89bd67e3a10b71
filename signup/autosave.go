// signup/autosave.go
package signup

import (
	"context"
	"time"

	"go.uber.org/zap"

	"fundilink/appstate"
	"fundilink/models"
	"fundilink/utils"
)

// Restore loads any saved wizard state and jumps to the saved step. Fields
// flagged readonly keep their account-sourced values; whatever the saved
// state had for them is discarded. Unparseable or version-mismatched state
// is dropped silently by the store layer.
func (w *Wizard) Restore(ctx context.Context) bool {
	var saved models.SignupForm
	restoredForm := w.state.LoadJSON(ctx, appstate.KeySignupForm, &saved)

	var savedStep int
	restoredStep := w.state.LoadJSON(ctx, appstate.KeySignupStep, &savedStep)

	if !restoredForm && !restoredStep {
		return false
	}

	w.mu.Lock()
	if restoredForm {
		current := w.form
		w.form = saved
		w.form.ReadonlyFields = current.ReadonlyFields
		for name := range w.readonly {
			w.restoreReadonlyLocked(name, current)
		}
		w.normalizeSelectionsLocked()
	}
	if restoredStep && savedStep >= 1 && savedStep <= totalSteps {
		w.currentStep = savedStep
	}
	w.mu.Unlock()

	utils.GetLogger().Info("Signup state restored", zap.Int("step", w.CurrentStep()))
	return true
}

// restoreReadonlyLocked copies one readonly field back from the live form,
// undoing whatever the saved state carried. Callers must hold w.mu.
func (w *Wizard) restoreReadonlyLocked(name string, current models.SignupForm) {
	switch name {
	case "fullName":
		w.form.FullName = current.FullName
	case "email":
		w.form.Email = current.Email
	case "phone":
		w.form.Phone = current.Phone
	case "businessName":
		w.form.BusinessName = current.BusinessName
	case "idNumber":
		w.form.IDNumber = current.IDNumber
	}
}

// Run drives the periodic autosave until the context is cancelled or Stop
// is called. Runs as a goroutine started from main.
func (w *Wizard) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopAutosave:
			return
		case <-w.ticker.C:
			w.mu.Lock()
			dirty := w.dirty
			w.mu.Unlock()
			if dirty {
				w.saveNow(context.Background())
			}
		}
	}
}

// Stop halts the autosave timer and any pending debounced save.
func (w *Wizard) Stop() {
	w.stopOnce.Do(func() {
		w.ticker.Stop()
		close(w.stopAutosave)
	})
	w.mu.Lock()
	if w.debounce != nil {
		w.debounce.Stop()
		w.debounce = nil
	}
	w.mu.Unlock()
}

// scheduleSave arms the debounce timer, replacing any pending one so a
// burst of edits produces a single write.
func (w *Wizard) scheduleSave() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = time.AfterFunc(w.debounceDelay, func() {
		w.saveNow(context.Background())
	})
}

// saveNow persists the form and step immediately. Readonly field values are
// blanked in the stored copy; they are re-filled from the account on every
// entry and must never round-trip through storage.
func (w *Wizard) saveNow(ctx context.Context) {
	w.mu.Lock()
	form := w.snapshotForm()
	for name := range w.readonly {
		blankField(&form, name)
	}
	step := w.currentStep
	w.dirty = false
	w.mu.Unlock()

	if err := w.state.SaveJSON(ctx, appstate.KeySignupForm, form); err != nil {
		utils.GetLogger().Error("Failed to save signup form", zap.Error(err))
		return
	}
	if err := w.state.SaveJSON(ctx, appstate.KeySignupStep, step); err != nil {
		utils.GetLogger().Error("Failed to save signup step", zap.Error(err))
	}
}

func blankField(form *models.SignupForm, name string) {
	switch name {
	case "fullName":
		form.FullName = ""
	case "email":
		form.Email = ""
	case "phone":
		form.Phone = ""
	case "businessName":
		form.BusinessName = ""
	case "idNumber":
		form.IDNumber = ""
	}
}

// Reset discards the saved state and returns the wizard to a blank step 1,
// keeping the account-sourced readonly values.
func (w *Wizard) Reset(ctx context.Context) {
	w.mu.Lock()
	current := w.form
	w.form = models.SignupForm{ReadonlyFields: current.ReadonlyFields}
	for name := range w.readonly {
		w.restoreReadonlyLocked(name, current)
	}
	w.currentStep = 1
	w.dirty = false
	w.mu.Unlock()

	if err := w.state.Clear(ctx, appstate.KeySignupForm, appstate.KeySignupStep); err != nil {
		utils.GetLogger().Error("Failed to clear signup state", zap.Error(err))
	}
}
