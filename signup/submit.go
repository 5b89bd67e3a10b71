// signup/submit.go
package signup

import (
	"context"

	"go.uber.org/zap"

	"fundilink/appstate"
	"fundilink/backend"
	"fundilink/models"
	"fundilink/utils"
)

// Entry outcomes for the signup page.
const (
	EntryOK              = "ok"
	EntryLoginRequired   = "login_required"
	EntryAlreadyProvider = "already_provider"
)

// EntryOutcome tells the caller whether the wizard can be shown and where
// to send the visitor otherwise.
type EntryOutcome struct {
	Status     string `json:"status"`
	RedirectTo string `json:"redirect_to,omitempty"`
	Restored   bool   `json:"restored,omitempty"`
}

// Start runs the entry checks: a visitor without a session is sent to log
// in with a return url stamped; an existing provider is sent straight to
// their dashboard; a client gets identity fields autofilled from the
// account and locked, then any saved progress restored.
func (w *Wizard) Start(ctx context.Context) EntryOutcome {
	if !w.sessions.IsAuthenticated() {
		w.sessions.StampReturnURL(ctx, "/provider-signup")
		return EntryOutcome{Status: EntryLoginRequired, RedirectTo: "/login"}
	}

	user := w.sessions.CurrentUser()
	if user != nil && user.IsProvider() {
		return EntryOutcome{Status: EntryAlreadyProvider, RedirectTo: "/provider-dashboard"}
	}

	if user != nil {
		w.mu.Lock()
		w.form.FullName = user.Name
		w.form.Email = user.Email
		w.form.Phone = user.Phone
		w.readonly = map[string]bool{"fullName": true, "email": true, "phone": true}
		w.form.ReadonlyFields = []string{"fullName", "email", "phone"}
		w.mu.Unlock()
	}

	restored := w.Restore(ctx)
	return EntryOutcome{Status: EntryOK, Restored: restored}
}

// SubmitOutcome is the result of a submission attempt. Validation failures
// and structured backend rejections land here rather than in the error
// return so the caller can re-enable the submit control and render them.
type SubmitOutcome struct {
	Success          bool                `json:"success"`
	Message          string              `json:"message,omitempty"`
	Upgraded         bool                `json:"upgraded,omitempty"`
	RedirectTo       string              `json:"redirect_to,omitempty"`
	CountdownSeconds int                 `json:"countdown_seconds,omitempty"`
	Errors           []string            `json:"errors,omitempty"`
	FieldErrors      []models.FieldError `json:"field_errors,omitempty"`
}

// Submit re-validates every step and posts the application. On success the
// saved wizard state is cleared and the autosave timer stopped; when the
// backend upgrades the account the session is updated in place and the
// caller shows the upgraded view with a countdown redirect.
func (w *Wizard) Submit(ctx context.Context) (*SubmitOutcome, error) {
	w.mu.Lock()
	errs := w.validateAll()
	form := w.snapshotForm()
	w.mu.Unlock()
	if len(errs) > 0 {
		return &SubmitOutcome{Success: false, Errors: errs}, nil
	}

	result, err := w.api.Apply(ctx, form)
	if err != nil {
		if apiErr, ok := backend.AsAPIError(err); ok {
			outcome := &SubmitOutcome{Success: false, Message: apiErr.Detail, FieldErrors: apiErr.Fields}
			if outcome.Message == "" {
				outcome.Message = "An error occurred while submitting your application."
			}
			return outcome, nil
		}
		return nil, err
	}

	if clearErr := w.state.Clear(ctx, appstate.KeySignupForm, appstate.KeySignupStep); clearErr != nil {
		utils.GetLogger().Error("Failed to clear signup state after submit", zap.Error(clearErr))
	}
	w.Stop()

	outcome := &SubmitOutcome{Success: true, Message: result.Message}
	if result.UserTransition && result.UserData != nil {
		if updateErr := w.sessions.UpdateUser(ctx, *result.UserData); updateErr != nil {
			utils.GetLogger().Error("Failed to update session after upgrade", zap.Error(updateErr))
		}
		outcome.Upgraded = true
		outcome.RedirectTo = result.RedirectTo
		if outcome.RedirectTo == "" {
			outcome.RedirectTo = "/provider-dashboard"
		}
		outcome.CountdownSeconds = 10
	}

	utils.GetLogger().Info("Provider application submitted",
		zap.Bool("upgraded", outcome.Upgraded))
	return outcome, nil
}
