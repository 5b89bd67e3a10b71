package signup

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fundilink/appstate"
	"fundilink/backend"
	"fundilink/models"
	"fundilink/session"
)

type fixture struct {
	wizard   *Wizard
	state    *appstate.State
	sessions *session.Manager
	api      *backend.Client
}

func newFixture(t *testing.T, handler http.HandlerFunc) *fixture {
	t.Helper()
	if handler == nil {
		handler = func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("unexpected upstream call")
		}
	}
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	state := appstate.New(appstate.NewMemoryStore())
	sessions := session.NewManager(state)
	api := backend.NewClient(srv.URL, 2*time.Second, sessions)
	wizard := NewWizard(api, state, sessions, time.Hour)
	t.Cleanup(wizard.Stop)
	return &fixture{wizard: wizard, state: state, sessions: sessions, api: api}
}

func (f *fixture) loginClient(t *testing.T) {
	t.Helper()
	require.NoError(t, f.sessions.Login(context.Background(), "tok", models.User{
		ID: 7, Name: "Wanjiku Kamau", Email: "wanjiku@example.com",
		Phone: "0712345678", UserType: models.UserTypeClient,
	}))
}

// fillValid walks the form into a fully submittable state.
func (f *fixture) fillValid(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	w := f.wizard
	w.SetField("fullName", "Wanjiku Kamau")
	w.SetField("email", "wanjiku@example.com")
	w.SetField("phone", "0712345678")
	require.NoError(t, w.ToggleCategory(ctx, "plumbing", true))
	w.SetField("responseTime", "same_day")
	w.SetField("county", "Nairobi")
	w.SetField("subCounty", "Westlands")
	w.SetField("ward", "Kitisuru")
	w.SetField("serviceRadius", "10")
	w.SetField("latitude", "-1.2921")
	w.SetField("longitude", "36.8219")
	w.SetField("fullAddress", "Kitisuru, Nairobi")
	w.SetField("minRate", "800")
	w.SetField("maxRate", "2500")
}

func TestPhoneValidationMatrix(t *testing.T) {
	valid := []string{
		"254712345678",
		"254112345678",
		"0712345678",
		"0112345678",
		"+254 712 345 678",
		"0712-345-678",
		"(0712) 345 678",
	}
	for _, phone := range valid {
		assert.True(t, ValidKenyanPhone(phone), "expected %q to be valid", phone)
	}

	invalid := []string{
		"",
		"0812345678",
		"071234567",
		"07123456789",
		"254212345678",
		"25471234567",
		"12345",
		"phone",
	}
	for _, phone := range invalid {
		assert.False(t, ValidKenyanPhone(phone), "expected %q to be invalid", phone)
	}
}

func TestEmailValidation(t *testing.T) {
	assert.True(t, ValidEmail("wanjiku@example.com"))
	assert.True(t, ValidEmail("a.b+c@sub.domain.co.ke"))
	assert.False(t, ValidEmail("not-an-email"))
	assert.False(t, ValidEmail("a@b"))
	assert.False(t, ValidEmail("a b@c.com"))
	assert.False(t, ValidEmail(""))
}

func TestNextStepGatedByValidation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {})

	// Step 1 empty: stays put with messages.
	step, errs, _ := f.wizard.NextStep(ctx)
	assert.Equal(t, 1, step)
	assert.NotEmpty(t, errs)
	assert.InDelta(t, 0.25, f.wizard.Progress(), 1e-9)

	// Valid identity advances and moves the progress bar.
	f.wizard.SetField("fullName", "Wanjiku Kamau")
	f.wizard.SetField("email", "wanjiku@example.com")
	f.wizard.SetField("phone", "0712345678")
	step, errs, _ = f.wizard.NextStep(ctx)
	assert.Empty(t, errs)
	assert.Equal(t, 2, step)
	assert.InDelta(t, 0.5, f.wizard.Progress(), 1e-9)
}

func TestPrevStepNeverValidates(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {})
	f.wizard.SetField("fullName", "Wanjiku Kamau")
	f.wizard.SetField("email", "wanjiku@example.com")
	f.wizard.SetField("phone", "0712345678")
	_, errs, _ := f.wizard.NextStep(ctx)
	require.Empty(t, errs)

	// Step 2 is invalid, but going back is unconditional.
	assert.Equal(t, 1, f.wizard.PrevStep(ctx))
	// And does not go below step 1.
	assert.Equal(t, 1, f.wizard.PrevStep(ctx))
}

func TestStepTwoRequiresSelectionAndResponseTime(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {})

	errs, _ := f.wizard.validateStep(2)
	assert.Len(t, errs, 2)

	// One specific service alone satisfies the selection rule.
	require.NoError(t, f.wizard.ToggleService(ctx, "plumbing", "Leak Repair", true))
	f.wizard.SetField("responseTime", "within_48h")
	errs, _ = f.wizard.validateStep(2)
	assert.Empty(t, errs)
}

func TestTriStateDerivation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {})
	w := f.wizard

	assert.Equal(t, CategoryUnchecked, w.StateOf("plumbing"))

	// Whole category on: checked, all services selected.
	require.NoError(t, w.ToggleCategory(ctx, "plumbing", true))
	assert.Equal(t, CategoryChecked, w.StateOf("plumbing"))
	form := w.Form()
	assert.Contains(t, form.SelectedCategories, "plumbing")
	assert.Contains(t, form.SelectedServices, "plumbing:Leak Repair")

	// Dropping one service: indeterminate, category key removed.
	require.NoError(t, w.ToggleService(ctx, "plumbing", "Leak Repair", false))
	assert.Equal(t, CategoryIndeterminate, w.StateOf("plumbing"))
	assert.NotContains(t, w.Form().SelectedCategories, "plumbing")

	// Re-selecting it by hand completes the set: checked again.
	require.NoError(t, w.ToggleService(ctx, "plumbing", "Leak Repair", true))
	assert.Equal(t, CategoryChecked, w.StateOf("plumbing"))
	assert.Contains(t, w.Form().SelectedCategories, "plumbing")

	// Whole category off: unchecked, nothing left behind.
	require.NoError(t, w.ToggleCategory(ctx, "plumbing", false))
	assert.Equal(t, CategoryUnchecked, w.StateOf("plumbing"))
	assert.Empty(t, w.Form().SelectedServices)
}

func TestToggleUnknownCategoryRejected(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {})
	assert.Error(t, f.wizard.ToggleCategory(ctx, "astrology", true))
	assert.Error(t, f.wizard.ToggleService(ctx, "plumbing", "Séance", true))
}

func TestLocationValidation(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {})
	w := f.wizard

	w.SetField("county", "Nairobi")
	w.SetField("subCounty", "Westlands")
	w.SetField("ward", "Kitisuru")
	w.SetField("serviceRadius", "10")

	// No coordinates and no manual address: warned, not blocked.
	errs, warns := w.validateStep(3)
	assert.Empty(t, errs)
	assert.NotEmpty(t, warns)

	// Manual address stands in for coordinates and clears the warning.
	w.SetField("manualAddress", "Near Kitisuru shopping centre")
	errs, warns = w.validateStep(3)
	assert.Empty(t, errs)
	assert.Empty(t, warns)

	// Coordinates outside Kenya are a hard reject even with an address.
	w.SetField("latitude", "51.5")
	w.SetField("longitude", "-0.12")
	errs, _ = w.validateStep(3)
	assert.NotEmpty(t, errs)

	// Coordinates inside Kenya pass.
	w.SetField("latitude", "-1.2921")
	w.SetField("longitude", "36.8219")
	errs, warns = w.validateStep(3)
	assert.Empty(t, errs)
	assert.Empty(t, warns)
}

func TestMissingLocationPinStillAdvances(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {})
	w := f.wizard

	w.SetField("fullName", "Wanjiku Kamau")
	w.SetField("email", "wanjiku@example.com")
	w.SetField("phone", "0712345678")
	_, errs, _ := w.NextStep(ctx)
	require.Empty(t, errs)
	require.NoError(t, w.ToggleCategory(ctx, "plumbing", true))
	w.SetField("responseTime", "same_day")
	_, errs, _ = w.NextStep(ctx)
	require.Empty(t, errs)

	// Step 3 filled except for any location pin or address.
	w.SetField("county", "Nairobi")
	w.SetField("subCounty", "Westlands")
	w.SetField("ward", "Kitisuru")
	w.SetField("serviceRadius", "10")

	step, errs, warns := w.NextStep(ctx)
	assert.Empty(t, errs)
	assert.Equal(t, 4, step, "a missing pin must not stop the advance")
	require.NotEmpty(t, warns)
	assert.Contains(t, warns[0], "pin your location")
}

func TestRateValidation(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {})
	w := f.wizard

	// Both rates absent: acceptable.
	errs, _ := w.validateStep(4)
	assert.Empty(t, errs)

	w.SetField("minRate", "2000")
	w.SetField("maxRate", "1000")
	errs, _ = w.validateStep(4)
	assert.NotEmpty(t, errs)

	w.SetField("maxRate", "2000")
	errs, _ = w.validateStep(4)
	assert.NotEmpty(t, errs, "equal rates are rejected")

	w.SetField("maxRate", "3500")
	errs, _ = w.validateStep(4)
	assert.Empty(t, errs)
}

func TestSaveRestoreRoundTripSkipsReadonly(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {})
	f.loginClient(t)

	outcome := f.wizard.Start(ctx)
	require.Equal(t, EntryOK, outcome.Status)
	// Identity came from the account and is locked.
	assert.Equal(t, "wanjiku@example.com", f.wizard.Form().Email)
	f.wizard.SetField("email", "attacker@example.com")
	assert.Equal(t, "wanjiku@example.com", f.wizard.Form().Email, "readonly fields ignore edits")

	// Fill some progress and advance.
	require.NoError(t, f.wizard.ToggleCategory(ctx, "plumbing", true))
	f.wizard.SetField("responseTime", "same_day")
	_, errs, _ := f.wizard.NextStep(ctx)
	require.Empty(t, errs)
	_, errs, _ = f.wizard.NextStep(ctx)
	require.Empty(t, errs)
	f.wizard.SetField("county", "Nairobi")
	f.wizard.saveNow(ctx)

	// The persisted copy must not carry account-sourced values.
	var persisted models.SignupForm
	require.True(t, f.state.LoadJSON(ctx, appstate.KeySignupForm, &persisted))
	assert.Empty(t, persisted.Email)
	assert.Empty(t, persisted.FullName)
	assert.Equal(t, "Nairobi", persisted.County)

	// A fresh wizard over the same store resumes where the visitor left off.
	w2 := NewWizard(f.api, f.state, f.sessions, time.Hour)
	t.Cleanup(w2.Stop)
	outcome = w2.Start(ctx)
	require.Equal(t, EntryOK, outcome.Status)
	assert.True(t, outcome.Restored)
	assert.Equal(t, 3, w2.CurrentStep())
	form := w2.Form()
	assert.Equal(t, "Nairobi", form.County)
	assert.Equal(t, "same_day", form.ResponseTime)
	assert.Equal(t, CategoryChecked, w2.StateOf("plumbing"))
	// Readonly values come from the account, not from storage.
	assert.Equal(t, "wanjiku@example.com", form.Email)
	assert.Equal(t, "Wanjiku Kamau", form.FullName)
}

func TestRestoreDiscardsCorruptState(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {})
	f.loginClient(t)

	// Simulate a stale entry from an older build.
	require.NoError(t, f.state.SaveJSON(ctx, appstate.KeySignupStep, "not-a-number"))

	outcome := f.wizard.Start(ctx)
	require.Equal(t, EntryOK, outcome.Status)
	assert.Equal(t, 1, f.wizard.CurrentStep())
}

func TestResetClearsStorageAndForm(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {})
	f.loginClient(t)
	require.Equal(t, EntryOK, f.wizard.Start(ctx).Status)

	require.NoError(t, f.wizard.ToggleCategory(ctx, "plumbing", true))
	f.wizard.SetField("county", "Nairobi")
	f.wizard.saveNow(ctx)

	f.wizard.Reset(ctx)
	assert.Equal(t, 1, f.wizard.CurrentStep())
	form := f.wizard.Form()
	assert.Empty(t, form.County)
	assert.Empty(t, form.SelectedCategories)
	// Account identity survives a reset.
	assert.Equal(t, "wanjiku@example.com", form.Email)

	var persisted models.SignupForm
	assert.False(t, f.state.LoadJSON(ctx, appstate.KeySignupForm, &persisted))
}

func TestEntryChecks(t *testing.T) {
	ctx := context.Background()

	t.Run("unauthenticated visitor is sent to login", func(t *testing.T) {
		f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {})
		outcome := f.wizard.Start(ctx)
		assert.Equal(t, EntryLoginRequired, outcome.Status)
		assert.Equal(t, "/login", outcome.RedirectTo)

		var returnURL string
		require.True(t, f.state.LoadJSON(ctx, appstate.KeyReturnURL, &returnURL))
		assert.Equal(t, "/provider-signup", returnURL)
	})

	t.Run("existing provider skips the form", func(t *testing.T) {
		f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {})
		require.NoError(t, f.sessions.Login(ctx, "tok", models.User{
			ID: 8, Name: "Otieno", UserType: models.UserTypeProvider,
		}))
		outcome := f.wizard.Start(ctx)
		assert.Equal(t, EntryAlreadyProvider, outcome.Status)
		assert.Equal(t, "/provider-dashboard", outcome.RedirectTo)
	})
}

func TestSubmitSuccessWithUpgrade(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Wanjiku Kamau", r.FormValue("fullName"))
		assert.JSONEq(t, `["plumbing"]`, r.FormValue("selectedCategories"))
		w.Write([]byte(`{
			"message": "Application received",
			"user_transition": true,
			"user_data": {"id": 7, "name": "Wanjiku Kamau", "user_type": "provider"},
			"redirect_to": "/provider-dashboard"
		}`))
	})
	f.loginClient(t)
	require.Equal(t, EntryOK, f.wizard.Start(ctx).Status)
	f.fillValid(t)
	f.wizard.saveNow(ctx)

	outcome, err := f.wizard.Submit(ctx)
	require.NoError(t, err)
	assert.True(t, outcome.Success)
	assert.True(t, outcome.Upgraded)
	assert.Equal(t, "/provider-dashboard", outcome.RedirectTo)
	assert.Equal(t, 10, outcome.CountdownSeconds)

	// The session now carries the upgraded account.
	require.NotNil(t, f.sessions.CurrentUser())
	assert.True(t, f.sessions.CurrentUser().IsProvider())

	// Saved wizard state is gone.
	var persisted models.SignupForm
	assert.False(t, f.state.LoadJSON(ctx, appstate.KeySignupForm, &persisted))
	var step int
	assert.False(t, f.state.LoadJSON(ctx, appstate.KeySignupStep, &step))
}

func TestSubmitValidationFailureNeverPosts(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	f.loginClient(t)
	require.Equal(t, EntryOK, f.wizard.Start(ctx).Status)

	outcome, err := f.wizard.Submit(ctx)
	require.NoError(t, err)
	assert.False(t, outcome.Success)
	assert.NotEmpty(t, outcome.Errors)
}

func TestSubmitSurfacesFieldErrors(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"detail":[{"loc":["body","minRate"],"msg":"field required"}]}`))
	})
	f.loginClient(t)
	require.Equal(t, EntryOK, f.wizard.Start(ctx).Status)
	f.fillValid(t)

	outcome, err := f.wizard.Submit(ctx)
	require.NoError(t, err)
	assert.False(t, outcome.Success)
	require.Len(t, outcome.FieldErrors, 1)
	assert.Equal(t, "minRate", outcome.FieldErrors[0].Field)
}
