// signup/validate.go
package signup

import (
	"regexp"
	"strconv"
	"strings"

	"fundilink/locations"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// Accepted Kenyan phone shapes after stripping non-digits:
	// international 2547/2541 prefixes, or local 07/01 prefixes.
	phoneIntl   = regexp.MustCompile(`^254[17]\d{8}$`)
	phoneLocal7 = regexp.MustCompile(`^07\d{8}$`)
	phoneLocal1 = regexp.MustCompile(`^01\d{8}$`)

	nonDigits = regexp.MustCompile(`\D`)
)

// ValidEmail reports whether the address looks deliverable.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}

// ValidKenyanPhone strips formatting characters and matches the number
// against the accepted Kenyan mobile shapes.
func ValidKenyanPhone(phone string) bool {
	digits := nonDigits.ReplaceAllString(phone, "")
	return phoneIntl.MatchString(digits) || phoneLocal7.MatchString(digits) || phoneLocal1.MatchString(digits)
}

// validateStep runs one step's rules. Errors block advancement; warnings are
// surfaced but the step still passes. Callers must hold w.mu.
func (w *Wizard) validateStep(step int) (errs, warns []string) {
	switch step {
	case 1:
		return w.validateIdentity(), nil
	case 2:
		return w.validateServices(), nil
	case 3:
		return w.validateLocation()
	case 4:
		return w.validateRates(), nil
	}
	return nil, nil
}

func (w *Wizard) validateIdentity() []string {
	var errs []string
	if strings.TrimSpace(w.form.FullName) == "" {
		errs = append(errs, "Please enter your full name")
	}
	if strings.TrimSpace(w.form.Email) == "" {
		errs = append(errs, "Please enter your email address")
	} else if !ValidEmail(w.form.Email) {
		errs = append(errs, "Please enter a valid email address")
	}
	if strings.TrimSpace(w.form.Phone) == "" {
		errs = append(errs, "Please enter your phone number")
	} else if !ValidKenyanPhone(w.form.Phone) {
		errs = append(errs, "Please enter a valid Kenyan phone number (e.g. 0712 345 678)")
	}
	return errs
}

func (w *Wizard) validateServices() []string {
	var errs []string
	if len(w.form.SelectedCategories) == 0 && len(w.form.SelectedServices) == 0 {
		errs = append(errs, "Please select at least one service category or specific service")
	}
	if w.form.ResponseTime == "" {
		errs = append(errs, "Please select your typical response time")
	}
	return errs
}

func (w *Wizard) validateLocation() (errs, warns []string) {
	if w.form.County == "" {
		errs = append(errs, "Please select your county")
	}
	if w.form.SubCounty == "" {
		errs = append(errs, "Please select your sub-county")
	}
	if w.form.Ward == "" {
		errs = append(errs, "Please select your ward")
	}
	if strings.TrimSpace(w.form.ServiceRadius) == "" {
		errs = append(errs, "Please select your service radius")
	}

	lat, latErr := strconv.ParseFloat(strings.TrimSpace(w.form.Latitude), 64)
	lng, lngErr := strconv.ParseFloat(strings.TrimSpace(w.form.Longitude), 64)
	switch {
	case w.form.Latitude == "" && w.form.Longitude == "":
		// A missing pin only warns; the visitor can still advance and add a
		// manual address or coordinates later.
		if strings.TrimSpace(w.form.ManualAddress) == "" && strings.TrimSpace(w.form.FullAddress) == "" {
			warns = append(warns, "Please pin your location on the map or enter your address manually")
		}
	case latErr != nil || lngErr != nil:
		errs = append(errs, "Location coordinates are invalid")
	case !locations.WithinKenya(lat, lng):
		errs = append(errs, "The selected location is outside Kenya")
	}
	return errs, warns
}

func (w *Wizard) validateRates() []string {
	var errs []string
	minRate, minErr := strconv.ParseFloat(strings.TrimSpace(w.form.MinRate), 64)
	maxRate, maxErr := strconv.ParseFloat(strings.TrimSpace(w.form.MaxRate), 64)
	if minErr == nil && maxErr == nil && minRate >= maxRate {
		errs = append(errs, "Maximum rate must be higher than minimum rate")
	}
	return errs
}

// validateAll runs every step's rules, for the final pre-submit check.
// Warnings never block submission. Callers must hold w.mu.
func (w *Wizard) validateAll() []string {
	var errs []string
	for step := 1; step <= totalSteps; step++ {
		stepErrs, _ := w.validateStep(step)
		errs = append(errs, stepErrs...)
	}
	return errs
}
