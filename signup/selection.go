// signup/selection.go
package signup

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"fundilink/catalog"
)

// CategoryState is the tri-state of a category checkbox, derived from how
// many of its services are selected.
type CategoryState string

const (
	CategoryUnchecked     CategoryState = "unchecked"
	CategoryIndeterminate CategoryState = "indeterminate"
	CategoryChecked       CategoryState = "checked"
)

// ServiceKey builds the "category:service" pair the selection lists store.
func ServiceKey(categoryKey, serviceName string) string {
	return categoryKey + ":" + serviceName
}

// ToggleCategory checks or unchecks a whole category: on selects the
// category and every service under it, off drops them all.
func (w *Wizard) ToggleCategory(ctx context.Context, categoryKey string, on bool) error {
	if _, ok := catalog.Get(categoryKey); !ok {
		return fmt.Errorf("unknown category %q", categoryKey)
	}

	w.mu.Lock()
	w.removeCategoryLocked(categoryKey)
	if on {
		w.form.SelectedCategories = append(w.form.SelectedCategories, categoryKey)
		for _, name := range catalog.ServiceNamesFor(categoryKey) {
			w.form.SelectedServices = append(w.form.SelectedServices, ServiceKey(categoryKey, name))
		}
	}
	w.normalizeSelectionsLocked()
	w.dirty = true
	w.mu.Unlock()

	w.saveNow(ctx)
	return nil
}

// ToggleService checks or unchecks one service, then re-derives its
// category's membership: the category key is kept only while every service
// under it is selected.
func (w *Wizard) ToggleService(ctx context.Context, categoryKey, serviceName string, on bool) error {
	names := catalog.ServiceNamesFor(categoryKey)
	found := false
	for _, name := range names {
		if name == serviceName {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("unknown service %q in category %q", serviceName, categoryKey)
	}

	key := ServiceKey(categoryKey, serviceName)
	w.mu.Lock()
	w.form.SelectedServices = removeString(w.form.SelectedServices, key)
	if on {
		w.form.SelectedServices = append(w.form.SelectedServices, key)
	}

	w.form.SelectedCategories = removeString(w.form.SelectedCategories, categoryKey)
	if w.selectedCountLocked(categoryKey) == len(names) {
		w.form.SelectedCategories = append(w.form.SelectedCategories, categoryKey)
	}
	w.normalizeSelectionsLocked()
	w.dirty = true
	w.mu.Unlock()

	w.saveNow(ctx)
	return nil
}

// StateOf reports the tri-state of one category checkbox.
func (w *Wizard) StateOf(categoryKey string) CategoryState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stateOfLocked(categoryKey)
}

// SelectionStates reports the tri-state of every catalog category, keyed by
// category key.
func (w *Wizard) SelectionStates() map[string]CategoryState {
	w.mu.Lock()
	defer w.mu.Unlock()

	states := make(map[string]CategoryState, len(catalog.Categories()))
	for _, cat := range catalog.Categories() {
		states[cat.Key] = w.stateOfLocked(cat.Key)
	}
	return states
}

func (w *Wizard) stateOfLocked(categoryKey string) CategoryState {
	total := len(catalog.ServiceNamesFor(categoryKey))
	selected := w.selectedCountLocked(categoryKey)
	switch {
	case total == 0 || selected == 0:
		return CategoryUnchecked
	case selected == total:
		return CategoryChecked
	default:
		return CategoryIndeterminate
	}
}

// selectedCountLocked counts selected services under a category. Callers
// must hold w.mu.
func (w *Wizard) selectedCountLocked(categoryKey string) int {
	prefix := categoryKey + ":"
	count := 0
	for _, key := range w.form.SelectedServices {
		if strings.HasPrefix(key, prefix) {
			count++
		}
	}
	return count
}

// removeCategoryLocked drops a category key and all its service pairs.
// Callers must hold w.mu.
func (w *Wizard) removeCategoryLocked(categoryKey string) {
	w.form.SelectedCategories = removeString(w.form.SelectedCategories, categoryKey)
	prefix := categoryKey + ":"
	kept := w.form.SelectedServices[:0]
	for _, key := range w.form.SelectedServices {
		if !strings.HasPrefix(key, prefix) {
			kept = append(kept, key)
		}
	}
	w.form.SelectedServices = kept
}

// normalizeSelectionsLocked dedupes and orders the selection lists so saved
// state compares stably. Callers must hold w.mu.
func (w *Wizard) normalizeSelectionsLocked() {
	w.form.SelectedCategories = dedupeSorted(w.form.SelectedCategories)
	w.form.SelectedServices = dedupeSorted(w.form.SelectedServices)
}

func removeString(list []string, value string) []string {
	kept := list[:0]
	for _, v := range list {
		if v != value {
			kept = append(kept, v)
		}
	}
	return kept
}

func dedupeSorted(list []string) []string {
	if len(list) < 2 {
		return list
	}
	sort.Strings(list)
	kept := list[:1]
	for _, v := range list[1:] {
		if v != kept[len(kept)-1] {
			kept = append(kept, v)
		}
	}
	return kept
}
