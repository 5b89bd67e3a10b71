// Package catalog holds the static service catalog: the master list of
// service categories and the specific services under each of them, used
// everywhere a category or service is shown or selected. The catalog is
// fixed at compile time and never mutated.
package catalog

import "strings"

// Category is a top-level service classification shown to end users.
type Category struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
}

// Service is a leaf offering within a category.
type Service struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Category        string   `json:"category"`
	TypicalRate     float64  `json:"typical_rate"`
	UrgencyKeywords []string `json:"urgency_keywords"`
}

// Categories returns all categories in their display order.
func Categories() []Category {
	out := make([]Category, 0, len(categoryOrder))
	for _, key := range categoryOrder {
		out = append(out, categories[key])
	}
	return out
}

// Get looks a category up by key.
func Get(key string) (Category, bool) {
	c, ok := categories[key]
	return c, ok
}

// ServicesFor returns the specific services of a category, empty for an
// unknown key.
func ServicesFor(categoryKey string) []Service {
	src := services[categoryKey]
	out := make([]Service, len(src))
	copy(out, src)
	return out
}

// FindService looks a service up by its catalog id.
func FindService(id string) (Service, bool) {
	for _, list := range services {
		for _, s := range list {
			if s.ID == id {
				return s, true
			}
		}
	}
	return Service{}, false
}

// SearchServices matches the query against service names, descriptions and
// urgency keywords, case-insensitively. An empty query matches nothing.
func SearchServices(query string) []Service {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var out []Service
	for _, key := range categoryOrder {
		for _, s := range services[key] {
			if strings.Contains(strings.ToLower(s.Name), q) ||
				strings.Contains(strings.ToLower(s.Description), q) {
				out = append(out, s)
				continue
			}
			for _, kw := range s.UrgencyKeywords {
				if strings.Contains(strings.ToLower(kw), q) {
					out = append(out, s)
					break
				}
			}
		}
	}
	return out
}

// ServiceNamesFor returns just the display names, in catalog order. The
// signup wizard keys its checkboxes on these.
func ServiceNamesFor(categoryKey string) []string {
	src := services[categoryKey]
	out := make([]string, 0, len(src))
	for _, s := range src {
		out = append(out, s.Name)
	}
	return out
}
