package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"

	"fundilink/models"
)

// Apply submits a provider application. The upstream endpoint reads a
// multipart form; the category and service selections travel as JSON-encoded
// string fields inside it.
func (c *Client) Apply(ctx context.Context, form models.SignupForm) (*models.ApplyResult, error) {
	categories, err := json.Marshal(form.SelectedCategories)
	if err != nil {
		return nil, fmt.Errorf("encode categories: %w", err)
	}
	services, err := json.Marshal(form.SelectedServices)
	if err != nil {
		return nil, fmt.Errorf("encode services: %w", err)
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fields := map[string]string{
		"fullName":           form.FullName,
		"businessName":       form.BusinessName,
		"email":              form.Email,
		"phone":              form.Phone,
		"description":        form.Description,
		"selectedCategories": string(categories),
		"selectedServices":   string(services),
		"responseTime":       form.ResponseTime,
		"county":             form.County,
		"subCounty":          form.SubCounty,
		"ward":               form.Ward,
		"specificLocation":   form.SpecificLocation,
		"serviceRadius":      form.ServiceRadius,
		"latitude":           form.Latitude,
		"longitude":          form.Longitude,
		"fullAddress":        form.FullAddress,
		"manualAddress":      form.ManualAddress,
		"minRate":            form.MinRate,
		"maxRate":            form.MaxRate,
	}
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return nil, fmt.Errorf("write field %s: %w", name, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("finalize form: %w", err)
	}

	var result models.ApplyResult
	if err := c.postMultipart(ctx, "/api/provider/apply", true, w.FormDataContentType(), &buf, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
