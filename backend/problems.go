package backend

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"

	"fundilink/models"
)

// ImageAttachment is one photo attached to a problem report.
type ImageAttachment struct {
	Filename string
	Data     []byte
}

// DetectRequest is the input to the problem-detection endpoint. Category
// may be empty when the caller wants the classifier to suggest one.
type DetectRequest struct {
	Description      string
	SelectedCategory string
	SessionID        string
	Images           []ImageAttachment
}

// DetectProblem submits a problem description for classification. Plain
// JSON when there are no images, multipart otherwise — the upstream accepts
// both. Authentication is optional on this endpoint.
func (c *Client) DetectProblem(ctx context.Context, req DetectRequest) (*models.DetectionResult, error) {
	var result models.DetectionResult

	if len(req.Images) == 0 {
		body := map[string]interface{}{
			"description":       req.Description,
			"selected_category": nullableString(req.SelectedCategory),
			"images":            []string{},
		}
		if req.SessionID != "" {
			body["session_id"] = req.SessionID
		}
		if err := c.postJSON(ctx, "/api/problems/detect", false, body, &result); err != nil {
			return nil, err
		}
		return &result, nil
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	_ = writer.WriteField("description", req.Description)
	_ = writer.WriteField("selected_category", req.SelectedCategory)
	if req.SessionID != "" {
		_ = writer.WriteField("session_id", req.SessionID)
	}
	for _, img := range req.Images {
		part, err := writer.CreateFormFile("images", img.Filename)
		if err != nil {
			return nil, fmt.Errorf("attach image: %w", err)
		}
		if _, err := part.Write(img.Data); err != nil {
			return nil, fmt.Errorf("attach image: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("finalize upload: %w", err)
	}

	if err := c.postMultipart(ctx, "/api/problems/detect", false, writer.FormDataContentType(), &buf, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
