// Package estate is the property listing service: catalog queries, admin
// CRUD and image uploads against the backend REST and storage endpoints.
package estate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mahannajafi/moslemi-group-project/internal/api"
	"github.com/mahannajafi/moslemi-group-project/internal/model"
)

const (
	propertiesPath = "/rest/v1/properties"
	storagePath    = "/storage/v1/object/property-images/"
)

type Service struct {
	api *api.Client
}

func NewService(client *api.Client) *Service {
	return &Service{api: client}
}

// Properties runs the public catalog query and returns the matching
// listings, unwrapped from the pagination envelope.
func (s *Service) Properties(ctx context.Context, f Filter) ([]model.Property, error) {
	var env model.Envelope[model.Property]
	path := propertiesPath + "?" + f.Values().Encode()
	if err := s.api.Do(ctx, http.MethodGet, path, nil, api.Options{}, &env); err != nil {
		return nil, err
	}
	return env.Results, nil
}

// PropertyByID fetches a single listing. The backend may answer with either
// a bare record or a one-element envelope; both normalize to the record, or
// nil when nothing matched.
func (s *Service) PropertyByID(ctx context.Context, id string) (*model.Property, error) {
	var raw json.RawMessage
	path := propertiesPath + "?id=" + url.QueryEscape(id)
	if err := s.api.Do(ctx, http.MethodGet, path, nil, api.Options{}, &raw); err != nil {
		return nil, err
	}

	var env model.Envelope[model.Property]
	if err := json.Unmarshal(raw, &env); err == nil && env.Results != nil {
		if len(env.Results) == 0 {
			return nil, nil
		}
		return &env.Results[0], nil
	}
	var p model.Property
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, &api.DecodeError{Err: err}
	}
	if p.ID == "" {
		return nil, nil
	}
	return &p, nil
}

// AdminProperties returns every listing the caller may see, in any status.
// Requires a signed-in session; the backend rejects anonymous calls.
func (s *Service) AdminProperties(ctx context.Context) ([]model.Property, error) {
	var env model.Envelope[model.Property]
	if err := s.api.Do(ctx, http.MethodGet, propertiesPath, nil, api.Options{Auth: true}, &env); err != nil {
		return nil, err
	}
	return env.Results, nil
}

// Create posts a new listing, asking the backend to echo the created record
// back so the generated id and timestamps come for free. Form rules are the
// caller's concern (Draft.Validate); the service sends whatever it is given,
// with an omitted price coerced to the "0" wire value.
func (s *Service) Create(ctx context.Context, d Draft) (*model.Property, error) {
	opts := api.Options{
		Auth:   true,
		Header: http.Header{"Prefer": []string{"return=representation"}},
	}
	var created model.Property
	if err := s.api.DoJSON(ctx, http.MethodPost, propertiesPath, d.wire(), opts, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Delete removes a listing permanently. A 204 from the backend is the only
// acknowledgement; there is no undo.
func (s *Service) Delete(ctx context.Context, id string) error {
	path := propertiesPath + "/" + url.PathEscape(id)
	return s.api.Do(ctx, http.MethodDelete, path, nil, api.Options{Auth: true}, nil)
}

// UploadImage stores one image in the property-images bucket and returns its
// public URL. The caller supplies the object name; see NewObjectName.
func (s *Service) UploadImage(ctx context.Context, r io.Reader, objectName string) (string, error) {
	buf := new(bytes.Buffer)
	form := multipart.NewWriter(buf)
	part, err := form.CreateFormFile("file", objectName)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", err
	}
	if err := form.Close(); err != nil {
		return "", err
	}

	var resp struct {
		URL string `json:"url"`
	}
	path := storagePath + url.PathEscape(objectName)
	if err := s.api.DoForm(ctx, path, buf, form.FormDataContentType(), api.Options{Auth: true}, &resp); err != nil {
		return "", err
	}
	return resp.URL, nil
}

// ImageFile pairs an image stream with the local name it came from.
type ImageFile struct {
	Name string
	Body io.Reader
}

// UploadImages uploads files one at a time, in order. Policy on partial
// failure is best-effort: the upload stops at the first error and the URLs
// that did make it are returned alongside it, so the caller can surface or
// reuse them instead of leaving silently orphaned objects.
func (s *Service) UploadImages(ctx context.Context, files []ImageFile) ([]string, error) {
	urls := make([]string, 0, len(files))
	for i, f := range files {
		u, err := s.UploadImage(ctx, f.Body, NewObjectName(f.Name))
		if err != nil {
			return urls, fmt.Errorf("upload %d of %d (%s): %w", i+1, len(files), f.Name, err)
		}
		urls = append(urls, u)
	}
	return urls, nil
}

// NewObjectName derives a collision-resistant object name from the original
// file name, keeping only its extension.
func NewObjectName(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	suffix := uuid.NewString()[:8]
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), suffix, ext)
}
