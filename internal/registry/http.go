package registry

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"diecast/internal/common"
	"diecast/internal/model"
)

// recordResponse is the wire shape of a registry record.
type recordResponse struct {
	Barcode           string `json:"barcode"`
	Name              string `json:"name"`
	Brand             string `json:"brand"`
	Series            string `json:"series"`
	Color             string `json:"color"`
	Category          string `json:"category"`
	Subcategory       string `json:"subcategory"`
	Year              int    `json:"year"`
	VerificationCount int    `json:"verification_count"`
}

// contributionRequest is the wire shape of a write-back.
type contributionRequest struct {
	Barcode      string   `json:"barcode"`
	Name         string   `json:"name,omitempty"`
	Brand        string   `json:"brand,omitempty"`
	Series       string   `json:"series,omitempty"`
	Color        string   `json:"color,omitempty"`
	Category     string   `json:"category"`
	Subcategory  string   `json:"subcategory,omitempty"`
	Year         int      `json:"year,omitempty"`
	EvidenceRefs []string `json:"evidence_refs,omitempty"`
}

// ClientOpts configures the HTTP registry client.
type ClientOpts struct {
	BaseURL string
	Auth    string
}

// HTTPRegistry talks to a remote shared registry over REST.
type HTTPRegistry struct {
	httpClient *resty.Client
	auth       string
}

// NewHTTP creates a registry client for the given base URL.
func NewHTTP(opts ClientOpts) *HTTPRegistry {
	c := &HTTPRegistry{auth: opts.Auth}
	c.httpClient = resty.New().
		SetBaseURL(opts.BaseURL).
		SetHeader("Accept", "application/json")
	return c
}

func (c *HTTPRegistry) req(ctx context.Context, result any) *resty.Request {
	request := c.httpClient.NewRequest().SetContext(ctx)
	if c.auth != "" {
		request.SetHeader("Authorization", c.auth)
	}
	if result != nil {
		request.SetResult(result)
	}
	return request
}

// Lookup fetches the record for a barcode. A 404 maps to (nil, nil); any
// other failure reports the registry as unreachable so the caller can fail
// open into classification.
func (c *HTTPRegistry) Lookup(ctx context.Context, barcode string) (*model.RegistryRecord, error) {
	var body recordResponse
	resp, err := c.req(ctx, &body).
		SetPathParam("barcode", barcode).
		Get("/registry/{barcode}")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrRegistryUnavailable, err)
	}

	switch {
	case resp.StatusCode() == http.StatusNotFound:
		return nil, nil
	case resp.IsError():
		return nil, fmt.Errorf("%w: lookup returned %s", common.ErrRegistryUnavailable, resp.Status())
	}

	return &model.RegistryRecord{
		Barcode:           body.Barcode,
		Name:              body.Name,
		Brand:             body.Brand,
		Series:            body.Series,
		Color:             body.Color,
		Category:          model.ParseCategory(body.Category),
		Subcategory:       body.Subcategory,
		Year:              body.Year,
		VerificationCount: body.VerificationCount,
	}, nil
}

// Contribute posts a confirmed classification to the registry. Failures
// surface as typed ContributionErrors; they are never swallowed.
func (c *HTTPRegistry) Contribute(ctx context.Context, contribution model.Contribution) error {
	if err := validateContribution(contribution); err != nil {
		return err
	}

	resp, err := c.req(ctx, nil).
		SetBody(contributionRequest{
			Barcode:      contribution.Barcode,
			Name:         contribution.Name,
			Brand:        contribution.Brand,
			Series:       contribution.Series,
			Color:        contribution.Color,
			Category:     string(contribution.Category),
			Subcategory:  contribution.Subcategory,
			Year:         contribution.Year,
			EvidenceRefs: contribution.EvidenceRefs,
		}).
		Post("/registry")
	if err != nil {
		return common.NewContributionError(contribution.Barcode, "registry unreachable", err)
	}
	if resp.IsError() {
		return common.NewContributionError(contribution.Barcode,
			fmt.Sprintf("registry rejected contribution with %s", resp.Status()), nil)
	}
	return nil
}

// Close implements service.Registry.
func (c *HTTPRegistry) Close() error {
	return nil
}
