package apiclient

import (
	"context"
	"net/http"
	"time"

	"github.com/creditdost/portal/core/forms"
	"github.com/creditdost/portal/core/logger"
)

// LeadReceipt acknowledges a submitted lead.
type LeadReceipt struct {
	Reference string `json:"reference"`
	Status    string `json:"status"`
}

// Lead is one captured lead as listed on the dashboards.
type Lead struct {
	Reference string    `json:"reference"`
	Kind      string    `json:"kind"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type leadsResponse struct {
	Leads []Lead `json:"leads"`
}

// Each submit normalizes and validates a copy of the form locally, then
// performs the single round trip. Payload preparation is synchronous and
// happens entirely before the call.

// SubmitLoanApplication captures a loan lead.
func (c *Client) SubmitLoanApplication(ctx context.Context, form forms.LoanApplication) (LeadReceipt, error) {
	form.Normalize()
	if err := form.Validate(); err != nil {
		return LeadReceipt{}, err
	}

	var out LeadReceipt
	if err := c.do(ctx, http.MethodPost, "/api/leads/loan-application", form, &out); err != nil {
		return LeadReceipt{}, err
	}
	return out, nil
}

// SubmitCreditCheck captures a credit-check request.
func (c *Client) SubmitCreditCheck(ctx context.Context, form forms.CreditCheck) (LeadReceipt, error) {
	form.Normalize()
	if err := form.Validate(); err != nil {
		return LeadReceipt{}, err
	}

	var out LeadReceipt
	if err := c.do(ctx, http.MethodPost, "/api/leads/credit-check", form, &out); err != nil {
		return LeadReceipt{}, err
	}
	return out, nil
}

// SubmitFranchiseEnquiry captures a franchise partnership lead.
func (c *Client) SubmitFranchiseEnquiry(ctx context.Context, form forms.FranchiseEnquiry) (LeadReceipt, error) {
	form.Normalize()
	if err := form.Validate(); err != nil {
		return LeadReceipt{}, err
	}

	var out LeadReceipt
	if err := c.do(ctx, http.MethodPost, "/api/leads/franchise", form, &out); err != nil {
		return LeadReceipt{}, err
	}
	return out, nil
}

// SubmitCareerApplication captures a job application.
func (c *Client) SubmitCareerApplication(ctx context.Context, form forms.CareerApplication) (LeadReceipt, error) {
	form.Normalize()
	if err := form.Validate(); err != nil {
		return LeadReceipt{}, err
	}

	var out LeadReceipt
	if err := c.do(ctx, http.MethodPost, "/api/careers/apply", form, &out); err != nil {
		return LeadReceipt{}, err
	}
	return out, nil
}

// Leads lists captured leads. The endpoint is role-gated server-side;
// franchise users see their own territory, admins see everything.
func (c *Client) Leads(ctx context.Context) ([]Lead, error) {
	var out leadsResponse
	if err := c.do(ctx, http.MethodGet, "/api/leads", nil, &out); err != nil {
		return nil, err
	}

	c.log.DebugContext(ctx, "leads loaded",
		logger.Component("apiclient"),
		logger.Count("leads", len(out.Leads)),
	)
	return out.Leads, nil
}
