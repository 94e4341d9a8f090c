package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/creditdost/portal/core/sanitizer"
	"github.com/creditdost/portal/core/validator"
)

// EMIRequest is the input to the EMI calculator. The schedule itself is
// computed by the backend; the client only validates the input and
// renders the result.
type EMIRequest struct {
	Principal     float64 `json:"principal" validate:"required;positive;max:100000000"`
	AnnualRatePct float64 `json:"annual_rate" validate:"required;positive;max:60"`
	TenureMonths  int     `json:"tenure_months" validate:"required;min:1;max:480"`
}

// Validate checks the calculator input before any network call.
func (r *EMIRequest) Validate() error {
	return validator.ValidateStruct(r)
}

// EMIInstallment is one row of the amortization schedule.
type EMIInstallment struct {
	Month     int     `json:"month"`
	Principal float64 `json:"principal"`
	Interest  float64 `json:"interest"`
	Balance   float64 `json:"balance"`
}

// EMISchedule is the backend-computed amortization result.
type EMISchedule struct {
	MonthlyEMI    float64          `json:"emi"`
	TotalInterest float64          `json:"total_interest"`
	TotalPayment  float64          `json:"total_payment"`
	Schedule      []EMIInstallment `json:"schedule"`
}

// CalculateEMI submits the calculator input and returns the schedule.
func (c *Client) CalculateEMI(ctx context.Context, req EMIRequest) (EMISchedule, error) {
	if err := req.Validate(); err != nil {
		return EMISchedule{}, err
	}

	var out EMISchedule
	if err := c.do(ctx, http.MethodPost, "/api/emi/schedule", req, &out); err != nil {
		return EMISchedule{}, err
	}
	return out, nil
}

// IFSCDetails describes the bank branch behind an IFSC code.
type IFSCDetails struct {
	IFSC    string `json:"ifsc"`
	Bank    string `json:"bank"`
	Branch  string `json:"branch"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
}

// LookupIFSC resolves a bank branch. The code is normalized before the
// call so "hdfc0001234" and "HDFC0001234" hit the same cache entry
// server-side.
func (c *Client) LookupIFSC(ctx context.Context, code string) (IFSCDetails, error) {
	code = sanitizer.NormalizeIFSC(code)

	var out IFSCDetails
	if err := c.do(ctx, http.MethodGet, "/api/ifsc/"+url.PathEscape(code), nil, &out); err != nil {
		return IFSCDetails{}, err
	}
	return out, nil
}
