package forms

import (
	"github.com/creditdost/portal/core/sanitizer"
	"github.com/creditdost/portal/core/validator"
)

// Loan types offered through the portal.
const (
	LoanTypePersonal = "personal"
	LoanTypeHome     = "home"
	LoanTypeBusiness = "business"
	LoanTypeVehicle  = "vehicle"
)

// LoanApplication captures a loan lead.
type LoanApplication struct {
	FullName      string  `json:"full_name" validate:"required;min:3;max:100"`
	Email         string  `json:"email" validate:"required;email"`
	Phone         string  `json:"phone" validate:"required;phone"`
	PAN           string  `json:"pan" validate:"required;pan"`
	Pincode       string  `json:"pincode" validate:"required;pincode"`
	LoanType      string  `json:"loan_type" validate:"required;in:personal,home,business,vehicle"`
	Amount        float64 `json:"amount" validate:"required;positive;min:10000;max:50000000"`
	MonthlyIncome float64 `json:"monthly_income" validate:"required;positive"`
}

// Normalize cleans up user input in place; run it before Validate.
func (f *LoanApplication) Normalize() {
	f.FullName = sanitizer.CollapseWhitespace(f.FullName)
	f.Email = sanitizer.NormalizeEmail(f.Email)
	f.Phone = sanitizer.NormalizePhone(f.Phone)
	f.PAN = sanitizer.NormalizePAN(f.PAN)
	f.Pincode = sanitizer.NormalizePincode(f.Pincode)
	f.LoanType = sanitizer.Trim(f.LoanType)
}

// Validate checks the payload against its field rules.
func (f *LoanApplication) Validate() error {
	return validator.ValidateStruct(f)
}

// CreditCheck captures a request for a free credit-score check.
type CreditCheck struct {
	FullName string `json:"full_name" validate:"required;min:3;max:100"`
	Email    string `json:"email" validate:"required;email"`
	Phone    string `json:"phone" validate:"required;phone"`
	PAN      string `json:"pan" validate:"required;pan"`
	Consent  bool   `json:"consent"`
}

func (f *CreditCheck) Normalize() {
	f.FullName = sanitizer.CollapseWhitespace(f.FullName)
	f.Email = sanitizer.NormalizeEmail(f.Email)
	f.Phone = sanitizer.NormalizePhone(f.Phone)
	f.PAN = sanitizer.NormalizePAN(f.PAN)
}

// Validate checks field rules plus the bureau-consent checkbox, which
// the tag rules cannot express for a boolean.
func (f *CreditCheck) Validate() error {
	err := validator.ValidateStruct(f)
	if !f.Consent {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			verrs = nil
		}
		verrs.Add(validator.ValidationError{
			Field:   "Consent",
			Message: "consent to fetch the credit report is required",
		})
		return verrs
	}
	return err
}

// FranchiseEnquiry captures a franchise partnership lead.
type FranchiseEnquiry struct {
	FullName   string  `json:"full_name" validate:"required;min:3;max:100"`
	Email      string  `json:"email" validate:"required;email"`
	Phone      string  `json:"phone" validate:"required;phone"`
	City       string  `json:"city" validate:"required;min:2;max:60"`
	Pincode    string  `json:"pincode" validate:"required;pincode"`
	Investment float64 `json:"investment" validate:"required;positive"`
	Message    string  `json:"message" validate:"max:1000"`
}

func (f *FranchiseEnquiry) Normalize() {
	f.FullName = sanitizer.CollapseWhitespace(f.FullName)
	f.Email = sanitizer.NormalizeEmail(f.Email)
	f.Phone = sanitizer.NormalizePhone(f.Phone)
	f.City = sanitizer.CollapseWhitespace(f.City)
	f.Pincode = sanitizer.NormalizePincode(f.Pincode)
	f.Message = sanitizer.Trim(f.Message)
}

func (f *FranchiseEnquiry) Validate() error {
	return validator.ValidateStruct(f)
}

// CareerApplication captures a job application.
type CareerApplication struct {
	FullName        string `json:"full_name" validate:"required;min:3;max:100"`
	Email           string `json:"email" validate:"required;email"`
	Phone           string `json:"phone" validate:"required;phone"`
	Position        string `json:"position" validate:"required;min:2;max:100"`
	ExperienceYears int    `json:"experience_years" validate:"min:0;max:50"`
	ResumeURL       string `json:"resume_url" validate:"max:500"`
	CoverNote       string `json:"cover_note" validate:"max:2000"`
}

func (f *CareerApplication) Normalize() {
	f.FullName = sanitizer.CollapseWhitespace(f.FullName)
	f.Email = sanitizer.NormalizeEmail(f.Email)
	f.Phone = sanitizer.NormalizePhone(f.Phone)
	f.Position = sanitizer.CollapseWhitespace(f.Position)
	f.ResumeURL = sanitizer.Trim(f.ResumeURL)
	f.CoverNote = sanitizer.Trim(f.CoverNote)
}

func (f *CareerApplication) Validate() error {
	return validator.ValidateStruct(f)
}
