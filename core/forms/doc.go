// Package forms defines the typed payloads for the portal's four
// lead-capture forms: loan application, credit check, franchise
// enquiry, and career application.
//
// Each form follows the same two-step contract:
//
//	form.Normalize()                       // trim, case-fold, strip phone prefixes
//	if err := form.Validate(); err != nil { // tag-driven field checks
//		...
//	}
//
// Normalize mutates the payload; Validate never does. Validation rules
// live on struct tags handled by core/validator.
package forms
