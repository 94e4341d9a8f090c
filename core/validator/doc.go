// Package validator implements tag-driven struct validation for the
// lead-capture forms. Rules are declared on struct fields with the
// `validate` tag, semicolon-separated, with optional colon-delimited
// parameters:
//
//	type LoanApplication struct {
//		FullName string  `validate:"required;min:3;max:100"`
//		Email    string  `validate:"required;email"`
//		Phone    string  `validate:"required;phone"`
//		PAN      string  `validate:"required;pan"`
//		Amount   float64 `validate:"required;positive"`
//	}
//
//	if err := validator.ValidateStruct(&form); err != nil {
//		var verrs validator.ValidationErrors
//		if errors.As(err, &verrs) {
//			for _, e := range verrs {
//				fmt.Println(e.Field, e.Message)
//			}
//		}
//	}
//
// The rule set is intentionally the one the portal's forms need:
// required, email, phone (Indian 10-digit mobile), pan, pincode, ifsc,
// min, max, in, numeric, and positive. Custom rules can be added with
// RegisterValidator.
package validator
