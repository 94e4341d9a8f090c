package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"sync"
)

// ValidatorFunc is a function that validates a value and returns a Rule.
type ValidatorFunc func(field string, value reflect.Value, params []string) Rule

var (
	registryMu sync.RWMutex
	registry   = map[string]ValidatorFunc{
		"required": requiredValidator,
		"min":      minValidator,
		"max":      maxValidator,
		"in":       inValidator,
		"numeric":  numericValidator,
		"positive": positiveValidator,

		// Domain formats
		"email":   emailValidator,
		"phone":   phoneValidator,
		"pan":     panValidator,
		"pincode": pincodeValidator,
		"ifsc":    ifscValidator,
	}
)

// RegisterValidator adds a custom validator function to the registry.
func RegisterValidator(name string, fn ValidatorFunc) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = fn
}

// ValidateStruct validates a struct based on its field tags.
func ValidateStruct(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer {
		return fmt.Errorf("validator: must pass a pointer to struct")
	}

	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("validator: must pass a pointer to struct")
	}

	var errs ValidationErrors
	validateStructRecursive(rv, "", &errs)

	if errs.IsEmpty() {
		return nil
	}
	return errs
}

func validateStructRecursive(rv reflect.Value, prefix string, errs *ValidationErrors) {
	rt := rv.Type()

	for i := 0; i < rv.NumField(); i++ {
		field := rv.Field(i)
		if !field.CanSet() {
			continue
		}

		structField := rt.Field(i)
		tag := structField.Tag.Get("validate")
		if tag == "-" {
			continue
		}

		fieldPath := structField.Name
		if prefix != "" {
			fieldPath = prefix + "." + structField.Name
		}

		// Untagged nested structs are walked for their own tags.
		if field.Kind() == reflect.Struct && tag == "" {
			validateStructRecursive(field, fieldPath, errs)
			continue
		}

		if tag == "" {
			continue
		}

		validateField(fieldPath, field, tag, errs)
	}
}

func validateField(fieldPath string, field reflect.Value, tag string, errs *ValidationErrors) {
	rules := strings.Split(tag, ";")

	// Optional fields: when the value is empty and "required" is not among
	// the rules, format checks are skipped.
	if !strings.Contains(tag, "required") && isEmpty(field) {
		return
	}

	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, ruleStr := range rules {
		ruleStr = strings.TrimSpace(ruleStr)
		if ruleStr == "" {
			continue
		}

		parts := strings.SplitN(ruleStr, ":", 2)
		ruleName := strings.TrimSpace(parts[0])

		var params []string
		if len(parts) > 1 {
			for _, p := range strings.Split(parts[1], ",") {
				params = append(params, strings.TrimSpace(p))
			}
		}

		if fn, ok := registry[ruleName]; ok {
			rule := fn(fieldPath, field, params)
			if !rule.Check() {
				errs.Add(rule.Error)
			}
		}
	}
}

func isEmpty(value reflect.Value) bool {
	switch value.Kind() {
	case reflect.String:
		return strings.TrimSpace(value.String()) == ""
	case reflect.Slice, reflect.Map, reflect.Array:
		return value.Len() == 0
	case reflect.Pointer, reflect.Interface:
		return value.IsNil()
	default:
		return value.IsZero()
	}
}

// Built-in validators

func requiredValidator(field string, value reflect.Value, _ []string) Rule {
	return Rule{
		Check: func() bool { return !isEmpty(value) },
		Error: ValidationError{Field: field, Message: "field is required"},
	}
}

func minValidator(field string, value reflect.Value, params []string) Rule {
	if len(params) < 1 {
		return pass()
	}

	switch value.Kind() {
	case reflect.String:
		min, _ := strconv.Atoi(params[0])
		return Rule{
			Check: func() bool { return len(strings.TrimSpace(value.String())) >= min },
			Error: ValidationError{Field: field, Message: fmt.Sprintf("must be at least %d characters", min)},
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		min, _ := strconv.ParseInt(params[0], 10, 64)
		return Rule{
			Check: func() bool { return value.Int() >= min },
			Error: ValidationError{Field: field, Message: fmt.Sprintf("must be at least %d", min)},
		}
	case reflect.Float32, reflect.Float64:
		min, _ := strconv.ParseFloat(params[0], 64)
		return Rule{
			Check: func() bool { return value.Float() >= min },
			Error: ValidationError{Field: field, Message: fmt.Sprintf("must be at least %v", min)},
		}
	default:
		return pass()
	}
}

func maxValidator(field string, value reflect.Value, params []string) Rule {
	if len(params) < 1 {
		return pass()
	}

	switch value.Kind() {
	case reflect.String:
		max, _ := strconv.Atoi(params[0])
		return Rule{
			Check: func() bool { return len(strings.TrimSpace(value.String())) <= max },
			Error: ValidationError{Field: field, Message: fmt.Sprintf("must be at most %d characters", max)},
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		max, _ := strconv.ParseInt(params[0], 10, 64)
		return Rule{
			Check: func() bool { return value.Int() <= max },
			Error: ValidationError{Field: field, Message: fmt.Sprintf("must be at most %d", max)},
		}
	case reflect.Float32, reflect.Float64:
		max, _ := strconv.ParseFloat(params[0], 64)
		return Rule{
			Check: func() bool { return value.Float() <= max },
			Error: ValidationError{Field: field, Message: fmt.Sprintf("must be at most %v", max)},
		}
	default:
		return pass()
	}
}

func inValidator(field string, value reflect.Value, params []string) Rule {
	if value.Kind() != reflect.String || len(params) == 0 {
		return pass()
	}
	return Rule{
		Check: func() bool {
			s := value.String()
			for _, p := range params {
				if s == p {
					return true
				}
			}
			return false
		},
		Error: ValidationError{Field: field, Message: "must be one of: " + strings.Join(params, ", ")},
	}
}

func numericValidator(field string, value reflect.Value, _ []string) Rule {
	if value.Kind() != reflect.String {
		return pass()
	}
	return Rule{
		Check: func() bool {
			s := value.String()
			if s == "" {
				return false
			}
			for _, r := range s {
				if r < '0' || r > '9' {
					return false
				}
			}
			return true
		},
		Error: ValidationError{Field: field, Message: "must contain only digits"},
	}
}

func positiveValidator(field string, value reflect.Value, _ []string) Rule {
	switch value.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Rule{
			Check: func() bool { return value.Int() > 0 },
			Error: ValidationError{Field: field, Message: "must be greater than zero"},
		}
	case reflect.Float32, reflect.Float64:
		return Rule{
			Check: func() bool { return value.Float() > 0 },
			Error: ValidationError{Field: field, Message: "must be greater than zero"},
		}
	default:
		return pass()
	}
}

// Format patterns mirror the checks the portal applies before submission.
var (
	emailRegex   = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRegex   = regexp.MustCompile(`^[6-9]\d{9}$`)
	panRegex     = regexp.MustCompile(`^[A-Z]{5}\d{4}[A-Z]$`)
	pincodeRegex = regexp.MustCompile(`^[1-9]\d{5}$`)
	ifscRegex    = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)
)

func regexValidator(pattern *regexp.Regexp, message string) ValidatorFunc {
	return func(field string, value reflect.Value, _ []string) Rule {
		if value.Kind() != reflect.String {
			return pass()
		}
		return Rule{
			Check: func() bool { return pattern.MatchString(value.String()) },
			Error: ValidationError{Field: field, Message: message},
		}
	}
}

var (
	emailValidator   = regexValidator(emailRegex, "must be a valid email address")
	phoneValidator   = regexValidator(phoneRegex, "must be a valid 10-digit mobile number")
	panValidator     = regexValidator(panRegex, "must be a valid PAN (e.g. ABCDE1234F)")
	pincodeValidator = regexValidator(pincodeRegex, "must be a valid 6-digit PIN code")
	ifscValidator    = regexValidator(ifscRegex, "must be a valid IFSC code")
)
