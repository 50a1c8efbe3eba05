package recipient

import "fmt"

// ValidationResult is the outcome of Validate.
type ValidationResult struct {
	Errors []string
	Valid  bool
}

// Validate checks that every recipient has a non-empty value for every
// required key, resolved the same way placeholders are substituted.
// All violations are collected; Valid is true only when there are none.
func Validate(recipients []Recipient, requiredKeys []string) ValidationResult {
	var errs []string

	for i, r := range recipients {
		for _, key := range requiredKeys {
			if v, _ := r.Lookup(key); v == "" {
				errs = append(errs, fmt.Sprintf("Recipient %d (%s): missing value for %q", i+1, r.Name, key))
			}
		}
	}

	return ValidationResult{
		Valid:  len(errs) == 0,
		Errors: errs,
	}
}
