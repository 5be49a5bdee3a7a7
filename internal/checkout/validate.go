package checkout

import (
	"regexp"
	"strings"

	"github.com/sojibhasan5800/flipcart-storefront/internal/domain"
)

// Kept permissive on purpose: the backend revalidates on order creation.
var emailPattern = regexp.MustCompile(`^\S+@\S+$`)

// ValidateBilling checks the billing form before submission is
// permitted. Returns nil when the form is acceptable.
func ValidateBilling(b domain.BillingInformation) ValidationErrors {
	errs := ValidationErrors{}

	required := map[string]string{
		"first_name":     b.FirstName,
		"last_name":      b.LastName,
		"email":          b.Email,
		"phone":          b.Phone,
		"address_line_1": b.AddressLine1,
		"city":           b.City,
		"state":          b.State,
		"country":        b.Country,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			errs[field] = "is required"
		}
	}

	if _, ok := errs["email"]; !ok && !emailPattern.MatchString(b.Email) {
		errs["email"] = "is not a valid email address"
	}

	if !b.PaymentMethod.Valid() {
		errs["payment_method"] = "must be one of: stripe, sslcommerz"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
