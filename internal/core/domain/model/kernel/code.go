package kernel

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/T0MGL/0rdefy-sub010/internal/pkg/errs"
	"github.com/T0MGL/0rdefy-sub010/internal/pkg/guard"
)

const (
	// CodePrefix is the fixed prefix of every session code.
	CodePrefix = "FS-"
	// CodeSuffixLength is the number of random characters after the prefix.
	CodeSuffixLength = 6
	// codeAlphabet holds the characters allowed in a code suffix.
	// Ambiguous characters (0, 1, I, L, O) are excluded so codes stay
	// readable on warehouse screens and printed labels.
	codeAlphabet = "23456789ABCDEFGHJKMNPQRSTUVWXYZ"
)

// ErrCodeIsNotConstructed is returned when attempting to use an improperly initialized Code.
// Codes must be created using NewCode or GenerateCode constructors to ensure validity.
var ErrCodeIsNotConstructed = errs.NewValueIsRequiredError(
	"code must be created via NewCode or GenerateCode constructors")

// Code is the short human-readable identifier of a fulfillment session.
// Operators use it to tell sessions apart on hand scanners and printed
// documents, where a full UUID would be impractical.
//
// Code is an immutable value object. The zero value is invalid and will
// fail validation - use constructors to create instances.
//
// Example:
//
//	code, err := kernel.NewCode("FS-7K3M2Q")
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Printf("Session: %s", code) // Output: Session: FS-7K3M2Q
type Code struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewCode creates a Code from its string representation.
// The value must consist of CodePrefix followed by exactly CodeSuffixLength
// characters from the code alphabet.
//
// Parameters:
//   - value: The full code string, e.g. "FS-7K3M2Q"
//
// Returns:
//   - Code: A valid code instance
//   - error: Validation error if the value does not match the code format
//
// Example:
//
//	code, err := NewCode("FS-7K3M2Q")
//	if err != nil {
//	    log.Fatal("Invalid code:", err)
//	}
func NewCode(value string) (Code, error) {
	code := Code{
		guard: guard.NewConstructorGuard(),
	}

	if err := code.setValue(value); err != nil {
		return Code{}, err
	}

	return code, nil
}

// GenerateCode creates a Code with a randomly generated suffix.
// Called when a new fulfillment session is opened.
//
// Returns:
//   - Code: A valid code with a random suffix
//   - error: Should never return an error since generated suffixes are always valid
//
// Example:
//
//	code, err := GenerateCode()
//	if err != nil {
//	    log.Fatal("Unexpected error:", err) // Should never happen
//	}
//	fmt.Printf("New session code: %s", code)
func GenerateCode() (Code, error) {
	suffix := make([]byte, CodeSuffixLength)
	for i := range suffix {
		suffix[i] = codeAlphabet[rand.IntN(len(codeAlphabet))] //nolint:gosec // it's ok
	}
	return NewCode(CodePrefix + string(suffix))
}

// Validate checks if the Code was properly constructed using a constructor.
// The zero value of Code is invalid and will fail this validation.
//
// Returns:
//   - error: ErrCodeIsNotConstructed if the code was not properly initialized, nil otherwise
func (c Code) Validate() error {
	return c.guard.Validate(ErrCodeIsNotConstructed)
}

// String returns the full code value, e.g. "FS-7K3M2Q".
// This method implements the fmt.Stringer interface.
func (c Code) String() string {
	return c.value
}

// IsEqual compares two codes for equality.
// Both codes must be properly constructed (pass validation) for the comparison to succeed.
//
// Parameters:
//   - other: The Code to compare with
//
// Returns:
//   - bool: true if codes are equal, false otherwise
//   - error: Validation error if either code is improperly constructed
func (c Code) IsEqual(other Code) (bool, error) {
	if err := errors.Join(c.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return c.value == other.value, nil
}

// setValue sets the code value with validation.
// Note: We intentionally use a pointer receiver here while other methods use value receivers.
// Pointer receivers on private setters enable self-encapsulated validation of business
// requirements during object construction.
func (c *Code) setValue(value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError("code")
	}

	suffix, found := strings.CutPrefix(value, CodePrefix)
	if !found {
		return errs.NewValueIsInvalidErrorWithCause("code",
			fmt.Errorf("%q does not start with %q", value, CodePrefix))
	}

	if len(suffix) != CodeSuffixLength {
		return errs.NewValueIsInvalidErrorWithCause("code",
			fmt.Errorf("suffix of %q must contain exactly %d characters", value, CodeSuffixLength))
	}

	for _, r := range suffix {
		if !strings.ContainsRune(codeAlphabet, r) {
			return errs.NewValueIsInvalidErrorWithCause("code",
				fmt.Errorf("%q contains character %q outside the code alphabet", value, r))
		}
	}

	c.value = value
	return nil
}
