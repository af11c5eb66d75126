// Package identity validates South African identity numbers and local
// contact formats used by the registration wizard and profile editor.
package identity

import (
	"regexp"

	domainerrors "simsure/internal/domain/errors"
)

const idNumberLength = 13

// Accepts local "0XXXXXXXXX" and international "+27XXXXXXXXX" mobile formats.
var mobilePattern = regexp.MustCompile(`^(?:0|\+27)[6-8][0-9]{8}$`)

// ValidateIDNumber checks a South African national ID number: 13 digits with
// a Luhn-style check digit. Odd-position digits are summed directly; the
// even-position digits are concatenated, doubled as one number and their
// digits summed; the check digit must equal (10 - total mod 10) mod 10.
func ValidateIDNumber(id string) error {
	if len(id) != idNumberLength {
		return domainerrors.ErrInvalidIDNumber.WithDetails("ID number must be exactly 13 digits")
	}

	digits := make([]int, idNumberLength)
	for i, r := range id {
		if r < '0' || r > '9' {
			return domainerrors.ErrInvalidIDNumber.WithDetails("ID number must contain only digits")
		}
		digits[i] = int(r - '0')
	}

	if checkDigit(digits) != digits[idNumberLength-1] {
		return domainerrors.ErrInvalidIDNumber.WithDetails("ID number check digit mismatch")
	}

	return nil
}

func checkDigit(digits []int) int {
	oddSum := 0
	even := 0
	for i := 0; i < idNumberLength-1; i++ {
		if i%2 == 0 {
			oddSum += digits[i]
		} else {
			even = even*10 + digits[i]
		}
	}

	evenSum := 0
	for doubled := even * 2; doubled > 0; doubled /= 10 {
		evenSum += doubled % 10
	}

	return (10 - (oddSum+evenSum)%10) % 10
}

// ValidMobileNumber reports whether number is a South African mobile number.
func ValidMobileNumber(number string) bool {
	return mobilePattern.MatchString(number)
}
