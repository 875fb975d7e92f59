package validation

// IsValidNationalID validates a CPF number. Formatting characters are
// stripped; the number must have 11 digits, not be a run of one repeated
// digit, and carry two valid mod-11 check digits.
func IsValidNationalID(id string) bool {
	digits := make([]int, 0, 11)
	for _, r := range id {
		if r >= '0' && r <= '9' {
			digits = append(digits, int(r-'0'))
		}
	}
	if len(digits) != 11 {
		return false
	}

	allSame := true
	for _, d := range digits[1:] {
		if d != digits[0] {
			allSame = false
			break
		}
	}
	if allSame {
		return false
	}

	return checkDigit(digits, 9) == digits[9] && checkDigit(digits, 10) == digits[10]
}

// checkDigit computes the mod-11 weighted check digit over the first n
// digits, with weights n+1 down to 2.
func checkDigit(digits []int, n int) int {
	sum := 0
	for i := 0; i < n; i++ {
		sum += digits[i] * (n + 1 - i)
	}
	digit := sum * 10 % 11
	if digit == 10 {
		digit = 0
	}
	return digit
}
