package fake

import (
	"strconv"
	"strings"
)

var (
	cnpjWeights1 = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeights2 = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// appendCNPJCheckDigits appends the two modulo-11 verification digits to a
// 12-digit CNPJ base
func appendCNPJCheckDigits(base []int) []int {
	digits := append(base[:12:12], 0, 0)
	digits[12] = cnpjDigit(digits[:12], cnpjWeights1)
	digits[13] = cnpjDigit(digits[:13], cnpjWeights2)
	return digits
}

func cnpjDigit(digits, weights []int) int {
	sum := 0
	for i, d := range digits {
		sum += d * weights[i]
	}
	if r := sum % 11; r >= 2 {
		return 11 - r
	}
	return 0
}

// formatCNPJ renders 14 digits as ##.###.###/####-##
func formatCNPJ(d []int) string {
	var b strings.Builder
	for i, v := range d {
		switch i {
		case 2, 5:
			b.WriteByte('.')
		case 8:
			b.WriteByte('/')
		case 12:
			b.WriteByte('-')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}

// ValidCNPJ reports whether s is a formatted or bare CNPJ with correct
// check digits
func ValidCNPJ(s string) bool {
	digits := make([]int, 0, 14)
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits = append(digits, int(r-'0'))
		case r == '.' || r == '/' || r == '-':
		default:
			return false
		}
	}
	if len(digits) != 14 {
		return false
	}
	want := appendCNPJCheckDigits(append([]int(nil), digits[:12]...))
	return want[12] == digits[12] && want[13] == digits[13]
}
