package generator

// Age brackets
const (
	AgeYoung  = "JOVEM"
	AgeAdult  = "ADULTO"
	AgeSenior = "SENIOR"
)

// Salary brackets
const (
	SalaryLow    = "BAIXA"
	SalaryMedium = "MEDIA"
	SalaryHigh   = "ALTA"
)

// Credit risk categories
const (
	RiskLow    = "BAIXO"
	RiskMedium = "MEDIO"
	RiskHigh   = "ALTO"
)

// AgeBracket buckets an age: <30 JOVEM, [30,50) ADULTO, >=50 SENIOR
func AgeBracket(age int) string {
	switch {
	case age < 30:
		return AgeYoung
	case age < 50:
		return AgeAdult
	default:
		return AgeSenior
	}
}

// SalaryBracket buckets a gross salary: <5000 BAIXA, [5000,10000) MEDIA,
// >=10000 ALTA
func SalaryBracket(salary float64) string {
	switch {
	case salary < 5000:
		return SalaryLow
	case salary < 10000:
		return SalaryMedium
	default:
		return SalaryHigh
	}
}

// RiskCategory buckets a credit score: >700 BAIXO, >600 MEDIO, otherwise ALTO
func RiskCategory(score int) string {
	switch {
	case score > 700:
		return RiskLow
	case score > 600:
		return RiskMedium
	default:
		return RiskHigh
	}
}
