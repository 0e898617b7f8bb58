package fake

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

type ptBR struct {
	f *gofakeit.Faker
}

var _ Provider = (*ptBR)(nil)

func newPtBR(f *gofakeit.Faker) *ptBR {
	return &ptBR{f: f}
}

func (p *ptBR) Locale() string { return LocalePtBR }

func (p *ptBR) pick(list []string, attr string) (string, error) {
	if len(list) == 0 {
		return "", fmt.Errorf("locale %s has no data for %s", LocalePtBR, attr)
	}
	return p.f.RandomString(list), nil
}

// UUID is always crypto-random, independent of the seed
func (p *ptBR) UUID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate uuid: %w", err)
	}
	return id.String(), nil
}

func (p *ptBR) firstName() (string, error) { return p.pick(ptBRFirstNames, "first name") }
func (p *ptBR) lastName() (string, error)  { return p.pick(ptBRLastNames, "last name") }

func (p *ptBR) Name() (string, error) {
	first, err := p.firstName()
	if err != nil {
		return "", err
	}
	last, err := p.lastName()
	if err != nil {
		return "", err
	}

	switch n := p.f.IntRange(1, 10); {
	case n <= 8:
		return first + " " + last, nil
	case n == 9:
		second, err := p.lastName()
		if err != nil {
			return "", err
		}
		return first + " " + last + " " + second, nil
	default:
		prefix, err := p.pick(ptBRPrefixes, "name prefix")
		if err != nil {
			return "", err
		}
		return prefix + " " + first + " " + last, nil
	}
}

func (p *ptBR) Email() (string, error) {
	first, err := p.firstName()
	if err != nil {
		return "", err
	}
	last, err := p.lastName()
	if err != nil {
		return "", err
	}
	domain, err := p.pick(ptBRFreeEmailDomains, "email domain")
	if err != nil {
		return "", err
	}
	first, err = slug(first)
	if err != nil {
		return "", err
	}
	last, err = slug(last)
	if err != nil {
		return "", err
	}

	var user string
	switch p.f.IntRange(0, 3) {
	case 0:
		user = first + "." + last
	case 1:
		user = first + last
	case 2:
		user = last + "." + first
	default:
		user = first + strconv.Itoa(p.f.IntRange(1, 99))
	}
	return user + "@" + domain, nil
}

func (p *ptBR) PhoneNumber() (string, error) {
	format, err := p.pick(ptBRPhoneFormats, "phone format")
	if err != nil {
		return "", err
	}
	return p.f.Numerify(format), nil
}

func (p *ptBR) StreetAddress() (string, error) {
	prefix, err := p.pick(ptBRStreetPrefixes, "street prefix")
	if err != nil {
		return "", err
	}
	last, err := p.lastName()
	if err != nil {
		return "", err
	}
	street := prefix + " " + last
	if p.f.Bool() {
		first, err := p.firstName()
		if err != nil {
			return "", err
		}
		street = prefix + " " + first + " " + last
	}
	return street + ", " + strconv.Itoa(p.f.IntRange(1, 999)), nil
}

func (p *ptBR) Address() (string, error) {
	street, err := p.StreetAddress()
	if err != nil {
		return "", err
	}
	bairro, err := p.pick(ptBRBairros, "bairro")
	if err != nil {
		return "", err
	}
	postcode, err := p.Postcode()
	if err != nil {
		return "", err
	}
	city, err := p.City()
	if err != nil {
		return "", err
	}
	_, abbr, err := p.state()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s\n%s\n%s %s / %s", street, bairro, postcode, city, abbr), nil
}

func (p *ptBR) City() (string, error) {
	last, err := p.lastName()
	if err != nil {
		return "", err
	}
	switch p.f.IntRange(0, 2) {
	case 0:
		return last, nil
	case 1:
		suffix, err := p.CitySuffix()
		if err != nil {
			return "", err
		}
		return last + " " + suffix, nil
	default:
		first, err := p.firstName()
		if err != nil {
			return "", err
		}
		suffix, err := p.CitySuffix()
		if err != nil {
			return "", err
		}
		return first + " " + suffix, nil
	}
}

func (p *ptBR) CitySuffix() (string, error) {
	return p.pick(ptBRCitySuffixes, "city suffix")
}

func (p *ptBR) state() (name, abbr string, err error) {
	if len(ptBRStates) == 0 {
		return "", "", fmt.Errorf("locale %s has no data for state", LocalePtBR)
	}
	s := ptBRStates[p.f.IntRange(0, len(ptBRStates)-1)]
	return s[0], s[1], nil
}

func (p *ptBR) State() (string, error) {
	name, _, err := p.state()
	return name, err
}

func (p *ptBR) Postcode() (string, error) {
	if p.f.Bool() {
		return p.f.Numerify("#####-###"), nil
	}
	return p.f.Numerify("########"), nil
}

func (p *ptBR) Company() (string, error) {
	last, err := p.lastName()
	if err != nil {
		return "", err
	}
	switch p.f.IntRange(0, 3) {
	case 0:
		suffix, err := p.pick(ptBRCompanySuffixes, "company suffix")
		if err != nil {
			return "", err
		}
		return last + " " + suffix, nil
	case 1:
		other, err := p.lastName()
		if err != nil {
			return "", err
		}
		suffix, err := p.pick(ptBRCompanySuffixes, "company suffix")
		if err != nil {
			return "", err
		}
		return last + " " + other + " " + suffix, nil
	case 2:
		other, err := p.lastName()
		if err != nil {
			return "", err
		}
		return last + " - " + other, nil
	default:
		return last, nil
	}
}

func (p *ptBR) CNPJ() (string, error) {
	digits := make([]int, 12, 14)
	for i := 0; i < 8; i++ {
		digits[i] = p.f.IntRange(0, 9)
	}
	// branch 0001
	digits[11] = 1
	return formatCNPJ(appendCNPJCheckDigits(digits)), nil
}

func (p *ptBR) Job() (string, error) {
	return p.pick(ptBRJobs, "job")
}

func (p *ptBR) DateOfBirth(ref time.Time, minAge, maxAge int) (time.Time, error) {
	if minAge < 0 || maxAge < minAge {
		return time.Time{}, fmt.Errorf("invalid age range [%d, %d]", minAge, maxAge)
	}
	start := ref.AddDate(-(maxAge + 1), 0, 1)
	end := ref.AddDate(-minAge, 0, 0)
	return p.DateBetween(start, end)
}

func (p *ptBR) DateBetween(start, end time.Time) (time.Time, error) {
	if end.Before(start) {
		return time.Time{}, fmt.Errorf("invalid date range %s..%s", start.Format(time.DateOnly), end.Format(time.DateOnly))
	}
	return p.f.DateRange(start, end), nil
}

// slug lowercases s, drops accents and spaces
func slug(s string) (string, error) {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return "", fmt.Errorf("fold %q: %w", s, err)
	}
	folded = strings.ToLower(folded)
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return -1
	}, folded), nil
}
