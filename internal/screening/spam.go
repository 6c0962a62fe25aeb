package screening

import (
	"strings"

	"github.com/listingone/leadgen/internal/domain"
)

// DetectSpam scans a single record for spam signatures. It is purely
// local: no cross-session lookups.
func (d *Detector) DetectSpam(rec domain.UserRecord) domain.SpamCheck {
	check := domain.SpamCheck{Indicators: []string{}}

	name := strings.ToLower(strings.TrimSpace(rec.Name))
	email := strings.ToLower(strings.TrimSpace(rec.Email))
	phone := normalizePhone(rec.Phone)

	for _, w := range d.rules.Spam.NameKeywords {
		if name != "" && strings.Contains(name, w) {
			check.Score += 30
			check.Indicators = append(check.Indicators, "spam_name_keyword")
			break
		}
	}

	if domainPart := emailDomain(email); domainPart != "" {
		for _, disp := range d.rules.Spam.DisposableDomains {
			if domainPart == disp {
				check.Score += 40
				check.Indicators = append(check.Indicators, "disposable_email_domain")
				break
			}
		}
	}

	if phone != "" && len(phone) < 10 {
		check.Score += 20
		check.Indicators = append(check.Indicators, "phone_too_short")
	}

	for _, fake := range d.rules.Spam.FakePhonePatterns {
		if phone != "" && phone == fake {
			check.Score += 35
			check.Indicators = append(check.Indicators, "fake_phone_pattern")
			break
		}
	}

	stripped := strings.ReplaceAll(name, " ", "")
	if stripped != "" && distinctRunes(stripped) <= 2 {
		check.Score += 25
		check.Indicators = append(check.Indicators, "name_low_char_diversity")
	}

	if len(name) > 3 && countVowels(name) == 0 && countConsonants(name) > 3 {
		check.Score += 20
		check.Indicators = append(check.Indicators, "name_no_vowels")
	}

	check.IsSpam = check.Score >= d.rules.Spam.Threshold
	return check
}

func emailDomain(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return ""
	}
	return email[at+1:]
}

func distinctRunes(s string) int {
	seen := make(map[rune]struct{})
	for _, r := range s {
		seen[r] = struct{}{}
	}
	return len(seen)
}

func countVowels(s string) int {
	n := 0
	for _, r := range s {
		switch r {
		case 'a', 'e', 'i', 'o', 'u':
			n++
		}
	}
	return n
}

func countConsonants(s string) int {
	n := 0
	for _, r := range s {
		if r >= 'a' && r <= 'z' {
			switch r {
			case 'a', 'e', 'i', 'o', 'u':
			default:
				n++
			}
		}
	}
	return n
}
