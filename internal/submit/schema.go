package submit

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"
)

// Rule checks one constraint. It returns the offending field and message,
// or ok=true when the constraint holds.
type Rule interface {
	Check(Fields) (field, msg string, ok bool)
}

// RuleFunc adapts a function to Rule.
type RuleFunc func(Fields) (field, msg string, ok bool)

// Check implements Rule.
func (f RuleFunc) Check(fs Fields) (string, string, bool) { return f(fs) }

// Schema is an ordered list of rules. The first failing rule for a field wins.
type Schema []Rule

// Check runs every rule and returns field → message for each violation.
// The map is empty when fields are valid.
func (s Schema) Check(fs Fields) map[string]string {
	errs := make(map[string]string)
	for _, r := range s {
		field, msg, ok := r.Check(fs)
		if ok {
			continue
		}
		if _, seen := errs[field]; !seen {
			errs[field] = msg
		}
	}
	return errs
}

// MinLen requires at least n characters, ignoring surrounding whitespace.
func MinLen(field string, n int, msg string) Rule {
	if msg == "" {
		msg = fmt.Sprintf("Must be at least %d characters", n)
	}
	return RuleFunc(func(fs Fields) (string, string, bool) {
		v := strings.TrimSpace(fs.Get(field))
		return field, msg, utf8.RuneCountInString(v) >= n
	})
}

// Email requires a bare address of the form local@domain.tld.
func Email(field, msg string) Rule {
	if msg == "" {
		msg = "Please enter a valid email address"
	}
	return RuleFunc(func(fs Fields) (string, string, bool) {
		return field, msg, validEmail(strings.TrimSpace(fs.Get(field)))
	})
}

func validEmail(v string) bool {
	if v == "" {
		return false
	}
	addr, err := mail.ParseAddress(v)
	if err != nil || addr.Address != v || addr.Name != "" {
		return false
	}
	at := strings.LastIndexByte(v, '@')
	domain := v[at+1:]
	dot := strings.LastIndexByte(domain, '.')
	return dot > 0 && dot < len(domain)-1
}

// ContactSchema validates the contact form.
func ContactSchema() Schema {
	return Schema{
		MinLen("name", 2, "Name must be at least 2 characters"),
		Email("email", "Please enter a valid email address"),
		MinLen("message", 10, "Message must be at least 10 characters"),
	}
}

// NewsletterSchema validates the newsletter form.
func NewsletterSchema() Schema {
	return Schema{
		Email("email", "Please enter a valid email address"),
	}
}
