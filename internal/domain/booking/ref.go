package booking

import (
	"regexp"
	"strings"

	"github.com/lithammer/shortuuid/v3"
)

const refPrefix = "PB-"

var refRegex = regexp.MustCompile(`^PB-[0-9A-Z]{10}$`)

func NewRef() string {
	return refPrefix + strings.ToUpper(shortuuid.New()[:10])
}

// NormalizeRef accepts refs typed by customers with stray spaces or lower case.
func NormalizeRef(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

func IsValidRef(s string) bool {
	return refRegex.MatchString(s)
}
