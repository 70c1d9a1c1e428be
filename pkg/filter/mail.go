package filter

import (
	"strings"

	"github.com/dmitrymomot/input/pkg/paramerr"
	"github.com/dmitrymomot/input/pkg/value"
)

// Mail accepts syntactically valid mail addresses. Rejections carry the most
// specific error id found for the input.
type Mail struct{}

// Apply implements Filter.
func (Mail) Apply(v value.Value) (string, bool, paramerr.Errors) {
	if v.IsEmpty() {
		return "", false, nil
	}
	if v.IsMailAddress() {
		return v.String(), true, nil
	}
	return "", false, paramerr.Of(mailErrorID(v.String()), nil)
}

// mailErrorID diagnoses an invalid address. Checks run in priority order.
func mailErrorID(s string) string {
	switch {
	case strings.ContainsAny(s, " \t\r\n"):
		return paramerr.MailAddressCannotContainSpaces
	case strings.ContainsAny(s, "äÄöÖüÜß"):
		return paramerr.MailAddressCannotContainUmlauts
	case strings.Count(s, "@") != 1:
		return paramerr.MailAddressMustContainOneAt
	case strings.Contains(s, ".@") || strings.Contains(s, "@."):
		return paramerr.MailAddressDotNextToAtSign
	case strings.Contains(s, ".."):
		return paramerr.MailAddressTwoFollowingDots
	default:
		return paramerr.MailAddressIncorrect
	}
}
