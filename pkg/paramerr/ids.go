package paramerr

// Error ids reported by the built-in filters and readers.
// Message catalogues key off these strings, so they must stay stable.
const (
	FieldEmpty      = "FIELD_EMPTY"
	FieldNoSelect   = "FIELD_NO_SELECT"
	FieldWrongValue = "FIELD_WRONG_VALUE"

	ValueTooSmall = "VALUE_TOO_SMALL"
	ValueTooGreat = "VALUE_TOO_GREAT"

	StringTooShort = "STRING_TOO_SHORT"
	StringTooLong  = "STRING_TOO_LONG"

	DateTooEarly    = "DATE_TOO_EARLY"
	DateTooLate     = "DATE_TOO_LATE"
	DateInvalid     = "DATE_INVALID"
	DayInvalid      = "DAY_INVALID"
	WeekInvalid     = "WEEK_INVALID"
	MonthInvalid    = "MONTH_INVALID"
	DatespanInvalid = "DATESPAN_INVALID"

	JSONInputTooBig = "JSON_INPUT_TOO_BIG"
	JSONInvalid     = "JSON_INVALID"
	JSONSyntaxError = "JSON_SYNTAX_ERROR"

	MailAddressMissing              = "MAILADDRESS_MISSING"
	MailAddressIncorrect            = "MAILADDRESS_INCORRECT"
	MailAddressCannotContainSpaces  = "MAILADDRESS_CANNOT_CONTAIN_SPACES"
	MailAddressCannotContainUmlauts = "MAILADDRESS_CANNOT_CONTAIN_UMLAUTS"
	MailAddressMustContainOneAt     = "MAILADDRESS_MUST_CONTAIN_ONE_AT"
	MailAddressDotNextToAtSign      = "MAILADDRESS_DOT_NEXT_TO_AT_SIGN"
	MailAddressTwoFollowingDots     = "MAILADDRESS_CONTAINS_TWO_FOLLOWING_DOTS"

	HTTPURIMissing      = "HTTP_URI_MISSING"
	HTTPURIIncorrect    = "HTTP_URI_INCORRECT"
	HTTPURINotAvailable = "HTTP_URI_NOT_AVAILABLE"

	InvalidIPAddress = "INVALID_IP_ADDRESS"

	PasswordsNotEqual        = "PASSWORDS_NOT_EQUAL"
	PasswordTooShort         = "PASSWORD_TOO_SHORT"
	PasswordTooLessDiffChars = "PASSWORD_TOO_LESS_DIFF_CHARS"
	PasswordInvalid          = "PASSWORD_INVALID"
)
