package constvars

const (
	RegexContainAtLeastOneUppercase = `[A-Z]`
	RegexContainAtLeastOneLowercase = `[a-z]`
	RegexContainAtLeastOneDigit     = `\d`
)
