package userclient

// AgeBracket returns the display label shown next to a user's age on the
// registration page.
func AgeBracket(age int) string {
	switch {
	case age < 30:
		return "Jovem"
	case age < 50:
		return "Adulto"
	default:
		return "Sênior"
	}
}
