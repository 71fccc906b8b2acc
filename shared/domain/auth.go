package domain

// Principal is the caller identity carried by an access token.
type Principal struct {
	Subject string
	Admin   bool
}
