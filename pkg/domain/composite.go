package domain

// Credentials is a username/password pair collected together.
type Credentials struct {
	Username string
	Password string
}

// Address groups the fields of a postal address prompt.
type Address struct {
	Country    string
	City       string
	PostalCode string
}
