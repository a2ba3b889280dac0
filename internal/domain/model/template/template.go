// Package template holds the greeting template value object.
package template

// Template is an immutable value object. The greeting is derived once at
// construction from the three inputs.
type Template struct {
	firstName string
	lastName  string
	platform  string
	greeting  string
}

// New creates a Template. Inputs are embedded verbatim.
func New(firstName, lastName, platform string) *Template {
	return &Template{
		firstName: firstName,
		lastName:  lastName,
		platform:  platform,
		greeting:  "Hello World by " + firstName + " " + lastName + " from the amazing world of " + platform + "!!",
	}
}

// FirstName returns the first name
func (t *Template) FirstName() string {
	return t.firstName
}

// LastName returns the last name
func (t *Template) LastName() string {
	return t.lastName
}

// Platform returns the platform label
func (t *Template) Platform() string {
	return t.platform
}

// Greeting returns the derived greeting
func (t *Template) Greeting() string {
	return t.greeting
}

func (t *Template) String() string {
	return t.greeting
}
