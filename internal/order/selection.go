package order

import "github.com/google/uuid"

// Selection holds the variation choices for the product currently
// being configured: at most one chosen name per variation type. It is
// transient, scoped to one configuration session, and must be reset
// whenever a different product is opened.
type Selection struct {
	sessionID string
	productID string
	choices   map[string]string
}

func NewSelection(productID string) *Selection {
	return &Selection{
		sessionID: uuid.New().String(),
		productID: productID,
		choices:   map[string]string{},
	}
}

func (s *Selection) SessionID() string { return s.sessionID }
func (s *Selection) ProductID() string { return s.productID }

// Choose picks a variation name for a type. Choosing the already
// selected name toggles it off; a different name replaces it.
func (s *Selection) Choose(variationType, name string) {
	if s.choices[variationType] == name {
		delete(s.choices, variationType)
		return
	}
	s.choices[variationType] = name
}

// Chosen returns the current choice for a type, if any.
func (s *Selection) Chosen(variationType string) (string, bool) {
	name, ok := s.choices[variationType]
	return name, ok
}

func (s *Selection) Empty() bool { return len(s.choices) == 0 }

// Reset rebinds the selection to another product, discarding every
// choice and starting a new session.
func (s *Selection) Reset(productID string) {
	s.sessionID = uuid.New().String()
	s.productID = productID
	s.choices = map[string]string{}
}
