package domain

// Profile is the single local account shown on the Profile page.
type Profile struct {
	Name           string           `json:"name"`
	Email          string           `json:"email"`
	Phone          string           `json:"phone"`
	Notifications  []Setting        `json:"notifications"`
	PaymentMethods []PaymentMethod  `json:"paymentMethods"`
	Security       []SecurityOption `json:"security"`
}

type Setting struct {
	Name    string `json:"name"`
	Label   string `json:"label"`
	Enabled bool   `json:"enabled"`
}

// SecurityOption is either a toggle (Enabled set) or a plain action such as
// changing the password (Enabled nil).
type SecurityOption struct {
	Name    string `json:"name"`
	Label   string `json:"label"`
	Enabled *bool  `json:"enabled,omitempty"`
}

type PaymentType string

const (
	PaymentBank PaymentType = "bank"
	PaymentCard PaymentType = "card"
)

type PaymentMethod struct {
	ID      int64       `json:"id"`
	Type    PaymentType `json:"type"`
	Last4   string      `json:"last4"`
	Primary bool        `json:"primary"`
}

// Display renders the method like "Bank Account ending in 4567".
func (m PaymentMethod) Display() string {
	kind := "Credit Card"
	if m.Type == PaymentBank {
		kind = "Bank Account"
	}
	return kind + " ending in " + m.Last4
}
