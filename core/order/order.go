package order

// NormalizedOrder is a validated order ready for formatting.
// Optional fields are empty strings when absent.
type NormalizedOrder struct {
	OrderRef     string `json:"orderRef"`
	CreatedAtISO string `json:"createdAtIso"`
	DeliveryDate string `json:"deliveryDate"`
	DeliverySlot string `json:"deliverySlot"`
	CustomerName string `json:"customerName"`
	Phone        string `json:"phone"`
	Email        string `json:"email,omitempty"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	Postcode     string `json:"postcode"`
	Items        []Item `json:"items"`
	Notes        string `json:"notes,omitempty"`
}

// Item is one order line.
type Item struct {
	Name string `json:"name"`
	Size string `json:"size,omitempty"`
	Qty  int    `json:"qty"`
}

// HasEmail reports whether the customer supplied an email address.
func (o NormalizedOrder) HasEmail() bool {
	return o.Email != ""
}

// StoreConfig holds display and contact details of the selling store.
type StoreConfig struct {
	StoreName    string `env:"STORE_NAME,required,notEmpty"`
	ContactPhone string `env:"STORE_CONTACT_PHONE,required,notEmpty"`
	ContactEmail string `env:"STORE_CONTACT_EMAIL,required,notEmpty"`
}
