package view

// OrderForm echoes entered values back after a validation failure so
// nothing the visitor typed is lost.
type OrderForm struct {
	Name          string
	Phone         string
	Address       string
	Product       string
	QuantityValue string
	QuantityUnit  string
	DeliveryDate  string
	Notes         string
}

type OrderPage struct {
	Page
	Form     OrderForm
	Products []string // dropdown options, full range
	Units    []string
}

type ContactForm struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

type ContactPage struct {
	Page
	Form ContactForm
}
