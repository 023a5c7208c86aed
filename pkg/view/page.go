package view

// Business is the contact block rendered in header, footer, contact
// page and the mobile call-to-action bar.
type Business struct {
	Name         string
	Phone        string
	PhoneDisplay string
	Email        string
	Address      string
	Hours        string
	MapsEmbedURL string
	WhatsAppLink string
	TelLink      string
}

// Page carries what every template needs.
type Page struct {
	Title     string
	Active    string // nav highlight: home, products, about, contact
	Flash     *Flash
	CartCount int
	Business  Business
}
