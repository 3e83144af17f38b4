package domain

type Destination struct {
	ID              string
	Name            string
	Description     string
	Image           string
	Location        string
	Hours           string
	HistoricalValue string
	// Price is the ticket price in rupiah; nil means the site has no ticket.
	Price *int64
}

func (d Destination) Free() bool {
	return d.Price == nil
}
