package models

// RawProduct is one record of the catalog data file. Every field is
// optional; the normalizer fills in defaults.
type RawProduct struct {
	ID          *int        `json:"id"`
	Name        string      `json:"name"`
	Brand       string      `json:"brand"`
	Price       interface{} `json:"price"`
	Img         string      `json:"img"`
	Description string      `json:"description"`
	Rating      float64     `json:"rating"`
}

type Product struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Brand       string  `json:"brand"`
	Price       float64 `json:"price"`
	Img         string  `json:"img"`
	Description string  `json:"description"`
	Rating      float64 `json:"rating"`
}

type Brand struct {
	Name     string `json:"name"`
	Products int    `json:"products"`
}
