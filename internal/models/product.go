package models

type SizeOption struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type AddOn struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type Product struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Description     string       `json:"description"`
	BasePrice       float64      `json:"basePrice"`
	Image           string       `json:"image"`
	Category        string       `json:"category"`
	Sizes           []SizeOption `json:"sizes"`
	MilkOptions     []string     `json:"milkOptions"`
	SweetnessLevels []string     `json:"sweetnessLevels"`
	AddOns          []AddOn      `json:"addOns"`
	Tags            []string     `json:"tags,omitempty"`
	Featured        bool         `json:"featured,omitempty"`
}
