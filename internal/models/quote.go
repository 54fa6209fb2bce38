package models

// CalculatePriceRequest is the body of a price-calculation call.
// Method may be a method id or an exact method title; empty means no method.
type CalculatePriceRequest struct {
	Region string `json:"region"`
	Weight int    `json:"weight"`
	Method string `json:"method"`
}

// PriceQuote is the computed, rounded price breakdown for one request.
// It is assembled per request and never persisted. FiatPrice duplicates
// FinalPrice to match the response shape storefront clients expect.
type PriceQuote struct {
	ZoneID         string     `json:"regions_id"`
	ZoneName       string     `json:"regions_name"`
	Region         string     `json:"region"`
	ZoneRegions    StringList `json:"regions"`
	Weight         int        `json:"weight"`
	BasePrice      float64    `json:"base_price"`
	CostPercentage float64    `json:"cost_percentage"`
	MethodFee      float64    `json:"method_fee"`
	FinalPrice     float64    `json:"final_price"`
	Currency       string     `json:"currency"`
	FiatPrice      float64    `json:"fiat_price"`
	MethodID       *string    `json:"method_id"`
	MethodTitle    *string    `json:"method_title"`
}

// AvailableRegionsResponse bundles everything a storefront needs to render
// shipping options for one user.
type AvailableRegionsResponse struct {
	AvailableRegions StringList `json:"available_regions"`
	Methods          []Method   `json:"methods"`
	Regions          []Zone     `json:"regions"`
}
