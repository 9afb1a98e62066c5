package models

// Cafe represents a cafe entry in the directory
type Cafe struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	MapURL       string   `json:"map_url"`
	ImgURL       *string  `json:"img_url"`
	Location     string   `json:"location"`
	HasSockets   bool     `json:"has_sockets"`
	HasToilet    bool     `json:"has_toilet"`
	HasWifi      bool     `json:"has_wifi"`
	CanTakeCalls bool     `json:"can_take_calls"`
	Seats        *int     `json:"seats"`
	CoffeePrice  *float64 `json:"coffee_price"`
}

// CreateCafeRequest represents a request to add a new cafe.
// Required fields are pointers so that an explicit JSON "false" on an
// amenity flag still counts as present, while an omitted key does not.
type CreateCafeRequest struct {
	Name         *string  `json:"name"`
	MapURL       *string  `json:"map_url"`
	ImgURL       *string  `json:"img_url"`
	Location     *string  `json:"location"`
	HasSockets   *bool    `json:"has_sockets"`
	HasToilet    *bool    `json:"has_toilet"`
	HasWifi      *bool    `json:"has_wifi"`
	CanTakeCalls *bool    `json:"can_take_calls"`
	Seats        *int     `json:"seats"`
	CoffeePrice  *float64 `json:"coffee_price"`
}

// MissingFields returns the names of required fields absent from the request
func (r *CreateCafeRequest) MissingFields() []string {
	var missing []string
	if r.Name == nil {
		missing = append(missing, "name")
	}
	if r.MapURL == nil {
		missing = append(missing, "map_url")
	}
	if r.Location == nil {
		missing = append(missing, "location")
	}
	if r.HasSockets == nil {
		missing = append(missing, "has_sockets")
	}
	if r.HasToilet == nil {
		missing = append(missing, "has_toilet")
	}
	if r.HasWifi == nil {
		missing = append(missing, "has_wifi")
	}
	if r.CanTakeCalls == nil {
		missing = append(missing, "can_take_calls")
	}
	return missing
}

// ToCafe converts a validated request into a Cafe record.
// Must only be called after MissingFields returned an empty slice.
func (r *CreateCafeRequest) ToCafe() *Cafe {
	return &Cafe{
		Name:         *r.Name,
		MapURL:       *r.MapURL,
		ImgURL:       r.ImgURL,
		Location:     *r.Location,
		HasSockets:   *r.HasSockets,
		HasToilet:    *r.HasToilet,
		HasWifi:      *r.HasWifi,
		CanTakeCalls: *r.CanTakeCalls,
		Seats:        r.Seats,
		CoffeePrice:  r.CoffeePrice,
	}
}
