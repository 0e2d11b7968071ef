package weather

// Snapshot is the immutable set of current conditions returned for one
// request.
type Snapshot struct {
	Location  string
	Condition string
	TempC     float64
	Humidity  int
	WindMPH   float64
}

// TempF derives the Fahrenheit temperature from the Celsius reading.
// Derived on demand so it can never disagree with TempC.
func (s Snapshot) TempF() float64 {
	return s.TempC*9/5 + 32
}

// currentResponse mirrors the weatherapi.com /v1/current.json body, limited
// to the fields the app renders.
type currentResponse struct {
	Location struct {
		Name string `json:"name"`
	} `json:"location"`
	Current struct {
		TempC     float64 `json:"temp_c"`
		Humidity  int     `json:"humidity"`
		WindMPH   float64 `json:"wind_mph"`
		Condition struct {
			Text string `json:"text"`
		} `json:"condition"`
	} `json:"current"`
}

func (r currentResponse) snapshot() Snapshot {
	return Snapshot{
		Location:  r.Location.Name,
		Condition: r.Current.Condition.Text,
		TempC:     r.Current.TempC,
		Humidity:  r.Current.Humidity,
		WindMPH:   r.Current.WindMPH,
	}
}
