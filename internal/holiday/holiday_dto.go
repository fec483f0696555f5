package holiday

// HolidayResponse is the API shape of one resolved holiday.
type HolidayResponse struct {
	Date          string  `json:"date"`
	Name          string  `json:"name"`
	LocalName     string  `json:"local_name,omitempty"`
	Type          string  `json:"type"`
	PayMultiplier float64 `json:"pay_multiplier"`
	IsApproximate bool    `json:"is_approximate"`
	Source        string  `json:"source"`
}

func mapToResponse(h Holiday) HolidayResponse {
	return HolidayResponse{
		Date:          h.Date.String(),
		Name:          h.Name,
		LocalName:     h.LocalName,
		Type:          string(h.Type),
		PayMultiplier: h.PayMultiplier.InexactFloat64(),
		IsApproximate: h.IsApproximate,
		Source:        string(h.Source),
	}
}

func mapToListResponse(holidays []Holiday) []HolidayResponse {
	resp := make([]HolidayResponse, len(holidays))
	for i, h := range holidays {
		resp[i] = mapToResponse(h)
	}
	return resp
}
