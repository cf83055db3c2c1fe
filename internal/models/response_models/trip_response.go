package response_models

type SaveTripResponse struct {
	ID string `json:"id"`
}

type InterestResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}
