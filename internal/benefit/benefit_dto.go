package benefit

type BenefitResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func toResponse(b Benefit) BenefitResponse {
	return BenefitResponse{
		ID:   b.ID,
		Name: b.Name,
	}
}

func mapToListResponse(benefits []Benefit) []BenefitResponse {
	resp := make([]BenefitResponse, 0, len(benefits))
	for _, b := range benefits {
		resp = append(resp, toResponse(b))
	}
	return resp
}
