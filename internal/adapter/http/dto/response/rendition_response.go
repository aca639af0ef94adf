package response

import "fieldops/internal/domain/entities"

// RenditionResponse adds the derived expense total to the stored rendition.
type RenditionResponse struct {
	entities.Rendition
	TotalAmount float64 `json:"total_amount"`
	Locked      bool    `json:"locked"`
}

func FromRendition(r entities.Rendition) RenditionResponse {
	return RenditionResponse{Rendition: r, TotalAmount: r.TotalAmount(), Locked: r.IsLocked()}
}

func FromRenditions(rs []entities.Rendition) []RenditionResponse {
	out := make([]RenditionResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromRendition(r))
	}
	return out
}
