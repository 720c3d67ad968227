package handlers

import (
	"net/http"

	"github.com/ghuser/thoron/pkg/errhttp"
	"github.com/ghuser/thoron/pkg/httpx"
	pkgvalidator "github.com/ghuser/thoron/pkg/validator"
	appsvcs "github.com/ghuser/thoron/services/carrier/application/services"
)

// QuoteRequest is the optional request body for POST /quotes.
type QuoteRequest struct {
	Origin       string  `json:"origin"       validate:"max=255" example:"Chicago, IL"`
	Destination  string  `json:"destination"  validate:"max=255" example:"Dallas, TX"`
	Weight       float64 `json:"weight"       validate:"gte=0"   example:"1850"`
	FreightClass string  `json:"freightClass" validate:"max=8"   example:"60"`
} // @name QuoteRequest

// QuoteResponse is one indicative carrier offer.
type QuoteResponse struct {
	Carrier     string  `json:"carrier"     example:"Old Dominion"`
	Service     string  `json:"service"     example:"Guaranteed"`
	Rate        float64 `json:"rate"        example:"510"`
	TransitDays int     `json:"transitDays" example:"2"`
	Score       int     `json:"score"       example:"98"`
} // @name QuoteResponse

// QuotesHandler handles POST /quotes requests.
type QuotesHandler struct {
	svc *appsvcs.Services
}

// NewQuotesHandler returns a QuotesHandler backed by the given services.
func NewQuotesHandler(svc *appsvcs.Services) *QuotesHandler {
	return &QuotesHandler{svc: svc}
}

// Execute returns indicative rates, best score first.
//
//	@Summary		Rate quotes
//	@Description	Returns a fixed sheet of indicative carrier rates sorted by score
//	@Tags			quotes
//	@Accept			json
//	@Produce		json
//	@Param			request	body		QuoteRequest	false	"Freight"
//	@Success		200		{array}		QuoteResponse
//	@Failure		400		{object}	httpx.ErrorResponse
//	@Failure		422		{object}	httpx.ErrorResponse
//	@Router			/quotes [post]
func (h *QuotesHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[QuoteRequest](w, r)
	if !ok {
		return
	}

	quotes, err := h.svc.Quote.Quotes(r.Context(), appsvcs.QuoteRequest{
		Origin:       req.Origin,
		Destination:  req.Destination,
		Weight:       req.Weight,
		FreightClass: req.FreightClass,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		resp = append(resp, QuoteResponse{
			Carrier:     q.Carrier,
			Service:     q.Service,
			Rate:        q.Rate,
			TransitDays: q.TransitDays,
			Score:       q.Score,
		})
	}
	httpx.JSON(w, http.StatusOK, resp)
}
