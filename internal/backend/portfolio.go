package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ericwalterlaw/cryptish/internal/model"
	"github.com/ericwalterlaw/cryptish/internal/session"
)

// portfolioDoc is the wire shape of the portfolio endpoint. Numeric fields
// decode loosely; absent values coerce to 0.
type portfolioDoc struct {
	TotalValue     interface{} `json:"totalValue"`
	TotalGain      interface{} `json:"totalGain"`
	GainPercentage interface{} `json:"gainPercentage"`
	Assets         []assetDoc  `json:"assets"`
}

type assetDoc struct {
	Symbol       string      `json:"symbol"`
	Name         string      `json:"name"`
	Amount       interface{} `json:"amount"`
	CurrentPrice interface{} `json:"currentPrice"`
	AvgPrice     interface{} `json:"avgPrice"`
	Value        interface{} `json:"value"`
	Allocation   interface{} `json:"allocation"`
}

// FetchPortfolio retrieves the authenticated user's holdings. The caller is
// expected to substitute model.EmptyPortfolio() on error rather than failing
// a background refresh.
func (c *Client) FetchPortfolio(ctx context.Context, sess session.Session) (model.PortfolioSnapshot, error) {
	if !sess.IsAuthenticated() {
		return model.EmptyPortfolio(), ErrUnauthenticated
	}
	body, err := c.do(ctx, http.MethodGet, "/api/portfolio", sess, nil)
	if err != nil {
		return model.EmptyPortfolio(), err
	}

	var doc portfolioDoc
	if err := json.Unmarshal(body, &doc); err != nil {
		return model.EmptyPortfolio(), fmt.Errorf("decode portfolio: %w", err)
	}

	snap := model.PortfolioSnapshot{
		TotalValue:     toFloat(doc.TotalValue),
		TotalGain:      toFloat(doc.TotalGain),
		GainPercentage: toFloat(doc.GainPercentage),
		Assets:         make([]model.HeldAsset, 0, len(doc.Assets)),
	}
	for _, a := range doc.Assets {
		asset := model.HeldAsset{
			Symbol:       a.Symbol,
			Name:         a.Name,
			Amount:       toFloat(a.Amount),
			CurrentPrice: toFloat(a.CurrentPrice),
			AvgPrice:     toFloat(a.AvgPrice),
			Value:        toFloat(a.Value),
			Allocation:   toFloat(a.Allocation),
		}
		if a.Value == nil {
			asset.Value = asset.Amount * asset.CurrentPrice
		}
		snap.Assets = append(snap.Assets, asset)
	}
	return snap, nil
}
