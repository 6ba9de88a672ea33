package service

import (
	"cambio/internal/domain"
	"cambio/internal/logger"
	"cambio/pkg/binance"
	"cambio/pkg/p2parmy"
	"context"
	"errors"
	"fmt"
	"time"
)

const (
	// the representative price is always the third-ranked offer, a fixed
	// business rule modeling a realistically achievable rate rather than
	// the top-of-book price
	representativeOfferIndex = 2

	minOffers = representativeOfferIndex + 1
)

type QuoteStatus string

const (
	QuoteStatusOK               QuoteStatus = "ok"
	QuoteStatusInsufficientData QuoteStatus = "insufficient_data"
	QuoteStatusTransportError   QuoteStatus = "transport_error"
)

// QuoteOutcome is the tagged result of one aggregation attempt. Quote is
// set only when Status is ok; Reason is a human-readable diagnostic for
// the other two states.
type QuoteOutcome struct {
	Status QuoteStatus
	Quote  *domain.P2PQuote
	Reason string
	// offers seen per source, for diagnostics
	Debug map[string]int
}

type PrimaryOfferSource interface {
	GetSellOffers(ctx context.Context) ([]binance.Offer, error)
}

type FallbackOfferSource interface {
	GetOrderBook(ctx context.Context) (*p2parmy.OrderBook, error)
}

type QuoteService interface {
	GetQuote(ctx context.Context) QuoteOutcome
}

type quoteServiceHandler struct {
	Primary  PrimaryOfferSource
	Fallback FallbackOfferSource
}

func NewQuoteService(primary PrimaryOfferSource, fallback FallbackOfferSource) QuoteService {
	return &quoteServiceHandler{
		Primary:  primary,
		Fallback: fallback,
	}
}

// GetQuote tries the primary source first, then the fallback when the
// primary responds with fewer than three offers. A rejection with a
// response body (the endpoint blocks datacenter IPs with a JSON error)
// counts as zero offers and still reaches the fallback; only a true
// transport failure ends the attempt. A well-formed response without
// enough offers is an explicit insufficient-data result, never an error.
func (h *quoteServiceHandler) GetQuote(ctx context.Context) QuoteOutcome {
	log := logger.FromContext(ctx)

	offers, err := h.Primary.GetSellOffers(ctx)
	if err != nil {
		var statusErr binance.StatusError
		if !errors.As(err, &statusErr) {
			return QuoteOutcome{
				Status: QuoteStatusTransportError,
				Reason: fmt.Sprintf("primary source failed: %v", err),
			}
		}
		log.Warnf("primary source rejected the request (%v), trying fallback", err)
		offers = nil
	}

	if len(offers) >= minOffers {
		representative := offers[representativeOfferIndex]
		return QuoteOutcome{
			Status: QuoteStatusOK,
			Quote: &domain.P2PQuote{
				Price:     representative.Price,
				Seller:    representative.Seller,
				MinAmount: representative.MinAmount,
				MaxAmount: representative.MaxAmount,
				Source:    "binance_direct",
				UpdatedAt: time.Now().UTC(),
			},
			Debug: map[string]int{"binance": len(offers)},
		}
	}

	log.Infof("primary source returned %d offers, trying fallback", len(offers))

	book, err := h.Fallback.GetOrderBook(ctx)
	if err != nil {
		return QuoteOutcome{
			Status: QuoteStatusTransportError,
			Reason: fmt.Sprintf("fallback source failed: %v", err),
			Debug:  map[string]int{"binance": len(offers)},
		}
	}

	if book.Status == 1 && len(book.Ads) >= minOffers {
		representative := book.Ads[representativeOfferIndex]
		return QuoteOutcome{
			Status: QuoteStatusOK,
			Quote: &domain.P2PQuote{
				Price:     representative.Price,
				Seller:    representative.Seller,
				MinAmount: representative.MinAmount,
				MaxAmount: representative.MaxAmount,
				Source:    "p2p_army",
				UpdatedAt: time.Now().UTC(),
			},
			Debug: map[string]int{"binance": len(offers), "army": len(book.Ads)},
		}
	}

	return QuoteOutcome{
		Status: QuoteStatusInsufficientData,
		Reason: "not enough sellers available",
		Debug:  map[string]int{"binance": len(offers), "army": len(book.Ads)},
	}
}
