package models

import "time"

// SearchResult is one package row returned from a chat-triggered search
type SearchResult struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Destination string   `json:"destination"`
	Price       string   `json:"price"`
	Duration    string   `json:"duration"`
	Hotel       *string  `json:"hotel"`
	Rating      *float64 `json:"rating"`
}

// ChatResponse is the POST /api/chat response body. SearchResults is
// null unless this turn completed a parameter set and ran a search.
type ChatResponse struct {
	Response      string         `json:"response"`
	SearchResults []SearchResult `json:"search_results"`
	SessionID     int64          `json:"session_id"`
}

// ChatMessage is one persisted chat message as returned by the history
// endpoint
type ChatMessage struct {
	ID          int64     `json:"id"`
	SessionID   int64     `json:"session_id"`
	Sender      string    `json:"sender"`
	MessageText string    `json:"message_text"`
	Timestamp   time.Time `json:"timestamp"`
}

// ChatHistoryResponse is the GET /api/chat/history/:user_id response body
type ChatHistoryResponse struct {
	SessionID int64         `json:"session_id"`
	Messages  []ChatMessage `json:"messages"`
}

// PackageListing is one row of the POST /api/search response, shaped
// for the storefront search page
type PackageListing struct {
	ID            int64    `json:"id"`
	Title         string   `json:"title"`
	Image         *string  `json:"image"`
	City          string   `json:"city"`
	Hotel         *string  `json:"hotel"`
	Includes      []string `json:"includes"`
	MemberReviews string   `json:"memberReviews"`
	Rating        *float64 `json:"rating"`
	ReviewCount   string   `json:"reviewCount"`
	Features      []string `json:"features"`
	PriceStatus   string   `json:"priceStatus"`
	AdjustText    string   `json:"adjustText"`
}

// SearchResponse is the POST /api/search response body
type SearchResponse struct {
	Results     []PackageListing `json:"results"`
	Total       int              `json:"total"`
	Destination string           `json:"destination"`
}

// TreasureHuntDeal is one curated treasure-hunt card
type TreasureHuntDeal struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Image       *string  `json:"image"`
	Benefits    []string `json:"benefits"`
	ExtrasValue *string  `json:"extrasValue"`
}

// WhatsHotDeal is one curated what's-hot card
type WhatsHotDeal struct {
	ID         int64    `json:"id"`
	Title      string   `json:"title"`
	Image      *string  `json:"image"`
	Price      *string  `json:"price"`
	Duration   *string  `json:"duration"`
	Inclusions []string `json:"inclusions"`
}
