package events

// Event types dispatched by the session and the catalog watcher.
const (
	TypeTCGChanged        = "tcg:changed"
	TypeCollectionUpdated = "collection:updated"
	TypeDeckUpdated       = "deck:updated"
	TypeCatalogReplaced   = "catalog:replaced"
)

// TCGChangedEvent is the payload for tcg:changed events.
// Sent when the user selects a different card game.
type TCGChangedEvent struct {
	Previous string `json:"previous"`
	Current  string `json:"current"`
}

// CollectionUpdatedEvent is the payload for collection:updated events.
type CollectionUpdatedEvent struct {
	CardID   string `json:"cardId"`
	Action   string `json:"action"`   // "add", "remove", "condition", "favorite"
	Quantity int    `json:"quantity"` // Copies owned after the change
}

// DeckUpdatedEvent is the payload for deck:updated events.
type DeckUpdatedEvent struct {
	DeckID    string `json:"deckId"`
	Action    string `json:"action"`           // "create", "update", "delete", "add_card", "remove_card"
	CardID    string `json:"cardId,omitempty"` // Set for card actions
	CardCount int    `json:"cardCount"`        // Total cards in the deck after the change
}

// CatalogReplacedEvent is the payload for catalog:replaced events.
type CatalogReplacedEvent struct {
	Source string `json:"source"`
	Cards  int    `json:"cards"`
}
