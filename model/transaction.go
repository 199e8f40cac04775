package model

import (
	"strings"
	"time"
)

type TransactionType string

const (
	TransactionTrade     TransactionType = "trade"
	TransactionWaiver    TransactionType = "waiver"
	TransactionFreeAgent TransactionType = "free_agent"
	TransactionDrop      TransactionType = "drop"
	TransactionOther     TransactionType = "other"
)

func ParseTransactionType(t string) TransactionType {
	switch strings.ToLower(t) {
	case "trade":
		return TransactionTrade
	case "waiver":
		return TransactionWaiver
	case "free_agent":
		return TransactionFreeAgent
	case "drop":
		return TransactionDrop
	default:
		return TransactionOther
	}
}

// Title is the human readable headline used in notifications for a
// transaction of this type.
func (t TransactionType) Title() string {
	switch t {
	case TransactionTrade:
		return "Trade Completed"
	case TransactionWaiver:
		return "Waiver Claim"
	case TransactionFreeAgent:
		return "Free Agent Pickup"
	case TransactionDrop:
		return "Player Dropped"
	default:
		return "League Update"
	}
}

type TransactionStatus string

const (
	TransactionComplete TransactionStatus = "complete"
	TransactionPending  TransactionStatus = "pending"
	TransactionUnknown  TransactionStatus = "unknown"
)

func ParseTransactionStatus(s string) TransactionStatus {
	switch strings.ToLower(s) {
	case "complete":
		return TransactionComplete
	case "pending":
		return TransactionPending
	default:
		return TransactionUnknown
	}
}

// Transaction is a league event such as a trade or waiver claim. LeagueID and
// LeagueName are injected by the pipeline since the wire payload carries
// neither.
type Transaction struct {
	ID         string            `json:"id"`
	Type       TransactionType   `json:"type"`
	Status     TransactionStatus `json:"status"`
	Created    time.Time         `json:"created"` // zero when the source omitted the timestamp
	LeagueID   string            `json:"league_id"`
	LeagueName string            `json:"league_name"`
}

// Notification is the display-only projection of a Transaction.
type Notification struct {
	ID         string          `json:"id"`
	Type       TransactionType `json:"type"`
	Title      string          `json:"title"`
	Message    string          `json:"message"`
	Time       string          `json:"time"` // relative, e.g. "3 hours ago"
	Read       bool            `json:"read"`
	LeagueID   string          `json:"league_id"`
	LeagueName string          `json:"league_name"`
}
