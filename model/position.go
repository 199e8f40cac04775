package model

import (
	"strings"
)

type Position string

const (
	POS_UNKNOWN Position = "UNK"
	POS_QB      Position = "QB"
	POS_RB      Position = "RB"
	POS_WR      Position = "WR"
	POS_TE      Position = "TE"
	POS_K       Position = "K"
	POS_DEF     Position = "DEF"
)

// PositionOrder is the display order used when grouping a roster by position.
var PositionOrder = []Position{POS_QB, POS_RB, POS_WR, POS_TE, POS_K, POS_DEF, POS_UNKNOWN}

func ParsePosition(pos string) Position {
	pos = strings.ToLower(pos)
	switch pos {
	case "qb":
		return POS_QB
	case "rb":
		return POS_RB
	case "wr":
		return POS_WR
	case "te":
		return POS_TE
	case "k":
		return POS_K
	case "def", "dst":
		return POS_DEF
	default:
		return POS_UNKNOWN
	}
}
