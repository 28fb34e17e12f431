package domain

import (
	"fmt"
	"strings"
)

type Position string

const (
	PosQB  Position = "QB"
	PosRB  Position = "RB"
	PosWR  Position = "WR"
	PosTE  Position = "TE"
	PosK   Position = "K"
	PosDST Position = "DST"
)

// AllPositions is the fixed set of positions in display order.
var AllPositions = []Position{PosQB, PosRB, PosWR, PosTE, PosK, PosDST}

// positionAliases maps accepted input spellings to canonical positions.
var positionAliases = map[string]Position{
	"QB": PosQB, "RB": PosRB, "WR": PosWR, "TE": PosTE, "K": PosK,
	"DST": PosDST, "D": PosDST, "DEF": PosDST, "D/ST": PosDST,
}

// ParsePosition parses a position string case-insensitively,
// accepting common defense aliases (D, DEF, D/ST).
func ParsePosition(s string) (Position, error) {
	p, ok := positionAliases[strings.ToUpper(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("unknown position %q (expected one of QB, RB, WR, TE, K, DST)", s)
	}
	return p, nil
}

type PlayerStatus string

const (
	PlayerAvailable PlayerStatus = "available"
	PlayerDrafted   PlayerStatus = "drafted"
	PlayerMine      PlayerStatus = "mine"
)

type BoardStatus string

const (
	BoardActive   BoardStatus = "active"
	BoardArchived BoardStatus = "archived"
)

type PickKind string

const (
	PickMine  PickKind = "mine"
	PickOther PickKind = "other"
)
