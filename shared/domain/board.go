package domain

import (
	"time"
)

type Board struct {
	Id          BoardId     `json:"id"`
	Name        BoardName   `json:"name"`
	Description Description `json:"description"`
	TeamId      TeamId      `json:"team_id"`
	Status      BoardStatus `json:"status"`
	CreatedAt   time.Time   `json:"creation_time"`
	EndTime     *time.Time  `json:"end_time"`
}

// to iterate thru layers: handler -> service -> storage
type BoardCreationData struct {
	Name        BoardName
	Description Description
	TeamId      TeamId
}

// BoardMetadata is the list view of an open board.
type BoardMetadata struct {
	Id   BoardId   `json:"id"`
	Name BoardName `json:"name"`
}
