package domain

import "time"

type Team struct {
	Id          TeamId      `json:"id"`
	Name        TeamName    `json:"name"`
	Description Description `json:"description"`
	Admin       UserId      `json:"admin"`
	CreatedAt   time.Time   `json:"creation_time"`
}

type TeamCreationData struct {
	Name        TeamName
	Description Description
	Admin       UserId
}

type TeamPatch struct {
	Name        *TeamName
	Description *Description
	Admin       *UserId
}

// TeamSummary is what a user sees about the teams they belong to.
type TeamSummary struct {
	Id          TeamId      `json:"id"`
	Name        TeamName    `json:"name"`
	Description Description `json:"description"`
	CreatedAt   time.Time   `json:"creation_time"`
}

// Members is the membership set of one team, kept in insertion order.
type Members []UserId

func (m Members) Contains(id UserId) bool {
	for _, u := range m {
		if u == id {
			return true
		}
	}
	return false
}
