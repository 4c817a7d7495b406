package domain

import "time"

type Task struct {
	Id          TaskId      `json:"id"`
	Title       TaskTitle   `json:"title"`
	Description Description `json:"description"`
	UserId      UserId      `json:"user_id"`
	BoardId     BoardId     `json:"board_id"`
	Status      TaskStatus  `json:"status"`
	CreatedAt   time.Time   `json:"creation_time"`
}

type TaskCreationData struct {
	Title       TaskTitle
	Description Description
	UserId      UserId
	BoardId     BoardId
}
