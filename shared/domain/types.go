package domain

type (
	UserId  = int64
	TeamId  = int64
	BoardId = int64
	TaskId  = int64

	UserName    = string
	DisplayName = string
	TeamName    = string
	BoardName   = string
	TaskTitle   = string
	Description = string
)

type BoardStatus string

const (
	BoardOpen   BoardStatus = "OPEN"
	BoardClosed BoardStatus = "CLOSED"
)

type TaskStatus string

const (
	TaskOpen       TaskStatus = "OPEN"
	TaskInProgress TaskStatus = "IN_PROGRESS"
	TaskComplete   TaskStatus = "COMPLETE"
)

// Valid reports whether s is one of the known task statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskOpen, TaskInProgress, TaskComplete:
		return true
	}
	return false
}
