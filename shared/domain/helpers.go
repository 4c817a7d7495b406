package domain

import (
	"fmt"
	"time"
)

// for debug
func (b *Board) String() string {
	end := "-"
	if b.EndTime != nil {
		end = b.EndTime.Format(time.StampMilli)
	}
	return fmt.Sprintf("[id:%d, name:%s, team:%d, status:%s, created:%s, ended:%s]", b.Id, b.Name, b.TeamId, b.Status, b.CreatedAt.Format(time.StampMilli), end)
}

func (t *Task) String() string {
	return fmt.Sprintf("[id:%d, title:%s, board:%d, user:%d, status:%s]", t.Id, t.Title, t.BoardId, t.UserId, t.Status)
}
