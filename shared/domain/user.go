package domain

import "time"

type User struct {
	Id          UserId      `json:"id"`
	Name        UserName    `json:"name"`
	DisplayName DisplayName `json:"display_name"`
	CreatedAt   time.Time   `json:"creation_time"`
}

// to iterate thru layers: handler -> service -> storage
type UserCreationData struct {
	Name        UserName
	DisplayName DisplayName
}

// UserPatch holds the fields present in an update request; nil means "not sent".
// Name is only carried so that the service can reject it. NameSent covers a
// name key sent as null.
type UserPatch struct {
	Name        *UserName
	NameSent    bool
	DisplayName *DisplayName
}

// UserRef is the short form used when listing team members.
type UserRef struct {
	Id          UserId      `json:"id"`
	Name        UserName    `json:"name"`
	DisplayName DisplayName `json:"display_name"`
}
