package domain

import (
	"time"

	"github.com/google/uuid"
)

type (
	UserId     = uuid.UUID
	ContactId  = uuid.UUID
	MemberId   = uuid.UUID
	PostId     = uuid.UUID
	CategoryId = uuid.UUID
	TopicId    = uuid.UUID
	ReplyId    = uuid.UUID

	Username     = string
	Slug         = string
	PasswordHash = string
)

// Timestamp converts t to what postgres stores: UTC at microsecond
// precision. It rounds up, so the result is never before t.
func Timestamp(t time.Time) time.Time {
	t = t.UTC()
	r := t.Truncate(time.Microsecond)
	if r.Before(t) {
		r = r.Add(time.Microsecond)
	}
	return r
}
