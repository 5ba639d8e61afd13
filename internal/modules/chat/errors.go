package chat

import "errors"

var (
	ErrEmptyContent      = errors.New("message content cannot be empty")
	ErrCannotMessageSelf = errors.New("cannot send message to yourself")
	ErrRecipientNotFound = errors.New("recipient not found")
)
