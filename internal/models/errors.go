package models

import (
	"fmt"
	"net/http"
)

// ErrorKind is the closed set of failure classifications the API can produce.
// Every error that crosses a service boundary carries exactly one kind.
type ErrorKind string

const (
	KindInvalidSortColumn ErrorKind = "INVALID_SORT_COLUMN"
	KindInvalidOrder      ErrorKind = "INVALID_ORDER"
	KindMalformedInput    ErrorKind = "MALFORMED_INPUT"
	KindMissingField      ErrorKind = "MISSING_FIELD"
	KindInvalidID         ErrorKind = "INVALID_IDENTIFIER"
	KindTopicNotFound     ErrorKind = "TOPIC_NOT_FOUND"
	KindArticleNotFound   ErrorKind = "ARTICLE_NOT_FOUND"
	KindCommentNotFound   ErrorKind = "COMMENT_NOT_FOUND"
	KindUserNotFound      ErrorKind = "USER_NOT_FOUND"
	KindInternal          ErrorKind = "INTERNAL"
)

// Response messages. Clients depend on exact wording, so same-kind failures
// in different operations keep their own constants instead of sharing one.
const (
	MsgBadRequest        = "Bad Request"
	MsgInvalidSortQuery  = "Invalid sort by query"
	MsgInvalidOrderQuery = "Invalid order query"
	MsgTopicNotFound     = "Topic Not Found"
	MsgArticleIDNotFound = "article_id not found"
	MsgArticleNotFound   = "Article Not Found"
	MsgNotFound          = "Not Found"
	MsgCommentNotFound   = "comment not found"
	MsgUserNotFound      = "user not found"
	MsgMethodNotAllowed  = "Method Not Allowed"
	MsgInternalError     = "Internal Server Error"
)

// ArticleWithIDNotFound is the PATCH-specific article wording.
func ArticleWithIDNotFound(id uint) string {
	return fmt.Sprintf("Article with id: %d not found", id)
}

// AppError is a tagged failure: a fixed kind plus the client-facing message
// and, for input validation failures, the offending field.
type AppError struct {
	Kind    ErrorKind
	Message string
	Field   string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Status maps the kind to its HTTP status code. The mapping is total: an
// unknown kind falls through to 500 rather than leaking.
func (e *AppError) Status() int {
	switch e.Kind {
	case KindInvalidSortColumn, KindInvalidOrder, KindMalformedInput, KindMissingField, KindInvalidID:
		return http.StatusBadRequest
	case KindTopicNotFound, KindArticleNotFound, KindCommentNotFound, KindUserNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Predefined error constructors

func NewSortColumnError(column string) *AppError {
	return &AppError{Kind: KindInvalidSortColumn, Message: MsgInvalidSortQuery, Field: column}
}

func NewOrderError(order string) *AppError {
	return &AppError{Kind: KindInvalidOrder, Message: MsgInvalidOrderQuery, Field: order}
}

func NewMalformedInputError(field string) *AppError {
	return &AppError{Kind: KindMalformedInput, Message: MsgBadRequest, Field: field}
}

func NewMissingFieldError(field string) *AppError {
	return &AppError{Kind: KindMissingField, Message: MsgBadRequest, Field: field}
}

func NewInvalidIDError(field string) *AppError {
	return &AppError{Kind: KindInvalidID, Message: MsgBadRequest, Field: field}
}

func NewTopicNotFoundError() *AppError {
	return &AppError{Kind: KindTopicNotFound, Message: MsgTopicNotFound}
}

// NewArticleNotFoundError takes the message because the wording differs per
// operation (see the Msg constants above).
func NewArticleNotFoundError(message string) *AppError {
	return &AppError{Kind: KindArticleNotFound, Message: message}
}

func NewCommentNotFoundError() *AppError {
	return &AppError{Kind: KindCommentNotFound, Message: MsgCommentNotFound}
}

func NewUserNotFoundError() *AppError {
	return &AppError{Kind: KindUserNotFound, Message: MsgUserNotFound}
}

func NewInternalError(err error) *AppError {
	return &AppError{Kind: KindInternal, Message: MsgInternalError, Err: err}
}
