package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime"
	"strings"
	"time"

	"gitcards/pkg/logger"
)

type ErrorLevel int

const (
	LevelFatal ErrorLevel = iota + 1
	LevelError
	LevelWarning
	LevelInfo
)

func (l ErrorLevel) String() string {
	return [...]string{"", "Fatal", "Error", "Warning", "Info"}[l]
}

// * Reference codes used across the card pipeline
const (
	RefInvalidUsername = "INVALID_USERNAME"
	RefUserNotFound    = "USER_NOT_FOUND"
	RefGitHubAPI       = "GITHUB_API_ERROR"
	RefUnknownCardType = "UNKNOWN_CARD_TYPE"
)

type ApplicationError struct {
	Reference   string
	Title       string
	Detail      string
	RootCause   error
	Level       ErrorLevel
	Status      int
	OccurredAt  time.Time
	CallerTrace []string
}

func (e *ApplicationError) Error() string {
	var b strings.Builder

	fmt.Fprintf(&b, "[%s][%s] %s", e.OccurredAt.Format(time.RFC3339), e.Reference, e.Title)

	if e.Detail != "" {
		fmt.Fprintf(&b, " - %s", e.Detail)
	}

	if e.RootCause != nil {
		fmt.Fprintf(&b, " (caused by: %v)", e.RootCause)
	}

	return b.String()
}

func (e *ApplicationError) Unwrap() error {
	return e.RootCause
}

func New(ref, title, detail string, cause error, level ErrorLevel) *ApplicationError {
	return &ApplicationError{
		Reference:   ref,
		Title:       title,
		Detail:      detail,
		RootCause:   cause,
		Level:       level,
		Status:      statusForReference(ref),
		OccurredAt:  time.Now().UTC(),
		CallerTrace: captureCallerInfo(3),
	}
}

// * InvalidUsername fails fast before any network call is made
func InvalidUsername(username string) *ApplicationError {
	return New(
		RefInvalidUsername,
		"Invalid username",
		fmt.Sprintf("Username %q must be a non-empty string", username),
		nil,
		LevelWarning,
	)
}

// * UserNotFound is the fatal not-found condition from the profile endpoint
func UserNotFound(username string) *ApplicationError {
	return New(
		RefUserNotFound,
		fmt.Sprintf("User %q not found", username),
		fmt.Sprintf("The GitHub account %q does not exist", username),
		nil,
		LevelError,
	)
}

// * Upstream wraps an unexpected GitHub status code on a fatal fetch
func Upstream(status int) *ApplicationError {
	return New(
		RefGitHubAPI,
		fmt.Sprintf("GitHub API error (%d)", status),
		fmt.Sprintf("GitHub API returned unexpected status %d", status),
		nil,
		LevelFatal,
	)
}

func statusForReference(ref string) int {
	switch ref {
	case RefInvalidUsername, RefUnknownCardType:
		return http.StatusBadRequest
	case RefUserNotFound:
		return http.StatusNotFound
	case RefGitHubAPI:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func captureCallerInfo(skip int) []string {
	pc := make([]uintptr, 10)
	n := runtime.Callers(skip, pc)
	if n == 0 {
		return nil
	}

	pc = pc[:n]
	frames := runtime.CallersFrames(pc)

	var trace []string
	for {
		frame, more := frames.Next()
		trace = append(trace, fmt.Sprintf("%s:%d %s", frame.File, frame.Line, frame.Function))
		if !more {
			break
		}
	}

	return trace
}

type HTTPErrorResponse struct {
	Status    int       `json:"status"`
	ErrorRef  string    `json:"error_reference,omitempty"`
	Title     string    `json:"title"`
	Detail    string    `json:"detail,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// * HTTPStatus resolves the response code for any error surfaced to a handler
func HTTPStatus(err error) int {
	var appErr *ApplicationError
	if errors.As(err, &appErr) && appErr.Status != 0 {
		return appErr.Status
	}
	return http.StatusInternalServerError
}

// * Message returns the human-readable text shown to users (e.g. inside an error SVG)
func Message(err error) string {
	var appErr *ApplicationError
	if errors.As(err, &appErr) {
		return appErr.Title
	}
	return "Internal Server Error"
}

func WriteHTTPError(w http.ResponseWriter, err error) {
	var appErr *ApplicationError

	resp := HTTPErrorResponse{
		Status:    http.StatusInternalServerError,
		Title:     "An unexpected error occurred",
		Timestamp: time.Now().UTC(),
	}

	if errors.As(err, &appErr) {
		resp.Status = appErr.Status
		resp.ErrorRef = appErr.Reference
		resp.Title = appErr.Title
		resp.Detail = appErr.Detail
	} else {
		resp.Detail = err.Error()
	}

	logger.Error("%v", err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.Status)
	json.NewEncoder(w).Encode(resp)
}
