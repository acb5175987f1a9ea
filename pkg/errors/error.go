package errors

import (
	"bytes"
	"fmt"
	"runtime"
	"text/template"
	"time"
)

type Code string

func (c Code) New(msg string) *Error {
	return &Error{
		Code:      c,
		Message:   msg,
		Details:   make(map[string]interface{}),
		Stack:     getStack(),
		Timestamp: time.Now(),
	}
}

func WithPrefix(prefix string) func() Code {
	counter := int64(0)
	return func() Code {
		counter++
		return Code(fmt.Sprintf("%s_%04d", prefix, counter))
	}
}

// Error is a coded error with a templated message. Sentinel values are
// declared once per package; WithDetail and WithCause return copies, so
// sentinels are never mutated and stay safe to share between goroutines.
type Error struct {
	Code      Code                   `json:"code"`
	Message   string                 `json:"message"`
	Details   map[string]interface{} `json:"details,omitempty"`
	Cause     error                  `json:"-"`
	Stack     string                 `json:"-"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *Error) Error() string {
	t, err := template.New("error").Parse(e.Message)
	if err != nil {
		return e.formatSimpleMessage()
	}

	var output bytes.Buffer
	if err = t.Execute(&output, e.Details); err != nil {
		return e.formatSimpleMessage()
	}

	msg := output.String()
	if len(msg) == 0 {
		return ""
	}

	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, msg, e.Cause)
	}

	return fmt.Sprintf("%s: %s", e.Code, msg)
}

func (e *Error) formatSimpleMessage() string {
	if len(e.Message) == 0 {
		return ""
	}

	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %s)", e.Code, e.Message, e.Cause.Error())
	}

	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) WithCause(err error) *Error {
	clone := e.clone()
	clone.Cause = err
	return clone
}

func (e *Error) WithDetail(key string, value interface{}) *Error {
	clone := e.clone()
	clone.Details[key] = value
	return clone
}

// Is matches by Code, so a copy carrying details still matches its
// sentinel under the standard errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func (e *Error) clone() *Error {
	details := make(map[string]interface{}, len(e.Details)+1)
	for k, v := range e.Details {
		details[k] = v
	}
	return &Error{
		Code:      e.Code,
		Message:   e.Message,
		Details:   details,
		Cause:     e.Cause,
		Stack:     getStack(),
		Timestamp: time.Now(),
	}
}

func getStack() string {
	buf := make([]byte, 4096)
	n := runtime.Stack(buf, false)
	return string(buf[:n])
}
