package style

import (
	stderrors "errors"
	"fmt"

	"github.com/shohamc1/mxbmm/pkg/errors"
)

// Kind is the severity of a status line.
type Kind int

const (
	KindInfo Kind = iota
	KindSuccess
	KindWarning
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindWarning:
		return "warning"
	case KindError:
		return "error"
	default:
		return "info"
	}
}

// Status renders a one-line message prefixed by a severity mark.
func Status(kind Kind, msg string) string {
	switch kind {
	case KindSuccess:
		return fmt.Sprintf("%s %s", SuccessStyle.Render(successMark), msg)
	case KindWarning:
		return fmt.Sprintf("%s %s", WarningStyle.Render(warningMark), WarningStyle.Render(msg))
	case KindError:
		return fmt.Sprintf("%s %s", ErrorStyle.Render(errorMark), ErrorStyle.Render(msg))
	default:
		return fmt.Sprintf("%s %s", InfoStyle.Render(infoMark), msg)
	}
}

func Success(msg string) string { return Status(KindSuccess, msg) }
func Warning(msg string) string { return Status(KindWarning, msg) }
func Info(msg string) string    { return Status(KindInfo, msg) }

// Error renders err for the user. Coded errors show their message without
// the code prefix; the code goes to the log instead.
func Error(err error) string {
	var mxErr *errors.MxbmmError
	if stderrors.As(err, &mxErr) {
		msg := mxErr.Message
		if mxErr.Wrapped != nil {
			msg = fmt.Sprintf("%s: %v", msg, mxErr.Wrapped)
		}
		return Status(KindError, msg)
	}
	return Status(KindError, err.Error())
}
