package intelligence

import (
	"context"
	"fmt"

	"meetbot/models"
)

// Action is one of the three operations the language model can select.
// Exactly one variant is decoded per turn, at this boundary.
type Action interface {
	isAction()
}

// BookAction books a new meeting.
type BookAction struct {
	Email  string
	Date   string
	Time   string
	Reason string
}

// ListAction lists the user's scheduled events.
type ListAction struct {
	Email string
}

// CancelAction cancels a scheduled meeting.
type CancelAction struct {
	Email string
	Date  string
	Time  string
}

func (BookAction) isAction()   {}
func (ListAction) isAction()   {}
func (CancelAction) isAction() {}

// Classifier turns a chat turn into either a plain-text reply or an Action.
// today is the current date as YYYY-MM-DD, used for relative-date guidance.
type Classifier interface {
	Classify(ctx context.Context, history []models.Message, message, today string) (string, Action, error)
}

// decodeAction maps a function call name and argument mapping onto a typed
// Action variant. Missing arguments decode as empty strings; the orchestrator
// resolves or rejects them.
func decodeAction(name string, args map[string]any) (Action, error) {
	switch name {
	case "book_event":
		return BookAction{
			Email:  strArg(args, "email"),
			Date:   strArg(args, "date"),
			Time:   strArg(args, "time"),
			Reason: strArg(args, "reason"),
		}, nil
	case "list_events":
		return ListAction{Email: strArg(args, "email")}, nil
	case "cancel_event":
		return CancelAction{
			Email: strArg(args, "email"),
			Date:  strArg(args, "date"),
			Time:  strArg(args, "time"),
		}, nil
	default:
		return nil, fmt.Errorf("unknown function %q", name)
	}
}

func strArg(args map[string]any, key string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}
