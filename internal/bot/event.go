// Package bot routes inbound chat events to use cases and renders replies.
// It owns all conversation state; the transport only moves messages.
package bot

import "github.com/bigcommunity/taskbot/internal/format"

// Event is one inbound update, flattened by the transport.
// Fields are ordered to minimize memory padding.
type Event struct {
	Command  string // command name without the slash, "" for plain text
	Args     string // raw text after the command
	Text     string // message text for non-command messages
	Callback string // callback data, "" for regular messages
	PhotoID  string // file id of the largest attached photo, if any
	UserName string // sender's display name
	ChatID   int64
	UserID   int64
	ThreadID int64 // forum topic id, valid only when IsTopic
	IsTopic  bool
}

// Reply is one outbound message. A Toast is a short transient notice
// acknowledging a button press instead of (or besides) a message.
type Reply struct {
	Text     string
	Toast    string
	PhotoID  string // send as photo with Text as caption
	Keyboard format.Keyboard
	Alert    bool // show the toast as a blocking alert
}

func textReply(text string) Reply {
	return Reply{Text: text}
}

func keyboardReply(text string, kb format.Keyboard) Reply {
	return Reply{Text: text, Keyboard: kb}
}

func toastReply(text string, alert bool) Reply {
	return Reply{Toast: text, Alert: alert}
}
