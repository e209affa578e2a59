// Package telegram adapts the Telegram Bot API to bot events and replies.
package telegram

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/bigcommunity/taskbot/internal/bot"
	"github.com/bigcommunity/taskbot/internal/domain"
	"github.com/bigcommunity/taskbot/internal/format"
)

const (
	logCategory = "telegram"
	pollTimeout = 30 // seconds, long-poll
)

// Handler processes one flattened event.
type Handler interface {
	Handle(ctx context.Context, ev bot.Event) []bot.Reply
}

// Gateway long-polls Telegram for updates, flattens them into events and
// renders the handler's replies back through the API.
// Fields are ordered to minimize memory padding.
type Gateway struct {
	api     *tgbotapi.BotAPI
	handler Handler
	log     domain.Logger
	offset  int64
}

// New creates a Gateway authenticated with the given token.
func New(token string, handler Handler, log domain.Logger) (*Gateway, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("authenticate bot: %w", err)
	}
	return &Gateway{api: api, handler: handler, log: log}, nil
}

// Username returns the authenticated bot's username.
func (g *Gateway) Username() string {
	return g.api.Self.UserName
}

// Run polls for updates until the context is cancelled. Errors on a single
// update are logged and the update is dropped.
func (g *Gateway) Run(ctx context.Context) error {
	g.log.Info(logCategory, "polling started as @"+g.api.Self.UserName)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		updates, err := g.fetch()
		if err != nil {
			g.log.Error(logCategory, "get updates: "+err.Error())
			continue
		}
		for _, u := range updates {
			g.offset = u.UpdateID + 1
			g.dispatch(ctx, u)
		}
	}
}

// update mirrors the fragment of a Telegram update the bot consumes. The
// typed structs of the client library predate forum topics, so the raw
// response is decoded here to reach message_thread_id.
type update struct {
	Message       *message       `json:"message"`
	CallbackQuery *callbackQuery `json:"callback_query"`
	UpdateID      int64          `json:"update_id"`
}

type message struct {
	From            *user       `json:"from"`
	Text            string      `json:"text"`
	Caption         string      `json:"caption"`
	Photo           []photoSize `json:"photo"`
	Chat            chatRef     `json:"chat"`
	MessageThreadID int64       `json:"message_thread_id"`
	IsTopicMessage  bool        `json:"is_topic_message"`
}

type callbackQuery struct {
	ID      string   `json:"id"`
	Data    string   `json:"data"`
	From    *user    `json:"from"`
	Message *message `json:"message"`
}

type user struct {
	FirstName string `json:"first_name"`
	UserName  string `json:"username"`
	ID        int64  `json:"id"`
}

type photoSize struct {
	FileID string `json:"file_id"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type chatRef struct {
	ID int64 `json:"id"`
}

func (g *Gateway) fetch() ([]update, error) {
	params := tgbotapi.Params{}
	params.AddNonZero64("offset", g.offset)
	params.AddNonZero("timeout", pollTimeout)

	resp, err := g.api.MakeRequest("getUpdates", params)
	if err != nil {
		return nil, err
	}
	var updates []update
	if err := json.Unmarshal(resp.Result, &updates); err != nil {
		return nil, fmt.Errorf("decode updates: %w", err)
	}
	return updates, nil
}

func (g *Gateway) dispatch(ctx context.Context, u update) {
	switch {
	case u.CallbackQuery != nil:
		g.dispatchCallback(ctx, u.CallbackQuery)
	case u.Message != nil:
		g.dispatchMessage(ctx, u.Message)
	}
}

func (g *Gateway) dispatchMessage(ctx context.Context, m *message) {
	if m.From == nil {
		return
	}
	ev := bot.Event{
		Text:     m.Text,
		PhotoID:  largestPhoto(m.Photo),
		UserName: displayName(m.From),
		ChatID:   m.Chat.ID,
		UserID:   m.From.ID,
		ThreadID: m.MessageThreadID,
		IsTopic:  m.IsTopicMessage,
	}
	if ev.PhotoID != "" && ev.Text == "" {
		ev.Text = m.Caption
	}
	if cmd, args, ok := parseCommand(m.Text, g.api.Self.UserName); ok {
		ev.Command = cmd
		ev.Args = args
		ev.Text = ""
	}

	for _, reply := range g.handler.Handle(ctx, ev) {
		g.sendReply(ev, "", reply)
	}
}

func (g *Gateway) dispatchCallback(ctx context.Context, q *callbackQuery) {
	if q.From == nil || q.Message == nil {
		return
	}
	ev := bot.Event{
		Callback: q.Data,
		UserName: displayName(q.From),
		ChatID:   q.Message.Chat.ID,
		UserID:   q.From.ID,
		ThreadID: q.Message.MessageThreadID,
		IsTopic:  q.Message.IsTopicMessage,
	}

	replies := g.handler.Handle(ctx, ev)
	answered := false
	for _, reply := range replies {
		if reply.Toast != "" {
			answered = true
		}
		g.sendReply(ev, q.ID, reply)
	}
	// Every callback must be answered or the client keeps its spinner.
	if !answered {
		g.answerCallback(q.ID, "", false)
	}
}

func (g *Gateway) sendReply(ev bot.Event, callbackID string, reply bot.Reply) {
	if reply.Toast != "" {
		g.answerCallback(callbackID, reply.Toast, reply.Alert)
	}
	if reply.Text == "" {
		return
	}

	method := "sendMessage"
	params := tgbotapi.Params{}
	params.AddNonZero64("chat_id", ev.ChatID)
	params.AddNonZero64("message_thread_id", ev.ThreadID)
	params["parse_mode"] = tgbotapi.ModeMarkdown
	if reply.PhotoID != "" {
		method = "sendPhoto"
		params["photo"] = reply.PhotoID
		params["caption"] = reply.Text
	} else {
		params["text"] = reply.Text
	}
	if len(reply.Keyboard) > 0 {
		markup, err := keyboardJSON(reply.Keyboard)
		if err != nil {
			g.log.Error(logCategory, "marshal keyboard: "+err.Error())
			return
		}
		params["reply_markup"] = markup
	}

	if _, err := g.api.MakeRequest(method, params); err != nil {
		g.log.Error(logCategory, method+": "+err.Error())
	}
}

func (g *Gateway) answerCallback(callbackID, text string, alert bool) {
	if callbackID == "" {
		return
	}
	cb := tgbotapi.CallbackConfig{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       alert,
	}
	if _, err := g.api.Request(cb); err != nil {
		g.log.Error(logCategory, "answer callback: "+err.Error())
	}
}

// parseCommand splits "/cmd@bot args" into name and arguments. The bot-name
// suffix is only honored when it matches self.
func parseCommand(text, self string) (cmd, args string, ok bool) {
	if !strings.HasPrefix(text, "/") {
		return "", "", false
	}
	head, rest, _ := strings.Cut(text[1:], " ")
	if head == "" {
		return "", "", false
	}
	if name, suffix, found := strings.Cut(head, "@"); found {
		if !strings.EqualFold(suffix, self) {
			return "", "", false
		}
		head = name
	}
	return head, strings.TrimSpace(rest), true
}

// largestPhoto picks the file id of the biggest size variant.
func largestPhoto(photos []photoSize) string {
	best := ""
	bestArea := 0
	for _, p := range photos {
		if area := p.Width * p.Height; area >= bestArea {
			best = p.FileID
			bestArea = area
		}
	}
	return best
}

func displayName(u *user) string {
	if u.FirstName != "" {
		return u.FirstName
	}
	return u.UserName
}

// keyboardJSON renders an inline keyboard as the wire markup object.
func keyboardJSON(kb format.Keyboard) (string, error) {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(kb))
	for _, row := range kb {
		buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, b := range row {
			buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(b.Label, b.Data))
		}
		rows = append(rows, buttons)
	}
	data, err := json.Marshal(tgbotapi.InlineKeyboardMarkup{InlineKeyboard: rows})
	if err != nil {
		return "", err
	}
	return string(data), nil
}
