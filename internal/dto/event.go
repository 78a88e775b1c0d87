package dto

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Event is the decoded form of an inbound Telegram update. Updates are
// classified once here so the controller can dispatch with an exhaustive
// type switch instead of re-matching payload strings in every handler.
type Event interface {
	isEvent()
}

type StartCommand struct {
	ChatID    int64
	FirstName string
}

type ProductsCommand struct {
	ChatID int64
}

type CartCommand struct {
	ChatID int64
	UserID int64
}

// ViewProductsEvent is the "View Products" / "Back" / "Continue Shopping"
// button; it always re-renders the product list in place.
type ViewProductsEvent struct {
	CallbackID string
	ChatID     int64
	MessageID  int
}

type ViewProductEvent struct {
	CallbackID string
	ChatID     int64
	MessageID  int
	RawID      string
}

type AddProductEvent struct {
	CallbackID string
	ChatID     int64
	UserID     int64
	RawID      string
}

type CheckoutEvent struct {
	CallbackID string
	ChatID     int64
	UserID     int64
	MessageID  int
}

type FreeTextEvent struct {
	ChatID int64
}

func (StartCommand) isEvent()      {}
func (ProductsCommand) isEvent()   {}
func (CartCommand) isEvent()       {}
func (ViewProductsEvent) isEvent() {}
func (ViewProductEvent) isEvent()  {}
func (AddProductEvent) isEvent()   {}
func (CheckoutEvent) isEvent()     {}
func (FreeTextEvent) isEvent()     {}

// DecodeUpdate maps a raw update onto the event variants above. The second
// return value is false for updates the bot does not react to at all
// (edited messages, channel posts, unknown callback payloads).
func DecodeUpdate(update tgbotapi.Update) (Event, bool) {
	if update.CallbackQuery != nil {
		return decodeCallback(update.CallbackQuery)
	}

	if update.Message == nil {
		return nil, false
	}

	msg := update.Message
	if msg.IsCommand() {
		switch msg.Command() {
		case "start":
			return StartCommand{ChatID: msg.Chat.ID, FirstName: msg.From.FirstName}, true
		case "products":
			return ProductsCommand{ChatID: msg.Chat.ID}, true
		case "cart":
			return CartCommand{ChatID: msg.Chat.ID, UserID: msg.From.ID}, true
		}
		// Unknown commands get no reply; only non-command text falls back.
		return nil, false
	}

	if msg.Text != "" {
		return FreeTextEvent{ChatID: msg.Chat.ID}, true
	}

	return nil, false
}

func decodeCallback(query *tgbotapi.CallbackQuery) (Event, bool) {
	if query.Message == nil {
		return nil, false
	}

	chatID := query.Message.Chat.ID
	messageID := query.Message.MessageID

	switch {
	case query.Data == "view_products":
		return ViewProductsEvent{CallbackID: query.ID, ChatID: chatID, MessageID: messageID}, true
	case query.Data == "checkout":
		return CheckoutEvent{CallbackID: query.ID, ChatID: chatID, UserID: query.From.ID, MessageID: messageID}, true
	case strings.HasPrefix(query.Data, "view_"):
		return ViewProductEvent{
			CallbackID: query.ID,
			ChatID:     chatID,
			MessageID:  messageID,
			RawID:      strings.TrimPrefix(query.Data, "view_"),
		}, true
	case strings.HasPrefix(query.Data, "add_"):
		return AddProductEvent{
			CallbackID: query.ID,
			ChatID:     chatID,
			UserID:     query.From.ID,
			RawID:      strings.TrimPrefix(query.Data, "add_"),
		}, true
	}

	return nil, false
}
