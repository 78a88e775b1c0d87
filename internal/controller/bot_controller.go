package controller

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"

	"github.com/varvara1412/telegram-bot/internal/domain"
	"github.com/varvara1412/telegram-bot/internal/dto"
	"github.com/varvara1412/telegram-bot/internal/service"
	"github.com/varvara1412/telegram-bot/pkg/errs"
)

// TelegramClient is the slice of *tgbotapi.BotAPI the controller needs.
// Tests substitute a recording fake.
type TelegramClient interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type BotController struct {
	client  TelegramClient
	service service.ShopService
}

func CreateBotController(client TelegramClient, service service.ShopService) *BotController {
	return &BotController{client: client, service: service}
}

// Dispatch routes a decoded event to its handler. The event set is closed,
// so the switch is exhaustive.
func (c *BotController) Dispatch(ctx context.Context, event dto.Event) error {
	switch e := event.(type) {
	case dto.StartCommand:
		return c.Start(ctx, e)
	case dto.ProductsCommand:
		return c.ShowProductsMessage(ctx, e)
	case dto.CartCommand:
		return c.ViewCart(ctx, e)
	case dto.ViewProductsEvent:
		return c.ShowProducts(ctx, e)
	case dto.ViewProductEvent:
		return c.ProductDetail(ctx, e)
	case dto.AddProductEvent:
		return c.AddToCart(ctx, e)
	case dto.CheckoutEvent:
		return c.Checkout(ctx, e)
	case dto.FreeTextEvent:
		return c.Fallback(ctx, e)
	}
	return errs.ErrEventNotSupported
}

func (c *BotController) Start(ctx context.Context, event dto.StartCommand) error {
	text := fmt.Sprintf(
		"🐾 Welcome %s to ModernCatToys\\!\n\n"+
			"Browse our collection of high\\-tech cat toys\\!\n"+
			"Use /products to see our collection\n"+
			"Use /cart to view your shopping cart",
		escape(event.FirstName),
	)

	msg := tgbotapi.NewMessage(event.ChatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	msg.ReplyMarkup = mainMenuKeyboard()

	return c.send(msg, "Start")
}

// ShowProducts re-renders the product list in place of the message that
// carried the pressed button.
func (c *BotController) ShowProducts(ctx context.Context, event dto.ViewProductsEvent) error {
	c.answer(event.CallbackID, "")

	products, err := c.service.GetProducts(ctx)
	if err != nil {
		return err
	}

	edit := tgbotapi.NewEditMessageTextAndMarkup(event.ChatID, event.MessageID, productListText(), productListKeyboard(products))
	edit.ParseMode = tgbotapi.ModeMarkdownV2

	return c.request(edit, "ShowProducts")
}

// ShowProductsMessage is the /products command variant: there is no prior
// list message to edit, so a fresh one is sent.
func (c *BotController) ShowProductsMessage(ctx context.Context, event dto.ProductsCommand) error {
	products, err := c.service.GetProducts(ctx)
	if err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(event.ChatID, productListText())
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	msg.ReplyMarkup = productListKeyboard(products)

	return c.send(msg, "ShowProductsMessage")
}

func (c *BotController) ProductDetail(ctx context.Context, event dto.ViewProductEvent) error {
	c.answer(event.CallbackID, "")

	product, err := c.service.GetProductDetail(ctx, event.RawID)
	if err != nil {
		if errors.Is(err, errs.ErrInvalidProductID) || errors.Is(err, errs.ErrProductNotFound) {
			edit := tgbotapi.NewEditMessageText(event.ChatID, event.MessageID, "❌ Product not found.")
			return c.request(edit, "ProductDetail")
		}
		return err
	}

	caption := fmt.Sprintf(
		"*%s*\n\n%s\nPrice: $%.2f\n[Product Link](%s)",
		escape(product.Name), escape(product.Description), product.Price, product.Link,
	)

	photo := tgbotapi.NewPhoto(event.ChatID, tgbotapi.FileURL(product.Image))
	photo.Caption = caption
	photo.ParseMode = tgbotapi.ModeMarkdownV2
	photo.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🛒 Add to Cart", fmt.Sprintf("add_%d", product.ID)),
			tgbotapi.NewInlineKeyboardButtonData("🔙 Back", "view_products"),
		),
	)

	if err := c.send(photo, "ProductDetail"); err != nil {
		return err
	}

	// The product list the button lived on is stale now; drop it.
	return c.request(tgbotapi.NewDeleteMessage(event.ChatID, event.MessageID), "ProductDetail")
}

func (c *BotController) AddToCart(ctx context.Context, event dto.AddProductEvent) error {
	c.answer(event.CallbackID, "")

	product, err := c.service.AddProductToCart(ctx, event.UserID, event.RawID)
	if err != nil {
		if errors.Is(err, errs.ErrInvalidProductID) || errors.Is(err, errs.ErrProductNotFound) {
			c.answer(event.CallbackID, "Invalid product.")
			return nil
		}
		return err
	}

	c.answer(event.CallbackID, fmt.Sprintf("✅ Added %s to cart!", escape(product.Name)))
	return nil
}

func (c *BotController) ViewCart(ctx context.Context, event dto.CartCommand) error {
	view, err := c.service.GetCartView(ctx, event.UserID)
	if err != nil {
		return err
	}

	if view.Empty {
		return c.send(tgbotapi.NewMessage(event.ChatID, "Your cart is empty!"), "ViewCart")
	}

	var sb strings.Builder
	sb.WriteString("🛒 *Your Cart* 🛒\n\n")
	for _, line := range view.Lines {
		sb.WriteString(fmt.Sprintf("%s x%d - $%.2f\n", escape(line.Name), line.Quantity, line.Subtotal))
	}
	sb.WriteString(fmt.Sprintf("\n*Total: $%.2f*", view.Total))

	msg := tgbotapi.NewMessage(event.ChatID, sb.String())
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Checkout", "checkout"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Continue Shopping", "view_products"),
		),
	)

	return c.send(msg, "ViewCart")
}

func (c *BotController) Checkout(ctx context.Context, event dto.CheckoutEvent) error {
	c.answer(event.CallbackID, "")

	cleared, err := c.service.Checkout(ctx, event.UserID)
	if err != nil {
		return err
	}

	text := "✅ Thank you for your purchase! Your cart is now empty."
	if !cleared {
		text = "Your cart is already empty."
	}

	return c.request(tgbotapi.NewEditMessageText(event.ChatID, event.MessageID, text), "Checkout")
}

func (c *BotController) Fallback(ctx context.Context, event dto.FreeTextEvent) error {
	msg := tgbotapi.NewMessage(event.ChatID, "Please use the menu buttons to navigate!")
	msg.ReplyMarkup = mainMenuKeyboard()

	return c.send(msg, "Fallback")
}

func (c *BotController) send(msg tgbotapi.Chattable, component string) error {
	_, err := c.client.Send(msg)
	if err != nil {
		log.Error().Err(err).Str("component", component).Msg("")
	}
	return err
}

func (c *BotController) request(msg tgbotapi.Chattable, component string) error {
	_, err := c.client.Request(msg)
	if err != nil {
		log.Error().Err(err).Str("component", component).Msg("")
	}
	return err
}

// answer acknowledges a callback query. A failed acknowledgment only costs
// the loading spinner on the user's button, so it is logged and ignored.
func (c *BotController) answer(callbackID, text string) {
	_, err := c.client.Request(tgbotapi.NewCallback(callbackID, text))
	if err != nil {
		log.Error().Err(err).Str("component", "answer").Msg("")
	}
}

func mainMenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("View Products", "view_products"),
		),
	)
}

func productListText() string {
	return "🏷 *Our Products* 🏷\nSelect a product to view details:"
}

func productListKeyboard(products []domain.Product) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(products))
	for _, product := range products {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("%s - $%.2f", escape(product.Name), product.Price),
				fmt.Sprintf("view_%d", product.ID),
			),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func escape(text string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdownV2, text)
}
