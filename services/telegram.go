// services/telegram.go
package services

import (
	"encoding/json"
	"fmt"

	"gopkg.in/telebot.v3"
)

// Sender delivers a text message to a user through the messaging transport.
type Sender interface {
	SendMessage(userID int64, text string) error
}

// InvoicePrice is one labeled amount on a Telegram invoice.
type InvoicePrice struct {
	Label  string `json:"label"`
	Amount int    `json:"amount"`
}

// InvoiceLinker creates payment links for the premium upgrade.
type InvoiceLinker interface {
	CreateInvoiceLink(title, description, payload string, prices []InvoicePrice) (string, error)
}

// TelebotAdapter implements Sender and InvoiceLinker on gopkg.in/telebot.v3.
type TelebotAdapter struct {
	bot *telebot.Bot
}

func NewTelebotAdapter(b *telebot.Bot) *TelebotAdapter {
	return &TelebotAdapter{bot: b}
}

// SendMessage sends a text message to the user's private chat.
func (a *TelebotAdapter) SendMessage(userID int64, text string) error {
	recipient := &telebot.User{ID: userID}
	_, err := a.bot.Send(recipient, text)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDelivery, err)
	}
	return nil
}

// CreateInvoiceLink creates a Telegram Stars invoice link. Stars invoices
// carry the XTR currency and no provider token.
func (a *TelebotAdapter) CreateInvoiceLink(title, description, payload string, prices []InvoicePrice) (string, error) {
	params := map[string]interface{}{
		"title":       title,
		"description": description,
		"payload":     payload,
		"currency":    "XTR",
		"prices":      prices,
	}
	data, err := a.bot.Raw("createInvoiceLink", params)
	if err != nil {
		return "", err
	}

	var resp struct {
		Result string `json:"result"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return "", fmt.Errorf("parse createInvoiceLink response: %w", err)
	}
	return resp.Result, nil
}
