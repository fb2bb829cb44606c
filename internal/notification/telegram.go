package notification

import (
	"context"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/ParkBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier шлёт события по броням в операционный чат.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" || chatID == 0 {
		logger.Warn("telegram bot token or chat id is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, chatID: chatID, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingCreated(ctx context.Context, b *domain.Booking) {
	text := fmt.Sprintf(
		"*Новое бронирование парковки*\n\n"+"Номер авто: %s\n"+"Клиент: %s\n"+"Период: %s — %s\n"+"Цена: £%s",
		b.CarPlate, b.CustomerName,
		b.ParkingFrom.Format(time.DateOnly), b.ParkingTo.Format(time.DateOnly),
		formatGBP(b.PricePence),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyBookingAmended(ctx context.Context, b *domain.Booking, priceChangePence int64) {
	text := fmt.Sprintf(
		"*Бронирование изменено*\n\n"+"Номер авто: %s\n"+"Период: %s — %s\n"+"Новая цена: £%s\n"+"Разница: £%s",
		b.CarPlate,
		b.ParkingFrom.Format(time.DateOnly), b.ParkingTo.Format(time.DateOnly),
		formatGBP(b.PricePence),
		formatGBP(priceChangePence),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyBookingCancelled(ctx context.Context, b *domain.Booking) {
	text := fmt.Sprintf(
		"*Бронирование отменено*\n\n"+"Номер авто: %s\n"+"Период: %s — %s",
		b.CarPlate,
		b.ParkingFrom.Format(time.DateOnly), b.ParkingTo.Format(time.DateOnly),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}

func formatGBP(pence int64) string {
	sign := ""
	if pence < 0 {
		sign = "-"
		pence = -pence
	}
	return fmt.Sprintf("%s%d.%02d", sign, pence/100, pence%100)
}
