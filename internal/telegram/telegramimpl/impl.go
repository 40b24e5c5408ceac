package telegramimpl

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/orgball2608/insta-feed-ingestor/internal/telegram"
	"github.com/orgball2608/insta-feed-ingestor/pkg/config"
	"github.com/orgball2608/insta-feed-ingestor/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

// TelegramImpl notifies the configured user. Without a token it is a no-op.
type TelegramImpl struct {
	tgBot  *tgbotapi.BotAPI
	user   int64
	logger logger.Logger
}

func New(opts Opts) (*TelegramImpl, error) {
	log := opts.Logger.WithComponent("Telegram")
	tg := &TelegramImpl{
		user:   opts.Config.Telegram.User,
		logger: log,
	}

	if opts.Config.Telegram.Token == "" {
		log.Info("Telegram token not set, notifications disabled")
		return tg, nil
	}

	tgBot, err := tgbotapi.NewBotAPI(opts.Config.Telegram.Token)
	if err != nil {
		log.Error("Error creating bot", "error", err)
		return nil, err
	}
	tg.tgBot = tgBot

	return tg, nil
}

var _ telegram.Client = (*TelegramImpl)(nil)

func (tg *TelegramImpl) Enabled() bool {
	return tg.tgBot != nil && tg.user != 0
}

// SendMessageToUser sends a text message to the configured user
func (tg *TelegramImpl) SendMessageToUser(message string) error {
	if !tg.Enabled() {
		tg.logger.Debug("Skipping notification", "reason", "disabled")
		return nil
	}

	msg := tgbotapi.NewMessage(tg.user, message)
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	msg.DisableWebPagePreview = true

	if _, err := tg.tgBot.Send(msg); err != nil {
		tg.logger.Error("Error sending message to user", "userID", tg.user, "error", err)
		return fmt.Errorf("failed to send message: %w", err)
	}

	tg.logger.Info("Message sent to user", "userID", tg.user)
	return nil
}
