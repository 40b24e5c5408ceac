package telegram

//go:generate go run go.uber.org/mock/mockgen -source=telegram.go -destination=mocks/mock.go
type Client interface {
	// SendMessageToUser sends a MarkdownV2 message to the configured user
	SendMessageToUser(message string) error

	// Enabled reports whether a bot token was configured
	Enabled() bool
}
