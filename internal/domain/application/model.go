package application

import "context"

// Application is the web form payload relayed to the admin channel.
type Application struct {
	Name    string
	Discord string
	Email   string
	Phone   string
}

// Notifier posts an application to the club's admin chat channel.
type Notifier interface {
	PostApplication(ctx context.Context, item Application) error
}

// Forwarder hands an application to the bot process over the network.
type Forwarder interface {
	Forward(ctx context.Context, item Application, idempotencyKey string) (ForwardResult, error)
}

// ForwardResult is the bot's answer when it could be reached at all.
type ForwardResult struct {
	StatusCode int
	Success    bool
	Message    string
}
