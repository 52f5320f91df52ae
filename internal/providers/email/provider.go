package email

import "context"

type Provider interface {
	Send(ctx context.Context, to []string, subject string, textBody string) error
}

// NoOpProvider is wired when SMTP is not configured; the mailto flow is the
// only delivery path then.
type NoOpProvider struct{}

func (p *NoOpProvider) Send(ctx context.Context, to []string, subject string, textBody string) error {
	return nil
}
