package ports

import "github.com/bnema/tri-protocol-cli/internal/domain"

type ExchangeRenderer interface {
	RenderExchange(protocol domain.Protocol, title string, body []string) string
	RenderNotice(protocol domain.Protocol, message string) string
	RenderFailure(protocol domain.Protocol, err error) string
}
