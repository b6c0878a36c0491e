package exchange

import (
	"fmt"
	"strings"

	"github.com/bnema/tri-protocol-cli/internal/domain"
	"github.com/bnema/tri-protocol-cli/internal/ports"
)

type Renderer struct {
	styles styles
}

var _ ports.ExchangeRenderer = Renderer{}

func NewRenderer() Renderer {
	return Renderer{styles: newStyles()}
}

// RenderExchange prints a titled block; the last body line is the elapsed time.
func (r Renderer) RenderExchange(protocol domain.Protocol, title string, body []string) string {
	lines := make([]string, 0, len(body)+1)
	lines = append(lines, r.styles.title.Render(fmt.Sprintf("=== %s (%s) ===", strings.ToUpper(title), protocol.Label)))
	for i, line := range body {
		style := r.styles.detail
		if i == len(body)-1 {
			style = r.styles.elapsed
		}
		lines = append(lines, style.Render(line))
	}
	return strings.Join(lines, "\n")
}

func (r Renderer) RenderNotice(protocol domain.Protocol, message string) string {
	return r.styles.notice.Render(fmt.Sprintf("%s (%s)", message, protocol.Name))
}

func (r Renderer) RenderFailure(protocol domain.Protocol, err error) string {
	return r.styles.warning.Render(fmt.Sprintf("%s (%s): %v", domain.KindOf(err), protocol.Name, err))
}
