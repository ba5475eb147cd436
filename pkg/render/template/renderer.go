package template

import (
	"io"
)

// TemplateRenderer renders small string templates such as artifact name
// patterns. Implementations are safe for sequential reuse.
type TemplateRenderer interface {
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	GlobalContext(data any) error
}
