package pages

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/FACorreiaa/go-dashboard/internal/app/models"
)

const htmxSrc = "https://unpkg.com/htmx.org@2.0.4"

// LayoutPage wraps content in the full HTML document with the navbar.
func LayoutPage(data models.LayoutTempl) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var sb strings.Builder
		sb.WriteString(`<!DOCTYPE html><html lang="de"><head><meta charset="utf-8">`)
		sb.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		sb.WriteString(`<title>`)
		sb.WriteString(templ.EscapeString(data.Title))
		sb.WriteString(`</title><script src="` + htmxSrc + `"></script></head>`)
		sb.WriteString(`<body hx-boost="true"><nav id="main-nav"><ul>`)
		for _, item := range data.Nav.Items {
			sb.WriteString(`<li><a href="`)
			sb.WriteString(templ.EscapeString(string(templ.URL(item.URL))))
			sb.WriteString(`"`)
			if item.Name == data.ActiveNav {
				sb.WriteString(` aria-current="page"`)
			}
			sb.WriteString(`>`)
			sb.WriteString(templ.EscapeString(item.Name))
			sb.WriteString(`</a></li>`)
		}
		sb.WriteString(`</ul></nav><main id="content">`)
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}

		if data.Content != nil {
			if err := data.Content.Render(ctx, w); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `</main></body></html>`)
		return err
	})
}
