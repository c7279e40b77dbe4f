package logout

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/FACorreiaa/go-dashboard/internal/app/components/button"
)

const DefaultAction = "/auth/logout"

// Button is a self-contained logout control. Posting the form is the only
// side effect; clearing the session and navigating away belong to the
// endpoint behind action.
func Button(action string) templ.Component {
	if action == "" {
		action = DefaultAction
	}

	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		url := templ.EscapeString(string(templ.URL(action)))
		if _, err := io.WriteString(w, `<form id="logout-form" method="post" action="`+url+`" hx-post="`+url+`">`); err != nil {
			return err
		}
		err := button.Button(button.Props{
			ID:      "logout-button",
			Label:   "Logout",
			Type:    button.TypeSubmit,
			Variant: button.VariantOutline,
		}).Render(ctx, w)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, `</form>`)
		return err
	})
}
