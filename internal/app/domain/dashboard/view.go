package dashboard

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/FACorreiaa/go-dashboard/internal/app/components/button"
	"github.com/FACorreiaa/go-dashboard/internal/app/models"
)

const (
	GreetingUnauthenticated = "Willkommen Unbekannter"
	GreetingAuthenticated   = "Willkommen, "
	RolesPrefix             = "Deine Rollen: "
	LoginLabel              = "Login"
	DefaultLoginPath        = "/login"
)

// ViewConfig carries the collaborators the dashboard places but does not own.
type ViewConfig struct {
	LoginPath string
	Logout    templ.Component
}

// panel is the layout shared by both branches.
type panel struct {
	state    models.ViewState
	greeting templ.Component
	action   templ.Component // rendered inside the heading, may be nil
	detail   templ.Component // rendered below the heading, may be nil
}

// Dashboard renders the page body for session. Output depends only on its
// arguments.
func Dashboard(session *models.Session, cfg ViewConfig) templ.Component {
	if session == nil {
		return renderPanel(panel{
			state:    models.ViewUnauthenticated,
			greeting: text(GreetingUnauthenticated),
			action:   loginControl(cfg.LoginPath),
		})
	}

	return renderPanel(panel{
		state:    models.ViewAuthenticated,
		greeting: join(text(GreetingAuthenticated), span("dashboard-username", session.Username)),
		detail:   join(roles(session.Role), cfg.Logout),
	})
}

func renderPanel(p panel) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section id="dashboard" class="p-8" data-view-state="`+string(p.state)+`">`+
			`<h1 id="dashboard-greeting" class="mb-4 text-3xl font-semibold">`); err != nil {
			return err
		}
		for _, c := range []templ.Component{p.greeting, p.action} {
			if c == nil {
				continue
			}
			if err := c.Render(ctx, w); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</h1>`); err != nil {
			return err
		}
		if p.detail != nil {
			if err := p.detail.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</section>`)
		return err
	})
}

func loginControl(path string) templ.Component {
	if path == "" {
		path = DefaultLoginPath
	}
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		ctx = templ.WithChildren(ctx, loginIcon)
		return button.Button(button.Props{
			ID:      "login-link",
			Label:   LoginLabel,
			Href:    path,
			Variant: button.VariantGhost,
			Class:   "ml-4 text-inherit",
		}).Render(ctx, w)
	})
}

func roles(role string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<p id="dashboard-roles" class="mb-4">`+templ.EscapeString(RolesPrefix)); err != nil {
			return err
		}
		if err := span("dashboard-role", role).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</p>`)
		return err
	})
}

func text(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(s))
		return err
	})
}

func span(id, value string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<span id="`+id+`">`+templ.EscapeString(value)+`</span>`)
		return err
	})
}

func join(components ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, c := range components {
			if c == nil {
				continue
			}
			if err := c.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}

var loginIcon = templ.Raw(`<svg class="h-4 w-4" aria-hidden="true" viewBox="0 0 24 24" fill="currentColor"><path d="M11 7 9.6 8.4l2.6 2.6H2v2h10.2l-2.6 2.6L11 17l5-5-5-5zm9 12h-8v2h8c1.1 0 2-.9 2-2V5c0-1.1-.9-2-2-2h-8v2h8v14z"/></svg>`)
