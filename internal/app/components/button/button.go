package button

import (
	"context"
	"io"
	"sort"
	"strings"

	twmerge "github.com/Oudwins/tailwind-merge-go"
	"github.com/a-h/templ"
)

type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
	VariantOutline     Variant = "outline"
	VariantGhost       Variant = "ghost"
	VariantLink        Variant = "link"
)

type Size string

const (
	SizeDefault Size = "default"
	SizeSm      Size = "sm"
	SizeLg      Size = "lg"
)

type Type string

const (
	TypeButton Type = "button"
	TypeSubmit Type = "submit"
)

type Props struct {
	ID         string
	Label      string
	Variant    Variant
	Size       Size
	Type       Type
	Href       string
	Class      string
	Attributes templ.Attributes
}

const baseClass = "inline-flex items-center justify-center gap-2 whitespace-nowrap rounded-md text-sm font-medium transition-colors focus-visible:outline-none focus-visible:ring-2 disabled:pointer-events-none disabled:opacity-50"

func (p Props) classes() string {
	return twmerge.Merge(baseClass, variantClass(p.Variant), sizeClass(p.Size), p.Class)
}

func variantClass(v Variant) string {
	switch v {
	case VariantDestructive:
		return "bg-destructive text-destructive-foreground hover:bg-destructive/90"
	case VariantOutline:
		return "border border-input bg-background hover:bg-accent hover:text-accent-foreground"
	case VariantGhost:
		return "hover:bg-accent hover:text-accent-foreground"
	case VariantLink:
		return "text-primary underline-offset-4 hover:underline"
	default:
		return "bg-primary text-primary-foreground hover:bg-primary/90"
	}
}

func sizeClass(s Size) string {
	switch s {
	case SizeSm:
		return "h-9 rounded-md px-3"
	case SizeLg:
		return "h-10 rounded-md px-8"
	default:
		return "h-10 px-4 py-2"
	}
}

// Button renders an <a> when Href is set and a <button> otherwise. The label
// is escaped; children passed through templ.WithChildren follow it.
func Button(props ...Props) templ.Component {
	var p Props
	if len(props) > 0 {
		p = props[0]
	}

	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		children := templ.GetChildren(ctx)
		ctx = templ.ClearChildren(ctx)

		var sb strings.Builder
		if p.Href != "" {
			sb.WriteString(`<a href="`)
			sb.WriteString(templ.EscapeString(string(templ.URL(p.Href))))
			sb.WriteString(`"`)
		} else {
			buttonType := p.Type
			if buttonType == "" {
				buttonType = TypeButton
			}
			sb.WriteString(`<button type="`)
			sb.WriteString(templ.EscapeString(string(buttonType)))
			sb.WriteString(`"`)
		}
		if p.ID != "" {
			writeAttr(&sb, "id", p.ID)
		}
		writeAttr(&sb, "class", p.classes())
		writeAttributes(&sb, p.Attributes)
		sb.WriteString(">")
		sb.WriteString(templ.EscapeString(p.Label))

		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
		if err := children.Render(ctx, w); err != nil {
			return err
		}

		closing := "</button>"
		if p.Href != "" {
			closing = "</a>"
		}
		_, err := io.WriteString(w, closing)
		return err
	})
}

func writeAttr(sb *strings.Builder, name, value string) {
	sb.WriteString(" ")
	sb.WriteString(name)
	sb.WriteString(`="`)
	sb.WriteString(templ.EscapeString(value))
	sb.WriteString(`"`)
}

// writeAttributes emits attributes in key order so output is stable.
func writeAttributes(sb *strings.Builder, attrs templ.Attributes) {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		switch v := attrs[k].(type) {
		case string:
			writeAttr(sb, k, v)
		case bool:
			if v {
				sb.WriteString(" ")
				sb.WriteString(templ.EscapeString(k))
			}
		}
	}
}
