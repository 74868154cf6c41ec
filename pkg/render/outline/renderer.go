// Package outline renders a field tree as a nested HTML outline. Partial
// names are user-controlled document content, so they pass through a strict
// sanitizer before interpolation.
package outline

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/flosch/pongo2/v6"
	theme "github.com/goliatone/go-theme"
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-fieldtree/pkg/fieldtree"
)

// Semantic chrome classes applied to the generated markup.
const (
	ClassOutline = "fieldtree-outline"
	ClassHeader  = "fieldtree-header"
	ClassList    = "fieldtree-list"
	ClassNode    = "fieldtree-node"
	ClassWidget  = "fieldtree-widget"
	ClassName    = "fieldtree-name"
	ClassType    = "fieldtree-type"
	ClassFlags   = "fieldtree-flags"
)

const defaultTemplate = `<div class="{{ root_class }}"{% if style %} style="{{ style }}"{% endif %}>
{% if title %}<h2 class="{{ header_class }}">{{ title }}</h2>{% endif %}
{{ outline|safe }}
</div>
`

// Option configures the renderer before construction.
type Option func(*config)

type config struct {
	template string
	theme    *theme.RendererConfig
	title    string
}

// WithTemplate overrides the page shell template. The outline markup is
// exposed to the template as the pre-rendered "outline" variable.
func WithTemplate(tpl string) Option {
	return func(cfg *config) {
		if strings.TrimSpace(tpl) != "" {
			cfg.template = tpl
		}
	}
}

// WithTheme supplies a go-theme renderer configuration whose CSS variables
// are emitted on the outline root element.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(c *config) {
		c.theme = cfg
	}
}

// WithTitle sets the heading rendered above the outline.
func WithTitle(title string) Option {
	return func(cfg *config) {
		cfg.title = strings.TrimSpace(title)
	}
}

// Renderer produces the HTML outline for a form's field tree.
type Renderer struct {
	tmpl   *pongo2.Template
	theme  *theme.RendererConfig
	title  string
	policy *bluemonday.Policy
}

// New constructs a Renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{template: defaultTemplate}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	tmpl, err := pongo2.FromString(cfg.template)
	if err != nil {
		return nil, fmt.Errorf("outline renderer: parse template: %w", err)
	}

	return &Renderer{
		tmpl:   tmpl,
		theme:  cfg.theme,
		title:  cfg.title,
		policy: bluemonday.StrictPolicy(),
	}, nil
}

// Name identifies the renderer.
func (r *Renderer) Name() string {
	return "outline"
}

// ContentType reports the media type of the rendered output.
func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render walks the form's root fields and produces the outline document.
func (r *Renderer) Render(ctx context.Context, form *fieldtree.Form) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r == nil || r.tmpl == nil {
		return nil, errors.New("outline renderer: renderer is not configured")
	}

	roots, err := form.Fields()
	if err != nil {
		return nil, fmt.Errorf("outline renderer: enumerate root fields: %w", err)
	}

	var markup strings.Builder
	fmt.Fprintf(&markup, "<ul class=%q>\n", ClassList)
	for _, root := range roots {
		if err := r.writeField(&markup, root, 1); err != nil {
			return nil, err
		}
	}
	markup.WriteString("</ul>\n")

	result, err := r.tmpl.Execute(pongo2.Context{
		"root_class":   ClassOutline,
		"header_class": ClassHeader,
		"style":        r.styleAttr(),
		"title":        r.title,
		"outline":      markup.String(),
	})
	if err != nil {
		return nil, fmt.Errorf("outline renderer: execute template: %w", err)
	}
	return []byte(result), nil
}

func (r *Renderer) writeField(out *strings.Builder, field *fieldtree.Field, depth int) error {
	indent := strings.Repeat("  ", depth)
	name := "(unnamed)"
	if value, ok := field.PartialName(); ok {
		name = r.policy.Sanitize(value)
	}
	fieldType := "unknown"
	if value, ok := field.FieldType(); ok {
		fieldType = r.policy.Sanitize(value)
	}

	fmt.Fprintf(out, "%s<li class=%q><span class=%q>%s</span> <span class=%q>%s</span>%s\n",
		indent, ClassNode, ClassName, name, ClassType, fieldType, flagBadges(field))

	kids, err := field.Kids()
	if err != nil {
		return fmt.Errorf("outline renderer: kids of %q: %w", name, err)
	}
	if kids != nil && kids.Len() > 0 {
		fmt.Fprintf(out, "%s<ul class=%q>\n", indent, ClassList)
		for i := 0; i < kids.Len(); i++ {
			kid, _ := kids.At(i)
			if child, ok := kid.Field(); ok {
				if err := r.writeField(out, child, depth+1); err != nil {
					return err
				}
				continue
			}
			fmt.Fprintf(out, "%s  <li class=%q>widget</li>\n", indent, ClassWidget)
		}
		fmt.Fprintf(out, "%s</ul>\n", indent)
	}
	fmt.Fprintf(out, "%s</li>\n", indent)
	return nil
}

func flagBadges(field *fieldtree.Field) string {
	var badges []string
	if field.IsRequired() {
		badges = append(badges, "required")
	}
	if field.IsReadOnly() {
		badges = append(badges, "readonly")
	}
	if field.IsNoExport() {
		badges = append(badges, "noexport")
	}
	if len(badges) == 0 {
		return ""
	}
	return fmt.Sprintf(" <span class=%q>%s</span>", ClassFlags, strings.Join(badges, " "))
}

// styleAttr flattens the theme's CSS variables into an inline style so the
// outline can be dropped into a page without a stylesheet link.
func (r *Renderer) styleAttr() string {
	if r.theme == nil || len(r.theme.CSSVars) == 0 {
		return ""
	}
	names := make([]string, 0, len(r.theme.CSSVars))
	for name := range r.theme.CSSVars {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+r.theme.CSSVars[name])
	}
	return strings.Join(parts, "; ")
}
