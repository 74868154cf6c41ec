package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/AlecAivazis/survey/v2"

	"github.com/goliatone/go-fieldtree/pkg/fields"
	"github.com/goliatone/go-fieldtree/pkg/fieldtree"
	"github.com/goliatone/go-fieldtree/pkg/formdoc"
	"github.com/goliatone/go-fieldtree/pkg/render/outline"
)

func main() {
	source := flag.String("source", "form.yaml", "form document path (YAML or JSON)")
	path := flag.String("path", "", "fully qualified field name to resolve (dotted)")
	output := flag.String("output", "", "output file for the HTML outline (stdout if empty)")
	title := flag.String("title", "", "outline heading")
	interactive := flag.Bool("interactive", false, "walk the tree with prompts")
	flag.Parse()

	ctx := context.Background()

	doc, err := formdoc.Load(*source)
	if err != nil {
		log.Fatalf("load document: %v", err)
	}
	parser := formdoc.NewParser(formdoc.Options{Factory: fields.NewRegistry()})
	form, err := parser.Parse(ctx, doc)
	if err != nil {
		log.Fatalf("parse document: %v", err)
	}

	switch {
	case *path != "":
		resolvePath(form, *path)
	case *interactive:
		if err := walk(form); err != nil {
			log.Fatalf("walk tree: %v", err)
		}
	default:
		renderOutline(ctx, form, *title, *output)
	}
}

func resolvePath(form *fieldtree.Form, path string) {
	field, err := form.Field(path)
	if err != nil {
		log.Fatalf("resolve %q: %v", path, err)
	}
	if field == nil {
		log.Fatalf("no field at %q", path)
	}
	printField(field)
}

func renderOutline(ctx context.Context, form *fieldtree.Form, title, output string) {
	renderer, err := outline.New(outline.WithTitle(title))
	if err != nil {
		log.Fatalf("configure renderer: %v", err)
	}
	html, err := renderer.Render(ctx, form)
	if err != nil {
		log.Fatalf("render outline: %v", err)
	}
	if output != "" {
		if err := os.WriteFile(output, html, 0o644); err != nil {
			log.Fatalf("write output: %v", err)
		}
		fmt.Printf("Outline written to %s\n", output)
		return
	}
	fmt.Println(string(html))
}

func printField(field *fieldtree.Field) {
	name, _ := field.PartialName()
	fieldType := "unknown"
	if value, ok := field.FieldType(); ok {
		fieldType = value
	}
	fmt.Printf("name: %s\ntype: %s\nflags: %d (readonly=%t required=%t noexport=%t)\n",
		name, fieldType, field.Flags(), field.IsReadOnly(), field.IsRequired(), field.IsNoExport())
}

const quitOption = "[quit]"

// walk prompts level by level, descending into whichever field the user
// picks until they quit or reach a level with no field children.
func walk(form *fieldtree.Form) error {
	roots, err := form.Fields()
	if err != nil {
		return err
	}
	current, err := pick("Root fields", roots)
	if err != nil || current == nil {
		return err
	}
	for {
		printField(current)
		kids, err := current.Kids()
		if err != nil {
			return err
		}
		var children []*fieldtree.Field
		widgets := 0
		for i := 0; kids != nil && i < kids.Len(); i++ {
			kid, _ := kids.At(i)
			if child, ok := kid.Field(); ok {
				children = append(children, child)
				continue
			}
			widgets++
		}
		if widgets > 0 {
			fmt.Printf("widgets: %d\n", widgets)
		}
		if len(children) == 0 {
			return nil
		}
		current, err = pick("Descend into", children)
		if err != nil || current == nil {
			return err
		}
	}
}

func pick(message string, candidates []*fieldtree.Field) (*fieldtree.Field, error) {
	if len(candidates) == 0 {
		return nil, nil
	}
	options := make([]string, 0, len(candidates)+1)
	byOption := make(map[string]*fieldtree.Field, len(candidates))
	for i, field := range candidates {
		name, _ := field.PartialName()
		if name == "" {
			name = fmt.Sprintf("(unnamed %d)", i)
		}
		options = append(options, name)
		byOption[name] = field
	}
	options = append(options, quitOption)

	var choice string
	prompt := &survey.Select{Message: message, Options: options}
	if err := survey.AskOne(prompt, &choice); err != nil {
		return nil, err
	}
	if choice == quitOption {
		return nil, nil
	}
	return byOption[choice], nil
}
