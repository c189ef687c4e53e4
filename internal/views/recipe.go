package views

import (
	"fmt"
	"strings"

	"github.com/sandeepkv93/cartd/internal/recipes"
)

// RecipeMarkdown lays a recipe out as markdown for glamour or plain output.
func RecipeMarkdown(r recipes.Recipe) string {
	var b strings.Builder
	b.WriteString("# " + r.Name + "\n\n")
	meta := []string{fmt.Sprintf("serves %d", r.Servings)}
	if r.ReadyInMinutes > 0 {
		meta = append(meta, fmt.Sprintf("%d min", r.ReadyInMinutes))
	}
	meta = append(meta, "id `"+r.ID+"`")
	b.WriteString("_" + strings.Join(meta, " · ") + "_\n\n")

	b.WriteString("## Ingredients\n\n")
	for _, ing := range r.Ingredients {
		b.WriteString(fmt.Sprintf("- %s %s %s\n", Quantity(ing.Quantity), ing.Unit, ing.Name))
	}
	if strings.TrimSpace(r.Instructions) != "" {
		b.WriteString("\n## Instructions\n\n")
		b.WriteString(strings.TrimSpace(r.Instructions) + "\n")
	}
	if r.SourceURL != "" {
		b.WriteString("\n[source](" + r.SourceURL + ")\n")
	}
	return b.String()
}
