package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandeepkv93/cartd/internal/commands"
	"github.com/sandeepkv93/cartd/internal/grocery"
	"github.com/sandeepkv93/cartd/internal/recipes"
	"github.com/sandeepkv93/cartd/internal/views"
)

func noMatch(ref string) error {
	return &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no item matches %q", ref)}
}

// Handlers binds every command to the session state.
func (a *App) Handlers(ctx context.Context) commands.Handlers {
	return commands.Handlers{
		Add: func(args commands.AddArgs) (commands.Result, error) {
			it, ok := a.List.Add(ctx, grocery.NewItem{
				Name:     args.Name,
				Quantity: args.Quantity,
				Unit:     args.Unit,
				Price:    args.Price,
				Category: args.Category,
				Notes:    args.Notes,
			})
			if !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "item name is empty"}
			}
			return commands.Result{Message: fmt.Sprintf("added %s %s %s (%s)", views.Quantity(it.Quantity), it.Unit, it.Name, it.Category.Label())}, nil
		},
		Remove: func(args commands.RefArgs) (commands.Result, error) {
			it, ok := a.List.Find(args.Ref)
			if !ok {
				return commands.Result{}, noMatch(args.Ref)
			}
			a.List.Remove(ctx, it.ID)
			return commands.Result{Message: "removed " + it.Name}, nil
		},
		Done: func(args commands.RefArgs) (commands.Result, error) {
			it, ok := a.List.Find(args.Ref)
			if !ok {
				return commands.Result{}, noMatch(args.Ref)
			}
			a.List.ToggleCompletion(ctx, it.ID)
			state := "done"
			if it.Completed {
				state = "not done"
			}
			return commands.Result{Message: fmt.Sprintf("marked %s %s", it.Name, state)}, nil
		},
		Set: func(args commands.SetArgs) (commands.Result, error) {
			it, ok := a.List.Find(args.Ref)
			if !ok {
				return commands.Result{}, noMatch(args.Ref)
			}
			a.List.Update(ctx, it.ID, args.Patch)
			updated, _ := a.List.Find(it.ID)
			return commands.Result{Message: "updated " + updated.Name}, nil
		},
		Budget: func(args commands.BudgetArgs) (commands.Result, error) {
			a.List.SetBudget(ctx, args.Amount)
			suffix := ""
			if args.Default {
				a.SetDefaultBudget(ctx, args.Amount)
				suffix = " (default)"
			}
			if args.Amount == nil {
				return commands.Result{Message: "budget cleared" + suffix}, nil
			}
			return commands.Result{Message: "budget set to " + views.Money(*args.Amount) + suffix}, nil
		},
		Clear: func(args commands.ClearArgs) (commands.Result, error) {
			if args.Scope == commands.ClearAll {
				a.List.ClearAll(ctx)
				return commands.Result{Message: "list cleared"}, nil
			}
			n := a.List.ClearCompleted(ctx)
			return commands.Result{Message: fmt.Sprintf("moved %d purchased item(s) to history", n)}, nil
		},
		Suggest: func(args commands.SuggestArgs) (commands.Result, error) {
			return a.suggest(ctx, args)
		},
		Recipe: func(args commands.RecipeArgs) (commands.Result, error) {
			return a.recipe(ctx, args)
		},
	}
}

func (a *App) suggest(ctx context.Context, args commands.SuggestArgs) (commands.Result, error) {
	suggestions := a.List.Suggestions()
	if len(suggestions) == 0 {
		return commands.Result{Message: "no suggestions yet"}, nil
	}
	switch {
	case args.AcceptAll:
		for _, s := range suggestions {
			a.List.AddSuggestion(ctx, s)
		}
		return commands.Result{Message: fmt.Sprintf("added %d suggestion(s)", len(suggestions))}, nil
	case args.Accept > 0:
		if args.Accept > len(suggestions) {
			return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("only %d suggestion(s) available", len(suggestions))}
		}
		it, _ := a.List.AddSuggestion(ctx, suggestions[args.Accept-1])
		return commands.Result{Message: "added " + it.Name}, nil
	}
	lines := make([]string, 0, len(suggestions))
	for i, s := range suggestions {
		lines = append(lines, fmt.Sprintf("%d. %s (%s %s)", i+1, s.Name, views.Quantity(s.Quantity), s.Unit))
	}
	return commands.Result{Message: strings.Join(lines, "\n")}, nil
}

func (a *App) recipe(ctx context.Context, args commands.RecipeArgs) (commands.Result, error) {
	switch args.Action {
	case commands.RecipeSearch:
		return commands.Result{Message: formatResults(a.Recipes.Search(ctx, args.Query))}, nil
	case commands.RecipeRandom:
		return commands.Result{Message: formatResults(a.Recipes.Random(ctx, args.Count))}, nil
	case commands.RecipeShow:
		r, ok := a.Recipes.GetByID(ctx, args.ID)
		if !ok {
			return commands.Result{}, recipeMissing(args.ID)
		}
		return commands.Result{Message: views.RecipeMarkdown(r)}, nil
	case commands.RecipeAdd:
		r, added, ok := a.AddRecipe(ctx, args.ID)
		if !ok {
			return commands.Result{}, recipeMissing(args.ID)
		}
		return commands.Result{Message: fmt.Sprintf("added %d ingredient(s) from %s", len(added), r.Name)}, nil
	default:
		return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown recipe action %q", args.Action)}
	}
}

func recipeMissing(id string) error {
	return &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("recipe %q not found", id)}
}

func formatResults(results []recipes.SearchResult) string {
	if len(results) == 0 {
		return "no recipes found"
	}
	lines := make([]string, 0, len(results))
	for _, r := range results {
		lines = append(lines, fmt.Sprintf("%-8s %s (%d min)", r.ID, r.Title, r.ReadyInMinutes))
	}
	return strings.Join(lines, "\n")
}

// Summary is a one-line state report for the CLI.
func (a *App) Summary() string {
	list := a.List.List()
	done, pending := grocery.CountCompleted(list.Items)
	out := fmt.Sprintf("%s: %d item(s), %d done, %d pending, total %s", list.Name, len(list.Items), done, pending, views.Money(list.TotalCost))
	if remaining, ok := list.RemainingBudget(); ok {
		out += fmt.Sprintf(", budget %s (%s left)", views.Money(*list.Budget), views.Money(remaining))
	}
	return out
}

