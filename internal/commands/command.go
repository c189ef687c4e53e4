package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sandeepkv93/cartd/internal/model"
)

type Type string

const (
	TypeAdd     Type = "add"
	TypeRemove  Type = "rm"
	TypeDone    Type = "done"
	TypeSet     Type = "set"
	TypeBudget  Type = "budget"
	TypeClear   Type = "clear"
	TypeSuggest Type = "suggest"
	TypeRecipe  Type = "recipe"
)

var aliases = map[string]Type{
	"remove": TypeRemove,
	"delete": TypeRemove,
	"toggle": TypeDone,
	"edit":   TypeSet,
}

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func invalid(format string, args ...any) error {
	return &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

type AddArgs struct {
	Name     string
	Quantity float64
	Unit     string
	Price    *float64
	Category model.Category
	Notes    string
}

// RefArgs addresses one item by id or 1-based position.
type RefArgs struct {
	Ref string
}

type SetArgs struct {
	Ref   string
	Patch model.ItemPatch
}

// BudgetArgs sets or clears the list budget. Default also stores it as the
// budget new lists start with.
type BudgetArgs struct {
	Amount  *float64
	Default bool
}

type ClearScope string

const (
	ClearCompleted ClearScope = "completed"
	ClearAll       ClearScope = "all"
)

type ClearArgs struct {
	Scope ClearScope
}

type SuggestArgs struct {
	Accept    int
	AcceptAll bool
}

type RecipeAction string

const (
	RecipeSearch RecipeAction = "search"
	RecipeShow   RecipeAction = "show"
	RecipeAdd    RecipeAction = "add"
	RecipeRandom RecipeAction = "random"
)

type RecipeArgs struct {
	Action RecipeAction
	Query  string
	ID     string
	Count  int
}

type Command struct {
	Type    Type
	Raw     string
	Add     *AddArgs
	Remove  *RefArgs
	Done    *RefArgs
	Set     *SetArgs
	Budget  *BudgetArgs
	Clear   *ClearArgs
	Suggest *SuggestArgs
	Recipe  *RecipeArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts, err := splitArgs(raw)
	if err != nil {
		return Command{}, err
	}
	head := strings.ToLower(parts[0])
	args := parts[1:]
	typ := Type(head)
	if alias, ok := aliases[head]; ok {
		typ = alias
	}

	switch typ {
	case TypeAdd:
		return parseAdd(input, args)
	case TypeRemove, TypeDone:
		return parseRef(input, typ, args)
	case TypeSet:
		return parseSet(input, args)
	case TypeBudget:
		return parseBudget(input, args)
	case TypeClear:
		return parseClear(input, args)
	case TypeSuggest:
		return parseSuggest(input, args)
	case TypeRecipe:
		return parseRecipe(input, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseAdd(raw string, args []string) (Command, error) {
	fields, rest := splitFields(args)
	name := strings.TrimSpace(strings.Join(rest, " "))
	if name == "" {
		return Command{}, invalid("add requires an item name")
	}
	out := AddArgs{Name: name}
	for _, f := range fields {
		switch f.key {
		case "qty":
			q, err := parseNumber(f.key, f.value)
			if err != nil {
				return Command{}, err
			}
			out.Quantity = q
		case "unit":
			out.Unit = f.value
		case "price":
			p, err := parseNumber(f.key, f.value)
			if err != nil {
				return Command{}, err
			}
			out.Price = &p
		case "cat":
			out.Category = model.ParseCategory(f.value)
		case "note":
			out.Notes = f.value
		case "name":
			return Command{}, invalid("add takes the name as plain words")
		}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &out}, nil
}

func parseRef(raw string, typ Type, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, invalid("%s requires exactly one item reference", typ)
	}
	ref := &RefArgs{Ref: args[0]}
	cmd := Command{Type: typ, Raw: raw}
	if typ == TypeRemove {
		cmd.Remove = ref
	} else {
		cmd.Done = ref
	}
	return cmd, nil
}

func parseSet(raw string, args []string) (Command, error) {
	if len(args) < 2 {
		return Command{}, invalid("set requires an item reference and at least one field:value")
	}
	fields, rest := splitFields(args[1:])
	if len(rest) > 0 {
		return Command{}, invalid("set expects field:value pairs, got %q", strings.Join(rest, " "))
	}
	var patch model.ItemPatch
	for _, f := range fields {
		switch f.key {
		case "name":
			v := f.value
			patch.Name = &v
		case "qty":
			q, err := parseNumber(f.key, f.value)
			if err != nil {
				return Command{}, err
			}
			patch.Quantity = &q
		case "unit":
			v := f.value
			patch.Unit = &v
		case "price":
			if strings.EqualFold(f.value, "none") {
				patch.ClearPrice = true
				continue
			}
			p, err := parseNumber(f.key, f.value)
			if err != nil {
				return Command{}, err
			}
			patch.Price = &p
		case "cat":
			c := model.ParseCategory(f.value)
			patch.Category = &c
		case "note":
			v := f.value
			patch.Notes = &v
		}
	}
	if patch.IsEmpty() {
		return Command{}, invalid("set requires at least one field:value")
	}
	return Command{Type: TypeSet, Raw: raw, Set: &SetArgs{Ref: args[0], Patch: patch}}, nil
}

func parseBudget(raw string, args []string) (Command, error) {
	if len(args) == 2 && strings.EqualFold(args[1], "default") {
		args = args[:1]
		cmd, err := parseBudget(raw, args)
		if err != nil {
			return Command{}, err
		}
		cmd.Budget.Default = true
		return cmd, nil
	}
	if len(args) != 1 {
		return Command{}, invalid("budget requires an amount or clear, optionally followed by default")
	}
	if strings.EqualFold(args[0], "clear") || strings.EqualFold(args[0], "none") {
		return Command{Type: TypeBudget, Raw: raw, Budget: &BudgetArgs{}}, nil
	}
	amount, err := parseNumber("budget", args[0])
	if err != nil {
		return Command{}, err
	}
	if amount < 0 {
		return Command{}, invalid("budget must not be negative, use budget clear")
	}
	return Command{Type: TypeBudget, Raw: raw, Budget: &BudgetArgs{Amount: &amount}}, nil
}

func parseClear(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, invalid("clear requires completed or all")
	}
	scope := ClearScope(strings.ToLower(args[0]))
	if scope != ClearCompleted && scope != ClearAll {
		return Command{}, invalid("clear scope must be completed or all, got %q", args[0])
	}
	return Command{Type: TypeClear, Raw: raw, Clear: &ClearArgs{Scope: scope}}, nil
}

func parseSuggest(raw string, args []string) (Command, error) {
	out := SuggestArgs{}
	switch {
	case len(args) == 0:
	case len(args) == 2 && strings.EqualFold(args[0], "accept"):
		if strings.EqualFold(args[1], "all") {
			out.AcceptAll = true
			break
		}
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 1 {
			return Command{}, invalid("suggest accept requires a positive number or all")
		}
		out.Accept = n
	default:
		return Command{}, invalid("usage: suggest [accept <n|all>]")
	}
	return Command{Type: TypeSuggest, Raw: raw, Suggest: &out}, nil
}

func parseRecipe(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, invalid("recipe requires search, show, add or random")
	}
	action := RecipeAction(strings.ToLower(args[0]))
	rest := args[1:]
	out := RecipeArgs{Action: action}
	switch action {
	case RecipeSearch:
		out.Query = strings.TrimSpace(strings.Join(rest, " "))
		if out.Query == "" {
			return Command{}, invalid("recipe search requires a query")
		}
	case RecipeShow, RecipeAdd:
		if len(rest) != 1 {
			return Command{}, invalid("recipe %s requires a recipe id", action)
		}
		out.ID = rest[0]
	case RecipeRandom:
		out.Count = 6
		if len(rest) == 1 {
			n, err := strconv.Atoi(rest[0])
			if err != nil || n < 1 {
				return Command{}, invalid("recipe random count must be a positive number")
			}
			out.Count = n
		} else if len(rest) > 1 {
			return Command{}, invalid("usage: recipe random [n]")
		}
	default:
		return Command{}, invalid("unknown recipe action %q", args[0])
	}
	return Command{Type: TypeRecipe, Raw: raw, Recipe: &out}, nil
}
