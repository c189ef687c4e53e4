package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Add     func(AddArgs) (Result, error)
	Remove  func(RefArgs) (Result, error)
	Done    func(RefArgs) (Result, error)
	Set     func(SetArgs) (Result, error)
	Budget  func(BudgetArgs) (Result, error)
	Clear   func(ClearArgs) (Result, error)
	Suggest func(SuggestArgs) (Result, error)
	Recipe  func(RecipeArgs) (Result, error)
}

func missing(name string) error {
	return &CommandError{Code: ErrCodeHandlerMissing, Message: name + " handler not configured"}
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeAdd:
		if handlers.Add == nil {
			return Result{}, missing("add")
		}
		return handlers.Add(*cmd.Add)
	case TypeRemove:
		if handlers.Remove == nil {
			return Result{}, missing("rm")
		}
		return handlers.Remove(*cmd.Remove)
	case TypeDone:
		if handlers.Done == nil {
			return Result{}, missing("done")
		}
		return handlers.Done(*cmd.Done)
	case TypeSet:
		if handlers.Set == nil {
			return Result{}, missing("set")
		}
		return handlers.Set(*cmd.Set)
	case TypeBudget:
		if handlers.Budget == nil {
			return Result{}, missing("budget")
		}
		return handlers.Budget(*cmd.Budget)
	case TypeClear:
		if handlers.Clear == nil {
			return Result{}, missing("clear")
		}
		return handlers.Clear(*cmd.Clear)
	case TypeSuggest:
		if handlers.Suggest == nil {
			return Result{}, missing("suggest")
		}
		return handlers.Suggest(*cmd.Suggest)
	case TypeRecipe:
		if handlers.Recipe == nil {
			return Result{}, missing("recipe")
		}
		return handlers.Recipe(*cmd.Recipe)
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}

// Run parses input and executes it.
func Run(input string, handlers Handlers) (Result, error) {
	cmd, err := Parse(input)
	if err != nil {
		return Result{}, err
	}
	return Execute(cmd, handlers)
}
