package grocery

import (
	"context"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/sandeepkv93/cartd/internal/model"
	"github.com/sandeepkv93/cartd/internal/storage"
)

// NewItem is the input of Add. Zero values take defaults: quantity 1, unit
// pcs, category from the name.
type NewItem struct {
	Name     string
	Quantity float64
	Unit     string
	Price    *float64
	Category model.Category
	Notes    string
}

type ControllerOptions struct {
	NewID func() string
	Now   func() time.Time
}

// ListController owns the active list. Unknown ids are ignored and reported
// through the bool results; persistence failures are logged and the
// in-memory list stays authoritative.
type ListController struct {
	list    model.List
	store   storage.Store
	history *HistoryStore
	log     zerolog.Logger
	newID   func() string
	now     func() time.Time
}

func NewListController(list model.List, store storage.Store, history *HistoryStore, log zerolog.Logger, opts ControllerOptions) *ListController {
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if list.Items == nil {
		list.Items = []model.Item{}
	}
	list.TotalCost = TotalCost(list.Items)
	return &ListController{
		list:    list,
		store:   store,
		history: history,
		log:     log,
		newID:   opts.NewID,
		now:     opts.Now,
	}
}

// LoadOrCreateList restores the persisted list, or creates and persists an
// empty one using the default budget from prefs.
func LoadOrCreateList(ctx context.Context, store storage.Store, prefs model.Preferences, history *HistoryStore, log zerolog.Logger, opts ControllerOptions) *ListController {
	var persisted model.List
	found, err := storage.LoadJSON(ctx, store, storage.KeyCurrentList, &persisted)
	if err != nil {
		log.Error().Err(err).Str("key", storage.KeyCurrentList).Msg("load list failed, starting a new list")
		found = false
	}
	if found && strings.TrimSpace(persisted.ID) != "" {
		c := NewListController(persisted, store, history, log, opts)
		fixed := c.repair()
		if err := c.list.Validate(); err != nil {
			log.Error().Err(err).Str("list_id", persisted.ID).Msg("persisted list is invalid, starting a new list")
		} else {
			if fixed > 0 {
				log.Warn().Int("fixed", fixed).Str("list_id", c.list.ID).Msg("repaired persisted list")
				c.persist(ctx)
			}
			return c
		}
	}

	c := NewListController(model.List{}, store, history, log, opts)
	now := c.now()
	c.list = model.List{
		ID:         c.newID(),
		Name:       model.DefaultListName,
		Items:      []model.Item{},
		CreatedAt:  now,
		ModifiedAt: now,
	}
	if validBudget(prefs.DefaultBudget) {
		b := *prefs.DefaultBudget
		c.list.Budget = &b
	}
	c.persist(ctx)
	return c
}

func (c *ListController) List() model.List {
	return c.list.Clone()
}

func (c *ListController) Items() []model.Item {
	return c.List().Items
}

// Add appends a new item. Blank names are ignored.
func (c *ListController) Add(ctx context.Context, in NewItem) (model.Item, bool) {
	it, ok := c.build(in)
	if !ok {
		return model.Item{}, false
	}
	c.list.Items = append(c.list.Items, it)
	c.touch(true)
	c.persist(ctx)
	return it.Clone(), true
}

// AddMany adds items in input order and persists once.
func (c *ListController) AddMany(ctx context.Context, in []NewItem) []model.Item {
	added := make([]model.Item, 0, len(in))
	for _, n := range in {
		it, ok := c.build(n)
		if !ok {
			continue
		}
		c.list.Items = append(c.list.Items, it)
		added = append(added, it.Clone())
	}
	if len(added) > 0 {
		c.touch(true)
		c.persist(ctx)
	}
	return added
}

// AddSuggestion adds a copy of a suggested or frequent item.
func (c *ListController) AddSuggestion(ctx context.Context, s model.Item) (model.Item, bool) {
	return c.Add(ctx, NewItem{
		Name:     s.Name,
		Quantity: s.Quantity,
		Unit:     s.Unit,
		Price:    s.Price,
		Category: s.Category,
		Notes:    s.Notes,
	})
}

func (c *ListController) Update(ctx context.Context, id string, patch model.ItemPatch) bool {
	i := c.indexOf(id)
	if i < 0 {
		return false
	}
	c.list.Items[i] = patch.Apply(c.list.Items[i])
	c.touch(true)
	c.persist(ctx)
	return true
}

func (c *ListController) Remove(ctx context.Context, id string) bool {
	i := c.indexOf(id)
	if i < 0 {
		return false
	}
	c.list.Items = append(c.list.Items[:i], c.list.Items[i+1:]...)
	c.touch(true)
	c.persist(ctx)
	return true
}

// ToggleCompletion flips the completed flag. The total is not recomputed.
func (c *ListController) ToggleCompletion(ctx context.Context, id string) bool {
	i := c.indexOf(id)
	if i < 0 {
		return false
	}
	c.list.Items[i].Completed = !c.list.Items[i].Completed
	c.touch(false)
	c.persist(ctx)
	return true
}

// ClearCompleted moves completed items into history and returns how many
// were moved.
func (c *ListController) ClearCompleted(ctx context.Context) int {
	completed := make([]model.Item, 0)
	remaining := make([]model.Item, 0, len(c.list.Items))
	for _, it := range c.list.Items {
		if it.Completed {
			completed = append(completed, it)
		} else {
			remaining = append(remaining, it)
		}
	}
	if len(completed) > 0 && c.history != nil {
		c.history.RecordCompletion(ctx, completed)
	}
	c.list.Items = remaining
	c.touch(true)
	c.persist(ctx)
	return len(completed)
}

// ClearAll discards every item without recording history.
func (c *ListController) ClearAll(ctx context.Context) {
	c.list.Items = []model.Item{}
	c.touch(true)
	c.persist(ctx)
}

// SetBudget sets the budget; nil, negative or non-finite values clear it.
func (c *ListController) SetBudget(ctx context.Context, budget *float64) {
	if !validBudget(budget) {
		c.list.Budget = nil
	} else {
		b := *budget
		c.list.Budget = &b
	}
	c.touch(false)
	c.persist(ctx)
}

func validBudget(b *float64) bool {
	return b != nil && *b >= 0 && !math.IsNaN(*b) && !math.IsInf(*b, 0)
}

// repair coerces a decoded list back into shape: nameless items are dropped,
// missing or repeated ids are reissued and bad quantities, prices, units and
// categories get their defaults. It returns how many fields or items changed.
func (c *ListController) repair() int {
	fixed := 0
	if c.list.Budget != nil && !validBudget(c.list.Budget) {
		c.list.Budget = nil
		fixed++
	}
	stamp := c.list.CreatedAt
	if stamp.IsZero() {
		stamp = c.now()
	}
	seen := make(map[string]bool, len(c.list.Items))
	items := make([]model.Item, 0, len(c.list.Items))
	for _, it := range c.list.Items {
		name := strings.TrimSpace(it.Name)
		if name == "" {
			fixed++
			continue
		}
		out := it.Clone()
		out.Name = name
		if strings.TrimSpace(out.ID) == "" || seen[out.ID] {
			out.ID = c.newID()
		}
		seen[out.ID] = true
		out.Quantity = model.NormalizeQuantity(it.Quantity)
		out.Price = model.NormalizePrice(it.Price)
		if !out.Category.IsValid() {
			out.Category = model.CategoryOther
		}
		if strings.TrimSpace(out.Unit) == "" {
			out.Unit = model.DefaultUnit
		}
		if out.AddedAt.IsZero() {
			out.AddedAt = stamp
		}
		if out.ID != it.ID || out.Name != it.Name || out.Quantity != it.Quantity ||
			(out.Price == nil) != (it.Price == nil) || out.Category != it.Category ||
			out.Unit != it.Unit || !out.AddedAt.Equal(it.AddedAt) {
			fixed++
		}
		items = append(items, out)
	}
	c.list.Items = items
	c.list.TotalCost = TotalCost(items)
	return fixed
}

func (c *ListController) Suggestions() []model.Item {
	var purchases []model.Item
	if c.history != nil {
		purchases = c.history.Purchases()
	}
	return GenerateSuggestions(purchases, c.list.Items, SuggestionOptions{NewID: c.newID, Now: c.now})
}

// Find resolves ref as an item id or a 1-based position.
func (c *ListController) Find(ref string) (model.Item, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return model.Item{}, false
	}
	if i := c.indexOf(ref); i >= 0 {
		return c.list.Items[i].Clone(), true
	}
	pos, err := strconv.Atoi(ref)
	if err != nil || pos < 1 || pos > len(c.list.Items) {
		return model.Item{}, false
	}
	return c.list.Items[pos-1].Clone(), true
}

func (c *ListController) build(in NewItem) (model.Item, bool) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return model.Item{}, false
	}
	unit := strings.TrimSpace(in.Unit)
	if unit == "" {
		unit = model.DefaultUnit
	}
	category := in.Category
	switch {
	case category == "":
		category = Categorize(name)
	case !category.IsValid():
		category = model.CategoryOther
	}
	return model.Item{
		ID:       c.newID(),
		Name:     name,
		Category: category,
		Quantity: model.NormalizeQuantity(in.Quantity),
		Unit:     unit,
		Price:    model.NormalizePrice(in.Price),
		AddedAt:  c.now(),
		Notes:    strings.TrimSpace(in.Notes),
	}, true
}

func (c *ListController) indexOf(id string) int {
	for i := range c.list.Items {
		if c.list.Items[i].ID == id {
			return i
		}
	}
	return -1
}

func (c *ListController) touch(recompute bool) {
	if recompute {
		c.list.TotalCost = TotalCost(c.list.Items)
	}
	c.list.ModifiedAt = c.now()
}

func (c *ListController) persist(ctx context.Context) {
	if c.store == nil {
		return
	}
	if err := storage.SaveJSON(ctx, c.store, storage.KeyCurrentList, c.list); err != nil {
		c.log.Error().Err(err).Str("key", storage.KeyCurrentList).Str("list_id", c.list.ID).Msg("persist list failed")
	}
}
