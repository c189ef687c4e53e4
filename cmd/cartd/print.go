package main

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/sandeepkv93/cartd/internal/grocery"
	"github.com/sandeepkv93/cartd/internal/model"
	"github.com/sandeepkv93/cartd/internal/views"
)

func formatList(l model.List) string {
	if len(l.Items) == 0 {
		return l.Name + ": (empty)"
	}
	positions := make(map[string]int, len(l.Items))
	for i, it := range l.Items {
		positions[it.ID] = i + 1
	}
	groups := grocery.GroupByCategory(l.Items)

	var b strings.Builder
	b.WriteString(l.Name + "\n")
	for _, c := range model.Categories() {
		if len(groups[c]) == 0 {
			continue
		}
		b.WriteString("\n" + c.Label() + "\n")
		for _, it := range groups[c] {
			box := "[ ]"
			if it.Completed {
				box = "[x]"
			}
			line := fmt.Sprintf("  %2d. %s %s %s %s", positions[it.ID], box, views.Quantity(it.Quantity), it.Unit, it.Name)
			if it.Price != nil {
				line += fmt.Sprintf(" @ %s = %s", views.Money(*it.Price), views.Money(it.Cost()))
			}
			if it.Notes != "" {
				line += " (" + it.Notes + ")"
			}
			b.WriteString(line + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatHistory(h model.History, limit int) string {
	if len(h.Purchases) == 0 && len(h.FrequentItems) == 0 {
		return "no purchases recorded yet"
	}
	var b strings.Builder
	b.WriteString("frequent items:\n")
	for _, f := range h.FrequentItems {
		b.WriteString(fmt.Sprintf("  %3dx %s (last %s)\n", f.Frequency, f.Template.Name, humanize.Time(f.LastPurchasedAt)))
	}
	if limit <= 0 {
		return strings.TrimRight(b.String(), "\n")
	}
	b.WriteString("\nrecent purchases:\n")
	for i, n := len(h.Purchases)-1, 0; i >= 0 && n < limit; i, n = i-1, n+1 {
		p := h.Purchases[i]
		when := ""
		if p.LastPurchasedAt != nil {
			when = ", " + humanize.Time(*p.LastPurchasedAt)
		}
		b.WriteString(fmt.Sprintf("  %s %s %s%s\n", views.Quantity(p.Quantity), p.Unit, p.Name, when))
	}
	return strings.TrimRight(b.String(), "\n")
}
