// Package knowledge turns the cafe content and the live menu into the
// assistant's system prompt.
package knowledge

import (
	"fmt"
	"strings"

	"beaticafe/internal/catalog"
	"beaticafe/internal/domain/model"
)

const (
	AssistantName = "Bea"

	Greeting = "Hi! I'm Bea, your friendly assistant at Beati Cafe. How can I help you today? ☕"

	// Fallback is shown when the completion API cannot be reached.
	Fallback = "I'm sorry, I'm having trouble connecting right now. Please try again or contact our team directly at hello@beaticafe.com."
)

// QuickQuestions are offered before the first message.
var QuickQuestions = []string{
	"What are your most popular drinks?",
	"Do you have vegan or gluten-free options?",
	"What are your hours and location?",
	"What's good for studying or working?",
	"Tell me about your featured items",
	"What are your price ranges?",
}

var sectionTitles = map[model.Category]string{
	model.CategoryCoffee: "Coffee",
	model.CategoryTea:    "Tea",
	model.CategoryPastry: "Pastries",
	model.CategoryFood:   "Food",
}

// Base is the knowledge the assistant answers from.
type Base struct {
	cafe     model.Cafe
	products []model.Product
}

func NewBase(cafe model.Cafe, products []model.Product) *Base {
	return &Base{cafe: cafe, products: products}
}

// SystemPrompt renders the whole knowledge base as one system message.
func (b *Base) SystemPrompt() string {
	var sb strings.Builder
	info := b.cafe.Info

	fmt.Fprintf(&sb, "You are %s, a friendly AI assistant for %s - a modern, cozy cafe serving specialty coffee, tea, pastries, and light meals.\n\n", AssistantName, info.Name)

	sb.WriteString("# ABOUT US\n")
	fmt.Fprintf(&sb, "Tagline: %s\nStory: %s\nMission: %s\n\n", info.Tagline, info.Story, info.Mission)

	sb.WriteString("# LOCATION & HOURS\n")
	fmt.Fprintf(&sb, "Address: %s\nPhone: %s\nEmail: %s\n- %s\n- %s\n\n",
		info.Address, info.Phone, info.Email, info.Hours.Weekdays, info.Hours.Weekends)

	sb.WriteString("# MENU\n")
	ranges := catalog.PriceRanges(b.products)
	for _, c := range model.Categories {
		r, ok := ranges[c]
		if !ok {
			continue
		}
		fmt.Fprintf(&sb, "## %s ($%s - $%s)\n", sectionTitles[c], r.Min.StringFixed(2), r.Max.StringFixed(2))
		for _, p := range catalog.Filter(b.products, catalog.CategoryPredicate(catalog.NewSelection(string(c)))) {
			star := ""
			if p.Featured {
				star = " ⭐ FEATURED"
			}
			fmt.Fprintf(&sb, "- %s%s ($%s): %s\n", p.Name, star, p.Price.StringFixed(2), p.Description)
		}
		sb.WriteString("\n")
	}

	featured := catalog.Featured(b.products)
	if len(featured) > 0 {
		names := make([]string, len(featured))
		for i, p := range featured {
			names[i] = p.Name
		}
		fmt.Fprintf(&sb, "FEATURED ITEMS: %s\n\n", strings.Join(names, ", "))
	}

	if len(b.cafe.Team) > 0 {
		sb.WriteString("# OUR TEAM\n")
		for _, m := range b.cafe.Team {
			fmt.Fprintf(&sb, "- %s, %s: %s\n", m.Name, m.Role, m.Bio)
		}
		sb.WriteString("\n")
	}

	writeList(&sb, "# SPECIAL FEATURES", b.cafe.Features)

	sb.WriteString("# DIETARY OPTIONS\n")
	writeList(&sb, "Vegan:", b.cafe.Dietary.Vegan)
	writeList(&sb, "Gluten-Free:", b.cafe.Dietary.GlutenFree)
	writeList(&sb, "Vegetarian:", b.cafe.Dietary.Vegetarian)

	if len(b.cafe.Recommendations) > 0 {
		sb.WriteString("# POPULAR COMBOS\n")
		for _, r := range b.cafe.Recommendations {
			fmt.Fprintf(&sb, "%s: %s\n", r.Occasion, strings.Join(r.Picks, ", "))
		}
		sb.WriteString("\n")
	}

	if len(b.cafe.FAQ) > 0 {
		sb.WriteString("# FAQ\n")
		for _, f := range b.cafe.FAQ {
			fmt.Fprintf(&sb, "Q: %s\nA: %s\n", f.Question, f.Answer)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("# RESPONSE STYLE\n")
	fmt.Fprintf(&sb, `- Be warm and concise (2-3 sentences).
- Mention specific items and prices from the menu above.
- Only answer questions about %[1]s.
- Politely redirect off-topic questions: "Would you like to know about our menu instead?"
- After 2-3 questions, ask: "Anything else I can help with?"
- Say goodbye warmly: "Hope to see you soon! ☕"
- For catering or anything you cannot answer, point to %[2]s.
`, info.Name, info.Email)

	return sb.String()
}

func writeList(sb *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(title + "\n")
	for _, it := range items {
		fmt.Fprintf(sb, "- %s\n", it)
	}
	sb.WriteString("\n")
}
