// Package catalog holds the static category reference data behind the
// built-in pictograms. The catalog is read-only; user data only references
// it by id.
package catalog

// Category is a top-level pictogram group with localized display names.
type Category struct {
	ID     string
	Icon   string
	NameFR string
	NameEN string
}

// Name returns the category's display name for a language, falling back to
// French.
func (c Category) Name(language string) string {
	if language == "en" {
		return c.NameEN
	}
	return c.NameFR
}

// Categories is the fixed category list, in display order. The "custom"
// category fronts the user-created pictograms stored in the database.
var Categories = []Category{
	{ID: "custom", Icon: "✨", NameFR: "Pictogrammes personnalisés", NameEN: "Custom Pictograms"},
	{ID: "letters", Icon: "🔤", NameFR: "Lettres", NameEN: "Letters"},
	{ID: "numbers", Icon: "🔢", NameFR: "Nombres", NameEN: "Numbers"},
	{ID: "multiplications", Icon: "✖️", NameFR: "Multiplications", NameEN: "Multiplications"},
	{ID: "transport", Icon: "🚗", NameFR: "Transports", NameEN: "Transport"},
	{ID: "clothes", Icon: "👕", NameFR: "Vêtements", NameEN: "Clothes"},
	{ID: "conversation", Icon: "💬", NameFR: "Conversation", NameEN: "Conversation"},
	{ID: "people", Icon: "👥", NameFR: "Personnes", NameEN: "People"},
	{ID: "feelings", Icon: "😊", NameFR: "Sentiments", NameEN: "Feelings"},
	{ID: "food", Icon: "🍽️", NameFR: "Nourriture", NameEN: "Food"},
	{ID: "animals", Icon: "🐾", NameFR: "Animaux", NameEN: "Animals"},
	{ID: "school", Icon: "📚", NameFR: "École", NameEN: "School"},
	{ID: "activities", Icon: "🎯", NameFR: "Activités", NameEN: "Activities"},
	{ID: "shapes", Icon: "⬛", NameFR: "Formes", NameEN: "Shapes"},
	{ID: "colors", Icon: "🎨", NameFR: "Couleurs", NameEN: "Colors"},
	{ID: "toys", Icon: "🧸", NameFR: "Jouets", NameEN: "Toys"},
	{ID: "drinks", Icon: "🥤", NameFR: "Boissons", NameEN: "Drinks"},
	{ID: "snacks", Icon: "🍪", NameFR: "Collations", NameEN: "Snacks"},
	{ID: "professions", Icon: "👷", NameFR: "Professions", NameEN: "Professions"},
	{ID: "party", Icon: "🎉", NameFR: "Fête", NameEN: "Party"},
	{ID: "carnival", Icon: "🎡", NameFR: "Fête Foraine", NameEN: "Carnival"},
	{ID: "fruits", Icon: "🍎", NameFR: "Fruits", NameEN: "Fruits"},
	{ID: "vegetables", Icon: "🥕", NameFR: "Légumes", NameEN: "Vegetables"},
	{ID: "sports", Icon: "⚽", NameFR: "Sports", NameEN: "Sports"},
	{ID: "travel", Icon: "✈️", NameFR: "Voyage", NameEN: "Travel"},
	{ID: "gardening", Icon: "🌱", NameFR: "Jardinage", NameEN: "Gardening"},
	{ID: "medical", Icon: "🏥", NameFR: "Médical", NameEN: "Medical"},
	{ID: "cooking", Icon: "🍳", NameFR: "Cuisine", NameEN: "Cooking"},
	{ID: "places", Icon: "🏛️", NameFR: "Lieux", NameEN: "Places"},
	{ID: "selfcare", Icon: "🧼", NameFR: "Soin de soi", NameEN: "Self Care"},
	{ID: "household", Icon: "🏠", NameFR: "Dans la maison", NameEN: "Household"},
	{ID: "diabetes", Icon: "🩸", NameFR: "Diabète", NameEN: "Diabetes"},
}

// ByID returns the category with the given id, or nil.
func ByID(id string) *Category {
	for i := range Categories {
		if Categories[i].ID == id {
			return &Categories[i]
		}
	}
	return nil
}

// IsValid reports whether id names a known category.
func IsValid(id string) bool {
	return ByID(id) != nil
}
