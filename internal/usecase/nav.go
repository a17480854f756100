package usecase

// NavItem is one entry in the site menu.
type NavItem struct {
	Label  string `json:"label"`
	Href   string `json:"href"`
	Active bool   `json:"active"`
}

// NavView is the header chrome view model: brand, menu, and the cart
// badge. The badge is the only cart dependency the chrome has.
type NavView struct {
	Brand     string    `json:"brand"`
	Items     []NavItem `json:"items"`
	CartBadge int       `json:"cartBadge"`
	CartHref  string    `json:"cartHref"`
}

// menuEntries is the fixed site menu.
var menuEntries = []NavItem{
	{Label: "Home", Href: "/"},
	{Label: "Catalog", Href: "/catalog"},
	{Label: "About", Href: "/about"},
	{Label: "Contact", Href: "/contact"},
}

// BuildNav renders the navigation chrome, marking the entry matching
// currentPath as active.
func BuildNav(currentPath string, cartCount int) NavView {
	items := make([]NavItem, len(menuEntries))
	copy(items, menuEntries)
	for i := range items {
		items[i].Active = items[i].Href == currentPath
	}

	return NavView{
		Brand:     "Amore Mío",
		Items:     items,
		CartBadge: cartCount,
		CartHref:  "/cart",
	}
}
