package nav

// DefaultRoutes is the client-visible routing surface of the platform:
// public catalog/blog/event routes, the auth screens, and the /admin
// subtree whose requirements are inherited by all of its children.
func DefaultRoutes() []*Route {
	return []*Route{
		{
			Path: "/",
			Children: []*Route{
				{Path: "", Name: "home"},
				{Path: "livres", Name: "books"},
				{Path: "livres/:id", Name: "book-detail"},
				{Path: "livres/:bookId/lire/:number", Name: "read-chapter"},
				{Path: "livres/:id/commander", Name: "order-book"},
				{Path: "commande/succes", Name: "order-success"},
				{Path: "auteurs", Name: "authors"},
				{Path: "auteurs/:id", Name: "author-detail"},
				{Path: "blog", Name: "blog"},
				{Path: "blog/:slug", Name: "article-detail"},
				{Path: "evenements", Name: "events"},
				{Path: "a-propos", Name: "about"},
				{Path: "contact", Name: "contact"},
			},
		},
		{Path: "/login", Name: "login"},
		{Path: "/register", Name: "register"},
		{
			Path: "/admin",
			Meta: Meta{RequiresAuth: true, RequiresAdmin: true},
			Children: []*Route{
				{Path: "", Name: "admin-dashboard"},
				{Path: "livres", Name: "admin-books"},
				{Path: "livres/:bookId/chapitres", Name: "admin-chapters"},
				{Path: "auteurs", Name: "admin-authors"},
				{Path: "categories", Name: "admin-categories"},
				{Path: "articles", Name: "admin-articles"},
				{Path: "evenements", Name: "admin-events"},
			},
		},
	}
}
