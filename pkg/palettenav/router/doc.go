// Package router provides path-based navigation between application views.
//
// A Navigator owns an ordered route table, a history of visited entries, and the
// current NavigationState. Routes are registered once and frozen by Start; after
// that every navigation replaces the current state as a whole instead of
// mutating it.
//
// # Basic Usage
//
//	nav := router.New(router.Options{
//	    AppName: "Генератор цветов",
//	    Title:   doc, // anything with SetTitle(string)
//	})
//
//	nav.Register(router.Route{Path: "/", Name: "Home", View: home, Meta: router.Meta{Title: "Генератор палитр"}}).
//	    Register(router.Route{Path: "/library", Name: "Library", View: library, Meta: router.Meta{Title: "Библиотека палитр"}}).
//	    Register(router.Route{
//	        Path:  "/palette/:id",
//	        Name:  "PaletteDetail",
//	        Lazy:  router.Lazy(loadPaletteDetail),
//	        Meta:  router.Meta{Title: "Палитра"},
//	        Props: true,
//	    }).
//	    Register(router.Route{Path: "/:pathMatch(.*)*", Redirect: "/"})
//
//	state, err := nav.Start("/")
//
// # Resolution
//
// Patterns are matched in declaration order. A segment starting with a colon
// binds a named parameter. Exactly one catch-all route must exist; it is only
// tried after every other pattern failed, no matter where it was declared, and
// it redirects instead of rendering.
//
// # Scroll Restoration
//
// Push and Replace always land at the top of the page. Back and Forward hand the
// scroll offset that was saved when the entry was left to the ScrollBehavior,
// which by default restores it.
package router
