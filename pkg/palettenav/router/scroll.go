package router

// ScrollPosition is a page scroll offset in pixels.
type ScrollPosition struct {
	Left int
	Top  int
}

// Top is the top-left corner of the page.
var Top = ScrollPosition{}

// ScrollBehavior decides where the page lands after a navigation.
// saved is non-nil only for history traversal (Back, Forward) to an entry whose
// offset was recorded when it was left.
type ScrollBehavior func(to Resolution, from *NavigationState, saved *ScrollPosition) ScrollPosition

// ResolveScrollPosition restores a saved offset, or returns the top of the page.
func ResolveScrollPosition(saved *ScrollPosition) ScrollPosition {
	if saved != nil {
		return *saved
	}
	return Top
}

// DefaultScrollBehavior ignores the routes and applies ResolveScrollPosition.
func DefaultScrollBehavior(_ Resolution, _ *NavigationState, saved *ScrollPosition) ScrollPosition {
	return ResolveScrollPosition(saved)
}
