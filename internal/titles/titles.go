package titles

import "context"

// Provider returns the title of the puzzle for (year, day), if one can be found.
type Provider interface {
	FetchTitle(ctx context.Context, year, day int) (string, bool)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(ctx context.Context, year, day int) (string, bool)

// FetchTitle calls f.
func (f ProviderFunc) FetchTitle(ctx context.Context, year, day int) (string, bool) {
	return f(ctx, year, day)
}

// Nop never finds a title. It backs offline runs.
var Nop Provider = ProviderFunc(func(context.Context, int, int) (string, bool) {
	return "", false
})
