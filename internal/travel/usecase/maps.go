package usecase

import (
	"context"

	"github.com/ozkangu/travel-mcp/internal/travel/maprender"
)

// RenderMap returns a PNG of the requested view.
func (u *Usecase) RenderMap(ctx context.Context, opts maprender.Options) ([]byte, error) {
	return u.renderer.Render(ctx, opts)
}
