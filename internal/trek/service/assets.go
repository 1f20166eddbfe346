package service

import (
	"context"

	"github.com/BishowDevkota/trekking-company/internal/trek/assets"
	"github.com/BishowDevkota/trekking-company/pkg/slogx"
)

// removeImages deletes the assets behind the given URLs. Content changes must
// not fail because the asset host is unhappy, so errors are only logged.
// URLs that do not point at a known host are skipped.
func removeImages(ctx context.Context, host assets.Host, urls ...string) {
	if host == nil {
		return
	}
	l := slogx.FromContext(ctx)

	for _, url := range urls {
		id, ok := host.PublicID(url)
		if !ok {
			l.Debug("skipping image outside asset host", "url", url)
			continue
		}
		if err := host.Delete(ctx, id); err != nil {
			l.Warn("failed to delete image", "public_id", id, "err", err)
			continue
		}
		l.Info("deleted image", "public_id", id)
	}
}
