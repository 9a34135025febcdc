package panel

import (
	"context"
	"errors"

	"go.nivo.ch/panelctl/internal/core/domain"
	"go.nivo.ch/panelctl/internal/core/ports"
)

// applySoft runs a mutating command whose contract is boolean failure. A
// rejection by the panel reports false; only a confirmed change runs
// invalidate, which names exactly the caches the call site must clear.
// Transport failures propagate unchanged and clear nothing.
func applySoft(ctx context.Context, t ports.Transport, command string, params map[string]string, invalidate func()) (bool, error) {
	if _, err := t.Apply(ctx, command, params); err != nil {
		if errors.Is(err, domain.ErrCommandRejected) {
			return false, nil
		}
		return false, err
	}

	invalidate()
	return true, nil
}
