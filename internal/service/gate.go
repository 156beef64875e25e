package service

import (
	"strings"

	"github.com/Peytose/mixer-app-sub003/internal/domain"
	"golang.org/x/sync/singleflight"
)

// gate lets one call per key run at a time. A caller that arrives while the
// same key is running waits for it and then gets ErrActionInFlight instead of
// performing a second write.
type gate struct {
	group singleflight.Group
}

func (g *gate) do(fn func() error, key ...string) error {
	ran := false
	_, err, _ := g.group.Do(strings.Join(key, "/"), func() (any, error) {
		ran = true
		return nil, fn()
	})
	if !ran {
		return domain.ErrActionInFlight
	}
	return err
}
