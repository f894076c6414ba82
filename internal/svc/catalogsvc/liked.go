package catalogsvc

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/kopkit/storefront/internal/infra/logging"
	"github.com/kopkit/storefront/internal/repo/kv"
)

// likedKey is the durable storage key for a username's liked set.
func likedKey(username string) string {
	return "liked_products_" + username
}

// IsLiked reports whether the product is in the user's liked set. An empty
// username always reports false.
func (s *CatalogService) IsLiked(ctx context.Context, username string, productID int) bool {
	if username == "" {
		return false
	}

	_, liked := s.likedFor(ctx, username)[productID]

	return liked
}

// ToggleLike flips the product's membership in the user's liked set and
// writes the whole set back to durable storage. An empty username is a
// no-op.
func (s *CatalogService) ToggleLike(ctx context.Context, username string, productID int) (err error) {
	if username == "" {
		return nil
	}

	log := s.Log.With(logging.Group("liked", "username", username, "productId", productID))

	defer func() {
		if err != nil {
			log.ErrorContext(ctx, "toggle like failed", "error", err)
		} else {
			log.DebugContext(ctx, "like toggled")
		}
	}()

	set := s.likedFor(ctx, username)

	if _, liked := set[productID]; liked {
		delete(set, productID)
	} else {
		set[productID] = struct{}{}
	}

	ids := make([]int, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}

	sort.Ints(ids)

	if err := kv.PutJSON(ctx, s.Store, likedKey(username), ids); err != nil {
		return fmt.Errorf("persist liked set: %w", err)
	}

	return nil
}

// likedFor returns the user's in-memory liked set, loading it from durable
// storage on first touch. Absent or malformed snapshots load as empty.
func (s *CatalogService) likedFor(ctx context.Context, username string) map[int]struct{} {
	if set, ok := s.liked[username]; ok {
		return set
	}

	var ids []int

	if _, err := kv.GetJSON(ctx, s.Store, likedKey(username), &ids); err != nil {
		if errors.Is(err, kv.ErrMalformedValue) {
			s.Log.WarnContext(ctx, "discarding malformed liked snapshot",
				"username", username, "error", err)
		} else {
			s.Log.ErrorContext(ctx, "load liked snapshot failed",
				"username", username, "error", err)
		}

		ids = nil
	}

	set := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	s.liked[username] = set

	return set
}
