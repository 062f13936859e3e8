package catalog

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"reelcat/internal/logging"
)

const (
	defaultRetryAttempts  = 3
	defaultRetryBaseDelay = 500 * time.Millisecond
	defaultRetryMaxDelay  = 5 * time.Second
)

// Mutator applies catalog changes through a Store.
//
// Every mutation re-reads the catalog immediately before writing and then
// replaces whole video lists, because that is all the store offers. The
// mutator assumes it is the only writer: two concurrent mutations against
// the same author are last-write-wins, and two concurrent creates can
// mint the same id from stale reads.
type Mutator struct {
	store  Store
	logger *slog.Logger

	retryAttempts  int
	retryBaseDelay time.Duration
	retryMaxDelay  time.Duration
	sleep          func(time.Duration)
}

// MutatorOption customizes a Mutator.
type MutatorOption func(*Mutator)

// WithRetryAttempts overrides how many times the removal write of a
// reassignment is attempted before giving up (defaults to 3).
func WithRetryAttempts(attempts int) MutatorOption {
	return func(m *Mutator) {
		if attempts > 0 {
			m.retryAttempts = attempts
		}
	}
}

// WithRetryBackoff overrides the retry backoff delays.
func WithRetryBackoff(baseDelay, maxDelay time.Duration) MutatorOption {
	return func(m *Mutator) {
		if baseDelay > 0 {
			m.retryBaseDelay = baseDelay
		}
		if maxDelay > 0 {
			m.retryMaxDelay = maxDelay
		}
	}
}

// WithSleeper overrides how retry sleeps are performed (useful for tests).
func WithSleeper(sleep func(time.Duration)) MutatorOption {
	return func(m *Mutator) {
		if sleep != nil {
			m.sleep = sleep
		}
	}
}

// NewMutator constructs a Mutator writing through the supplied store.
func NewMutator(store Store, logger *slog.Logger, opts ...MutatorOption) *Mutator {
	if logger == nil {
		logger = logging.NewNop()
	}
	m := &Mutator{
		store:          store,
		logger:         logger,
		retryAttempts:  defaultRetryAttempts,
		retryBaseDelay: defaultRetryBaseDelay,
		retryMaxDelay:  defaultRetryMaxDelay,
		sleep:          time.Sleep,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Create mints the next video id from a fresh snapshot and appends a new
// video to the target author's list, returning the new id.
//
// The id is the current global maximum across all authors plus one. A
// second writer running the same scan concurrently can compute the same
// id; the store offers nothing to detect that, so uniqueness here is best
// effort. New videos start with the default single 1080p format and an
// unknown release date.
func (m *Mutator) Create(ctx context.Context, name string, catIDs []int64, targetAuthorID int64) (int64, error) {
	logger := m.operationLogger()

	authors, err := m.store.ReadAllAuthors(ctx)
	if err != nil {
		return 0, err
	}
	target := findAuthor(authors, targetAuthorID)
	if target == nil {
		return 0, &OwnerNotFoundError{ID: targetAuthorID}
	}

	video := AuthorVideo{
		ID:          maxVideoID(authors) + 1,
		CatIDs:      append([]int64(nil), catIDs...),
		Name:        name,
		Formats:     map[string]Resolution{"one": {Res: "1080p", Size: 1000}},
		ReleaseDate: ReleaseDateUnknown,
	}

	updated := append(append([]AuthorVideo(nil), target.Videos...), video)
	if err := m.store.ReplaceAuthorVideos(ctx, target.ID, updated); err != nil {
		return 0, &StoreWriteError{Op: "create", AuthorID: target.ID, Err: err}
	}

	logger.InfoContext(ctx, "video created",
		slog.Int64(logging.FieldVideoID, video.ID),
		slog.Int64(logging.FieldAuthorID, target.ID))
	return video.ID, nil
}

// Update rewrites a video's name and category references, moving it to
// another author when targetAuthorID differs from currentAuthorID.
// Formats and release date carry over unchanged. Videos are matched by id
// only; display names are not unique enough to identify one.
func (m *Mutator) Update(ctx context.Context, video AuthorVideo, name string, catIDs []int64, targetAuthorID, currentAuthorID int64) error {
	logger := m.operationLogger().With(slog.Int64(logging.FieldVideoID, video.ID))

	authors, err := m.store.ReadAllAuthors(ctx)
	if err != nil {
		return err
	}
	current := findAuthor(authors, currentAuthorID)
	if current == nil {
		return &OwnerNotFoundError{ID: currentAuthorID}
	}

	updated := AuthorVideo{
		ID:          video.ID,
		CatIDs:      append([]int64(nil), catIDs...),
		Name:        name,
		Formats:     video.Formats,
		ReleaseDate: video.ReleaseDate,
	}

	if targetAuthorID == currentAuthorID {
		return m.updateInPlace(ctx, logger, current, updated)
	}

	target := findAuthor(authors, targetAuthorID)
	if target == nil {
		return &OwnerNotFoundError{ID: targetAuthorID}
	}
	return m.reassign(ctx, logger, current, target, updated)
}

// Delete removes a video from its owning author's list. The owner is
// located by the author name carried on the flattened view, the video by
// id, so two videos sharing a display name never collide.
func (m *Mutator) Delete(ctx context.Context, video FlatVideo) error {
	logger := m.operationLogger().With(slog.Int64(logging.FieldVideoID, video.ID))

	authors, err := m.store.ReadAllAuthors(ctx)
	if err != nil {
		return err
	}

	var owner *Author
	for i := range authors {
		if authors[i].Name == video.Author {
			owner = &authors[i]
			break
		}
	}
	if owner == nil {
		return &OwnerNotFoundError{Name: video.Author}
	}

	remaining, removed := removeVideo(owner.Videos, video.ID)
	if !removed {
		return &VideoNotFoundError{VideoID: video.ID}
	}
	if err := m.store.ReplaceAuthorVideos(ctx, owner.ID, remaining); err != nil {
		return &StoreWriteError{Op: "delete", AuthorID: owner.ID, Err: err}
	}

	logger.InfoContext(ctx, "video deleted", slog.Int64(logging.FieldAuthorID, owner.ID))
	return nil
}

func (m *Mutator) updateInPlace(ctx context.Context, logger *slog.Logger, author *Author, updated AuthorVideo) error {
	videos := make([]AuthorVideo, len(author.Videos))
	replaced := false
	for i, existing := range author.Videos {
		if existing.ID == updated.ID {
			videos[i] = updated
			replaced = true
			continue
		}
		videos[i] = existing
	}
	if !replaced {
		return &VideoNotFoundError{VideoID: updated.ID}
	}

	if err := m.store.ReplaceAuthorVideos(ctx, author.ID, videos); err != nil {
		return &StoreWriteError{Op: "update", AuthorID: author.ID, Err: err}
	}

	logger.InfoContext(ctx, "video updated", slog.Int64(logging.FieldAuthorID, author.ID))
	return nil
}

// reassign moves a video between authors with two independent writes: an
// append to the new owner, then a removal from the old one. Once the
// append lands it is never sent again. The removal is retried with
// backoff; if it still fails the video is left under both authors and the
// caller gets a PartialReassignmentError naming everything needed to
// repair the catalog by hand.
func (m *Mutator) reassign(ctx context.Context, logger *slog.Logger, current, target *Author, updated AuthorVideo) error {
	logger = logger.With(
		slog.Int64(logging.FieldFromAuthorID, current.ID),
		slog.Int64(logging.FieldToAuthorID, target.ID))

	remaining, removed := removeVideo(current.Videos, updated.ID)
	if !removed {
		return &VideoNotFoundError{VideoID: updated.ID}
	}

	appended := append(append([]AuthorVideo(nil), target.Videos...), updated)
	if err := m.store.ReplaceAuthorVideos(ctx, target.ID, appended); err != nil {
		// Nothing has been written; the operation fails cleanly.
		return &StoreWriteError{Op: "reassign", AuthorID: target.ID, Err: err}
	}

	delay := m.retryBaseDelay
	var lastErr error
	for attempt := 1; attempt <= m.retryAttempts; attempt++ {
		lastErr = m.store.ReplaceAuthorVideos(ctx, current.ID, remaining)
		if lastErr == nil {
			logger.InfoContext(ctx, "video reassigned")
			return nil
		}
		logger.WarnContext(ctx, "reassignment removal failed",
			slog.Int("attempt", attempt),
			slog.Any("error", lastErr))
		if attempt < m.retryAttempts {
			m.sleep(delay)
			delay *= 2
			if delay > m.retryMaxDelay {
				delay = m.retryMaxDelay
			}
		}
	}

	logger.ErrorContext(ctx, "reassignment incomplete, video present under both authors",
		slog.Any("error", lastErr))
	return &PartialReassignmentError{
		VideoID:      updated.ID,
		FromAuthorID: current.ID,
		ToAuthorID:   target.ID,
		Err:          lastErr,
	}
}

func (m *Mutator) operationLogger() *slog.Logger {
	return m.logger.With(slog.String(logging.FieldOperationID, uuid.NewString()))
}

func findAuthor(authors []Author, id int64) *Author {
	for i := range authors {
		if authors[i].ID == id {
			return &authors[i]
		}
	}
	return nil
}

func maxVideoID(authors []Author) int64 {
	var max int64
	for _, author := range authors {
		for _, video := range author.Videos {
			if video.ID > max {
				max = video.ID
			}
		}
	}
	return max
}

func removeVideo(videos []AuthorVideo, id int64) ([]AuthorVideo, bool) {
	remaining := make([]AuthorVideo, 0, len(videos))
	removed := false
	for _, video := range videos {
		if video.ID == id {
			removed = true
			continue
		}
		remaining = append(remaining, video)
	}
	return remaining, removed
}
