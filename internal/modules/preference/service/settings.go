package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"folio/internal/modules/preference/domain"
	preferenceout "folio/internal/modules/preference/port/out"
	apperrors "folio/internal/platform/errors"
)

// Settings holds the theme choice. It reads the store once in Load and
// writes through on every explicit change.
type Settings struct {
	store    preferenceout.Store
	detector preferenceout.BackgroundDetector
	log      *zap.Logger

	mu        sync.Mutex
	theme     domain.Theme
	listeners map[int]func(domain.Theme)
	nextID    int
}

func NewSettings(store preferenceout.Store, detector preferenceout.BackgroundDetector, log *zap.Logger) *Settings {
	if log == nil {
		log = zap.NewNop()
	}
	return &Settings{store: store, detector: detector, log: log, theme: domain.ThemeLight, listeners: map[int]func(domain.Theme){}}
}

// Load picks the saved theme, falling back to the terminal background. A
// broken store is logged and treated as empty.
func (s *Settings) Load(ctx context.Context) domain.Theme {
	theme := s.fallback()
	raw, err := s.store.Get(ctx, domain.KeyTheme)
	switch {
	case err == nil:
		if saved, perr := domain.ParseTheme(raw); perr == nil {
			theme = saved
		} else {
			s.log.Warn("ignoring saved theme", zap.String("value", raw))
		}
	case errors.Is(err, apperrors.ErrNotFound):
	default:
		s.log.Warn("load theme", zap.Error(err))
	}
	s.mu.Lock()
	s.theme = theme
	s.mu.Unlock()
	return theme
}

func (s *Settings) fallback() domain.Theme {
	if s.detector != nil && s.detector.DarkBackground() {
		return domain.ThemeDark
	}
	return domain.ThemeLight
}

func (s *Settings) Theme() domain.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

func (s *Settings) Toggle(ctx context.Context) (domain.Theme, error) {
	next := s.Theme().Toggle()
	if err := s.Set(ctx, next); err != nil {
		return s.Theme(), err
	}
	return next, nil
}

func (s *Settings) Set(ctx context.Context, theme domain.Theme) error {
	if _, err := domain.ParseTheme(string(theme)); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	if err := s.store.Set(ctx, domain.KeyTheme, string(theme)); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	s.mu.Lock()
	changed := s.theme != theme
	s.theme = theme
	var notify []func(domain.Theme)
	if changed {
		for _, fn := range s.listeners {
			notify = append(notify, fn)
		}
	}
	s.mu.Unlock()
	for _, fn := range notify {
		fn(theme)
	}
	return nil
}

func (s *Settings) OnChange(fn func(domain.Theme)) (dispose func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()
	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}
}

// Language returns the remembered language, or "" when none was saved.
func (s *Settings) Language(ctx context.Context) (string, error) {
	lang, err := s.store.Get(ctx, domain.KeyLanguage)
	if errors.Is(err, apperrors.ErrNotFound) {
		return "", nil
	}
	return lang, err
}

func (s *Settings) SetLanguage(ctx context.Context, lang string) error {
	if lang == "" {
		return fmt.Errorf("%w: empty language", apperrors.ErrInvalidInput)
	}
	if err := s.store.Set(ctx, domain.KeyLanguage, lang); err != nil {
		return fmt.Errorf("save language: %w", err)
	}
	return nil
}
