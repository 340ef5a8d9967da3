package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"go.uber.org/zap"

	"folio/internal/modules/resume/domain"
	resumeout "folio/internal/modules/resume/port/out"
	apperrors "folio/internal/platform/errors"
)

type ResumeService struct {
	reader   resumeout.PDFReader
	launcher resumeout.Launcher
	tracker  resumeout.Tracker
	path     string
	log      *zap.Logger
}

func NewResumeService(
	reader resumeout.PDFReader,
	launcher resumeout.Launcher,
	tracker resumeout.Tracker,
	path string,
	log *zap.Logger,
) *ResumeService {
	if log == nil {
		log = zap.NewNop()
	}
	return &ResumeService{reader: reader, launcher: launcher, tracker: tracker, path: path, log: log}
}

func (s *ResumeService) Path() string { return s.path }

func (s *ResumeService) Text(ctx context.Context, page int) (domain.Page, error) {
	if err := s.check(); err != nil {
		return domain.Page{}, err
	}
	return s.reader.ReadPage(ctx, s.path, domain.ClampPage(page, 0))
}

// Open hands the CV to the OS viewer and records a download event.
func (s *ResumeService) Open(ctx context.Context) error {
	if err := s.check(); err != nil {
		return err
	}
	if s.launcher == nil {
		return fmt.Errorf("%w: no external launcher", apperrors.ErrNotConfigured)
	}
	if err := s.launcher.Open(ctx, s.path); err != nil {
		return err
	}
	s.log.Info("cv opened", zap.String("path", s.path))
	if s.tracker != nil {
		s.tracker.TrackDownload(domain.DownloadLabel)
	}
	return nil
}

func (s *ResumeService) check() error {
	if strings.TrimSpace(s.path) == "" {
		return fmt.Errorf("%w: cv path", apperrors.ErrNotConfigured)
	}
	info, err := os.Stat(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", apperrors.ErrNotFound, s.path)
	}
	if err != nil {
		return fmt.Errorf("stat cv: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", apperrors.ErrInvalidInput, s.path)
	}
	return nil
}
