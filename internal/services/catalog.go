package services

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/quietgrove/jukebox/internal/models"
	"github.com/quietgrove/jukebox/internal/repositories"
	"github.com/quietgrove/jukebox/internal/shared"
)

// MaxMediaDuration is the longest accepted media duration: 24 hours.
const MaxMediaDuration = 86400

// CatalogService implements [Catalog] on top of a MediaRepository.
type CatalogService struct {
	media  *repositories.MediaRepository
	logger *log.Logger
}

var _ Catalog = (*CatalogService)(nil)

// NewCatalogService creates a CatalogService with the given repository and logger.
func NewCatalogService(media *repositories.MediaRepository, logger *log.Logger) *CatalogService {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &CatalogService{media: media, logger: logger}
}

// CreateMedia validates m and persists it. The duplicate check runs
// before the insert so the caller gets a domain error rather than the
// storage constraint violation.
func (s *CatalogService) CreateMedia(m models.Media) (models.Media, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	duplicate, err := s.media.ExistsByNameTypeCreator(m.Name(), m.Type(), m.Creator())
	if err != nil {
		return nil, err
	}
	if duplicate {
		return nil, fmt.Errorf("%w: %s %q by %s", shared.ErrDuplicateResource, m.Type(), m.Name(), m.Creator())
	}

	if m.Duration() > MaxMediaDuration {
		return nil, fmt.Errorf("%w: media duration cannot exceed 24 hours", shared.ErrInvalidInput)
	}

	if err := s.media.Create(m); err != nil {
		return nil, err
	}

	s.logger.Info("media created", "id", m.ID(), "type", m.Type(), "name", m.Name())
	return m, nil
}

// GetAllMedia returns the whole catalog ordered by id.
func (s *CatalogService) GetAllMedia() ([]models.Media, error) {
	return s.media.GetAll()
}

// GetMediaByID returns the entry with the given id.
func (s *CatalogService) GetMediaByID(id int64) (models.Media, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: media %d", shared.ErrNotFound, id)
	}
	return s.media.GetByID(id)
}

// UpdateMedia validates m, confirms the target exists, and replaces its
// mutable fields. The uniqueness triple is not re-checked on update;
// renaming into collision is caught by the storage constraint.
func (s *CatalogService) UpdateMedia(id int64, m models.Media) (models.Media, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.media.Exists(id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: media %d", shared.ErrNotFound, id)
	}

	if m.Duration() > MaxMediaDuration {
		return nil, fmt.Errorf("%w: media duration cannot exceed 24 hours", shared.ErrInvalidInput)
	}

	updated, err := s.media.Update(id, m)
	if err != nil {
		return nil, err
	}

	s.logger.Info("media updated", "id", id, "name", m.Name())
	return updated, nil
}

// DeleteMedia removes an existing entry; its memberships cascade.
func (s *CatalogService) DeleteMedia(id int64) error {
	exists, err := s.media.Exists(id)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: media %d", shared.ErrNotFound, id)
	}

	if err := s.media.Delete(id); err != nil {
		return err
	}

	s.logger.Info("media deleted", "id", id)
	return nil
}

// GetMediaByType returns entries of one variant ordered by name. The
// tag is normalized before the query so any casing the parser accepts
// matches the stored discriminator.
func (s *CatalogService) GetMediaByType(t models.MediaType) ([]models.Media, error) {
	parsed, err := models.ParseMediaType(string(t))
	if err != nil {
		return nil, err
	}
	return s.media.FindByType(parsed)
}

// GetMediaByCreator returns entries by creator, case-insensitively.
func (s *CatalogService) GetMediaByCreator(creator string) ([]models.Media, error) {
	if strings.TrimSpace(creator) == "" {
		return nil, fmt.Errorf("%w: creator name cannot be empty", shared.ErrInvalidInput)
	}
	return s.media.FindByCreator(creator)
}

// SearchMediaByName returns entries whose name contains the keyword.
func (s *CatalogService) SearchMediaByName(keyword string) ([]models.Media, error) {
	if strings.TrimSpace(keyword) == "" {
		return nil, fmt.Errorf("%w: search keyword cannot be empty", shared.ErrInvalidInput)
	}
	return s.media.SearchByName(keyword)
}
