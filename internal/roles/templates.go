package roles

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/blevesearch/bleve/v2"
	"github.com/hashicorp/go-version"
	"github.com/sirupsen/logrus"
	"github.com/thand-io/console/internal/common"
	"github.com/thand-io/console/internal/models"
)

// Catalog files must declare a version within this range.
const supportedCatalogVersions = ">= 1.0, < 2.0"

// TemplateFile is a local adaptive authentication template catalog.
type TemplateFile struct {
	Version   string                                 `json:"version" yaml:"version"`
	Templates map[string]models.AdaptiveAuthTemplate `json:"templates" yaml:"templates"`
}

// LoadTemplateFile reads a YAML or JSON template catalog from path.
func LoadTemplateFile(path string) (*models.AdaptiveAuthTemplates, error) {
	file, err := common.ReadFileToInterface[TemplateFile](path)
	if err != nil {
		return nil, err
	}
	return file.Catalog()
}

// Catalog checks the file version and returns its templates.
func (f *TemplateFile) Catalog() (*models.AdaptiveAuthTemplates, error) {
	current, err := version.NewVersion(f.Version)
	if err != nil {
		return nil, fmt.Errorf("invalid template catalog version %q: %w", f.Version, err)
	}

	constraints, err := version.NewConstraint(supportedCatalogVersions)
	if err != nil {
		return nil, err
	}

	if !constraints.Check(current) {
		return nil, fmt.Errorf("template catalog version %s is not supported (%s)", current, supportedCatalogVersions)
	}

	templates := make(map[string]models.AdaptiveAuthTemplate, len(f.Templates))
	for key, template := range f.Templates {
		if len(template.Name) == 0 {
			template.Name = key
		}
		templates[key] = template
	}

	return &models.AdaptiveAuthTemplates{TemplatesJSON: templates}, nil
}

// templateDocument is the indexed view of a template.
type templateDocument struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Summary  string `json:"summary"`
	Category string `json:"category"`
}

// TemplateIndex is a searchable, in-memory copy of the template catalog.
type TemplateIndex struct {
	mu        sync.RWMutex
	index     bleve.Index
	templates []models.AdaptiveAuthTemplate
	catalog   *models.AdaptiveAuthTemplates
}

func NewTemplateIndex() *TemplateIndex {
	return &TemplateIndex{}
}

// Build replaces the indexed catalog.
func (t *TemplateIndex) Build(catalog *models.AdaptiveAuthTemplates) error {
	startTime := time.Now()

	index, err := bleve.NewMemOnly(bleve.NewIndexMapping())
	if err != nil {
		return fmt.Errorf("failed to create template search index: %w", err)
	}

	templates := catalog.List()

	batch := index.NewBatch()
	for _, template := range templates {
		doc := templateDocument{
			Name:     template.Name,
			Title:    template.Title,
			Summary:  template.Summary,
			Category: template.Category,
		}
		if err := batch.Index(template.Name, doc); err != nil {
			return fmt.Errorf("failed to index template %s: %w", template.Name, err)
		}
	}
	if err := index.Batch(batch); err != nil {
		return fmt.Errorf("failed to index templates: %w", err)
	}

	t.mu.Lock()
	previous := t.index
	t.index = index
	t.templates = templates
	t.catalog = catalog
	t.mu.Unlock()

	if previous != nil {
		if err := previous.Close(); err != nil {
			logrus.WithError(err).Warnln("Failed to close previous template index")
		}
	}

	logrus.WithFields(logrus.Fields{
		"templates": len(templates),
		"elapsed":   time.Since(startTime),
	}).Debugln("Built template search index")

	return nil
}

// Load fetches the catalog from the backend, falling back to the local file
// at fallbackPath when the backend fails or has no templates.
func (t *TemplateIndex) Load(ctx context.Context, client TemplateClient, fallbackPath string) error {
	var catalog *models.AdaptiveAuthTemplates
	var fetchErr error

	if client != nil {
		catalog, fetchErr = client.GetAdaptiveAuthTemplates(ctx)
		if fetchErr != nil {
			logrus.WithError(fetchErr).Warnln("Failed to fetch adaptive auth templates")
		}
	}

	if (catalog == nil || len(catalog.TemplatesJSON) == 0) && len(fallbackPath) > 0 {
		local, err := LoadTemplateFile(fallbackPath)
		if err != nil {
			return fmt.Errorf("failed to load template catalog: %w", err)
		}
		catalog = local
		fetchErr = nil
	}

	if fetchErr != nil {
		return fetchErr
	}

	if catalog == nil {
		catalog = &models.AdaptiveAuthTemplates{}
	}

	return t.Build(catalog)
}

// Catalog returns the indexed catalog. It is never nil.
func (t *TemplateIndex) Catalog() *models.AdaptiveAuthTemplates {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.catalog == nil {
		return &models.AdaptiveAuthTemplates{}
	}
	return t.catalog
}

func (t *TemplateIndex) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.templates)
}

// Search matches templates by name, title, summary or category.
func (t *TemplateIndex) Search(ctx context.Context, req *models.SearchRequest) ([]models.SearchResult[models.AdaptiveAuthTemplate], error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	key := func(template models.AdaptiveAuthTemplate) string {
		return template.Name
	}

	if t.index == nil {
		return []models.SearchResult[models.AdaptiveAuthTemplate]{}, nil
	}

	return models.BleveListSearch(ctx, t.index, key, t.templates, req)
}

func (t *TemplateIndex) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.index == nil {
		return nil
	}
	err := t.index.Close()
	t.index = nil
	return err
}
