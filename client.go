package graphdex

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/helix-bio/graphdex/internal/curie"
	associationrepo "github.com/helix-bio/graphdex/internal/repository/association"
	entityrepo "github.com/helix-bio/graphdex/internal/repository/entity"
	mappingrepo "github.com/helix-bio/graphdex/internal/repository/mapping"
	"github.com/helix-bio/graphdex/internal/solr"
	associationuc "github.com/helix-bio/graphdex/internal/usecase/association"
	entityuc "github.com/helix-bio/graphdex/internal/usecase/entity"
	searchuc "github.com/helix-bio/graphdex/internal/usecase/search"
)

// Client is the graphdex SDK entry point.
type Client struct {
	gateway   *solr.Client
	entitySvc *entityuc.Service
	assocSvc  *associationuc.Service
	searchSvc *searchuc.Service
}

// New creates a graphdex Client. The backend is not contacted until the
// first operation; use Ping to probe it eagerly.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		logger: zap.NewNop(),
	}
	for _, o := range opts {
		o.apply(cfg)
	}

	if cfg.baseURL == "" {
		return nil, errors.New("graphdex: solr base url required (use WithBaseURL)")
	}

	gateway, err := solr.NewClient(solr.Config{
		BaseURL:    cfg.baseURL,
		Timeout:    cfg.timeout,
		HTTPClient: cfg.httpClient,
		Logger:     cfg.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("graphdex: create backend client: %w", err)
	}

	return wireClient(gateway, cfg)
}

func wireClient(gateway *solr.Client, cfg *clientConfig) (*Client, error) {
	links, err := curie.New()
	if err != nil {
		return nil, fmt.Errorf("graphdex: load curie tables: %w", err)
	}

	entityRepo := entityrepo.New(gateway)
	assocRepo := associationrepo.New(gateway, links)
	mappingRepo := mappingrepo.New(gateway)

	return &Client{
		gateway:   gateway,
		entitySvc: entityuc.New(entityRepo, assocRepo, links, cfg.logger),
		assocSvc:  associationuc.New(assocRepo, cfg.logger),
		searchSvc: searchuc.New(entityRepo, mappingRepo, cfg.logger),
	}, nil
}

// Ping checks backend connectivity.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.gateway.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Entities returns the entity lookup service.
func (c *Client) Entities() *EntityService {
	return &EntityService{svc: c.entitySvc}
}

// Associations returns the association query service.
func (c *Client) Associations() *AssociationService {
	return &AssociationService{svc: c.assocSvc}
}

// Search returns the full-text search service.
func (c *Client) Search() *SearchService {
	return &SearchService{svc: c.searchSvc}
}

// Mappings returns the cross-vocabulary mapping service.
func (c *Client) Mappings() *MappingService {
	return &MappingService{svc: c.searchSvc}
}
