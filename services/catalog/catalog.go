package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	catalogRepo "dbswash/database/repository/catalog"
	"dbswash/models"
	"dbswash/utils"

	"go.uber.org/zap"
)

// Service exposes the read-only catalog the booking wizard consumes, plus the
// admin mutations behind it. Reads are cached in Redis; writes invalidate.
type Service interface {
	Packages() ([]models.ServicePackage, error)
	PackageByID(id int) (*models.ServicePackage, error)
	Extras() ([]models.ExtraService, error)
	Locations() ([]models.Location, error)
	LocationByID(id int) (*models.Location, error)

	SavePackage(pkg *models.ServicePackage) error
	DeletePackage(id int) error
	SaveExtra(extra *models.ExtraService) error
	DeleteExtra(id int) error
	SaveLocation(loc *models.Location) error
	DeleteLocation(id int) error
}

const (
	packagesCacheKey  = "catalog:packages"
	extrasCacheKey    = "catalog:extras"
	locationsCacheKey = "catalog:locations"

	cacheTTL = 5 * time.Minute
)

// DefaultCatalogService implements Service.
type DefaultCatalogService struct {
	Repo   catalogRepo.Repository
	Logger *zap.Logger
}

// Packages returns active packages, served from cache when warm.
func (s *DefaultCatalogService) Packages() ([]models.ServicePackage, error) {
	var packages []models.ServicePackage
	if ok := s.fromCache(packagesCacheKey, &packages); ok {
		return packages, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	packages, err := s.Repo.GetPackages(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch packages: %w", err)
	}
	s.toCache(packagesCacheKey, packages)
	return packages, nil
}

// PackageByID resolves one package from the cached list, falling back to the
// repository on a cold cache.
func (s *DefaultCatalogService) PackageByID(id int) (*models.ServicePackage, error) {
	packages, err := s.Packages()
	if err != nil {
		return nil, err
	}
	for i := range packages {
		if packages[i].ID == id {
			return &packages[i], nil
		}
	}
	return nil, fmt.Errorf("package %d not found", id)
}

// Extras returns all extra services, served from cache when warm.
func (s *DefaultCatalogService) Extras() ([]models.ExtraService, error) {
	var extras []models.ExtraService
	if ok := s.fromCache(extrasCacheKey, &extras); ok {
		return extras, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	extras, err := s.Repo.GetExtras(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch extras: %w", err)
	}
	s.toCache(extrasCacheKey, extras)
	return extras, nil
}

// Locations returns all branch locations, served from cache when warm.
func (s *DefaultCatalogService) Locations() ([]models.Location, error) {
	var locations []models.Location
	if ok := s.fromCache(locationsCacheKey, &locations); ok {
		return locations, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	locations, err := s.Repo.GetLocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch locations: %w", err)
	}
	s.toCache(locationsCacheKey, locations)
	return locations, nil
}

// LocationByID resolves one branch from the cached list.
func (s *DefaultCatalogService) LocationByID(id int) (*models.Location, error) {
	locations, err := s.Locations()
	if err != nil {
		return nil, err
	}
	for i := range locations {
		if locations[i].ID == id {
			return &locations[i], nil
		}
	}
	return nil, fmt.Errorf("location %d not found", id)
}

// SavePackage upserts a package and invalidates the package cache.
func (s *DefaultCatalogService) SavePackage(pkg *models.ServicePackage) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Repo.UpsertPackage(ctx, pkg); err != nil {
		return fmt.Errorf("failed to save package: %w", err)
	}
	s.invalidate(packagesCacheKey)
	return nil
}

// DeletePackage removes a package and invalidates the package cache.
func (s *DefaultCatalogService) DeletePackage(id int) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Repo.DeletePackage(ctx, id); err != nil {
		return err
	}
	s.invalidate(packagesCacheKey)
	return nil
}

// SaveExtra upserts an extra service and invalidates the extras cache.
func (s *DefaultCatalogService) SaveExtra(extra *models.ExtraService) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Repo.UpsertExtra(ctx, extra); err != nil {
		return fmt.Errorf("failed to save extra service: %w", err)
	}
	s.invalidate(extrasCacheKey)
	return nil
}

// DeleteExtra removes an extra service and invalidates the extras cache.
func (s *DefaultCatalogService) DeleteExtra(id int) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Repo.DeleteExtra(ctx, id); err != nil {
		return err
	}
	s.invalidate(extrasCacheKey)
	return nil
}

// SaveLocation upserts a branch location and invalidates the location cache.
func (s *DefaultCatalogService) SaveLocation(loc *models.Location) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Repo.UpsertLocation(ctx, loc); err != nil {
		return fmt.Errorf("failed to save location: %w", err)
	}
	s.invalidate(locationsCacheKey)
	return nil
}

// DeleteLocation removes a branch location and invalidates the location cache.
func (s *DefaultCatalogService) DeleteLocation(id int) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Repo.DeleteLocation(ctx, id); err != nil {
		return err
	}
	s.invalidate(locationsCacheKey)
	return nil
}

// fromCache loads a cached catalog list into dest, reporting a hit.
func (s *DefaultCatalogService) fromCache(key string, dest interface{}) bool {
	ctx := context.Background()
	data, err := utils.GetCatalogCacheClient().Get(ctx, key).Result()
	if err != nil {
		return false
	}
	if err := json.Unmarshal([]byte(data), dest); err != nil {
		s.Logger.Warn("discarding undecodable catalog cache entry", zap.String("key", key), zap.Error(err))
		utils.GetCatalogCacheClient().Del(ctx, key)
		return false
	}
	return true
}

// toCache stores a catalog list under key. Cache failures are logged, not fatal.
func (s *DefaultCatalogService) toCache(key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		s.Logger.Warn("failed to marshal catalog cache entry", zap.String("key", key), zap.Error(err))
		return
	}
	if err := utils.GetCatalogCacheClient().Set(context.Background(), key, data, cacheTTL).Err(); err != nil {
		s.Logger.Warn("failed to store catalog cache entry", zap.String("key", key), zap.Error(err))
	}
}

func (s *DefaultCatalogService) invalidate(key string) {
	if err := utils.GetCatalogCacheClient().Del(context.Background(), key).Err(); err != nil {
		s.Logger.Warn("failed to invalidate catalog cache", zap.String("key", key), zap.Error(err))
	}
}
