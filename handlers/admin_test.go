package handlers

import (
	"net/http"
	"testing"

	"dbswash/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubCatalogService records the last write so handler defaulting can be
// asserted without Mongo.
type stubCatalogService struct {
	savedPackage *models.ServicePackage
}

func (s *stubCatalogService) Packages() ([]models.ServicePackage, error)      { return nil, nil }
func (s *stubCatalogService) PackageByID(int) (*models.ServicePackage, error) { return nil, nil }
func (s *stubCatalogService) Extras() ([]models.ExtraService, error)          { return nil, nil }
func (s *stubCatalogService) Locations() ([]models.Location, error)           { return nil, nil }
func (s *stubCatalogService) LocationByID(int) (*models.Location, error)      { return nil, nil }

func (s *stubCatalogService) SavePackage(pkg *models.ServicePackage) error {
	s.savedPackage = pkg
	return nil
}
func (s *stubCatalogService) DeletePackage(int) error              { return nil }
func (s *stubCatalogService) SaveExtra(*models.ExtraService) error { return nil }
func (s *stubCatalogService) DeleteExtra(int) error                { return nil }
func (s *stubCatalogService) SaveLocation(*models.Location) error  { return nil }
func (s *stubCatalogService) DeleteLocation(int) error             { return nil }

func newAdminRouter(svc *stubCatalogService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAdminHandler(svc, zap.NewNop())
	r := gin.New()
	r.POST("/api/admin/packages", h.SavePackage)
	r.PUT("/api/admin/packages/:id", h.SavePackage)
	return r
}

func TestSavePackageActiveDefault(t *testing.T) {
	t.Run("omitted flag saves an active package", func(t *testing.T) {
		svc := &stubCatalogService{}
		r := newAdminRouter(svc)

		body := `{"name":"Gold Class","base_price":30000,"base_price_night":27000,"suv_surcharge":5000}`
		w := doRequest(r, http.MethodPost, "/api/admin/packages", body)
		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, svc.savedPackage)
		assert.True(t, svc.savedPackage.Active, "created packages must show up in listings")
	})

	t.Run("explicit false is preserved", func(t *testing.T) {
		svc := &stubCatalogService{}
		r := newAdminRouter(svc)

		body := `{"name":"Gold Class","base_price":30000,"active":false}`
		w := doRequest(r, http.MethodPost, "/api/admin/packages", body)
		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, svc.savedPackage)
		assert.False(t, svc.savedPackage.Active)
	})

	t.Run("explicit true round-trips", func(t *testing.T) {
		svc := &stubCatalogService{}
		r := newAdminRouter(svc)

		body := `{"name":"Gold Class","base_price":30000,"active":true}`
		w := doRequest(r, http.MethodPut, "/api/admin/packages/1", body)
		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, svc.savedPackage)
		assert.True(t, svc.savedPackage.Active)
		assert.Equal(t, 1, svc.savedPackage.ID)
	})
}
