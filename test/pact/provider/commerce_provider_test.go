//go:build pact
// +build pact

package provider_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	pacttest "github.com/commercekit/commerce-api/test/pact"

	"github.com/commercekit/commerce-api/internal/collections"
	"github.com/commercekit/commerce-api/internal/resource/adapters/memory"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pact-foundation/pact-go/v2/models"
	pactprovider "github.com/pact-foundation/pact-go/v2/provider"
	"github.com/stretchr/testify/require"
)

func TestCommerceProviderPact(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	app := newContractProviderApp(t)
	pactFile := filepath.ToSlash(pacttest.PactFile(t))
	if _, err := os.Stat(pactFile); errors.Is(err, os.ErrNotExist) {
		t.Fatalf("pact file not found at %s - run the pact consumer tests first", pactFile)
	} else {
		require.NoError(t, err)
	}

	verifier := pactprovider.NewVerifier()
	stateHandlers := models.StateHandlers{
		pacttest.StateCustomersSeeded: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.resetCustomers(t)
			if setup {
				app.seedCustomer(t, pacttest.ExistingCustomerID)
			}
			return nil, nil
		},
		pacttest.StateCustomerExists: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.resetCustomers(t)
			if setup {
				app.seedCustomer(t, pacttest.ExistingCustomerID)
			}
			return nil, nil
		},
		pacttest.StateCustomerMissing: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.resetCustomers(t)
			return nil, nil
		},
	}

	err := verifier.VerifyProvider(t, pactprovider.VerifyRequest{
		ProviderBaseURL: app.server.URL,
		Provider:        pacttest.ProviderName,
		PactFiles:       []string{pactFile},
		StateHandlers:   stateHandlers,
		BeforeEach: func() error {
			app.resetCustomers(t)
			return nil
		},
	})
	require.NoError(t, err)
}

type contractProviderApp struct {
	store  *memory.Store
	server *httptest.Server
}

func newContractProviderApp(t testing.TB) *contractProviderApp {
	t.Helper()

	store := memory.NewStore()

	router := gin.New()
	router.Use(gin.Recovery())
	collections.Bind(router.Group("/api/v1"), store, nil)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &contractProviderApp{
		store:  store,
		server: server,
	}
}

func (a *contractProviderApp) resetCustomers(t testing.TB) {
	t.Helper()
	coll := a.store.Collection("customers")
	entries, err := coll.List(context.Background())
	require.NoError(t, err)
	for _, entry := range entries {
		require.NoError(t, coll.Delete(context.Background(), entry.ID))
	}
}

// seedCustomer pins id generation to the wanted value for one insert and then
// restores random ids.
func (a *contractProviderApp) seedCustomer(t testing.TB, id string) {
	t.Helper()
	a.store.WithIDFunc(func() string { return id })
	defer a.store.WithIDFunc(uuid.NewString)

	_, err := a.store.Collection("customers").Add(context.Background(), pacttest.ExampleCustomer())
	require.NoError(t, err)
}
