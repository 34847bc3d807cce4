// Package collections declares the six resource schemas and binds each one to
// its store collection and HTTP routes. This is configuration, not logic: one
// mapper parameterized six ways.
package collections

import (
	"github.com/gin-gonic/gin"

	"github.com/commercekit/commerce-api/internal/resource/adapters/rest"
	"github.com/commercekit/commerce-api/internal/resource/application"
	"github.com/commercekit/commerce-api/internal/resource/domain"
	"github.com/commercekit/commerce-api/internal/resource/ports"
)

// Schemas returns the declared shape of every collection the API serves.
func Schemas() []domain.Schema {
	return []domain.Schema{
		{
			Name:     "customers",
			Singular: "customer",
			Fields: []domain.Field{
				{Name: "firstName", Type: domain.TypeString, Required: true},
				{Name: "lastName", Type: domain.TypeString, Required: true},
				{Name: "email", Type: domain.TypeString, Required: true},
				{Name: "password", Type: domain.TypeString, Required: true},
			},
		},
		{
			Name:     "products",
			Singular: "product",
			Fields: []domain.Field{
				{Name: "name", Type: domain.TypeString, Required: true},
				{Name: "brand", Type: domain.TypeString, Required: true},
				{Name: "price", Type: domain.TypeNumber, Required: true},
				{Name: "serialNumber", Type: domain.TypeString, Required: true},
			},
		},
		{
			Name:     "warehouses",
			Singular: "warehouse",
			Fields: []domain.Field{
				{Name: "city", Type: domain.TypeString, Required: true},
				{Name: "address", Type: domain.TypeString, Required: true},
			},
		},
		{
			Name:     "inventories",
			Singular: "inventory",
			Fields: []domain.Field{
				{Name: "warehouseId", Type: domain.TypeString, Required: true},
				{Name: "productId", Type: domain.TypeString, Required: true},
				{Name: "quantity", Type: domain.TypeNumber, Required: true},
			},
		},
		{
			Name:     "orders",
			Singular: "order",
			Fields: []domain.Field{
				{Name: "customerId", Type: domain.TypeString, Required: true},
				{Name: "productId", Type: domain.TypeString, Required: true},
				{Name: "quantity", Type: domain.TypeNumber, Required: true},
			},
		},
		{
			Name:     "deliveries",
			Singular: "delivery",
			Fields: []domain.Field{
				{Name: "orderId", Type: domain.TypeString, Required: true},
				{Name: "isDelivered", Type: domain.TypeBoolean, Required: true},
			},
		},
	}
}

// Instrument decorates a collection's service; Bind applies it when non-nil.
type Instrument func(schema domain.Schema, svc ports.Service) ports.Service

// Bind constructs the mapper for every schema against the shared store handle
// and mounts its routes on the group.
func Bind(rg *gin.RouterGroup, store ports.Store, instrument Instrument) {
	for _, schema := range Schemas() {
		var svc ports.Service = application.NewMapper(schema, store.Collection(schema.Name))
		if instrument != nil {
			svc = instrument(schema, svc)
		}
		rest.NewAPI(schema, svc).Register(rg)
	}
}
