// Package metrics defines the custom Prometheus metrics for the e-commerce
// API. It is the single source of truth for metric names, labels, and help
// strings; all metrics register themselves with the default registry at
// package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ecommerce"

// ProductsCreatedTotal counts newly created products.
// Label:
//   - category: the category supplied at creation (may be empty)
var ProductsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "products_created_total",
		Help:      "Total number of products created, by category.",
	},
	[]string{"category"},
)

// UsersCreatedTotal counts newly created user accounts.
// Label:
//   - role: the role supplied at creation (may be empty)
var UsersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of users created, by role.",
	},
	[]string{"role"},
)

// StoreErrorsTotal counts persistence calls that failed and were surfaced
// as 500 responses.
// Labels:
//   - entity:    "product" or "user"
//   - operation: the failed operation (e.g. "list", "create", "delete")
var StoreErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "store_errors_total",
		Help:      "Total number of failed persistence calls, by entity and operation.",
	},
	[]string{"entity", "operation"},
)
