package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names used by the store.
const (
	collFarmers         = "farmers"
	collCollections     = "milk_collections"
	collPayments        = "payments"
	collRateCharts      = "rate_charts"
	collPlants          = "dairy_plants"
	collDispatches      = "dispatches"
	collDairyPayments   = "dairy_payments"
	collCustomers       = "customers"
	collWalkInCustomers = "walk_in_customers"
	collSales           = "sales"
	collUdharPayments   = "udhar_payments"
	collProducts        = "products"
	collExpenses        = "expenses"
)

// Store owns the MongoDB connection and hands out per-entity repositories.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// New connects to MongoDB and verifies the connection with a ping.
func New(ctx context.Context, uri, dbName string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	return &Store{client: client, db: client.Database(dbName)}, nil
}

// Close disconnects the underlying client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// EnsureIndexes creates the indexes the ledger logic relies on. The unique
// (farmer_id, date, shift) index closes the duplicate-collection race that a
// pre-insert lookup alone cannot.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.db.Collection(collCollections).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "farmer_id", Value: 1},
			{Key: "date", Value: 1},
			{Key: "shift", Value: 1},
		},
		Options: options.Index().SetUnique(true).SetName("uniq_farmer_date_shift"),
	})
	if err != nil {
		return fmt.Errorf("create collection slot index: %w", err)
	}

	secondary := map[string]bson.D{
		collCollections:   {{Key: "date", Value: 1}},
		collPayments:      {{Key: "farmer_id", Value: 1}, {Key: "date", Value: 1}},
		collDispatches:    {{Key: "date", Value: 1}},
		collSales:         {{Key: "date", Value: 1}},
		collExpenses:      {{Key: "date", Value: 1}},
		collUdharPayments: {{Key: "walk_in_customer_id", Value: 1}},
	}
	for name, keys := range secondary {
		if _, err := s.db.Collection(name).Indexes().CreateOne(ctx, mongo.IndexModel{Keys: keys}); err != nil {
			return fmt.Errorf("create %s index: %w", name, err)
		}
	}

	return nil
}

// Farmers returns the farmer repository.
func (s *Store) Farmers() *FarmerRepo {
	return &FarmerRepo{coll: s.db.Collection(collFarmers)}
}

// Collections returns the milk collection repository.
func (s *Store) Collections() *CollectionRepo {
	return &CollectionRepo{coll: s.db.Collection(collCollections)}
}

// Payments returns the farmer payment repository.
func (s *Store) Payments() *PaymentRepo {
	return &PaymentRepo{coll: s.db.Collection(collPayments)}
}

// RateCharts returns the rate chart repository.
func (s *Store) RateCharts() *RateChartRepo {
	return &RateChartRepo{coll: s.db.Collection(collRateCharts)}
}

// Plants returns the dairy plant repository.
func (s *Store) Plants() *PlantRepo {
	return &PlantRepo{coll: s.db.Collection(collPlants)}
}

// Dispatches returns the dispatch repository.
func (s *Store) Dispatches() *DispatchRepo {
	return &DispatchRepo{coll: s.db.Collection(collDispatches)}
}

// DairyPayments returns the plant payment repository.
func (s *Store) DairyPayments() *DairyPaymentRepo {
	return &DairyPaymentRepo{coll: s.db.Collection(collDairyPayments)}
}

// Customers returns the registered customer repository.
func (s *Store) Customers() *CustomerRepo {
	return &CustomerRepo{coll: s.db.Collection(collCustomers)}
}

// WalkInCustomers returns the walk-in customer repository.
func (s *Store) WalkInCustomers() *WalkInCustomerRepo {
	return &WalkInCustomerRepo{coll: s.db.Collection(collWalkInCustomers)}
}

// Sales returns the sale repository.
func (s *Store) Sales() *SaleRepo {
	return &SaleRepo{coll: s.db.Collection(collSales)}
}

// UdharPayments returns the udhar payment repository.
func (s *Store) UdharPayments() *UdharPaymentRepo {
	return &UdharPaymentRepo{coll: s.db.Collection(collUdharPayments)}
}

// Products returns the product repository.
func (s *Store) Products() *ProductRepo {
	return &ProductRepo{coll: s.db.Collection(collProducts)}
}

// Expenses returns the expense repository.
func (s *Store) Expenses() *ExpenseRepo {
	return &ExpenseRepo{coll: s.db.Collection(collExpenses)}
}

// dateRange builds a {$gte, $lte} date filter; empty bounds are skipped.
func dateRange(start, end string) bson.M {
	rng := bson.M{}
	if start != "" {
		rng["$gte"] = start
	}
	if end != "" {
		rng["$lte"] = end
	}
	return rng
}
