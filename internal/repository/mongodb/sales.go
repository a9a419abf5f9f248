package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nirbani/dairy/internal/domain/models"
)

// CustomerRepo is the Mongo-backed CustomerRepository.
type CustomerRepo struct {
	coll *mongo.Collection
}

func (r *CustomerRepo) Insert(ctx context.Context, customer models.Customer) error {
	if _, err := r.coll.InsertOne(ctx, customer); err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

func (r *CustomerRepo) FindByID(ctx context.Context, id string) (*models.Customer, error) {
	var customer models.Customer
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&customer)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find customer %s: %w", id, err)
	}
	return &customer, nil
}

func (r *CustomerRepo) List(ctx context.Context) ([]models.Customer, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}

	var customers []models.Customer
	if err := cursor.All(ctx, &customers); err != nil {
		return nil, fmt.Errorf("decode customers: %w", err)
	}
	return customers, nil
}

func (r *CustomerRepo) ApplyLedgerDelta(ctx context.Context, id string, delta models.CustomerLedgerDelta) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{
		"$inc": bson.M{
			"total_purchase": delta.Purchase,
			"total_paid":     delta.Paid,
			"balance":        delta.Balance,
		},
	})
	if err != nil {
		return fmt.Errorf("apply customer ledger delta %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return models.ErrCustomerNotFound
	}
	return nil
}

// WalkInCustomerRepo is the Mongo-backed WalkInCustomerRepository.
type WalkInCustomerRepo struct {
	coll *mongo.Collection
}

func (r *WalkInCustomerRepo) Insert(ctx context.Context, customer models.WalkInCustomer) error {
	if _, err := r.coll.InsertOne(ctx, customer); err != nil {
		return fmt.Errorf("insert walk-in customer: %w", err)
	}
	return nil
}

func (r *WalkInCustomerRepo) FindByID(ctx context.Context, id string) (*models.WalkInCustomer, error) {
	var customer models.WalkInCustomer
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&customer)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrWalkInCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find walk-in customer %s: %w", id, err)
	}
	return &customer, nil
}

func (r *WalkInCustomerRepo) List(ctx context.Context) ([]models.WalkInCustomer, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list walk-in customers: %w", err)
	}

	var customers []models.WalkInCustomer
	if err := cursor.All(ctx, &customers); err != nil {
		return nil, fmt.Errorf("decode walk-in customers: %w", err)
	}
	return customers, nil
}

func (r *WalkInCustomerRepo) ApplyDelta(ctx context.Context, id string, pending, paid float64) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{
		"$inc": bson.M{
			"pending_amount": pending,
			"total_paid":     paid,
		},
	})
	if err != nil {
		return fmt.Errorf("apply walk-in customer delta %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return models.ErrWalkInCustomerNotFound
	}
	return nil
}

// SaleRepo is the Mongo-backed SaleRepository.
type SaleRepo struct {
	coll *mongo.Collection
}

func (r *SaleRepo) Insert(ctx context.Context, sale models.Sale) error {
	if _, err := r.coll.InsertOne(ctx, sale); err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

func (r *SaleRepo) FindByID(ctx context.Context, id string) (*models.Sale, error) {
	var sale models.Sale
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&sale)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrSaleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find sale %s: %w", id, err)
	}
	return &sale, nil
}

func (r *SaleRepo) List(ctx context.Context, filter SaleFilter) ([]models.Sale, error) {
	query := bson.M{}
	if filter.CustomerID != "" {
		query["customer_id"] = filter.CustomerID
	}
	if filter.WalkInCustomerID != "" {
		query["walk_in_customer_id"] = filter.WalkInCustomerID
	}
	if filter.Date != "" {
		query["date"] = filter.Date
	} else if rng := dateRange(filter.StartDate, filter.EndDate); len(rng) > 0 {
		query["date"] = rng
	}
	if filter.UdharOnly {
		query["is_udhar"] = true
	}

	cursor, err := r.coll.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}

	var sales []models.Sale
	if err := cursor.All(ctx, &sales); err != nil {
		return nil, fmt.Errorf("decode sales: %w", err)
	}
	return sales, nil
}

func (r *SaleRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("delete sale %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return models.ErrSaleNotFound
	}
	return nil
}

// UdharPaymentRepo is the Mongo-backed UdharPaymentRepository.
type UdharPaymentRepo struct {
	coll *mongo.Collection
}

func (r *UdharPaymentRepo) Insert(ctx context.Context, payment models.UdharPayment) error {
	if _, err := r.coll.InsertOne(ctx, payment); err != nil {
		return fmt.Errorf("insert udhar payment: %w", err)
	}
	return nil
}

func (r *UdharPaymentRepo) List(ctx context.Context, walkInCustomerID string) ([]models.UdharPayment, error) {
	query := bson.M{}
	if walkInCustomerID != "" {
		query["walk_in_customer_id"] = walkInCustomerID
	}

	cursor, err := r.coll.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list udhar payments: %w", err)
	}

	var payments []models.UdharPayment
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, fmt.Errorf("decode udhar payments: %w", err)
	}
	return payments, nil
}

// ProductRepo is the Mongo-backed ProductRepository.
type ProductRepo struct {
	coll *mongo.Collection
}

func (r *ProductRepo) Insert(ctx context.Context, product models.Product) error {
	if _, err := r.coll.InsertOne(ctx, product); err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (r *ProductRepo) List(ctx context.Context) ([]models.Product, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return products, nil
}

func (r *ProductRepo) DecrementStock(ctx context.Context, name string, quantity float64) error {
	_, err := r.coll.UpdateOne(ctx, bson.M{"name": name}, bson.M{"$inc": bson.M{"stock": -quantity}})
	if err != nil {
		return fmt.Errorf("decrement stock for %s: %w", name, err)
	}
	return nil
}
