package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/eventra/event-console/internal/core/domain"
	"github.com/eventra/event-console/internal/core/ports"
)

const (
	collectionSocieties  = "societies"
	collectionVendors    = "vendors"
	collectionExhibitors = "exhibitors"
)

// SocietyRepository stores societies in MongoDB.
type SocietyRepository struct {
	col *mongo.Collection
}

func NewSocietyRepository(db *mongo.Database) *SocietyRepository {
	return &SocietyRepository{col: db.Collection(collectionSocieties)}
}

func (r *SocietyRepository) List(ctx context.Context, filter ports.SocietyFilter) ([]*domain.Society, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Search != "" {
		query["$or"] = bson.A{
			bson.M{"name": searchRegex(filter.Search)},
			bson.M{"location": searchRegex(filter.Search)},
		}
	}

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count societies: %w", err)
	}

	cur, err := r.col.Find(ctx, query, listWindow(filter.Page, filter.Limit))
	if err != nil {
		return nil, 0, fmt.Errorf("list societies: %w", err)
	}
	defer cur.Close(ctx)

	var societies []*domain.Society
	if err := cur.All(ctx, &societies); err != nil {
		return nil, 0, fmt.Errorf("decode societies: %w", err)
	}
	return societies, total, nil
}

// VendorRepository stores vendors in MongoDB.
type VendorRepository struct {
	col *mongo.Collection
}

func NewVendorRepository(db *mongo.Database) *VendorRepository {
	return &VendorRepository{col: db.Collection(collectionVendors)}
}

func (r *VendorRepository) List(ctx context.Context, filter ports.VendorFilter) ([]*domain.Vendor, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.City != "" {
		query["city"] = filter.City
	}
	if filter.Search != "" {
		query["$or"] = bson.A{
			bson.M{"name": searchRegex(filter.Search)},
			bson.M{"contact_person": searchRegex(filter.Search)},
		}
	}

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count vendors: %w", err)
	}

	cur, err := r.col.Find(ctx, query, listWindow(filter.Page, filter.Limit))
	if err != nil {
		return nil, 0, fmt.Errorf("list vendors: %w", err)
	}
	defer cur.Close(ctx)

	var vendors []*domain.Vendor
	if err := cur.All(ctx, &vendors); err != nil {
		return nil, 0, fmt.Errorf("decode vendors: %w", err)
	}
	return vendors, total, nil
}

func (r *VendorRepository) Create(ctx context.Context, vendor *domain.Vendor) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, vendor); err != nil {
		return fmt.Errorf("insert vendor: %w", err)
	}
	return nil
}

func (r *VendorRepository) CountByCategory(ctx context.Context) (map[domain.VendorCategory]int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": "$category", "count": bson.M{"$sum": 1}}}},
	})
	if err != nil {
		return nil, fmt.Errorf("count vendors by category: %w", err)
	}
	defer cur.Close(ctx)

	counts := make(map[domain.VendorCategory]int64)
	for cur.Next(ctx) {
		var row struct {
			Category string `bson:"_id"`
			Count    int64  `bson:"count"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, fmt.Errorf("decode category count: %w", err)
		}
		counts[domain.VendorCategory(row.Category)] = row.Count
	}
	return counts, cur.Err()
}

// ExhibitorRepository stores exhibitors in MongoDB.
type ExhibitorRepository struct {
	col *mongo.Collection
}

func NewExhibitorRepository(db *mongo.Database) *ExhibitorRepository {
	return &ExhibitorRepository{col: db.Collection(collectionExhibitors)}
}

func (r *ExhibitorRepository) List(ctx context.Context, filter ports.ExhibitorFilter) ([]*domain.Exhibitor, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.PaymentStatus != "" {
		query["payment_status"] = filter.PaymentStatus
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.City != "" {
		query["city"] = filter.City
	}
	if filter.Search != "" {
		query["$or"] = bson.A{
			bson.M{"company_name": searchRegex(filter.Search)},
			bson.M{"contact_person": searchRegex(filter.Search)},
			bson.M{"email": searchRegex(filter.Search)},
		}
	}

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count exhibitors: %w", err)
	}

	cur, err := r.col.Find(ctx, query, listWindow(filter.Page, filter.Limit))
	if err != nil {
		return nil, 0, fmt.Errorf("list exhibitors: %w", err)
	}
	defer cur.Close(ctx)

	var exhibitors []*domain.Exhibitor
	if err := cur.All(ctx, &exhibitors); err != nil {
		return nil, 0, fmt.Errorf("decode exhibitors: %w", err)
	}
	return exhibitors, total, nil
}

func (r *ExhibitorRepository) CountByStatus(ctx context.Context) (map[domain.ExhibitorStatus]int64, error) {
	counts := make(map[domain.ExhibitorStatus]int64)
	err := r.groupCount(ctx, "$status", func(key string, n int64) {
		counts[domain.ExhibitorStatus(key)] = n
	})
	return counts, err
}

func (r *ExhibitorRepository) CountByPaymentStatus(ctx context.Context) (map[domain.PaymentStatus]int64, error) {
	counts := make(map[domain.PaymentStatus]int64)
	err := r.groupCount(ctx, "$payment_status", func(key string, n int64) {
		counts[domain.PaymentStatus(key)] = n
	})
	return counts, err
}

func (r *ExhibitorRepository) groupCount(ctx context.Context, field string, collect func(string, int64)) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": field, "count": bson.M{"$sum": 1}}}},
	})
	if err != nil {
		return fmt.Errorf("count exhibitors: %w", err)
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var row struct {
			Key   string `bson:"_id"`
			Count int64  `bson:"count"`
		}
		if err := cur.Decode(&row); err != nil {
			return fmt.Errorf("decode exhibitor count: %w", err)
		}
		collect(row.Key, row.Count)
	}
	return cur.Err()
}
