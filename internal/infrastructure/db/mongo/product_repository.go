package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shopcore/ecommerce-api/internal/core/domain"
)

// collectionProducts matches the collection name used by the original
// deployment.
const collectionProducts = "ecommerce"

type ProductRepository struct {
	col *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{col: db.Collection(collectionProducts)}
}

type productDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	Price       int                `bson:"price"`
	Quantity    int                `bson:"quantity"`
	Category    string             `bson:"category"`
}

func (d productDoc) toDomain() domain.Product {
	return domain.Product{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Price,
		Quantity:    d.Quantity,
		Category:    d.Category,
	}
}

func productToDoc(p *domain.Product) (productDoc, error) {
	doc := productDoc{
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Quantity:    p.Quantity,
		Category:    p.Category,
	}
	if p.ID != "" {
		oid, err := primitive.ObjectIDFromHex(p.ID)
		if err != nil {
			return productDoc{}, fmt.Errorf("invalid product id %q: %w", p.ID, err)
		}
		doc.ID = oid
	}
	return doc, nil
}

// FindAll returns every product document in the collection.
func (r *ProductRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	return decodeProducts(ctx, cur)
}

// FindByCategory returns every product in the category, store-defined order.
func (r *ProductRepository) FindByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"category": category})
	if err != nil {
		return nil, fmt.Errorf("find products by category: %w", err)
	}
	return decodeProducts(ctx, cur)
}

func decodeProducts(ctx context.Context, cur *mongo.Cursor) ([]domain.Product, error) {
	defer cur.Close(ctx)

	products := make([]domain.Product, 0)
	for cur.Next(ctx) {
		var doc productDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode product: %w", err)
		}
		products = append(products, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return products, nil
}

// FindByID retrieves a product by its hex id. Anything that cannot be a
// stored id (including malformed hex) is reported as not found.
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProductNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc productDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}

	p := doc.toDomain()
	return &p, nil
}

// Save inserts the product when it has no id yet, writing the assigned id
// back onto p, and replaces the stored document otherwise.
func (r *ProductRepository) Save(ctx context.Context, p *domain.Product) error {
	doc, err := productToDoc(p)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if doc.ID.IsZero() {
		res, err := r.col.InsertOne(ctx, doc)
		if err != nil {
			return fmt.Errorf("insert product: %w", err)
		}
		oid, ok := res.InsertedID.(primitive.ObjectID)
		if !ok {
			return fmt.Errorf("insert product: unexpected inserted id type %T", res.InsertedID)
		}
		p.ID = oid.Hex()
		return nil
	}

	if _, err := r.col.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, options.Replace().SetUpsert(true)); err != nil {
		return fmt.Errorf("replace product: %w", err)
	}
	return nil
}

// DeleteByID removes the product document. Deleting a non-existent or
// malformed id is a no-op.
func (r *ProductRepository) DeleteByID(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// ExistsByID reports whether a product with the given id is stored.
func (r *ProductRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{"_id": oid}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count products: %w", err)
	}
	return n > 0, nil
}

// EnsureIndexes creates the category index used by the by-category listing.
func (r *ProductRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "category", Value: 1}},
	})
	return err
}
