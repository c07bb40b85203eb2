package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/coffeeshop/backoffice/internal/core/domain"
)

const coffeesCollection = "coffees"

type CoffeeRepository struct {
	coll *mongo.Collection
}

func NewCoffeeRepository(db *mongo.Database) *CoffeeRepository {
	return &CoffeeRepository{coll: db.Collection(coffeesCollection)}
}

type mongoCoffee struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	Price       float64            `bson:"price"`
	Category    string             `bson:"category"`
	Available   bool               `bson:"available"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (r *CoffeeRepository) Insert(ctx context.Context, coffee *domain.Coffee) (*domain.Coffee, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, toDoc(coffee))
	if err != nil {
		return nil, fmt.Errorf("insert coffee: %w", err)
	}

	stored := *coffee
	stored.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &stored, nil
}

func (r *CoffeeRepository) FindByID(ctx context.Context, id string) (*domain.Coffee, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCoffeeNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mc mongoCoffee
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCoffeeNotFound
		}
		return nil, fmt.Errorf("find coffee: %w", err)
	}
	return fromDoc(mc), nil
}

func (r *CoffeeRepository) FindAll(ctx context.Context) ([]*domain.Coffee, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list coffees: %w", err)
	}
	defer cursor.Close(ctx)

	var coffees []*domain.Coffee
	for cursor.Next(ctx) {
		var mc mongoCoffee
		if err := cursor.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode coffee: %w", err)
		}
		coffees = append(coffees, fromDoc(mc))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list coffees: %w", err)
	}
	return coffees, nil
}

func (r *CoffeeRepository) Update(ctx context.Context, coffee *domain.Coffee) error {
	oid, err := primitive.ObjectIDFromHex(coffee.ID)
	if err != nil {
		return domain.ErrCoffeeNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, toDoc(coffee))
	if err != nil {
		return fmt.Errorf("update coffee: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrCoffeeNotFound
	}
	return nil
}

func (r *CoffeeRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrCoffeeNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete coffee: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCoffeeNotFound
	}
	return nil
}

func (r *CoffeeRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count coffees: %w", err)
	}
	return n, nil
}

func toDoc(coffee *domain.Coffee) mongoCoffee {
	doc := mongoCoffee{
		Name:        coffee.Name,
		Description: coffee.Description,
		Price:       coffee.Price,
		Category:    coffee.Category,
		Available:   coffee.Available,
		CreatedAt:   coffee.CreatedAt,
		UpdatedAt:   coffee.UpdatedAt,
	}
	if oid, err := primitive.ObjectIDFromHex(coffee.ID); err == nil {
		doc.ID = oid
	}
	return doc
}

func fromDoc(mc mongoCoffee) *domain.Coffee {
	return &domain.Coffee{
		ID:          mc.ID.Hex(),
		Name:        mc.Name,
		Description: mc.Description,
		Price:       mc.Price,
		Category:    mc.Category,
		Available:   mc.Available,
		CreatedAt:   mc.CreatedAt,
		UpdatedAt:   mc.UpdatedAt,
	}
}
