// internal/app/store/bootcamps/bootcampstore.go
package bootcampstore

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dalemusser/campdir/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

var ErrDuplicateBootcamp = errors.New("a bootcamp with this name already exists")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("bootcamps")}
}

// Slugify derives the URL slug stored alongside the name: case-folded,
// diacritics stripped, non-alphanumeric runs collapsed to single hyphens.
func Slugify(name string) string {
	folded := text.Fold(name)
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

func (s *Store) Create(ctx context.Context, bc models.Bootcamp) (models.Bootcamp, error) {
	now := time.Now().UTC()
	bc.ID = primitive.NewObjectID()
	bc.Slug = Slugify(bc.Name)
	if bc.Photo == "" {
		bc.Photo = models.DefaultBootcampPhoto
	}
	bc.CreatedAt = now
	bc.UpdatedAt = now
	_, err := s.c.InsertOne(ctx, bc)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return models.Bootcamp{}, ErrDuplicateBootcamp
		}
		return models.Bootcamp{}, err
	}
	return bc, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Bootcamp, error) {
	var bc models.Bootcamp
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&bc)
	if err != nil {
		return models.Bootcamp{}, err
	}
	return bc, nil
}

// Exists reports whether a bootcamp with the given ID is present. Used to
// tell "no such bootcamp" apart from "not yours" after a conditional
// update or delete matched nothing.
func (s *Store) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	err := s.c.FindOne(ctx, bson.M{"_id": id}, options.FindOne().SetProjection(bson.M{"_id": 1})).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ownedFilter matches the document by ID, and by owner unless the caller
// is an admin. Mutations go through this so the ownership check and the
// write are a single atomic operation.
func ownedFilter(id, userID primitive.ObjectID, isAdmin bool) bson.M {
	filter := bson.M{"_id": id}
	if !isAdmin {
		filter["owner_id"] = userID
	}
	return filter
}

// UpdateOwned applies set to the bootcamp if the caller owns it (or is an
// admin) and returns the updated document. A name change refreshes the slug.
// mongo.ErrNoDocuments means the document is missing or owned by someone
// else; the caller disambiguates with Exists.
func (s *Store) UpdateOwned(ctx context.Context, id, userID primitive.ObjectID, isAdmin bool, set bson.M) (models.Bootcamp, error) {
	if name, ok := set["name"].(string); ok {
		set["slug"] = Slugify(name)
	}
	set["updated_at"] = time.Now().UTC()

	var bc models.Bootcamp
	err := s.c.FindOneAndUpdate(ctx,
		ownedFilter(id, userID, isAdmin),
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&bc)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return models.Bootcamp{}, ErrDuplicateBootcamp
		}
		return models.Bootcamp{}, err
	}
	return bc, nil
}

// DeleteOwned removes the bootcamp if the caller owns it (or is an admin)
// and returns the deleted document, so the caller can clean up its photo.
func (s *Store) DeleteOwned(ctx context.Context, id, userID primitive.ObjectID, isAdmin bool) (models.Bootcamp, error) {
	var bc models.Bootcamp
	err := s.c.FindOneAndDelete(ctx, ownedFilter(id, userID, isAdmin)).Decode(&bc)
	if err != nil {
		return models.Bootcamp{}, err
	}
	return bc, nil
}

// SetPhoto records the stored photo filename if the caller owns the
// bootcamp (or is an admin), returning the previous document so the old
// photo file can be removed.
func (s *Store) SetPhoto(ctx context.Context, id, userID primitive.ObjectID, isAdmin bool, filename string) (models.Bootcamp, error) {
	var prev models.Bootcamp
	err := s.c.FindOneAndUpdate(ctx,
		ownedFilter(id, userID, isAdmin),
		bson.M{"$set": bson.M{"photo": filename, "updated_at": time.Now().UTC()}},
	).Decode(&prev)
	if err != nil {
		return models.Bootcamp{}, err
	}
	return prev, nil
}

// ExistsPublishedByOwner reports whether the owner already has a published
// bootcamp other than excluding. Non-admin publishers are limited to one;
// create passes NilObjectID, update passes the bootcamp being updated so
// re-publishing it does not count against itself.
func (s *Store) ExistsPublishedByOwner(ctx context.Context, ownerID, excluding primitive.ObjectID) (bool, error) {
	err := s.c.FindOne(ctx,
		bson.M{"owner_id": ownerID, "published": true, "_id": bson.M{"$ne": excluding}},
		options.FindOne().SetProjection(bson.M{"_id": 1}),
	).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// FindWithinSphere returns bootcamps whose location falls inside the
// sphere cap centered at (lng, lat) with the given angular radius in
// radians (distance divided by the Earth's radius).
func (s *Store) FindWithinSphere(ctx context.Context, lng, lat, radians float64) ([]models.Bootcamp, error) {
	filter := bson.M{
		"location": bson.M{
			"$geoWithin": bson.M{
				"$centerSphere": bson.A{bson.A{lng, lat}, radians},
			},
		},
	}
	return s.Find(ctx, filter)
}

// Find returns bootcamps matching the given filter with optional find
// options. The caller builds the filter and options (pagination, sorting,
// projection).
func (s *Store) Find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Bootcamp, error) {
	cur, err := s.c.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var bcs []models.Bootcamp
	if err := cur.All(ctx, &bcs); err != nil {
		return nil, err
	}
	return bcs, nil
}

// Count returns the number of bootcamps matching the given filter.
func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.CountDocuments(ctx, filter)
}
